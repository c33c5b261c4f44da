package service

import (
	"errors"
	"fmt"
)

// The service classifies every failure into one of four kinds so the route
// layer can map them onto status codes without inspecting driver errors:
// validation failures and malformed ids become 400, missing items 404, and
// everything else a generic 500.

// ErrNotFound is returned when an operation targets an id that matches no
// stored item.
var ErrNotFound = errors.New("item not found")

// ErrInvalidID is returned when an id string is not a well-formed UUID.
// The check runs before any query is issued.
var ErrInvalidID = errors.New("invalid item id")

// ValidationError reports malformed input: a create payload with missing
// required fields, or an update patch with zero explicit fields.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// StorageError wraps an unexpected failure while communicating with the
// store. Handlers log the wrapped cause server-side and respond with a
// generic message only.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
