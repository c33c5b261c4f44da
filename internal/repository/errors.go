// Package repository contains data access logic separated from HTTP
// handlers. This file defines sentinel error values shared by the
// repository methods so that higher layers can distinguish failure
// scenarios with errors.Is instead of inspecting driver errors.
package repository

import "errors"

// ErrItemNotFound is returned when no item row matches the requested id.
// The service layer translates it into its NotFound error and handlers
// ultimately respond with HTTP 404.
var ErrItemNotFound = errors.New("item not found")
