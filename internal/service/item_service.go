// Package service implements the item operations on top of a storage
// backend. It owns input validation, the partial-update semantics and the
// translation of storage failures into the error taxonomy consumed by the
// HTTP layer.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alicemeyer/items-api/internal/model"
	"github.com/alicemeyer/items-api/internal/repository"
)

// ItemStore is the storage surface the service needs. It is implemented by
// repository.ItemRepo in production and by in-memory fakes in tests.
type ItemStore interface {
	Create(ctx context.Context, it *model.Item) error
	GetByID(ctx context.Context, id string) (*model.Item, error)
	List(ctx context.Context) ([]*model.Item, error)
	Update(ctx context.Context, id string, patch model.ItemUpdate) (*model.Item, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// ItemService implements the five CRUD operations. It holds no state of its
// own beyond the injected store and logger, so a single instance is shared
// safely across concurrent requests.
type ItemService struct {
	store ItemStore
	log   logrus.FieldLogger
}

// NewItemService constructs an ItemService around the given store.
func NewItemService(store ItemStore, log logrus.FieldLogger) *ItemService {
	return &ItemService{store: store, log: log}
}

// Create validates the payload, persists a new item and returns it with the
// assigned id.
func (s *ItemService) Create(ctx context.Context, in model.ItemCreate) (*model.Item, error) {
	if missing := in.Missing(); len(missing) > 0 {
		return nil, &ValidationError{Detail: "missing required fields: " + strings.Join(missing, ", ")}
	}
	it := in.Item()
	if err := s.store.Create(ctx, &it); err != nil {
		s.log.WithError(err).Error("create item failed")
		return nil, &StorageError{Err: err}
	}
	s.log.WithField("item_id", it.ID).Info("item created")
	return &it, nil
}

// GetAll returns every stored item. An empty store yields an empty slice.
func (s *ItemService) GetAll(ctx context.Context) ([]*model.Item, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		s.log.WithError(err).Error("list items failed")
		return nil, &StorageError{Err: err}
	}
	if items == nil {
		items = []*model.Item{}
	}
	return items, nil
}

// GetByID returns the item with the given id, ErrInvalidID when the id is
// not a well-formed UUID and ErrNotFound when no such item exists.
func (s *ItemService) GetByID(ctx context.Context, id string) (*model.Item, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	it, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapStoreErr(err, "get item")
	}
	return it, nil
}

// Update merges the explicitly supplied patch fields into the stored item
// and returns the merged record. PUT and PATCH behave identically: the
// operation is always a partial merge. A patch with zero supplied fields is
// rejected before any storage access, even when the target id does not
// exist.
func (s *ItemService) Update(ctx context.Context, id string, patch model.ItemUpdate) (*model.Item, error) {
	if patch.IsEmpty() {
		return nil, &ValidationError{Detail: "No fields to update"}
	}
	if err := checkID(id); err != nil {
		return nil, err
	}
	it, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, s.mapStoreErr(err, "update item")
	}
	s.log.WithField("item_id", id).Info("item updated")
	return it, nil
}

// Delete removes the item with the given id.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return s.mapStoreErr(err, "delete item")
	}
	s.log.WithField("item_id", id).Info("item deleted")
	return nil
}

// Ping reports whether the storage backend is reachable.
func (s *ItemService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// mapStoreErr recognizes the repository's not-found sentinel and wraps
// anything else as a StorageError.
func (s *ItemService) mapStoreErr(err error, op string) error {
	if errors.Is(err, repository.ErrItemNotFound) {
		return ErrNotFound
	}
	s.log.WithError(err).Error(op + " failed")
	return &StorageError{Err: err}
}

// checkID enforces the UUID format of item ids before querying.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
