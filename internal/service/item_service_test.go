package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alicemeyer/items-api/internal/model"
	"github.com/alicemeyer/items-api/internal/repository"
)

// mockStore is an in-memory ItemStore. failErr, when set, is returned by
// every operation to simulate a broken backend. calls counts storage
// operations so tests can assert an operation never reached storage.
type mockStore struct {
	mu      sync.Mutex
	items   map[string]model.Item
	failErr error
	calls   int
}

func newMockStore() *mockStore {
	return &mockStore{items: make(map[string]model.Item)}
}

func (m *mockStore) Create(ctx context.Context, it *model.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failErr != nil {
		return m.failErr
	}
	it.ID = uuid.NewString()
	m.items[it.ID] = *it
	return nil
}

func (m *mockStore) GetByID(ctx context.Context, id string) (*model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failErr != nil {
		return nil, m.failErr
	}
	it, ok := m.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	return &it, nil
}

func (m *mockStore) List(ctx context.Context) ([]*model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failErr != nil {
		return nil, m.failErr
	}
	var out []*model.Item
	for id := range m.items {
		it := m.items[id]
		out = append(out, &it)
	}
	return out, nil
}

func (m *mockStore) Update(ctx context.Context, id string, patch model.ItemUpdate) (*model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failErr != nil {
		return nil, m.failErr
	}
	it, ok := m.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	patch.Apply(&it)
	m.items[id] = it
	return &it, nil
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.items[id]; !ok {
		return repository.ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.failErr
}

func newTestService(store *mockStore) *ItemService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewItemService(store, log)
}

func strptr(s string) *string { return &s }

func validCreate() model.ItemCreate {
	return model.ItemCreate{UserID: strptr("u1"), Name: strptr("Widget"), Price: strptr("9.99")}
}

func TestCreateReadRoundTrip(t *testing.T) {
	svc := newTestService(newMockStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	_, err = uuid.Parse(created.ID)
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, "9.99", got.Price)
}

func TestCreateMissingFields(t *testing.T) {
	store := newMockStore()
	svc := newTestService(store)

	_, err := svc.Create(context.Background(), model.ItemCreate{UserID: strptr("u1")})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Detail, "name")
	assert.Contains(t, ve.Detail, "price")
	assert.Zero(t, store.calls, "validation must happen before storage")
}

func TestGetAllEmptyStore(t *testing.T) {
	svc := newTestService(newMockStore())

	items, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetAllListsEveryItem(t *testing.T) {
	svc := newTestService(newMockStore())
	ctx := context.Background()

	ids := make(map[string]bool)
	for i := 0; i < 5; i++ {
		it, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
		ids[it.ID] = true
	}

	items, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 5)
	for _, it := range items {
		assert.True(t, ids[it.ID], "unexpected id %s", it.ID)
	}
}

func TestInvalidIDRejectedBeforeStorage(t *testing.T) {
	store := newMockStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.Update(ctx, "not-a-uuid", model.ItemUpdate{Price: strptr("1")})
	assert.ErrorIs(t, err, ErrInvalidID)

	err = svc.Delete(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)

	assert.Zero(t, store.calls)
}

func TestNotFoundSymmetry(t *testing.T) {
	svc := newTestService(newMockStore())
	ctx := context.Background()
	id := uuid.NewString()

	_, err := svc.GetByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, id, model.ItemUpdate{Price: strptr("1")})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePartialMergePreservesFields(t *testing.T) {
	svc := newTestService(newMockStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	merged, err := svc.Update(ctx, created.ID, model.ItemUpdate{Price: strptr("12.00")})
	require.NoError(t, err)
	assert.Equal(t, created.ID, merged.ID)
	assert.Equal(t, "u1", merged.UserID)
	assert.Equal(t, "Widget", merged.Name)
	assert.Equal(t, "12.00", merged.Price)

	// The merge is persisted, not just returned.
	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, merged, got)
}

func TestUpdateEmptyPatchRejected(t *testing.T) {
	store := newMockStore()
	svc := newTestService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)
	store.calls = 0

	var ve *ValidationError

	// Existing id: rejected without touching storage.
	_, err = svc.Update(ctx, created.ID, model.ItemUpdate{})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "No fields to update", ve.Detail)

	// Nonexistent and even malformed ids behave the same; the patch check
	// runs first.
	_, err = svc.Update(ctx, uuid.NewString(), model.ItemUpdate{})
	assert.ErrorAs(t, err, &ve)
	_, err = svc.Update(ctx, "not-a-uuid", model.ItemUpdate{})
	assert.ErrorAs(t, err, &ve)

	assert.Zero(t, store.calls)
}

func TestDeleteRemovesVisibility(t *testing.T) {
	svc := newTestService(newMockStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorageFailureWrapped(t *testing.T) {
	store := newMockStore()
	svc := newTestService(store)
	ctx := context.Background()

	cause := errors.New("connection lost")
	store.failErr = cause

	var se *StorageError

	_, err := svc.Create(ctx, validCreate())
	require.ErrorAs(t, err, &se)
	assert.ErrorIs(t, se, cause)

	_, err = svc.GetAll(ctx)
	assert.ErrorAs(t, err, &se)

	_, err = svc.GetByID(ctx, uuid.NewString())
	assert.ErrorAs(t, err, &se)

	_, err = svc.Update(ctx, uuid.NewString(), model.ItemUpdate{Price: strptr("1")})
	assert.ErrorAs(t, err, &se)

	err = svc.Delete(ctx, uuid.NewString())
	assert.ErrorAs(t, err, &se)
}
