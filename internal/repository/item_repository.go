// Package repository contains data access logic separated from HTTP
// handlers. This file implements the item repository: parameterized CRUD
// statements against the items table. Ids are UUIDv4 strings generated here
// at insert time; every other column is written verbatim.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to match sentinel values like sql.ErrNoRows
	"strings"      // strings joins the dynamic SET clause of partial updates

	"github.com/google/uuid"

	"github.com/alicemeyer/items-api/internal/model"
)

// ItemRepo encapsulates all database queries related to items. It depends
// on a sql.DB connection pool which is configured at startup and shared by
// every request; each call checks a connection out of the pool only for the
// duration of the statement.
type ItemRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewItemRepo constructs an ItemRepo with the provided DB handle. This
// allows dependency injection of the database in tests and at startup.
func NewItemRepo(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// Create inserts a new item. The ID field is assigned a fresh UUID before
// the INSERT so the caller receives a fully populated record on success.
func (r *ItemRepo) Create(ctx context.Context, it *model.Item) error {
	it.ID = uuid.NewString()
	const q = "INSERT INTO items (id, user_id, name, price) VALUES (?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, q, it.ID, it.UserID, it.Name, it.Price)
	return err
}

// GetByID fetches a single item by its id. It returns ErrItemNotFound if no
// row matches.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	const q = "SELECT id, user_id, name, price FROM items WHERE id = ?"
	var it model.Item
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&it.ID, &it.UserID, &it.Name, &it.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &it, nil
}

// List returns every stored item ordered by id. An empty table yields an
// empty slice, not an error.
func (r *ItemRepo) List(ctx context.Context) ([]*model.Item, error) {
	const q = "SELECT id, user_id, name, price FROM items ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Item
	for rows.Next() {
		it := new(model.Item)
		if err := rows.Scan(&it.ID, &it.UserID, &it.Name, &it.Price); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update merges the supplied patch fields into the stored item and returns
// the fully merged record. The row is read with FOR UPDATE and rewritten in
// the same transaction so concurrent writers never observe a partial merge.
// Callers must pass a non-empty patch; the service layer rejects empty
// patches before reaching storage. Returns ErrItemNotFound when the id does
// not match any row.
func (r *ItemRepo) Update(ctx context.Context, id string, patch model.ItemUpdate) (*model.Item, error) {
	if patch.IsEmpty() {
		return nil, errors.New("repository: empty patch")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	// Lock the current row so the merge is computed against a stable state.
	var it model.Item
	const qSelect = "SELECT id, user_id, name, price FROM items WHERE id = ? FOR UPDATE"
	if err = tx.QueryRowContext(ctx, qSelect, id).Scan(&it.ID, &it.UserID, &it.Name, &it.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrItemNotFound
		}
		return nil, err
	}

	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if patch.UserID != nil {
		sets = append(sets, "user_id = ?")
		args = append(args, *patch.UserID)
	}
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *patch.Price)
	}
	args = append(args, id)

	q := "UPDATE items SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err = tx.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}

	patch.Apply(&it)
	return &it, nil
}

// Delete removes the item with the given id. It returns ErrItemNotFound
// when no row was deleted.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	const q = "DELETE FROM items WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Ping verifies the database connection, for the liveness endpoint.
func (r *ItemRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
