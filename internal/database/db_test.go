package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchemaIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// CREATE TABLE IF NOT EXISTS may run on every startup without error.
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS items").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS items").WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	assert.NoError(t, EnsureSchema(ctx, db))
	assert.NoError(t, EnsureSchema(ctx, db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
