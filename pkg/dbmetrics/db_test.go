package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	tests := map[string]string{
		"SELECT id FROM reservations":          "select",
		"  insert INTO reservations (a)":       "insert",
		"UPDATE reservations SET status = $1":  "update",
		"DELETE FROM reservations":             "delete",
		"WITH x AS (SELECT 1) SELECT * FROM x": "other",
		"":                                     "other",
	}

	for query, want := range tests {
		assert.Equal(t, want, operation(query), query)
	}
}

type fakeTx struct{}

func (fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (fakeTx) Commit() error { return nil }
func (fakeTx) Rollback() error { return nil }

type fakeDB struct{ fakeTx }

func TestGetExecutor(t *testing.T) {
	db := fakeDB{}
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, db, GetExecutor(ctx, db))

	tx := fakeTx{}
	txCtx := WithTx(ctx, tx)

	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, db))
}
