package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/database"
)

type txKey struct{}

// WithTransaction executes fn inside a database transaction
func WithTransaction(ctx context.Context, db *database.SQLiteDB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				slog.Error("Rollback failed during panic recovery", "error", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// ContextWithTx returns a context whose repository calls run on tx.
func ContextWithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetQuerier returns the transaction carried by ctx, or the database handle.
func GetQuerier(ctx context.Context, db *database.SQLiteDB) database.SQLQuerier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}

type transactor struct {
	db *database.SQLiteDB
}

func NewTransactor(db *database.SQLiteDB) database.Transactor {
	return &transactor{db: db}
}

// WithTransaction implements database.Transactor.
func (t *transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, t.db, func(tx *sql.Tx) error {
		return fn(ContextWithTx(ctx, tx))
	})
}

// createdAtColumn renders created_at as RFC 3339 so it scans into a string.
const createdAtColumn = "strftime('%Y-%m-%dT%H:%M:%SZ', created_at)"

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// idList encodes ids as one JSON array argument, expanded in SQL with json_each.
// A single bound value keeps large id lists under SQLite's variable limit.
func idList(ids []int64) (string, error) {
	encoded, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("failed to encode company ids: %w", err)
	}
	return string(encoded), nil
}
