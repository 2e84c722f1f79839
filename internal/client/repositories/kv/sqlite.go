package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authshell/internal/client/migrations"
	"github.com/dmitrijs2005/authshell/internal/common"
	"github.com/dmitrijs2005/authshell/internal/dbx"
	"github.com/pressly/goose/v3"
)

const (
	NamespaceStandard = "standard"
	NamespaceSecure   = "secure"
)

// Migrate applies the embedded schema migrations to db.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

type SQLiteRepository struct {
	db        *sql.DB
	namespace string
}

func NewSQLiteRepository(db *sql.DB, namespace string) *SQLiteRepository {
	return &SQLiteRepository{db: db, namespace: namespace}
}

func (r *SQLiteRepository) Namespace() string {
	return r.namespace
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE namespace = ? AND key = ?`, r.namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s[%s]: %w", r.namespace, key, err)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (namespace, key, value, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, r.namespace, key, value)
	if err != nil {
		return fmt.Errorf("failed to set %s[%s]: %w", r.namespace, key, err)
	}
	return nil
}

// Delete removes the given keys in one transaction. Missing keys are ignored.
func (r *SQLiteRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM kv WHERE namespace = ? AND key = ?`, r.namespace, key); err != nil {
				return fmt.Errorf("failed to delete %s[%s]: %w", r.namespace, key, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key FROM kv WHERE namespace = ? ORDER BY key`, r.namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s keys: %w", r.namespace, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan %s key: %w", r.namespace, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s keys: %w", r.namespace, err)
	}
	return keys, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE namespace = ?`, r.namespace)
	if err != nil {
		return fmt.Errorf("failed to clear %s: %w", r.namespace, err)
	}
	return nil
}
