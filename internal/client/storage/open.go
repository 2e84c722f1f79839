package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/authshell/internal/client/repositories/kv"
	"github.com/dmitrijs2005/authshell/internal/common"
	"github.com/dmitrijs2005/authshell/internal/cryptox"
	"github.com/dmitrijs2005/authshell/internal/logging"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a throwaway database that lives as long as the process.
const MemoryDSN = ":memory:"

// Open opens (or creates) the SQLite database at dsn, applies migrations and
// returns a Storage whose secure namespace is keyed from passphrase.
// The returned io.Closer releases the database.
func Open(ctx context.Context, dsn, passphrase string, logger logging.Logger) (*Storage, io.Closer, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}
	if dsn == MemoryDSN {
		// every new connection would see an empty database
		db.SetMaxOpenConns(1)
	}

	if err := kv.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	standard := kv.NewSQLiteRepository(db, kv.NamespaceStandard)
	secure := kv.NewSQLiteRepository(db, kv.NamespaceSecure)

	key, err := secureKey(ctx, standard, passphrase)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return New(standard, NewEncryptedEngine(secure, key), logger), db, nil
}

// secureKey derives the secure-namespace key from passphrase and a per-device
// salt, creating the salt on first use.
func secureKey(ctx context.Context, standard Engine, passphrase string) ([]byte, error) {
	salt, err := standard.Get(ctx, saltKey)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		salt = common.GenerateRandByteArray(32)
		if err := standard.Set(ctx, saltKey, salt); err != nil {
			return nil, fmt.Errorf("failed to store secure salt: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read secure salt: %w", err)
	}

	pw := []byte(passphrase)
	defer common.WipeByteArray(pw)

	return cryptox.DeriveMasterKey(pw, salt), nil
}
