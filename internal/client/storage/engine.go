package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authshell/internal/cryptox"
)

// Engine is one namespace of the embedded storage engine.
// Get must return common.ErrorNotFound for a missing key.
type Engine interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

// EncryptedEngine seals values with AES-GCM before handing them to the
// wrapped engine. Keys are stored as-is.
type EncryptedEngine struct {
	inner Engine
	key   []byte
}

func NewEncryptedEngine(inner Engine, key []byte) *EncryptedEngine {
	return &EncryptedEngine{inner: inner, key: key}
}

func (e *EncryptedEngine) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := e.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	plain, err := cryptox.Open(e.key, sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt %s: %w", key, err)
	}
	return plain, nil
}

func (e *EncryptedEngine) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := cryptox.Seal(e.key, value)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s: %w", key, err)
	}
	return e.inner.Set(ctx, key, sealed)
}

func (e *EncryptedEngine) Delete(ctx context.Context, keys ...string) error {
	return e.inner.Delete(ctx, keys...)
}

func (e *EncryptedEngine) Keys(ctx context.Context) ([]string, error) {
	return e.inner.Keys(ctx)
}

func (e *EncryptedEngine) Clear(ctx context.Context) error {
	return e.inner.Clear(ctx)
}
