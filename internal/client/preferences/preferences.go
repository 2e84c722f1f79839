// Package preferences stores user-facing settings that outlive a session.
package preferences

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authshell/internal/client/models"
	"github.com/dmitrijs2005/authshell/internal/client/storage"
	"github.com/dmitrijs2005/authshell/internal/common"
)

type Store interface {
	GetString(ctx context.Context, key, fallback string) string
	SetString(ctx context.Context, key, value string) error
	GetItem(ctx context.Context, key string, fallback any) any
	SetItem(ctx context.Context, key string, value any) error
}

type Preferences struct {
	store Store
}

func New(store Store) *Preferences {
	return &Preferences{store: store}
}

// Theme returns the stored mode, or ThemeSystem when nothing valid is stored.
func (p *Preferences) Theme(ctx context.Context) models.ThemeMode {
	m := models.ThemeMode(p.store.GetString(ctx, storage.KeyThemeMode, string(models.ThemeSystem)))
	if !m.Valid() {
		return models.ThemeSystem
	}
	return m
}

func (p *Preferences) SetTheme(ctx context.Context, mode models.ThemeMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", common.ErrorInvalidThemeMode, mode)
	}
	return p.store.SetString(ctx, storage.KeyThemeMode, string(mode))
}

// BiometricEnabled defaults to false.
func (p *Preferences) BiometricEnabled(ctx context.Context) bool {
	v, _ := p.store.GetItem(ctx, storage.KeyBiometricEnabled, false).(bool)
	return v
}

func (p *Preferences) SetBiometricEnabled(ctx context.Context, enabled bool) error {
	return p.store.SetItem(ctx, storage.KeyBiometricEnabled, enabled)
}
