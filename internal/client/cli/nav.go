package cli

import (
	"context"
	"fmt"
)

// Go moves to path as a user tap would; the guard may replace it right away.
func (a *App) Go(ctx context.Context, path string) error {
	a.mu.Lock()
	a.location = path
	a.mu.Unlock()

	a.guard.LocationChanged(ctx)
	return nil
}

func (a *App) Where(ctx context.Context) error {
	fmt.Fprintln(a.out, a.Location())
	return nil
}

func (a *App) Dismiss(ctx context.Context) error {
	a.store.ClearError()
	return nil
}
