package guard

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/authshell/internal/client/client"
	"github.com/dmitrijs2005/authshell/internal/client/models"
	"github.com/dmitrijs2005/authshell/internal/client/session"
	"github.com/dmitrijs2005/authshell/internal/client/storage"
	"github.com/dmitrijs2005/authshell/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNav records replace calls.
type fakeNav struct {
	location string
	replaced []string
}

func (n *fakeNav) Location() string { return n.location }

func (n *fakeNav) Replace(path string) {
	n.replaced = append(n.replaced, path)
	n.location = path
}

type ctxKey struct{}

// ctxLogger records the context value under ctxKey for every Debug call.
type ctxLogger struct {
	seen []any
}

func (l *ctxLogger) Debug(ctx context.Context, _ string, _ ...any) {
	l.seen = append(l.seen, ctx.Value(ctxKey{}))
}
func (l *ctxLogger) Info(context.Context, string, ...any) {}
func (l *ctxLogger) Warn(context.Context, string, ...any) {}
func (l *ctxLogger) Error(context.Context, string, ...any) {}
func (l *ctxLogger) With(...any) logging.Logger { return l }

func TestGuard_LogsWithCallerContext(t *testing.T) {
	ctx := context.Background()
	st, closer, err := storage.Open(ctx, storage.MemoryDSN, "pass", logging.Discard())
	require.NoError(t, err)
	defer closer.Close()

	store := session.New(client.NewMockAuthenticator(0, []byte("secret")), st, logging.Discard())
	nav := &fakeNav{location: "/(tabs)/home"}
	log := &ctxLogger{}
	g := New(DefaultRoutes(), nav, log)

	detach := g.Attach(context.WithValue(ctx, ctxKey{}, "attach"), store)
	defer detach()
	require.True(t, store.Login(ctx, models.LoginCredentials{Username: "admin", Password: "password"}))

	nav.location = "/(auth)/sign-up"
	g.LocationChanged(context.WithValue(ctx, ctxKey{}, "navigate"))

	assert.Equal(t, []any{"attach", "attach", "navigate"}, log.seen)
	assert.Equal(t, []string{"/(auth)/sign-in", "/(tabs)/home", "/(tabs)/home"}, nav.replaced)
}

func TestGuard_Evaluate(t *testing.T) {
	nav := &fakeNav{location: "/(tabs)/home"}
	g := New(DefaultRoutes(), nav, logging.Discard())

	g.Evaluate(context.Background(), session.State{})
	assert.Equal(t, []string{"/(auth)/sign-in"}, nav.replaced)

	user := &models.User{ID: "1", Username: "admin"}
	g.Evaluate(context.Background(), session.State{User: user, IsAuthenticated: true})
	assert.Equal(t, []string{"/(auth)/sign-in", "/(tabs)/home"}, nav.replaced)
}

func TestGuard_LoadingHoldsPosition(t *testing.T) {
	nav := &fakeNav{location: "/(tabs)/home"}
	g := New(DefaultRoutes(), nav, logging.Discard())

	g.Evaluate(context.Background(), session.State{IsLoading: true})
	assert.Empty(t, nav.replaced)
}

func TestGuard_LocationChanged(t *testing.T) {
	nav := &fakeNav{location: "/(tabs)/home"}
	g := New(DefaultRoutes(), nav, logging.Discard())
	g.Evaluate(context.Background(), session.State{User: &models.User{ID: "1", Username: "a"}, IsAuthenticated: true})
	require.Empty(t, nav.replaced)

	nav.location = "/(auth)/sign-in"
	g.LocationChanged(context.Background())
	assert.Equal(t, []string{"/(tabs)/home"}, nav.replaced)

	nav.location = "/settings"
	g.LocationChanged(context.Background())
	assert.Len(t, nav.replaced, 1)
}

func TestGuard_FollowsStore(t *testing.T) {
	ctx := context.Background()
	st, closer, err := storage.Open(ctx, storage.MemoryDSN, "pass", logging.Discard())
	require.NoError(t, err)
	defer closer.Close()

	store := session.New(client.NewMockAuthenticator(0, []byte("secret")), st, logging.Discard())
	nav := &fakeNav{location: "/(tabs)/home"}
	g := New(DefaultRoutes(), nav, logging.Discard())

	detach := g.Attach(ctx, store)
	defer detach()
	assert.Equal(t, []string{"/(auth)/sign-in"}, nav.replaced)

	store.Initialize(ctx)
	assert.Len(t, nav.replaced, 1)

	require.True(t, store.Login(ctx, models.LoginCredentials{Username: "admin", Password: "password"}))
	assert.Equal(t, "/(tabs)/home", nav.location)

	store.Logout(ctx)
	assert.Equal(t, "/(auth)/sign-in", nav.location)
	assert.Equal(t, []string{"/(auth)/sign-in", "/(tabs)/home", "/(auth)/sign-in"}, nav.replaced)
}
