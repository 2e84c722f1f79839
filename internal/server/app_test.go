package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/authshell/internal/logging"
	"github.com/dmitrijs2005/authshell/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	return c
}

func TestNewApp_MemorySeedsAdmin(t *testing.T) {
	ctx := context.Background()

	app, err := NewApp(ctx, memoryConfig(), logging.Discard())
	require.NoError(t, err)
	defer app.Close()

	s, err := app.userService.Login(ctx, "admin", "password")
	require.NoError(t, err)
	assert.Equal(t, "admin", s.User.Role)
	assert.True(t, s.User.EmailVerified)
}

func TestNewApp_NoSeed(t *testing.T) {
	ctx := context.Background()
	c := memoryConfig()
	c.SeedAdmin = false

	app, err := NewApp(ctx, c, logging.Discard())
	require.NoError(t, err)

	_, err = app.userService.Login(ctx, "admin", "password")
	require.Error(t, err)
}

func TestNewApp_OpenDBError(t *testing.T) {
	orig := openDB
	openDB = func(string) (*sql.DB, error) { return nil, errors.New("no driver") }
	t.Cleanup(func() { openDB = orig })

	c := memoryConfig()
	c.DatabaseDSN = "postgres://x"

	_, err := NewApp(context.Background(), c, logging.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig(), logging.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop")
	}
	require.NoError(t, app.Close())
}
