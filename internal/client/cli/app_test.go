package cli

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/authshell/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLoggedIn_FollowsStore(t *testing.T) {
	stubPasswords(t, "password")
	a, _, _ := newTestApp(t, "admin\n")

	assert.False(t, a.isLoggedIn())
	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.isLoggedIn())
}

func TestSetMode_ChangesAndPrintsOnce(t *testing.T) {
	a, out, _ := newTestApp(t, "")

	a.setMode(ModeOnline)
	assert.Equal(t, ModeOnline, a.currentMode())
	assert.Equal(t, "Switched to online mode\n", out.String())

	out.Reset()
	a.setMode(ModeOnline)
	assert.Empty(t, out.String())

	a.setMode(ModeOffline)
	assert.Equal(t, ModeOffline, a.currentMode())
	assert.Equal(t, "Switched to offline mode\n", out.String())
}

func TestRender(t *testing.T) {
	a, out, _ := newTestApp(t, "")

	a.render(session.State{IsLoading: true})
	a.render(session.State{IsLoading: true})
	a.render(session.State{Error: "nope"})
	a.render(session.State{Error: "nope"})

	assert.Equal(t, "...\nError: nope\n", out.String())
}

func TestGo_GuardRedirects(t *testing.T) {
	stubPasswords(t, "password")
	a, out, _ := newTestApp(t, "admin\n")
	ctx := context.Background()
	detach := a.guard.Attach(ctx, a.store)
	defer detach()

	assert.Equal(t, "/(auth)/sign-in", a.Location())

	require.NoError(t, a.Go(ctx, "/(tabs)/home"))
	assert.Equal(t, "/(auth)/sign-in", a.Location())

	require.NoError(t, a.Login(ctx))
	assert.Equal(t, "/(tabs)/home", a.Location())

	require.NoError(t, a.Go(ctx, "/settings"))
	assert.Equal(t, "/settings", a.Location())

	require.NoError(t, a.Go(ctx, "/(auth)/sign-up"))
	assert.Equal(t, "/(tabs)/home", a.Location())

	out.Reset()
	require.NoError(t, a.Where(ctx))
	assert.Equal(t, "/(tabs)/home\n", out.String())
}

func TestGetStatus(t *testing.T) {
	stubPasswords(t, "password")
	a, _, _ := newTestApp(t, "admin\n")

	assert.Equal(t, "(local) /", a.getStatus())
	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "(admin local) /", a.getStatus())
}

func TestTheme(t *testing.T) {
	a, out, _ := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, a.Theme(ctx, nil))
	assert.Equal(t, "theme: system\n", out.String())

	require.NoError(t, a.Theme(ctx, []string{"dark"}))
	out.Reset()
	require.NoError(t, a.Theme(ctx, nil))
	assert.Equal(t, "theme: dark\n", out.String())

	require.Error(t, a.Theme(ctx, []string{"sepia"}))
}

func TestBiometric(t *testing.T) {
	stubPasswords(t, "password")
	a, out, _ := newTestApp(t, "admin\n")
	ctx := context.Background()

	require.Error(t, a.Biometric(ctx, []string{"on"}), "login required")

	require.NoError(t, a.Login(ctx))
	require.NoError(t, a.Biometric(ctx, []string{"on"}))
	assert.True(t, a.prefs.BiometricEnabled(ctx))

	require.Error(t, a.Biometric(ctx, []string{"maybe"}))

	out.Reset()
	require.NoError(t, a.Biometric(ctx, nil))
	assert.Equal(t, "biometric: on\n", out.String())
}

type fakePinger struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (p *fakePinger) Ping(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.err
}

func (p *fakePinger) setErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func TestOnlineStatusWatcher(t *testing.T) {
	a, _, _ := newTestApp(t, "")
	p := &fakePinger{}
	a.pinger = p
	a.mode = ModeOffline

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return a.currentMode() == ModeOnline }, time.Second, 5*time.Millisecond)

	p.setErr(errors.New("down"))
	require.Eventually(t, func() bool { return a.currentMode() == ModeOffline }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestRun_FullSession(t *testing.T) {
	capturePrints(t)
	stubPasswords(t, "password")
	a, out, _ := newTestApp(t, "login\nadmin\nwhoami\nlogout\nexit\n")

	a.Run(context.Background())

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "Welcome to authshell"))
	assert.Contains(t, s, "-> /(auth)/sign-in")
	assert.Contains(t, s, "-> /(tabs)/home")
	assert.Contains(t, s, "Admin User (admin)")
	assert.Contains(t, s, "Logged out")
	assert.False(t, a.isLoggedIn())
}
