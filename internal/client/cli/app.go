package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/authshell/internal/client/client"
	"github.com/dmitrijs2005/authshell/internal/client/config"
	"github.com/dmitrijs2005/authshell/internal/client/guard"
	"github.com/dmitrijs2005/authshell/internal/client/preferences"
	"github.com/dmitrijs2005/authshell/internal/client/session"
	"github.com/dmitrijs2005/authshell/internal/client/storage"
	"github.com/dmitrijs2005/authshell/internal/logging"
)

type Mode string

const (
	ModeLocal   Mode = "local"
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

var mockTokenSecret = []byte("authshell-mock-secret")

type App struct {
	config *config.Config
	store  *session.Store
	prefs  *preferences.Preferences
	guard  *guard.Guard
	pinger client.Pinger
	logger logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu       sync.Mutex
	location string
	mode     Mode
	last     session.State

	closers []io.Closer
}

// NewApp opens the session storage and builds the authenticator selected by
// c.RemoteMode.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	st, db, err := storage.Open(ctx, c.StoragePath, c.EncryptionKey, logger.With("module", "storage"))
	if err != nil {
		return nil, fmt.Errorf("error initializing storage: %w", err)
	}
	closers := []io.Closer{db}

	var (
		auth   client.Authenticator
		pinger client.Pinger
		mode   = ModeLocal
	)
	switch c.RemoteMode {
	case config.RemoteModeGRPC:
		gc, err := client.NewGRPCClient(c.ServerEndpointAddr)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		auth, pinger, mode = gc, gc, ModeOffline
		closers = append(closers, gc)
	default:
		auth = client.NewMockAuthenticator(c.MockLatency, mockTokenSecret)
	}

	a := newApp(session.New(auth, st, logger), preferences.New(st), pinger, os.Stdin, os.Stdout, logger)
	a.config = c
	a.mode = mode
	a.closers = closers
	return a, nil
}

func newApp(store *session.Store, prefs *preferences.Preferences, pinger client.Pinger, in io.Reader, out io.Writer, logger logging.Logger) *App {
	a := &App{
		store:    store,
		prefs:    prefs,
		pinger:   pinger,
		logger:   logger.With("module", "cli"),
		reader:   bufio.NewReader(in),
		out:      out,
		location: "/",
		mode:     ModeLocal,
	}
	a.guard = guard.New(guard.DefaultRoutes(), a, logger)
	return a
}

// Location implements guard.Navigator.
func (a *App) Location() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.location
}

// Replace implements guard.Navigator.
func (a *App) Replace(path string) {
	a.mu.Lock()
	a.location = path
	a.mu.Unlock()
	fmt.Fprintf(a.out, "-> %s\n", path)
}

func (a *App) isLoggedIn() bool {
	return a.store.State().IsAuthenticated
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

// render prints what a user would see change on screen.
func (a *App) render(st session.State) {
	a.mu.Lock()
	prev := a.last
	a.last = st
	a.mu.Unlock()

	if st.IsLoading && !prev.IsLoading {
		fmt.Fprintln(a.out, "...")
	}
	if st.Error != "" && st.Error != prev.Error {
		fmt.Fprintf(a.out, "Error: %s\n", st.Error)
	}
}

func (a *App) getStatus() string {
	s := string(a.currentMode())
	if st := a.store.State(); st.User != nil {
		s = st.User.Username + " " + s
	}
	return fmt.Sprintf("(%s) %s", s, a.Location())
}

// Run restores the session, attaches the guard and blocks in the REPL until
// the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to authshell (type 'help' for commands)")

	unsubscribe := a.store.Subscribe(a.render)
	defer unsubscribe()

	a.store.Initialize(ctx)
	detach := a.guard.Attach(ctx, a.store)
	defer detach()

	if a.pinger != nil && a.config != nil {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i].Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// StartOnlineStatusWatcher pings the server every interval and reports
// online/offline transitions until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.pinger.Ping(pingCtx)
			cancel()

			if err != nil {
				a.logger.Debug(ctx, "ping failed", "error", err)
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
