package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/dmitrijs2005/authshell/internal/client/client"
	"github.com/dmitrijs2005/authshell/internal/client/models"
	"github.com/dmitrijs2005/authshell/internal/client/storage"
	"github.com/dmitrijs2005/authshell/internal/common"
	"github.com/dmitrijs2005/authshell/internal/logging"
)

// Persister is the part of the persistence adapter the store relies on.
type Persister interface {
	GetString(ctx context.Context, key, fallback string) string
	LookupString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string) error
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any) error
	RemoveItem(ctx context.Context, keys ...string) error
}

const (
	msgRestoreFailed = "failed to restore session"
	msgSaveFailed    = "failed to save session"
)

var sessionKeys = []string{storage.KeyAuthToken, storage.KeyRefreshToken, storage.KeyUserData}

type phase int

const (
	phaseUninitialized phase = iota
	phaseInitializing
	phaseInitialized
)

type Store struct {
	auth    client.Authenticator
	persist Persister
	logger  logging.Logger

	// commitMu serializes commits so observers see them in order.
	commitMu sync.Mutex

	mu        sync.Mutex
	state     State
	phase     phase
	observers map[int]func(State)
	nextID    int
}

func New(auth client.Authenticator, persist Persister, logger logging.Logger) *Store {
	return &Store{
		auth:      auth,
		persist:   persist,
		logger:    logger.With("module", "session"),
		observers: make(map[int]func(State)),
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn for every future commit and returns a function that
// removes it. fn runs on the committing goroutine and must not call store
// operations synchronously.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) commit(change func(State) State) {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	s.state = change(s.state.clone()).normalized()
	snapshot := s.state
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(State), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.observers[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot.clone())
	}
}

func (s *Store) startLoading() {
	s.commit(func(st State) State {
		st.IsLoading = true
		st.Error = ""
		return st
	})
}

func (s *Store) fail(msg string) {
	s.commit(func(st State) State {
		st.IsLoading = false
		st.Error = msg
		return st
	})
}

func (s *Store) clearSession(ctx context.Context) {
	if err := s.persist.RemoveItem(ctx, sessionKeys...); err != nil {
		s.logger.Error(ctx, "failed to remove persisted session", "error", err)
	}
}

// Initialize restores the persisted session. Only the first call does
// anything; later calls return immediately without touching storage.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	if s.phase != phaseUninitialized {
		s.mu.Unlock()
		return
	}
	s.phase = phaseInitializing
	s.mu.Unlock()

	s.commit(func(st State) State {
		st.IsLoading = true
		return st
	})

	token, _, tokenErr := s.persist.LookupString(ctx, storage.KeyAuthToken)
	var user models.User
	found, userErr := s.persist.GetJSON(ctx, storage.KeyUserData, &user)
	err := errors.Join(tokenErr, userErr)

	next := State{Initialized: true}
	switch {
	case err != nil:
		s.logger.Error(ctx, msgRestoreFailed, "error", err)
		s.clearSession(ctx)
		next.Error = msgRestoreFailed
	case token != "" && found && user.Valid():
		next.User = &user
		s.logger.Info(ctx, "session restored", "user", user.Username)
	case token != "" || found:
		s.logger.Warn(ctx, "incomplete persisted session discarded", "token", token != "", "user", found)
		s.clearSession(ctx)
	default:
		s.logger.Debug(ctx, "no persisted session")
	}

	s.mu.Lock()
	s.phase = phaseInitialized
	s.mu.Unlock()

	s.commit(func(State) State { return next })
}

// persistSession writes token, refresh token and user as separate writes.
func (s *Store) persistSession(ctx context.Context, res *models.AuthResult) error {
	if err := s.persist.SetString(ctx, storage.KeyAuthToken, res.Token); err != nil {
		return err
	}
	if res.RefreshToken != "" {
		if err := s.persist.SetString(ctx, storage.KeyRefreshToken, res.RefreshToken); err != nil {
			return err
		}
	}
	return s.persist.SetJSON(ctx, storage.KeyUserData, res.User)
}

func (s *Store) authenticated(ctx context.Context, res *models.AuthResult) bool {
	if err := s.persistSession(ctx, res); err != nil {
		s.logger.Error(ctx, "failed to persist session", "error", err)
		s.clearSession(ctx)
		s.commit(func(st State) State {
			return State{Initialized: st.Initialized, Error: msgSaveFailed}
		})
		return false
	}

	user := res.User
	s.commit(func(st State) State {
		return State{User: &user, Initialized: st.Initialized}
	})
	return true
}

// Login authenticates with the remote authenticator and persists the session.
func (s *Store) Login(ctx context.Context, creds models.LoginCredentials) bool {
	s.startLoading()

	res, err := s.auth.Login(ctx, creds)
	if err != nil {
		s.logger.Info(ctx, "login failed", "user", creds.Username, "error", err)
		s.fail(err.Error())
		return false
	}

	if !s.authenticated(ctx, res) {
		return false
	}
	s.logger.Info(ctx, "logged in", "user", res.User.Username)
	return true
}

// Register validates creds locally, then creates the account remotely and
// signs in as the new user.
func (s *Store) Register(ctx context.Context, creds models.RegisterCredentials) bool {
	s.startLoading()

	if utf8.RuneCountInString(creds.Username) < common.MinUsernameLength {
		s.fail(common.ErrorUsernameTooShort.Error())
		return false
	}
	if creds.Password != creds.ConfirmPassword {
		s.fail(common.ErrorPasswordsMismatch.Error())
		return false
	}

	res, err := s.auth.Register(ctx, creds)
	if err != nil {
		s.logger.Info(ctx, "registration failed", "user", creds.Username, "error", err)
		s.fail(err.Error())
		return false
	}

	if !s.authenticated(ctx, res) {
		return false
	}
	s.logger.Info(ctx, "registered", "user", res.User.Username)
	return true
}

// Logout always ends the local session. The remote call is best-effort.
func (s *Store) Logout(ctx context.Context) {
	s.commit(func(st State) State {
		st.IsLoading = true
		return st
	})

	token := s.persist.GetString(ctx, storage.KeyAuthToken, "")
	if err := s.auth.Logout(ctx, token); err != nil {
		s.logger.Warn(ctx, "remote logout failed", "error", err)
	}

	s.clearSession(ctx)

	s.commit(func(st State) State {
		return State{Initialized: st.Initialized}
	})
	s.logger.Info(ctx, "logged out")
}

// ForgotPassword asks the authenticator to start a password reset. It does
// not change who is signed in.
func (s *Store) ForgotPassword(ctx context.Context, email string) bool {
	s.startLoading()

	ok, err := s.auth.ForgotPassword(ctx, email)
	if err != nil {
		s.fail(err.Error())
		return false
	}

	s.commit(func(st State) State {
		st.IsLoading = false
		return st
	})
	return ok
}

func (s *Store) ClearError() {
	s.commit(func(st State) State {
		st.Error = ""
		return st
	})
}
