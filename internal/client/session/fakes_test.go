package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/dmitrijs2005/authshell/internal/client/models"
)

/*************
 * Fake persister
 *************/

type fakePersister struct {
	mu   sync.Mutex
	data map[string]string

	// failures preset
	getErr    error
	setErr    error
	removeErr error
	failSetOn string

	// calls recorded
	reads   int
	writes  []string
	removed [][]string
}

func newFakePersister() *fakePersister {
	return &fakePersister{data: make(map[string]string)}
}

func (f *fakePersister) GetString(_ context.Context, key, fallback string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if v, ok := f.data[key]; ok {
		return v
	}
	return fallback
}

func (f *fakePersister) LookupString(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakePersister) SetString(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil && (f.failSetOn == "" || f.failSetOn == key) {
		return f.setErr
	}
	f.writes = append(f.writes, key)
	f.data[key] = value
	return nil
}

func (f *fakePersister) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.getErr != nil {
		return false, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(v), dst); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakePersister) SetJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return f.SetString(ctx, key, string(b))
}

func (f *fakePersister) RemoveItem(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, keys)
	if f.removeErr != nil {
		return f.removeErr
	}
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakePersister) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok
}

/*************
 * Fake authenticator
 *************/

type fakeAuth struct {
	mu sync.Mutex

	// inputs captured
	loginCalls    int
	registerCalls int
	logoutCalls   int
	forgotCalls   int
	lastToken     string
	lastEmail     string

	// outputs preset
	result    *models.AuthResult
	loginErr  error
	regErr    error
	logoutErr error
	forgotOK  bool
	forgotErr error
}

func (f *fakeAuth) Login(_ context.Context, _ models.LoginCredentials) (*models.AuthResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	return f.result, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, _ models.RegisterCredentials) (*models.AuthResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerCalls++
	return f.result, f.regErr
}

func (f *fakeAuth) Logout(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	f.lastToken = token
	return f.logoutErr
}

func (f *fakeAuth) ForgotPassword(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forgotCalls++
	f.lastEmail = email
	return f.forgotOK, f.forgotErr
}

var errBoom = errors.New("boom")

func testResult() *models.AuthResult {
	return &models.AuthResult{
		User:         models.User{ID: "7", Username: "jane", Email: "jane@example.com"},
		Token:        "tok-7",
		RefreshToken: "ref-7",
	}
}
