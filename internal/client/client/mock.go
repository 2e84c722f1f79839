package client

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/authshell/internal/auth"
	"github.com/dmitrijs2005/authshell/internal/client/models"
	"github.com/dmitrijs2005/authshell/internal/common"
	"github.com/google/uuid"
)

const (
	MockUsername = "admin"
	MockPassword = "password"

	mockTokenTTL = 24 * time.Hour
)

// MockAuthenticator answers like a remote provider without any network.
// Every call waits for the configured latency first.
type MockAuthenticator struct {
	latency time.Duration
	secret  []byte
	now     func() time.Time
}

func NewMockAuthenticator(latency time.Duration, secret []byte) *MockAuthenticator {
	return &MockAuthenticator{latency: latency, secret: secret, now: time.Now}
}

func (m *MockAuthenticator) wait(ctx context.Context) error {
	if m.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(m.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MockAuthenticator) issue(user models.User) (*models.AuthResult, error) {
	token, err := auth.GenerateToken(user.ID, user.Username, m.secret, mockTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, err
	}
	return &models.AuthResult{User: user, Token: token, RefreshToken: refresh}, nil
}

func mockAdmin() models.User {
	return models.User{
		ID:              "1",
		Username:        MockUsername,
		Email:           "admin@example.com",
		FirstName:       "Admin",
		LastName:        "User",
		Role:            "admin",
		IsEmailVerified: true,
		CreatedAt:       "2024-01-01T00:00:00Z",
		UpdatedAt:       "2024-01-01T00:00:00Z",
	}
}

func (m *MockAuthenticator) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResult, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	if creds.Username != MockUsername || creds.Password != MockPassword {
		return nil, ErrInvalidCredentials
	}
	return m.issue(mockAdmin())
}

func (m *MockAuthenticator) Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResult, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	if creds.Username == MockUsername {
		return nil, rejected("username is already taken")
	}

	now := m.now().UTC().Format(time.RFC3339)
	return m.issue(models.User{
		ID:        uuid.NewString(),
		Username:  creds.Username,
		Email:     creds.Email,
		FirstName: creds.FirstName,
		LastName:  creds.LastName,
		Role:      "user",
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (m *MockAuthenticator) Logout(ctx context.Context, token string) error {
	return m.wait(ctx)
}

// ForgotPassword only checks that email contains an "@".
func (m *MockAuthenticator) ForgotPassword(ctx context.Context, email string) (bool, error) {
	if err := m.wait(ctx); err != nil {
		return false, err
	}
	if !strings.Contains(email, "@") {
		return false, common.ErrorInvalidEmail
	}
	return true, nil
}
