package client

import (
	"context"

	"github.com/dmitrijs2005/authshell/internal/client/models"
)

// Authenticator is the remote identity provider used by the session store.
type Authenticator interface {
	Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResult, error)
	Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResult, error)
	// Logout invalidates token on the provider side. Callers treat it as best-effort.
	Logout(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) (bool, error)
}

// Pinger is implemented by authenticators that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
