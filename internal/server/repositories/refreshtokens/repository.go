// Package refreshtokens stores refresh tokens issued at login and register.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/authshell/internal/server/models"
)

type Repository interface {
	// Create stores token for userID expiring at now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns common.ErrorNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete and DeleteByUser succeed when nothing matches.
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID string) error
}
