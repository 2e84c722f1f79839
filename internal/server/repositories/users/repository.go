// Package users stores authenticator accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/authshell/internal/server/models"
)

// Repository persists accounts. Lookups of unknown accounts return
// common.ErrorNotFound; creating a taken username returns
// common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
