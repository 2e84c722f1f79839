// Package repomanager vends the repositories the authenticator server runs on.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authshell/internal/dbx"
	"github.com/dmitrijs2005/authshell/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/authshell/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
