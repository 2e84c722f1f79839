package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authshell/internal/dbx"
	"github.com/dmitrijs2005/authshell/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/authshell/internal/server/repositories/users"
)

// MemoryRepositoryManager hands out the same process-local repositories
// regardless of the handle it is given. Data is lost on restart.
type MemoryRepositoryManager struct {
	users         *users.MemoryRepository
	refreshTokens *refreshtokens.MemoryRepository
}

func NewMemoryRepositoryManager() RepositoryManager {
	return &MemoryRepositoryManager{
		users:         users.NewMemoryRepository(),
		refreshTokens: refreshtokens.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return m.refreshTokens
}
