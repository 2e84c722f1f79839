package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authshell/internal/common"
	"github.com/dmitrijs2005/authshell/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps accounts in process memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	byLogin map[string]*models.User
	order   []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byLogin: make(map[string]*models.User)}
}

func clone(u *models.User) *models.User {
	c := *u
	c.Salt = append([]byte(nil), u.Salt...)
	c.Verifier = append([]byte(nil), u.Verifier...)
	return &c
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byLogin[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	r.byLogin[user.UserName] = clone(user)
	r.order = append(r.order, user.UserName)
	return user, nil
}

func (r *MemoryRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byLogin[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(u), nil
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, login := range r.order {
		if u := r.byLogin[login]; u.Email == email {
			return clone(u), nil
		}
	}
	return nil, common.ErrorNotFound
}
