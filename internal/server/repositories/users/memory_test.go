package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/authshell/internal/common"
	"github.com/dmitrijs2005/authshell/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	u, err := r.Create(ctx, alice())
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = r.Create(ctx, alice())
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := r.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// returned records are copies
	got.Verifier[0] = 'X'
	again, _ := r.GetUserByLogin(ctx, "alice")
	assert.Equal(t, []byte("verifier"), again.Verifier)

	byEmail, err := r.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", byEmail.UserName)

	_, err = r.GetUserByLogin(ctx, "bob")
	require.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.GetUserByEmail(ctx, "bob@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_KeepsPresetID(t *testing.T) {
	r := NewMemoryRepository()
	u, err := r.Create(context.Background(), &models.User{ID: "1", UserName: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)
}
