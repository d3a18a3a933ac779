package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/models"
)

func newTestSessionRepo(t *testing.T) SessionRepository {
	t.Helper()
	return NewSessionRepository(NewMemoryStorage(), logger.Nop())
}

func TestCurrentUser_NoneStored(t *testing.T) {
	repo := newTestSessionRepo(t)

	_, err := repo.CurrentUser(context.Background())
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestSaveAndRestoreCurrentUser(t *testing.T) {
	repo := newTestSessionRepo(t)
	ctx := context.Background()

	user := models.User{ID: "u-1", Name: "Dr. Chen", Email: "chen@clinic.org", Role: models.RoleDoctor}
	require.NoError(t, repo.SaveCurrentUser(ctx, user))

	got, err := repo.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
}

func TestClearCurrentUser_Idempotent(t *testing.T) {
	repo := newTestSessionRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCurrentUser(ctx, models.User{ID: "u-1"}))
	require.NoError(t, repo.ClearCurrentUser(ctx))
	require.NoError(t, repo.ClearCurrentUser(ctx))

	_, err := repo.CurrentUser(ctx)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestToken_Lifecycle(t *testing.T) {
	repo := newTestSessionRepo(t)
	ctx := context.Background()

	token, err := repo.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, repo.SaveToken(ctx, "opaque-token"))
	token, err = repo.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)

	require.NoError(t, repo.ClearToken(ctx))
	token, err = repo.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}
