package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/models"
)

func newTestUserRepo(t *testing.T) UserRepository {
	t.Helper()
	return NewUserRepository(NewMemoryStorage(), logger.Nop())
}

func storedUser(id, email, password string, role models.Role) models.StoredUser {
	return models.StoredUser{
		User: models.User{
			ID:        id,
			Name:      "Test User",
			Email:     email,
			Role:      role,
			CreatedAt: time.Now(),
		},
		Password: password,
	}
}

func TestInitialize_SeedsAdminOnce(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Initialize(ctx))
	require.NoError(t, repo.Initialize(ctx))

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, SeedAdminID, users[0].ID)
	assert.Equal(t, SeedAdminEmail, users[0].Email)
	assert.Equal(t, SeedAdminPassword, users[0].Password)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
}

func TestInitialize_DoesNotOverwriteExistingCollection(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Initialize(ctx))
	require.NoError(t, repo.Create(ctx, storedUser("u-1", "doc@clinic.org", "pw", models.RoleDoctor)))

	require.NoError(t, repo.Initialize(ctx))

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestFindByCredentials_CaseInsensitiveEmail(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, storedUser("u-1", "Doc@Clinic.org", "secret", models.RoleDoctor)))

	found, err := repo.FindByCredentials(ctx, "doc@clinic.ORG", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u-1", found.ID)
}

func TestFindByCredentials_ExactPassword(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, storedUser("u-1", "doc@clinic.org", "secret", models.RoleDoctor)))

	_, err := repo.FindByCredentials(ctx, "doc@clinic.org", "SECRET")
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestExistsByEmail_CaseInsensitive(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, storedUser("u-1", "doc@clinic.org", "pw", models.RoleDoctor)))

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "exact", email: "doc@clinic.org", want: true},
		{name: "upper", email: "DOC@CLINIC.ORG", want: true},
		{name: "mixed", email: "Doc@Clinic.Org", want: true},
		{name: "absent", email: "other@clinic.org", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ExistsByEmail(ctx, tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetBlocked_TogglesFlag(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, storedUser("u-1", "doc@clinic.org", "pw", models.RoleDoctor)))

	require.NoError(t, repo.SetBlocked(ctx, "u-1", true))
	found, err := repo.FindByCredentials(ctx, "doc@clinic.org", "pw")
	require.NoError(t, err)
	assert.True(t, found.IsBlocked)

	require.NoError(t, repo.SetBlocked(ctx, "u-1", false))
	found, err = repo.FindByCredentials(ctx, "doc@clinic.org", "pw")
	require.NoError(t, err)
	assert.False(t, found.IsBlocked)
}

func TestSetBlocked_RefusesAdmin(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Initialize(ctx))

	err := repo.SetBlocked(ctx, SeedAdminID, true)
	assert.True(t, errors.Is(err, ErrAdminImmutable))

	// record is unchanged
	admin, findErr := repo.FindByCredentials(ctx, SeedAdminEmail, SeedAdminPassword)
	require.NoError(t, findErr)
	assert.False(t, admin.IsBlocked)
}

func TestSetBlocked_UnknownID(t *testing.T) {
	repo := newTestUserRepo(t)

	err := repo.SetBlocked(context.Background(), "ghost", true)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestDelete_RemovesUser(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, storedUser("u-1", "doc@clinic.org", "pw", models.RoleDoctor)))
	require.NoError(t, repo.Delete(ctx, "u-1"))

	exists, err := repo.ExistsByEmail(ctx, "doc@clinic.org")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDelete_RefusesAdmin(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Initialize(ctx))

	err := repo.Delete(ctx, SeedAdminID)
	assert.True(t, errors.Is(err, ErrAdminImmutable))

	users, getErr := repo.GetAll(ctx)
	require.NoError(t, getErr)
	assert.Len(t, users, 1)
}

func TestUserDelete_AbsentIDIsNoop(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, storedUser("u-1", "doc@clinic.org", "pw", models.RoleDoctor)))
	require.NoError(t, repo.Delete(ctx, "ghost"))

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
