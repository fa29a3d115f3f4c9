package repository_test

import (
	"context"
	"testing"

	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/repository"
	"coursehub/internal/infrastructure/repository/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryUniqueEmail(t *testing.T) {
	repo := repository.NewUserRepository(testutil.DB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Email: "a@x.com", Username: "a1"}))
	err := repo.Create(ctx, &domain.User{Email: "a@x.com", Username: "a2"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestUserRepositoryLookups(t *testing.T) {
	repo := repository.NewUserRepository(testutil.DB(t))
	ctx := context.Background()

	u := &domain.User{Email: "b@x.com", Username: "bee"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEqual(t, uuid.Nil, u.ID)

	byName, err := repo.GetByLogin(ctx, "bee")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)
	assert.Equal(t, "English", byName.Language)
	assert.Equal(t, "UTC", byName.Timezone)

	byEmail, err := repo.GetByLogin(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	exists, err := repo.ExistsByEmailOrUsername(ctx, "other@x.com", "bee")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, repo.UpdateProfilePic(ctx, u.ID, "https://cdn/x.png"))
	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/x.png", got.ProfilePic)

	assert.ErrorIs(t, repo.UpdateProfilePic(ctx, uuid.New(), "u"), domain.ErrUserNotFound)
}
