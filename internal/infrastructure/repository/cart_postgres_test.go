package repository_test

import (
	"context"
	"testing"
	"time"

	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/repository"
	"coursehub/internal/infrastructure/repository/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRoundTripKeepsSnapshot(t *testing.T) {
	repo := repository.NewCartRepository(testutil.DB(t))
	ctx := context.Background()
	user := uuid.New()

	_, err := repo.GetByUserID(ctx, user)
	assert.ErrorIs(t, err, domain.ErrCartNotFound)

	cart := &domain.Cart{UserID: user}
	cart.Add(domain.CourseSnapshot{CourseID: "c1", Title: "Go", Price: 49.5, Duration: "6h", ImageURL: "https://img/c1"}, time.Now())
	require.NoError(t, repo.Save(ctx, cart))

	cart.Add(domain.CourseSnapshot{CourseID: "c1"}, time.Now())
	require.NoError(t, repo.Save(ctx, cart))

	got, err := repo.GetByUserID(ctx, user)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, 49.5, got.Items[0].Price)
	assert.Equal(t, "https://img/c1", got.Items[0].ImageURL)
}

func TestWishlistSaveEmptyItems(t *testing.T) {
	repo := repository.NewWishlistRepository(testutil.DB(t))
	ctx := context.Background()
	user := uuid.New()

	require.NoError(t, repo.Save(ctx, &domain.Wishlist{UserID: user}))
	got, err := repo.GetByUserID(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}
