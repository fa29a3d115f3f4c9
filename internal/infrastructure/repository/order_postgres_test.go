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

func TestOrderListByUserNewestFirst(t *testing.T) {
	repo := repository.NewOrderRepository(testutil.DB(t))
	ctx := context.Background()
	user := uuid.New()
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	require.NoError(t, repo.Create(ctx, &domain.Order{OrderID: 1, UserID: user, PaymentDate: t1, Status: domain.OrderStatusSuccess,
		Courses: []domain.OrderCourse{{CourseID: "c1", Title: "Go", Price: 10}}}))
	require.NoError(t, repo.Create(ctx, &domain.Order{OrderID: 2, UserID: user, PaymentDate: t2, Status: domain.OrderStatusSuccess}))
	require.NoError(t, repo.Create(ctx, &domain.Order{OrderID: 3, UserID: uuid.New(), PaymentDate: t2}))

	orders, err := repo.ListByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].OrderID)
	assert.Equal(t, int64(1), orders[1].OrderID)
	assert.Equal(t, "Go", orders[1].Courses[0].Title)
}

func TestOrderIdempotencyKeyLookup(t *testing.T) {
	repo := repository.NewOrderRepository(testutil.DB(t))
	ctx := context.Background()
	key := "pay_123"

	_, err := repo.GetByIdempotencyKey(ctx, key)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	require.NoError(t, repo.Create(ctx, &domain.Order{OrderID: 7, UserID: uuid.New(), IdempotencyKey: &key}))
	got, err := repo.GetByIdempotencyKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.OrderID)

	err = repo.Create(ctx, &domain.Order{OrderID: 8, UserID: uuid.New(), IdempotencyKey: &key})
	assert.Error(t, err, "idempotency key is unique")
}

func TestOrdersForUnknownUserIsEmptyList(t *testing.T) {
	repo := repository.NewOrderRepository(testutil.DB(t))
	orders, err := repo.ListByUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
