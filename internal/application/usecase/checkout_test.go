package usecase

import (
	"context"
	"sort"
	"testing"
	"time"

	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/repository/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func payment(user uuid.UUID, courses ...string) PaymentInput {
	in := PaymentInput{
		UserID:      user,
		Status:      domain.OrderStatusSuccess,
		PaymentDate: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	for _, c := range courses {
		in.Courses = append(in.Courses, PaymentCourse{CourseID: c, Title: "T " + c, Price: 20, Duration: "4h"})
		in.TotalAmount += 20
	}
	return in
}

func TestRecordPaymentCreatesOrderAndProgress(t *testing.T) {
	uc := newCheckoutUseCase(testDB(t))
	ctx := context.Background()
	user := uuid.New()

	order, created, err := uc.RecordPayment(ctx, payment(user, "c1", "c2"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(1), order.OrderID)
	assert.Len(t, order.Courses, 2)

	orders, err := uc.ListOrders(ctx, user)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 40.0, orders[0].TotalAmount)

	progress, err := uc.ListProgress(ctx, user)
	require.NoError(t, err)
	require.Len(t, progress, 2)
	for _, p := range progress {
		assert.Equal(t, domain.ProgressEnrolled, p.Status)
		assert.True(t, p.EnrolledAt.Equal(order.PaymentDate))
		assert.Equal(t, "4h", p.Duration)
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	uc := newCheckoutUseCase(testDB(t))
	ctx := context.Background()

	_, _, err := uc.RecordPayment(ctx, payment(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	in := payment(uuid.New(), "c1")
	in.Status = "pending"
	_, _, err = uc.RecordPayment(ctx, in)
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	in = payment(uuid.New(), "")
	_, _, err = uc.RecordPayment(ctx, in)
	assert.ErrorIs(t, err, domain.ErrMissingCourseID)
}

func TestRecordPaymentIdempotencyKeyReplays(t *testing.T) {
	uc := newCheckoutUseCase(testDB(t))
	ctx := context.Background()
	user := uuid.New()
	in := payment(user, "c1")
	in.IdempotencyKey = "pay_1"

	first, created, err := uc.RecordPayment(ctx, in)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := uc.RecordPayment(ctx, in)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.OrderID, second.OrderID)

	progress, err := uc.ListProgress(ctx, user)
	require.NoError(t, err)
	assert.Len(t, progress, 1, "replay does not enroll twice")

	next, _, err := uc.RecordPayment(ctx, payment(user, "c2"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.OrderID, "replay allocated no number")
}

func TestRecordPaymentConcurrentOrderNumbersAreDistinct(t *testing.T) {
	uc := newCheckoutUseCase(testDB(t))
	const n = 20

	ids := make([]int64, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			order, _, err := uc.RecordPayment(context.Background(), payment(uuid.New(), "c1"))
			if err != nil {
				return err
			}
			ids[i] = order.OrderID
			return nil
		})
	}
	require.NoError(t, g.Wait())

	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	for i, id := range ids {
		assert.Equal(t, int64(i+1), id)
	}
}

func TestRecordPaymentAbortsWhenProgressInsertFails(t *testing.T) {
	db := testDB(t)
	uc := newCheckoutUseCase(db)
	ctx := context.Background()
	user := uuid.New()
	require.NoError(t, db.Migrator().DropTable(&domain.Progress{}))

	_, _, err := uc.RecordPayment(ctx, payment(user, "c1", "c2"))
	require.Error(t, err)

	var orders int64
	require.NoError(t, db.Model(&domain.Order{}).Count(&orders).Error)
	assert.Zero(t, orders, "no order row survives the failure")

	var counter domain.Counter
	err = db.Where("name = ?", domain.OrderCounterName).First(&counter).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "no order number consumed")

	require.NoError(t, db.AutoMigrate(&domain.Progress{}))
	order, created, err := uc.RecordPayment(ctx, payment(user, "c1"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(1), order.OrderID)
}

// The shared postgres database may already hold orders, so only distinctness
// and per-order enrollment are checked here.
func TestRecordPaymentConcurrentPostgres(t *testing.T) {
	db := testutil.Postgres(t)
	uc := newCheckoutUseCase(db)
	const n = 20

	ids := make([]int64, n)
	users := make([]uuid.UUID, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		users[i] = uuid.New()
		g.Go(func() error {
			order, _, err := uc.RecordPayment(context.Background(), payment(users[i], "c1"))
			if err != nil {
				return err
			}
			ids[i] = order.OrderID
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[int64]bool, n)
	for _, id := range ids {
		assert.False(t, seen[id], "order number %d handed out twice", id)
		seen[id] = true
	}
	for _, u := range users {
		progress, err := uc.ListProgress(context.Background(), u)
		require.NoError(t, err)
		assert.Len(t, progress, 1)
	}
}
