package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/logger"
	"coursehub/internal/infrastructure/repository"
	"coursehub/internal/observability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentCourse struct {
	CourseID string
	Title    string
	Price    float64
	Duration string
}

type PaymentInput struct {
	UserID         uuid.UUID
	Courses        []PaymentCourse
	TotalAmount    float64
	Status         domain.OrderStatus
	PaymentDate    time.Time
	IdempotencyKey string
}

func (in PaymentInput) validate() error {
	if in.UserID == uuid.Nil || len(in.Courses) == 0 || in.PaymentDate.IsZero() {
		return domain.NewError(domain.ErrBadRequest, "Missing required fields")
	}
	if in.TotalAmount < 0 {
		return domain.NewError(domain.ErrBadRequest, "Invalid totalAmount")
	}
	if !in.Status.Valid() {
		return domain.NewError(domain.ErrBadRequest, "Invalid status")
	}
	for _, c := range in.Courses {
		if c.CourseID == "" {
			return domain.ErrMissingCourseID
		}
	}
	return nil
}

type CheckoutUseCase struct {
	log          *logger.Logger
	transactor   *repository.Transactor
	counterRepo  *repository.CounterRepository
	orderRepo    *repository.OrderRepository
	progressRepo *repository.ProgressRepository
}

func NewCheckoutUseCase(
	log *logger.Logger,
	t *repository.Transactor,
	cr *repository.CounterRepository,
	or *repository.OrderRepository,
	pr *repository.ProgressRepository,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		log:          log.With("service", "CheckoutUseCase"),
		transactor:   t,
		counterRepo:  cr,
		orderRepo:    or,
		progressRepo: pr,
	}
}

// RecordPayment allocates an order number, writes the order and one enrolled
// progress row per course, all in one transaction. A repeated idempotency key
// returns the order created the first time; created is then false.
func (uc *CheckoutUseCase) RecordPayment(ctx context.Context, in PaymentInput) (order *domain.Order, created bool, err error) {
	if err := in.validate(); err != nil {
		return nil, false, err
	}
	var key *string
	if in.IdempotencyKey != "" {
		key = &in.IdempotencyKey
	}

	err = uc.transactor.Transaction(ctx, func(tx *gorm.DB) error {
		orders := uc.orderRepo.WithTx(tx)
		if key != nil {
			existing, err := orders.GetByIdempotencyKey(ctx, *key)
			if err == nil {
				order = existing
				return nil
			}
			if !errors.Is(err, domain.ErrOrderNotFound) {
				return err
			}
		}

		orderID, err := uc.counterRepo.WithTx(tx).Next(ctx, domain.OrderCounterName)
		if err != nil {
			return err
		}

		courses := make([]domain.OrderCourse, 0, len(in.Courses))
		entries := make([]domain.Progress, 0, len(in.Courses))
		for _, c := range in.Courses {
			courses = append(courses, domain.OrderCourse{CourseID: c.CourseID, Title: c.Title, Price: c.Price})
			entries = append(entries, domain.Progress{
				UserID:     in.UserID,
				CourseID:   c.CourseID,
				Title:      c.Title,
				Price:      c.Price,
				Duration:   c.Duration,
				Status:     domain.ProgressEnrolled,
				EnrolledAt: in.PaymentDate,
			})
		}

		newOrder := &domain.Order{
			OrderID:        orderID,
			UserID:         in.UserID,
			Courses:        courses,
			TotalAmount:    in.TotalAmount,
			Status:         in.Status,
			PaymentDate:    in.PaymentDate,
			IdempotencyKey: key,
		}
		if err := orders.Create(ctx, newOrder); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := uc.progressRepo.WithTx(tx).CreateBatch(ctx, entries); err != nil {
			return fmt.Errorf("create progress: %w", err)
		}
		order, created = newOrder, true
		return nil
	})

	// a concurrent retry with the same key committed first
	if err != nil && key != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, lookupErr := uc.orderRepo.GetByIdempotencyKey(ctx, *key)
		if lookupErr == nil {
			return existing, false, nil
		}
	}
	if err != nil {
		uc.log.Error("payment recording failed", "user_id", in.UserID, "error", err)
		return nil, false, err
	}

	if created {
		observability.OrdersCreated.Inc()
		observability.ProgressRecordsCreated.Add(float64(len(in.Courses)))
		uc.log.Info("order created", "order_id", order.OrderID, "user_id", in.UserID, "courses", len(in.Courses))
	}
	return order, created, nil
}

func (uc *CheckoutUseCase) ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	return uc.orderRepo.ListByUser(ctx, userID)
}

func (uc *CheckoutUseCase) ListProgress(ctx context.Context, userID uuid.UUID) ([]domain.Progress, error) {
	return uc.progressRepo.ListByUser(ctx, userID)
}
