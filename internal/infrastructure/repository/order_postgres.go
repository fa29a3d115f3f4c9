package repository

import (
	"context"
	"errors"

	"coursehub/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).Where("idempotency_key = ?", key).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListByUser returns the newest payments first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	orders := []domain.Order{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("payment_date desc").
		Find(&orders).Error
	return orders, err
}
