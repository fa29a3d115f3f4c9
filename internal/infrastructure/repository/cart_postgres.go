package repository

import (
	"context"
	"errors"

	"coursehub/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// Save inserts a new cart (ID == 0) or overwrites the stored item list.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return r.db.WithContext(ctx).Save(cart).Error
}
