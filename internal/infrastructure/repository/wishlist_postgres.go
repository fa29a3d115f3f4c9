package repository

import (
	"context"
	"errors"

	"coursehub/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

func (r *WishlistRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wishlist, error) {
	var wishlist domain.Wishlist
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wishlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWishlistNotFound
		}
		return nil, err
	}
	return &wishlist, nil
}

func (r *WishlistRepository) Save(ctx context.Context, wishlist *domain.Wishlist) error {
	if wishlist.Items == nil {
		wishlist.Items = []domain.WishlistItem{}
	}
	return r.db.WithContext(ctx).Save(wishlist).Error
}
