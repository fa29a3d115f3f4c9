package repository

import (
	"context"

	"coursehub/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) WithTx(tx *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: tx}
}

func (r *ProgressRepository) CreateBatch(ctx context.Context, entries []domain.Progress) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Progress, error) {
	entries := []domain.Progress{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("enrolled_at desc").
		Find(&entries).Error
	return entries, err
}
