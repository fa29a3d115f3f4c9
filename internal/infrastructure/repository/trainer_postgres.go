package repository

import (
	"context"

	"coursehub/internal/domain"

	"gorm.io/gorm"
)

type TrainerApplicationRepository struct {
	db *gorm.DB
}

func NewTrainerApplicationRepository(db *gorm.DB) *TrainerApplicationRepository {
	return &TrainerApplicationRepository{db: db}
}

func (r *TrainerApplicationRepository) Create(ctx context.Context, app *domain.TrainerApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}
