package repository

import (
	"context"
	"fmt"

	"coursehub/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Open does not ping: an unreachable database must not stop the process from
// starting, requests fail individually instead.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn}), &gorm.Config{
		TranslateError:       true,
		DisableAutomaticPing: true,
		Logger:               gormLogger.Default.LogMode(gormLogger.Warn),
	})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Cart{},
		&domain.Wishlist{},
		&domain.Counter{},
		&domain.Order{},
		&domain.Progress{},
		&domain.TrainerApplication{},
	)
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Transactor runs fn inside a single database transaction.
type Transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

func (t *Transactor) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}
