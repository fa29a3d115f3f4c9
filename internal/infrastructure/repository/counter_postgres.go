package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Single statement: the row lock taken by the upsert makes increment-and-read
// atomic, so concurrent callers never observe the same value.
const nextCounterSQL = `INSERT INTO counters (name, value) VALUES (?, 1)
ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
RETURNING value`

type CounterRepository struct {
	db *gorm.DB
}

func NewCounterRepository(db *gorm.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

func (r *CounterRepository) WithTx(tx *gorm.DB) *CounterRepository {
	return &CounterRepository{db: tx}
}

// Next increments the named counter and returns the new value. A missing
// counter is created, so the first call returns 1.
func (r *CounterRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	result := r.db.WithContext(ctx).Raw(nextCounterSQL, name).Scan(&value)
	if result.Error != nil {
		return 0, fmt.Errorf("increment counter %q: %w", name, result.Error)
	}
	if value == 0 {
		return 0, fmt.Errorf("increment counter %q: no value returned", name)
	}
	return value, nil
}
