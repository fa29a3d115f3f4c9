// Package testutil opens throwaway databases for repository and use case tests.
package testutil

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"coursehub/internal/infrastructure/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

var errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")

var (
	pgOnce sync.Once
	pgDB   *gorm.DB
	pgErr  error
)

// DB returns a migrated in-memory SQLite database private to the test.
// A single connection serializes access, which is what makes concurrent
// transactions safe on SQLite.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:coursehub_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := repository.AutoMigrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

// Postgres returns a migrated database shared by every test in the process,
// or skips the test when TEST_POSTGRES_DSN is unset. Unlike DB it runs with a
// full connection pool, so concurrent callers really overlap. Tests must not
// assume the tables are empty.
func Postgres(tb testing.TB) *gorm.DB {
	tb.Helper()

	pgOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			pgErr = errMissingDSN
			return
		}
		pgDB, pgErr = repository.Open(dsn)
		if pgErr != nil {
			return
		}
		pgDB.Logger = gormLogger.Default.LogMode(gormLogger.Silent)
		pgErr = repository.AutoMigrate(pgDB)
	})

	if errors.Is(pgErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run postgres integration tests")
	}
	if pgErr != nil {
		tb.Fatalf("init postgres: %v", pgErr)
	}
	return pgDB
}
