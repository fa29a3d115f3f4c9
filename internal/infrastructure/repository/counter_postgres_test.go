package repository_test

import (
	"context"
	"sort"
	"testing"

	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/repository"
	"coursehub/internal/infrastructure/repository/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func TestCounterNextStartsAtOne(t *testing.T) {
	repo := repository.NewCounterRepository(testutil.DB(t))
	ctx := context.Background()

	first, err := repo.Next(ctx, domain.OrderCounterName)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := repo.Next(ctx, domain.OrderCounterName)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)

	other, err := repo.Next(ctx, "invoice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), other, "counters are independent by name")
}

// SQLite runs on one connection, so only the postgres variant really races.
func TestCounterNextConcurrentCallersGetDistinctValues(t *testing.T) {
	assertGapFreeUnderLoad(t, testutil.DB(t), domain.OrderCounterName)
}

func TestCounterNextConcurrentCallersPostgres(t *testing.T) {
	db := testutil.Postgres(t)
	assertGapFreeUnderLoad(t, db, "test_"+uuid.NewString())
}

func assertGapFreeUnderLoad(t *testing.T, db *gorm.DB, name string) {
	t.Helper()
	repo := repository.NewCounterRepository(db)
	const n = 50

	values := make([]int64, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			v, err := repo.Next(context.Background(), name)
			values[i] = v
			return err
		})
	}
	require.NoError(t, g.Wait())

	sort.Slice(values, func(a, b int) bool { return values[a] < values[b] })
	for i, v := range values {
		assert.Equal(t, int64(i+1), v)
	}
}
