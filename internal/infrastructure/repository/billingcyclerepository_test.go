package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

func createTestCycle(t *testing.T, label string, multiplier int) *catalog.BillingCycle {
	t.Helper()
	cycle, err := catalog.NewBillingCycle(label, multiplier)
	require.NoError(t, err)
	return cycle
}

func TestBillingCycleRepository_SetDefaultClearsOthers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBillingCycleRepository(db, logger.NewLogger())
	ctx := context.Background()

	monthly := createTestCycle(t, "Monthly", 1)
	require.NoError(t, repo.Create(ctx, monthly))
	yearly := createTestCycle(t, "Yearly", 12)
	require.NoError(t, repo.Create(ctx, yearly))

	require.NoError(t, repo.SetDefault(ctx, monthly.ID()))

	def, err := repo.GetDefault(ctx)
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, monthly.ID(), def.ID())

	// switching the default clears the previous one
	require.NoError(t, repo.SetDefault(ctx, yearly.ID()))

	cycles, err := repo.List(ctx)
	require.NoError(t, err)
	defaults := 0
	for _, c := range cycles {
		if c.IsDefault() {
			defaults++
			assert.Equal(t, yearly.ID(), c.ID())
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestBillingCycleRepository_SetDefaultMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBillingCycleRepository(db, logger.NewLogger())

	err := repo.SetDefault(context.Background(), 999)
	assert.Error(t, err)
}

func TestBillingCycleRepository_GetDefaultWhenNoneSet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBillingCycleRepository(db, logger.NewLogger())
	ctx := context.Background()

	cycle := createTestCycle(t, "Monthly", 1)
	require.NoError(t, repo.Create(ctx, cycle))

	def, err := repo.GetDefault(ctx)
	require.NoError(t, err)
	assert.Nil(t, def)
}
