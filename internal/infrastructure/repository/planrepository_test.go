package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/infrastructure/persistence/models"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.PlanModel{},
		&models.BillingCycleModel{},
		&models.PlanPricingModel{},
		&models.FeatureTypeModel{},
		&models.FeatureLimitModel{},
		&models.BasicFeatureModel{},
		&models.PlanBasicFeatureModel{},
		&models.PricingSectionModel{},
		&models.PricingSectionPlanModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestPlan(t *testing.T, name string) *catalog.Plan {
	t.Helper()
	plan, err := catalog.NewPlan(name, "test plan")
	require.NoError(t, err)
	return plan
}

func TestPlanRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, logger.NewLogger())
	ctx := context.Background()

	plan := createTestPlan(t, "Pro")
	require.NoError(t, repo.Create(ctx, plan))
	assert.NotZero(t, plan.ID())

	found, err := repo.GetByID(ctx, plan.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Pro", found.Name())
	assert.Equal(t, plan.SID(), found.SID())

	bySID, err := repo.GetBySID(ctx, plan.SID())
	require.NoError(t, err)
	require.NotNil(t, bySID)
	assert.Equal(t, plan.ID(), bySID.ID())
}

func TestPlanRepository_GetMissingReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, logger.NewLogger())
	ctx := context.Background()

	found, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, found)

	bySID, err := repo.GetBySID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, bySID)
}

func TestPlanRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, logger.NewLogger())
	ctx := context.Background()

	first := createTestPlan(t, "Starter")
	first.SetPosition(2)
	require.NoError(t, repo.Create(ctx, first))

	second := createTestPlan(t, "Pro")
	second.SetPosition(1)
	require.NoError(t, repo.Create(ctx, second))

	inactive := createTestPlan(t, "Legacy")
	inactive.Deactivate()
	require.NoError(t, repo.Create(ctx, inactive))

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// ordered by position
	assert.Equal(t, "Pro", all[0].Name())
	assert.Equal(t, "Starter", all[1].Name())

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestPlanRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, logger.NewLogger())
	ctx := context.Background()

	plan := createTestPlan(t, "Pro")
	require.NoError(t, repo.Create(ctx, plan))

	require.NoError(t, plan.UpdateDetails("Pro Plus", "more"))
	plan.SetPopular(true)
	require.NoError(t, repo.Update(ctx, plan))

	found, err := repo.GetByID(ctx, plan.ID())
	require.NoError(t, err)
	assert.Equal(t, "Pro Plus", found.Name())
	assert.True(t, found.IsPopular())
	assert.Equal(t, plan.Version(), found.Version())
}

func TestPlanRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, logger.NewLogger())
	ctx := context.Background()

	plan := createTestPlan(t, "Pro")
	require.NoError(t, repo.Create(ctx, plan))

	require.NoError(t, repo.Delete(ctx, plan.ID()))

	found, err := repo.GetByID(ctx, plan.ID())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestPlanRepository_DeleteRefusedWhileReferenced(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, logger.NewLogger())
	ctx := context.Background()

	plan := createTestPlan(t, "Pro")
	require.NoError(t, repo.Create(ctx, plan))

	cycle, err := catalog.NewBillingCycle("Monthly", 1)
	require.NoError(t, err)
	cycleRepo := NewBillingCycleRepository(db, logger.NewLogger())
	require.NoError(t, cycleRepo.Create(ctx, cycle))

	pricing, err := catalog.NewPlanPricing(plan.ID(), cycle.ID(), 1900)
	require.NoError(t, err)
	pricingRepo := NewPlanPricingRepository(db, logger.NewLogger())
	require.NoError(t, pricingRepo.Create(ctx, pricing))

	err = repo.Delete(ctx, plan.ID())
	assert.ErrorIs(t, err, catalog.ErrPlanInUse)

	usages, err := repo.CountUsages(ctx, plan.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), usages)
}
