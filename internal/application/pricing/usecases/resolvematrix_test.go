package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type fakeSectionRepo struct {
	catalog.PricingSectionRepository
	sections map[string]*catalog.PricingSection
	def      *catalog.PricingSection
}

func (f *fakeSectionRepo) GetBySID(ctx context.Context, sid string) (*catalog.PricingSection, error) {
	return f.sections[sid], nil
}

func (f *fakeSectionRepo) GetDefault(ctx context.Context) (*catalog.PricingSection, error) {
	return f.def, nil
}

type fakePlanRepo struct {
	catalog.PlanRepository
	plans []*catalog.Plan
}

func (f *fakePlanRepo) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Plan, error) {
	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []*catalog.Plan
	for _, plan := range f.plans {
		if wanted[plan.ID()] {
			out = append(out, plan)
		}
	}
	return out, nil
}

type fakeCycleRepo struct {
	catalog.BillingCycleRepository
	cycles []*catalog.BillingCycle
}

func (f *fakeCycleRepo) List(ctx context.Context) ([]*catalog.BillingCycle, error) {
	return f.cycles, nil
}

type fakePricingRepo struct {
	catalog.PlanPricingRepository
	byPlan map[uint][]*catalog.PlanPricing
}

func (f *fakePricingRepo) GetByPlanIDs(ctx context.Context, planIDs []uint) (map[uint][]*catalog.PlanPricing, error) {
	return f.byPlan, nil
}

type fakeTypeRepo struct {
	catalog.FeatureTypeRepository
	types []*catalog.FeatureType
}

func (f *fakeTypeRepo) ListActive(ctx context.Context, limit int) ([]*catalog.FeatureType, error) {
	if limit > 0 && len(f.types) > limit {
		return f.types[:limit], nil
	}
	return f.types, nil
}

type fakeLimitRepo struct {
	catalog.FeatureLimitRepository
	byPlan map[uint][]*catalog.FeatureLimit
}

func (f *fakeLimitRepo) GetByPlanIDs(ctx context.Context, planIDs []uint) (map[uint][]*catalog.FeatureLimit, error) {
	return f.byPlan, nil
}

type fakeBasicRepo struct {
	catalog.BasicFeatureRepository
	byPlan map[uint][]*catalog.BasicFeature
}

func (f *fakeBasicRepo) GetByPlanIDs(ctx context.Context, planIDs []uint) (map[uint][]*catalog.BasicFeature, error) {
	return f.byPlan, nil
}

func testPlan(t *testing.T, id uint, name string, active bool) *catalog.Plan {
	t.Helper()
	now := time.Now()
	plan, err := catalog.ReconstructPlan(id, "plan"+name, name, "", int(id), active, false, 1, now, now)
	require.NoError(t, err)
	return plan
}

func testCycle(t *testing.T, id uint, sid, label string, multiplier int, isDefault bool) *catalog.BillingCycle {
	t.Helper()
	now := time.Now()
	cycle, err := catalog.ReconstructBillingCycle(id, sid, label, multiplier, isDefault, int(id), now, now)
	require.NoError(t, err)
	return cycle
}

func testPricing(t *testing.T, id, planID, cycleID uint, priceCents int64) *catalog.PlanPricing {
	t.Helper()
	now := time.Now()
	pricing, err := catalog.ReconstructPlanPricing(id, planID, cycleID, priceCents, "", "https://example.com/buy", now, now)
	require.NoError(t, err)
	return pricing
}

func testFeatureType(t *testing.T, id uint, name string) *catalog.FeatureType {
	t.Helper()
	now := time.Now()
	ft, err := catalog.ReconstructFeatureType(id, "ft", name, "units", "", int(id), true, now, now)
	require.NoError(t, err)
	return ft
}

func newMatrixUseCase(
	sections *fakeSectionRepo,
	plans *fakePlanRepo,
	cycles *fakeCycleRepo,
	pricings *fakePricingRepo,
	types *fakeTypeRepo,
	limits *fakeLimitRepo,
	basics *fakeBasicRepo,
) *ResolveMatrixUseCase {
	return NewResolveMatrixUseCase(sections, plans, cycles, pricings, types, limits, basics, logger.NewLogger())
}

func matrixFixture(t *testing.T) (*fakeSectionRepo, *fakePlanRepo, *fakeCycleRepo, *fakePricingRepo, *fakeTypeRepo, *fakeLimitRepo, *fakeBasicRepo) {
	t.Helper()
	now := time.Now()

	section, err := catalog.ReconstructPricingSection(1, "sec1", "Main", "Pricing", "Pick a plan",
		catalog.PricingLayoutCards, "", true, []catalog.SectionPlan{
			{PlanID: 1, SortOrder: 0, IsVisible: true},
			{PlanID: 2, SortOrder: 1, IsVisible: true},
			{PlanID: 3, SortOrder: 2, IsVisible: true},
		}, now, now)
	require.NoError(t, err)

	return &fakeSectionRepo{sections: map[string]*catalog.PricingSection{"sec1": section}, def: section},
		&fakePlanRepo{plans: []*catalog.Plan{
			testPlan(t, 1, "Starter", true),
			testPlan(t, 2, "Pro", true),
			testPlan(t, 3, "Hidden", false),
		}},
		&fakeCycleRepo{cycles: []*catalog.BillingCycle{
			testCycle(t, 1, "cycm", "Monthly", 1, true),
			testCycle(t, 2, "cycy", "Yearly", 12, false),
		}},
		&fakePricingRepo{byPlan: map[uint][]*catalog.PlanPricing{
			1: {
				testPricing(t, 1, 1, 1, 2900),
				testPricing(t, 2, 1, 2, 29000),
			},
		}},
		&fakeTypeRepo{types: []*catalog.FeatureType{testFeatureType(t, 1, "Assistants")}},
		&fakeLimitRepo{byPlan: map[uint][]*catalog.FeatureLimit{}},
		&fakeBasicRepo{byPlan: map[uint][]*catalog.BasicFeature{}}
}

func TestResolveMatrix_YearlySavings(t *testing.T) {
	sections, plans, cycles, pricings, types, limits, basics := matrixFixture(t)
	uc := newMatrixUseCase(sections, plans, cycles, pricings, types, limits, basics)

	matrix, err := uc.Execute(context.Background(), ResolveMatrixQuery{SectionSID: "sec1", CycleSID: "cycy"})
	require.NoError(t, err)

	require.True(t, matrix.HasPlans)
	require.Len(t, matrix.Plans, 2)

	starter := matrix.Plans[0]
	assert.Equal(t, "Starter", starter.Name)
	assert.Equal(t, int64(29000), starter.PriceCents)
	assert.Equal(t, "$290", starter.Price)
	// 12 months at $29 would be $348; $290 saves 17% (rounded).
	assert.Equal(t, 17, starter.SavingRate)
	assert.Equal(t, 17, matrix.SavingsRate)
}

func TestResolveMatrix_DefaultsToDefaultCycle(t *testing.T) {
	sections, plans, cycles, pricings, types, limits, basics := matrixFixture(t)
	uc := newMatrixUseCase(sections, plans, cycles, pricings, types, limits, basics)

	matrix, err := uc.Execute(context.Background(), ResolveMatrixQuery{})
	require.NoError(t, err)

	assert.Equal(t, "Monthly", matrix.ActiveCycle.Label)
	assert.Equal(t, "$29", matrix.Plans[0].Price)
	assert.Equal(t, 0, matrix.Plans[0].SavingRate)
}

func TestResolveMatrix_MissingPricingPlaceholder(t *testing.T) {
	sections, plans, cycles, pricings, types, limits, basics := matrixFixture(t)
	uc := newMatrixUseCase(sections, plans, cycles, pricings, types, limits, basics)

	matrix, err := uc.Execute(context.Background(), ResolveMatrixQuery{SectionSID: "sec1"})
	require.NoError(t, err)
	require.Len(t, matrix.Plans, 2)

	// Pro has no pricing rows at all.
	pro := matrix.Plans[1]
	assert.Equal(t, "$0.00", pro.Price)
	assert.Equal(t, int64(0), pro.PriceCents)
}

func TestResolveMatrix_InactivePlansExcluded(t *testing.T) {
	sections, plans, cycles, pricings, types, limits, basics := matrixFixture(t)
	uc := newMatrixUseCase(sections, plans, cycles, pricings, types, limits, basics)

	matrix, err := uc.Execute(context.Background(), ResolveMatrixQuery{SectionSID: "sec1"})
	require.NoError(t, err)

	for _, plan := range matrix.Plans {
		assert.NotEqual(t, "Hidden", plan.Name)
	}
}

func TestResolveMatrix_PlansOrderedByPosition(t *testing.T) {
	sections, plans, cycles, pricings, types, limits, basics := matrixFixture(t)
	now := time.Now()

	// the section lists Pro before Starter, but Starter has the lower position
	starter, err := catalog.ReconstructPlan(1, "plans", "Starter", "", 1, true, false, 1, now, now)
	require.NoError(t, err)
	pro, err := catalog.ReconstructPlan(2, "planp", "Pro", "", 2, true, false, 1, now, now)
	require.NoError(t, err)
	plans.plans = []*catalog.Plan{starter, pro}

	section, err := catalog.ReconstructPricingSection(1, "sec1", "Main", "Pricing", "Pick a plan",
		catalog.PricingLayoutCards, "", true, []catalog.SectionPlan{
			{PlanID: 2, SortOrder: 0, IsVisible: true},
			{PlanID: 1, SortOrder: 1, IsVisible: true},
		}, now, now)
	require.NoError(t, err)
	sections.sections["sec1"] = section

	uc := newMatrixUseCase(sections, plans, cycles, pricings, types, limits, basics)

	matrix, err := uc.Execute(context.Background(), ResolveMatrixQuery{SectionSID: "sec1"})
	require.NoError(t, err)

	require.Len(t, matrix.Plans, 2)
	assert.Equal(t, "Starter", matrix.Plans[0].Name)
	assert.Equal(t, "Pro", matrix.Plans[1].Name)
}

func TestResolveMatrix_FeatureLimits(t *testing.T) {
	sections, plans, cycles, pricings, types, limits, basics := matrixFixture(t)

	now := time.Now()
	unlimited, err := catalog.ReconstructFeatureLimit(1, 1, 1, "", true, now, now)
	require.NoError(t, err)
	limits.byPlan = map[uint][]*catalog.FeatureLimit{1: {unlimited}}

	uc := newMatrixUseCase(sections, plans, cycles, pricings, types, limits, basics)

	matrix, err := uc.Execute(context.Background(), ResolveMatrixQuery{SectionSID: "sec1"})
	require.NoError(t, err)

	require.Len(t, matrix.Plans[0].Features, 1)
	assert.Equal(t, "∞", matrix.Plans[0].Features[0].Value)

	// No limit row on the second plan resolves to "0".
	require.Len(t, matrix.Plans[1].Features, 1)
	assert.Equal(t, "0", matrix.Plans[1].Features[0].Value)
}

func TestResolveMatrix_BasicFeaturesNeverNil(t *testing.T) {
	sections, plans, cycles, pricings, types, limits, basics := matrixFixture(t)
	uc := newMatrixUseCase(sections, plans, cycles, pricings, types, limits, basics)

	matrix, err := uc.Execute(context.Background(), ResolveMatrixQuery{SectionSID: "sec1"})
	require.NoError(t, err)

	for _, plan := range matrix.Plans {
		assert.NotNil(t, plan.BasicFeatures)
	}
}

func TestResolveMatrix_SectionNotFound(t *testing.T) {
	sections, plans, cycles, pricings, types, limits, basics := matrixFixture(t)
	uc := newMatrixUseCase(sections, plans, cycles, pricings, types, limits, basics)

	_, err := uc.Execute(context.Background(), ResolveMatrixQuery{SectionSID: "missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestResolveMatrix_UnknownCycle(t *testing.T) {
	sections, plans, cycles, pricings, types, limits, basics := matrixFixture(t)
	uc := newMatrixUseCase(sections, plans, cycles, pricings, types, limits, basics)

	_, err := uc.Execute(context.Background(), ResolveMatrixQuery{SectionSID: "sec1", CycleSID: "nope"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
