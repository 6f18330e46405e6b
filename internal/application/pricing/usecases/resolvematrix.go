package usecases

import (
	"context"
	"sort"

	"github.com/beacon-cms/beacon/internal/application/pricing/dto"
	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

// missingPriceDisplay is rendered when a plan has no pricing row for the
// selected billing cycle.
const missingPriceDisplay = "$0.00"

// matrixFeatureCount caps how many feature types appear on each plan card.
const matrixFeatureCount = 4

type ResolveMatrixQuery struct {
	SectionSID string // empty selects the default section
	CycleSID   string // empty selects the default cycle
}

// ResolveMatrixUseCase assembles the render-ready pricing matrix for one
// pricing section: ordered cycles, visible active plans with resolved prices,
// feature limits, included basic features and saving rates.
type ResolveMatrixUseCase struct {
	sectionRepo catalog.PricingSectionRepository
	planRepo    catalog.PlanRepository
	cycleRepo   catalog.BillingCycleRepository
	pricingRepo catalog.PlanPricingRepository
	typeRepo    catalog.FeatureTypeRepository
	limitRepo   catalog.FeatureLimitRepository
	featureRepo catalog.BasicFeatureRepository
	logger      logger.Interface
}

func NewResolveMatrixUseCase(
	sectionRepo catalog.PricingSectionRepository,
	planRepo catalog.PlanRepository,
	cycleRepo catalog.BillingCycleRepository,
	pricingRepo catalog.PlanPricingRepository,
	typeRepo catalog.FeatureTypeRepository,
	limitRepo catalog.FeatureLimitRepository,
	featureRepo catalog.BasicFeatureRepository,
	logger logger.Interface,
) *ResolveMatrixUseCase {
	return &ResolveMatrixUseCase{
		sectionRepo: sectionRepo,
		planRepo:    planRepo,
		cycleRepo:   cycleRepo,
		pricingRepo: pricingRepo,
		typeRepo:    typeRepo,
		limitRepo:   limitRepo,
		featureRepo: featureRepo,
		logger:      logger,
	}
}

func (uc *ResolveMatrixUseCase) Execute(ctx context.Context, query ResolveMatrixQuery) (*dto.MatrixDTO, error) {
	section, err := uc.resolveSection(ctx, query.SectionSID)
	if err != nil {
		return nil, err
	}
	return uc.compose(ctx, section, query.CycleSID)
}

// ExecuteByID resolves the matrix for a section referenced by internal ID,
// used when a page section embeds a pricing block.
func (uc *ResolveMatrixUseCase) ExecuteByID(ctx context.Context, sectionID uint, cycleSID string) (*dto.MatrixDTO, error) {
	section, err := uc.sectionRepo.GetByID(ctx, sectionID)
	if err != nil {
		uc.logger.Errorw("failed to get pricing section", "error", err, "section_id", sectionID)
		return nil, errors.NewInternalError("failed to get pricing section")
	}
	if section == nil {
		return nil, errors.NewNotFoundError("pricing section not found")
	}
	return uc.compose(ctx, section, cycleSID)
}

func (uc *ResolveMatrixUseCase) compose(ctx context.Context, section *catalog.PricingSection, cycleSID string) (*dto.MatrixDTO, error) {
	cycles, err := uc.cycleRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list billing cycles", "error", err)
		return nil, errors.NewInternalError("failed to list billing cycles")
	}

	activeCycle, err := resolveActiveCycle(cycles, cycleSID)
	if err != nil {
		return nil, err
	}

	result := &dto.MatrixDTO{
		Section: dto.MatrixSectionDTO{
			ID:         section.PrefixedSID(),
			Heading:    section.Heading(),
			Subheading: section.Subheading(),
			Layout:     string(section.Layout()),
			Background: section.Background(),
		},
		Cycles: toMatrixCycleDTOs(cycles),
		Plans:  []*dto.MatrixPlanDTO{},
	}
	if activeCycle != nil {
		result.ActiveCycle = toMatrixCycleDTO(activeCycle)
	}

	planIDs := section.VisiblePlanIDs()
	if len(planIDs) == 0 || activeCycle == nil {
		return result, nil
	}

	plans, err := uc.planRepo.GetByIDs(ctx, planIDs)
	if err != nil {
		uc.logger.Errorw("failed to load section plans", "error", err, "section_id", section.ID())
		return nil, errors.NewInternalError("failed to load plans")
	}

	planByID := make(map[uint]*catalog.Plan, len(plans))
	for _, plan := range plans {
		planByID[plan.ID()] = plan
	}

	pricingsByPlan, err := uc.pricingRepo.GetByPlanIDs(ctx, planIDs)
	if err != nil {
		uc.logger.Errorw("failed to load plan pricings", "error", err, "section_id", section.ID())
		return nil, errors.NewInternalError("failed to load pricing")
	}

	limitsByPlan, err := uc.limitRepo.GetByPlanIDs(ctx, planIDs)
	if err != nil {
		uc.logger.Errorw("failed to load feature limits", "error", err, "section_id", section.ID())
		return nil, errors.NewInternalError("failed to load feature limits")
	}

	basicByPlan, err := uc.featureRepo.GetByPlanIDs(ctx, planIDs)
	if err != nil {
		uc.logger.Errorw("failed to load basic features", "error", err, "section_id", section.ID())
		return nil, errors.NewInternalError("failed to load basic features")
	}

	featureTypes, err := uc.typeRepo.ListActive(ctx, matrixFeatureCount)
	if err != nil {
		uc.logger.Errorw("failed to load feature types", "error", err)
		return nil, errors.NewInternalError("failed to load feature types")
	}

	monthlyCycleID := findMonthlyCycleID(cycles)

	visible := make([]*catalog.Plan, 0, len(planIDs))
	for _, planID := range planIDs {
		plan, ok := planByID[planID]
		if !ok || !plan.IsActive() {
			continue
		}
		visible = append(visible, plan)
	}
	// plans render in position order, not the order the section lists them
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Position() < visible[j].Position()
	})

	for _, plan := range visible {
		result.Plans = append(result.Plans, buildMatrixPlan(
			plan, activeCycle, monthlyCycleID,
			pricingsByPlan[plan.ID()], limitsByPlan[plan.ID()], basicByPlan[plan.ID()], featureTypes))
	}

	result.HasPlans = len(result.Plans) > 0

	// The section-level savings badge follows the first rendered plan.
	if result.HasPlans {
		result.SavingsRate = result.Plans[0].SavingRate
	}

	return result, nil
}

func (uc *ResolveMatrixUseCase) resolveSection(ctx context.Context, sid string) (*catalog.PricingSection, error) {
	var (
		section *catalog.PricingSection
		err     error
	)
	if sid == "" {
		section, err = uc.sectionRepo.GetDefault(ctx)
	} else {
		section, err = uc.sectionRepo.GetBySID(ctx, sid)
	}
	if err != nil {
		uc.logger.Errorw("failed to get pricing section", "error", err, "sid", sid)
		return nil, errors.NewInternalError("failed to get pricing section")
	}
	if section == nil {
		return nil, errors.NewNotFoundError("pricing section not found")
	}
	return section, nil
}

// resolveActiveCycle picks the requested cycle, else the default, else the
// first by sort order. Returns nil when no cycles exist at all.
func resolveActiveCycle(cycles []*catalog.BillingCycle, cycleSID string) (*catalog.BillingCycle, error) {
	if cycleSID != "" {
		for _, cycle := range cycles {
			if cycle.SID() == cycleSID {
				return cycle, nil
			}
		}
		return nil, errors.NewNotFoundError("billing cycle not found")
	}
	for _, cycle := range cycles {
		if cycle.IsDefault() {
			return cycle, nil
		}
	}
	if len(cycles) > 0 {
		return cycles[0], nil
	}
	return nil, nil
}

func buildMatrixPlan(
	plan *catalog.Plan,
	cycle *catalog.BillingCycle,
	monthlyCycleID uint,
	pricings []*catalog.PlanPricing,
	limits []*catalog.FeatureLimit,
	basicFeatures []*catalog.BasicFeature,
	featureTypes []*catalog.FeatureType,
) *dto.MatrixPlanDTO {
	planDTO := &dto.MatrixPlanDTO{
		ID:            plan.PrefixedSID(),
		Name:          plan.Name(),
		Description:   plan.Description(),
		IsPopular:     plan.IsPopular(),
		Price:         missingPriceDisplay,
		Features:      []dto.MatrixFeatureDTO{},
		BasicFeatures: []string{},
	}

	var monthlyPrice int64
	for _, pricing := range pricings {
		if pricing.BillingCycleID() == cycle.ID() {
			planDTO.PriceCents = pricing.PriceCents()
			planDTO.Price = utils.FormatPrice(pricing.PriceCents())
			planDTO.CTAURL = pricing.CTAURL()
		}
		if monthlyCycleID != 0 && pricing.BillingCycleID() == monthlyCycleID {
			monthlyPrice = pricing.PriceCents()
		}
	}

	planDTO.SavingRate = utils.CalculateSavingRate(monthlyPrice, planDTO.PriceCents, cycle.Multiplier())

	limitByType := make(map[uint]*catalog.FeatureLimit, len(limits))
	for _, limit := range limits {
		limitByType[limit.FeatureTypeID()] = limit
	}
	for _, featureType := range featureTypes {
		value := "0"
		if limit, ok := limitByType[featureType.ID()]; ok {
			value = limit.DisplayValue()
		}
		planDTO.Features = append(planDTO.Features, dto.MatrixFeatureDTO{
			Name:  featureType.Name(),
			Unit:  featureType.Unit(),
			Icon:  featureType.Icon(),
			Value: value,
		})
	}

	for _, feature := range basicFeatures {
		if feature.IsActive() {
			planDTO.BasicFeatures = append(planDTO.BasicFeatures, feature.Name())
		}
	}

	return planDTO
}

// findMonthlyCycleID locates the single-month cycle used as the savings
// baseline, 0 when none is configured.
func findMonthlyCycleID(cycles []*catalog.BillingCycle) uint {
	for _, cycle := range cycles {
		if cycle.IsMonthly() {
			return cycle.ID()
		}
	}
	return 0
}

func toMatrixCycleDTO(cycle *catalog.BillingCycle) dto.MatrixCycleDTO {
	return dto.MatrixCycleDTO{
		ID:         cycle.PrefixedSID(),
		Label:      cycle.Label(),
		Multiplier: cycle.Multiplier(),
		IsDefault:  cycle.IsDefault(),
	}
}

func toMatrixCycleDTOs(cycles []*catalog.BillingCycle) []dto.MatrixCycleDTO {
	dtos := make([]dto.MatrixCycleDTO, 0, len(cycles))
	for _, cycle := range cycles {
		dtos = append(dtos, toMatrixCycleDTO(cycle))
	}
	return dtos
}
