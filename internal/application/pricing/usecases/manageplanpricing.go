package usecases

import (
	"context"
	stderrors "errors"

	"github.com/beacon-cms/beacon/internal/application/pricing/dto"
	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

type CreatePlanPricingCommand struct {
	PlanSID       string
	CycleSID      string
	PriceCents    int64
	StripePriceID string
	CTAURL        string
}

type UpdatePlanPricingCommand struct {
	PricingID     uint
	PriceCents    int64
	StripePriceID string
	CTAURL        string
}

// ManagePlanPricingUseCase bundles admin operations on the (plan, cycle)
// price entries.
type ManagePlanPricingUseCase struct {
	pricingRepo catalog.PlanPricingRepository
	planRepo    catalog.PlanRepository
	cycleRepo   catalog.BillingCycleRepository
	logger      logger.Interface
}

func NewManagePlanPricingUseCase(
	pricingRepo catalog.PlanPricingRepository,
	planRepo catalog.PlanRepository,
	cycleRepo catalog.BillingCycleRepository,
	logger logger.Interface,
) *ManagePlanPricingUseCase {
	return &ManagePlanPricingUseCase{
		pricingRepo: pricingRepo,
		planRepo:    planRepo,
		cycleRepo:   cycleRepo,
		logger:      logger,
	}
}

func (uc *ManagePlanPricingUseCase) Create(ctx context.Context, cmd CreatePlanPricingCommand) (*dto.PlanPricingDTO, error) {
	plan, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "sid", cmd.PlanSID)
		return nil, errors.NewInternalError("failed to get plan")
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	cycle, err := uc.cycleRepo.GetBySID(ctx, cmd.CycleSID)
	if err != nil {
		uc.logger.Errorw("failed to get billing cycle", "error", err, "sid", cmd.CycleSID)
		return nil, errors.NewInternalError("failed to get billing cycle")
	}
	if cycle == nil {
		return nil, errors.NewNotFoundError("billing cycle not found")
	}

	pricing, err := catalog.NewPlanPricing(plan.ID(), cycle.ID(), cmd.PriceCents)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.StripePriceID != "" {
		pricing.SetStripePriceID(cmd.StripePriceID)
	}
	if cmd.CTAURL != "" {
		pricing.SetCTAURL(cmd.CTAURL)
	}

	if err := uc.pricingRepo.Create(ctx, pricing); err != nil {
		if stderrors.Is(err, catalog.ErrDuplicatePricing) {
			return nil, errors.NewConflictError("pricing already exists for this plan and billing cycle")
		}
		uc.logger.Errorw("failed to persist pricing", "error", err, "plan_id", plan.ID(), "cycle_id", cycle.ID())
		return nil, errors.NewInternalError("failed to create pricing")
	}

	uc.logger.Infow("plan pricing created", "pricing_id", pricing.ID(), "plan_id", plan.ID(), "cycle_id", cycle.ID())
	return toPlanPricingDTO(pricing), nil
}

func (uc *ManagePlanPricingUseCase) Update(ctx context.Context, cmd UpdatePlanPricingCommand) (*dto.PlanPricingDTO, error) {
	pricing, err := uc.pricingRepo.GetByID(ctx, cmd.PricingID)
	if err != nil {
		uc.logger.Errorw("failed to get pricing", "error", err, "pricing_id", cmd.PricingID)
		return nil, errors.NewInternalError("failed to get pricing")
	}
	if pricing == nil {
		return nil, errors.NewNotFoundError("pricing not found")
	}

	if err := pricing.UpdatePrice(cmd.PriceCents); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	pricing.SetStripePriceID(cmd.StripePriceID)
	pricing.SetCTAURL(cmd.CTAURL)

	if err := uc.pricingRepo.Update(ctx, pricing); err != nil {
		uc.logger.Errorw("failed to update pricing", "error", err, "pricing_id", pricing.ID())
		return nil, errors.NewInternalError("failed to update pricing")
	}

	return toPlanPricingDTO(pricing), nil
}

func (uc *ManagePlanPricingUseCase) Delete(ctx context.Context, pricingID uint) error {
	pricing, err := uc.pricingRepo.GetByID(ctx, pricingID)
	if err != nil {
		uc.logger.Errorw("failed to get pricing", "error", err, "pricing_id", pricingID)
		return errors.NewInternalError("failed to get pricing")
	}
	if pricing == nil {
		return errors.NewNotFoundError("pricing not found")
	}

	if err := uc.pricingRepo.Delete(ctx, pricingID); err != nil {
		uc.logger.Errorw("failed to delete pricing", "error", err, "pricing_id", pricingID)
		return errors.NewInternalError("failed to delete pricing")
	}

	uc.logger.Infow("plan pricing deleted", "pricing_id", pricingID)
	return nil
}

func (uc *ManagePlanPricingUseCase) List(ctx context.Context) ([]*dto.PlanPricingDTO, error) {
	pricings, err := uc.pricingRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list pricings", "error", err)
		return nil, errors.NewInternalError("failed to list pricings")
	}

	dtos := make([]*dto.PlanPricingDTO, 0, len(pricings))
	for _, pricing := range pricings {
		dtos = append(dtos, toPlanPricingDTO(pricing))
	}
	return dtos, nil
}

func toPlanPricingDTO(pricing *catalog.PlanPricing) *dto.PlanPricingDTO {
	return &dto.PlanPricingDTO{
		ID:             pricing.ID(),
		PlanID:         pricing.PlanID(),
		BillingCycleID: pricing.BillingCycleID(),
		PriceCents:     pricing.PriceCents(),
		Price:          utils.FormatPrice(pricing.PriceCents()),
		StripePriceID:  pricing.StripePriceID(),
		CTAURL:         pricing.CTAURL(),
		CreatedAt:      pricing.CreatedAt(),
		UpdatedAt:      pricing.UpdatedAt(),
	}
}
