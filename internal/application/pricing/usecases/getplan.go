package usecases

import (
	"context"

	"github.com/beacon-cms/beacon/internal/application/pricing/dto"
	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type GetPlanUseCase struct {
	planRepo catalog.PlanRepository
	logger   logger.Interface
}

func NewGetPlanUseCase(planRepo catalog.PlanRepository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, sid string) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "sid", sid)
		return nil, errors.NewInternalError("failed to get plan")
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}
	return dto.ToPlanDTO(plan), nil
}
