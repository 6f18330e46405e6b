package usecases

import (
	"context"

	"github.com/beacon-cms/beacon/internal/application/pricing/dto"
	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type ListPlansUseCase struct {
	planRepo catalog.PlanRepository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo catalog.PlanRepository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, activeOnly bool) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.List(ctx, activeOnly)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, errors.NewInternalError("failed to list plans")
	}
	return dto.ToPlanDTOs(plans), nil
}
