package usecases

import (
	"context"
	stderrors "errors"

	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type DeletePlanUseCase struct {
	planRepo catalog.PlanRepository
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo catalog.PlanRepository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, sid string) error {
	plan, err := uc.planRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "sid", sid)
		return errors.NewInternalError("failed to get plan")
	}
	if plan == nil {
		return errors.NewNotFoundError("plan not found")
	}

	if err := uc.planRepo.Delete(ctx, plan.ID()); err != nil {
		if stderrors.Is(err, catalog.ErrPlanInUse) {
			return errors.NewConflictError("plan is still referenced by pricing, limits, features or sections")
		}
		uc.logger.Errorw("failed to delete plan", "error", err, "plan_id", plan.ID())
		return errors.NewInternalError("failed to delete plan")
	}

	uc.logger.Infow("plan deleted", "plan_id", plan.ID())
	return nil
}
