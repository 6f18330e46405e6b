package usecases

import (
	"context"

	"github.com/beacon-cms/beacon/internal/application/pricing/dto"
	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type UpdatePlanCommand struct {
	SID         string
	Name        string
	Description string
	Position    *int
	IsPopular   *bool
	IsActive    *bool
}

type UpdatePlanUseCase struct {
	planRepo catalog.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo catalog.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "sid", cmd.SID)
		return nil, errors.NewInternalError("failed to get plan")
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	if cmd.Name != "" {
		if err := plan.UpdateDetails(cmd.Name, cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Position != nil {
		plan.SetPosition(*cmd.Position)
	}
	if cmd.IsPopular != nil {
		plan.SetPopular(*cmd.IsPopular)
	}
	if cmd.IsActive != nil {
		if *cmd.IsActive {
			plan.Activate()
		} else {
			plan.Deactivate()
		}
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", plan.ID())
		return nil, errors.NewInternalError("failed to update plan")
	}

	uc.logger.Infow("plan updated", "plan_id", plan.ID())
	return dto.ToPlanDTO(plan), nil
}
