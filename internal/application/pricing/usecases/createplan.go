package usecases

import (
	"context"

	"github.com/beacon-cms/beacon/internal/application/pricing/dto"
	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type CreatePlanCommand struct {
	Name        string
	Description string
	Position    int
	IsPopular   bool
}

type CreatePlanUseCase struct {
	planRepo catalog.PlanRepository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo catalog.PlanRepository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	plan, err := catalog.NewPlan(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Position != 0 {
		plan.SetPosition(cmd.Position)
	}
	if cmd.IsPopular {
		plan.SetPopular(true)
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		uc.logger.Errorw("failed to persist plan", "error", err, "name", cmd.Name)
		return nil, errors.NewInternalError("failed to create plan")
	}

	uc.logger.Infow("plan created", "plan_id", plan.ID(), "sid", plan.PrefixedSID())
	return dto.ToPlanDTO(plan), nil
}
