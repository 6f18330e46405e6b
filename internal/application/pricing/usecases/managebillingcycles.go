package usecases

import (
	"context"
	stderrors "errors"

	"github.com/beacon-cms/beacon/internal/application/pricing/dto"
	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type CreateBillingCycleCommand struct {
	Label      string
	Multiplier int
	SortOrder  int
}

type UpdateBillingCycleCommand struct {
	SID        string
	Label      string
	Multiplier int
	SortOrder  int
}

// ManageBillingCyclesUseCase bundles admin operations on billing cycles.
type ManageBillingCyclesUseCase struct {
	cycleRepo catalog.BillingCycleRepository
	logger    logger.Interface
}

func NewManageBillingCyclesUseCase(cycleRepo catalog.BillingCycleRepository, logger logger.Interface) *ManageBillingCyclesUseCase {
	return &ManageBillingCyclesUseCase{
		cycleRepo: cycleRepo,
		logger:    logger,
	}
}

func (uc *ManageBillingCyclesUseCase) Create(ctx context.Context, cmd CreateBillingCycleCommand) (*dto.BillingCycleDTO, error) {
	cycle, err := catalog.NewBillingCycle(cmd.Label, cmd.Multiplier)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.SortOrder != 0 {
		if err := cycle.Update(cmd.Label, cmd.Multiplier, cmd.SortOrder); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.cycleRepo.Create(ctx, cycle); err != nil {
		uc.logger.Errorw("failed to persist billing cycle", "error", err, "label", cmd.Label)
		return nil, errors.NewInternalError("failed to create billing cycle")
	}

	uc.logger.Infow("billing cycle created", "cycle_id", cycle.ID(), "label", cycle.Label())
	return dto.ToBillingCycleDTO(cycle), nil
}

func (uc *ManageBillingCyclesUseCase) Update(ctx context.Context, cmd UpdateBillingCycleCommand) (*dto.BillingCycleDTO, error) {
	cycle, err := uc.getBySID(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}

	if err := cycle.Update(cmd.Label, cmd.Multiplier, cmd.SortOrder); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.cycleRepo.Update(ctx, cycle); err != nil {
		uc.logger.Errorw("failed to update billing cycle", "error", err, "cycle_id", cycle.ID())
		return nil, errors.NewInternalError("failed to update billing cycle")
	}

	return dto.ToBillingCycleDTO(cycle), nil
}

func (uc *ManageBillingCyclesUseCase) Delete(ctx context.Context, sid string) error {
	cycle, err := uc.getBySID(ctx, sid)
	if err != nil {
		return err
	}

	if err := uc.cycleRepo.Delete(ctx, cycle.ID()); err != nil {
		if stderrors.Is(err, catalog.ErrCycleInUse) {
			return errors.NewConflictError("billing cycle is still referenced by plan pricing")
		}
		uc.logger.Errorw("failed to delete billing cycle", "error", err, "cycle_id", cycle.ID())
		return errors.NewInternalError("failed to delete billing cycle")
	}

	uc.logger.Infow("billing cycle deleted", "cycle_id", cycle.ID())
	return nil
}

func (uc *ManageBillingCyclesUseCase) List(ctx context.Context) ([]*dto.BillingCycleDTO, error) {
	cycles, err := uc.cycleRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list billing cycles", "error", err)
		return nil, errors.NewInternalError("failed to list billing cycles")
	}
	return dto.ToBillingCycleDTOs(cycles), nil
}

// SetDefault marks one cycle as default and clears the flag everywhere else
// in a single transaction.
func (uc *ManageBillingCyclesUseCase) SetDefault(ctx context.Context, sid string) error {
	cycle, err := uc.getBySID(ctx, sid)
	if err != nil {
		return err
	}

	if err := uc.cycleRepo.SetDefault(ctx, cycle.ID()); err != nil {
		uc.logger.Errorw("failed to set default billing cycle", "error", err, "cycle_id", cycle.ID())
		return errors.NewInternalError("failed to set default billing cycle")
	}

	uc.logger.Infow("default billing cycle changed", "cycle_id", cycle.ID())
	return nil
}

func (uc *ManageBillingCyclesUseCase) getBySID(ctx context.Context, sid string) (*catalog.BillingCycle, error) {
	cycle, err := uc.cycleRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get billing cycle", "error", err, "sid", sid)
		return nil, errors.NewInternalError("failed to get billing cycle")
	}
	if cycle == nil {
		return nil, errors.NewNotFoundError("billing cycle not found")
	}
	return cycle, nil
}
