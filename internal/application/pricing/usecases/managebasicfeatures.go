package usecases

import (
	"context"

	"github.com/beacon-cms/beacon/internal/application/pricing/dto"
	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type CreateBasicFeatureCommand struct {
	Name      string
	SortOrder int
}

type UpdateBasicFeatureCommand struct {
	SID       string
	Name      string
	SortOrder int
	IsActive  bool
}

type ManageBasicFeaturesUseCase struct {
	featureRepo catalog.BasicFeatureRepository
	planRepo    catalog.PlanRepository
	logger      logger.Interface
}

func NewManageBasicFeaturesUseCase(
	featureRepo catalog.BasicFeatureRepository,
	planRepo catalog.PlanRepository,
	logger logger.Interface,
) *ManageBasicFeaturesUseCase {
	return &ManageBasicFeaturesUseCase{
		featureRepo: featureRepo,
		planRepo:    planRepo,
		logger:      logger,
	}
}

func (uc *ManageBasicFeaturesUseCase) Create(ctx context.Context, cmd CreateBasicFeatureCommand) (*dto.BasicFeatureDTO, error) {
	feature, err := catalog.NewBasicFeature(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.SortOrder != 0 {
		if err := feature.Update(cmd.Name, cmd.SortOrder, true); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.featureRepo.Create(ctx, feature); err != nil {
		uc.logger.Errorw("failed to persist basic feature", "error", err, "name", cmd.Name)
		return nil, errors.NewInternalError("failed to create basic feature")
	}

	uc.logger.Infow("basic feature created", "feature_id", feature.ID(), "name", feature.Name())
	return dto.ToBasicFeatureDTO(feature), nil
}

func (uc *ManageBasicFeaturesUseCase) Update(ctx context.Context, cmd UpdateBasicFeatureCommand) (*dto.BasicFeatureDTO, error) {
	feature, err := uc.getBySID(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}

	if err := feature.Update(cmd.Name, cmd.SortOrder, cmd.IsActive); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.featureRepo.Update(ctx, feature); err != nil {
		uc.logger.Errorw("failed to update basic feature", "error", err, "feature_id", feature.ID())
		return nil, errors.NewInternalError("failed to update basic feature")
	}

	return dto.ToBasicFeatureDTO(feature), nil
}

func (uc *ManageBasicFeaturesUseCase) Delete(ctx context.Context, sid string) error {
	feature, err := uc.getBySID(ctx, sid)
	if err != nil {
		return err
	}

	if err := uc.featureRepo.Delete(ctx, feature.ID()); err != nil {
		uc.logger.Errorw("failed to delete basic feature", "error", err, "feature_id", feature.ID())
		return errors.NewInternalError("failed to delete basic feature")
	}

	uc.logger.Infow("basic feature deleted", "feature_id", feature.ID())
	return nil
}

func (uc *ManageBasicFeaturesUseCase) List(ctx context.Context) ([]*dto.BasicFeatureDTO, error) {
	features, err := uc.featureRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list basic features", "error", err)
		return nil, errors.NewInternalError("failed to list basic features")
	}

	dtos := make([]*dto.BasicFeatureDTO, 0, len(features))
	for _, feature := range features {
		dtos = append(dtos, dto.ToBasicFeatureDTO(feature))
	}
	return dtos, nil
}

// AssignToPlan includes a basic feature in a plan. Assigning twice is a no-op.
func (uc *ManageBasicFeaturesUseCase) AssignToPlan(ctx context.Context, planSID, featureSID string) error {
	plan, feature, err := uc.resolvePair(ctx, planSID, featureSID)
	if err != nil {
		return err
	}

	if err := uc.featureRepo.AssignToPlan(ctx, plan.ID(), feature.ID()); err != nil {
		uc.logger.Errorw("failed to assign basic feature", "error", err,
			"plan_id", plan.ID(), "feature_id", feature.ID())
		return errors.NewInternalError("failed to assign basic feature")
	}

	uc.logger.Infow("basic feature assigned", "plan_id", plan.ID(), "feature_id", feature.ID())
	return nil
}

func (uc *ManageBasicFeaturesUseCase) RemoveFromPlan(ctx context.Context, planSID, featureSID string) error {
	plan, feature, err := uc.resolvePair(ctx, planSID, featureSID)
	if err != nil {
		return err
	}

	if err := uc.featureRepo.RemoveFromPlan(ctx, plan.ID(), feature.ID()); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to remove basic feature", "error", err,
			"plan_id", plan.ID(), "feature_id", feature.ID())
		return errors.NewInternalError("failed to remove basic feature")
	}

	uc.logger.Infow("basic feature removed", "plan_id", plan.ID(), "feature_id", feature.ID())
	return nil
}

func (uc *ManageBasicFeaturesUseCase) resolvePair(ctx context.Context, planSID, featureSID string) (*catalog.Plan, *catalog.BasicFeature, error) {
	plan, err := uc.planRepo.GetBySID(ctx, planSID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "sid", planSID)
		return nil, nil, errors.NewInternalError("failed to get plan")
	}
	if plan == nil {
		return nil, nil, errors.NewNotFoundError("plan not found")
	}

	feature, err := uc.getBySID(ctx, featureSID)
	if err != nil {
		return nil, nil, err
	}
	return plan, feature, nil
}

func (uc *ManageBasicFeaturesUseCase) getBySID(ctx context.Context, sid string) (*catalog.BasicFeature, error) {
	feature, err := uc.featureRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get basic feature", "error", err, "sid", sid)
		return nil, errors.NewInternalError("failed to get basic feature")
	}
	if feature == nil {
		return nil, errors.NewNotFoundError("basic feature not found")
	}
	return feature, nil
}
