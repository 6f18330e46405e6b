package usecases

import (
	"context"

	"github.com/beacon-cms/beacon/internal/application/pricing/dto"
	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type UpsertFeatureLimitCommand struct {
	PlanSID        string
	FeatureTypeSID string
	Value          string
	IsUnlimited    bool
}

type ManageFeatureLimitsUseCase struct {
	limitRepo catalog.FeatureLimitRepository
	planRepo  catalog.PlanRepository
	typeRepo  catalog.FeatureTypeRepository
	logger    logger.Interface
}

func NewManageFeatureLimitsUseCase(
	limitRepo catalog.FeatureLimitRepository,
	planRepo catalog.PlanRepository,
	typeRepo catalog.FeatureTypeRepository,
	logger logger.Interface,
) *ManageFeatureLimitsUseCase {
	return &ManageFeatureLimitsUseCase{
		limitRepo: limitRepo,
		planRepo:  planRepo,
		typeRepo:  typeRepo,
		logger:    logger,
	}
}

// Upsert creates or replaces the limit for one (plan, feature type) pair.
func (uc *ManageFeatureLimitsUseCase) Upsert(ctx context.Context, cmd UpsertFeatureLimitCommand) (*dto.FeatureLimitDTO, error) {
	plan, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "sid", cmd.PlanSID)
		return nil, errors.NewInternalError("failed to get plan")
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	featureType, err := uc.typeRepo.GetBySID(ctx, cmd.FeatureTypeSID)
	if err != nil {
		uc.logger.Errorw("failed to get feature type", "error", err, "sid", cmd.FeatureTypeSID)
		return nil, errors.NewInternalError("failed to get feature type")
	}
	if featureType == nil {
		return nil, errors.NewNotFoundError("feature type not found")
	}

	limit, err := catalog.NewFeatureLimit(plan.ID(), featureType.ID(), cmd.Value, cmd.IsUnlimited)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.limitRepo.Upsert(ctx, limit); err != nil {
		uc.logger.Errorw("failed to upsert feature limit", "error", err,
			"plan_id", plan.ID(), "feature_type_id", featureType.ID())
		return nil, errors.NewInternalError("failed to save feature limit")
	}

	uc.logger.Infow("feature limit saved", "plan_id", plan.ID(), "feature_type_id", featureType.ID())
	return toFeatureLimitDTO(limit), nil
}

func (uc *ManageFeatureLimitsUseCase) Delete(ctx context.Context, limitID uint) error {
	if err := uc.limitRepo.Delete(ctx, limitID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete feature limit", "error", err, "limit_id", limitID)
		return errors.NewInternalError("failed to delete feature limit")
	}

	uc.logger.Infow("feature limit deleted", "limit_id", limitID)
	return nil
}

func (uc *ManageFeatureLimitsUseCase) List(ctx context.Context) ([]*dto.FeatureLimitDTO, error) {
	limits, err := uc.limitRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list feature limits", "error", err)
		return nil, errors.NewInternalError("failed to list feature limits")
	}

	dtos := make([]*dto.FeatureLimitDTO, 0, len(limits))
	for _, limit := range limits {
		dtos = append(dtos, toFeatureLimitDTO(limit))
	}
	return dtos, nil
}

func toFeatureLimitDTO(limit *catalog.FeatureLimit) *dto.FeatureLimitDTO {
	return &dto.FeatureLimitDTO{
		ID:            limit.ID(),
		PlanID:        limit.PlanID(),
		FeatureTypeID: limit.FeatureTypeID(),
		Value:         limit.Value(),
		IsUnlimited:   limit.IsUnlimited(),
		DisplayValue:  limit.DisplayValue(),
	}
}
