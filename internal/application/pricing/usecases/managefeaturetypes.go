package usecases

import (
	"context"

	"github.com/beacon-cms/beacon/internal/application/pricing/dto"
	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type CreateFeatureTypeCommand struct {
	Name      string
	Unit      string
	Icon      string
	SortOrder int
}

type UpdateFeatureTypeCommand struct {
	SID       string
	Name      string
	Unit      string
	Icon      string
	SortOrder int
	IsActive  bool
}

type ManageFeatureTypesUseCase struct {
	typeRepo catalog.FeatureTypeRepository
	logger   logger.Interface
}

func NewManageFeatureTypesUseCase(typeRepo catalog.FeatureTypeRepository, logger logger.Interface) *ManageFeatureTypesUseCase {
	return &ManageFeatureTypesUseCase{
		typeRepo: typeRepo,
		logger:   logger,
	}
}

func (uc *ManageFeatureTypesUseCase) Create(ctx context.Context, cmd CreateFeatureTypeCommand) (*dto.FeatureTypeDTO, error) {
	featureType, err := catalog.NewFeatureType(cmd.Name, cmd.Unit, cmd.Icon)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.SortOrder != 0 {
		if err := featureType.Update(cmd.Name, cmd.Unit, cmd.Icon, cmd.SortOrder, true); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.typeRepo.Create(ctx, featureType); err != nil {
		uc.logger.Errorw("failed to persist feature type", "error", err, "name", cmd.Name)
		return nil, errors.NewInternalError("failed to create feature type")
	}

	uc.logger.Infow("feature type created", "feature_type_id", featureType.ID(), "name", featureType.Name())
	return dto.ToFeatureTypeDTO(featureType), nil
}

func (uc *ManageFeatureTypesUseCase) Update(ctx context.Context, cmd UpdateFeatureTypeCommand) (*dto.FeatureTypeDTO, error) {
	featureType, err := uc.getBySID(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}

	if err := featureType.Update(cmd.Name, cmd.Unit, cmd.Icon, cmd.SortOrder, cmd.IsActive); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.typeRepo.Update(ctx, featureType); err != nil {
		uc.logger.Errorw("failed to update feature type", "error", err, "feature_type_id", featureType.ID())
		return nil, errors.NewInternalError("failed to update feature type")
	}

	return dto.ToFeatureTypeDTO(featureType), nil
}

// Delete removes a feature type and cascades its per-plan limits.
func (uc *ManageFeatureTypesUseCase) Delete(ctx context.Context, sid string) error {
	featureType, err := uc.getBySID(ctx, sid)
	if err != nil {
		return err
	}

	if err := uc.typeRepo.Delete(ctx, featureType.ID()); err != nil {
		uc.logger.Errorw("failed to delete feature type", "error", err, "feature_type_id", featureType.ID())
		return errors.NewInternalError("failed to delete feature type")
	}

	uc.logger.Infow("feature type deleted", "feature_type_id", featureType.ID())
	return nil
}

func (uc *ManageFeatureTypesUseCase) List(ctx context.Context) ([]*dto.FeatureTypeDTO, error) {
	featureTypes, err := uc.typeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list feature types", "error", err)
		return nil, errors.NewInternalError("failed to list feature types")
	}

	dtos := make([]*dto.FeatureTypeDTO, 0, len(featureTypes))
	for _, featureType := range featureTypes {
		dtos = append(dtos, dto.ToFeatureTypeDTO(featureType))
	}
	return dtos, nil
}

func (uc *ManageFeatureTypesUseCase) getBySID(ctx context.Context, sid string) (*catalog.FeatureType, error) {
	featureType, err := uc.typeRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get feature type", "error", err, "sid", sid)
		return nil, errors.NewInternalError("failed to get feature type")
	}
	if featureType == nil {
		return nil, errors.NewNotFoundError("feature type not found")
	}
	return featureType, nil
}
