package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/infrastructure/persistence/models"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type FeatureTypeRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewFeatureTypeRepository(db *gorm.DB, logger logger.Interface) catalog.FeatureTypeRepository {
	return &FeatureTypeRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *FeatureTypeRepositoryImpl) Create(ctx context.Context, featureType *catalog.FeatureType) error {
	model := r.toModel(featureType)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create feature type", "error", err, "name", featureType.Name())
		return fmt.Errorf("failed to create feature type: %w", err)
	}

	if err := featureType.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("feature type created", "feature_type_id", model.ID, "name", featureType.Name())
	return nil
}

func (r *FeatureTypeRepositoryImpl) GetByID(ctx context.Context, typeID uint) (*catalog.FeatureType, error) {
	var model models.FeatureTypeModel
	if err := r.db.WithContext(ctx).First(&model, typeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get feature type by ID", "error", err, "feature_type_id", typeID)
		return nil, fmt.Errorf("failed to get feature type: %w", err)
	}

	return r.toEntity(&model)
}

func (r *FeatureTypeRepositoryImpl) GetBySID(ctx context.Context, sid string) (*catalog.FeatureType, error) {
	var model models.FeatureTypeModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get feature type by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get feature type by SID: %w", err)
	}

	return r.toEntity(&model)
}

func (r *FeatureTypeRepositoryImpl) ListActive(ctx context.Context, limit int) ([]*catalog.FeatureType, error) {
	query := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var typeModels []*models.FeatureTypeModel
	if err := query.Find(&typeModels).Error; err != nil {
		r.logger.Errorw("failed to list active feature types", "error", err)
		return nil, fmt.Errorf("failed to list active feature types: %w", err)
	}

	return r.toEntities(typeModels)
}

func (r *FeatureTypeRepositoryImpl) List(ctx context.Context) ([]*catalog.FeatureType, error) {
	var typeModels []*models.FeatureTypeModel
	if err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&typeModels).Error; err != nil {
		r.logger.Errorw("failed to list feature types", "error", err)
		return nil, fmt.Errorf("failed to list feature types: %w", err)
	}

	return r.toEntities(typeModels)
}

func (r *FeatureTypeRepositoryImpl) Update(ctx context.Context, featureType *catalog.FeatureType) error {
	model := r.toModel(featureType)

	result := r.db.WithContext(ctx).Model(&models.FeatureTypeModel{}).
		Where("id = ?", featureType.ID()).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"unit":       model.Unit,
			"icon":       model.Icon,
			"sort_order": model.SortOrder,
			"is_active":  model.IsActive,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update feature type", "error", result.Error, "feature_type_id", featureType.ID())
		return fmt.Errorf("failed to update feature type: %w", result.Error)
	}

	r.logger.Infow("feature type updated", "feature_type_id", featureType.ID())
	return nil
}

func (r *FeatureTypeRepositoryImpl) Delete(ctx context.Context, typeID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feature_type_id = ?", typeID).
			Delete(&models.FeatureLimitModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.FeatureTypeModel{}, typeID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("feature type not found")
		}
		return nil
	})

	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		r.logger.Errorw("failed to delete feature type", "error", err, "feature_type_id", typeID)
		return fmt.Errorf("failed to delete feature type: %w", err)
	}

	r.logger.Infow("feature type deleted", "feature_type_id", typeID)
	return nil
}

func (r *FeatureTypeRepositoryImpl) toModel(featureType *catalog.FeatureType) *models.FeatureTypeModel {
	return &models.FeatureTypeModel{
		ID:        featureType.ID(),
		SID:       featureType.SID(),
		Name:      featureType.Name(),
		Unit:      featureType.Unit(),
		Icon:      featureType.Icon(),
		SortOrder: featureType.SortOrder(),
		IsActive:  featureType.IsActive(),
		CreatedAt: featureType.CreatedAt(),
		UpdatedAt: featureType.UpdatedAt(),
	}
}

func (r *FeatureTypeRepositoryImpl) toEntity(model *models.FeatureTypeModel) (*catalog.FeatureType, error) {
	return catalog.ReconstructFeatureType(
		model.ID,
		model.SID,
		model.Name,
		model.Unit,
		model.Icon,
		model.SortOrder,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (r *FeatureTypeRepositoryImpl) toEntities(typeModels []*models.FeatureTypeModel) ([]*catalog.FeatureType, error) {
	types := make([]*catalog.FeatureType, 0, len(typeModels))
	for _, model := range typeModels {
		featureType, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		types = append(types, featureType)
	}
	return types, nil
}
