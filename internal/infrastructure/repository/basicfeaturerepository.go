package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/infrastructure/persistence/models"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type BasicFeatureRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewBasicFeatureRepository(db *gorm.DB, logger logger.Interface) catalog.BasicFeatureRepository {
	return &BasicFeatureRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *BasicFeatureRepositoryImpl) Create(ctx context.Context, feature *catalog.BasicFeature) error {
	model := r.toModel(feature)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create basic feature", "error", err, "name", feature.Name())
		return fmt.Errorf("failed to create basic feature: %w", err)
	}

	if err := feature.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("basic feature created", "feature_id", model.ID, "name", feature.Name())
	return nil
}

func (r *BasicFeatureRepositoryImpl) GetByID(ctx context.Context, featureID uint) (*catalog.BasicFeature, error) {
	var model models.BasicFeatureModel
	if err := r.db.WithContext(ctx).First(&model, featureID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get basic feature by ID", "error", err, "feature_id", featureID)
		return nil, fmt.Errorf("failed to get basic feature: %w", err)
	}

	return r.toEntity(&model)
}

func (r *BasicFeatureRepositoryImpl) GetBySID(ctx context.Context, sid string) (*catalog.BasicFeature, error) {
	var model models.BasicFeatureModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get basic feature by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get basic feature by SID: %w", err)
	}

	return r.toEntity(&model)
}

func (r *BasicFeatureRepositoryImpl) List(ctx context.Context) ([]*catalog.BasicFeature, error) {
	var featureModels []*models.BasicFeatureModel
	if err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&featureModels).Error; err != nil {
		r.logger.Errorw("failed to list basic features", "error", err)
		return nil, fmt.Errorf("failed to list basic features: %w", err)
	}

	return r.toEntities(featureModels)
}

func (r *BasicFeatureRepositoryImpl) Update(ctx context.Context, feature *catalog.BasicFeature) error {
	model := r.toModel(feature)

	result := r.db.WithContext(ctx).Model(&models.BasicFeatureModel{}).
		Where("id = ?", feature.ID()).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"sort_order": model.SortOrder,
			"is_active":  model.IsActive,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update basic feature", "error", result.Error, "feature_id", feature.ID())
		return fmt.Errorf("failed to update basic feature: %w", result.Error)
	}

	r.logger.Infow("basic feature updated", "feature_id", feature.ID())
	return nil
}

func (r *BasicFeatureRepositoryImpl) Delete(ctx context.Context, featureID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("basic_feature_id = ?", featureID).
			Delete(&models.PlanBasicFeatureModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.BasicFeatureModel{}, featureID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("basic feature not found")
		}
		return nil
	})

	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		r.logger.Errorw("failed to delete basic feature", "error", err, "feature_id", featureID)
		return fmt.Errorf("failed to delete basic feature: %w", err)
	}

	r.logger.Infow("basic feature deleted", "feature_id", featureID)
	return nil
}

// AssignToPlan adds the presence-only join row; assigning twice is a no-op.
func (r *BasicFeatureRepositoryImpl) AssignToPlan(ctx context.Context, planID, featureID uint) error {
	join := &models.PlanBasicFeatureModel{
		PlanID:         planID,
		BasicFeatureID: featureID,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(join).Error
	if err != nil {
		r.logger.Errorw("failed to assign basic feature to plan", "error", err,
			"plan_id", planID, "feature_id", featureID)
		return fmt.Errorf("failed to assign basic feature to plan: %w", err)
	}

	r.logger.Infow("basic feature assigned to plan", "plan_id", planID, "feature_id", featureID)
	return nil
}

func (r *BasicFeatureRepositoryImpl) RemoveFromPlan(ctx context.Context, planID, featureID uint) error {
	result := r.db.WithContext(ctx).
		Where("plan_id = ? AND basic_feature_id = ?", planID, featureID).
		Delete(&models.PlanBasicFeatureModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to remove basic feature from plan", "error", result.Error,
			"plan_id", planID, "feature_id", featureID)
		return fmt.Errorf("failed to remove basic feature from plan: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("basic feature is not assigned to the plan")
	}

	r.logger.Infow("basic feature removed from plan", "plan_id", planID, "feature_id", featureID)
	return nil
}

// GetByPlanIDs returns included basic features grouped by plan ID, ordered
// by feature sort order.
func (r *BasicFeatureRepositoryImpl) GetByPlanIDs(ctx context.Context, planIDs []uint) (map[uint][]*catalog.BasicFeature, error) {
	result := make(map[uint][]*catalog.BasicFeature)
	if len(planIDs) == 0 {
		return result, nil
	}

	var joins []models.PlanBasicFeatureModel
	if err := r.db.WithContext(ctx).Where("plan_id IN ?", planIDs).Find(&joins).Error; err != nil {
		r.logger.Errorw("failed to get plan basic feature joins", "error", err, "plan_ids", planIDs)
		return nil, fmt.Errorf("failed to get plan basic feature joins: %w", err)
	}
	if len(joins) == 0 {
		return result, nil
	}

	featureIDs := make([]uint, 0, len(joins))
	for _, join := range joins {
		featureIDs = append(featureIDs, join.BasicFeatureID)
	}

	var featureModels []*models.BasicFeatureModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", featureIDs).
		Order("sort_order ASC, id ASC").
		Find(&featureModels).Error; err != nil {
		r.logger.Errorw("failed to get basic features by IDs", "error", err)
		return nil, fmt.Errorf("failed to get basic features by IDs: %w", err)
	}

	featuresByID := make(map[uint]*catalog.BasicFeature, len(featureModels))
	orderedIDs := make([]uint, 0, len(featureModels))
	for _, model := range featureModels {
		feature, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		featuresByID[model.ID] = feature
		orderedIDs = append(orderedIDs, model.ID)
	}

	included := make(map[uint]map[uint]bool, len(planIDs))
	for _, join := range joins {
		if included[join.PlanID] == nil {
			included[join.PlanID] = make(map[uint]bool)
		}
		included[join.PlanID][join.BasicFeatureID] = true
	}

	for planID, featureSet := range included {
		for _, featureID := range orderedIDs {
			if featureSet[featureID] {
				result[planID] = append(result[planID], featuresByID[featureID])
			}
		}
	}
	return result, nil
}

func (r *BasicFeatureRepositoryImpl) toModel(feature *catalog.BasicFeature) *models.BasicFeatureModel {
	return &models.BasicFeatureModel{
		ID:        feature.ID(),
		SID:       feature.SID(),
		Name:      feature.Name(),
		SortOrder: feature.SortOrder(),
		IsActive:  feature.IsActive(),
		CreatedAt: feature.CreatedAt(),
		UpdatedAt: feature.UpdatedAt(),
	}
}

func (r *BasicFeatureRepositoryImpl) toEntity(model *models.BasicFeatureModel) (*catalog.BasicFeature, error) {
	return catalog.ReconstructBasicFeature(
		model.ID,
		model.SID,
		model.Name,
		model.SortOrder,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (r *BasicFeatureRepositoryImpl) toEntities(featureModels []*models.BasicFeatureModel) ([]*catalog.BasicFeature, error) {
	features := make([]*catalog.BasicFeature, 0, len(featureModels))
	for _, model := range featureModels {
		feature, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		features = append(features, feature)
	}
	return features, nil
}
