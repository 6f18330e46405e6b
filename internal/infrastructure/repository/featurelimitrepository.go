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

type FeatureLimitRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewFeatureLimitRepository(db *gorm.DB, logger logger.Interface) catalog.FeatureLimitRepository {
	return &FeatureLimitRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// Upsert creates the (plan, feature type) limit or replaces the existing one.
func (r *FeatureLimitRepositoryImpl) Upsert(ctx context.Context, limit *catalog.FeatureLimit) error {
	model := r.toModel(limit)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "plan_id"}, {Name: "feature_type_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "is_unlimited", "updated_at"}),
	}).Create(model).Error

	if err != nil {
		r.logger.Errorw("failed to upsert feature limit", "error", err,
			"plan_id", limit.PlanID(), "feature_type_id", limit.FeatureTypeID())
		return fmt.Errorf("failed to upsert feature limit: %w", err)
	}

	if limit.ID() == 0 && model.ID != 0 {
		if err := limit.SetID(model.ID); err != nil {
			return err
		}
	}

	r.logger.Infow("feature limit upserted",
		"plan_id", limit.PlanID(), "feature_type_id", limit.FeatureTypeID())
	return nil
}

// GetByPlanIDs returns limits grouped by plan ID.
func (r *FeatureLimitRepositoryImpl) GetByPlanIDs(ctx context.Context, planIDs []uint) (map[uint][]*catalog.FeatureLimit, error) {
	result := make(map[uint][]*catalog.FeatureLimit)
	if len(planIDs) == 0 {
		return result, nil
	}

	var limitModels []*models.FeatureLimitModel
	if err := r.db.WithContext(ctx).Where("plan_id IN ?", planIDs).Find(&limitModels).Error; err != nil {
		r.logger.Errorw("failed to get feature limits by plan IDs", "error", err, "plan_ids", planIDs)
		return nil, fmt.Errorf("failed to get feature limits by plan IDs: %w", err)
	}

	for _, model := range limitModels {
		limit, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		result[model.PlanID] = append(result[model.PlanID], limit)
	}
	return result, nil
}

func (r *FeatureLimitRepositoryImpl) List(ctx context.Context) ([]*catalog.FeatureLimit, error) {
	var limitModels []*models.FeatureLimitModel
	if err := r.db.WithContext(ctx).Order("plan_id ASC, feature_type_id ASC").Find(&limitModels).Error; err != nil {
		r.logger.Errorw("failed to list feature limits", "error", err)
		return nil, fmt.Errorf("failed to list feature limits: %w", err)
	}

	limits := make([]*catalog.FeatureLimit, 0, len(limitModels))
	for _, model := range limitModels {
		limit, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		limits = append(limits, limit)
	}
	return limits, nil
}

func (r *FeatureLimitRepositoryImpl) Delete(ctx context.Context, limitID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FeatureLimitModel{}, limitID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete feature limit", "error", result.Error, "limit_id", limitID)
		return fmt.Errorf("failed to delete feature limit: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("feature limit not found")
	}

	r.logger.Infow("feature limit deleted", "limit_id", limitID)
	return nil
}

func (r *FeatureLimitRepositoryImpl) toModel(limit *catalog.FeatureLimit) *models.FeatureLimitModel {
	return &models.FeatureLimitModel{
		ID:            limit.ID(),
		PlanID:        limit.PlanID(),
		FeatureTypeID: limit.FeatureTypeID(),
		Value:         limit.Value(),
		IsUnlimited:   limit.IsUnlimited(),
		CreatedAt:     limit.CreatedAt(),
		UpdatedAt:     limit.UpdatedAt(),
	}
}

func (r *FeatureLimitRepositoryImpl) toEntity(model *models.FeatureLimitModel) (*catalog.FeatureLimit, error) {
	return catalog.ReconstructFeatureLimit(
		model.ID,
		model.PlanID,
		model.FeatureTypeID,
		model.Value,
		model.IsUnlimited,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
