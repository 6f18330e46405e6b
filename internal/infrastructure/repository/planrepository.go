package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/infrastructure/persistence/models"
	"github.com/beacon-cms/beacon/internal/shared/db"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) catalog.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *catalog.Plan) error {
	model := r.toModel(plan)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan", "error", err, "name", plan.Name())
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := plan.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("plan created", "plan_id", model.ID, "name", plan.Name())
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, planID uint) (*catalog.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).First(&model, planID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "error", err, "plan_id", planID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PlanRepositoryImpl) GetBySID(ctx context.Context, sid string) (*catalog.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get plan by SID: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PlanRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Plan, error) {
	if len(ids) == 0 {
		return []*catalog.Plan{}, nil
	}

	var planModels []*models.PlanModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to get plans by IDs", "error", err, "ids", ids)
		return nil, fmt.Errorf("failed to get plans by IDs: %w", err)
	}

	return r.toEntities(planModels)
}

func (r *PlanRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*catalog.Plan, error) {
	query := r.db.WithContext(ctx).Order("position ASC, id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var planModels []*models.PlanModel
	if err := query.Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return r.toEntities(planModels)
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, plan *catalog.Plan) error {
	model := r.toModel(plan)

	result := r.db.WithContext(ctx).Model(&models.PlanModel{}).
		Where("id = ?", plan.ID()).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"position":    model.Position,
			"is_active":   model.IsActive,
			"is_popular":  model.IsPopular,
			"version":     model.Version,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "error", result.Error, "plan_id", plan.ID())
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}

	r.logger.Infow("plan updated", "plan_id", plan.ID())
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, planID uint) error {
	usages, err := r.CountUsages(ctx, planID)
	if err != nil {
		return err
	}
	if usages > 0 {
		return catalog.ErrPlanInUse
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.PlanModel{}, planID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan", "error", result.Error, "plan_id", planID)
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("plan not found")
	}

	r.logger.Infow("plan deleted", "plan_id", planID)
	return nil
}

// CountUsages counts pricing rows, feature limits, basic feature joins and
// pricing section joins that still reference the plan.
func (r *PlanRepositoryImpl) CountUsages(ctx context.Context, planID uint) (int64, error) {
	var total int64

	counts := []struct {
		model interface{}
	}{
		{&models.PlanPricingModel{}},
		{&models.FeatureLimitModel{}},
		{&models.PlanBasicFeatureModel{}},
		{&models.PricingSectionPlanModel{}},
	}

	for _, c := range counts {
		var n int64
		if err := r.db.WithContext(ctx).Model(c.model).Where("plan_id = ?", planID).Count(&n).Error; err != nil {
			r.logger.Errorw("failed to count plan usages", "error", err, "plan_id", planID)
			return 0, fmt.Errorf("failed to count plan usages: %w", err)
		}
		total += n
	}

	return total, nil
}

func (r *PlanRepositoryImpl) toModel(plan *catalog.Plan) *models.PlanModel {
	return &models.PlanModel{
		ID:          plan.ID(),
		SID:         plan.SID(),
		Name:        plan.Name(),
		Description: plan.Description(),
		Position:    plan.Position(),
		IsActive:    plan.IsActive(),
		IsPopular:   plan.IsPopular(),
		Version:     plan.Version(),
		CreatedAt:   plan.CreatedAt(),
		UpdatedAt:   plan.UpdatedAt(),
	}
}

func (r *PlanRepositoryImpl) toEntity(model *models.PlanModel) (*catalog.Plan, error) {
	return catalog.ReconstructPlan(
		model.ID,
		model.SID,
		model.Name,
		model.Description,
		model.Position,
		model.IsActive,
		model.IsPopular,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (r *PlanRepositoryImpl) toEntities(planModels []*models.PlanModel) ([]*catalog.Plan, error) {
	plans := make([]*catalog.Plan, 0, len(planModels))
	for _, model := range planModels {
		plan, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}
