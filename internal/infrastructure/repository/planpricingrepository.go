package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/infrastructure/persistence/models"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type PlanPricingRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPlanPricingRepository(db *gorm.DB, logger logger.Interface) catalog.PlanPricingRepository {
	return &PlanPricingRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PlanPricingRepositoryImpl) Create(ctx context.Context, pricing *catalog.PlanPricing) error {
	model := r.toModel(pricing)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateKeyError(err) {
			return catalog.ErrDuplicatePricing
		}
		r.logger.Errorw("failed to create plan pricing", "error", err,
			"plan_id", pricing.PlanID(), "billing_cycle_id", pricing.BillingCycleID())
		return fmt.Errorf("failed to create plan pricing: %w", err)
	}

	if err := pricing.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("plan pricing created", "pricing_id", model.ID,
		"plan_id", pricing.PlanID(), "billing_cycle_id", pricing.BillingCycleID())
	return nil
}

func (r *PlanPricingRepositoryImpl) GetByID(ctx context.Context, pricingID uint) (*catalog.PlanPricing, error) {
	var model models.PlanPricingModel
	if err := r.db.WithContext(ctx).First(&model, pricingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan pricing by ID", "error", err, "pricing_id", pricingID)
		return nil, fmt.Errorf("failed to get plan pricing: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PlanPricingRepositoryImpl) GetByPlanAndCycle(ctx context.Context, planID, cycleID uint) (*catalog.PlanPricing, error) {
	var model models.PlanPricingModel
	err := r.db.WithContext(ctx).
		Where("plan_id = ? AND billing_cycle_id = ?", planID, cycleID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan pricing", "error", err,
			"plan_id", planID, "billing_cycle_id", cycleID)
		return nil, fmt.Errorf("failed to get plan pricing: %w", err)
	}

	return r.toEntity(&model)
}

// GetByPlanIDs returns pricing rows grouped by plan ID so matrix resolution
// can batch-load everything in one query.
func (r *PlanPricingRepositoryImpl) GetByPlanIDs(ctx context.Context, planIDs []uint) (map[uint][]*catalog.PlanPricing, error) {
	result := make(map[uint][]*catalog.PlanPricing)
	if len(planIDs) == 0 {
		return result, nil
	}

	var pricingModels []*models.PlanPricingModel
	if err := r.db.WithContext(ctx).Where("plan_id IN ?", planIDs).Find(&pricingModels).Error; err != nil {
		r.logger.Errorw("failed to get plan pricing by plan IDs", "error", err, "plan_ids", planIDs)
		return nil, fmt.Errorf("failed to get plan pricing by plan IDs: %w", err)
	}

	for _, model := range pricingModels {
		pricing, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		result[model.PlanID] = append(result[model.PlanID], pricing)
	}
	return result, nil
}

func (r *PlanPricingRepositoryImpl) List(ctx context.Context) ([]*catalog.PlanPricing, error) {
	var pricingModels []*models.PlanPricingModel
	if err := r.db.WithContext(ctx).Order("plan_id ASC, billing_cycle_id ASC").Find(&pricingModels).Error; err != nil {
		r.logger.Errorw("failed to list plan pricing", "error", err)
		return nil, fmt.Errorf("failed to list plan pricing: %w", err)
	}

	pricings := make([]*catalog.PlanPricing, 0, len(pricingModels))
	for _, model := range pricingModels {
		pricing, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		pricings = append(pricings, pricing)
	}
	return pricings, nil
}

func (r *PlanPricingRepositoryImpl) Update(ctx context.Context, pricing *catalog.PlanPricing) error {
	model := r.toModel(pricing)

	result := r.db.WithContext(ctx).Model(&models.PlanPricingModel{}).
		Where("id = ?", pricing.ID()).
		Updates(map[string]interface{}{
			"price_cents":     model.PriceCents,
			"stripe_price_id": model.StripePriceID,
			"cta_url":         model.CTAURL,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update plan pricing", "error", result.Error, "pricing_id", pricing.ID())
		return fmt.Errorf("failed to update plan pricing: %w", result.Error)
	}

	r.logger.Infow("plan pricing updated", "pricing_id", pricing.ID())
	return nil
}

func (r *PlanPricingRepositoryImpl) Delete(ctx context.Context, pricingID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PlanPricingModel{}, pricingID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan pricing", "error", result.Error, "pricing_id", pricingID)
		return fmt.Errorf("failed to delete plan pricing: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("plan pricing not found")
	}

	r.logger.Infow("plan pricing deleted", "pricing_id", pricingID)
	return nil
}

func (r *PlanPricingRepositoryImpl) toModel(pricing *catalog.PlanPricing) *models.PlanPricingModel {
	return &models.PlanPricingModel{
		ID:             pricing.ID(),
		PlanID:         pricing.PlanID(),
		BillingCycleID: pricing.BillingCycleID(),
		PriceCents:     pricing.PriceCents(),
		StripePriceID:  pricing.StripePriceID(),
		CTAURL:         pricing.CTAURL(),
		CreatedAt:      pricing.CreatedAt(),
		UpdatedAt:      pricing.UpdatedAt(),
	}
}

func (r *PlanPricingRepositoryImpl) toEntity(model *models.PlanPricingModel) (*catalog.PlanPricing, error) {
	return catalog.ReconstructPlanPricing(
		model.ID,
		model.PlanID,
		model.BillingCycleID,
		model.PriceCents,
		model.StripePriceID,
		model.CTAURL,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// isDuplicateKeyError detects unique constraint violations across the MySQL
// driver and the sqlite driver used in tests.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "unique constraint")
}
