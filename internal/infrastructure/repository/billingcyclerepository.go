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

type BillingCycleRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewBillingCycleRepository(db *gorm.DB, logger logger.Interface) catalog.BillingCycleRepository {
	return &BillingCycleRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *BillingCycleRepositoryImpl) Create(ctx context.Context, cycle *catalog.BillingCycle) error {
	model := r.toModel(cycle)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create billing cycle", "error", err, "label", cycle.Label())
		return fmt.Errorf("failed to create billing cycle: %w", err)
	}

	if err := cycle.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("billing cycle created", "cycle_id", model.ID, "label", cycle.Label())
	return nil
}

func (r *BillingCycleRepositoryImpl) GetByID(ctx context.Context, cycleID uint) (*catalog.BillingCycle, error) {
	var model models.BillingCycleModel
	if err := r.db.WithContext(ctx).First(&model, cycleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get billing cycle by ID", "error", err, "cycle_id", cycleID)
		return nil, fmt.Errorf("failed to get billing cycle: %w", err)
	}

	return r.toEntity(&model)
}

func (r *BillingCycleRepositoryImpl) GetBySID(ctx context.Context, sid string) (*catalog.BillingCycle, error) {
	var model models.BillingCycleModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get billing cycle by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get billing cycle by SID: %w", err)
	}

	return r.toEntity(&model)
}

func (r *BillingCycleRepositoryImpl) GetDefault(ctx context.Context) (*catalog.BillingCycle, error) {
	var model models.BillingCycleModel
	if err := r.db.WithContext(ctx).Where("is_default = ?", true).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get default billing cycle", "error", err)
		return nil, fmt.Errorf("failed to get default billing cycle: %w", err)
	}

	return r.toEntity(&model)
}

func (r *BillingCycleRepositoryImpl) List(ctx context.Context) ([]*catalog.BillingCycle, error) {
	var cycleModels []*models.BillingCycleModel
	if err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&cycleModels).Error; err != nil {
		r.logger.Errorw("failed to list billing cycles", "error", err)
		return nil, fmt.Errorf("failed to list billing cycles: %w", err)
	}

	cycles := make([]*catalog.BillingCycle, 0, len(cycleModels))
	for _, model := range cycleModels {
		cycle, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, cycle)
	}
	return cycles, nil
}

func (r *BillingCycleRepositoryImpl) Update(ctx context.Context, cycle *catalog.BillingCycle) error {
	model := r.toModel(cycle)

	result := r.db.WithContext(ctx).Model(&models.BillingCycleModel{}).
		Where("id = ?", cycle.ID()).
		Updates(map[string]interface{}{
			"label":      model.Label,
			"multiplier": model.Multiplier,
			"sort_order": model.SortOrder,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update billing cycle", "error", result.Error, "cycle_id", cycle.ID())
		return fmt.Errorf("failed to update billing cycle: %w", result.Error)
	}

	r.logger.Infow("billing cycle updated", "cycle_id", cycle.ID())
	return nil
}

func (r *BillingCycleRepositoryImpl) Delete(ctx context.Context, cycleID uint) error {
	var usages int64
	if err := r.db.WithContext(ctx).Model(&models.PlanPricingModel{}).
		Where("billing_cycle_id = ?", cycleID).Count(&usages).Error; err != nil {
		r.logger.Errorw("failed to count billing cycle usages", "error", err, "cycle_id", cycleID)
		return fmt.Errorf("failed to count billing cycle usages: %w", err)
	}
	if usages > 0 {
		return catalog.ErrCycleInUse
	}

	result := r.db.WithContext(ctx).Delete(&models.BillingCycleModel{}, cycleID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete billing cycle", "error", result.Error, "cycle_id", cycleID)
		return fmt.Errorf("failed to delete billing cycle: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("billing cycle not found")
	}

	r.logger.Infow("billing cycle deleted", "cycle_id", cycleID)
	return nil
}

// SetDefault marks one cycle as default and clears every other cycle's flag
// in a single transaction.
func (r *BillingCycleRepositoryImpl) SetDefault(ctx context.Context, cycleID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.BillingCycleModel{}).
			Where("id = ?", cycleID).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("billing cycle not found")
		}

		return tx.Model(&models.BillingCycleModel{}).
			Where("id != ?", cycleID).
			Update("is_default", false).Error
	})

	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		r.logger.Errorw("failed to set default billing cycle", "error", err, "cycle_id", cycleID)
		return fmt.Errorf("failed to set default billing cycle: %w", err)
	}

	r.logger.Infow("default billing cycle set", "cycle_id", cycleID)
	return nil
}

func (r *BillingCycleRepositoryImpl) toModel(cycle *catalog.BillingCycle) *models.BillingCycleModel {
	return &models.BillingCycleModel{
		ID:         cycle.ID(),
		SID:        cycle.SID(),
		Label:      cycle.Label(),
		Multiplier: cycle.Multiplier(),
		IsDefault:  cycle.IsDefault(),
		SortOrder:  cycle.SortOrder(),
		CreatedAt:  cycle.CreatedAt(),
		UpdatedAt:  cycle.UpdatedAt(),
	}
}

func (r *BillingCycleRepositoryImpl) toEntity(model *models.BillingCycleModel) (*catalog.BillingCycle, error) {
	return catalog.ReconstructBillingCycle(
		model.ID,
		model.SID,
		model.Label,
		model.Multiplier,
		model.IsDefault,
		model.SortOrder,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
