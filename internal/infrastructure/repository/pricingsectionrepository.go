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

type PricingSectionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPricingSectionRepository(db *gorm.DB, logger logger.Interface) catalog.PricingSectionRepository {
	return &PricingSectionRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PricingSectionRepositoryImpl) Create(ctx context.Context, section *catalog.PricingSection) error {
	model := r.toModel(section)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create pricing section", "error", err, "name", section.Name())
		return fmt.Errorf("failed to create pricing section: %w", err)
	}

	if err := section.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("pricing section created", "section_id", model.ID, "name", section.Name())
	return nil
}

func (r *PricingSectionRepositoryImpl) GetByID(ctx context.Context, sectionID uint) (*catalog.PricingSection, error) {
	var model models.PricingSectionModel
	err := r.db.WithContext(ctx).
		Preload("Plans", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		First(&model, sectionID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get pricing section by ID", "error", err, "section_id", sectionID)
		return nil, fmt.Errorf("failed to get pricing section: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PricingSectionRepositoryImpl) GetBySID(ctx context.Context, sid string) (*catalog.PricingSection, error) {
	var model models.PricingSectionModel
	err := r.db.WithContext(ctx).
		Preload("Plans", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Where("sid = ?", sid).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get pricing section by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get pricing section by SID: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PricingSectionRepositoryImpl) GetDefault(ctx context.Context) (*catalog.PricingSection, error) {
	var model models.PricingSectionModel
	err := r.db.WithContext(ctx).
		Preload("Plans", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Where("is_default = ?", true).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get default pricing section", "error", err)
		return nil, fmt.Errorf("failed to get default pricing section: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PricingSectionRepositoryImpl) List(ctx context.Context) ([]*catalog.PricingSection, error) {
	var sectionModels []*models.PricingSectionModel
	err := r.db.WithContext(ctx).
		Preload("Plans", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Order("id ASC").
		Find(&sectionModels).Error
	if err != nil {
		r.logger.Errorw("failed to list pricing sections", "error", err)
		return nil, fmt.Errorf("failed to list pricing sections: %w", err)
	}

	sections := make([]*catalog.PricingSection, 0, len(sectionModels))
	for _, model := range sectionModels {
		section, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, nil
}

func (r *PricingSectionRepositoryImpl) Update(ctx context.Context, section *catalog.PricingSection) error {
	model := r.toModel(section)

	result := r.db.WithContext(ctx).Model(&models.PricingSectionModel{}).
		Where("id = ?", section.ID()).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"heading":    model.Heading,
			"subheading": model.Subheading,
			"layout":     model.Layout,
			"background": model.Background,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update pricing section", "error", result.Error, "section_id", section.ID())
		return fmt.Errorf("failed to update pricing section: %w", result.Error)
	}

	r.logger.Infow("pricing section updated", "section_id", section.ID())
	return nil
}

func (r *PricingSectionRepositoryImpl) Delete(ctx context.Context, sectionID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pricing_section_id = ?", sectionID).
			Delete(&models.PricingSectionPlanModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.PricingSectionModel{}, sectionID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("pricing section not found")
		}
		return nil
	})

	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		r.logger.Errorw("failed to delete pricing section", "error", err, "section_id", sectionID)
		return fmt.Errorf("failed to delete pricing section: %w", err)
	}

	r.logger.Infow("pricing section deleted", "section_id", sectionID)
	return nil
}

// ReplacePlans swaps the section's plan joins in one transaction.
func (r *PricingSectionRepositoryImpl) ReplacePlans(ctx context.Context, sectionID uint, plans []catalog.SectionPlan) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pricing_section_id = ?", sectionID).
			Delete(&models.PricingSectionPlanModel{}).Error; err != nil {
			return err
		}

		for _, plan := range plans {
			join := &models.PricingSectionPlanModel{
				PricingSectionID: sectionID,
				PlanID:           plan.PlanID,
				SortOrder:        plan.SortOrder,
				IsVisible:        plan.IsVisible,
			}
			if err := tx.Create(join).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		r.logger.Errorw("failed to replace pricing section plans", "error", err, "section_id", sectionID)
		return fmt.Errorf("failed to replace pricing section plans: %w", err)
	}

	r.logger.Infow("pricing section plans replaced", "section_id", sectionID, "count", len(plans))
	return nil
}

// SetDefault marks one section as default and clears every other section's
// flag in a single transaction.
func (r *PricingSectionRepositoryImpl) SetDefault(ctx context.Context, sectionID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.PricingSectionModel{}).
			Where("id = ?", sectionID).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("pricing section not found")
		}

		return tx.Model(&models.PricingSectionModel{}).
			Where("id != ?", sectionID).
			Update("is_default", false).Error
	})

	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		r.logger.Errorw("failed to set default pricing section", "error", err, "section_id", sectionID)
		return fmt.Errorf("failed to set default pricing section: %w", err)
	}

	r.logger.Infow("default pricing section set", "section_id", sectionID)
	return nil
}

func (r *PricingSectionRepositoryImpl) toModel(section *catalog.PricingSection) *models.PricingSectionModel {
	return &models.PricingSectionModel{
		ID:         section.ID(),
		SID:        section.SID(),
		Name:       section.Name(),
		Heading:    section.Heading(),
		Subheading: section.Subheading(),
		Layout:     string(section.Layout()),
		Background: section.Background(),
		IsDefault:  section.IsDefault(),
		CreatedAt:  section.CreatedAt(),
		UpdatedAt:  section.UpdatedAt(),
	}
}

func (r *PricingSectionRepositoryImpl) toEntity(model *models.PricingSectionModel) (*catalog.PricingSection, error) {
	plans := make([]catalog.SectionPlan, 0, len(model.Plans))
	for _, join := range model.Plans {
		plans = append(plans, catalog.SectionPlan{
			PlanID:    join.PlanID,
			SortOrder: join.SortOrder,
			IsVisible: join.IsVisible,
		})
	}

	return catalog.ReconstructPricingSection(
		model.ID,
		model.SID,
		model.Name,
		model.Heading,
		model.Subheading,
		catalog.PricingLayout(model.Layout),
		model.Background,
		model.IsDefault,
		plans,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
