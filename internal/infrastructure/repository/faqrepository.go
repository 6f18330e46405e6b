package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/beacon-cms/beacon/internal/domain/content"
	"github.com/beacon-cms/beacon/internal/infrastructure/persistence/models"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type FAQCategoryRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewFAQCategoryRepository(db *gorm.DB, logger logger.Interface) content.FAQCategoryRepository {
	return &FAQCategoryRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *FAQCategoryRepositoryImpl) Create(ctx context.Context, category *content.FAQCategory) error {
	model := r.toModel(category)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create FAQ category", "error", err, "name", category.Name())
		return fmt.Errorf("failed to create FAQ category: %w", err)
	}

	if err := category.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("FAQ category created", "category_id", model.ID, "name", category.Name())
	return nil
}

func (r *FAQCategoryRepositoryImpl) GetByID(ctx context.Context, categoryID uint) (*content.FAQCategory, error) {
	var model models.FAQCategoryModel
	if err := r.db.WithContext(ctx).First(&model, categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get FAQ category by ID", "error", err, "category_id", categoryID)
		return nil, fmt.Errorf("failed to get FAQ category: %w", err)
	}

	return r.toEntity(&model)
}

func (r *FAQCategoryRepositoryImpl) GetBySID(ctx context.Context, sid string) (*content.FAQCategory, error) {
	var model models.FAQCategoryModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get FAQ category by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get FAQ category by SID: %w", err)
	}

	return r.toEntity(&model)
}

func (r *FAQCategoryRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*content.FAQCategory, error) {
	query := r.db.WithContext(ctx).Order("sort_order ASC, id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categoryModels []*models.FAQCategoryModel
	if err := query.Find(&categoryModels).Error; err != nil {
		r.logger.Errorw("failed to list FAQ categories", "error", err)
		return nil, fmt.Errorf("failed to list FAQ categories: %w", err)
	}

	categories := make([]*content.FAQCategory, 0, len(categoryModels))
	for _, model := range categoryModels {
		category, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *FAQCategoryRepositoryImpl) Update(ctx context.Context, category *content.FAQCategory) error {
	model := r.toModel(category)

	result := r.db.WithContext(ctx).Model(&models.FAQCategoryModel{}).
		Where("id = ?", category.ID()).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"sort_order": model.SortOrder,
			"is_active":  model.IsActive,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update FAQ category", "error", result.Error, "category_id", category.ID())
		return fmt.Errorf("failed to update FAQ category: %w", result.Error)
	}

	r.logger.Infow("FAQ category updated", "category_id", category.ID())
	return nil
}

func (r *FAQCategoryRepositoryImpl) Delete(ctx context.Context, categoryID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", categoryID).
			Delete(&models.FAQModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.FAQCategoryModel{}, categoryID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("FAQ category not found")
		}
		return nil
	})

	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		r.logger.Errorw("failed to delete FAQ category", "error", err, "category_id", categoryID)
		return fmt.Errorf("failed to delete FAQ category: %w", err)
	}

	r.logger.Infow("FAQ category deleted", "category_id", categoryID)
	return nil
}

func (r *FAQCategoryRepositoryImpl) toModel(category *content.FAQCategory) *models.FAQCategoryModel {
	return &models.FAQCategoryModel{
		ID:        category.ID(),
		SID:       category.SID(),
		Name:      category.Name(),
		SortOrder: category.SortOrder(),
		IsActive:  category.IsActive(),
		CreatedAt: category.CreatedAt(),
		UpdatedAt: category.UpdatedAt(),
	}
}

func (r *FAQCategoryRepositoryImpl) toEntity(model *models.FAQCategoryModel) (*content.FAQCategory, error) {
	return content.ReconstructFAQCategory(
		model.ID,
		model.SID,
		model.Name,
		model.SortOrder,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

type FAQRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewFAQRepository(db *gorm.DB, logger logger.Interface) content.FAQRepository {
	return &FAQRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *FAQRepositoryImpl) Create(ctx context.Context, faq *content.FAQ) error {
	model := r.toModel(faq)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create FAQ", "error", err, "category_id", faq.CategoryID())
		return fmt.Errorf("failed to create FAQ: %w", err)
	}

	if err := faq.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("FAQ created", "faq_id", model.ID, "category_id", faq.CategoryID())
	return nil
}

func (r *FAQRepositoryImpl) GetByID(ctx context.Context, faqID uint) (*content.FAQ, error) {
	var model models.FAQModel
	if err := r.db.WithContext(ctx).First(&model, faqID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get FAQ by ID", "error", err, "faq_id", faqID)
		return nil, fmt.Errorf("failed to get FAQ: %w", err)
	}

	return r.toEntity(&model)
}

func (r *FAQRepositoryImpl) GetBySID(ctx context.Context, sid string) (*content.FAQ, error) {
	var model models.FAQModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get FAQ by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get FAQ by SID: %w", err)
	}

	return r.toEntity(&model)
}

// ListActiveByCategory returns active FAQs in sort order; a zero categoryID
// returns the whole active pool.
func (r *FAQRepositoryImpl) ListActiveByCategory(ctx context.Context, categoryID uint) ([]*content.FAQ, error) {
	query := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC")
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var faqModels []*models.FAQModel
	if err := query.Find(&faqModels).Error; err != nil {
		r.logger.Errorw("failed to list active FAQs", "error", err, "category_id", categoryID)
		return nil, fmt.Errorf("failed to list active FAQs: %w", err)
	}

	return r.toEntities(faqModels)
}

func (r *FAQRepositoryImpl) List(ctx context.Context) ([]*content.FAQ, error) {
	var faqModels []*models.FAQModel
	if err := r.db.WithContext(ctx).Order("category_id ASC, sort_order ASC, id ASC").Find(&faqModels).Error; err != nil {
		r.logger.Errorw("failed to list FAQs", "error", err)
		return nil, fmt.Errorf("failed to list FAQs: %w", err)
	}

	return r.toEntities(faqModels)
}

func (r *FAQRepositoryImpl) Update(ctx context.Context, faq *content.FAQ) error {
	model := r.toModel(faq)

	result := r.db.WithContext(ctx).Model(&models.FAQModel{}).
		Where("id = ?", faq.ID()).
		Updates(map[string]interface{}{
			"category_id": model.CategoryID,
			"question":    model.Question,
			"answer":      model.Answer,
			"sort_order":  model.SortOrder,
			"is_active":   model.IsActive,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update FAQ", "error", result.Error, "faq_id", faq.ID())
		return fmt.Errorf("failed to update FAQ: %w", result.Error)
	}

	r.logger.Infow("FAQ updated", "faq_id", faq.ID())
	return nil
}

func (r *FAQRepositoryImpl) Delete(ctx context.Context, faqID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FAQModel{}, faqID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete FAQ", "error", result.Error, "faq_id", faqID)
		return fmt.Errorf("failed to delete FAQ: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("FAQ not found")
	}

	r.logger.Infow("FAQ deleted", "faq_id", faqID)
	return nil
}

func (r *FAQRepositoryImpl) toModel(faq *content.FAQ) *models.FAQModel {
	return &models.FAQModel{
		ID:         faq.ID(),
		SID:        faq.SID(),
		CategoryID: faq.CategoryID(),
		Question:   faq.Question(),
		Answer:     faq.Answer(),
		SortOrder:  faq.SortOrder(),
		IsActive:   faq.IsActive(),
		CreatedAt:  faq.CreatedAt(),
		UpdatedAt:  faq.UpdatedAt(),
	}
}

func (r *FAQRepositoryImpl) toEntity(model *models.FAQModel) (*content.FAQ, error) {
	return content.ReconstructFAQ(
		model.ID,
		model.SID,
		model.CategoryID,
		model.Question,
		model.Answer,
		model.SortOrder,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (r *FAQRepositoryImpl) toEntities(faqModels []*models.FAQModel) ([]*content.FAQ, error) {
	faqs := make([]*content.FAQ, 0, len(faqModels))
	for _, model := range faqModels {
		faq, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		faqs = append(faqs, faq)
	}
	return faqs, nil
}
