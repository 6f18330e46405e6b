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

type PageRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPageRepository(db *gorm.DB, logger logger.Interface) content.PageRepository {
	return &PageRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PageRepositoryImpl) Create(ctx context.Context, page *content.Page) error {
	model := r.toModel(page)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateKeyError(err) {
			return errors.NewConflictError("page slug already exists")
		}
		r.logger.Errorw("failed to create page", "error", err, "slug", page.Slug())
		return fmt.Errorf("failed to create page: %w", err)
	}

	if err := page.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("page created", "page_id", model.ID, "slug", page.Slug())
	return nil
}

func (r *PageRepositoryImpl) GetByID(ctx context.Context, pageID uint) (*content.Page, error) {
	var model models.PageModel
	if err := r.db.WithContext(ctx).First(&model, pageID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get page by ID", "error", err, "page_id", pageID)
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PageRepositoryImpl) GetBySID(ctx context.Context, sid string) (*content.Page, error) {
	var model models.PageModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get page by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get page by SID: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PageRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*content.Page, error) {
	var model models.PageModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get page by slug", "error", err, "slug", slug)
		return nil, fmt.Errorf("failed to get page by slug: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PageRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*content.Page, error) {
	query := r.db.WithContext(ctx).Order("id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var pageModels []*models.PageModel
	if err := query.Find(&pageModels).Error; err != nil {
		r.logger.Errorw("failed to list pages", "error", err)
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	pages := make([]*content.Page, 0, len(pageModels))
	for _, model := range pageModels {
		page, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func (r *PageRepositoryImpl) Update(ctx context.Context, page *content.Page) error {
	model := r.toModel(page)

	result := r.db.WithContext(ctx).Model(&models.PageModel{}).
		Where("id = ?", page.ID()).
		Updates(map[string]interface{}{
			"slug":             model.Slug,
			"title":            model.Title,
			"meta_title":       model.MetaTitle,
			"meta_description": model.MetaDescription,
			"is_active":        model.IsActive,
			"sitemap_priority": model.SitemapPriority,
			"updated_at":       model.UpdatedAt,
		})

	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return errors.NewConflictError("page slug already exists")
		}
		r.logger.Errorw("failed to update page", "error", result.Error, "page_id", page.ID())
		return fmt.Errorf("failed to update page: %w", result.Error)
	}

	r.logger.Infow("page updated", "page_id", page.ID())
	return nil
}

func (r *PageRepositoryImpl) Delete(ctx context.Context, pageID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("page_id = ?", pageID).
			Delete(&models.PageSectionModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.PageModel{}, pageID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("page not found")
		}
		return nil
	})

	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		r.logger.Errorw("failed to delete page", "error", err, "page_id", pageID)
		return fmt.Errorf("failed to delete page: %w", err)
	}

	r.logger.Infow("page deleted", "page_id", pageID)
	return nil
}

func (r *PageRepositoryImpl) toModel(page *content.Page) *models.PageModel {
	return &models.PageModel{
		ID:              page.ID(),
		SID:             page.SID(),
		Slug:            page.Slug(),
		Title:           page.Title(),
		MetaTitle:       page.MetaTitle(),
		MetaDescription: page.MetaDescription(),
		IsActive:        page.IsActive(),
		SitemapPriority: page.SitemapPriority(),
		CreatedAt:       page.CreatedAt(),
		UpdatedAt:       page.UpdatedAt(),
	}
}

func (r *PageRepositoryImpl) toEntity(model *models.PageModel) (*content.Page, error) {
	return content.ReconstructPage(
		model.ID,
		model.SID,
		model.Slug,
		model.Title,
		model.MetaTitle,
		model.MetaDescription,
		model.IsActive,
		model.SitemapPriority,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
