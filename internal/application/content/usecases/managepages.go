package usecases

import (
	"context"

	"github.com/beacon-cms/beacon/internal/application/content/dto"
	"github.com/beacon-cms/beacon/internal/domain/content"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type CreatePageCommand struct {
	Slug            string
	Title           string
	MetaTitle       string
	MetaDescription string
	SitemapPriority float64
}

type UpdatePageCommand struct {
	SID             string
	Slug            string
	Title           string
	MetaTitle       string
	MetaDescription string
	SitemapPriority float64
	IsActive        *bool
}

// ManagePagesUseCase bundles admin operations on pages. Every mutation
// invalidates the composed-page cache for the touched slug.
type ManagePagesUseCase struct {
	pageRepo content.PageRepository
	cache    ComposedPageCache
	logger   logger.Interface
}

func NewManagePagesUseCase(pageRepo content.PageRepository, cache ComposedPageCache, logger logger.Interface) *ManagePagesUseCase {
	return &ManagePagesUseCase{
		pageRepo: pageRepo,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *ManagePagesUseCase) Create(ctx context.Context, cmd CreatePageCommand) (*dto.PageDTO, error) {
	page, err := content.NewPage(cmd.Slug, cmd.Title)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority := cmd.SitemapPriority
	if priority == 0 {
		priority = page.SitemapPriority()
	}
	if err := page.Update(cmd.Slug, cmd.Title, cmd.MetaTitle, cmd.MetaDescription, priority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.pageRepo.Create(ctx, page); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to persist page", "error", err, "slug", cmd.Slug)
		return nil, errors.NewInternalError("failed to create page")
	}

	uc.logger.Infow("page created", "page_id", page.ID(), "slug", page.Slug())
	return dto.ToPageDTO(page), nil
}

func (uc *ManagePagesUseCase) Update(ctx context.Context, cmd UpdatePageCommand) (*dto.PageDTO, error) {
	page, err := uc.getBySID(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}
	oldSlug := page.Slug()

	if err := page.Update(cmd.Slug, cmd.Title, cmd.MetaTitle, cmd.MetaDescription, cmd.SitemapPriority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.IsActive != nil {
		if *cmd.IsActive {
			page.Activate()
		} else {
			page.Deactivate()
		}
	}

	if err := uc.pageRepo.Update(ctx, page); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update page", "error", err, "page_id", page.ID())
		return nil, errors.NewInternalError("failed to update page")
	}

	uc.invalidate(ctx, oldSlug)
	if page.Slug() != oldSlug {
		uc.invalidate(ctx, page.Slug())
	}

	uc.logger.Infow("page updated", "page_id", page.ID(), "slug", page.Slug())
	return dto.ToPageDTO(page), nil
}

// Delete removes a page and cascades its sections.
func (uc *ManagePagesUseCase) Delete(ctx context.Context, sid string) error {
	page, err := uc.getBySID(ctx, sid)
	if err != nil {
		return err
	}

	if err := uc.pageRepo.Delete(ctx, page.ID()); err != nil {
		uc.logger.Errorw("failed to delete page", "error", err, "page_id", page.ID())
		return errors.NewInternalError("failed to delete page")
	}

	uc.invalidate(ctx, page.Slug())
	uc.logger.Infow("page deleted", "page_id", page.ID(), "slug", page.Slug())
	return nil
}

func (uc *ManagePagesUseCase) Get(ctx context.Context, sid string) (*dto.PageDTO, error) {
	page, err := uc.getBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	return dto.ToPageDTO(page), nil
}

func (uc *ManagePagesUseCase) List(ctx context.Context, activeOnly bool) ([]*dto.PageDTO, error) {
	pages, err := uc.pageRepo.List(ctx, activeOnly)
	if err != nil {
		uc.logger.Errorw("failed to list pages", "error", err)
		return nil, errors.NewInternalError("failed to list pages")
	}
	return dto.ToPageDTOs(pages), nil
}

func (uc *ManagePagesUseCase) getBySID(ctx context.Context, sid string) (*content.Page, error) {
	page, err := uc.pageRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get page", "error", err, "sid", sid)
		return nil, errors.NewInternalError("failed to get page")
	}
	if page == nil {
		return nil, errors.NewNotFoundError("page not found")
	}
	return page, nil
}

func (uc *ManagePagesUseCase) invalidate(ctx context.Context, slug string) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, slug)
	}
}
