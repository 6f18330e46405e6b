package usecases

import (
	"context"
	"encoding/json"

	"github.com/beacon-cms/beacon/internal/application/content/dto"
	"github.com/beacon-cms/beacon/internal/domain/content"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

// ComposedPageCache caches composed page documents by slug. Implementations
// must treat failures as misses; caching never fails a request.
type ComposedPageCache interface {
	Get(ctx context.Context, slug string) []byte
	Set(ctx context.Context, slug string, payload []byte)
	Invalidate(ctx context.Context, slug string)
	InvalidateAll(ctx context.Context)
}

// ComposePageUseCase assembles the public render document for one page:
// visible sections in order, each dispatched through the renderer registry.
// A single broken section degrades to a placeholder, never an error.
type ComposePageUseCase struct {
	pageRepo    content.PageRepository
	sectionRepo content.PageSectionRepository
	registry    RendererRegistry
	cache       ComposedPageCache
	logger      logger.Interface
}

func NewComposePageUseCase(
	pageRepo content.PageRepository,
	sectionRepo content.PageSectionRepository,
	registry RendererRegistry,
	cache ComposedPageCache,
	logger logger.Interface,
) *ComposePageUseCase {
	return &ComposePageUseCase{
		pageRepo:    pageRepo,
		sectionRepo: sectionRepo,
		registry:    registry,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *ComposePageUseCase) Execute(ctx context.Context, slug string) (*dto.ComposedPageDTO, error) {
	if uc.cache != nil {
		if cached := uc.cache.Get(ctx, slug); cached != nil {
			var doc dto.ComposedPageDTO
			if err := json.Unmarshal(cached, &doc); err == nil {
				return &doc, nil
			}
			uc.cache.Invalidate(ctx, slug)
		}
	}

	page, err := uc.pageRepo.GetBySlug(ctx, slug)
	if err != nil {
		uc.logger.Errorw("failed to get page", "error", err, "slug", slug)
		return nil, errors.NewInternalError("failed to get page")
	}
	if page == nil || !page.IsActive() {
		return nil, errors.NewNotFoundError("page not found")
	}

	sections, err := uc.sectionRepo.ListVisibleByPageID(ctx, page.ID())
	if err != nil {
		uc.logger.Errorw("failed to list page sections", "error", err, "page_id", page.ID())
		return nil, errors.NewInternalError("failed to list page sections")
	}

	doc := &dto.ComposedPageDTO{
		ID:              page.PrefixedSID(),
		Slug:            page.Slug(),
		Title:           page.Title(),
		MetaTitle:       page.MetaTitle(),
		MetaDescription: page.MetaDescription(),
		HasContent:      len(sections) > 0,
		Sections:        make([]*dto.ComposedSectionDTO, 0, len(sections)),
	}

	for _, section := range sections {
		doc.Sections = append(doc.Sections, uc.renderSection(ctx, section))
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(doc); err == nil {
			uc.cache.Set(ctx, slug, payload)
		}
	}

	return doc, nil
}

func (uc *ComposePageUseCase) renderSection(ctx context.Context, section *content.PageSection) *dto.ComposedSectionDTO {
	composed := &dto.ComposedSectionDTO{
		ID:    section.PrefixedSID(),
		Type:  string(section.Type()),
		Title: section.Title(),
	}

	renderer, ok := uc.registry[section.Type()]
	if !ok {
		uc.logger.Warnw("no renderer for section type",
			"section_id", section.ID(), "type", section.Type())
		composed.Payload = &dto.PlaceholderDTO{Message: "section type not supported"}
		return composed
	}

	if !section.HasPayload() {
		uc.logger.Warnw("section payload missing",
			"section_id", section.ID(), "type", section.Type())
		composed.Payload = &dto.PlaceholderDTO{Message: "section content unavailable"}
		return composed
	}

	payload, err := renderer.Render(ctx, section)
	if err != nil {
		uc.logger.Warnw("section render failed",
			"error", err, "section_id", section.ID(), "type", section.Type())
		composed.Payload = &dto.PlaceholderDTO{Message: "section content unavailable"}
		return composed
	}

	composed.Payload = payload
	return composed
}
