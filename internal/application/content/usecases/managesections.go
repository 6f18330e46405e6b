package usecases

import (
	"context"

	"github.com/beacon-cms/beacon/internal/application/content/dto"
	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/domain/content"
	"github.com/beacon-cms/beacon/internal/domain/form"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

// SectionContentInput is the admin-facing payload union. References use
// public short IDs and are resolved to internal IDs before persisting.
type SectionContentInput struct {
	Hero              *dto.HeroContentDTO
	Features          *dto.FeatureGroupDTO
	Media             *dto.MediaContentDTO
	FAQHeading        string
	FAQCategorySID    string
	HTML              *dto.HTMLContentDTO
	PricingSectionSID string
	FormSID           string
}

type CreateSectionCommand struct {
	PageSID   string
	Type      string
	Title     string
	SortOrder int
	Content   SectionContentInput
}

type UpdateSectionCommand struct {
	SID     string
	Title   string
	Content SectionContentInput
}

type ReorderInput struct {
	SectionSID string
	SortOrder  int
}

type ManageSectionsUseCase struct {
	sectionRepo        content.PageSectionRepository
	pageRepo           content.PageRepository
	faqCategoryRepo    content.FAQCategoryRepository
	pricingSectionRepo catalog.PricingSectionRepository
	formRepo           form.FormRepository
	cache              ComposedPageCache
	logger             logger.Interface
}

func NewManageSectionsUseCase(
	sectionRepo content.PageSectionRepository,
	pageRepo content.PageRepository,
	faqCategoryRepo content.FAQCategoryRepository,
	pricingSectionRepo catalog.PricingSectionRepository,
	formRepo form.FormRepository,
	cache ComposedPageCache,
	logger logger.Interface,
) *ManageSectionsUseCase {
	return &ManageSectionsUseCase{
		sectionRepo:        sectionRepo,
		pageRepo:           pageRepo,
		faqCategoryRepo:    faqCategoryRepo,
		pricingSectionRepo: pricingSectionRepo,
		formRepo:           formRepo,
		cache:              cache,
		logger:             logger,
	}
}

func (uc *ManageSectionsUseCase) Create(ctx context.Context, cmd CreateSectionCommand) (*dto.PageSectionDTO, error) {
	page, err := uc.getPage(ctx, cmd.PageSID)
	if err != nil {
		return nil, err
	}

	sectionContent, err := uc.resolveContent(ctx, cmd.Content)
	if err != nil {
		return nil, err
	}

	section, err := content.NewPageSection(page.ID(), content.SectionType(cmd.Type), cmd.Title, sectionContent)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.SortOrder != 0 {
		section.SetSortOrder(cmd.SortOrder)
	}

	if err := uc.sectionRepo.Create(ctx, section); err != nil {
		uc.logger.Errorw("failed to persist section", "error", err, "page_id", page.ID())
		return nil, errors.NewInternalError("failed to create section")
	}

	uc.invalidatePage(ctx, page)
	uc.logger.Infow("section created", "section_id", section.ID(), "page_id", page.ID(), "type", cmd.Type)
	return dto.ToPageSectionDTO(section), nil
}

func (uc *ManageSectionsUseCase) Update(ctx context.Context, cmd UpdateSectionCommand) (*dto.PageSectionDTO, error) {
	section, err := uc.getSection(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}

	sectionContent, err := uc.resolveContent(ctx, cmd.Content)
	if err != nil {
		return nil, err
	}
	section.UpdateContent(cmd.Title, sectionContent)

	if err := uc.sectionRepo.Update(ctx, section); err != nil {
		uc.logger.Errorw("failed to update section", "error", err, "section_id", section.ID())
		return nil, errors.NewInternalError("failed to update section")
	}

	uc.invalidatePageByID(ctx, section.PageID())
	return dto.ToPageSectionDTO(section), nil
}

func (uc *ManageSectionsUseCase) SetVisibility(ctx context.Context, sid string, visible bool) error {
	section, err := uc.getSection(ctx, sid)
	if err != nil {
		return err
	}

	section.SetVisible(visible)
	if err := uc.sectionRepo.Update(ctx, section); err != nil {
		uc.logger.Errorw("failed to update section visibility", "error", err, "section_id", section.ID())
		return errors.NewInternalError("failed to update section")
	}

	uc.invalidatePageByID(ctx, section.PageID())
	return nil
}

// Reorder applies new sort orders to the page's sections in one transaction.
func (uc *ManageSectionsUseCase) Reorder(ctx context.Context, pageSID string, inputs []ReorderInput) error {
	page, err := uc.getPage(ctx, pageSID)
	if err != nil {
		return err
	}

	orders := make(map[uint]int, len(inputs))
	for _, input := range inputs {
		section, err := uc.getSection(ctx, input.SectionSID)
		if err != nil {
			return err
		}
		if section.PageID() != page.ID() {
			return errors.NewValidationError("section does not belong to the page")
		}
		orders[section.ID()] = input.SortOrder
	}

	if err := uc.sectionRepo.Reorder(ctx, page.ID(), orders); err != nil {
		uc.logger.Errorw("failed to reorder sections", "error", err, "page_id", page.ID())
		return errors.NewInternalError("failed to reorder sections")
	}

	uc.invalidatePage(ctx, page)
	uc.logger.Infow("sections reordered", "page_id", page.ID(), "count", len(orders))
	return nil
}

func (uc *ManageSectionsUseCase) Delete(ctx context.Context, sid string) error {
	section, err := uc.getSection(ctx, sid)
	if err != nil {
		return err
	}

	if err := uc.sectionRepo.Delete(ctx, section.ID()); err != nil {
		uc.logger.Errorw("failed to delete section", "error", err, "section_id", section.ID())
		return errors.NewInternalError("failed to delete section")
	}

	uc.invalidatePageByID(ctx, section.PageID())
	uc.logger.Infow("section deleted", "section_id", section.ID())
	return nil
}

// List returns every section of a page, hidden ones included.
func (uc *ManageSectionsUseCase) List(ctx context.Context, pageSID string) ([]*dto.PageSectionDTO, error) {
	page, err := uc.getPage(ctx, pageSID)
	if err != nil {
		return nil, err
	}

	sections, err := uc.sectionRepo.ListByPageID(ctx, page.ID())
	if err != nil {
		uc.logger.Errorw("failed to list sections", "error", err, "page_id", page.ID())
		return nil, errors.NewInternalError("failed to list sections")
	}
	return dto.ToPageSectionDTOs(sections), nil
}

// ListPublicBySlug returns the visible sections of an active page, in
// composition order.
func (uc *ManageSectionsUseCase) ListPublicBySlug(ctx context.Context, slug string) ([]*dto.PageSectionDTO, error) {
	page, err := uc.pageRepo.GetBySlug(ctx, slug)
	if err != nil {
		uc.logger.Errorw("failed to get page by slug", "error", err, "slug", slug)
		return nil, errors.NewInternalError("failed to get page")
	}
	if page == nil || !page.IsActive() {
		return nil, errors.NewNotFoundError("page not found")
	}

	sections, err := uc.sectionRepo.ListVisibleByPageID(ctx, page.ID())
	if err != nil {
		uc.logger.Errorw("failed to list visible sections", "error", err, "page_id", page.ID())
		return nil, errors.NewInternalError("failed to list sections")
	}
	return dto.ToPageSectionDTOs(sections), nil
}

func (uc *ManageSectionsUseCase) resolveContent(ctx context.Context, input SectionContentInput) (content.SectionContent, error) {
	var out content.SectionContent

	if input.Hero != nil {
		out.Hero = &content.Hero{
			Headline:     input.Hero.Headline,
			Subheadline:  input.Hero.Subheadline,
			BodyMarkdown: input.Hero.BodyMarkdown,
			CTALabel:     input.Hero.CTALabel,
			CTAURL:       input.Hero.CTAURL,
			ImageURL:     input.Hero.ImageURL,
		}
	}
	if input.Features != nil {
		items := make([]content.FeatureItem, 0, len(input.Features.Items))
		for _, item := range input.Features.Items {
			items = append(items, content.FeatureItem{
				Title:       item.Title,
				Description: item.Description,
				Icon:        item.Icon,
				SortOrder:   item.SortOrder,
			})
		}
		out.Features = &content.FeatureGroup{
			Heading:    input.Features.Heading,
			Subheading: input.Features.Subheading,
			Items:      items,
		}
	}
	if input.Media != nil {
		out.Media = &content.Media{
			Kind:    content.MediaKind(input.Media.Kind),
			URL:     input.Media.URL,
			Caption: input.Media.Caption,
			AltText: input.Media.AltText,
		}
	}
	if input.HTML != nil {
		out.HTML = &content.HTMLBlock{
			Content:    input.HTML.Content,
			IsMarkdown: input.HTML.IsMarkdown,
		}
	}

	if input.FAQHeading != "" || input.FAQCategorySID != "" {
		block := &content.FAQBlock{Heading: input.FAQHeading}
		if input.FAQCategorySID != "" {
			category, err := uc.faqCategoryRepo.GetBySID(ctx, input.FAQCategorySID)
			if err != nil {
				uc.logger.Errorw("failed to get FAQ category", "error", err, "sid", input.FAQCategorySID)
				return out, errors.NewInternalError("failed to get FAQ category")
			}
			if category == nil {
				return out, errors.NewNotFoundError("FAQ category not found")
			}
			block.CategoryID = category.ID()
		}
		out.FAQ = block
	}

	if input.PricingSectionSID != "" {
		pricingSection, err := uc.pricingSectionRepo.GetBySID(ctx, input.PricingSectionSID)
		if err != nil {
			uc.logger.Errorw("failed to get pricing section", "error", err, "sid", input.PricingSectionSID)
			return out, errors.NewInternalError("failed to get pricing section")
		}
		if pricingSection == nil {
			return out, errors.NewNotFoundError("pricing section not found")
		}
		out.PricingSectionID = pricingSection.ID()
	}

	if input.FormSID != "" {
		f, err := uc.formRepo.GetBySID(ctx, input.FormSID)
		if err != nil {
			uc.logger.Errorw("failed to get form", "error", err, "sid", input.FormSID)
			return out, errors.NewInternalError("failed to get form")
		}
		if f == nil {
			return out, errors.NewNotFoundError("form not found")
		}
		out.FormID = f.ID()
	}

	return out, nil
}

func (uc *ManageSectionsUseCase) getPage(ctx context.Context, sid string) (*content.Page, error) {
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

func (uc *ManageSectionsUseCase) getSection(ctx context.Context, sid string) (*content.PageSection, error) {
	section, err := uc.sectionRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get section", "error", err, "sid", sid)
		return nil, errors.NewInternalError("failed to get section")
	}
	if section == nil {
		return nil, errors.NewNotFoundError("section not found")
	}
	return section, nil
}

func (uc *ManageSectionsUseCase) invalidatePage(ctx context.Context, page *content.Page) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, page.Slug())
	}
}

func (uc *ManageSectionsUseCase) invalidatePageByID(ctx context.Context, pageID uint) {
	if uc.cache == nil {
		return
	}
	page, err := uc.pageRepo.GetByID(ctx, pageID)
	if err != nil || page == nil {
		uc.cache.InvalidateAll(ctx)
		return
	}
	uc.cache.Invalidate(ctx, page.Slug())
}
