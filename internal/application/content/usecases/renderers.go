package usecases

import (
	"context"
	"fmt"
	"sort"

	"github.com/beacon-cms/beacon/internal/application/content/dto"
	formdto "github.com/beacon-cms/beacon/internal/application/form/dto"
	pricingusecases "github.com/beacon-cms/beacon/internal/application/pricing/usecases"
	"github.com/beacon-cms/beacon/internal/domain/content"
	"github.com/beacon-cms/beacon/internal/domain/form"
	"github.com/beacon-cms/beacon/internal/shared/services/markdown"
)

// Renderer turns one page section into its render-ready payload. A renderer
// error never fails the page; the composer degrades the section to a
// placeholder.
type Renderer interface {
	Render(ctx context.Context, section *content.PageSection) (interface{}, error)
}

type RendererRegistry map[content.SectionType]Renderer

// NewRendererRegistry wires the standard renderer set. Pricing sections go
// through the matrix resolver, form sections embed the public definition.
func NewRendererRegistry(
	faqRepo content.FAQRepository,
	formRepo form.FormRepository,
	matrixUC *pricingusecases.ResolveMatrixUseCase,
	md markdown.MarkdownService,
) RendererRegistry {
	basic := &basicRenderer{}
	return RendererRegistry{
		content.SectionTypeHero:         &heroRenderer{md: md},
		content.SectionTypeFeatures:     &featuresRenderer{},
		content.SectionTypeMedia:        &mediaRenderer{},
		content.SectionTypeFAQ:          &faqRenderer{faqRepo: faqRepo, md: md},
		content.SectionTypeHTML:         &htmlRenderer{md: md},
		content.SectionTypePricing:      &pricingRenderer{matrixUC: matrixUC},
		content.SectionTypeForm:         &formRenderer{formRepo: formRepo},
		content.SectionTypeTestimonials: basic,
		content.SectionTypeCTA:          basic,
		content.SectionTypeCustom:       basic,
	}
}

type heroRenderer struct {
	md markdown.MarkdownService
}

func (r *heroRenderer) Render(ctx context.Context, section *content.PageSection) (interface{}, error) {
	hero := section.Content().Hero
	payload := &dto.HeroPayloadDTO{
		Headline:    hero.Headline,
		Subheadline: hero.Subheadline,
		CTALabel:    hero.CTALabel,
		CTAURL:      hero.CTAURL,
		ImageURL:    hero.ImageURL,
	}
	if hero.BodyMarkdown != "" {
		html, err := r.md.ToHTMLSanitized(hero.BodyMarkdown)
		if err != nil {
			return nil, fmt.Errorf("failed to render hero body: %w", err)
		}
		payload.BodyHTML = html
	}
	return payload, nil
}

type featuresRenderer struct{}

func (r *featuresRenderer) Render(ctx context.Context, section *content.PageSection) (interface{}, error) {
	group := section.Content().Features
	items := make([]dto.FeatureItemDTO, 0, len(group.Items))
	for _, item := range group.Items {
		items = append(items, dto.FeatureItemDTO{
			Title:       item.Title,
			Description: item.Description,
			Icon:        item.Icon,
			SortOrder:   item.SortOrder,
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })
	return &dto.FeatureGroupDTO{
		Heading:    group.Heading,
		Subheading: group.Subheading,
		Items:      items,
	}, nil
}

type mediaRenderer struct{}

func (r *mediaRenderer) Render(ctx context.Context, section *content.PageSection) (interface{}, error) {
	media := section.Content().Media
	return &dto.MediaPayloadDTO{
		Kind:    string(media.Kind),
		URL:     media.URL,
		Caption: media.Caption,
		AltText: media.AltText,
	}, nil
}

type faqRenderer struct {
	faqRepo content.FAQRepository
	md      markdown.MarkdownService
}

func (r *faqRenderer) Render(ctx context.Context, section *content.PageSection) (interface{}, error) {
	block := section.Content().FAQ
	faqs, err := r.faqRepo.ListActiveByCategory(ctx, block.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load FAQs: %w", err)
	}

	items := make([]*dto.FAQItemDTO, 0, len(faqs))
	for _, faq := range faqs {
		answerHTML, err := r.md.ToHTMLSanitized(faq.Answer())
		if err != nil {
			return nil, fmt.Errorf("failed to render FAQ answer: %w", err)
		}
		items = append(items, &dto.FAQItemDTO{
			ID:         faq.PrefixedSID(),
			Question:   faq.Question(),
			AnswerHTML: answerHTML,
		})
	}
	return &dto.FAQPayloadDTO{
		Heading: block.Heading,
		Items:   items,
	}, nil
}

type htmlRenderer struct {
	md markdown.MarkdownService
}

func (r *htmlRenderer) Render(ctx context.Context, section *content.PageSection) (interface{}, error) {
	block := section.Content().HTML
	if block.IsMarkdown {
		html, err := r.md.ToHTMLSanitized(block.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to render markdown: %w", err)
		}
		return &dto.HTMLPayloadDTO{HTML: html}, nil
	}
	return &dto.HTMLPayloadDTO{HTML: r.md.Sanitize(block.Content)}, nil
}

type pricingRenderer struct {
	matrixUC *pricingusecases.ResolveMatrixUseCase
}

func (r *pricingRenderer) Render(ctx context.Context, section *content.PageSection) (interface{}, error) {
	return r.matrixUC.ExecuteByID(ctx, section.Content().PricingSectionID, "")
}

type formRenderer struct {
	formRepo form.FormRepository
}

func (r *formRenderer) Render(ctx context.Context, section *content.PageSection) (interface{}, error) {
	f, err := r.formRepo.GetByID(ctx, section.Content().FormID)
	if err != nil {
		return nil, fmt.Errorf("failed to load form: %w", err)
	}
	if f == nil || !f.IsActive() {
		return nil, fmt.Errorf("form %d is missing or inactive", section.Content().FormID)
	}
	return formdto.ToPublicFormDTO(f), nil
}

// basicRenderer serves section types that render from their title alone.
type basicRenderer struct{}

func (r *basicRenderer) Render(ctx context.Context, section *content.PageSection) (interface{}, error) {
	return &dto.BasicPayloadDTO{Heading: section.Title()}, nil
}
