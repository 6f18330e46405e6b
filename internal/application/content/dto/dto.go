package dto

import (
	"time"

	"github.com/beacon-cms/beacon/internal/domain/content"
)

type PageDTO struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	MetaTitle       string    `json:"meta_title,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	IsActive        bool      `json:"is_active"`
	SitemapPriority float64   `json:"sitemap_priority"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToPageDTO(page *content.Page) *PageDTO {
	return &PageDTO{
		ID:              page.PrefixedSID(),
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

func ToPageDTOs(pages []*content.Page) []*PageDTO {
	dtos := make([]*PageDTO, 0, len(pages))
	for _, page := range pages {
		dtos = append(dtos, ToPageDTO(page))
	}
	return dtos
}

// SectionContentDTO mirrors the domain payload union for the admin surface;
// payloads are stored raw, markdown unrendered.
type SectionContentDTO struct {
	Hero             *HeroContentDTO     `json:"hero,omitempty"`
	Features         *FeatureGroupDTO    `json:"features,omitempty"`
	Media            *MediaContentDTO    `json:"media,omitempty"`
	FAQ              *FAQBlockContentDTO `json:"faq,omitempty"`
	HTML             *HTMLContentDTO     `json:"html,omitempty"`
	PricingSectionID uint                `json:"pricing_section_id,omitempty"`
	FormID           uint                `json:"form_id,omitempty"`
}

type HeroContentDTO struct {
	Headline     string `json:"headline"`
	Subheadline  string `json:"subheadline,omitempty"`
	BodyMarkdown string `json:"body_markdown,omitempty"`
	CTALabel     string `json:"cta_label,omitempty"`
	CTAURL       string `json:"cta_url,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

type FeatureGroupDTO struct {
	Heading    string           `json:"heading,omitempty"`
	Subheading string           `json:"subheading,omitempty"`
	Items      []FeatureItemDTO `json:"items"`
}

type FeatureItemDTO struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	SortOrder   int    `json:"sort_order"`
}

type MediaContentDTO struct {
	Kind    string `json:"kind"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	AltText string `json:"alt_text,omitempty"`
}

type FAQBlockContentDTO struct {
	Heading    string `json:"heading,omitempty"`
	CategoryID uint   `json:"category_id,omitempty"`
}

type HTMLContentDTO struct {
	Content    string `json:"content"`
	IsMarkdown bool   `json:"is_markdown"`
}

type PageSectionDTO struct {
	ID        string            `json:"id"`
	PageID    uint              `json:"page_id"`
	Type      string            `json:"type"`
	Title     string            `json:"title,omitempty"`
	SortOrder int               `json:"sort_order"`
	IsVisible bool              `json:"is_visible"`
	Content   SectionContentDTO `json:"content"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func ToPageSectionDTO(section *content.PageSection) *PageSectionDTO {
	return &PageSectionDTO{
		ID:        section.PrefixedSID(),
		PageID:    section.PageID(),
		Type:      string(section.Type()),
		Title:     section.Title(),
		SortOrder: section.SortOrder(),
		IsVisible: section.IsVisible(),
		Content:   toSectionContentDTO(section.Content()),
		CreatedAt: section.CreatedAt(),
		UpdatedAt: section.UpdatedAt(),
	}
}

func ToPageSectionDTOs(sections []*content.PageSection) []*PageSectionDTO {
	dtos := make([]*PageSectionDTO, 0, len(sections))
	for _, section := range sections {
		dtos = append(dtos, ToPageSectionDTO(section))
	}
	return dtos
}

func toSectionContentDTO(c content.SectionContent) SectionContentDTO {
	out := SectionContentDTO{
		PricingSectionID: c.PricingSectionID,
		FormID:           c.FormID,
	}
	if c.Hero != nil {
		out.Hero = &HeroContentDTO{
			Headline:     c.Hero.Headline,
			Subheadline:  c.Hero.Subheadline,
			BodyMarkdown: c.Hero.BodyMarkdown,
			CTALabel:     c.Hero.CTALabel,
			CTAURL:       c.Hero.CTAURL,
			ImageURL:     c.Hero.ImageURL,
		}
	}
	if c.Features != nil {
		items := make([]FeatureItemDTO, 0, len(c.Features.Items))
		for _, item := range c.Features.Items {
			items = append(items, FeatureItemDTO{
				Title:       item.Title,
				Description: item.Description,
				Icon:        item.Icon,
				SortOrder:   item.SortOrder,
			})
		}
		out.Features = &FeatureGroupDTO{
			Heading:    c.Features.Heading,
			Subheading: c.Features.Subheading,
			Items:      items,
		}
	}
	if c.Media != nil {
		out.Media = &MediaContentDTO{
			Kind:    string(c.Media.Kind),
			URL:     c.Media.URL,
			Caption: c.Media.Caption,
			AltText: c.Media.AltText,
		}
	}
	if c.FAQ != nil {
		out.FAQ = &FAQBlockContentDTO{
			Heading:    c.FAQ.Heading,
			CategoryID: c.FAQ.CategoryID,
		}
	}
	if c.HTML != nil {
		out.HTML = &HTMLContentDTO{
			Content:    c.HTML.Content,
			IsMarkdown: c.HTML.IsMarkdown,
		}
	}
	return out
}

// ComposedSectionDTO is one rendered block of a composed page. Payload holds
// the type-specific render output; unknown or broken sections degrade to a
// PlaceholderDTO instead of failing the page.
type ComposedSectionDTO struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	Title   string      `json:"title,omitempty"`
	Payload interface{} `json:"payload"`
}

type ComposedPageDTO struct {
	ID              string                `json:"id"`
	Slug            string                `json:"slug"`
	Title           string                `json:"title"`
	MetaTitle       string                `json:"meta_title,omitempty"`
	MetaDescription string                `json:"meta_description,omitempty"`
	HasContent      bool                  `json:"has_content"`
	Sections        []*ComposedSectionDTO `json:"sections"`
}

type PlaceholderDTO struct {
	Message string `json:"message"`
}

type HeroPayloadDTO struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline,omitempty"`
	BodyHTML    string `json:"body_html,omitempty"`
	CTALabel    string `json:"cta_label,omitempty"`
	CTAURL      string `json:"cta_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type MediaPayloadDTO struct {
	Kind    string `json:"kind"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	AltText string `json:"alt_text,omitempty"`
}

type FAQItemDTO struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	AnswerHTML string `json:"answer_html"`
}

type FAQPayloadDTO struct {
	Heading string        `json:"heading,omitempty"`
	Items   []*FAQItemDTO `json:"items"`
}

type HTMLPayloadDTO struct {
	HTML string `json:"html"`
}

// BasicPayloadDTO covers section types rendered from their title alone.
type BasicPayloadDTO struct {
	Heading string `json:"heading,omitempty"`
}

type FAQCategoryDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToFAQCategoryDTO(category *content.FAQCategory) *FAQCategoryDTO {
	return &FAQCategoryDTO{
		ID:        category.PrefixedSID(),
		Name:      category.Name(),
		SortOrder: category.SortOrder(),
		IsActive:  category.IsActive(),
		CreatedAt: category.CreatedAt(),
		UpdatedAt: category.UpdatedAt(),
	}
}

type FAQDTO struct {
	ID         string    `json:"id"`
	CategoryID uint      `json:"category_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	SortOrder  int       `json:"sort_order"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToFAQDTO(faq *content.FAQ) *FAQDTO {
	return &FAQDTO{
		ID:         faq.PrefixedSID(),
		CategoryID: faq.CategoryID(),
		Question:   faq.Question(),
		Answer:     faq.Answer(),
		SortOrder:  faq.SortOrder(),
		IsActive:   faq.IsActive(),
		CreatedAt:  faq.CreatedAt(),
		UpdatedAt:  faq.UpdatedAt(),
	}
}

// SEOCheckDTO is one finding of the per-page SEO audit.
type SEOCheckDTO struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
}

type PageAuditDTO struct {
	Slug   string         `json:"slug"`
	Score  int            `json:"score"`
	Checks []*SEOCheckDTO `json:"checks"`
}

type SEOAuditDTO struct {
	Pages        []*PageAuditDTO `json:"pages"`
	AverageScore int             `json:"average_score"`
}
