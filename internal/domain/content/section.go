package content

import (
	"fmt"
	"time"

	"github.com/beacon-cms/beacon/internal/shared/id"
)

// SectionType tags a PageSection with the renderer it belongs to.
type SectionType string

const (
	SectionTypeHero         SectionType = "hero"
	SectionTypeFeatures     SectionType = "features"
	SectionTypeMedia        SectionType = "media"
	SectionTypePricing      SectionType = "pricing"
	SectionTypeFAQ          SectionType = "faq"
	SectionTypeForm         SectionType = "form"
	SectionTypeHTML         SectionType = "html"
	SectionTypeTestimonials SectionType = "testimonials"
	SectionTypeCTA          SectionType = "cta"
	SectionTypeCustom       SectionType = "custom"
)

func (t SectionType) IsValid() bool {
	switch t {
	case SectionTypeHero, SectionTypeFeatures, SectionTypeMedia, SectionTypePricing,
		SectionTypeFAQ, SectionTypeForm, SectionTypeHTML, SectionTypeTestimonials,
		SectionTypeCTA, SectionTypeCustom:
		return true
	}
	return false
}

// Hero is the payload of a hero section.
type Hero struct {
	Headline     string
	Subheadline  string
	BodyMarkdown string
	CTALabel     string
	CTAURL       string
	ImageURL     string
}

// FeatureItem is one entry in a feature group.
type FeatureItem struct {
	Title       string
	Description string
	Icon        string
	SortOrder   int
}

// FeatureGroup is the payload of a features section.
type FeatureGroup struct {
	Heading    string
	Subheading string
	Items      []FeatureItem
}

// MediaKind distinguishes image and video media payloads.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// Media is the payload of a media section.
type Media struct {
	Kind    MediaKind
	URL     string
	Caption string
	AltText string
}

// FAQBlock is the payload of a FAQ section; it selects a category from the
// shared FAQ pool. A zero CategoryID means "all active categories".
type FAQBlock struct {
	Heading    string
	CategoryID uint
}

// HTMLBlock is the payload of a raw HTML or markdown section. Content is
// sanitized at render time, never at rest.
type HTMLBlock struct {
	Content    string
	IsMarkdown bool
}

// SectionContent is the tagged union of section payloads. Exactly one field
// matching the section type should be set; the composer degrades to a
// placeholder when the payload is missing or mismatched.
type SectionContent struct {
	Hero             *Hero
	Features         *FeatureGroup
	Media            *Media
	FAQ              *FAQBlock
	HTML             *HTMLBlock
	PricingSectionID uint
	FormID           uint
}

// PageSection is an ordered, visibility-flagged content block on a page.
type PageSection struct {
	id          uint
	sid         string
	pageID      uint
	sectionType SectionType
	title       string
	sortOrder   int
	isVisible   bool
	content     SectionContent
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPageSection(pageID uint, sectionType SectionType, title string, content SectionContent) (*PageSection, error) {
	if pageID == 0 {
		return nil, fmt.Errorf("page ID is required")
	}
	if !sectionType.IsValid() {
		return nil, fmt.Errorf("invalid section type: %s", sectionType)
	}

	sid, err := id.Generate(id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate section sid: %w", err)
	}

	now := time.Now()
	return &PageSection{
		sid:         sid,
		pageID:      pageID,
		sectionType: sectionType,
		title:       title,
		sortOrder:   0,
		isVisible:   true,
		content:     content,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPageSection(sectionID uint, sid string, pageID uint, sectionType SectionType,
	title string, sortOrder int, isVisible bool, content SectionContent,
	createdAt, updatedAt time.Time) (*PageSection, error) {

	if sectionID == 0 {
		return nil, fmt.Errorf("section ID cannot be zero")
	}
	if !sectionType.IsValid() {
		return nil, fmt.Errorf("invalid section type: %s", sectionType)
	}

	return &PageSection{
		id:          sectionID,
		sid:         sid,
		pageID:      pageID,
		sectionType: sectionType,
		title:       title,
		sortOrder:   sortOrder,
		isVisible:   isVisible,
		content:     content,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *PageSection) ID() uint                { return s.id }
func (s *PageSection) SID() string             { return s.sid }
func (s *PageSection) PageID() uint            { return s.pageID }
func (s *PageSection) Type() SectionType       { return s.sectionType }
func (s *PageSection) Title() string           { return s.title }
func (s *PageSection) SortOrder() int          { return s.sortOrder }
func (s *PageSection) IsVisible() bool         { return s.isVisible }
func (s *PageSection) Content() SectionContent { return s.content }
func (s *PageSection) CreatedAt() time.Time    { return s.createdAt }
func (s *PageSection) UpdatedAt() time.Time    { return s.updatedAt }

func (s *PageSection) PrefixedSID() string {
	return id.FormatWithPrefix(id.PrefixPageSection, s.sid)
}

func (s *PageSection) SetID(sectionID uint) error {
	if s.id != 0 {
		return fmt.Errorf("section ID is already set")
	}
	if sectionID == 0 {
		return fmt.Errorf("section ID cannot be zero")
	}
	s.id = sectionID
	return nil
}

func (s *PageSection) UpdateContent(title string, content SectionContent) {
	s.title = title
	s.content = content
	s.updatedAt = time.Now()
}

func (s *PageSection) SetSortOrder(order int) {
	s.sortOrder = order
	s.updatedAt = time.Now()
}

func (s *PageSection) SetVisible(visible bool) {
	s.isVisible = visible
	s.updatedAt = time.Now()
}

// HasPayload reports whether the content payload matching the section type
// is present. Pricing and form sections require their reference IDs.
func (s *PageSection) HasPayload() bool {
	switch s.sectionType {
	case SectionTypeHero:
		return s.content.Hero != nil
	case SectionTypeFeatures:
		return s.content.Features != nil
	case SectionTypeMedia:
		return s.content.Media != nil
	case SectionTypeFAQ:
		return s.content.FAQ != nil
	case SectionTypeHTML:
		return s.content.HTML != nil
	case SectionTypePricing:
		return s.content.PricingSectionID != 0
	case SectionTypeForm:
		return s.content.FormID != 0
	default:
		// testimonials/cta/custom render from the title alone
		return true
	}
}
