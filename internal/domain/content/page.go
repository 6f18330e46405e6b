package content

import (
	"fmt"
	"time"

	"github.com/beacon-cms/beacon/internal/shared/id"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

// Page is a slug-addressed document assembled from ordered sections.
type Page struct {
	id              uint
	sid             string
	slug            string
	title           string
	metaTitle       string
	metaDescription string
	isActive        bool
	sitemapPriority float64
	createdAt       time.Time
	updatedAt       time.Time
}

func NewPage(slug, title string) (*Page, error) {
	if err := utils.ValidateSlug(slug); err != nil {
		return nil, fmt.Errorf("invalid page slug: %w", err)
	}
	if title == "" {
		return nil, fmt.Errorf("page title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("page title too long (max 200 characters)")
	}

	sid, err := id.Generate(id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate page sid: %w", err)
	}

	now := time.Now()
	return &Page{
		sid:             sid,
		slug:            slug,
		title:           title,
		isActive:        true,
		sitemapPriority: 0.5,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructPage(pageID uint, sid, slug, title, metaTitle, metaDescription string,
	isActive bool, sitemapPriority float64, createdAt, updatedAt time.Time) (*Page, error) {

	if pageID == 0 {
		return nil, fmt.Errorf("page ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("page slug cannot be empty")
	}

	return &Page{
		id:              pageID,
		sid:             sid,
		slug:            slug,
		title:           title,
		metaTitle:       metaTitle,
		metaDescription: metaDescription,
		isActive:        isActive,
		sitemapPriority: sitemapPriority,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (p *Page) ID() uint                 { return p.id }
func (p *Page) SID() string              { return p.sid }
func (p *Page) Slug() string             { return p.slug }
func (p *Page) Title() string            { return p.title }
func (p *Page) MetaTitle() string        { return p.metaTitle }
func (p *Page) MetaDescription() string  { return p.metaDescription }
func (p *Page) IsActive() bool           { return p.isActive }
func (p *Page) SitemapPriority() float64 { return p.sitemapPriority }
func (p *Page) CreatedAt() time.Time     { return p.createdAt }
func (p *Page) UpdatedAt() time.Time     { return p.updatedAt }

func (p *Page) PrefixedSID() string {
	return id.FormatWithPrefix(id.PrefixPage, p.sid)
}

func (p *Page) SetID(pageID uint) error {
	if p.id != 0 {
		return fmt.Errorf("page ID is already set")
	}
	if pageID == 0 {
		return fmt.Errorf("page ID cannot be zero")
	}
	p.id = pageID
	return nil
}

func (p *Page) Update(slug, title, metaTitle, metaDescription string, sitemapPriority float64) error {
	if err := utils.ValidateSlug(slug); err != nil {
		return fmt.Errorf("invalid page slug: %w", err)
	}
	if title == "" {
		return fmt.Errorf("page title is required")
	}
	if sitemapPriority < 0 || sitemapPriority > 1 {
		return fmt.Errorf("sitemap priority must be between 0 and 1")
	}
	p.slug = slug
	p.title = title
	p.metaTitle = metaTitle
	p.metaDescription = metaDescription
	p.sitemapPriority = sitemapPriority
	p.updatedAt = time.Now()
	return nil
}

func (p *Page) Activate() {
	p.isActive = true
	p.updatedAt = time.Now()
}

func (p *Page) Deactivate() {
	p.isActive = false
	p.updatedAt = time.Now()
}
