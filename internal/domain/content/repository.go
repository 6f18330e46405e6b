package content

import (
	"context"
)

type PageRepository interface {
	Create(ctx context.Context, page *Page) error
	GetByID(ctx context.Context, pageID uint) (*Page, error)
	GetBySID(ctx context.Context, sid string) (*Page, error)
	// GetBySlug returns nil when no page has the slug.
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	List(ctx context.Context, activeOnly bool) ([]*Page, error)
	Update(ctx context.Context, page *Page) error
	Delete(ctx context.Context, pageID uint) error
}

type PageSectionRepository interface {
	Create(ctx context.Context, section *PageSection) error
	GetByID(ctx context.Context, sectionID uint) (*PageSection, error)
	GetBySID(ctx context.Context, sid string) (*PageSection, error)
	// ListByPageID returns every section of the page ordered by sort order,
	// then ID for sections sharing an order value.
	ListByPageID(ctx context.Context, pageID uint) ([]*PageSection, error)
	// ListVisibleByPageID returns only visible sections, same ordering.
	ListVisibleByPageID(ctx context.Context, pageID uint) ([]*PageSection, error)
	Update(ctx context.Context, section *PageSection) error
	Delete(ctx context.Context, sectionID uint) error
	// Reorder applies the given sort order values to the page's sections
	// in one transaction. The map is keyed by section ID.
	Reorder(ctx context.Context, pageID uint, orders map[uint]int) error
}

type FAQCategoryRepository interface {
	Create(ctx context.Context, category *FAQCategory) error
	GetByID(ctx context.Context, categoryID uint) (*FAQCategory, error)
	GetBySID(ctx context.Context, sid string) (*FAQCategory, error)
	List(ctx context.Context, activeOnly bool) ([]*FAQCategory, error)
	Update(ctx context.Context, category *FAQCategory) error
	Delete(ctx context.Context, categoryID uint) error
}

type FAQRepository interface {
	Create(ctx context.Context, faq *FAQ) error
	GetByID(ctx context.Context, faqID uint) (*FAQ, error)
	GetBySID(ctx context.Context, sid string) (*FAQ, error)
	// ListActiveByCategory returns active FAQs in a category ordered by
	// sort order. A zero categoryID returns the whole active pool.
	ListActiveByCategory(ctx context.Context, categoryID uint) ([]*FAQ, error)
	List(ctx context.Context) ([]*FAQ, error)
	Update(ctx context.Context, faq *FAQ) error
	Delete(ctx context.Context, faqID uint) error
}
