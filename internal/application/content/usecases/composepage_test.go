package usecases

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beacon-cms/beacon/internal/application/content/dto"
	"github.com/beacon-cms/beacon/internal/domain/content"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/services/markdown"
)

type fakePageRepo struct {
	content.PageRepository
	pages map[string]*content.Page
}

func (f *fakePageRepo) GetBySlug(ctx context.Context, slug string) (*content.Page, error) {
	return f.pages[slug], nil
}

type fakeSectionRepo struct {
	content.PageSectionRepository
	visible map[uint][]*content.PageSection
}

func (f *fakeSectionRepo) ListVisibleByPageID(ctx context.Context, pageID uint) ([]*content.PageSection, error) {
	return f.visible[pageID], nil
}

type fakeFAQRepo struct {
	content.FAQRepository
	faqs []*content.FAQ
}

func (f *fakeFAQRepo) ListActiveByCategory(ctx context.Context, categoryID uint) ([]*content.FAQ, error) {
	return f.faqs, nil
}

type memoryPageCache struct {
	entries map[string][]byte
}

func newMemoryPageCache() *memoryPageCache {
	return &memoryPageCache{entries: map[string][]byte{}}
}

func (c *memoryPageCache) Get(ctx context.Context, slug string) []byte { return c.entries[slug] }
func (c *memoryPageCache) Set(ctx context.Context, slug string, payload []byte) {
	c.entries[slug] = payload
}
func (c *memoryPageCache) Invalidate(ctx context.Context, slug string) { delete(c.entries, slug) }
func (c *memoryPageCache) InvalidateAll(ctx context.Context) {
	c.entries = map[string][]byte{}
}

func testPage(t *testing.T, id uint, slug string, active bool) *content.Page {
	t.Helper()
	now := time.Now()
	page, err := content.ReconstructPage(id, "pg"+slug, slug, "Title for "+slug, "", "", active, 0.5, now, now)
	require.NoError(t, err)
	return page
}

func testSection(t *testing.T, id, pageID uint, sectionType content.SectionType, title string, payload content.SectionContent) *content.PageSection {
	t.Helper()
	now := time.Now()
	section, err := content.ReconstructPageSection(id, "sec", pageID, sectionType, title, int(id), true, payload, now, now)
	require.NoError(t, err)
	return section
}

func newComposer(pages *fakePageRepo, sections *fakeSectionRepo, faqs *fakeFAQRepo, cache ComposedPageCache) *ComposePageUseCase {
	registry := NewRendererRegistry(faqs, nil, nil, markdown.NewMarkdownService())
	// form and pricing renderers are exercised separately; drop them so a
	// nil dependency cannot be reached.
	delete(registry, content.SectionTypeForm)
	delete(registry, content.SectionTypePricing)
	return NewComposePageUseCase(pages, sections, registry, cache, logger.NewLogger())
}

func TestComposePage_OrderAndPayloads(t *testing.T) {
	page := testPage(t, 1, "landing", true)
	pages := &fakePageRepo{pages: map[string]*content.Page{"landing": page}}
	sections := &fakeSectionRepo{visible: map[uint][]*content.PageSection{
		1: {
			testSection(t, 1, 1, content.SectionTypeHero, "Hero", content.SectionContent{
				Hero: &content.Hero{Headline: "Build faster", BodyMarkdown: "**bold** move"},
			}),
			testSection(t, 2, 1, content.SectionTypeHTML, "Raw", content.SectionContent{
				HTML: &content.HTMLBlock{Content: `<p>hi</p><script>alert(1)</script>`},
			}),
		},
	}}

	uc := newComposer(pages, sections, &fakeFAQRepo{}, nil)

	doc, err := uc.Execute(context.Background(), "landing")
	require.NoError(t, err)

	assert.True(t, doc.HasContent)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "hero", doc.Sections[0].Type)
	assert.Equal(t, "html", doc.Sections[1].Type)

	hero, ok := doc.Sections[0].Payload.(*dto.HeroPayloadDTO)
	require.True(t, ok)
	assert.Equal(t, "Build faster", hero.Headline)
	assert.Contains(t, hero.BodyHTML, "<strong>bold</strong>")

	html, ok := doc.Sections[1].Payload.(*dto.HTMLPayloadDTO)
	require.True(t, ok)
	assert.Contains(t, html.HTML, "<p>hi</p>")
	assert.NotContains(t, html.HTML, "script")
}

func TestComposePage_BrokenSectionDegrades(t *testing.T) {
	page := testPage(t, 1, "landing", true)
	pages := &fakePageRepo{pages: map[string]*content.Page{"landing": page}}
	sections := &fakeSectionRepo{visible: map[uint][]*content.PageSection{
		1: {
			// media section without a media payload
			testSection(t, 1, 1, content.SectionTypeMedia, "Broken", content.SectionContent{}),
			// type with no registered renderer
			testSection(t, 2, 1, content.SectionTypeForm, "Orphan", content.SectionContent{FormID: 9}),
			testSection(t, 3, 1, content.SectionTypeHero, "OK", content.SectionContent{
				Hero: &content.Hero{Headline: "Still here"},
			}),
		},
	}}

	uc := newComposer(pages, sections, &fakeFAQRepo{}, nil)

	doc, err := uc.Execute(context.Background(), "landing")
	require.NoError(t, err)
	require.Len(t, doc.Sections, 3)

	_, broken := doc.Sections[0].Payload.(*dto.PlaceholderDTO)
	assert.True(t, broken)
	_, orphan := doc.Sections[1].Payload.(*dto.PlaceholderDTO)
	assert.True(t, orphan)
	_, placeholder := doc.Sections[2].Payload.(*dto.PlaceholderDTO)
	assert.False(t, placeholder)
}

func TestComposePage_FAQSection(t *testing.T) {
	now := time.Now()
	faq, err := content.ReconstructFAQ(1, "faq1", 1, "What is it?", "It *renders* markdown.", 0, true, now, now)
	require.NoError(t, err)

	page := testPage(t, 1, "help", true)
	pages := &fakePageRepo{pages: map[string]*content.Page{"help": page}}
	sections := &fakeSectionRepo{visible: map[uint][]*content.PageSection{
		1: {
			testSection(t, 1, 1, content.SectionTypeFAQ, "FAQ", content.SectionContent{
				FAQ: &content.FAQBlock{Heading: "Questions", CategoryID: 1},
			}),
		},
	}}

	uc := newComposer(pages, sections, &fakeFAQRepo{faqs: []*content.FAQ{faq}}, nil)

	doc, err := uc.Execute(context.Background(), "help")
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)

	payload, ok := doc.Sections[0].Payload.(*dto.FAQPayloadDTO)
	require.True(t, ok)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "What is it?", payload.Items[0].Question)
	assert.Contains(t, payload.Items[0].AnswerHTML, "<em>renders</em>")
}

func TestComposePage_EmptyPage(t *testing.T) {
	page := testPage(t, 1, "empty", true)
	pages := &fakePageRepo{pages: map[string]*content.Page{"empty": page}}
	sections := &fakeSectionRepo{visible: map[uint][]*content.PageSection{}}

	uc := newComposer(pages, sections, &fakeFAQRepo{}, nil)

	doc, err := uc.Execute(context.Background(), "empty")
	require.NoError(t, err)
	assert.False(t, doc.HasContent)
	assert.Empty(t, doc.Sections)
}

func TestComposePage_NotFound(t *testing.T) {
	pages := &fakePageRepo{pages: map[string]*content.Page{
		"inactive": testPage(t, 1, "inactive", false),
	}}
	sections := &fakeSectionRepo{visible: map[uint][]*content.PageSection{}}
	uc := newComposer(pages, sections, &fakeFAQRepo{}, nil)

	_, err := uc.Execute(context.Background(), "missing")
	assert.True(t, errors.IsNotFoundError(err))

	// inactive pages are invisible to the public composer
	_, err = uc.Execute(context.Background(), "inactive")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestComposePage_CacheRoundTrip(t *testing.T) {
	page := testPage(t, 1, "cached", true)
	pages := &fakePageRepo{pages: map[string]*content.Page{"cached": page}}
	sections := &fakeSectionRepo{visible: map[uint][]*content.PageSection{
		1: {
			testSection(t, 1, 1, content.SectionTypeHero, "Hero", content.SectionContent{
				Hero: &content.Hero{Headline: "Cache me"},
			}),
		},
	}}
	cache := newMemoryPageCache()

	uc := newComposer(pages, sections, &fakeFAQRepo{}, cache)

	_, err := uc.Execute(context.Background(), "cached")
	require.NoError(t, err)
	require.Contains(t, cache.entries, "cached")

	var stored dto.ComposedPageDTO
	require.NoError(t, json.Unmarshal(cache.entries["cached"], &stored))
	assert.Equal(t, "cached", stored.Slug)

	// Serve from cache even after the backing sections change.
	sections.visible[1] = nil
	doc, err := uc.Execute(context.Background(), "cached")
	require.NoError(t, err)
	assert.True(t, doc.HasContent)
	require.Len(t, doc.Sections, 1)
	assert.True(t, strings.EqualFold("hero", doc.Sections[0].Type))
}
