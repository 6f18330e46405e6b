package content

import (
	"fmt"
	"time"

	"github.com/beacon-cms/beacon/internal/shared/id"
)

// FAQCategory groups FAQ entries in the shared pool. FAQ sections reference
// a category (or the whole pool) instead of embedding their own entries.
type FAQCategory struct {
	id        uint
	sid       string
	name      string
	sortOrder int
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewFAQCategory(name string) (*FAQCategory, error) {
	if name == "" {
		return nil, fmt.Errorf("FAQ category name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("FAQ category name too long (max 100 characters)")
	}

	sid, err := id.Generate(id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate FAQ category sid: %w", err)
	}

	now := time.Now()
	return &FAQCategory{
		sid:       sid,
		name:      name,
		sortOrder: 0,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructFAQCategory(categoryID uint, sid, name string, sortOrder int,
	isActive bool, createdAt, updatedAt time.Time) (*FAQCategory, error) {

	if categoryID == 0 {
		return nil, fmt.Errorf("FAQ category ID cannot be zero")
	}

	return &FAQCategory{
		id:        categoryID,
		sid:       sid,
		name:      name,
		sortOrder: sortOrder,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *FAQCategory) ID() uint             { return c.id }
func (c *FAQCategory) SID() string          { return c.sid }
func (c *FAQCategory) Name() string         { return c.name }
func (c *FAQCategory) SortOrder() int       { return c.sortOrder }
func (c *FAQCategory) IsActive() bool       { return c.isActive }
func (c *FAQCategory) CreatedAt() time.Time { return c.createdAt }
func (c *FAQCategory) UpdatedAt() time.Time { return c.updatedAt }

func (c *FAQCategory) PrefixedSID() string {
	return id.FormatWithPrefix(id.PrefixFAQCategory, c.sid)
}

func (c *FAQCategory) SetID(categoryID uint) error {
	if c.id != 0 {
		return fmt.Errorf("FAQ category ID is already set")
	}
	if categoryID == 0 {
		return fmt.Errorf("FAQ category ID cannot be zero")
	}
	c.id = categoryID
	return nil
}

func (c *FAQCategory) Update(name string, sortOrder int, isActive bool) error {
	if name == "" {
		return fmt.Errorf("FAQ category name is required")
	}
	c.name = name
	c.sortOrder = sortOrder
	c.isActive = isActive
	c.updatedAt = time.Now()
	return nil
}

// FAQ is one question/answer pair. The answer is markdown, rendered and
// sanitized at compose time.
type FAQ struct {
	id         uint
	sid        string
	categoryID uint
	question   string
	answer     string
	sortOrder  int
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewFAQ(categoryID uint, question, answer string) (*FAQ, error) {
	if categoryID == 0 {
		return nil, fmt.Errorf("FAQ category ID is required")
	}
	if question == "" {
		return nil, fmt.Errorf("FAQ question is required")
	}
	if answer == "" {
		return nil, fmt.Errorf("FAQ answer is required")
	}

	sid, err := id.Generate(id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate FAQ sid: %w", err)
	}

	now := time.Now()
	return &FAQ{
		sid:        sid,
		categoryID: categoryID,
		question:   question,
		answer:     answer,
		sortOrder:  0,
		isActive:   true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructFAQ(faqID uint, sid string, categoryID uint, question, answer string,
	sortOrder int, isActive bool, createdAt, updatedAt time.Time) (*FAQ, error) {

	if faqID == 0 {
		return nil, fmt.Errorf("FAQ ID cannot be zero")
	}

	return &FAQ{
		id:         faqID,
		sid:        sid,
		categoryID: categoryID,
		question:   question,
		answer:     answer,
		sortOrder:  sortOrder,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (f *FAQ) ID() uint             { return f.id }
func (f *FAQ) SID() string          { return f.sid }
func (f *FAQ) CategoryID() uint     { return f.categoryID }
func (f *FAQ) Question() string     { return f.question }
func (f *FAQ) Answer() string       { return f.answer }
func (f *FAQ) SortOrder() int       { return f.sortOrder }
func (f *FAQ) IsActive() bool       { return f.isActive }
func (f *FAQ) CreatedAt() time.Time { return f.createdAt }
func (f *FAQ) UpdatedAt() time.Time { return f.updatedAt }

func (f *FAQ) PrefixedSID() string {
	return id.FormatWithPrefix(id.PrefixFAQ, f.sid)
}

func (f *FAQ) SetID(faqID uint) error {
	if f.id != 0 {
		return fmt.Errorf("FAQ ID is already set")
	}
	if faqID == 0 {
		return fmt.Errorf("FAQ ID cannot be zero")
	}
	f.id = faqID
	return nil
}

func (f *FAQ) Update(categoryID uint, question, answer string, sortOrder int, isActive bool) error {
	if categoryID == 0 {
		return fmt.Errorf("FAQ category ID is required")
	}
	if question == "" {
		return fmt.Errorf("FAQ question is required")
	}
	if answer == "" {
		return fmt.Errorf("FAQ answer is required")
	}
	f.categoryID = categoryID
	f.question = question
	f.answer = answer
	f.sortOrder = sortOrder
	f.isActive = isActive
	f.updatedAt = time.Now()
	return nil
}
