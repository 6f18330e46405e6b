package catalog

import (
	"fmt"
	"time"

	"github.com/beacon-cms/beacon/internal/shared/id"
)

type PricingLayout string

const (
	PricingLayoutCards      PricingLayout = "cards"
	PricingLayoutComparison PricingLayout = "comparison"
)

func (l PricingLayout) IsValid() bool {
	return l == PricingLayoutCards || l == PricingLayoutComparison
}

// PricingSection is a named, configurable pricing block. It selects which
// plans are shown, in what order, so the same plan pool can be presented
// differently across pages.
type PricingSection struct {
	id         uint
	sid        string
	name       string
	heading    string
	subheading string
	layout     PricingLayout
	background string
	isDefault  bool
	createdAt  time.Time
	updatedAt  time.Time

	plans []SectionPlan
}

// SectionPlan is the ordered, visibility-flagged join between a pricing
// section and a plan.
type SectionPlan struct {
	PlanID    uint
	SortOrder int
	IsVisible bool
}

func NewPricingSection(name, heading, subheading string, layout PricingLayout) (*PricingSection, error) {
	if name == "" {
		return nil, fmt.Errorf("pricing section name is required")
	}
	if layout == "" {
		layout = PricingLayoutCards
	}
	if !layout.IsValid() {
		return nil, fmt.Errorf("invalid pricing layout: %s", layout)
	}

	sid, err := id.Generate(id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate pricing section sid: %w", err)
	}

	now := time.Now()
	return &PricingSection{
		sid:        sid,
		name:       name,
		heading:    heading,
		subheading: subheading,
		layout:     layout,
		isDefault:  false,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructPricingSection(sectionID uint, sid, name, heading, subheading string,
	layout PricingLayout, background string, isDefault bool, plans []SectionPlan,
	createdAt, updatedAt time.Time) (*PricingSection, error) {

	if sectionID == 0 {
		return nil, fmt.Errorf("pricing section ID cannot be zero")
	}
	if !layout.IsValid() {
		return nil, fmt.Errorf("invalid pricing layout: %s", layout)
	}

	return &PricingSection{
		id:         sectionID,
		sid:        sid,
		name:       name,
		heading:    heading,
		subheading: subheading,
		layout:     layout,
		background: background,
		isDefault:  isDefault,
		plans:      plans,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (s *PricingSection) ID() uint              { return s.id }
func (s *PricingSection) SID() string           { return s.sid }
func (s *PricingSection) Name() string          { return s.name }
func (s *PricingSection) Heading() string       { return s.heading }
func (s *PricingSection) Subheading() string    { return s.subheading }
func (s *PricingSection) Layout() PricingLayout { return s.layout }
func (s *PricingSection) Background() string    { return s.background }
func (s *PricingSection) IsDefault() bool       { return s.isDefault }
func (s *PricingSection) CreatedAt() time.Time  { return s.createdAt }
func (s *PricingSection) UpdatedAt() time.Time  { return s.updatedAt }

func (s *PricingSection) PrefixedSID() string {
	return id.FormatWithPrefix(id.PrefixPricingSection, s.sid)
}

func (s *PricingSection) SetID(sectionID uint) error {
	if s.id != 0 {
		return fmt.Errorf("pricing section ID is already set")
	}
	if sectionID == 0 {
		return fmt.Errorf("pricing section ID cannot be zero")
	}
	s.id = sectionID
	return nil
}

// Plans returns the section's plan joins ordered as stored.
func (s *PricingSection) Plans() []SectionPlan {
	return s.plans
}

// VisiblePlanIDs returns the plan IDs shown by this section in sort order.
func (s *PricingSection) VisiblePlanIDs() []uint {
	ids := make([]uint, 0, len(s.plans))
	for _, sp := range s.plans {
		if sp.IsVisible {
			ids = append(ids, sp.PlanID)
		}
	}
	return ids
}

func (s *PricingSection) Update(name, heading, subheading string, layout PricingLayout, background string) error {
	if name == "" {
		return fmt.Errorf("pricing section name is required")
	}
	if !layout.IsValid() {
		return fmt.Errorf("invalid pricing layout: %s", layout)
	}
	s.name = name
	s.heading = heading
	s.subheading = subheading
	s.layout = layout
	s.background = background
	s.updatedAt = time.Now()
	return nil
}

// ReplacePlans swaps the full plan join set for the section.
func (s *PricingSection) ReplacePlans(plans []SectionPlan) {
	s.plans = plans
	s.updatedAt = time.Now()
}
