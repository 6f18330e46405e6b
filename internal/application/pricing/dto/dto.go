package dto

import (
	"time"

	"github.com/beacon-cms/beacon/internal/domain/catalog"
)

type PlanDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
	IsActive    bool      `json:"is_active"`
	IsPopular   bool      `json:"is_popular"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToPlanDTO(plan *catalog.Plan) *PlanDTO {
	return &PlanDTO{
		ID:          plan.PrefixedSID(),
		Name:        plan.Name(),
		Description: plan.Description(),
		Position:    plan.Position(),
		IsActive:    plan.IsActive(),
		IsPopular:   plan.IsPopular(),
		CreatedAt:   plan.CreatedAt(),
		UpdatedAt:   plan.UpdatedAt(),
	}
}

func ToPlanDTOs(plans []*catalog.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, plan := range plans {
		dtos = append(dtos, ToPlanDTO(plan))
	}
	return dtos
}

type BillingCycleDTO struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	Multiplier int       `json:"multiplier"`
	IsDefault  bool      `json:"is_default"`
	SortOrder  int       `json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToBillingCycleDTO(cycle *catalog.BillingCycle) *BillingCycleDTO {
	return &BillingCycleDTO{
		ID:         cycle.PrefixedSID(),
		Label:      cycle.Label(),
		Multiplier: cycle.Multiplier(),
		IsDefault:  cycle.IsDefault(),
		SortOrder:  cycle.SortOrder(),
		CreatedAt:  cycle.CreatedAt(),
		UpdatedAt:  cycle.UpdatedAt(),
	}
}

func ToBillingCycleDTOs(cycles []*catalog.BillingCycle) []*BillingCycleDTO {
	dtos := make([]*BillingCycleDTO, 0, len(cycles))
	for _, cycle := range cycles {
		dtos = append(dtos, ToBillingCycleDTO(cycle))
	}
	return dtos
}

type PlanPricingDTO struct {
	ID             uint      `json:"id"`
	PlanID         uint      `json:"plan_id"`
	BillingCycleID uint      `json:"billing_cycle_id"`
	PriceCents     int64     `json:"price_cents"`
	Price          string    `json:"price"`
	StripePriceID  string    `json:"stripe_price_id,omitempty"`
	CTAURL         string    `json:"cta_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type FeatureTypeDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Icon      string    `json:"icon,omitempty"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToFeatureTypeDTO(ft *catalog.FeatureType) *FeatureTypeDTO {
	return &FeatureTypeDTO{
		ID:        ft.PrefixedSID(),
		Name:      ft.Name(),
		Unit:      ft.Unit(),
		Icon:      ft.Icon(),
		SortOrder: ft.SortOrder(),
		IsActive:  ft.IsActive(),
		CreatedAt: ft.CreatedAt(),
		UpdatedAt: ft.UpdatedAt(),
	}
}

type FeatureLimitDTO struct {
	ID            uint   `json:"id"`
	PlanID        uint   `json:"plan_id"`
	FeatureTypeID uint   `json:"feature_type_id"`
	Value         string `json:"value"`
	IsUnlimited   bool   `json:"is_unlimited"`
	DisplayValue  string `json:"display_value"`
}

type BasicFeatureDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToBasicFeatureDTO(bf *catalog.BasicFeature) *BasicFeatureDTO {
	return &BasicFeatureDTO{
		ID:        bf.PrefixedSID(),
		Name:      bf.Name(),
		SortOrder: bf.SortOrder(),
		IsActive:  bf.IsActive(),
		CreatedAt: bf.CreatedAt(),
		UpdatedAt: bf.UpdatedAt(),
	}
}

type SectionPlanDTO struct {
	PlanID    uint `json:"plan_id"`
	SortOrder int  `json:"sort_order"`
	IsVisible bool `json:"is_visible"`
}

type PricingSectionDTO struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Heading    string           `json:"heading"`
	Subheading string           `json:"subheading"`
	Layout     string           `json:"layout"`
	Background string           `json:"background,omitempty"`
	IsDefault  bool             `json:"is_default"`
	Plans      []SectionPlanDTO `json:"plans"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func ToPricingSectionDTO(section *catalog.PricingSection) *PricingSectionDTO {
	plans := make([]SectionPlanDTO, 0, len(section.Plans()))
	for _, sp := range section.Plans() {
		plans = append(plans, SectionPlanDTO{
			PlanID:    sp.PlanID,
			SortOrder: sp.SortOrder,
			IsVisible: sp.IsVisible,
		})
	}
	return &PricingSectionDTO{
		ID:         section.PrefixedSID(),
		Name:       section.Name(),
		Heading:    section.Heading(),
		Subheading: section.Subheading(),
		Layout:     string(section.Layout()),
		Background: section.Background(),
		IsDefault:  section.IsDefault(),
		Plans:      plans,
		CreatedAt:  section.CreatedAt(),
		UpdatedAt:  section.UpdatedAt(),
	}
}

// MatrixDTO is the render-ready pricing matrix for one section and one
// selected billing cycle.
type MatrixDTO struct {
	Section     MatrixSectionDTO `json:"section"`
	Cycles      []MatrixCycleDTO `json:"cycles"`
	ActiveCycle MatrixCycleDTO   `json:"active_cycle"`
	Plans       []*MatrixPlanDTO `json:"plans"`
	HasPlans    bool             `json:"has_plans"`
	SavingsRate int              `json:"savings_rate"`
}

type MatrixSectionDTO struct {
	ID         string `json:"id"`
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	Layout     string `json:"layout"`
	Background string `json:"background,omitempty"`
}

type MatrixCycleDTO struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Multiplier int    `json:"multiplier"`
	IsDefault  bool   `json:"is_default"`
}

type MatrixPlanDTO struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	IsPopular     bool               `json:"is_popular"`
	Price         string             `json:"price"`
	PriceCents    int64              `json:"price_cents"`
	CTAURL        string             `json:"cta_url,omitempty"`
	SavingRate    int                `json:"saving_rate"`
	Features      []MatrixFeatureDTO `json:"features"`
	BasicFeatures []string           `json:"basic_features"`
}

type MatrixFeatureDTO struct {
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Icon  string `json:"icon,omitempty"`
	Value string `json:"value"`
}
