package catalog

import (
	"context"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, planID uint) (*Plan, error)
	GetBySID(ctx context.Context, sid string) (*Plan, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Plan, error)
	List(ctx context.Context, activeOnly bool) ([]*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	// Delete removes a plan. Implementations must refuse to delete a plan
	// that is still referenced by pricing, limits, features or sections.
	Delete(ctx context.Context, planID uint) error
	CountUsages(ctx context.Context, planID uint) (int64, error)
}

type BillingCycleRepository interface {
	Create(ctx context.Context, cycle *BillingCycle) error
	GetByID(ctx context.Context, cycleID uint) (*BillingCycle, error)
	GetBySID(ctx context.Context, sid string) (*BillingCycle, error)
	GetDefault(ctx context.Context) (*BillingCycle, error)
	List(ctx context.Context) ([]*BillingCycle, error)
	Update(ctx context.Context, cycle *BillingCycle) error
	Delete(ctx context.Context, cycleID uint) error
	// SetDefault atomically marks one cycle as default and clears the flag
	// on every other cycle.
	SetDefault(ctx context.Context, cycleID uint) error
}

type PlanPricingRepository interface {
	Create(ctx context.Context, pricing *PlanPricing) error
	GetByID(ctx context.Context, pricingID uint) (*PlanPricing, error)
	GetByPlanAndCycle(ctx context.Context, planID, cycleID uint) (*PlanPricing, error)
	GetByPlanIDs(ctx context.Context, planIDs []uint) (map[uint][]*PlanPricing, error)
	List(ctx context.Context) ([]*PlanPricing, error)
	Update(ctx context.Context, pricing *PlanPricing) error
	Delete(ctx context.Context, pricingID uint) error
}

type FeatureTypeRepository interface {
	Create(ctx context.Context, featureType *FeatureType) error
	GetByID(ctx context.Context, typeID uint) (*FeatureType, error)
	GetBySID(ctx context.Context, sid string) (*FeatureType, error)
	// ListActive returns active feature types ordered by sort order,
	// limited to limit entries (0 means no limit).
	ListActive(ctx context.Context, limit int) ([]*FeatureType, error)
	List(ctx context.Context) ([]*FeatureType, error)
	Update(ctx context.Context, featureType *FeatureType) error
	Delete(ctx context.Context, typeID uint) error
}

type FeatureLimitRepository interface {
	Upsert(ctx context.Context, limit *FeatureLimit) error
	GetByPlanIDs(ctx context.Context, planIDs []uint) (map[uint][]*FeatureLimit, error)
	List(ctx context.Context) ([]*FeatureLimit, error)
	Delete(ctx context.Context, limitID uint) error
}

type BasicFeatureRepository interface {
	Create(ctx context.Context, feature *BasicFeature) error
	GetByID(ctx context.Context, featureID uint) (*BasicFeature, error)
	GetBySID(ctx context.Context, sid string) (*BasicFeature, error)
	List(ctx context.Context) ([]*BasicFeature, error)
	Update(ctx context.Context, feature *BasicFeature) error
	Delete(ctx context.Context, featureID uint) error

	// AssignToPlan and RemoveFromPlan manage the presence-only join.
	AssignToPlan(ctx context.Context, planID, featureID uint) error
	RemoveFromPlan(ctx context.Context, planID, featureID uint) error
	// GetByPlanIDs returns the included basic features per plan,
	// ordered by the feature's sort order.
	GetByPlanIDs(ctx context.Context, planIDs []uint) (map[uint][]*BasicFeature, error)
}

type PricingSectionRepository interface {
	Create(ctx context.Context, section *PricingSection) error
	GetByID(ctx context.Context, sectionID uint) (*PricingSection, error)
	GetBySID(ctx context.Context, sid string) (*PricingSection, error)
	GetDefault(ctx context.Context) (*PricingSection, error)
	List(ctx context.Context) ([]*PricingSection, error)
	Update(ctx context.Context, section *PricingSection) error
	Delete(ctx context.Context, sectionID uint) error
	// ReplacePlans swaps the section's plan joins in one transaction.
	ReplacePlans(ctx context.Context, sectionID uint, plans []SectionPlan) error
	// SetDefault atomically marks one section as default and clears the
	// flag on every other section.
	SetDefault(ctx context.Context, sectionID uint) error
}
