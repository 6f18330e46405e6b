package catalog

import (
	"fmt"
	"time"
)

// PlanPricing is the price of a plan for one billing cycle.
// At most one row exists per (plan, cycle) pair; the price is in cents.
type PlanPricing struct {
	id             uint
	planID         uint
	billingCycleID uint
	priceCents     int64
	stripePriceID  string
	ctaURL         string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPlanPricing(planID, billingCycleID uint, priceCents int64) (*PlanPricing, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if billingCycleID == 0 {
		return nil, fmt.Errorf("billing cycle ID is required")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	now := time.Now()
	return &PlanPricing{
		planID:         planID,
		billingCycleID: billingCycleID,
		priceCents:     priceCents,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructPlanPricing(pricingID, planID, billingCycleID uint, priceCents int64,
	stripePriceID, ctaURL string, createdAt, updatedAt time.Time) (*PlanPricing, error) {

	if pricingID == 0 {
		return nil, fmt.Errorf("pricing ID cannot be zero")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	return &PlanPricing{
		id:             pricingID,
		planID:         planID,
		billingCycleID: billingCycleID,
		priceCents:     priceCents,
		stripePriceID:  stripePriceID,
		ctaURL:         ctaURL,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (p *PlanPricing) ID() uint {
	return p.id
}

func (p *PlanPricing) SetID(pricingID uint) error {
	if p.id != 0 {
		return fmt.Errorf("pricing ID is already set")
	}
	if pricingID == 0 {
		return fmt.Errorf("pricing ID cannot be zero")
	}
	p.id = pricingID
	return nil
}

func (p *PlanPricing) PlanID() uint {
	return p.planID
}

func (p *PlanPricing) BillingCycleID() uint {
	return p.billingCycleID
}

func (p *PlanPricing) PriceCents() int64 {
	return p.priceCents
}

func (p *PlanPricing) StripePriceID() string {
	return p.stripePriceID
}

func (p *PlanPricing) CTAURL() string {
	return p.ctaURL
}

func (p *PlanPricing) CreatedAt() time.Time {
	return p.createdAt
}

func (p *PlanPricing) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *PlanPricing) UpdatePrice(priceCents int64) error {
	if priceCents < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	p.priceCents = priceCents
	p.updatedAt = time.Now()
	return nil
}

func (p *PlanPricing) SetStripePriceID(stripePriceID string) {
	p.stripePriceID = stripePriceID
	p.updatedAt = time.Now()
}

func (p *PlanPricing) SetCTAURL(ctaURL string) {
	p.ctaURL = ctaURL
	p.updatedAt = time.Now()
}
