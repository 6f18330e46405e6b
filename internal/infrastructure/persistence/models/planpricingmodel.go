package models

import (
	"time"
)

// PlanPricingModel represents the plan_pricing table. One row per
// (plan, billing cycle) pair.
type PlanPricingModel struct {
	ID             uint   `gorm:"primarykey"`
	PlanID         uint   `gorm:"not null;uniqueIndex:idx_plan_cycle,priority:1"`
	BillingCycleID uint   `gorm:"not null;uniqueIndex:idx_plan_cycle,priority:2"`
	PriceCents     int64  `gorm:"not null;comment:Price in cents"`
	StripePriceID  string `gorm:"size:100"`
	CTAURL         string `gorm:"size:500"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Plan         *PlanModel         `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	BillingCycle *BillingCycleModel `gorm:"foreignKey:BillingCycleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (PlanPricingModel) TableName() string {
	return "plan_pricing"
}
