package models

import (
	"time"
)

// BillingCycleModel represents the billing_cycles table.
type BillingCycleModel struct {
	ID         uint   `gorm:"primarykey"`
	SID        string `gorm:"column:sid;uniqueIndex;not null;size:16"`
	Label      string `gorm:"not null;size:50"`
	Multiplier int    `gorm:"not null;comment:Number of months billed at once"`
	IsDefault  bool   `gorm:"not null;default:false"`
	SortOrder  int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (BillingCycleModel) TableName() string {
	return "billing_cycles"
}
