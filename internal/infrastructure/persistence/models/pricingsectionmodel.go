package models

import (
	"time"
)

// PricingSectionModel represents the pricing_sections table.
type PricingSectionModel struct {
	ID         uint   `gorm:"primarykey"`
	SID        string `gorm:"column:sid;uniqueIndex;not null;size:16"`
	Name       string `gorm:"not null;size:100"`
	Heading    string `gorm:"size:200"`
	Subheading string `gorm:"size:500"`
	Layout     string `gorm:"not null;size:20;default:cards"`
	Background string `gorm:"size:100"`
	IsDefault  bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Plans []PricingSectionPlanModel `gorm:"foreignKey:PricingSectionID"`
}

// TableName specifies the table name for GORM
func (PricingSectionModel) TableName() string {
	return "pricing_sections"
}

// PricingSectionPlanModel is the ordered join between pricing sections
// and plans.
type PricingSectionPlanModel struct {
	ID               uint `gorm:"primarykey"`
	PricingSectionID uint `gorm:"not null;uniqueIndex:idx_section_plan,priority:1"`
	PlanID           uint `gorm:"not null;uniqueIndex:idx_section_plan,priority:2"`
	SortOrder        int  `gorm:"not null;default:0"`
	IsVisible        bool `gorm:"not null;default:true"`

	Plan *PlanModel `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (PricingSectionPlanModel) TableName() string {
	return "pricing_section_plans"
}
