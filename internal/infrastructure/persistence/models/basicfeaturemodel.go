package models

import (
	"time"
)

// BasicFeatureModel represents the basic_features table.
type BasicFeatureModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"column:sid;uniqueIndex;not null;size:16"`
	Name      string `gorm:"not null;size:150"`
	SortOrder int    `gorm:"not null;default:0;index"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (BasicFeatureModel) TableName() string {
	return "basic_features"
}

// PlanBasicFeatureModel is the presence-only join between plans and
// basic features.
type PlanBasicFeatureModel struct {
	PlanID         uint `gorm:"primarykey"`
	BasicFeatureID uint `gorm:"primarykey"`

	Plan         *PlanModel         `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	BasicFeature *BasicFeatureModel `gorm:"foreignKey:BasicFeatureID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (PlanBasicFeatureModel) TableName() string {
	return "plan_basic_features"
}
