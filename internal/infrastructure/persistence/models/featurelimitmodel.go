package models

import (
	"time"
)

// FeatureLimitModel represents the feature_limits table. One row per
// (plan, feature type) pair.
type FeatureLimitModel struct {
	ID            uint   `gorm:"primarykey"`
	PlanID        uint   `gorm:"not null;uniqueIndex:idx_plan_feature,priority:1"`
	FeatureTypeID uint   `gorm:"not null;uniqueIndex:idx_plan_feature,priority:2"`
	Value         string `gorm:"size:50"`
	IsUnlimited   bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Plan        *PlanModel        `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	FeatureType *FeatureTypeModel `gorm:"foreignKey:FeatureTypeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (FeatureLimitModel) TableName() string {
	return "feature_limits"
}
