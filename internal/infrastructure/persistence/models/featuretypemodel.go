package models

import (
	"time"
)

// FeatureTypeModel represents the feature_types table.
type FeatureTypeModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"column:sid;uniqueIndex;not null;size:16"`
	Name      string `gorm:"not null;size:100"`
	Unit      string `gorm:"size:50"`
	Icon      string `gorm:"size:100"`
	SortOrder int    `gorm:"not null;default:0;index"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (FeatureTypeModel) TableName() string {
	return "feature_types"
}
