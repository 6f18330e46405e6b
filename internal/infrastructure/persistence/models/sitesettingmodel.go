package models

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSettingModel represents the site_settings table, a keyed JSON store
// for site-wide values.
type SiteSettingModel struct {
	ID        uint   `gorm:"primarykey"`
	Key       string `gorm:"uniqueIndex;not null;size:100"`
	Value     datatypes.JSON
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SiteSettingModel) TableName() string {
	return "site_settings"
}
