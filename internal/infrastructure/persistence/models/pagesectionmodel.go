package models

import (
	"time"

	"gorm.io/datatypes"
)

// PageSectionModel represents the page_sections table. Content holds the
// JSON payload whose shape depends on SectionType.
type PageSectionModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"column:sid;uniqueIndex;not null;size:16"`
	PageID      uint   `gorm:"not null;index:idx_page_id"`
	SectionType string `gorm:"not null;size:20"`
	Title       string `gorm:"size:200"`
	SortOrder   int    `gorm:"not null;default:0;index"`
	IsVisible   bool   `gorm:"not null;default:true"`
	Content     datatypes.JSON
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Page *PageModel `gorm:"foreignKey:PageID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (PageSectionModel) TableName() string {
	return "page_sections"
}
