package models

import (
	"time"

	"gorm.io/gorm"
)

// PageModel represents the pages table.
type PageModel struct {
	ID              uint    `gorm:"primarykey"`
	SID             string  `gorm:"column:sid;uniqueIndex;not null;size:16"`
	Slug            string  `gorm:"uniqueIndex;not null;size:100"`
	Title           string  `gorm:"not null;size:200"`
	MetaTitle       string  `gorm:"size:200"`
	MetaDescription string  `gorm:"size:500"`
	IsActive        bool    `gorm:"not null;default:true;index"`
	SitemapPriority float64 `gorm:"not null;default:0.5"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PageModel) TableName() string {
	return "pages"
}
