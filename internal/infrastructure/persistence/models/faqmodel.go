package models

import (
	"time"
)

// FAQCategoryModel represents the faq_categories table.
type FAQCategoryModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"column:sid;uniqueIndex;not null;size:16"`
	Name      string `gorm:"not null;size:100"`
	SortOrder int    `gorm:"not null;default:0"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (FAQCategoryModel) TableName() string {
	return "faq_categories"
}

// FAQModel represents the faqs table. Answer is markdown source.
type FAQModel struct {
	ID         uint   `gorm:"primarykey"`
	SID        string `gorm:"column:sid;uniqueIndex;not null;size:16"`
	CategoryID uint   `gorm:"not null;index:idx_category_id"`
	Question   string `gorm:"not null;size:500"`
	Answer     string `gorm:"not null;type:text"`
	SortOrder  int    `gorm:"not null;default:0;index"`
	IsActive   bool   `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category *FAQCategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (FAQModel) TableName() string {
	return "faqs"
}
