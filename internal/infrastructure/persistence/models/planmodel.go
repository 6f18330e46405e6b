package models

import (
	"time"

	"gorm.io/gorm"
)

// PlanModel represents the database persistence model for pricing plans.
// This is the anti-corruption layer between domain and database.
type PlanModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"column:sid;uniqueIndex;not null;size:16"`
	Name        string `gorm:"not null;size:100"`
	Description string `gorm:"size:500"`
	Position    int    `gorm:"not null;default:0;index:idx_position"`
	IsActive    bool   `gorm:"not null;default:true;index"`
	IsPopular   bool   `gorm:"not null;default:false"`
	Version     int    `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return "plans"
}
