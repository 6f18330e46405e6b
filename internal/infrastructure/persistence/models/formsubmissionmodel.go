package models

import (
	"time"

	"gorm.io/datatypes"
)

// FormSubmissionModel represents the form_submissions table. Data holds the
// captured field values as a JSON object.
type FormSubmissionModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"column:sid;uniqueIndex;not null;size:16"`
	FormID      uint   `gorm:"not null;index:idx_form_id"`
	Data        datatypes.JSON
	SourceURL   string `gorm:"size:500"`
	IPAddress   string `gorm:"size:45"`
	UserAgent   string `gorm:"size:500"`
	EmailStatus string `gorm:"not null;size:20;default:pending"`
	EmailError  string `gorm:"size:500"`
	CreatedAt   time.Time

	Form *FormModel `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (FormSubmissionModel) TableName() string {
	return "form_submissions"
}
