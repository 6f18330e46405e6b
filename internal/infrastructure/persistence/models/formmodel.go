package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FormModel represents the forms table. NotifyEmails is a JSON array of
// recipient addresses.
type FormModel struct {
	ID                uint   `gorm:"primarykey"`
	SID               string `gorm:"column:sid;uniqueIndex;not null;size:16"`
	Slug              string `gorm:"uniqueIndex;not null;size:100"`
	Name              string `gorm:"not null;size:100"`
	Title             string `gorm:"size:200"`
	Description       string `gorm:"size:500"`
	SubmitLabel       string `gorm:"size:50"`
	SuccessMessage    string `gorm:"size:500"`
	EmailNotification bool   `gorm:"not null;default:false"`
	NotifyEmails      datatypes.JSON
	DynamicRecipients bool   `gorm:"not null;default:false"`
	SendConfirmation  bool   `gorm:"not null;default:false"`
	SubscribeField    string `gorm:"size:50"`
	IsActive          bool   `gorm:"not null;default:true;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`

	Fields []FormFieldModel `gorm:"foreignKey:FormID"`
}

// TableName specifies the table name for GORM
func (FormModel) TableName() string {
	return "forms"
}

// FormFieldModel represents the form_fields table. Options is a JSON array
// used by select fields.
type FormFieldModel struct {
	ID          uint   `gorm:"primarykey"`
	FormID      uint   `gorm:"not null;uniqueIndex:idx_form_field_name,priority:1"`
	FieldType   string `gorm:"not null;size:20"`
	Name        string `gorm:"not null;size:50;uniqueIndex:idx_form_field_name,priority:2"`
	Label       string `gorm:"not null;size:100"`
	Placeholder string `gorm:"size:200"`
	HelpText    string `gorm:"size:500"`
	IsRequired  bool   `gorm:"not null;default:false"`
	SortOrder   int    `gorm:"not null;default:0"`
	Options     datatypes.JSON
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (FormFieldModel) TableName() string {
	return "form_fields"
}
