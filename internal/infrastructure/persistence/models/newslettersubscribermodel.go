package models

import (
	"time"
)

// NewsletterSubscriberModel represents the newsletter_subscribers table.
type NewsletterSubscriberModel struct {
	ID             uint   `gorm:"primarykey"`
	Email          string `gorm:"uniqueIndex;not null;size:255"`
	Source         string `gorm:"size:100"`
	IsActive       bool   `gorm:"not null;default:true;index"`
	SubscribedAt   time.Time
	UnsubscribedAt *time.Time
}

// TableName specifies the table name for GORM
func (NewsletterSubscriberModel) TableName() string {
	return "newsletter_subscribers"
}
