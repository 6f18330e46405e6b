package dto

import (
	"time"

	"github.com/beacon-cms/beacon/internal/domain/form"
)

type FieldDTO struct {
	ID          uint     `json:"id"`
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder,omitempty"`
	HelpText    string   `json:"help_text,omitempty"`
	IsRequired  bool     `json:"is_required"`
	SortOrder   int      `json:"sort_order"`
	Options     []string `json:"options,omitempty"`
}

func ToFieldDTO(field *form.Field) *FieldDTO {
	return &FieldDTO{
		ID:          field.ID(),
		Type:        string(field.Type()),
		Name:        field.Name(),
		Label:       field.Label(),
		Placeholder: field.Placeholder(),
		HelpText:    field.HelpText(),
		IsRequired:  field.IsRequired(),
		SortOrder:   field.SortOrder(),
		Options:     field.Options(),
	}
}

func ToFieldDTOs(fields []*form.Field) []*FieldDTO {
	dtos := make([]*FieldDTO, 0, len(fields))
	for _, field := range fields {
		dtos = append(dtos, ToFieldDTO(field))
	}
	return dtos
}

// FormDTO is the admin view of a form, notification settings included.
type FormDTO struct {
	ID                string      `json:"id"`
	Slug              string      `json:"slug"`
	Name              string      `json:"name"`
	Title             string      `json:"title"`
	Description       string      `json:"description,omitempty"`
	SubmitLabel       string      `json:"submit_label"`
	SuccessMessage    string      `json:"success_message,omitempty"`
	EmailNotification bool        `json:"email_notification"`
	NotifyEmails      []string    `json:"notify_emails"`
	DynamicRecipients bool        `json:"dynamic_recipients"`
	SendConfirmation  bool        `json:"send_confirmation"`
	SubscribeField    string      `json:"subscribe_field,omitempty"`
	IsActive          bool        `json:"is_active"`
	Fields            []*FieldDTO `json:"fields"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

func ToFormDTO(f *form.Form) *FormDTO {
	notifyEmails := f.NotifyEmails()
	if notifyEmails == nil {
		notifyEmails = []string{}
	}
	return &FormDTO{
		ID:                f.PrefixedSID(),
		Slug:              f.Slug(),
		Name:              f.Name(),
		Title:             f.Title(),
		Description:       f.Description(),
		SubmitLabel:       f.SubmitLabel(),
		SuccessMessage:    f.SuccessMessage(),
		EmailNotification: f.EmailNotification(),
		NotifyEmails:      notifyEmails,
		DynamicRecipients: f.DynamicRecipients(),
		SendConfirmation:  f.SendConfirmation(),
		SubscribeField:    f.SubscribeField(),
		IsActive:          f.IsActive(),
		Fields:            ToFieldDTOs(f.Fields()),
		CreatedAt:         f.CreatedAt(),
		UpdatedAt:         f.UpdatedAt(),
	}
}

// PublicFormDTO is the renderable form definition served to the public site.
// Notification settings never leave the admin surface.
type PublicFormDTO struct {
	ID          string      `json:"id"`
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	SubmitLabel string      `json:"submit_label"`
	Fields      []*FieldDTO `json:"fields"`
}

func ToPublicFormDTO(f *form.Form) *PublicFormDTO {
	return &PublicFormDTO{
		ID:          f.PrefixedSID(),
		Slug:        f.Slug(),
		Title:       f.Title(),
		Description: f.Description(),
		SubmitLabel: f.SubmitLabel(),
		Fields:      ToFieldDTOs(f.Fields()),
	}
}

type SubmissionDTO struct {
	ID          string            `json:"id"`
	FormID      uint              `json:"form_id"`
	Data        map[string]string `json:"data"`
	SourceURL   string            `json:"source_url,omitempty"`
	IPAddress   string            `json:"ip_address,omitempty"`
	UserAgent   string            `json:"user_agent,omitempty"`
	EmailStatus string            `json:"email_status"`
	EmailError  string            `json:"email_error,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

func ToSubmissionDTO(s *form.Submission) *SubmissionDTO {
	return &SubmissionDTO{
		ID:          s.PrefixedSID(),
		FormID:      s.FormID(),
		Data:        s.Data(),
		SourceURL:   s.SourceURL(),
		IPAddress:   s.IPAddress(),
		UserAgent:   s.UserAgent(),
		EmailStatus: string(s.EmailStatus()),
		EmailError:  s.EmailError(),
		CreatedAt:   s.CreatedAt(),
	}
}

// EmailResultDTO reports the notification outcome alongside an accepted
// submission. A failed send never fails the submission itself.
type EmailResultDTO struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type SubmitResultDTO struct {
	SubmissionID string          `json:"submission_id"`
	Message      string          `json:"message"`
	Email        *EmailResultDTO `json:"email"`
}

type NewsletterSubscriberDTO struct {
	ID             uint       `json:"id"`
	Email          string     `json:"email"`
	Source         string     `json:"source,omitempty"`
	IsActive       bool       `json:"is_active"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}

func ToNewsletterSubscriberDTO(n *form.NewsletterSubscriber) *NewsletterSubscriberDTO {
	return &NewsletterSubscriberDTO{
		ID:             n.ID(),
		Email:          n.Email(),
		Source:         n.Source(),
		IsActive:       n.IsActive(),
		SubscribedAt:   n.SubscribedAt(),
		UnsubscribedAt: n.UnsubscribedAt(),
	}
}
