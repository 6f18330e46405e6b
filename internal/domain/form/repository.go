package form

import (
	"context"
)

type FormRepository interface {
	Create(ctx context.Context, form *Form) error
	GetByID(ctx context.Context, formID uint) (*Form, error)
	GetBySID(ctx context.Context, sid string) (*Form, error)
	// GetBySlug returns the form with its fields loaded, nil when absent.
	GetBySlug(ctx context.Context, slug string) (*Form, error)
	List(ctx context.Context, activeOnly bool) ([]*Form, error)
	Update(ctx context.Context, form *Form) error
	Delete(ctx context.Context, formID uint) error
	// ReplaceFields swaps the form's field definitions in one transaction.
	ReplaceFields(ctx context.Context, formID uint, fields []*Field) error
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission *Submission) error
	GetByID(ctx context.Context, submissionID uint) (*Submission, error)
	GetBySID(ctx context.Context, sid string) (*Submission, error)
	// ListByFormID returns submissions newest first.
	ListByFormID(ctx context.Context, formID uint, offset, limit int) ([]*Submission, int64, error)
	// UpdateEmailStatus persists the notification outcome after the row
	// has been committed.
	UpdateEmailStatus(ctx context.Context, submissionID uint, status EmailStatus, emailError string) error
	Delete(ctx context.Context, submissionID uint) error
}

type NewsletterRepository interface {
	// GetByEmail returns nil when the address is unknown.
	GetByEmail(ctx context.Context, email string) (*NewsletterSubscriber, error)
	Create(ctx context.Context, subscriber *NewsletterSubscriber) error
	Update(ctx context.Context, subscriber *NewsletterSubscriber) error
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]*NewsletterSubscriber, int64, error)
}
