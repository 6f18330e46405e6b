package form

import (
	"fmt"
	"time"

	"github.com/beacon-cms/beacon/internal/shared/id"
)

// EmailStatus records the outcome of the notification send attached to a
// submission. A failed send never invalidates the submission itself.
type EmailStatus string

const (
	EmailStatusPending       EmailStatus = "pending"
	EmailStatusNotConfigured EmailStatus = "not_configured"
	EmailStatusSent          EmailStatus = "sent"
	EmailStatusFailed        EmailStatus = "failed"
)

// Submission is one accepted form post with its captured values.
type Submission struct {
	id          uint
	sid         string
	formID      uint
	data        map[string]string
	sourceURL   string
	ipAddress   string
	userAgent   string
	emailStatus EmailStatus
	emailError  string
	createdAt   time.Time
}

func NewSubmission(formID uint, data map[string]string, sourceURL, ipAddress, userAgent string) (*Submission, error) {
	if formID == 0 {
		return nil, fmt.Errorf("form ID is required")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("submission data is required")
	}

	sid, err := id.Generate(id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate submission sid: %w", err)
	}

	return &Submission{
		sid:         sid,
		formID:      formID,
		data:        data,
		sourceURL:   sourceURL,
		ipAddress:   ipAddress,
		userAgent:   userAgent,
		emailStatus: EmailStatusPending,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructSubmission(submissionID uint, sid string, formID uint, data map[string]string,
	sourceURL, ipAddress, userAgent string, emailStatus EmailStatus, emailError string,
	createdAt time.Time) (*Submission, error) {

	if submissionID == 0 {
		return nil, fmt.Errorf("submission ID cannot be zero")
	}

	return &Submission{
		id:          submissionID,
		sid:         sid,
		formID:      formID,
		data:        data,
		sourceURL:   sourceURL,
		ipAddress:   ipAddress,
		userAgent:   userAgent,
		emailStatus: emailStatus,
		emailError:  emailError,
		createdAt:   createdAt,
	}, nil
}

func (s *Submission) ID() uint                 { return s.id }
func (s *Submission) SID() string              { return s.sid }
func (s *Submission) FormID() uint             { return s.formID }
func (s *Submission) Data() map[string]string  { return s.data }
func (s *Submission) SourceURL() string        { return s.sourceURL }
func (s *Submission) IPAddress() string        { return s.ipAddress }
func (s *Submission) UserAgent() string        { return s.userAgent }
func (s *Submission) EmailStatus() EmailStatus { return s.emailStatus }
func (s *Submission) EmailError() string       { return s.emailError }
func (s *Submission) CreatedAt() time.Time     { return s.createdAt }

func (s *Submission) PrefixedSID() string {
	return id.FormatWithPrefix(id.PrefixFormSubmission, s.sid)
}

func (s *Submission) SetID(submissionID uint) error {
	if s.id != 0 {
		return fmt.Errorf("submission ID is already set")
	}
	if submissionID == 0 {
		return fmt.Errorf("submission ID cannot be zero")
	}
	s.id = submissionID
	return nil
}

func (s *Submission) MarkEmailSent() {
	s.emailStatus = EmailStatusSent
	s.emailError = ""
}

func (s *Submission) MarkEmailFailed(reason string) {
	s.emailStatus = EmailStatusFailed
	s.emailError = reason
}

func (s *Submission) MarkEmailNotConfigured() {
	s.emailStatus = EmailStatusNotConfigured
	s.emailError = ""
}
