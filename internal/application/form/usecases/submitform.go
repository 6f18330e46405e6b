package usecases

import (
	"context"
	"strings"

	"github.com/beacon-cms/beacon/internal/application/form/dto"
	"github.com/beacon-cms/beacon/internal/domain/form"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

// NotificationSender delivers submission emails. A nil sender means email is
// not configured; submissions are still accepted.
type NotificationSender interface {
	SendSubmissionNotification(recipients []string, formName, sourceURL string, data map[string]string) error
	SendSubmissionConfirmation(to, formTitle, successMessage string) error
}

type SubmitFormCommand struct {
	FormSlug  string
	Values    map[string]string
	SourceURL string
	IPAddress string
	UserAgent string
}

// SubmitFormUseCase runs the public submission pipeline: validate, subscribe,
// persist, notify. The submission row is committed before any email leaves;
// a failed send is recorded on the row, never rolled back.
type SubmitFormUseCase struct {
	formRepo       form.FormRepository
	submissionRepo form.SubmissionRepository
	newsletterRepo form.NewsletterRepository
	sender         NotificationSender
	logger         logger.Interface
}

func NewSubmitFormUseCase(
	formRepo form.FormRepository,
	submissionRepo form.SubmissionRepository,
	newsletterRepo form.NewsletterRepository,
	sender NotificationSender,
	logger logger.Interface,
) *SubmitFormUseCase {
	return &SubmitFormUseCase{
		formRepo:       formRepo,
		submissionRepo: submissionRepo,
		newsletterRepo: newsletterRepo,
		sender:         sender,
		logger:         logger,
	}
}

func (uc *SubmitFormUseCase) Execute(ctx context.Context, cmd SubmitFormCommand) (*dto.SubmitResultDTO, error) {
	f, err := uc.formRepo.GetBySlug(ctx, cmd.FormSlug)
	if err != nil {
		uc.logger.Errorw("failed to get form", "error", err, "slug", cmd.FormSlug)
		return nil, errors.NewInternalError("failed to get form")
	}
	if f == nil || !f.IsActive() {
		return nil, errors.NewNotFoundError("form not found")
	}

	if err := f.ValidateSubmission(cmd.Values); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	uc.subscribeNewsletter(ctx, f, cmd.Values)

	submission, err := form.NewSubmission(f.ID(), cmd.Values, cmd.SourceURL, cmd.IPAddress, cmd.UserAgent)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.submissionRepo.Create(ctx, submission); err != nil {
		uc.logger.Errorw("failed to persist submission", "error", err, "form_id", f.ID())
		return nil, errors.NewInternalError("failed to save submission")
	}

	emailResult := uc.notify(ctx, f, submission, cmd.Values)

	message := f.SuccessMessage()
	if message == "" {
		message = "Thank you for your submission."
	}

	uc.logger.Infow("form submission accepted",
		"form_id", f.ID(), "submission_id", submission.ID(), "email_status", emailResult.Status)

	return &dto.SubmitResultDTO{
		SubmissionID: submission.PrefixedSID(),
		Message:      message,
		Email:        emailResult,
	}, nil
}

// subscribeNewsletter upserts the submitter into the newsletter list when the
// form has a subscribe field holding a plausible address. Failures are logged
// and swallowed; the submission proceeds either way.
func (uc *SubmitFormUseCase) subscribeNewsletter(ctx context.Context, f *form.Form, values map[string]string) {
	if f.SubscribeField() == "" {
		return
	}
	email := strings.TrimSpace(values[f.SubscribeField()])
	if !strings.Contains(email, "@") {
		return
	}

	existing, err := uc.newsletterRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		uc.logger.Warnw("failed to check newsletter subscriber", "error", err, "form_id", f.ID())
		return
	}
	if existing == nil {
		subscriber, err := form.NewNewsletterSubscriber(email, f.Slug())
		if err != nil {
			uc.logger.Warnw("invalid newsletter address", "error", err, "form_id", f.ID())
			return
		}
		if err := uc.newsletterRepo.Create(ctx, subscriber); err != nil {
			uc.logger.Warnw("failed to create newsletter subscriber", "error", err, "form_id", f.ID())
		}
		return
	}
	if !existing.IsActive() {
		existing.Resubscribe(f.Slug())
		if err := uc.newsletterRepo.Update(ctx, existing); err != nil {
			uc.logger.Warnw("failed to resubscribe newsletter subscriber", "error", err, "form_id", f.ID())
		}
	}
}

func (uc *SubmitFormUseCase) notify(ctx context.Context, f *form.Form, submission *form.Submission, values map[string]string) *dto.EmailResultDTO {
	if !f.EmailNotification() || uc.sender == nil {
		submission.MarkEmailNotConfigured()
		uc.updateEmailStatus(ctx, submission)
		return &dto.EmailResultDTO{Status: string(form.EmailStatusNotConfigured)}
	}

	submitterEmail := uc.submitterEmail(f, values)
	recipients := resolveRecipients(f, values, submitterEmail)

	if len(recipients) == 0 {
		// notification is switched on but there is nobody to send to
		const msg = "No valid email recipients configured"
		submission.MarkEmailFailed(msg)
		uc.updateEmailStatus(ctx, submission)
		return &dto.EmailResultDTO{Status: string(form.EmailStatusFailed), Error: msg}
	}

	if err := uc.sender.SendSubmissionNotification(recipients, f.Name(), submission.SourceURL(), values); err != nil {
		uc.logger.Errorw("failed to send submission notification",
			"error", err, "form_id", f.ID(), "submission_id", submission.ID())
		submission.MarkEmailFailed(err.Error())
		uc.updateEmailStatus(ctx, submission)
		return &dto.EmailResultDTO{Status: string(form.EmailStatusFailed), Error: err.Error()}
	}

	if f.SendConfirmation() && submitterEmail != "" {
		message := f.SuccessMessage()
		if err := uc.sender.SendSubmissionConfirmation(submitterEmail, f.Title(), message); err != nil {
			// admin notification already went out; the confirmation is best effort
			uc.logger.Warnw("failed to send submission confirmation",
				"error", err, "form_id", f.ID(), "submission_id", submission.ID())
		}
	}

	submission.MarkEmailSent()
	uc.updateEmailStatus(ctx, submission)
	return &dto.EmailResultDTO{Status: string(form.EmailStatusSent)}
}

func (uc *SubmitFormUseCase) updateEmailStatus(ctx context.Context, submission *form.Submission) {
	if err := uc.submissionRepo.UpdateEmailStatus(ctx, submission.ID(), submission.EmailStatus(), submission.EmailError()); err != nil {
		uc.logger.Warnw("failed to record email status",
			"error", err, "submission_id", submission.ID())
	}
}

// submitterEmail picks the address confirmations go to: the subscribe field
// when configured, else the first email-typed field with a value.
func (uc *SubmitFormUseCase) submitterEmail(f *form.Form, values map[string]string) string {
	if f.SubscribeField() != "" {
		if v := strings.TrimSpace(values[f.SubscribeField()]); strings.Contains(v, "@") {
			return v
		}
	}
	for _, field := range f.Fields() {
		if field.Type() == form.FieldTypeEmail {
			if v := strings.TrimSpace(values[field.Name()]); v != "" {
				return v
			}
		}
	}
	return ""
}

// resolveRecipients unions the form's static notify list with submitted
// email-field values when dynamic recipients are enabled, dropping the
// submitter's own address when the form sends confirmations.
func resolveRecipients(f *form.Form, values map[string]string, submitterEmail string) []string {
	seen := make(map[string]bool)
	var recipients []string

	add := func(addr string) {
		addr = strings.ToLower(strings.TrimSpace(addr))
		if addr == "" || !strings.Contains(addr, "@") || seen[addr] {
			return
		}
		if f.SendConfirmation() && addr == strings.ToLower(strings.TrimSpace(submitterEmail)) {
			return
		}
		seen[addr] = true
		recipients = append(recipients, addr)
	}

	for _, addr := range f.NotifyEmails() {
		add(addr)
	}
	if f.DynamicRecipients() {
		for _, field := range f.Fields() {
			if field.Type() == form.FieldTypeEmail {
				add(values[field.Name()])
			}
		}
	}

	return recipients
}
