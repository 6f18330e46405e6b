package usecases

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beacon-cms/beacon/internal/domain/form"
	sharederrors "github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type fakeFormRepo struct {
	form.FormRepository
	forms map[string]*form.Form
}

func (r *fakeFormRepo) GetBySlug(_ context.Context, slug string) (*form.Form, error) {
	return r.forms[slug], nil
}

type fakeSubmissionRepo struct {
	form.SubmissionRepository
	created      []*form.Submission
	createErr    error
	statusUpdate form.EmailStatus
}

func (r *fakeSubmissionRepo) Create(_ context.Context, submission *form.Submission) error {
	if r.createErr != nil {
		return r.createErr
	}
	if err := submission.SetID(uint(len(r.created) + 1)); err != nil {
		return err
	}
	r.created = append(r.created, submission)
	return nil
}

func (r *fakeSubmissionRepo) UpdateEmailStatus(_ context.Context, _ uint, status form.EmailStatus, _ string) error {
	r.statusUpdate = status
	return nil
}

type fakeNewsletterRepo struct {
	form.NewsletterRepository
	subscribers map[string]*form.NewsletterSubscriber
	created     []*form.NewsletterSubscriber
	updated     []*form.NewsletterSubscriber
}

func (r *fakeNewsletterRepo) GetByEmail(_ context.Context, email string) (*form.NewsletterSubscriber, error) {
	return r.subscribers[email], nil
}

func (r *fakeNewsletterRepo) Create(_ context.Context, subscriber *form.NewsletterSubscriber) error {
	r.created = append(r.created, subscriber)
	return nil
}

func (r *fakeNewsletterRepo) Update(_ context.Context, subscriber *form.NewsletterSubscriber) error {
	r.updated = append(r.updated, subscriber)
	return nil
}

type fakeSender struct {
	notifyRecipients [][]string
	notifyErr        error
	confirmations    []string
	confirmErr       error
}

func (s *fakeSender) SendSubmissionNotification(recipients []string, _, _ string, _ map[string]string) error {
	s.notifyRecipients = append(s.notifyRecipients, recipients)
	return s.notifyErr
}

func (s *fakeSender) SendSubmissionConfirmation(to, _, _ string) error {
	s.confirmations = append(s.confirmations, to)
	return s.confirmErr
}

func testForm(t *testing.T, opts ...func(*form.Form)) *form.Form {
	t.Helper()
	f, err := form.NewForm("contact", "Contact")
	require.NoError(t, err)
	require.NoError(t, f.SetID(1))

	email := testField(t, 1, form.FieldTypeEmail, "email", "Email", true)
	message := testField(t, 1, form.FieldTypeTextarea, "message", "Message", false)
	f.ReplaceFields([]*form.Field{email, message})

	for _, opt := range opts {
		opt(f)
	}
	return f
}

func testField(t *testing.T, formID uint, fieldType form.FieldType, name, label string, required bool) *form.Field {
	t.Helper()
	field, err := form.NewField(formID, fieldType, name, label)
	require.NoError(t, err)
	require.NoError(t, field.Update(fieldType, name, label, "", "", required, 0, nil))
	return field
}

func withNotify(emails ...string) func(*form.Form) {
	return func(f *form.Form) {
		updateForm(f, true, emails, f.DynamicRecipients(), f.SendConfirmation(), f.SubscribeField())
	}
}

func withNotification() func(*form.Form) {
	return func(f *form.Form) {
		updateForm(f, true, f.NotifyEmails(), f.DynamicRecipients(), f.SendConfirmation(), f.SubscribeField())
	}
}

func withDynamicRecipients() func(*form.Form) {
	return func(f *form.Form) {
		updateForm(f, true, f.NotifyEmails(), true, f.SendConfirmation(), f.SubscribeField())
	}
}

func withConfirmation() func(*form.Form) {
	return func(f *form.Form) {
		updateForm(f, f.EmailNotification(), f.NotifyEmails(), f.DynamicRecipients(), true, f.SubscribeField())
	}
}

func withSubscribeField(name string) func(*form.Form) {
	return func(f *form.Form) {
		updateForm(f, f.EmailNotification(), f.NotifyEmails(), f.DynamicRecipients(), f.SendConfirmation(), name)
	}
}

func updateForm(f *form.Form, emailNotification bool, notifyEmails []string, dynamicRecipients, sendConfirmation bool, subscribeField string) {
	if err := f.Update(f.Slug(), f.Name(), f.Title(), f.Description(), f.SubmitLabel(),
		"Thanks, we got it.", emailNotification, notifyEmails, dynamicRecipients,
		sendConfirmation, subscribeField); err != nil {
		panic(fmt.Sprintf("update test form: %v", err))
	}
}

func newSubmitFixture(f *form.Form, sender NotificationSender) (*SubmitFormUseCase, *fakeSubmissionRepo, *fakeNewsletterRepo) {
	formRepo := &fakeFormRepo{forms: map[string]*form.Form{f.Slug(): f}}
	submissionRepo := &fakeSubmissionRepo{}
	newsletterRepo := &fakeNewsletterRepo{subscribers: map[string]*form.NewsletterSubscriber{}}
	uc := NewSubmitFormUseCase(formRepo, submissionRepo, newsletterRepo, sender, logger.NewLogger())
	return uc, submissionRepo, newsletterRepo
}

func TestSubmitForm_PersistsAndNotifies(t *testing.T) {
	f := testForm(t, withNotify("team@example.com"))
	sender := &fakeSender{}
	uc, submissionRepo, _ := newSubmitFixture(f, sender)

	result, err := uc.Execute(context.Background(), SubmitFormCommand{
		FormSlug:  "contact",
		Values:    map[string]string{"email": "visitor@example.com", "message": "hello"},
		SourceURL: "https://example.com/contact",
	})
	require.NoError(t, err)

	assert.Equal(t, "Thanks, we got it.", result.Message)
	assert.Equal(t, string(form.EmailStatusSent), result.Email.Status)
	require.Len(t, submissionRepo.created, 1)
	assert.Equal(t, form.EmailStatusSent, submissionRepo.statusUpdate)

	// without dynamic recipients only the configured list is notified
	require.Len(t, sender.notifyRecipients, 1)
	assert.Equal(t, []string{"team@example.com"}, sender.notifyRecipients[0])
}

func TestSubmitForm_DynamicRecipientsIncludeSubmittedEmails(t *testing.T) {
	f := testForm(t, withNotify("team@example.com"), withDynamicRecipients())
	sender := &fakeSender{}
	uc, _, _ := newSubmitFixture(f, sender)

	_, err := uc.Execute(context.Background(), SubmitFormCommand{
		FormSlug: "contact",
		Values:   map[string]string{"email": "visitor@example.com"},
	})
	require.NoError(t, err)

	require.Len(t, sender.notifyRecipients, 1)
	assert.ElementsMatch(t, []string{"team@example.com", "visitor@example.com"}, sender.notifyRecipients[0])
}

func TestSubmitForm_EmailFailureStillAccepts(t *testing.T) {
	f := testForm(t, withNotify("team@example.com"))
	sender := &fakeSender{notifyErr: errors.New("smtp: connection refused")}
	uc, submissionRepo, _ := newSubmitFixture(f, sender)

	result, err := uc.Execute(context.Background(), SubmitFormCommand{
		FormSlug: "contact",
		Values:   map[string]string{"email": "visitor@example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, string(form.EmailStatusFailed), result.Email.Status)
	assert.Contains(t, result.Email.Error, "connection refused")
	require.Len(t, submissionRepo.created, 1)
	assert.Equal(t, form.EmailStatusFailed, submissionRepo.statusUpdate)
}

func TestSubmitForm_NoSenderMarksNotConfigured(t *testing.T) {
	f := testForm(t, withNotify("team@example.com"))
	uc, submissionRepo, _ := newSubmitFixture(f, nil)

	result, err := uc.Execute(context.Background(), SubmitFormCommand{
		FormSlug: "contact",
		Values:   map[string]string{"email": "visitor@example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, string(form.EmailStatusNotConfigured), result.Email.Status)
	assert.Equal(t, form.EmailStatusNotConfigured, submissionRepo.statusUpdate)
}

func TestSubmitForm_NotificationDisabledMarksNotConfigured(t *testing.T) {
	f := testForm(t) // notification off by default
	sender := &fakeSender{}
	uc, submissionRepo, _ := newSubmitFixture(f, sender)

	result, err := uc.Execute(context.Background(), SubmitFormCommand{
		FormSlug: "contact",
		Values:   map[string]string{"email": "visitor@example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, string(form.EmailStatusNotConfigured), result.Email.Status)
	assert.Equal(t, form.EmailStatusNotConfigured, submissionRepo.statusUpdate)
	assert.Empty(t, sender.notifyRecipients)
}

func TestSubmitForm_NoRecipientsFails(t *testing.T) {
	f := testForm(t, withNotification())
	sender := &fakeSender{}
	uc, submissionRepo, _ := newSubmitFixture(f, sender)

	// notification is on, but the notify list is empty and dynamic
	// recipients are off: the submission is kept, the email is failed,
	// and the visitor's typed address is never used as a recipient
	result, err := uc.Execute(context.Background(), SubmitFormCommand{
		FormSlug: "contact",
		Values:   map[string]string{"email": "visitor@example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, string(form.EmailStatusFailed), result.Email.Status)
	assert.Equal(t, "No valid email recipients configured", result.Email.Error)
	require.Len(t, submissionRepo.created, 1)
	assert.Equal(t, form.EmailStatusFailed, submissionRepo.statusUpdate)
	assert.Empty(t, sender.notifyRecipients)
}

func TestSubmitForm_ConfirmationGoesToSubmitter(t *testing.T) {
	f := testForm(t, withNotify("team@example.com"), withConfirmation())
	sender := &fakeSender{}
	uc, _, _ := newSubmitFixture(f, sender)

	_, err := uc.Execute(context.Background(), SubmitFormCommand{
		FormSlug: "contact",
		Values:   map[string]string{"email": "visitor@example.com"},
	})
	require.NoError(t, err)

	require.Len(t, sender.notifyRecipients, 1)
	assert.Equal(t, []string{"team@example.com"}, sender.notifyRecipients[0])
	assert.Equal(t, []string{"visitor@example.com"}, sender.confirmations)
}

func TestSubmitForm_ValidationFailure(t *testing.T) {
	f := testForm(t, withNotify("team@example.com"))
	sender := &fakeSender{}
	uc, submissionRepo, _ := newSubmitFixture(f, sender)

	_, err := uc.Execute(context.Background(), SubmitFormCommand{
		FormSlug: "contact",
		Values:   map[string]string{"email": "not-an-email"},
	})
	require.Error(t, err)
	assert.True(t, sharederrors.IsValidationError(err))
	assert.Empty(t, submissionRepo.created)
	assert.Empty(t, sender.notifyRecipients)
}

func TestSubmitForm_InactiveFormNotFound(t *testing.T) {
	f := testForm(t)
	f.Deactivate()
	uc, _, _ := newSubmitFixture(f, &fakeSender{})

	_, err := uc.Execute(context.Background(), SubmitFormCommand{
		FormSlug: "contact",
		Values:   map[string]string{"email": "visitor@example.com"},
	})
	require.Error(t, err)
	assert.True(t, sharederrors.IsNotFoundError(err))
}

func TestSubmitForm_NewsletterSubscribe(t *testing.T) {
	f := testForm(t, withNotify("team@example.com"), withSubscribeField("email"))
	uc, _, newsletterRepo := newSubmitFixture(f, &fakeSender{})

	_, err := uc.Execute(context.Background(), SubmitFormCommand{
		FormSlug: "contact",
		Values:   map[string]string{"email": "visitor@example.com"},
	})
	require.NoError(t, err)

	require.Len(t, newsletterRepo.created, 1)
	assert.Equal(t, "visitor@example.com", newsletterRepo.created[0].Email())
	assert.Equal(t, "contact", newsletterRepo.created[0].Source())
}

func TestSubmitForm_NewsletterResubscribe(t *testing.T) {
	f := testForm(t, withNotify("team@example.com"), withSubscribeField("email"))
	uc, _, newsletterRepo := newSubmitFixture(f, &fakeSender{})

	existing, err := form.ReconstructNewsletterSubscriber(7, "visitor@example.com", "old-form", false, f.CreatedAt(), nil)
	require.NoError(t, err)
	newsletterRepo.subscribers["visitor@example.com"] = existing

	_, err = uc.Execute(context.Background(), SubmitFormCommand{
		FormSlug: "contact",
		Values:   map[string]string{"email": "visitor@example.com"},
	})
	require.NoError(t, err)

	assert.Empty(t, newsletterRepo.created)
	require.Len(t, newsletterRepo.updated, 1)
	assert.True(t, newsletterRepo.updated[0].IsActive())
	assert.Equal(t, "contact", newsletterRepo.updated[0].Source())
}
