package form

import (
	"fmt"
	"time"

	"github.com/beacon-cms/beacon/internal/shared/id"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

// Form is an admin-defined lead capture form addressed by slug.
type Form struct {
	id                uint
	sid               string
	slug              string
	name              string
	title             string
	description       string
	submitLabel       string
	successMessage    string
	emailNotification bool
	notifyEmails      []string
	dynamicRecipients bool
	sendConfirmation  bool
	subscribeField    string
	isActive          bool
	fields            []*Field
	createdAt         time.Time
	updatedAt         time.Time
}

func NewForm(slug, name string) (*Form, error) {
	if err := utils.ValidateSlug(slug); err != nil {
		return nil, fmt.Errorf("invalid form slug: %w", err)
	}
	if name == "" {
		return nil, fmt.Errorf("form name is required")
	}

	sid, err := id.Generate(id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate form sid: %w", err)
	}

	now := time.Now()
	return &Form{
		sid:            sid,
		slug:           slug,
		name:           name,
		submitLabel:    "Submit",
		successMessage: "Thanks, we'll be in touch.",
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructForm(formID uint, sid, slug, name, title, description, submitLabel,
	successMessage string, emailNotification bool, notifyEmails []string,
	dynamicRecipients, sendConfirmation bool, subscribeField string, isActive bool,
	fields []*Field, createdAt, updatedAt time.Time) (*Form, error) {

	if formID == 0 {
		return nil, fmt.Errorf("form ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("form slug cannot be empty")
	}

	return &Form{
		id:                formID,
		sid:               sid,
		slug:              slug,
		name:              name,
		title:             title,
		description:       description,
		submitLabel:       submitLabel,
		successMessage:    successMessage,
		emailNotification: emailNotification,
		notifyEmails:      notifyEmails,
		dynamicRecipients: dynamicRecipients,
		sendConfirmation:  sendConfirmation,
		subscribeField:    subscribeField,
		isActive:          isActive,
		fields:            fields,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (f *Form) ID() uint                { return f.id }
func (f *Form) SID() string             { return f.sid }
func (f *Form) Slug() string            { return f.slug }
func (f *Form) Name() string            { return f.name }
func (f *Form) Title() string           { return f.title }
func (f *Form) Description() string     { return f.description }
func (f *Form) SubmitLabel() string     { return f.submitLabel }
func (f *Form) SuccessMessage() string  { return f.successMessage }
func (f *Form) EmailNotification() bool { return f.emailNotification }
func (f *Form) NotifyEmails() []string  { return f.notifyEmails }
func (f *Form) DynamicRecipients() bool { return f.dynamicRecipients }
func (f *Form) SendConfirmation() bool  { return f.sendConfirmation }
func (f *Form) SubscribeField() string  { return f.subscribeField }
func (f *Form) IsActive() bool          { return f.isActive }
func (f *Form) Fields() []*Field        { return f.fields }
func (f *Form) CreatedAt() time.Time    { return f.createdAt }
func (f *Form) UpdatedAt() time.Time    { return f.updatedAt }

func (f *Form) PrefixedSID() string {
	return id.FormatWithPrefix(id.PrefixForm, f.sid)
}

func (f *Form) SetID(formID uint) error {
	if f.id != 0 {
		return fmt.Errorf("form ID is already set")
	}
	if formID == 0 {
		return fmt.Errorf("form ID cannot be zero")
	}
	f.id = formID
	return nil
}

func (f *Form) Update(slug, name, title, description, submitLabel, successMessage string,
	emailNotification bool, notifyEmails []string, dynamicRecipients, sendConfirmation bool,
	subscribeField string) error {

	if err := utils.ValidateSlug(slug); err != nil {
		return fmt.Errorf("invalid form slug: %w", err)
	}
	if name == "" {
		return fmt.Errorf("form name is required")
	}
	f.slug = slug
	f.name = name
	f.title = title
	f.description = description
	f.submitLabel = submitLabel
	f.successMessage = successMessage
	f.emailNotification = emailNotification
	f.notifyEmails = notifyEmails
	f.dynamicRecipients = dynamicRecipients
	f.sendConfirmation = sendConfirmation
	f.subscribeField = subscribeField
	f.updatedAt = time.Now()
	return nil
}

func (f *Form) Activate() {
	f.isActive = true
	f.updatedAt = time.Now()
}

func (f *Form) Deactivate() {
	f.isActive = false
	f.updatedAt = time.Now()
}

// ReplaceFields swaps the form's field definitions.
func (f *Form) ReplaceFields(fields []*Field) {
	f.fields = fields
	f.updatedAt = time.Now()
}

// FieldByName returns the field with the given name, or nil.
func (f *Form) FieldByName(name string) *Field {
	for _, fld := range f.fields {
		if fld.Name() == name {
			return fld
		}
	}
	return nil
}

// ValidateSubmission checks submitted values against the form's field
// definitions. Required fields must be present and non-empty, and every
// provided value must pass its field type's validation. Values for names
// that match no field are rejected.
func (f *Form) ValidateSubmission(values map[string]string) error {
	for name := range values {
		if f.FieldByName(name) == nil {
			return fmt.Errorf("unknown field: %s", name)
		}
	}
	for _, fld := range f.fields {
		value, ok := values[fld.Name()]
		if fld.IsRequired() && (!ok || value == "") {
			return fmt.Errorf("field %q is required", fld.Name())
		}
		if !ok || value == "" {
			continue
		}
		if err := fld.ValidateValue(value); err != nil {
			return err
		}
	}
	return nil
}
