package form

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"time"
)

// FieldType fixes the input widget and the server-side validation rule
// applied to submitted values.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone"
	FieldTypeURL      FieldType = "url"
	FieldTypeNumber   FieldType = "number"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
)

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypePhone, FieldTypeURL,
		FieldTypeNumber, FieldTypeTextarea, FieldTypeSelect, FieldTypeCheckbox:
		return true
	}
	return false
}

var (
	fieldNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	phoneRegex     = regexp.MustCompile(`^\+?[0-9()\-\s.]{6,32}$`)
)

// Field is one input of a form. Name is the machine key submissions use;
// options apply to select fields only.
type Field struct {
	id          uint
	formID      uint
	fieldType   FieldType
	name        string
	label       string
	placeholder string
	helpText    string
	isRequired  bool
	sortOrder   int
	options     []string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewField(formID uint, fieldType FieldType, name, label string) (*Field, error) {
	if formID == 0 {
		return nil, fmt.Errorf("form ID is required")
	}
	if !fieldType.IsValid() {
		return nil, fmt.Errorf("invalid field type: %s", fieldType)
	}
	if !fieldNameRegex.MatchString(name) {
		return nil, fmt.Errorf("invalid field name: %s", name)
	}
	if label == "" {
		return nil, fmt.Errorf("field label is required")
	}

	now := time.Now()
	return &Field{
		formID:    formID,
		fieldType: fieldType,
		name:      name,
		label:     label,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructField(fieldID, formID uint, fieldType FieldType, name, label,
	placeholder, helpText string, isRequired bool, sortOrder int, options []string,
	createdAt, updatedAt time.Time) (*Field, error) {

	if fieldID == 0 {
		return nil, fmt.Errorf("field ID cannot be zero")
	}
	if !fieldType.IsValid() {
		return nil, fmt.Errorf("invalid field type: %s", fieldType)
	}

	return &Field{
		id:          fieldID,
		formID:      formID,
		fieldType:   fieldType,
		name:        name,
		label:       label,
		placeholder: placeholder,
		helpText:    helpText,
		isRequired:  isRequired,
		sortOrder:   sortOrder,
		options:     options,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (f *Field) ID() uint             { return f.id }
func (f *Field) FormID() uint         { return f.formID }
func (f *Field) Type() FieldType      { return f.fieldType }
func (f *Field) Name() string         { return f.name }
func (f *Field) Label() string        { return f.label }
func (f *Field) Placeholder() string  { return f.placeholder }
func (f *Field) HelpText() string     { return f.helpText }
func (f *Field) IsRequired() bool     { return f.isRequired }
func (f *Field) SortOrder() int       { return f.sortOrder }
func (f *Field) Options() []string    { return f.options }
func (f *Field) CreatedAt() time.Time { return f.createdAt }
func (f *Field) UpdatedAt() time.Time { return f.updatedAt }

func (f *Field) SetID(fieldID uint) error {
	if f.id != 0 {
		return fmt.Errorf("field ID is already set")
	}
	if fieldID == 0 {
		return fmt.Errorf("field ID cannot be zero")
	}
	f.id = fieldID
	return nil
}

func (f *Field) Update(fieldType FieldType, name, label, placeholder, helpText string,
	isRequired bool, sortOrder int, options []string) error {

	if !fieldType.IsValid() {
		return fmt.Errorf("invalid field type: %s", fieldType)
	}
	if !fieldNameRegex.MatchString(name) {
		return fmt.Errorf("invalid field name: %s", name)
	}
	if label == "" {
		return fmt.Errorf("field label is required")
	}
	f.fieldType = fieldType
	f.name = name
	f.label = label
	f.placeholder = placeholder
	f.helpText = helpText
	f.isRequired = isRequired
	f.sortOrder = sortOrder
	f.options = options
	f.updatedAt = time.Now()
	return nil
}

// ValidateValue checks a non-empty submitted value against the field type.
func (f *Field) ValidateValue(value string) error {
	switch f.fieldType {
	case FieldTypeEmail:
		if _, err := mail.ParseAddress(value); err != nil {
			return fmt.Errorf("field %q must be a valid email address", f.name)
		}
	case FieldTypePhone:
		if !phoneRegex.MatchString(value) {
			return fmt.Errorf("field %q must be a valid phone number", f.name)
		}
	case FieldTypeURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("field %q must be a valid http(s) URL", f.name)
		}
	case FieldTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("field %q must be a number", f.name)
		}
	case FieldTypeSelect:
		for _, opt := range f.options {
			if value == opt {
				return nil
			}
		}
		return fmt.Errorf("field %q must be one of its configured options", f.name)
	case FieldTypeCheckbox:
		if value != "true" && value != "false" {
			return fmt.Errorf("field %q must be true or false", f.name)
		}
	case FieldTypeText, FieldTypeTextarea:
		if len(value) > 10000 {
			return fmt.Errorf("field %q is too long", f.name)
		}
	}
	return nil
}
