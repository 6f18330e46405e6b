package form

import (
	"testing"
	"time"
)

func mustField(t *testing.T, formID uint, fieldType FieldType, name string, required bool, options []string) *Field {
	t.Helper()
	f, err := NewField(formID, fieldType, name, name)
	if err != nil {
		t.Fatalf("NewField(%q) error = %v", name, err)
	}
	if err := f.Update(fieldType, name, name, "", "", required, 0, options); err != nil {
		t.Fatalf("field Update(%q) error = %v", name, err)
	}
	return f
}

func contactForm(t *testing.T) *Form {
	t.Helper()
	f, err := NewForm("contact", "Contact")
	if err != nil {
		t.Fatalf("NewForm() error = %v", err)
	}
	if err := f.SetID(1); err != nil {
		t.Fatalf("SetID() error = %v", err)
	}
	f.ReplaceFields([]*Field{
		mustField(t, 1, FieldTypeText, "name", true, nil),
		mustField(t, 1, FieldTypeEmail, "email", true, nil),
		mustField(t, 1, FieldTypeTextarea, "message", false, nil),
		mustField(t, 1, FieldTypeSelect, "topic", false, []string{"sales", "support"}),
	})
	return f
}

func TestNewForm_Defaults(t *testing.T) {
	f, err := NewForm("contact", "Contact")
	if err != nil {
		t.Fatalf("NewForm() error = %v, want nil", err)
	}
	if f.SubmitLabel() != "Submit" {
		t.Errorf("SubmitLabel() = %q, want %q", f.SubmitLabel(), "Submit")
	}
	if f.SuccessMessage() == "" {
		t.Error("SuccessMessage() is empty, want default message")
	}
	if !f.IsActive() {
		t.Error("IsActive() = false, want true for new form")
	}
}

func TestNewForm_InvalidSlug(t *testing.T) {
	tests := []struct {
		name string
		slug string
	}{
		{"empty", ""},
		{"uppercase", "Contact"},
		{"spaces", "contact us"},
		{"leading dash", "-contact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewForm(tt.slug, "Contact"); err == nil {
				t.Errorf("NewForm(%q) error = nil, want error", tt.slug)
			}
		})
	}
}

func TestForm_ValidateSubmission(t *testing.T) {
	f := contactForm(t)

	tests := []struct {
		name    string
		values  map[string]string
		wantErr bool
	}{
		{
			"valid minimal",
			map[string]string{"name": "Ada", "email": "ada@example.com"},
			false,
		},
		{
			"valid with optional fields",
			map[string]string{"name": "Ada", "email": "ada@example.com", "message": "Hi", "topic": "sales"},
			false,
		},
		{
			"missing required",
			map[string]string{"email": "ada@example.com"},
			true,
		},
		{
			"empty required counts as missing",
			map[string]string{"name": "", "email": "ada@example.com"},
			true,
		},
		{
			"bad email",
			map[string]string{"name": "Ada", "email": "not-an-email"},
			true,
		},
		{
			"select value outside options",
			map[string]string{"name": "Ada", "email": "ada@example.com", "topic": "billing"},
			true,
		},
		{
			"unknown field rejected",
			map[string]string{"name": "Ada", "email": "ada@example.com", "evil": "x"},
			true,
		},
		{
			"empty optional skipped",
			map[string]string{"name": "Ada", "email": "ada@example.com", "message": ""},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.ValidateSubmission(tt.values)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSubmission() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestForm_FieldByName(t *testing.T) {
	f := contactForm(t)

	if fld := f.FieldByName("email"); fld == nil || fld.Type() != FieldTypeEmail {
		t.Errorf("FieldByName(\"email\") = %v, want email field", fld)
	}
	if fld := f.FieldByName("missing"); fld != nil {
		t.Errorf("FieldByName(\"missing\") = %v, want nil", fld)
	}
}

func TestReconstructForm_Invalid(t *testing.T) {
	now := time.Now()

	if _, err := ReconstructForm(0, "sid", "contact", "Contact", "", "", "Submit", "ok",
		false, nil, false, false, "", true, nil, now, now); err == nil {
		t.Error("ReconstructForm() with zero ID error = nil, want error")
	}
	if _, err := ReconstructForm(1, "sid", "", "Contact", "", "", "Submit", "ok",
		false, nil, false, false, "", true, nil, now, now); err == nil {
		t.Error("ReconstructForm() with empty slug error = nil, want error")
	}
}
