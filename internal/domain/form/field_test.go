package form

import (
	"strings"
	"testing"
)

func TestNewField_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		formID    uint
		fieldType FieldType
		fieldName string
		label     string
	}{
		{"zero form ID", 0, FieldTypeText, "name", "Name"},
		{"bad type", 1, FieldType("dropdown"), "name", "Name"},
		{"uppercase name", 1, FieldTypeText, "Name", "Name"},
		{"name with dash", 1, FieldTypeText, "full-name", "Name"},
		{"name starting with digit", 1, FieldTypeText, "1name", "Name"},
		{"empty label", 1, FieldTypeText, "name", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewField(tt.formID, tt.fieldType, tt.fieldName, tt.label); err == nil {
				t.Errorf("NewField(%d, %q, %q, %q) error = nil, want error",
					tt.formID, tt.fieldType, tt.fieldName, tt.label)
			}
		})
	}
}

func TestField_ValidateValue(t *testing.T) {
	tests := []struct {
		name      string
		fieldType FieldType
		options   []string
		value     string
		wantErr   bool
	}{
		{"valid email", FieldTypeEmail, nil, "ada@example.com", false},
		{"invalid email", FieldTypeEmail, nil, "not-an-email", true},
		{"valid phone", FieldTypePhone, nil, "+1 (555) 123-4567", false},
		{"invalid phone", FieldTypePhone, nil, "call me", true},
		{"phone too short", FieldTypePhone, nil, "12345", true},
		{"valid url", FieldTypeURL, nil, "https://example.com/page", false},
		{"url without scheme", FieldTypeURL, nil, "example.com", true},
		{"ftp url rejected", FieldTypeURL, nil, "ftp://example.com", true},
		{"valid number", FieldTypeNumber, nil, "42.5", false},
		{"invalid number", FieldTypeNumber, nil, "forty", true},
		{"select in options", FieldTypeSelect, []string{"a", "b"}, "b", false},
		{"select outside options", FieldTypeSelect, []string{"a", "b"}, "c", true},
		{"checkbox true", FieldTypeCheckbox, nil, "true", false},
		{"checkbox other", FieldTypeCheckbox, nil, "yes", true},
		{"text within limit", FieldTypeText, nil, "hello", false},
		{"text over limit", FieldTypeTextarea, nil, strings.Repeat("x", 10001), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fld := mustField(t, 1, tt.fieldType, "field_a", false, tt.options)
			err := fld.ValidateValue(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateValue(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
