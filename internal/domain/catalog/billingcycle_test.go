package catalog

import (
	"strings"
	"testing"
)

func TestNewBillingCycle_Valid(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		multiplier int
		monthly    bool
	}{
		{"monthly", "Monthly", 1, true},
		{"quarterly", "Quarterly", 3, false},
		{"yearly", "Yearly", 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cycle, err := NewBillingCycle(tt.label, tt.multiplier)
			if err != nil {
				t.Fatalf("NewBillingCycle(%q, %d) error = %v, want nil", tt.label, tt.multiplier, err)
			}
			if cycle.Label() != tt.label {
				t.Errorf("Label() = %q, want %q", cycle.Label(), tt.label)
			}
			if cycle.Multiplier() != tt.multiplier {
				t.Errorf("Multiplier() = %d, want %d", cycle.Multiplier(), tt.multiplier)
			}
			if cycle.IsMonthly() != tt.monthly {
				t.Errorf("IsMonthly() = %v, want %v", cycle.IsMonthly(), tt.monthly)
			}
			if cycle.IsDefault() {
				t.Error("IsDefault() = true, want false for new cycle")
			}
		})
	}
}

func TestNewBillingCycle_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		multiplier int
	}{
		{"empty label", "", 1},
		{"label too long", strings.Repeat("x", 51), 1},
		{"zero multiplier", "Monthly", 0},
		{"negative multiplier", "Monthly", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBillingCycle(tt.label, tt.multiplier)
			if err == nil {
				t.Errorf("NewBillingCycle(%q, %d) error = nil, want error", tt.label, tt.multiplier)
			}
		})
	}
}

func TestBillingCycle_Update(t *testing.T) {
	cycle, err := NewBillingCycle("Monthly", 1)
	if err != nil {
		t.Fatalf("NewBillingCycle() error = %v", err)
	}

	if err := cycle.Update("Yearly", 12, 2); err != nil {
		t.Fatalf("Update() error = %v, want nil", err)
	}
	if cycle.Label() != "Yearly" || cycle.Multiplier() != 12 || cycle.SortOrder() != 2 {
		t.Errorf("Update() result = (%q, %d, %d), want (Yearly, 12, 2)",
			cycle.Label(), cycle.Multiplier(), cycle.SortOrder())
	}

	if err := cycle.Update("", 12, 0); err == nil {
		t.Error("Update() with empty label error = nil, want error")
	}
	if err := cycle.Update("Yearly", 0, 0); err == nil {
		t.Error("Update() with zero multiplier error = nil, want error")
	}
}

func TestBillingCycle_PrefixedSID(t *testing.T) {
	cycle, err := NewBillingCycle("Monthly", 1)
	if err != nil {
		t.Fatalf("NewBillingCycle() error = %v", err)
	}
	if !strings.HasPrefix(cycle.PrefixedSID(), "cyc_") {
		t.Errorf("PrefixedSID() = %q, want cyc_ prefix", cycle.PrefixedSID())
	}
}
