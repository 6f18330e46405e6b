package catalog

import (
	"strings"
	"testing"
	"time"
)

func TestNewPlan_Valid(t *testing.T) {
	plan, err := NewPlan("Pro", "For growing teams")
	if err != nil {
		t.Fatalf("NewPlan() error = %v, want nil", err)
	}

	if plan.Name() != "Pro" {
		t.Errorf("Name() = %q, want %q", plan.Name(), "Pro")
	}
	if plan.Description() != "For growing teams" {
		t.Errorf("Description() = %q, want %q", plan.Description(), "For growing teams")
	}
	if !plan.IsActive() {
		t.Error("IsActive() = false, want true for new plan")
	}
	if plan.IsPopular() {
		t.Error("IsPopular() = true, want false for new plan")
	}
	if plan.SID() == "" {
		t.Error("SID() is empty, want generated sid")
	}
	if plan.Version() != 1 {
		t.Errorf("Version() = %d, want 1", plan.Version())
	}
}

func TestNewPlan_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		planName    string
		description string
	}{
		{"empty name", "", "desc"},
		{"name too long", strings.Repeat("x", 101), "desc"},
		{"description too long", "Pro", strings.Repeat("x", 501)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlan(tt.planName, tt.description)
			if err == nil {
				t.Error("NewPlan() error = nil, want error")
			}
		})
	}
}

func TestPlan_PrefixedSID(t *testing.T) {
	plan, err := NewPlan("Starter", "")
	if err != nil {
		t.Fatalf("NewPlan() error = %v", err)
	}

	prefixed := plan.PrefixedSID()
	if !strings.HasPrefix(prefixed, "pln_") {
		t.Errorf("PrefixedSID() = %q, want pln_ prefix", prefixed)
	}
	if prefixed != "pln_"+plan.SID() {
		t.Errorf("PrefixedSID() = %q, want %q", prefixed, "pln_"+plan.SID())
	}
}

func TestPlan_SetID(t *testing.T) {
	plan, err := NewPlan("Pro", "")
	if err != nil {
		t.Fatalf("NewPlan() error = %v", err)
	}

	if err := plan.SetID(0); err == nil {
		t.Error("SetID(0) error = nil, want error")
	}
	if err := plan.SetID(42); err != nil {
		t.Errorf("SetID(42) error = %v, want nil", err)
	}
	if plan.ID() != 42 {
		t.Errorf("ID() = %d, want 42", plan.ID())
	}
	if err := plan.SetID(43); err == nil {
		t.Error("SetID() on assigned plan error = nil, want error")
	}
}

func TestPlan_UpdateDetails(t *testing.T) {
	plan, err := NewPlan("Pro", "old")
	if err != nil {
		t.Fatalf("NewPlan() error = %v", err)
	}
	version := plan.Version()

	if err := plan.UpdateDetails("Pro Plus", "new"); err != nil {
		t.Fatalf("UpdateDetails() error = %v, want nil", err)
	}
	if plan.Name() != "Pro Plus" {
		t.Errorf("Name() = %q, want %q", plan.Name(), "Pro Plus")
	}
	if plan.Version() != version+1 {
		t.Errorf("Version() = %d, want %d", plan.Version(), version+1)
	}

	if err := plan.UpdateDetails("", "new"); err == nil {
		t.Error("UpdateDetails() with empty name error = nil, want error")
	}
}

func TestPlan_ActivateDeactivate(t *testing.T) {
	plan, err := NewPlan("Pro", "")
	if err != nil {
		t.Fatalf("NewPlan() error = %v", err)
	}
	version := plan.Version()

	// already active, no version bump
	plan.Activate()
	if plan.Version() != version {
		t.Errorf("Activate() on active plan bumped version to %d, want %d", plan.Version(), version)
	}

	plan.Deactivate()
	if plan.IsActive() {
		t.Error("IsActive() = true after Deactivate()")
	}
	if plan.Version() != version+1 {
		t.Errorf("Version() = %d, want %d", plan.Version(), version+1)
	}

	plan.Activate()
	if !plan.IsActive() {
		t.Error("IsActive() = false after Activate()")
	}
}

func TestReconstructPlan_Invalid(t *testing.T) {
	now := time.Now()

	if _, err := ReconstructPlan(0, "abc", "Pro", "", 0, true, false, 1, now, now); err == nil {
		t.Error("ReconstructPlan() with zero ID error = nil, want error")
	}
	if _, err := ReconstructPlan(1, "", "Pro", "", 0, true, false, 1, now, now); err == nil {
		t.Error("ReconstructPlan() with empty sid error = nil, want error")
	}
}
