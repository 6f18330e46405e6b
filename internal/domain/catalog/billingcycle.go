package catalog

import (
	"fmt"
	"time"

	"github.com/beacon-cms/beacon/internal/shared/id"
)

// BillingCycle is a quotable period such as "Monthly" or "Yearly".
// The multiplier is the number of base months the cycle represents.
type BillingCycle struct {
	id         uint
	sid        string
	label      string
	multiplier int
	isDefault  bool
	sortOrder  int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBillingCycle(label string, multiplier int) (*BillingCycle, error) {
	if label == "" {
		return nil, fmt.Errorf("billing cycle label is required")
	}
	if len(label) > 50 {
		return nil, fmt.Errorf("billing cycle label too long (max 50 characters)")
	}
	if multiplier < 1 {
		return nil, fmt.Errorf("billing cycle multiplier must be at least 1")
	}

	sid, err := id.Generate(id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate billing cycle sid: %w", err)
	}

	now := time.Now()
	return &BillingCycle{
		sid:        sid,
		label:      label,
		multiplier: multiplier,
		isDefault:  false,
		sortOrder:  0,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBillingCycle(cycleID uint, sid, label string, multiplier int,
	isDefault bool, sortOrder int, createdAt, updatedAt time.Time) (*BillingCycle, error) {

	if cycleID == 0 {
		return nil, fmt.Errorf("billing cycle ID cannot be zero")
	}
	if multiplier < 1 {
		return nil, fmt.Errorf("billing cycle multiplier must be at least 1")
	}

	return &BillingCycle{
		id:         cycleID,
		sid:        sid,
		label:      label,
		multiplier: multiplier,
		isDefault:  isDefault,
		sortOrder:  sortOrder,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (b *BillingCycle) ID() uint {
	return b.id
}

func (b *BillingCycle) SetID(cycleID uint) error {
	if b.id != 0 {
		return fmt.Errorf("billing cycle ID is already set")
	}
	if cycleID == 0 {
		return fmt.Errorf("billing cycle ID cannot be zero")
	}
	b.id = cycleID
	return nil
}

func (b *BillingCycle) SID() string {
	return b.sid
}

func (b *BillingCycle) PrefixedSID() string {
	return id.FormatWithPrefix(id.PrefixBillingCycle, b.sid)
}

func (b *BillingCycle) Label() string {
	return b.label
}

func (b *BillingCycle) Multiplier() int {
	return b.multiplier
}

func (b *BillingCycle) IsDefault() bool {
	return b.isDefault
}

func (b *BillingCycle) SortOrder() int {
	return b.sortOrder
}

func (b *BillingCycle) CreatedAt() time.Time {
	return b.createdAt
}

func (b *BillingCycle) UpdatedAt() time.Time {
	return b.updatedAt
}

// IsMonthly reports whether the cycle represents a single base month.
func (b *BillingCycle) IsMonthly() bool {
	return b.multiplier == 1
}

func (b *BillingCycle) Update(label string, multiplier, sortOrder int) error {
	if label == "" {
		return fmt.Errorf("billing cycle label is required")
	}
	if multiplier < 1 {
		return fmt.Errorf("billing cycle multiplier must be at least 1")
	}
	b.label = label
	b.multiplier = multiplier
	b.sortOrder = sortOrder
	b.updatedAt = time.Now()
	return nil
}
