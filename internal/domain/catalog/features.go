package catalog

import (
	"fmt"
	"time"

	"github.com/beacon-cms/beacon/internal/shared/id"
)

// UnlimitedDisplayValue is rendered in place of a numeric limit when a plan
// has no cap on a feature type.
const UnlimitedDisplayValue = "∞"

// FeatureType is a configurable named metric shared across all plans,
// e.g. "Assistants" measured in "active assistants".
type FeatureType struct {
	id        uint
	sid       string
	name      string
	unit      string
	icon      string
	sortOrder int
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewFeatureType(name, unit, icon string) (*FeatureType, error) {
	if name == "" {
		return nil, fmt.Errorf("feature type name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("feature type name too long (max 100 characters)")
	}

	sid, err := id.Generate(id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate feature type sid: %w", err)
	}

	now := time.Now()
	return &FeatureType{
		sid:       sid,
		name:      name,
		unit:      unit,
		icon:      icon,
		sortOrder: 0,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructFeatureType(typeID uint, sid, name, unit, icon string, sortOrder int,
	isActive bool, createdAt, updatedAt time.Time) (*FeatureType, error) {

	if typeID == 0 {
		return nil, fmt.Errorf("feature type ID cannot be zero")
	}

	return &FeatureType{
		id:        typeID,
		sid:       sid,
		name:      name,
		unit:      unit,
		icon:      icon,
		sortOrder: sortOrder,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (f *FeatureType) ID() uint             { return f.id }
func (f *FeatureType) SID() string          { return f.sid }
func (f *FeatureType) Name() string         { return f.name }
func (f *FeatureType) Unit() string         { return f.unit }
func (f *FeatureType) Icon() string         { return f.icon }
func (f *FeatureType) SortOrder() int       { return f.sortOrder }
func (f *FeatureType) IsActive() bool       { return f.isActive }
func (f *FeatureType) CreatedAt() time.Time { return f.createdAt }
func (f *FeatureType) UpdatedAt() time.Time { return f.updatedAt }

func (f *FeatureType) PrefixedSID() string {
	return id.FormatWithPrefix(id.PrefixFeatureType, f.sid)
}

func (f *FeatureType) SetID(typeID uint) error {
	if f.id != 0 {
		return fmt.Errorf("feature type ID is already set")
	}
	if typeID == 0 {
		return fmt.Errorf("feature type ID cannot be zero")
	}
	f.id = typeID
	return nil
}

func (f *FeatureType) Update(name, unit, icon string, sortOrder int, isActive bool) error {
	if name == "" {
		return fmt.Errorf("feature type name is required")
	}
	f.name = name
	f.unit = unit
	f.icon = icon
	f.sortOrder = sortOrder
	f.isActive = isActive
	f.updatedAt = time.Now()
	return nil
}

// FeatureLimit is the per-plan value of a FeatureType. The value is kept as a
// string so admins control precision and formatting; isUnlimited overrides it.
type FeatureLimit struct {
	id            uint
	planID        uint
	featureTypeID uint
	value         string
	isUnlimited   bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewFeatureLimit(planID, featureTypeID uint, value string, isUnlimited bool) (*FeatureLimit, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if featureTypeID == 0 {
		return nil, fmt.Errorf("feature type ID is required")
	}

	now := time.Now()
	return &FeatureLimit{
		planID:        planID,
		featureTypeID: featureTypeID,
		value:         value,
		isUnlimited:   isUnlimited,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructFeatureLimit(limitID, planID, featureTypeID uint, value string,
	isUnlimited bool, createdAt, updatedAt time.Time) (*FeatureLimit, error) {

	if limitID == 0 {
		return nil, fmt.Errorf("feature limit ID cannot be zero")
	}

	return &FeatureLimit{
		id:            limitID,
		planID:        planID,
		featureTypeID: featureTypeID,
		value:         value,
		isUnlimited:   isUnlimited,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (l *FeatureLimit) ID() uint             { return l.id }
func (l *FeatureLimit) PlanID() uint         { return l.planID }
func (l *FeatureLimit) FeatureTypeID() uint  { return l.featureTypeID }
func (l *FeatureLimit) Value() string        { return l.value }
func (l *FeatureLimit) IsUnlimited() bool    { return l.isUnlimited }
func (l *FeatureLimit) CreatedAt() time.Time { return l.createdAt }
func (l *FeatureLimit) UpdatedAt() time.Time { return l.updatedAt }

func (l *FeatureLimit) SetID(limitID uint) error {
	if l.id != 0 {
		return fmt.Errorf("feature limit ID is already set")
	}
	if limitID == 0 {
		return fmt.Errorf("feature limit ID cannot be zero")
	}
	l.id = limitID
	return nil
}

func (l *FeatureLimit) Update(value string, isUnlimited bool) {
	l.value = value
	l.isUnlimited = isUnlimited
	l.updatedAt = time.Now()
}

// DisplayValue resolves the render-ready limit: "∞" when unlimited,
// otherwise the raw value, falling back to "0" when no value is set.
func (l *FeatureLimit) DisplayValue() string {
	if l.isUnlimited {
		return UnlimitedDisplayValue
	}
	if l.value == "" {
		return "0"
	}
	return l.value
}

// BasicFeature is a boolean-style benefit shared across plans,
// e.g. "AI Chatbot". Inclusion is presence-only via PlanBasicFeature.
type BasicFeature struct {
	id        uint
	sid       string
	name      string
	sortOrder int
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewBasicFeature(name string) (*BasicFeature, error) {
	if name == "" {
		return nil, fmt.Errorf("basic feature name is required")
	}
	if len(name) > 150 {
		return nil, fmt.Errorf("basic feature name too long (max 150 characters)")
	}

	sid, err := id.Generate(id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate basic feature sid: %w", err)
	}

	now := time.Now()
	return &BasicFeature{
		sid:       sid,
		name:      name,
		sortOrder: 0,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBasicFeature(featureID uint, sid, name string, sortOrder int,
	isActive bool, createdAt, updatedAt time.Time) (*BasicFeature, error) {

	if featureID == 0 {
		return nil, fmt.Errorf("basic feature ID cannot be zero")
	}

	return &BasicFeature{
		id:        featureID,
		sid:       sid,
		name:      name,
		sortOrder: sortOrder,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (b *BasicFeature) ID() uint             { return b.id }
func (b *BasicFeature) SID() string          { return b.sid }
func (b *BasicFeature) Name() string         { return b.name }
func (b *BasicFeature) SortOrder() int       { return b.sortOrder }
func (b *BasicFeature) IsActive() bool       { return b.isActive }
func (b *BasicFeature) CreatedAt() time.Time { return b.createdAt }
func (b *BasicFeature) UpdatedAt() time.Time { return b.updatedAt }

func (b *BasicFeature) PrefixedSID() string {
	return id.FormatWithPrefix(id.PrefixBasicFeature, b.sid)
}

func (b *BasicFeature) SetID(featureID uint) error {
	if b.id != 0 {
		return fmt.Errorf("basic feature ID is already set")
	}
	if featureID == 0 {
		return fmt.Errorf("basic feature ID cannot be zero")
	}
	b.id = featureID
	return nil
}

func (b *BasicFeature) Update(name string, sortOrder int, isActive bool) error {
	if name == "" {
		return fmt.Errorf("basic feature name is required")
	}
	b.name = name
	b.sortOrder = sortOrder
	b.isActive = isActive
	b.updatedAt = time.Now()
	return nil
}

// PlanBasicFeature links a plan to an included basic feature.
// Absence of a row means the feature is not included.
type PlanBasicFeature struct {
	PlanID         uint
	BasicFeatureID uint
}
