package catalog

import (
	"fmt"
	"time"

	"github.com/beacon-cms/beacon/internal/shared/id"
)

type Plan struct {
	id          uint
	sid         string
	name        string
	description string
	position    int
	isActive    bool
	isPopular   bool
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPlan(name, description string) (*Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("plan name too long (max 100 characters)")
	}
	if len(description) > 500 {
		return nil, fmt.Errorf("plan description too long (max 500 characters)")
	}

	sid, err := id.Generate(id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan sid: %w", err)
	}

	now := time.Now()
	return &Plan{
		sid:         sid,
		name:        name,
		description: description,
		position:    0,
		isActive:    true,
		isPopular:   false,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPlan(planID uint, sid, name, description string, position int,
	isActive, isPopular bool, version int, createdAt, updatedAt time.Time) (*Plan, error) {

	if planID == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("plan sid cannot be empty")
	}

	return &Plan{
		id:          planID,
		sid:         sid,
		name:        name,
		description: description,
		position:    position,
		isActive:    isActive,
		isPopular:   isPopular,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Plan) ID() uint {
	return p.id
}

func (p *Plan) SetID(planID uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if planID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = planID
	return nil
}

func (p *Plan) SID() string {
	return p.sid
}

// PrefixedSID returns the public identifier, e.g. "pln_xK9mP2vL3nQa".
func (p *Plan) PrefixedSID() string {
	return id.FormatWithPrefix(id.PrefixPlan, p.sid)
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) Description() string {
	return p.description
}

func (p *Plan) Position() int {
	return p.position
}

func (p *Plan) IsActive() bool {
	return p.isActive
}

func (p *Plan) IsPopular() bool {
	return p.isPopular
}

func (p *Plan) Version() int {
	return p.version
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Plan) UpdateDetails(name, description string) error {
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("plan name too long (max 100 characters)")
	}
	if len(description) > 500 {
		return fmt.Errorf("plan description too long (max 500 characters)")
	}
	p.name = name
	p.description = description
	p.touch()
	return nil
}

func (p *Plan) SetPosition(position int) {
	p.position = position
	p.touch()
}

func (p *Plan) SetPopular(popular bool) {
	p.isPopular = popular
	p.touch()
}

func (p *Plan) Activate() {
	if p.isActive {
		return
	}
	p.isActive = true
	p.touch()
}

func (p *Plan) Deactivate() {
	if !p.isActive {
		return
	}
	p.isActive = false
	p.touch()
}

func (p *Plan) touch() {
	p.updatedAt = time.Now()
	p.version++
}
