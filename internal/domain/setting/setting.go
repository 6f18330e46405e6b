package setting

import (
	"fmt"
	"regexp"
	"time"
)

var keyRegex = regexp.MustCompile(`^[a-z][a-z0-9._-]*$`)

// SiteSetting is a keyed JSON document for site-wide values the admin panel
// edits: branding, social links, analytics IDs, footer content.
type SiteSetting struct {
	id        uint
	key       string
	value     []byte
	updatedAt time.Time
}

func NewSiteSetting(key string, value []byte) (*SiteSetting, error) {
	if !keyRegex.MatchString(key) {
		return nil, fmt.Errorf("invalid setting key: %s", key)
	}
	if len(value) == 0 {
		return nil, fmt.Errorf("setting value is required")
	}

	return &SiteSetting{
		key:       key,
		value:     value,
		updatedAt: time.Now(),
	}, nil
}

func ReconstructSiteSetting(settingID uint, key string, value []byte, updatedAt time.Time) (*SiteSetting, error) {
	if settingID == 0 {
		return nil, fmt.Errorf("setting ID cannot be zero")
	}

	return &SiteSetting{
		id:        settingID,
		key:       key,
		value:     value,
		updatedAt: updatedAt,
	}, nil
}

func (s *SiteSetting) ID() uint             { return s.id }
func (s *SiteSetting) Key() string          { return s.key }
func (s *SiteSetting) Value() []byte        { return s.value }
func (s *SiteSetting) UpdatedAt() time.Time { return s.updatedAt }

func (s *SiteSetting) SetID(settingID uint) error {
	if s.id != 0 {
		return fmt.Errorf("setting ID is already set")
	}
	if settingID == 0 {
		return fmt.Errorf("setting ID cannot be zero")
	}
	s.id = settingID
	return nil
}

func (s *SiteSetting) UpdateValue(value []byte) error {
	if len(value) == 0 {
		return fmt.Errorf("setting value is required")
	}
	s.value = value
	s.updatedAt = time.Now()
	return nil
}
