package dto

import (
	"encoding/json"
	"time"

	"github.com/beacon-cms/beacon/internal/domain/setting"
)

type SiteSettingDTO struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ToSiteSettingDTO(s *setting.SiteSetting) *SiteSettingDTO {
	return &SiteSettingDTO{
		Key:       s.Key(),
		Value:     json.RawMessage(s.Value()),
		UpdatedAt: s.UpdatedAt(),
	}
}
