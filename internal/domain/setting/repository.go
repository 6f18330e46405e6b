package setting

import (
	"context"
)

type SiteSettingRepository interface {
	// Get returns nil when the key is absent.
	Get(ctx context.Context, key string) (*SiteSetting, error)
	// Upsert creates or replaces the value under the key.
	Upsert(ctx context.Context, setting *SiteSetting) error
	List(ctx context.Context) ([]*SiteSetting, error)
	Delete(ctx context.Context, key string) error
}
