package usecases

import (
	"context"
	"encoding/json"

	"github.com/beacon-cms/beacon/internal/application/setting/dto"
	"github.com/beacon-cms/beacon/internal/domain/setting"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

// ManageSettingsUseCase covers the keyed site-setting store. Values are
// opaque JSON documents; the admin panel owns their shape.
type ManageSettingsUseCase struct {
	settingRepo setting.SiteSettingRepository
	logger      logger.Interface
}

func NewManageSettingsUseCase(settingRepo setting.SiteSettingRepository, logger logger.Interface) *ManageSettingsUseCase {
	return &ManageSettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *ManageSettingsUseCase) Get(ctx context.Context, key string) (*dto.SiteSettingDTO, error) {
	s, err := uc.settingRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Errorw("failed to get setting", "error", err, "key", key)
		return nil, errors.NewInternalError("failed to get setting")
	}
	if s == nil {
		return nil, errors.NewNotFoundError("setting not found")
	}
	return dto.ToSiteSettingDTO(s), nil
}

func (uc *ManageSettingsUseCase) Upsert(ctx context.Context, key string, value json.RawMessage) (*dto.SiteSettingDTO, error) {
	if !json.Valid(value) {
		return nil, errors.NewValidationError("setting value must be valid JSON")
	}

	s, err := setting.NewSiteSetting(key, value)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.settingRepo.Upsert(ctx, s); err != nil {
		uc.logger.Errorw("failed to upsert setting", "error", err, "key", key)
		return nil, errors.NewInternalError("failed to save setting")
	}

	uc.logger.Infow("setting saved", "key", key)
	return dto.ToSiteSettingDTO(s), nil
}

func (uc *ManageSettingsUseCase) List(ctx context.Context) ([]*dto.SiteSettingDTO, error) {
	settings, err := uc.settingRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list settings", "error", err)
		return nil, errors.NewInternalError("failed to list settings")
	}

	dtos := make([]*dto.SiteSettingDTO, 0, len(settings))
	for _, s := range settings {
		dtos = append(dtos, dto.ToSiteSettingDTO(s))
	}
	return dtos, nil
}

func (uc *ManageSettingsUseCase) Delete(ctx context.Context, key string) error {
	s, err := uc.settingRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Errorw("failed to get setting", "error", err, "key", key)
		return errors.NewInternalError("failed to get setting")
	}
	if s == nil {
		return errors.NewNotFoundError("setting not found")
	}

	if err := uc.settingRepo.Delete(ctx, key); err != nil {
		uc.logger.Errorw("failed to delete setting", "error", err, "key", key)
		return errors.NewInternalError("failed to delete setting")
	}

	uc.logger.Infow("setting deleted", "key", key)
	return nil
}
