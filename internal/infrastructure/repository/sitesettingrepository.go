package repository

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/beacon-cms/beacon/internal/domain/setting"
	"github.com/beacon-cms/beacon/internal/infrastructure/persistence/models"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type SiteSettingRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSiteSettingRepository(db *gorm.DB, logger logger.Interface) setting.SiteSettingRepository {
	return &SiteSettingRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SiteSettingRepositoryImpl) Get(ctx context.Context, key string) (*setting.SiteSetting, error) {
	var model models.SiteSettingModel
	if err := r.db.WithContext(ctx).Where("`key` = ?", key).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get site setting", "error", err, "key", key)
		return nil, fmt.Errorf("failed to get site setting: %w", err)
	}

	return r.toEntity(&model)
}

// Upsert creates or replaces the value under the key.
func (r *SiteSettingRepositoryImpl) Upsert(ctx context.Context, s *setting.SiteSetting) error {
	model := r.toModel(s)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(model).Error

	if err != nil {
		r.logger.Errorw("failed to upsert site setting", "error", err, "key", s.Key())
		return fmt.Errorf("failed to upsert site setting: %w", err)
	}

	if s.ID() == 0 && model.ID != 0 {
		if err := s.SetID(model.ID); err != nil {
			return err
		}
	}

	r.logger.Infow("site setting upserted", "key", s.Key())
	return nil
}

func (r *SiteSettingRepositoryImpl) List(ctx context.Context) ([]*setting.SiteSetting, error) {
	var settingModels []*models.SiteSettingModel
	if err := r.db.WithContext(ctx).Order("`key` ASC").Find(&settingModels).Error; err != nil {
		r.logger.Errorw("failed to list site settings", "error", err)
		return nil, fmt.Errorf("failed to list site settings: %w", err)
	}

	settings := make([]*setting.SiteSetting, 0, len(settingModels))
	for _, model := range settingModels {
		s, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, nil
}

func (r *SiteSettingRepositoryImpl) Delete(ctx context.Context, key string) error {
	result := r.db.WithContext(ctx).Where("`key` = ?", key).Delete(&models.SiteSettingModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete site setting", "error", result.Error, "key", key)
		return fmt.Errorf("failed to delete site setting: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("site setting not found")
	}

	r.logger.Infow("site setting deleted", "key", key)
	return nil
}

func (r *SiteSettingRepositoryImpl) toModel(s *setting.SiteSetting) *models.SiteSettingModel {
	return &models.SiteSettingModel{
		ID:        s.ID(),
		Key:       s.Key(),
		Value:     datatypes.JSON(s.Value()),
		UpdatedAt: s.UpdatedAt(),
	}
}

func (r *SiteSettingRepositoryImpl) toEntity(model *models.SiteSettingModel) (*setting.SiteSetting, error) {
	return setting.ReconstructSiteSetting(
		model.ID,
		model.Key,
		[]byte(model.Value),
		model.UpdatedAt,
	)
}
