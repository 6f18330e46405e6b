package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/beacon-cms/beacon/internal/domain/form"
	"github.com/beacon-cms/beacon/internal/infrastructure/persistence/models"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type NewsletterRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewNewsletterRepository(db *gorm.DB, logger logger.Interface) form.NewsletterRepository {
	return &NewsletterRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *NewsletterRepositoryImpl) GetByEmail(ctx context.Context, email string) (*form.NewsletterSubscriber, error) {
	var model models.NewsletterSubscriberModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get newsletter subscriber", "error", err, "email", email)
		return nil, fmt.Errorf("failed to get newsletter subscriber: %w", err)
	}

	return r.toEntity(&model)
}

func (r *NewsletterRepositoryImpl) Create(ctx context.Context, subscriber *form.NewsletterSubscriber) error {
	model := r.toModel(subscriber)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create newsletter subscriber", "error", err, "email", subscriber.Email())
		return fmt.Errorf("failed to create newsletter subscriber: %w", err)
	}

	if err := subscriber.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("newsletter subscriber created", "subscriber_id", model.ID, "email", subscriber.Email())
	return nil
}

func (r *NewsletterRepositoryImpl) Update(ctx context.Context, subscriber *form.NewsletterSubscriber) error {
	model := r.toModel(subscriber)

	result := r.db.WithContext(ctx).Model(&models.NewsletterSubscriberModel{}).
		Where("id = ?", subscriber.ID()).
		Updates(map[string]interface{}{
			"source":          model.Source,
			"is_active":       model.IsActive,
			"subscribed_at":   model.SubscribedAt,
			"unsubscribed_at": model.UnsubscribedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update newsletter subscriber", "error", result.Error,
			"subscriber_id", subscriber.ID())
		return fmt.Errorf("failed to update newsletter subscriber: %w", result.Error)
	}

	return nil
}

func (r *NewsletterRepositoryImpl) List(ctx context.Context, activeOnly bool, offset, limit int) ([]*form.NewsletterSubscriber, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.NewsletterSubscriberModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count newsletter subscribers", "error", err)
		return nil, 0, fmt.Errorf("failed to count newsletter subscribers: %w", err)
	}

	var subscriberModels []*models.NewsletterSubscriberModel
	err := query.
		Order("subscribed_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&subscriberModels).Error
	if err != nil {
		r.logger.Errorw("failed to list newsletter subscribers", "error", err)
		return nil, 0, fmt.Errorf("failed to list newsletter subscribers: %w", err)
	}

	subscribers := make([]*form.NewsletterSubscriber, 0, len(subscriberModels))
	for _, model := range subscriberModels {
		subscriber, err := r.toEntity(model)
		if err != nil {
			return nil, 0, err
		}
		subscribers = append(subscribers, subscriber)
	}
	return subscribers, total, nil
}

func (r *NewsletterRepositoryImpl) toModel(subscriber *form.NewsletterSubscriber) *models.NewsletterSubscriberModel {
	return &models.NewsletterSubscriberModel{
		ID:             subscriber.ID(),
		Email:          subscriber.Email(),
		Source:         subscriber.Source(),
		IsActive:       subscriber.IsActive(),
		SubscribedAt:   subscriber.SubscribedAt(),
		UnsubscribedAt: subscriber.UnsubscribedAt(),
	}
}

func (r *NewsletterRepositoryImpl) toEntity(model *models.NewsletterSubscriberModel) (*form.NewsletterSubscriber, error) {
	return form.ReconstructNewsletterSubscriber(
		model.ID,
		model.Email,
		model.Source,
		model.IsActive,
		model.SubscribedAt,
		model.UnsubscribedAt,
	)
}
