package usecases

import (
	"context"
	"strings"

	"github.com/beacon-cms/beacon/internal/application/form/dto"
	"github.com/beacon-cms/beacon/internal/domain/form"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type ManageNewsletterUseCase struct {
	newsletterRepo form.NewsletterRepository
	logger         logger.Interface
}

func NewManageNewsletterUseCase(newsletterRepo form.NewsletterRepository, logger logger.Interface) *ManageNewsletterUseCase {
	return &ManageNewsletterUseCase{
		newsletterRepo: newsletterRepo,
		logger:         logger,
	}
}

func (uc *ManageNewsletterUseCase) List(ctx context.Context, activeOnly bool, page, pageSize int) ([]*dto.NewsletterSubscriberDTO, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	subscribers, total, err := uc.newsletterRepo.List(ctx, activeOnly, (page-1)*pageSize, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list newsletter subscribers", "error", err)
		return nil, 0, errors.NewInternalError("failed to list newsletter subscribers")
	}

	dtos := make([]*dto.NewsletterSubscriberDTO, 0, len(subscribers))
	for _, subscriber := range subscribers {
		dtos = append(dtos, dto.ToNewsletterSubscriberDTO(subscriber))
	}
	return dtos, total, nil
}

func (uc *ManageNewsletterUseCase) Unsubscribe(ctx context.Context, email string) error {
	subscriber, err := uc.newsletterRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		uc.logger.Errorw("failed to get newsletter subscriber", "error", err)
		return errors.NewInternalError("failed to get newsletter subscriber")
	}
	if subscriber == nil {
		return errors.NewNotFoundError("subscriber not found")
	}

	subscriber.Unsubscribe()
	if err := uc.newsletterRepo.Update(ctx, subscriber); err != nil {
		uc.logger.Errorw("failed to unsubscribe", "error", err, "subscriber_id", subscriber.ID())
		return errors.NewInternalError("failed to unsubscribe")
	}

	uc.logger.Infow("newsletter unsubscribed", "subscriber_id", subscriber.ID())
	return nil
}
