package usecases

import (
	"context"

	"github.com/beacon-cms/beacon/internal/application/form/dto"
	"github.com/beacon-cms/beacon/internal/domain/form"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

// GetPublicFormUseCase serves the renderable form definition for the public
// site. Inactive forms are invisible here.
type GetPublicFormUseCase struct {
	formRepo form.FormRepository
	logger   logger.Interface
}

func NewGetPublicFormUseCase(formRepo form.FormRepository, logger logger.Interface) *GetPublicFormUseCase {
	return &GetPublicFormUseCase{
		formRepo: formRepo,
		logger:   logger,
	}
}

func (uc *GetPublicFormUseCase) Execute(ctx context.Context, slug string) (*dto.PublicFormDTO, error) {
	f, err := uc.formRepo.GetBySlug(ctx, slug)
	if err != nil {
		uc.logger.Errorw("failed to get form", "error", err, "slug", slug)
		return nil, errors.NewInternalError("failed to get form")
	}
	if f == nil || !f.IsActive() {
		return nil, errors.NewNotFoundError("form not found")
	}
	return dto.ToPublicFormDTO(f), nil
}
