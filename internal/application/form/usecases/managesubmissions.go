package usecases

import (
	"context"

	"github.com/beacon-cms/beacon/internal/application/form/dto"
	"github.com/beacon-cms/beacon/internal/domain/form"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type ManageSubmissionsUseCase struct {
	submissionRepo form.SubmissionRepository
	formRepo       form.FormRepository
	logger         logger.Interface
}

func NewManageSubmissionsUseCase(
	submissionRepo form.SubmissionRepository,
	formRepo form.FormRepository,
	logger logger.Interface,
) *ManageSubmissionsUseCase {
	return &ManageSubmissionsUseCase{
		submissionRepo: submissionRepo,
		formRepo:       formRepo,
		logger:         logger,
	}
}

// List returns a form's submissions newest first.
func (uc *ManageSubmissionsUseCase) List(ctx context.Context, formSID string, page, pageSize int) ([]*dto.SubmissionDTO, int64, error) {
	f, err := uc.formRepo.GetBySID(ctx, formSID)
	if err != nil {
		uc.logger.Errorw("failed to get form", "error", err, "sid", formSID)
		return nil, 0, errors.NewInternalError("failed to get form")
	}
	if f == nil {
		return nil, 0, errors.NewNotFoundError("form not found")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	submissions, total, err := uc.submissionRepo.ListByFormID(ctx, f.ID(), (page-1)*pageSize, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list submissions", "error", err, "form_id", f.ID())
		return nil, 0, errors.NewInternalError("failed to list submissions")
	}

	dtos := make([]*dto.SubmissionDTO, 0, len(submissions))
	for _, submission := range submissions {
		dtos = append(dtos, dto.ToSubmissionDTO(submission))
	}
	return dtos, total, nil
}

func (uc *ManageSubmissionsUseCase) Get(ctx context.Context, sid string) (*dto.SubmissionDTO, error) {
	submission, err := uc.submissionRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get submission", "error", err, "sid", sid)
		return nil, errors.NewInternalError("failed to get submission")
	}
	if submission == nil {
		return nil, errors.NewNotFoundError("submission not found")
	}
	return dto.ToSubmissionDTO(submission), nil
}

func (uc *ManageSubmissionsUseCase) Delete(ctx context.Context, sid string) error {
	submission, err := uc.submissionRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get submission", "error", err, "sid", sid)
		return errors.NewInternalError("failed to get submission")
	}
	if submission == nil {
		return errors.NewNotFoundError("submission not found")
	}

	if err := uc.submissionRepo.Delete(ctx, submission.ID()); err != nil {
		uc.logger.Errorw("failed to delete submission", "error", err, "submission_id", submission.ID())
		return errors.NewInternalError("failed to delete submission")
	}

	uc.logger.Infow("submission deleted", "submission_id", submission.ID())
	return nil
}
