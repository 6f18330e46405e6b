package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/beacon-cms/beacon/internal/domain/form"
	"github.com/beacon-cms/beacon/internal/infrastructure/persistence/models"
	"github.com/beacon-cms/beacon/internal/shared/db"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type SubmissionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubmissionRepository(db *gorm.DB, logger logger.Interface) form.SubmissionRepository {
	return &SubmissionRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SubmissionRepositoryImpl) Create(ctx context.Context, submission *form.Submission) error {
	model, err := r.toModel(submission)
	if err != nil {
		r.logger.Errorw("failed to convert submission to model", "error", err)
		return fmt.Errorf("failed to convert submission to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create form submission", "error", err, "form_id", submission.FormID())
		return fmt.Errorf("failed to create form submission: %w", err)
	}

	if err := submission.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("form submission created", "submission_id", model.ID, "form_id", submission.FormID())
	return nil
}

func (r *SubmissionRepositoryImpl) GetByID(ctx context.Context, submissionID uint) (*form.Submission, error) {
	var model models.FormSubmissionModel
	if err := r.db.WithContext(ctx).First(&model, submissionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get submission by ID", "error", err, "submission_id", submissionID)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return r.toEntity(&model)
}

func (r *SubmissionRepositoryImpl) GetBySID(ctx context.Context, sid string) (*form.Submission, error) {
	var model models.FormSubmissionModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get submission by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get submission by SID: %w", err)
	}

	return r.toEntity(&model)
}

// ListByFormID returns submissions newest first with the total count.
func (r *SubmissionRepositoryImpl) ListByFormID(ctx context.Context, formID uint, offset, limit int) ([]*form.Submission, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.FormSubmissionModel{}).
		Where("form_id = ?", formID).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count submissions", "error", err, "form_id", formID)
		return nil, 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	var submissionModels []*models.FormSubmissionModel
	err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&submissionModels).Error
	if err != nil {
		r.logger.Errorw("failed to list submissions", "error", err, "form_id", formID)
		return nil, 0, fmt.Errorf("failed to list submissions: %w", err)
	}

	submissions := make([]*form.Submission, 0, len(submissionModels))
	for _, model := range submissionModels {
		submission, err := r.toEntity(model)
		if err != nil {
			return nil, 0, err
		}
		submissions = append(submissions, submission)
	}
	return submissions, total, nil
}

// UpdateEmailStatus records the notification outcome after the submission
// row has been committed.
func (r *SubmissionRepositoryImpl) UpdateEmailStatus(ctx context.Context, submissionID uint, status form.EmailStatus, emailError string) error {
	result := r.db.WithContext(ctx).Model(&models.FormSubmissionModel{}).
		Where("id = ?", submissionID).
		Updates(map[string]interface{}{
			"email_status": string(status),
			"email_error":  emailError,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update submission email status", "error", result.Error,
			"submission_id", submissionID)
		return fmt.Errorf("failed to update submission email status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("submission not found")
	}

	return nil
}

func (r *SubmissionRepositoryImpl) Delete(ctx context.Context, submissionID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FormSubmissionModel{}, submissionID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete submission", "error", result.Error, "submission_id", submissionID)
		return fmt.Errorf("failed to delete submission: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("submission not found")
	}

	r.logger.Infow("form submission deleted", "submission_id", submissionID)
	return nil
}

func (r *SubmissionRepositoryImpl) toModel(submission *form.Submission) (*models.FormSubmissionModel, error) {
	data, err := json.Marshal(submission.Data())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission data: %w", err)
	}

	return &models.FormSubmissionModel{
		ID:          submission.ID(),
		SID:         submission.SID(),
		FormID:      submission.FormID(),
		Data:        datatypes.JSON(data),
		SourceURL:   submission.SourceURL(),
		IPAddress:   submission.IPAddress(),
		UserAgent:   submission.UserAgent(),
		EmailStatus: string(submission.EmailStatus()),
		EmailError:  submission.EmailError(),
		CreatedAt:   submission.CreatedAt(),
	}, nil
}

func (r *SubmissionRepositoryImpl) toEntity(model *models.FormSubmissionModel) (*form.Submission, error) {
	var data map[string]string
	if len(model.Data) > 0 {
		if err := json.Unmarshal(model.Data, &data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal submission data: %w", err)
		}
	}

	return form.ReconstructSubmission(
		model.ID,
		model.SID,
		model.FormID,
		data,
		model.SourceURL,
		model.IPAddress,
		model.UserAgent,
		form.EmailStatus(model.EmailStatus),
		model.EmailError,
		model.CreatedAt,
	)
}
