package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/beacon-cms/beacon/internal/domain/form"
	"github.com/beacon-cms/beacon/internal/infrastructure/persistence/models"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type FormRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewFormRepository(db *gorm.DB, logger logger.Interface) form.FormRepository {
	return &FormRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *FormRepositoryImpl) Create(ctx context.Context, f *form.Form) error {
	model, err := r.toModel(f)
	if err != nil {
		r.logger.Errorw("failed to convert form to model", "error", err)
		return fmt.Errorf("failed to convert form to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateKeyError(err) {
			return errors.NewConflictError("form slug already exists")
		}
		r.logger.Errorw("failed to create form", "error", err, "slug", f.Slug())
		return fmt.Errorf("failed to create form: %w", err)
	}

	if err := f.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("form created", "form_id", model.ID, "slug", f.Slug())
	return nil
}

func (r *FormRepositoryImpl) GetByID(ctx context.Context, formID uint) (*form.Form, error) {
	var model models.FormModel
	err := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		First(&model, formID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get form by ID", "error", err, "form_id", formID)
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	return r.toEntity(&model)
}

func (r *FormRepositoryImpl) GetBySID(ctx context.Context, sid string) (*form.Form, error) {
	var model models.FormModel
	err := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Where("sid = ?", sid).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get form by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get form by SID: %w", err)
	}

	return r.toEntity(&model)
}

func (r *FormRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*form.Form, error) {
	var model models.FormModel
	err := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Where("slug = ?", slug).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get form by slug", "error", err, "slug", slug)
		return nil, fmt.Errorf("failed to get form by slug: %w", err)
	}

	return r.toEntity(&model)
}

func (r *FormRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*form.Form, error) {
	query := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Order("id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var formModels []*models.FormModel
	if err := query.Find(&formModels).Error; err != nil {
		r.logger.Errorw("failed to list forms", "error", err)
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}

	forms := make([]*form.Form, 0, len(formModels))
	for _, model := range formModels {
		f, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	return forms, nil
}

func (r *FormRepositoryImpl) Update(ctx context.Context, f *form.Form) error {
	model, err := r.toModel(f)
	if err != nil {
		r.logger.Errorw("failed to convert form to model", "error", err)
		return fmt.Errorf("failed to convert form to model: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.FormModel{}).
		Where("id = ?", f.ID()).
		Updates(map[string]interface{}{
			"slug":               model.Slug,
			"name":               model.Name,
			"title":              model.Title,
			"description":        model.Description,
			"submit_label":       model.SubmitLabel,
			"success_message":    model.SuccessMessage,
			"email_notification": model.EmailNotification,
			"notify_emails":      model.NotifyEmails,
			"dynamic_recipients": model.DynamicRecipients,
			"send_confirmation":  model.SendConfirmation,
			"subscribe_field":    model.SubscribeField,
			"is_active":          model.IsActive,
			"updated_at":         model.UpdatedAt,
		})

	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return errors.NewConflictError("form slug already exists")
		}
		r.logger.Errorw("failed to update form", "error", result.Error, "form_id", f.ID())
		return fmt.Errorf("failed to update form: %w", result.Error)
	}

	r.logger.Infow("form updated", "form_id", f.ID())
	return nil
}

func (r *FormRepositoryImpl) Delete(ctx context.Context, formID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", formID).
			Delete(&models.FormFieldModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.FormModel{}, formID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("form not found")
		}
		return nil
	})

	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		r.logger.Errorw("failed to delete form", "error", err, "form_id", formID)
		return fmt.Errorf("failed to delete form: %w", err)
	}

	r.logger.Infow("form deleted", "form_id", formID)
	return nil
}

// ReplaceFields swaps the form's field definitions in one transaction.
func (r *FormRepositoryImpl) ReplaceFields(ctx context.Context, formID uint, fields []*form.Field) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", formID).
			Delete(&models.FormFieldModel{}).Error; err != nil {
			return err
		}

		for _, field := range fields {
			model, err := fieldToModel(field)
			if err != nil {
				return err
			}
			model.ID = 0
			model.FormID = formID
			if err := tx.Create(model).Error; err != nil {
				return err
			}
			if field.ID() == 0 {
				if err := field.SetID(model.ID); err != nil {
					return err
				}
			}
		}
		return nil
	})

	if err != nil {
		r.logger.Errorw("failed to replace form fields", "error", err, "form_id", formID)
		return fmt.Errorf("failed to replace form fields: %w", err)
	}

	r.logger.Infow("form fields replaced", "form_id", formID, "count", len(fields))
	return nil
}

func (r *FormRepositoryImpl) toModel(f *form.Form) (*models.FormModel, error) {
	notifyEmails, err := json.Marshal(f.NotifyEmails())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notify emails: %w", err)
	}

	return &models.FormModel{
		ID:                f.ID(),
		SID:               f.SID(),
		Slug:              f.Slug(),
		Name:              f.Name(),
		Title:             f.Title(),
		Description:       f.Description(),
		SubmitLabel:       f.SubmitLabel(),
		SuccessMessage:    f.SuccessMessage(),
		EmailNotification: f.EmailNotification(),
		NotifyEmails:      datatypes.JSON(notifyEmails),
		DynamicRecipients: f.DynamicRecipients(),
		SendConfirmation:  f.SendConfirmation(),
		SubscribeField:    f.SubscribeField(),
		IsActive:          f.IsActive(),
		CreatedAt:         f.CreatedAt(),
		UpdatedAt:         f.UpdatedAt(),
	}, nil
}

func (r *FormRepositoryImpl) toEntity(model *models.FormModel) (*form.Form, error) {
	var notifyEmails []string
	if len(model.NotifyEmails) > 0 {
		if err := json.Unmarshal(model.NotifyEmails, &notifyEmails); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notify emails: %w", err)
		}
	}

	fields := make([]*form.Field, 0, len(model.Fields))
	for i := range model.Fields {
		field, err := fieldToEntity(&model.Fields[i])
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return form.ReconstructForm(
		model.ID,
		model.SID,
		model.Slug,
		model.Name,
		model.Title,
		model.Description,
		model.SubmitLabel,
		model.SuccessMessage,
		model.EmailNotification,
		notifyEmails,
		model.DynamicRecipients,
		model.SendConfirmation,
		model.SubscribeField,
		model.IsActive,
		fields,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func fieldToModel(field *form.Field) (*models.FormFieldModel, error) {
	options, err := json.Marshal(field.Options())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal field options: %w", err)
	}

	return &models.FormFieldModel{
		ID:          field.ID(),
		FormID:      field.FormID(),
		FieldType:   string(field.Type()),
		Name:        field.Name(),
		Label:       field.Label(),
		Placeholder: field.Placeholder(),
		HelpText:    field.HelpText(),
		IsRequired:  field.IsRequired(),
		SortOrder:   field.SortOrder(),
		Options:     datatypes.JSON(options),
		CreatedAt:   field.CreatedAt(),
		UpdatedAt:   field.UpdatedAt(),
	}, nil
}

func fieldToEntity(model *models.FormFieldModel) (*form.Field, error) {
	var options []string
	if len(model.Options) > 0 {
		if err := json.Unmarshal(model.Options, &options); err != nil {
			return nil, fmt.Errorf("failed to unmarshal field options: %w", err)
		}
	}

	return form.ReconstructField(
		model.ID,
		model.FormID,
		form.FieldType(model.FieldType),
		model.Name,
		model.Label,
		model.Placeholder,
		model.HelpText,
		model.IsRequired,
		model.SortOrder,
		options,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
