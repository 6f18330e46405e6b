package usecases

import (
	"context"

	"github.com/beacon-cms/beacon/internal/application/form/dto"
	"github.com/beacon-cms/beacon/internal/domain/form"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type CreateFormCommand struct {
	Slug              string
	Name              string
	Title             string
	Description       string
	SubmitLabel       string
	SuccessMessage    string
	EmailNotification bool
	NotifyEmails      []string
	DynamicRecipients bool
	SendConfirmation  bool
	SubscribeField    string
}

type UpdateFormCommand struct {
	SID               string
	Slug              string
	Name              string
	Title             string
	Description       string
	SubmitLabel       string
	SuccessMessage    string
	EmailNotification bool
	NotifyEmails      []string
	DynamicRecipients bool
	SendConfirmation  bool
	SubscribeField    string
	IsActive          *bool
}

type FieldInput struct {
	Type        string
	Name        string
	Label       string
	Placeholder string
	HelpText    string
	IsRequired  bool
	SortOrder   int
	Options     []string
}

type ManageFormsUseCase struct {
	formRepo form.FormRepository
	logger   logger.Interface
}

func NewManageFormsUseCase(formRepo form.FormRepository, logger logger.Interface) *ManageFormsUseCase {
	return &ManageFormsUseCase{
		formRepo: formRepo,
		logger:   logger,
	}
}

func (uc *ManageFormsUseCase) Create(ctx context.Context, cmd CreateFormCommand) (*dto.FormDTO, error) {
	f, err := form.NewForm(cmd.Slug, cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	submitLabel := cmd.SubmitLabel
	if submitLabel == "" {
		submitLabel = f.SubmitLabel()
	}
	if err := f.Update(cmd.Slug, cmd.Name, cmd.Title, cmd.Description, submitLabel,
		cmd.SuccessMessage, cmd.EmailNotification, cmd.NotifyEmails,
		cmd.DynamicRecipients, cmd.SendConfirmation, cmd.SubscribeField); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.formRepo.Create(ctx, f); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to persist form", "error", err, "slug", cmd.Slug)
		return nil, errors.NewInternalError("failed to create form")
	}

	uc.logger.Infow("form created", "form_id", f.ID(), "slug", f.Slug())
	return dto.ToFormDTO(f), nil
}

func (uc *ManageFormsUseCase) Update(ctx context.Context, cmd UpdateFormCommand) (*dto.FormDTO, error) {
	f, err := uc.getBySID(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}

	if err := f.Update(cmd.Slug, cmd.Name, cmd.Title, cmd.Description, cmd.SubmitLabel,
		cmd.SuccessMessage, cmd.EmailNotification, cmd.NotifyEmails,
		cmd.DynamicRecipients, cmd.SendConfirmation, cmd.SubscribeField); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.IsActive != nil {
		if *cmd.IsActive {
			f.Activate()
		} else {
			f.Deactivate()
		}
	}

	if err := uc.formRepo.Update(ctx, f); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update form", "error", err, "form_id", f.ID())
		return nil, errors.NewInternalError("failed to update form")
	}

	uc.logger.Infow("form updated", "form_id", f.ID())
	return dto.ToFormDTO(f), nil
}

func (uc *ManageFormsUseCase) Delete(ctx context.Context, sid string) error {
	f, err := uc.getBySID(ctx, sid)
	if err != nil {
		return err
	}

	if err := uc.formRepo.Delete(ctx, f.ID()); err != nil {
		uc.logger.Errorw("failed to delete form", "error", err, "form_id", f.ID())
		return errors.NewInternalError("failed to delete form")
	}

	uc.logger.Infow("form deleted", "form_id", f.ID())
	return nil
}

func (uc *ManageFormsUseCase) Get(ctx context.Context, sid string) (*dto.FormDTO, error) {
	f, err := uc.getBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	return dto.ToFormDTO(f), nil
}

func (uc *ManageFormsUseCase) List(ctx context.Context, activeOnly bool) ([]*dto.FormDTO, error) {
	forms, err := uc.formRepo.List(ctx, activeOnly)
	if err != nil {
		uc.logger.Errorw("failed to list forms", "error", err)
		return nil, errors.NewInternalError("failed to list forms")
	}

	dtos := make([]*dto.FormDTO, 0, len(forms))
	for _, f := range forms {
		dtos = append(dtos, dto.ToFormDTO(f))
	}
	return dtos, nil
}

// ReplaceFields swaps the form's field definitions in one transaction.
func (uc *ManageFormsUseCase) ReplaceFields(ctx context.Context, sid string, inputs []FieldInput) (*dto.FormDTO, error) {
	f, err := uc.getBySID(ctx, sid)
	if err != nil {
		return nil, err
	}

	fields := make([]*form.Field, 0, len(inputs))
	for _, input := range inputs {
		field, err := form.NewField(f.ID(), form.FieldType(input.Type), input.Name, input.Label)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := field.Update(form.FieldType(input.Type), input.Name, input.Label,
			input.Placeholder, input.HelpText, input.IsRequired, input.SortOrder, input.Options); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		fields = append(fields, field)
	}

	if err := uc.formRepo.ReplaceFields(ctx, f.ID(), fields); err != nil {
		uc.logger.Errorw("failed to replace form fields", "error", err, "form_id", f.ID())
		return nil, errors.NewInternalError("failed to replace form fields")
	}

	f.ReplaceFields(fields)
	uc.logger.Infow("form fields replaced", "form_id", f.ID(), "count", len(fields))
	return dto.ToFormDTO(f), nil
}

func (uc *ManageFormsUseCase) getBySID(ctx context.Context, sid string) (*form.Form, error) {
	f, err := uc.formRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get form", "error", err, "sid", sid)
		return nil, errors.NewInternalError("failed to get form")
	}
	if f == nil {
		return nil, errors.NewNotFoundError("form not found")
	}
	return f, nil
}
