package usecases

import (
	"context"

	"github.com/beacon-cms/beacon/internal/application/pricing/dto"
	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type CreatePricingSectionCommand struct {
	Name       string
	Heading    string
	Subheading string
	Layout     string
	Background string
}

type UpdatePricingSectionCommand struct {
	SID        string
	Name       string
	Heading    string
	Subheading string
	Layout     string
	Background string
}

type SectionPlanInput struct {
	PlanSID   string
	SortOrder int
	IsVisible bool
}

type ManagePricingSectionsUseCase struct {
	sectionRepo catalog.PricingSectionRepository
	planRepo    catalog.PlanRepository
	logger      logger.Interface
}

func NewManagePricingSectionsUseCase(
	sectionRepo catalog.PricingSectionRepository,
	planRepo catalog.PlanRepository,
	logger logger.Interface,
) *ManagePricingSectionsUseCase {
	return &ManagePricingSectionsUseCase{
		sectionRepo: sectionRepo,
		planRepo:    planRepo,
		logger:      logger,
	}
}

func (uc *ManagePricingSectionsUseCase) Create(ctx context.Context, cmd CreatePricingSectionCommand) (*dto.PricingSectionDTO, error) {
	section, err := catalog.NewPricingSection(cmd.Name, cmd.Heading, cmd.Subheading, catalog.PricingLayout(cmd.Layout))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Background != "" {
		if err := section.Update(cmd.Name, cmd.Heading, cmd.Subheading, section.Layout(), cmd.Background); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.sectionRepo.Create(ctx, section); err != nil {
		uc.logger.Errorw("failed to persist pricing section", "error", err, "name", cmd.Name)
		return nil, errors.NewInternalError("failed to create pricing section")
	}

	uc.logger.Infow("pricing section created", "section_id", section.ID(), "name", section.Name())
	return dto.ToPricingSectionDTO(section), nil
}

func (uc *ManagePricingSectionsUseCase) Update(ctx context.Context, cmd UpdatePricingSectionCommand) (*dto.PricingSectionDTO, error) {
	section, err := uc.getBySID(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}

	if err := section.Update(cmd.Name, cmd.Heading, cmd.Subheading, catalog.PricingLayout(cmd.Layout), cmd.Background); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.sectionRepo.Update(ctx, section); err != nil {
		uc.logger.Errorw("failed to update pricing section", "error", err, "section_id", section.ID())
		return nil, errors.NewInternalError("failed to update pricing section")
	}

	return dto.ToPricingSectionDTO(section), nil
}

func (uc *ManagePricingSectionsUseCase) Delete(ctx context.Context, sid string) error {
	section, err := uc.getBySID(ctx, sid)
	if err != nil {
		return err
	}

	if err := uc.sectionRepo.Delete(ctx, section.ID()); err != nil {
		uc.logger.Errorw("failed to delete pricing section", "error", err, "section_id", section.ID())
		return errors.NewInternalError("failed to delete pricing section")
	}

	uc.logger.Infow("pricing section deleted", "section_id", section.ID())
	return nil
}

func (uc *ManagePricingSectionsUseCase) Get(ctx context.Context, sid string) (*dto.PricingSectionDTO, error) {
	section, err := uc.getBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	return dto.ToPricingSectionDTO(section), nil
}

func (uc *ManagePricingSectionsUseCase) List(ctx context.Context) ([]*dto.PricingSectionDTO, error) {
	sections, err := uc.sectionRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list pricing sections", "error", err)
		return nil, errors.NewInternalError("failed to list pricing sections")
	}

	dtos := make([]*dto.PricingSectionDTO, 0, len(sections))
	for _, section := range sections {
		dtos = append(dtos, dto.ToPricingSectionDTO(section))
	}
	return dtos, nil
}

// ReplacePlans swaps the section's plan selection. Plan order in the input
// becomes the render order when the sort orders tie.
func (uc *ManagePricingSectionsUseCase) ReplacePlans(ctx context.Context, sid string, inputs []SectionPlanInput) error {
	section, err := uc.getBySID(ctx, sid)
	if err != nil {
		return err
	}

	plans := make([]catalog.SectionPlan, 0, len(inputs))
	for _, input := range inputs {
		plan, err := uc.planRepo.GetBySID(ctx, input.PlanSID)
		if err != nil {
			uc.logger.Errorw("failed to get plan", "error", err, "sid", input.PlanSID)
			return errors.NewInternalError("failed to get plan")
		}
		if plan == nil {
			return errors.NewNotFoundError("plan not found: " + input.PlanSID)
		}
		plans = append(plans, catalog.SectionPlan{
			PlanID:    plan.ID(),
			SortOrder: input.SortOrder,
			IsVisible: input.IsVisible,
		})
	}

	if err := uc.sectionRepo.ReplacePlans(ctx, section.ID(), plans); err != nil {
		uc.logger.Errorw("failed to replace section plans", "error", err, "section_id", section.ID())
		return errors.NewInternalError("failed to replace section plans")
	}

	uc.logger.Infow("section plans replaced", "section_id", section.ID(), "count", len(plans))
	return nil
}

// SetDefault marks one section as default and clears the flag everywhere
// else in a single transaction.
func (uc *ManagePricingSectionsUseCase) SetDefault(ctx context.Context, sid string) error {
	section, err := uc.getBySID(ctx, sid)
	if err != nil {
		return err
	}

	if err := uc.sectionRepo.SetDefault(ctx, section.ID()); err != nil {
		uc.logger.Errorw("failed to set default pricing section", "error", err, "section_id", section.ID())
		return errors.NewInternalError("failed to set default pricing section")
	}

	uc.logger.Infow("default pricing section changed", "section_id", section.ID())
	return nil
}

func (uc *ManagePricingSectionsUseCase) getBySID(ctx context.Context, sid string) (*catalog.PricingSection, error) {
	section, err := uc.sectionRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get pricing section", "error", err, "sid", sid)
		return nil, errors.NewInternalError("failed to get pricing section")
	}
	if section == nil {
		return nil, errors.NewNotFoundError("pricing section not found")
	}
	return section, nil
}
