package usecases

import (
	"context"

	"github.com/beacon-cms/beacon/internal/application/content/dto"
	"github.com/beacon-cms/beacon/internal/domain/content"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type UpsertFAQCategoryCommand struct {
	SID       string // empty creates a new category
	Name      string
	SortOrder int
	IsActive  bool
}

type CreateFAQCommand struct {
	CategorySID string
	Question    string
	Answer      string
	SortOrder   int
}

type UpdateFAQCommand struct {
	SID       string
	Question  string
	Answer    string
	SortOrder int
	IsActive  bool
}

// ManageFAQsUseCase bundles admin operations on the shared FAQ pool. FAQ
// mutations invalidate the whole composed-page cache since any page may
// embed a FAQ section.
type ManageFAQsUseCase struct {
	categoryRepo content.FAQCategoryRepository
	faqRepo      content.FAQRepository
	cache        ComposedPageCache
	logger       logger.Interface
}

func NewManageFAQsUseCase(
	categoryRepo content.FAQCategoryRepository,
	faqRepo content.FAQRepository,
	cache ComposedPageCache,
	logger logger.Interface,
) *ManageFAQsUseCase {
	return &ManageFAQsUseCase{
		categoryRepo: categoryRepo,
		faqRepo:      faqRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (uc *ManageFAQsUseCase) UpsertCategory(ctx context.Context, cmd UpsertFAQCategoryCommand) (*dto.FAQCategoryDTO, error) {
	if cmd.SID == "" {
		category, err := content.NewFAQCategory(cmd.Name)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if cmd.SortOrder != 0 || !cmd.IsActive {
			if err := category.Update(cmd.Name, cmd.SortOrder, cmd.IsActive); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
		}
		if err := uc.categoryRepo.Create(ctx, category); err != nil {
			uc.logger.Errorw("failed to persist FAQ category", "error", err, "name", cmd.Name)
			return nil, errors.NewInternalError("failed to create FAQ category")
		}
		uc.logger.Infow("FAQ category created", "category_id", category.ID())
		return dto.ToFAQCategoryDTO(category), nil
	}

	category, err := uc.getCategory(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}
	if err := category.Update(cmd.Name, cmd.SortOrder, cmd.IsActive); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		uc.logger.Errorw("failed to update FAQ category", "error", err, "category_id", category.ID())
		return nil, errors.NewInternalError("failed to update FAQ category")
	}

	uc.invalidateAll(ctx)
	return dto.ToFAQCategoryDTO(category), nil
}

// DeleteCategory removes a category and cascades its FAQs.
func (uc *ManageFAQsUseCase) DeleteCategory(ctx context.Context, sid string) error {
	category, err := uc.getCategory(ctx, sid)
	if err != nil {
		return err
	}

	if err := uc.categoryRepo.Delete(ctx, category.ID()); err != nil {
		uc.logger.Errorw("failed to delete FAQ category", "error", err, "category_id", category.ID())
		return errors.NewInternalError("failed to delete FAQ category")
	}

	uc.invalidateAll(ctx)
	uc.logger.Infow("FAQ category deleted", "category_id", category.ID())
	return nil
}

func (uc *ManageFAQsUseCase) ListCategories(ctx context.Context, activeOnly bool) ([]*dto.FAQCategoryDTO, error) {
	categories, err := uc.categoryRepo.List(ctx, activeOnly)
	if err != nil {
		uc.logger.Errorw("failed to list FAQ categories", "error", err)
		return nil, errors.NewInternalError("failed to list FAQ categories")
	}

	dtos := make([]*dto.FAQCategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, dto.ToFAQCategoryDTO(category))
	}
	return dtos, nil
}

func (uc *ManageFAQsUseCase) CreateFAQ(ctx context.Context, cmd CreateFAQCommand) (*dto.FAQDTO, error) {
	category, err := uc.getCategory(ctx, cmd.CategorySID)
	if err != nil {
		return nil, err
	}

	faq, err := content.NewFAQ(category.ID(), cmd.Question, cmd.Answer)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.SortOrder != 0 {
		if err := faq.Update(category.ID(), cmd.Question, cmd.Answer, cmd.SortOrder, true); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.faqRepo.Create(ctx, faq); err != nil {
		uc.logger.Errorw("failed to persist FAQ", "error", err, "category_id", category.ID())
		return nil, errors.NewInternalError("failed to create FAQ")
	}

	uc.invalidateAll(ctx)
	uc.logger.Infow("FAQ created", "faq_id", faq.ID(), "category_id", category.ID())
	return dto.ToFAQDTO(faq), nil
}

func (uc *ManageFAQsUseCase) UpdateFAQ(ctx context.Context, cmd UpdateFAQCommand) (*dto.FAQDTO, error) {
	faq, err := uc.getFAQ(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}

	if err := faq.Update(faq.CategoryID(), cmd.Question, cmd.Answer, cmd.SortOrder, cmd.IsActive); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.faqRepo.Update(ctx, faq); err != nil {
		uc.logger.Errorw("failed to update FAQ", "error", err, "faq_id", faq.ID())
		return nil, errors.NewInternalError("failed to update FAQ")
	}

	uc.invalidateAll(ctx)
	return dto.ToFAQDTO(faq), nil
}

func (uc *ManageFAQsUseCase) DeleteFAQ(ctx context.Context, sid string) error {
	faq, err := uc.getFAQ(ctx, sid)
	if err != nil {
		return err
	}

	if err := uc.faqRepo.Delete(ctx, faq.ID()); err != nil {
		uc.logger.Errorw("failed to delete FAQ", "error", err, "faq_id", faq.ID())
		return errors.NewInternalError("failed to delete FAQ")
	}

	uc.invalidateAll(ctx)
	uc.logger.Infow("FAQ deleted", "faq_id", faq.ID())
	return nil
}

func (uc *ManageFAQsUseCase) ListFAQs(ctx context.Context) ([]*dto.FAQDTO, error) {
	faqs, err := uc.faqRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list FAQs", "error", err)
		return nil, errors.NewInternalError("failed to list FAQs")
	}

	dtos := make([]*dto.FAQDTO, 0, len(faqs))
	for _, faq := range faqs {
		dtos = append(dtos, dto.ToFAQDTO(faq))
	}
	return dtos, nil
}

func (uc *ManageFAQsUseCase) getCategory(ctx context.Context, sid string) (*content.FAQCategory, error) {
	category, err := uc.categoryRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get FAQ category", "error", err, "sid", sid)
		return nil, errors.NewInternalError("failed to get FAQ category")
	}
	if category == nil {
		return nil, errors.NewNotFoundError("FAQ category not found")
	}
	return category, nil
}

func (uc *ManageFAQsUseCase) getFAQ(ctx context.Context, sid string) (*content.FAQ, error) {
	faq, err := uc.faqRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get FAQ", "error", err, "sid", sid)
		return nil, errors.NewInternalError("failed to get FAQ")
	}
	if faq == nil {
		return nil, errors.NewNotFoundError("FAQ not found")
	}
	return faq, nil
}

func (uc *ManageFAQsUseCase) invalidateAll(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.InvalidateAll(ctx)
	}
}
