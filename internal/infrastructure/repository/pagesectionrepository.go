package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/beacon-cms/beacon/internal/domain/content"
	"github.com/beacon-cms/beacon/internal/infrastructure/persistence/models"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type PageSectionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPageSectionRepository(db *gorm.DB, logger logger.Interface) content.PageSectionRepository {
	return &PageSectionRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// sectionContentJSON is the persisted shape of the section content union.
type sectionContentJSON struct {
	Hero             *heroJSON         `json:"hero,omitempty"`
	Features         *featureGroupJSON `json:"features,omitempty"`
	Media            *mediaJSON        `json:"media,omitempty"`
	FAQ              *faqBlockJSON     `json:"faq,omitempty"`
	HTML             *htmlBlockJSON    `json:"html,omitempty"`
	PricingSectionID uint              `json:"pricing_section_id,omitempty"`
	FormID           uint              `json:"form_id,omitempty"`
}

type heroJSON struct {
	Headline     string `json:"headline"`
	Subheadline  string `json:"subheadline,omitempty"`
	BodyMarkdown string `json:"body_markdown,omitempty"`
	CTALabel     string `json:"cta_label,omitempty"`
	CTAURL       string `json:"cta_url,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

type featureGroupJSON struct {
	Heading    string            `json:"heading,omitempty"`
	Subheading string            `json:"subheading,omitempty"`
	Items      []featureItemJSON `json:"items"`
}

type featureItemJSON struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	SortOrder   int    `json:"sort_order"`
}

type mediaJSON struct {
	Kind    string `json:"kind"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	AltText string `json:"alt_text,omitempty"`
}

type faqBlockJSON struct {
	Heading    string `json:"heading,omitempty"`
	CategoryID uint   `json:"category_id,omitempty"`
}

type htmlBlockJSON struct {
	Content    string `json:"content"`
	IsMarkdown bool   `json:"is_markdown"`
}

func (r *PageSectionRepositoryImpl) Create(ctx context.Context, section *content.PageSection) error {
	model, err := r.toModel(section)
	if err != nil {
		r.logger.Errorw("failed to convert page section to model", "error", err)
		return fmt.Errorf("failed to convert page section to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create page section", "error", err, "page_id", section.PageID())
		return fmt.Errorf("failed to create page section: %w", err)
	}

	if err := section.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("page section created", "section_id", model.ID,
		"page_id", section.PageID(), "type", section.Type())
	return nil
}

func (r *PageSectionRepositoryImpl) GetByID(ctx context.Context, sectionID uint) (*content.PageSection, error) {
	var model models.PageSectionModel
	if err := r.db.WithContext(ctx).First(&model, sectionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get page section by ID", "error", err, "section_id", sectionID)
		return nil, fmt.Errorf("failed to get page section: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PageSectionRepositoryImpl) GetBySID(ctx context.Context, sid string) (*content.PageSection, error) {
	var model models.PageSectionModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get page section by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get page section by SID: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PageSectionRepositoryImpl) ListByPageID(ctx context.Context, pageID uint) ([]*content.PageSection, error) {
	return r.listByPage(ctx, pageID, false)
}

func (r *PageSectionRepositoryImpl) ListVisibleByPageID(ctx context.Context, pageID uint) ([]*content.PageSection, error) {
	return r.listByPage(ctx, pageID, true)
}

func (r *PageSectionRepositoryImpl) listByPage(ctx context.Context, pageID uint, visibleOnly bool) ([]*content.PageSection, error) {
	query := r.db.WithContext(ctx).
		Where("page_id = ?", pageID).
		Order("sort_order ASC, id ASC")
	if visibleOnly {
		query = query.Where("is_visible = ?", true)
	}

	var sectionModels []*models.PageSectionModel
	if err := query.Find(&sectionModels).Error; err != nil {
		r.logger.Errorw("failed to list page sections", "error", err, "page_id", pageID)
		return nil, fmt.Errorf("failed to list page sections: %w", err)
	}

	sections := make([]*content.PageSection, 0, len(sectionModels))
	for _, model := range sectionModels {
		section, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, nil
}

func (r *PageSectionRepositoryImpl) Update(ctx context.Context, section *content.PageSection) error {
	model, err := r.toModel(section)
	if err != nil {
		r.logger.Errorw("failed to convert page section to model", "error", err)
		return fmt.Errorf("failed to convert page section to model: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.PageSectionModel{}).
		Where("id = ?", section.ID()).
		Updates(map[string]interface{}{
			"title":      model.Title,
			"sort_order": model.SortOrder,
			"is_visible": model.IsVisible,
			"content":    model.Content,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update page section", "error", result.Error, "section_id", section.ID())
		return fmt.Errorf("failed to update page section: %w", result.Error)
	}

	r.logger.Infow("page section updated", "section_id", section.ID())
	return nil
}

func (r *PageSectionRepositoryImpl) Delete(ctx context.Context, sectionID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PageSectionModel{}, sectionID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete page section", "error", result.Error, "section_id", sectionID)
		return fmt.Errorf("failed to delete page section: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("page section not found")
	}

	r.logger.Infow("page section deleted", "section_id", sectionID)
	return nil
}

// Reorder applies new sort order values to the page's sections in one
// transaction.
func (r *PageSectionRepositoryImpl) Reorder(ctx context.Context, pageID uint, orders map[uint]int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for sectionID, order := range orders {
			result := tx.Model(&models.PageSectionModel{}).
				Where("id = ? AND page_id = ?", sectionID, pageID).
				Update("sort_order", order)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return errors.NewNotFoundError(fmt.Sprintf("section %d not found on page", sectionID))
			}
		}
		return nil
	})

	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		r.logger.Errorw("failed to reorder page sections", "error", err, "page_id", pageID)
		return fmt.Errorf("failed to reorder page sections: %w", err)
	}

	r.logger.Infow("page sections reordered", "page_id", pageID, "count", len(orders))
	return nil
}

func (r *PageSectionRepositoryImpl) toModel(section *content.PageSection) (*models.PageSectionModel, error) {
	contentJSON, err := marshalSectionContent(section.Content())
	if err != nil {
		return nil, err
	}

	return &models.PageSectionModel{
		ID:          section.ID(),
		SID:         section.SID(),
		PageID:      section.PageID(),
		SectionType: string(section.Type()),
		Title:       section.Title(),
		SortOrder:   section.SortOrder(),
		IsVisible:   section.IsVisible(),
		Content:     contentJSON,
		CreatedAt:   section.CreatedAt(),
		UpdatedAt:   section.UpdatedAt(),
	}, nil
}

func (r *PageSectionRepositoryImpl) toEntity(model *models.PageSectionModel) (*content.PageSection, error) {
	sectionContent, err := unmarshalSectionContent(model.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode section content: %w", err)
	}

	return content.ReconstructPageSection(
		model.ID,
		model.SID,
		model.PageID,
		content.SectionType(model.SectionType),
		model.Title,
		model.SortOrder,
		model.IsVisible,
		sectionContent,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func marshalSectionContent(sc content.SectionContent) (datatypes.JSON, error) {
	doc := sectionContentJSON{
		PricingSectionID: sc.PricingSectionID,
		FormID:           sc.FormID,
	}

	if sc.Hero != nil {
		doc.Hero = &heroJSON{
			Headline:     sc.Hero.Headline,
			Subheadline:  sc.Hero.Subheadline,
			BodyMarkdown: sc.Hero.BodyMarkdown,
			CTALabel:     sc.Hero.CTALabel,
			CTAURL:       sc.Hero.CTAURL,
			ImageURL:     sc.Hero.ImageURL,
		}
	}
	if sc.Features != nil {
		items := make([]featureItemJSON, 0, len(sc.Features.Items))
		for _, item := range sc.Features.Items {
			items = append(items, featureItemJSON{
				Title:       item.Title,
				Description: item.Description,
				Icon:        item.Icon,
				SortOrder:   item.SortOrder,
			})
		}
		doc.Features = &featureGroupJSON{
			Heading:    sc.Features.Heading,
			Subheading: sc.Features.Subheading,
			Items:      items,
		}
	}
	if sc.Media != nil {
		doc.Media = &mediaJSON{
			Kind:    string(sc.Media.Kind),
			URL:     sc.Media.URL,
			Caption: sc.Media.Caption,
			AltText: sc.Media.AltText,
		}
	}
	if sc.FAQ != nil {
		doc.FAQ = &faqBlockJSON{
			Heading:    sc.FAQ.Heading,
			CategoryID: sc.FAQ.CategoryID,
		}
	}
	if sc.HTML != nil {
		doc.HTML = &htmlBlockJSON{
			Content:    sc.HTML.Content,
			IsMarkdown: sc.HTML.IsMarkdown,
		}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal section content: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func unmarshalSectionContent(raw datatypes.JSON) (content.SectionContent, error) {
	var sc content.SectionContent
	if len(raw) == 0 {
		return sc, nil
	}

	var doc sectionContentJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return sc, err
	}

	sc.PricingSectionID = doc.PricingSectionID
	sc.FormID = doc.FormID

	if doc.Hero != nil {
		sc.Hero = &content.Hero{
			Headline:     doc.Hero.Headline,
			Subheadline:  doc.Hero.Subheadline,
			BodyMarkdown: doc.Hero.BodyMarkdown,
			CTALabel:     doc.Hero.CTALabel,
			CTAURL:       doc.Hero.CTAURL,
			ImageURL:     doc.Hero.ImageURL,
		}
	}
	if doc.Features != nil {
		items := make([]content.FeatureItem, 0, len(doc.Features.Items))
		for _, item := range doc.Features.Items {
			items = append(items, content.FeatureItem{
				Title:       item.Title,
				Description: item.Description,
				Icon:        item.Icon,
				SortOrder:   item.SortOrder,
			})
		}
		sc.Features = &content.FeatureGroup{
			Heading:    doc.Features.Heading,
			Subheading: doc.Features.Subheading,
			Items:      items,
		}
	}
	if doc.Media != nil {
		sc.Media = &content.Media{
			Kind:    content.MediaKind(doc.Media.Kind),
			URL:     doc.Media.URL,
			Caption: doc.Media.Caption,
			AltText: doc.Media.AltText,
		}
	}
	if doc.FAQ != nil {
		sc.FAQ = &content.FAQBlock{
			Heading:    doc.FAQ.Heading,
			CategoryID: doc.FAQ.CategoryID,
		}
	}
	if doc.HTML != nil {
		sc.HTML = &content.HTMLBlock{
			Content:    doc.HTML.Content,
			IsMarkdown: doc.HTML.IsMarkdown,
		}
	}

	return sc, nil
}
