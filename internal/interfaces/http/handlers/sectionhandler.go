package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contentdto "github.com/beacon-cms/beacon/internal/application/content/dto"
	"github.com/beacon-cms/beacon/internal/application/content/usecases"
	"github.com/beacon-cms/beacon/internal/shared/id"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

type SectionHandler struct {
	manageSectionsUC *usecases.ManageSectionsUseCase
	logger           logger.Interface
}

func NewSectionHandler(manageSectionsUC *usecases.ManageSectionsUseCase) *SectionHandler {
	return &SectionHandler{
		manageSectionsUC: manageSectionsUC,
		logger:           logger.NewLogger(),
	}
}

// SectionContentRequest is the union of per-type content payloads; only the
// part matching the section type is read.
type SectionContentRequest struct {
	Hero             *contentdto.HeroContentDTO  `json:"hero"`
	Features         *contentdto.FeatureGroupDTO `json:"features"`
	Media            *contentdto.MediaContentDTO `json:"media"`
	FAQHeading       string                      `json:"faq_heading"`
	FAQCategoryID    string                      `json:"faq_category_id"`
	HTML             *contentdto.HTMLContentDTO  `json:"html"`
	PricingSectionID string                      `json:"pricing_section_id"`
	FormID           string                      `json:"form_id"`
}

type CreateSectionRequest struct {
	PageID    string                `json:"page_id" binding:"required"`
	Type      string                `json:"type" binding:"required"`
	Title     string                `json:"title"`
	SortOrder int                   `json:"sort_order"`
	Content   SectionContentRequest `json:"content"`
}

type UpdateSectionRequest struct {
	Title   string                `json:"title"`
	Content SectionContentRequest `json:"content"`
}

type SetVisibilityRequest struct {
	IsVisible *bool `json:"is_visible" binding:"required"`
}

type ReorderSectionsRequest struct {
	Sections []ReorderSectionInput `json:"sections" binding:"required,min=1"`
}

type ReorderSectionInput struct {
	SectionID string `json:"section_id" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

func (h *SectionHandler) toContentInput(req SectionContentRequest) (usecases.SectionContentInput, error) {
	input := usecases.SectionContentInput{
		Hero:       req.Hero,
		Features:   req.Features,
		Media:      req.Media,
		FAQHeading: req.FAQHeading,
		HTML:       req.HTML,
	}

	if req.FAQCategoryID != "" {
		sid, err := utils.ParseSID(req.FAQCategoryID, id.PrefixFAQCategory, "FAQ category")
		if err != nil {
			return input, err
		}
		input.FAQCategorySID = sid
	}
	if req.PricingSectionID != "" {
		sid, err := utils.ParseSID(req.PricingSectionID, id.PrefixPricingSection, "pricing section")
		if err != nil {
			return input, err
		}
		input.PricingSectionSID = sid
	}
	if req.FormID != "" {
		sid, err := utils.ParseSID(req.FormID, id.PrefixForm, "form")
		if err != nil {
			return input, err
		}
		input.FormSID = sid
	}

	return input, nil
}

func (h *SectionHandler) CreateSection(c *gin.Context) {
	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create section", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	pageSID, err := utils.ParseSID(req.PageID, id.PrefixPage, "page")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	content, err := h.toContentInput(req.Content)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.manageSectionsUC.Create(c.Request.Context(), usecases.CreateSectionCommand{
		PageSID:   pageSID,
		Type:      req.Type,
		Title:     req.Title,
		SortOrder: req.SortOrder,
		Content:   content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Section created successfully")
}

func (h *SectionHandler) UpdateSection(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPageSection, "section")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update section", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	content, err := h.toContentInput(req.Content)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.manageSectionsUC.Update(c.Request.Context(), usecases.UpdateSectionCommand{
		SID:     sid,
		Title:   req.Title,
		Content: content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Section updated successfully", result)
}

func (h *SectionHandler) SetVisibility(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPageSection, "section")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsVisible == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "is_visible is required")
		return
	}

	if err := h.manageSectionsUC.SetVisibility(c.Request.Context(), sid, *req.IsVisible); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Section visibility updated", nil)
}

func (h *SectionHandler) ReorderSections(c *gin.Context) {
	pageSID, err := utils.ParseSIDParam(c, "id", id.PrefixPage, "page")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reorder sections", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	inputs := make([]usecases.ReorderInput, 0, len(req.Sections))
	for _, section := range req.Sections {
		sectionSID, err := utils.ParseSID(section.SectionID, id.PrefixPageSection, "section")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		inputs = append(inputs, usecases.ReorderInput{
			SectionSID: sectionSID,
			SortOrder:  section.SortOrder,
		})
	}

	if err := h.manageSectionsUC.Reorder(c.Request.Context(), pageSID, inputs); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sections reordered successfully", nil)
}

func (h *SectionHandler) DeleteSection(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPageSection, "section")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageSectionsUC.Delete(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *SectionHandler) ListSections(c *gin.Context) {
	pageSID, err := utils.ParseSIDParam(c, "id", id.PrefixPage, "page")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.manageSectionsUC.List(c.Request.Context(), pageSID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SectionHandler) ListPublicSections(c *gin.Context) {
	slug := c.Param("slug")

	result, err := h.manageSectionsUC.ListPublicBySlug(c.Request.Context(), slug)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
