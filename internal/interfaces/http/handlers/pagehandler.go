package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/application/content/usecases"
	"github.com/beacon-cms/beacon/internal/shared/id"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

type PageHandler struct {
	managePagesUC *usecases.ManagePagesUseCase
	composePageUC *usecases.ComposePageUseCase
	logger        logger.Interface
}

func NewPageHandler(
	managePagesUC *usecases.ManagePagesUseCase,
	composePageUC *usecases.ComposePageUseCase,
) *PageHandler {
	return &PageHandler{
		managePagesUC: managePagesUC,
		composePageUC: composePageUC,
		logger:        logger.NewLogger(),
	}
}

type CreatePageRequest struct {
	Slug            string  `json:"slug" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	MetaTitle       string  `json:"meta_title"`
	MetaDescription string  `json:"meta_description"`
	SitemapPriority float64 `json:"sitemap_priority"`
}

type UpdatePageRequest struct {
	Slug            string  `json:"slug" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	MetaTitle       string  `json:"meta_title"`
	MetaDescription string  `json:"meta_description"`
	SitemapPriority float64 `json:"sitemap_priority"`
	IsActive        *bool   `json:"is_active"`
}

func (h *PageHandler) CreatePage(c *gin.Context) {
	var req CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create page", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.managePagesUC.Create(c.Request.Context(), usecases.CreatePageCommand{
		Slug:            req.Slug,
		Title:           req.Title,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		SitemapPriority: req.SitemapPriority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Page created successfully")
}

func (h *PageHandler) UpdatePage(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPage, "page")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update page", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.managePagesUC.Update(c.Request.Context(), usecases.UpdatePageCommand{
		SID:             sid,
		Slug:            req.Slug,
		Title:           req.Title,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		SitemapPriority: req.SitemapPriority,
		IsActive:        req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Page updated successfully", result)
}

func (h *PageHandler) DeletePage(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPage, "page")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.managePagesUC.Delete(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *PageHandler) GetPage(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPage, "page")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.managePagesUC.Get(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PageHandler) ListPages(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	result, err := h.managePagesUC.List(c.Request.Context(), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetComposedPage serves a fully rendered page for the public site.
func (h *PageHandler) GetComposedPage(c *gin.Context) {
	slug := c.Param("slug")

	result, err := h.composePageUC.Execute(c.Request.Context(), slug)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
