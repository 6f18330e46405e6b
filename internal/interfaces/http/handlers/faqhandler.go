package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/application/content/usecases"
	"github.com/beacon-cms/beacon/internal/shared/id"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

type FAQHandler struct {
	manageFAQsUC *usecases.ManageFAQsUseCase
	logger       logger.Interface
}

func NewFAQHandler(manageFAQsUC *usecases.ManageFAQsUseCase) *FAQHandler {
	return &FAQHandler{
		manageFAQsUC: manageFAQsUC,
		logger:       logger.NewLogger(),
	}
}

type UpsertFAQCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

type CreateFAQRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	Question   string `json:"question" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	SortOrder  int    `json:"sort_order"`
}

type UpdateFAQRequest struct {
	Question  string `json:"question" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

func (h *FAQHandler) CreateCategory(c *gin.Context) {
	var req UpsertFAQCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create FAQ category", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.manageFAQsUC.UpsertCategory(c.Request.Context(), usecases.UpsertFAQCategoryCommand{
		Name:      req.Name,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive == nil || *req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "FAQ category created successfully")
}

func (h *FAQHandler) UpdateCategory(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFAQCategory, "FAQ category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpsertFAQCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update FAQ category", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.manageFAQsUC.UpsertCategory(c.Request.Context(), usecases.UpsertFAQCategoryCommand{
		SID:       sid,
		Name:      req.Name,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive == nil || *req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "FAQ category updated successfully", result)
}

func (h *FAQHandler) DeleteCategory(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFAQCategory, "FAQ category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageFAQsUC.DeleteCategory(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *FAQHandler) ListCategories(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	result, err := h.manageFAQsUC.ListCategories(c.Request.Context(), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *FAQHandler) CreateFAQ(c *gin.Context) {
	var req CreateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create FAQ", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	categorySID, err := utils.ParseSID(req.CategoryID, id.PrefixFAQCategory, "FAQ category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.manageFAQsUC.CreateFAQ(c.Request.Context(), usecases.CreateFAQCommand{
		CategorySID: categorySID,
		Question:    req.Question,
		Answer:      req.Answer,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "FAQ created successfully")
}

func (h *FAQHandler) UpdateFAQ(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFAQ, "FAQ")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update FAQ", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.manageFAQsUC.UpdateFAQ(c.Request.Context(), usecases.UpdateFAQCommand{
		SID:       sid,
		Question:  req.Question,
		Answer:    req.Answer,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "FAQ updated successfully", result)
}

func (h *FAQHandler) DeleteFAQ(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFAQ, "FAQ")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageFAQsUC.DeleteFAQ(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *FAQHandler) ListFAQs(c *gin.Context) {
	result, err := h.manageFAQsUC.ListFAQs(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
