package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/application/pricing/usecases"
	"github.com/beacon-cms/beacon/internal/shared/id"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

type BillingCycleHandler struct {
	manageCyclesUC *usecases.ManageBillingCyclesUseCase
	logger         logger.Interface
}

func NewBillingCycleHandler(manageCyclesUC *usecases.ManageBillingCyclesUseCase) *BillingCycleHandler {
	return &BillingCycleHandler{
		manageCyclesUC: manageCyclesUC,
		logger:         logger.NewLogger(),
	}
}

type CreateBillingCycleRequest struct {
	Label      string `json:"label" binding:"required"`
	Multiplier int    `json:"multiplier" binding:"required,min=1"`
	SortOrder  int    `json:"sort_order"`
}

type UpdateBillingCycleRequest struct {
	Label      string `json:"label" binding:"required"`
	Multiplier int    `json:"multiplier" binding:"required,min=1"`
	SortOrder  int    `json:"sort_order"`
}

func (h *BillingCycleHandler) CreateCycle(c *gin.Context) {
	var req CreateBillingCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create billing cycle", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.manageCyclesUC.Create(c.Request.Context(), usecases.CreateBillingCycleCommand{
		Label:      req.Label,
		Multiplier: req.Multiplier,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Billing cycle created successfully")
}

func (h *BillingCycleHandler) UpdateCycle(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBillingCycle, "billing cycle")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateBillingCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update billing cycle", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.manageCyclesUC.Update(c.Request.Context(), usecases.UpdateBillingCycleCommand{
		SID:        sid,
		Label:      req.Label,
		Multiplier: req.Multiplier,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Billing cycle updated successfully", result)
}

func (h *BillingCycleHandler) DeleteCycle(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBillingCycle, "billing cycle")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageCyclesUC.Delete(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *BillingCycleHandler) ListCycles(c *gin.Context) {
	result, err := h.manageCyclesUC.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *BillingCycleHandler) SetDefaultCycle(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBillingCycle, "billing cycle")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageCyclesUC.SetDefault(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Default billing cycle updated", nil)
}
