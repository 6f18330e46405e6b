package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/application/pricing/usecases"
	"github.com/beacon-cms/beacon/internal/shared/id"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

type PlanPricingHandler struct {
	managePricingUC *usecases.ManagePlanPricingUseCase
	logger          logger.Interface
}

func NewPlanPricingHandler(managePricingUC *usecases.ManagePlanPricingUseCase) *PlanPricingHandler {
	return &PlanPricingHandler{
		managePricingUC: managePricingUC,
		logger:          logger.NewLogger(),
	}
}

type CreatePlanPricingRequest struct {
	PlanID        string `json:"plan_id" binding:"required"`
	CycleID       string `json:"cycle_id" binding:"required"`
	PriceCents    int64  `json:"price_cents" binding:"min=0"`
	StripePriceID string `json:"stripe_price_id"`
	CTAURL        string `json:"cta_url"`
}

type UpdatePlanPricingRequest struct {
	PriceCents    int64  `json:"price_cents" binding:"min=0"`
	StripePriceID string `json:"stripe_price_id"`
	CTAURL        string `json:"cta_url"`
}

func (h *PlanPricingHandler) CreatePricing(c *gin.Context) {
	var req CreatePlanPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan pricing", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	planSID, err := utils.ParseSID(req.PlanID, id.PrefixPlan, "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	cycleSID, err := utils.ParseSID(req.CycleID, id.PrefixBillingCycle, "billing cycle")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.managePricingUC.Create(c.Request.Context(), usecases.CreatePlanPricingCommand{
		PlanSID:       planSID,
		CycleSID:      cycleSID,
		PriceCents:    req.PriceCents,
		StripePriceID: req.StripePriceID,
		CTAURL:        req.CTAURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan pricing created successfully")
}

func (h *PlanPricingHandler) UpdatePricing(c *gin.Context) {
	pricingID, err := parseUintParam(c, "id", "plan pricing")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan pricing", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.managePricingUC.Update(c.Request.Context(), usecases.UpdatePlanPricingCommand{
		PricingID:     pricingID,
		PriceCents:    req.PriceCents,
		StripePriceID: req.StripePriceID,
		CTAURL:        req.CTAURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan pricing updated successfully", result)
}

func (h *PlanPricingHandler) DeletePricing(c *gin.Context) {
	pricingID, err := parseUintParam(c, "id", "plan pricing")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.managePricingUC.Delete(c.Request.Context(), pricingID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *PlanPricingHandler) ListPricings(c *gin.Context) {
	result, err := h.managePricingUC.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
