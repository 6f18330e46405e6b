package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/application/pricing/usecases"
	"github.com/beacon-cms/beacon/internal/shared/id"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

type PricingSectionHandler struct {
	manageSectionsUC *usecases.ManagePricingSectionsUseCase
	resolveMatrixUC  *usecases.ResolveMatrixUseCase
	logger           logger.Interface
}

func NewPricingSectionHandler(
	manageSectionsUC *usecases.ManagePricingSectionsUseCase,
	resolveMatrixUC *usecases.ResolveMatrixUseCase,
) *PricingSectionHandler {
	return &PricingSectionHandler{
		manageSectionsUC: manageSectionsUC,
		resolveMatrixUC:  resolveMatrixUC,
		logger:           logger.NewLogger(),
	}
}

type CreatePricingSectionRequest struct {
	Name       string `json:"name" binding:"required"`
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	Layout     string `json:"layout"`
	Background string `json:"background"`
}

type UpdatePricingSectionRequest struct {
	Name       string `json:"name" binding:"required"`
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	Layout     string `json:"layout"`
	Background string `json:"background"`
}

type SectionPlanRequest struct {
	PlanID    string `json:"plan_id" binding:"required"`
	SortOrder int    `json:"sort_order"`
	IsVisible *bool  `json:"is_visible"`
}

type ReplaceSectionPlansRequest struct {
	Plans []SectionPlanRequest `json:"plans" binding:"required"`
}

func (h *PricingSectionHandler) CreateSection(c *gin.Context) {
	var req CreatePricingSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create pricing section", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.manageSectionsUC.Create(c.Request.Context(), usecases.CreatePricingSectionCommand{
		Name:       req.Name,
		Heading:    req.Heading,
		Subheading: req.Subheading,
		Layout:     req.Layout,
		Background: req.Background,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Pricing section created successfully")
}

func (h *PricingSectionHandler) UpdateSection(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPricingSection, "pricing section")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePricingSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update pricing section", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.manageSectionsUC.Update(c.Request.Context(), usecases.UpdatePricingSectionCommand{
		SID:        sid,
		Name:       req.Name,
		Heading:    req.Heading,
		Subheading: req.Subheading,
		Layout:     req.Layout,
		Background: req.Background,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pricing section updated successfully", result)
}

func (h *PricingSectionHandler) DeleteSection(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPricingSection, "pricing section")
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

func (h *PricingSectionHandler) GetSection(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPricingSection, "pricing section")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.manageSectionsUC.Get(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PricingSectionHandler) ListSections(c *gin.Context) {
	result, err := h.manageSectionsUC.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ReplaceSectionPlans swaps the full plan lineup of a section, order included.
func (h *PricingSectionHandler) ReplaceSectionPlans(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPricingSection, "pricing section")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReplaceSectionPlansRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for replace section plans", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	inputs := make([]usecases.SectionPlanInput, 0, len(req.Plans))
	for _, plan := range req.Plans {
		planSID, err := utils.ParseSID(plan.PlanID, id.PrefixPlan, "plan")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		visible := true
		if plan.IsVisible != nil {
			visible = *plan.IsVisible
		}
		inputs = append(inputs, usecases.SectionPlanInput{
			PlanSID:   planSID,
			SortOrder: plan.SortOrder,
			IsVisible: visible,
		})
	}

	if err := h.manageSectionsUC.ReplacePlans(c.Request.Context(), sid, inputs); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Section plans updated successfully", nil)
}

func (h *PricingSectionHandler) SetDefaultSection(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPricingSection, "pricing section")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageSectionsUC.SetDefault(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Default pricing section updated", nil)
}

// GetMatrix serves the public pricing matrix. An empty id resolves the
// default section; ?cycle= selects the billing cycle.
func (h *PricingSectionHandler) GetMatrix(c *gin.Context) {
	query := usecases.ResolveMatrixQuery{}

	if raw := c.Param("id"); raw != "" {
		sid, err := utils.ParseSID(raw, id.PrefixPricingSection, "pricing section")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		query.SectionSID = sid
	}

	if raw := c.Query("cycle"); raw != "" {
		cycleSID, err := utils.ParseSID(raw, id.PrefixBillingCycle, "billing cycle")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		query.CycleSID = cycleSID
	}

	result, err := h.resolveMatrixUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
