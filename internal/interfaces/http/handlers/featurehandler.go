package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/application/pricing/usecases"
	"github.com/beacon-cms/beacon/internal/shared/id"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

// FeatureHandler covers the comparison-matrix vocabulary: feature types,
// per-plan feature limits, and checkmark basic features.
type FeatureHandler struct {
	manageTypesUC  *usecases.ManageFeatureTypesUseCase
	manageLimitsUC *usecases.ManageFeatureLimitsUseCase
	manageBasicUC  *usecases.ManageBasicFeaturesUseCase
	logger         logger.Interface
}

func NewFeatureHandler(
	manageTypesUC *usecases.ManageFeatureTypesUseCase,
	manageLimitsUC *usecases.ManageFeatureLimitsUseCase,
	manageBasicUC *usecases.ManageBasicFeaturesUseCase,
) *FeatureHandler {
	return &FeatureHandler{
		manageTypesUC:  manageTypesUC,
		manageLimitsUC: manageLimitsUC,
		manageBasicUC:  manageBasicUC,
		logger:         logger.NewLogger(),
	}
}

type CreateFeatureTypeRequest struct {
	Name      string `json:"name" binding:"required"`
	Unit      string `json:"unit"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

type UpdateFeatureTypeRequest struct {
	Name      string `json:"name" binding:"required"`
	Unit      string `json:"unit"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

type UpsertFeatureLimitRequest struct {
	PlanID        string `json:"plan_id" binding:"required"`
	FeatureTypeID string `json:"feature_type_id" binding:"required"`
	Value         string `json:"value"`
	IsUnlimited   bool   `json:"is_unlimited"`
}

type CreateBasicFeatureRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

type UpdateBasicFeatureRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

func (h *FeatureHandler) CreateFeatureType(c *gin.Context) {
	var req CreateFeatureTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create feature type", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.manageTypesUC.Create(c.Request.Context(), usecases.CreateFeatureTypeCommand{
		Name:      req.Name,
		Unit:      req.Unit,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Feature type created successfully")
}

func (h *FeatureHandler) UpdateFeatureType(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFeatureType, "feature type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateFeatureTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update feature type", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.manageTypesUC.Update(c.Request.Context(), usecases.UpdateFeatureTypeCommand{
		SID:       sid,
		Name:      req.Name,
		Unit:      req.Unit,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feature type updated successfully", result)
}

func (h *FeatureHandler) DeleteFeatureType(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFeatureType, "feature type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageTypesUC.Delete(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *FeatureHandler) ListFeatureTypes(c *gin.Context) {
	result, err := h.manageTypesUC.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *FeatureHandler) UpsertFeatureLimit(c *gin.Context) {
	var req UpsertFeatureLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for upsert feature limit", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	planSID, err := utils.ParseSID(req.PlanID, id.PrefixPlan, "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	typeSID, err := utils.ParseSID(req.FeatureTypeID, id.PrefixFeatureType, "feature type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.manageLimitsUC.Upsert(c.Request.Context(), usecases.UpsertFeatureLimitCommand{
		PlanSID:        planSID,
		FeatureTypeSID: typeSID,
		Value:          req.Value,
		IsUnlimited:    req.IsUnlimited,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feature limit saved successfully", result)
}

func (h *FeatureHandler) DeleteFeatureLimit(c *gin.Context) {
	limitID, err := parseUintParam(c, "id", "feature limit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageLimitsUC.Delete(c.Request.Context(), limitID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *FeatureHandler) ListFeatureLimits(c *gin.Context) {
	result, err := h.manageLimitsUC.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *FeatureHandler) CreateBasicFeature(c *gin.Context) {
	var req CreateBasicFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create basic feature", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.manageBasicUC.Create(c.Request.Context(), usecases.CreateBasicFeatureCommand{
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Basic feature created successfully")
}

func (h *FeatureHandler) UpdateBasicFeature(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBasicFeature, "basic feature")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateBasicFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update basic feature", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.manageBasicUC.Update(c.Request.Context(), usecases.UpdateBasicFeatureCommand{
		SID:       sid,
		Name:      req.Name,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Basic feature updated successfully", result)
}

func (h *FeatureHandler) DeleteBasicFeature(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBasicFeature, "basic feature")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageBasicUC.Delete(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *FeatureHandler) ListBasicFeatures(c *gin.Context) {
	result, err := h.manageBasicUC.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *FeatureHandler) AssignBasicFeature(c *gin.Context) {
	planSID, err := utils.ParseSIDParam(c, "id", id.PrefixPlan, "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	featureSID, err := utils.ParseSIDParam(c, "feature_id", id.PrefixBasicFeature, "basic feature")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageBasicUC.AssignToPlan(c.Request.Context(), planSID, featureSID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Basic feature assigned", nil)
}

func (h *FeatureHandler) RemoveBasicFeature(c *gin.Context) {
	planSID, err := utils.ParseSIDParam(c, "id", id.PrefixPlan, "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	featureSID, err := utils.ParseSIDParam(c, "feature_id", id.PrefixBasicFeature, "basic feature")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageBasicUC.RemoveFromPlan(c.Request.Context(), planSID, featureSID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
