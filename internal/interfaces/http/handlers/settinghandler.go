package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/application/setting/usecases"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

type SettingHandler struct {
	manageSettingsUC *usecases.ManageSettingsUseCase
	logger           logger.Interface
}

func NewSettingHandler(manageSettingsUC *usecases.ManageSettingsUseCase) *SettingHandler {
	return &SettingHandler{
		manageSettingsUC: manageSettingsUC,
		logger:           logger.NewLogger(),
	}
}

type UpsertSettingRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

func (h *SettingHandler) GetSetting(c *gin.Context) {
	key := c.Param("key")

	result, err := h.manageSettingsUC.Get(c.Request.Context(), key)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SettingHandler) UpsertSetting(c *gin.Context) {
	key := c.Param("key")

	var req UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for upsert setting", "error", err, "key", key)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.manageSettingsUC.Upsert(c.Request.Context(), key, req.Value)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Setting saved successfully", result)
}

func (h *SettingHandler) ListSettings(c *gin.Context) {
	result, err := h.manageSettingsUC.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SettingHandler) DeleteSetting(c *gin.Context) {
	key := c.Param("key")

	if err := h.manageSettingsUC.Delete(c.Request.Context(), key); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
