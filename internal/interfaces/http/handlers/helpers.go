package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/shared/errors"
)

// parseUintParam reads a numeric path parameter for entities addressed by
// internal ID rather than a public SID.
func parseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(value), nil
}
