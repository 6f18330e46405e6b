package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/id"
)

// ParseSIDParam parses a Stripe-style prefixed ID from a URL path parameter
// and returns the bare short ID the repositories key on.
// paramName is the Gin route parameter name (e.g., "id", "plan_id").
// prefix is the expected SID prefix (e.g., id.PrefixPlan).
// entityName is used in error messages (e.g., "plan", "billing cycle").
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}

	shortID, err := id.ExtractShortID(sid, prefix)
	if err != nil {
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}

	return shortID, nil
}

// ParseSID validates a prefixed ID from a request body and returns the short ID.
func ParseSID(sid, prefix, entityName string) (string, error) {
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}

	shortID, err := id.ExtractShortID(sid, prefix)
	if err != nil {
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}

	return shortID, nil
}

// ParsePagination extracts page and page_size query parameters with defaults.
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			pageSize = n
		}
	}
	return page, pageSize
}
