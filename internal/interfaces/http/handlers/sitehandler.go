package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/application/content/usecases"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

// SiteHandler serves site-wide surfaces: the sitemap, the SEO audit, and the
// health probe.
type SiteHandler struct {
	generateSitemapUC *usecases.GenerateSitemapUseCase
	auditSEOUC        *usecases.AuditSEOUseCase
	logger            logger.Interface
}

func NewSiteHandler(
	generateSitemapUC *usecases.GenerateSitemapUseCase,
	auditSEOUC *usecases.AuditSEOUseCase,
) *SiteHandler {
	return &SiteHandler{
		generateSitemapUC: generateSitemapUC,
		auditSEOUC:        auditSEOUC,
		logger:            logger.NewLogger(),
	}
}

func (h *SiteHandler) GetSitemap(c *gin.Context) {
	body, err := h.generateSitemapUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (h *SiteHandler) AuditSEO(c *gin.Context) {
	result, err := h.auditSEOUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SiteHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
