package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/interfaces/http/handlers"
)

// ContentRouteConfig holds dependencies for page and FAQ routes.
type ContentRouteConfig struct {
	PageHandler    *handlers.PageHandler
	SectionHandler *handlers.SectionHandler
	FAQHandler     *handlers.FAQHandler
	SiteHandler    *handlers.SiteHandler
}

// SetupPublicContentRoutes configures the public page endpoints.
func SetupPublicContentRoutes(engine *gin.Engine, api *gin.RouterGroup, cfg *ContentRouteConfig) {
	api.GET("/pages/:slug", cfg.PageHandler.GetComposedPage)
	api.GET("/pages/:slug/sections", cfg.SectionHandler.ListPublicSections)
	api.GET("/seo/audit", cfg.SiteHandler.AuditSEO)

	engine.GET("/sitemap.xml", cfg.SiteHandler.GetSitemap)
}

// SetupAdminContentRoutes configures the content admin endpoints.
func SetupAdminContentRoutes(admin *gin.RouterGroup, cfg *ContentRouteConfig) {
	pages := admin.Group("/pages")
	{
		pages.POST("", cfg.PageHandler.CreatePage)
		pages.GET("", cfg.PageHandler.ListPages)
		pages.GET("/:id", cfg.PageHandler.GetPage)
		pages.PUT("/:id", cfg.PageHandler.UpdatePage)
		pages.DELETE("/:id", cfg.PageHandler.DeletePage)

		pages.GET("/:id/sections", cfg.SectionHandler.ListSections)
		pages.PUT("/:id/sections/reorder", cfg.SectionHandler.ReorderSections)
	}

	sections := admin.Group("/sections")
	{
		sections.POST("", cfg.SectionHandler.CreateSection)
		sections.PUT("/:id", cfg.SectionHandler.UpdateSection)
		sections.PATCH("/:id/visibility", cfg.SectionHandler.SetVisibility)
		sections.DELETE("/:id", cfg.SectionHandler.DeleteSection)
	}

	faqCategories := admin.Group("/faq-categories")
	{
		faqCategories.POST("", cfg.FAQHandler.CreateCategory)
		faqCategories.GET("", cfg.FAQHandler.ListCategories)
		faqCategories.PUT("/:id", cfg.FAQHandler.UpdateCategory)
		faqCategories.DELETE("/:id", cfg.FAQHandler.DeleteCategory)
	}

	faqs := admin.Group("/faqs")
	{
		faqs.POST("", cfg.FAQHandler.CreateFAQ)
		faqs.GET("", cfg.FAQHandler.ListFAQs)
		faqs.PUT("/:id", cfg.FAQHandler.UpdateFAQ)
		faqs.DELETE("/:id", cfg.FAQHandler.DeleteFAQ)
	}
}
