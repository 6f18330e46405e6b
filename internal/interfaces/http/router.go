package http

import (
	"github.com/beacon-cms/beacon/internal/interfaces/http/middleware"
	"github.com/beacon-cms/beacon/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.hdlrs.site.HealthCheck)

	pricingCfg := &routes.PricingRouteConfig{
		PlanHandler:           c.hdlrs.plan,
		BillingCycleHandler:   c.hdlrs.billingCycle,
		FeatureHandler:        c.hdlrs.feature,
		PlanPricingHandler:    c.hdlrs.planPricing,
		PricingSectionHandler: c.hdlrs.pricingSection,
	}
	contentCfg := &routes.ContentRouteConfig{
		PageHandler:    c.hdlrs.page,
		SectionHandler: c.hdlrs.section,
		FAQHandler:     c.hdlrs.faq,
		SiteHandler:    c.hdlrs.site,
	}
	formCfg := &routes.FormRouteConfig{
		FormHandler:       c.hdlrs.form,
		SubmitRateLimiter: c.submitRateLimiter,
	}

	api := c.engine.Group("/api")
	{
		routes.SetupPublicContentRoutes(c.engine, api, contentCfg)
		routes.SetupPublicPricingRoutes(api, pricingCfg)
		routes.SetupPublicFormRoutes(api, formCfg)
	}

	admin := c.engine.Group("/api/admin")
	routes.SetupAuthRoutes(admin, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.auth,
		AuthMiddleware: c.authMiddleware,
	})

	adminProtected := admin.Group("")
	adminProtected.Use(c.authMiddleware.RequireAuth())
	{
		routes.SetupAdminPricingRoutes(adminProtected, pricingCfg)
		routes.SetupAdminContentRoutes(adminProtected, contentCfg)
		routes.SetupAdminFormRoutes(adminProtected, formCfg)
		routes.SetupSettingRoutes(adminProtected, &routes.SettingRouteConfig{
			SettingHandler: c.hdlrs.setting,
		})
	}
}
