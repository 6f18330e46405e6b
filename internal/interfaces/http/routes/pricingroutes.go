package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/interfaces/http/handlers"
)

// PricingRouteConfig holds dependencies for the pricing catalog routes.
type PricingRouteConfig struct {
	PlanHandler           *handlers.PlanHandler
	BillingCycleHandler   *handlers.BillingCycleHandler
	FeatureHandler        *handlers.FeatureHandler
	PlanPricingHandler    *handlers.PlanPricingHandler
	PricingSectionHandler *handlers.PricingSectionHandler
}

// SetupPublicPricingRoutes configures the public pricing matrix endpoints.
func SetupPublicPricingRoutes(api *gin.RouterGroup, cfg *PricingRouteConfig) {
	pricing := api.Group("/pricing")
	{
		// /matrix resolves the default section, /matrix/:id a specific one
		pricing.GET("/matrix", cfg.PricingSectionHandler.GetMatrix)
		pricing.GET("/matrix/:id", cfg.PricingSectionHandler.GetMatrix)
	}
}

// SetupAdminPricingRoutes configures the pricing catalog admin endpoints.
// The group is expected to carry the auth middleware already.
func SetupAdminPricingRoutes(admin *gin.RouterGroup, cfg *PricingRouteConfig) {
	plans := admin.Group("/plans")
	{
		plans.POST("", cfg.PlanHandler.CreatePlan)
		plans.GET("", cfg.PlanHandler.ListPlans)
		plans.GET("/:id", cfg.PlanHandler.GetPlan)
		plans.PUT("/:id", cfg.PlanHandler.UpdatePlan)
		plans.DELETE("/:id", cfg.PlanHandler.DeletePlan)

		plans.POST("/:id/basic-features/:feature_id", cfg.FeatureHandler.AssignBasicFeature)
		plans.DELETE("/:id/basic-features/:feature_id", cfg.FeatureHandler.RemoveBasicFeature)
	}

	cycles := admin.Group("/billing-cycles")
	{
		cycles.POST("", cfg.BillingCycleHandler.CreateCycle)
		cycles.GET("", cfg.BillingCycleHandler.ListCycles)
		cycles.PUT("/:id", cfg.BillingCycleHandler.UpdateCycle)
		cycles.DELETE("/:id", cfg.BillingCycleHandler.DeleteCycle)
		cycles.POST("/:id/default", cfg.BillingCycleHandler.SetDefaultCycle)
	}

	featureTypes := admin.Group("/feature-types")
	{
		featureTypes.POST("", cfg.FeatureHandler.CreateFeatureType)
		featureTypes.GET("", cfg.FeatureHandler.ListFeatureTypes)
		featureTypes.PUT("/:id", cfg.FeatureHandler.UpdateFeatureType)
		featureTypes.DELETE("/:id", cfg.FeatureHandler.DeleteFeatureType)
	}

	featureLimits := admin.Group("/feature-limits")
	{
		featureLimits.PUT("", cfg.FeatureHandler.UpsertFeatureLimit)
		featureLimits.GET("", cfg.FeatureHandler.ListFeatureLimits)
		featureLimits.DELETE("/:id", cfg.FeatureHandler.DeleteFeatureLimit)
	}

	basicFeatures := admin.Group("/basic-features")
	{
		basicFeatures.POST("", cfg.FeatureHandler.CreateBasicFeature)
		basicFeatures.GET("", cfg.FeatureHandler.ListBasicFeatures)
		basicFeatures.PUT("/:id", cfg.FeatureHandler.UpdateBasicFeature)
		basicFeatures.DELETE("/:id", cfg.FeatureHandler.DeleteBasicFeature)
	}

	pricings := admin.Group("/plan-pricings")
	{
		pricings.POST("", cfg.PlanPricingHandler.CreatePricing)
		pricings.GET("", cfg.PlanPricingHandler.ListPricings)
		pricings.PUT("/:id", cfg.PlanPricingHandler.UpdatePricing)
		pricings.DELETE("/:id", cfg.PlanPricingHandler.DeletePricing)
	}

	sections := admin.Group("/pricing-sections")
	{
		sections.POST("", cfg.PricingSectionHandler.CreateSection)
		sections.GET("", cfg.PricingSectionHandler.ListSections)
		sections.GET("/:id", cfg.PricingSectionHandler.GetSection)
		sections.PUT("/:id", cfg.PricingSectionHandler.UpdateSection)
		sections.DELETE("/:id", cfg.PricingSectionHandler.DeleteSection)
		sections.PUT("/:id/plans", cfg.PricingSectionHandler.ReplaceSectionPlans)
		sections.POST("/:id/default", cfg.PricingSectionHandler.SetDefaultSection)
	}
}
