package http

import (
	"github.com/beacon-cms/beacon/internal/interfaces/http/handlers"
)

type allHandlers struct {
	auth           *handlers.AuthHandler
	plan           *handlers.PlanHandler
	billingCycle   *handlers.BillingCycleHandler
	feature        *handlers.FeatureHandler
	planPricing    *handlers.PlanPricingHandler
	pricingSection *handlers.PricingSectionHandler
	page           *handlers.PageHandler
	section        *handlers.SectionHandler
	faq            *handlers.FAQHandler
	form           *handlers.FormHandler
	setting        *handlers.SettingHandler
	site           *handlers.SiteHandler
}

func (c *Container) initHandlers() {
	ucs := c.ucs

	c.hdlrs = &allHandlers{
		auth:         handlers.NewAuthHandler(c.jwtSvc, c.hasher, c.cfg.Auth.Admin),
		plan:         handlers.NewPlanHandler(ucs.createPlan, ucs.updatePlan, ucs.deletePlan, ucs.getPlan, ucs.listPlans),
		billingCycle: handlers.NewBillingCycleHandler(ucs.manageBillingCycles),
		feature:      handlers.NewFeatureHandler(ucs.manageFeatureTypes, ucs.manageFeatureLimits, ucs.manageBasicFeatures),
		planPricing:  handlers.NewPlanPricingHandler(ucs.managePlanPricing),
		pricingSection: handlers.NewPricingSectionHandler(
			ucs.managePricingSections, ucs.resolveMatrix,
		),
		page:    handlers.NewPageHandler(ucs.managePages, ucs.composePage),
		section: handlers.NewSectionHandler(ucs.manageSections),
		faq:     handlers.NewFAQHandler(ucs.manageFAQs),
		form: handlers.NewFormHandler(
			ucs.manageForms, ucs.getPublicForm, ucs.submitForm,
			ucs.manageSubmissions, ucs.manageNewsletter,
		),
		setting: handlers.NewSettingHandler(ucs.manageSettings),
		site:    handlers.NewSiteHandler(ucs.generateSitemap, ucs.auditSEO),
	}
}
