package http

import (
	contentusecases "github.com/beacon-cms/beacon/internal/application/content/usecases"
	formusecases "github.com/beacon-cms/beacon/internal/application/form/usecases"
	pricingusecases "github.com/beacon-cms/beacon/internal/application/pricing/usecases"
	settingusecases "github.com/beacon-cms/beacon/internal/application/setting/usecases"
)

type allUseCases struct {
	createPlan            *pricingusecases.CreatePlanUseCase
	updatePlan            *pricingusecases.UpdatePlanUseCase
	deletePlan            *pricingusecases.DeletePlanUseCase
	getPlan               *pricingusecases.GetPlanUseCase
	listPlans             *pricingusecases.ListPlansUseCase
	manageBillingCycles   *pricingusecases.ManageBillingCyclesUseCase
	managePlanPricing     *pricingusecases.ManagePlanPricingUseCase
	manageFeatureTypes    *pricingusecases.ManageFeatureTypesUseCase
	manageFeatureLimits   *pricingusecases.ManageFeatureLimitsUseCase
	manageBasicFeatures   *pricingusecases.ManageBasicFeaturesUseCase
	managePricingSections *pricingusecases.ManagePricingSectionsUseCase
	resolveMatrix         *pricingusecases.ResolveMatrixUseCase

	managePages     *contentusecases.ManagePagesUseCase
	manageSections  *contentusecases.ManageSectionsUseCase
	manageFAQs      *contentusecases.ManageFAQsUseCase
	composePage     *contentusecases.ComposePageUseCase
	generateSitemap *contentusecases.GenerateSitemapUseCase
	auditSEO        *contentusecases.AuditSEOUseCase

	manageForms       *formusecases.ManageFormsUseCase
	getPublicForm     *formusecases.GetPublicFormUseCase
	submitForm        *formusecases.SubmitFormUseCase
	manageSubmissions *formusecases.ManageSubmissionsUseCase
	manageNewsletter  *formusecases.ManageNewsletterUseCase

	manageSettings *settingusecases.ManageSettingsUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	ucs := &allUseCases{}

	ucs.createPlan = pricingusecases.NewCreatePlanUseCase(r.plan, c.log)
	ucs.updatePlan = pricingusecases.NewUpdatePlanUseCase(r.plan, c.log)
	ucs.deletePlan = pricingusecases.NewDeletePlanUseCase(r.plan, c.log)
	ucs.getPlan = pricingusecases.NewGetPlanUseCase(r.plan, c.log)
	ucs.listPlans = pricingusecases.NewListPlansUseCase(r.plan, c.log)
	ucs.manageBillingCycles = pricingusecases.NewManageBillingCyclesUseCase(r.billingCycle, c.log)
	ucs.managePlanPricing = pricingusecases.NewManagePlanPricingUseCase(r.planPricing, r.plan, r.billingCycle, c.log)
	ucs.manageFeatureTypes = pricingusecases.NewManageFeatureTypesUseCase(r.featureType, c.log)
	ucs.manageFeatureLimits = pricingusecases.NewManageFeatureLimitsUseCase(r.featureLimit, r.plan, r.featureType, c.log)
	ucs.manageBasicFeatures = pricingusecases.NewManageBasicFeaturesUseCase(r.basicFeature, r.plan, c.log)
	ucs.managePricingSections = pricingusecases.NewManagePricingSectionsUseCase(r.pricingSection, r.plan, c.log)
	ucs.resolveMatrix = pricingusecases.NewResolveMatrixUseCase(
		r.pricingSection, r.plan, r.billingCycle, r.planPricing,
		r.featureType, r.featureLimit, r.basicFeature, c.log,
	)

	registry := contentusecases.NewRendererRegistry(r.faq, r.form, ucs.resolveMatrix, c.markdown)

	ucs.managePages = contentusecases.NewManagePagesUseCase(r.page, c.pageCache, c.log)
	ucs.manageSections = contentusecases.NewManageSectionsUseCase(
		r.pageSection, r.page, r.faqCategory, r.pricingSection, r.form, c.pageCache, c.log,
	)
	ucs.manageFAQs = contentusecases.NewManageFAQsUseCase(r.faqCategory, r.faq, c.pageCache, c.log)
	ucs.composePage = contentusecases.NewComposePageUseCase(r.page, r.pageSection, registry, c.pageCache, c.log)
	ucs.generateSitemap = contentusecases.NewGenerateSitemapUseCase(r.page, c.cfg.Site.BaseURL, c.log)
	ucs.auditSEO = contentusecases.NewAuditSEOUseCase(r.page, r.pageSection, c.log)

	// a typed nil would defeat the sender == nil check inside the usecase
	var sender formusecases.NotificationSender
	if c.emailSvc != nil {
		sender = c.emailSvc
	}

	ucs.manageForms = formusecases.NewManageFormsUseCase(r.form, c.log)
	ucs.getPublicForm = formusecases.NewGetPublicFormUseCase(r.form, c.log)
	ucs.submitForm = formusecases.NewSubmitFormUseCase(r.form, r.submission, r.newsletter, sender, c.log)
	ucs.manageSubmissions = formusecases.NewManageSubmissionsUseCase(r.submission, r.form, c.log)
	ucs.manageNewsletter = formusecases.NewManageNewsletterUseCase(r.newsletter, c.log)

	ucs.manageSettings = settingusecases.NewManageSettingsUseCase(r.siteSetting, c.log)

	c.ucs = ucs
}
