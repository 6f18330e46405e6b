package http

import (
	"github.com/beacon-cms/beacon/internal/domain/catalog"
	"github.com/beacon-cms/beacon/internal/domain/content"
	"github.com/beacon-cms/beacon/internal/domain/form"
	"github.com/beacon-cms/beacon/internal/domain/setting"
	"github.com/beacon-cms/beacon/internal/infrastructure/repository"
)

type repositories struct {
	plan           catalog.PlanRepository
	billingCycle   catalog.BillingCycleRepository
	planPricing    catalog.PlanPricingRepository
	featureType    catalog.FeatureTypeRepository
	featureLimit   catalog.FeatureLimitRepository
	basicFeature   catalog.BasicFeatureRepository
	pricingSection catalog.PricingSectionRepository

	page        content.PageRepository
	pageSection content.PageSectionRepository
	faqCategory content.FAQCategoryRepository
	faq         content.FAQRepository

	form       form.FormRepository
	submission form.SubmissionRepository
	newsletter form.NewsletterRepository

	siteSetting setting.SiteSettingRepository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		plan:           repository.NewPlanRepository(c.db, c.log),
		billingCycle:   repository.NewBillingCycleRepository(c.db, c.log),
		planPricing:    repository.NewPlanPricingRepository(c.db, c.log),
		featureType:    repository.NewFeatureTypeRepository(c.db, c.log),
		featureLimit:   repository.NewFeatureLimitRepository(c.db, c.log),
		basicFeature:   repository.NewBasicFeatureRepository(c.db, c.log),
		pricingSection: repository.NewPricingSectionRepository(c.db, c.log),

		page:        repository.NewPageRepository(c.db, c.log),
		pageSection: repository.NewPageSectionRepository(c.db, c.log),
		faqCategory: repository.NewFAQCategoryRepository(c.db, c.log),
		faq:         repository.NewFAQRepository(c.db, c.log),

		form:       repository.NewFormRepository(c.db, c.log),
		submission: repository.NewSubmissionRepository(c.db, c.log),
		newsletter: repository.NewNewsletterRepository(c.db, c.log),

		siteSetting: repository.NewSiteSettingRepository(c.db, c.log),
	}
}
