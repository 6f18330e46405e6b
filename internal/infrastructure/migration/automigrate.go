package migration

import (
	"github.com/beacon-cms/beacon/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PlanModel{},
		&models.BillingCycleModel{},
		&models.PlanPricingModel{},
		&models.FeatureTypeModel{},
		&models.FeatureLimitModel{},
		&models.BasicFeatureModel{},
		&models.PlanBasicFeatureModel{},
		&models.PricingSectionModel{},
		&models.PricingSectionPlanModel{},
		&models.PageModel{},
		&models.PageSectionModel{},
		&models.FAQCategoryModel{},
		&models.FAQModel{},
		&models.FormModel{},
		&models.FormFieldModel{},
		&models.FormSubmissionModel{},
		&models.NewsletterSubscriberModel{},
		&models.SiteSettingModel{},
	}
}
