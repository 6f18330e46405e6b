package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/interfaces/http/handlers"
	"github.com/beacon-cms/beacon/internal/interfaces/http/middleware"
)

// FormRouteConfig holds dependencies for form routes.
type FormRouteConfig struct {
	FormHandler       *handlers.FormHandler
	SubmitRateLimiter *middleware.SubmitRateLimiter
}

// SetupPublicFormRoutes configures the public form endpoints.
func SetupPublicFormRoutes(api *gin.RouterGroup, cfg *FormRouteConfig) {
	forms := api.Group("/forms")
	{
		forms.POST("/submit", cfg.SubmitRateLimiter.Limit(), cfg.FormHandler.SubmitForm)
		forms.GET("/:slug", cfg.FormHandler.GetPublicForm)
	}

	api.POST("/newsletter/unsubscribe", cfg.FormHandler.Unsubscribe)
}

// SetupAdminFormRoutes configures the form admin endpoints.
func SetupAdminFormRoutes(admin *gin.RouterGroup, cfg *FormRouteConfig) {
	forms := admin.Group("/forms")
	{
		forms.POST("", cfg.FormHandler.CreateForm)
		forms.GET("", cfg.FormHandler.ListForms)
		forms.GET("/:id", cfg.FormHandler.GetForm)
		forms.PUT("/:id", cfg.FormHandler.UpdateForm)
		forms.DELETE("/:id", cfg.FormHandler.DeleteForm)
		forms.PUT("/:id/fields", cfg.FormHandler.ReplaceFields)

		forms.GET("/:id/submissions", cfg.FormHandler.ListSubmissions)
	}

	submissions := admin.Group("/submissions")
	{
		submissions.GET("/:id", cfg.FormHandler.GetSubmission)
		submissions.DELETE("/:id", cfg.FormHandler.DeleteSubmission)
	}

	admin.GET("/newsletter/subscribers", cfg.FormHandler.ListNewsletterSubscribers)
}
