package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/interfaces/http/handlers"
)

// SettingRouteConfig holds dependencies for site setting routes.
type SettingRouteConfig struct {
	SettingHandler *handlers.SettingHandler
}

// SetupSettingRoutes configures the site setting admin endpoints.
func SetupSettingRoutes(admin *gin.RouterGroup, cfg *SettingRouteConfig) {
	settings := admin.Group("/settings")
	{
		settings.GET("", cfg.SettingHandler.ListSettings)
		settings.GET("/:key", cfg.SettingHandler.GetSetting)
		settings.PUT("/:key", cfg.SettingHandler.UpsertSetting)
		settings.DELETE("/:key", cfg.SettingHandler.DeleteSetting)
	}
}
