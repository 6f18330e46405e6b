package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/interfaces/http/handlers"
	"github.com/beacon-cms/beacon/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for admin auth routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures admin auth routes.
func SetupAuthRoutes(admin *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := admin.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetCurrentAdmin)
	}
}
