package routes

import (
	"github.com/gin-gonic/gin"

	"fixdesk/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
}

// SetupAuthRoutes configures the public authentication routes.
func SetupAuthRoutes(group *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := group.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/register", cfg.AuthHandler.Register)
	}
}
