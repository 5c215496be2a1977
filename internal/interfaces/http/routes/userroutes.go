package routes

import (
	"github.com/gin-gonic/gin"

	"fixdesk/internal/interfaces/http/handlers"
	"fixdesk/internal/interfaces/http/middleware"
	"fixdesk/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for user management routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures user management routes. Listing is open to
// any authenticated user so clients can resolve note authors; deletion
// is admin only.
func SetupUserRoutes(group *gin.RouterGroup, cfg *UserRouteConfig) {
	users := group.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", cfg.UserHandler.ListUsers)
		users.DELETE("/:id", authorization.RequireAdmin(), cfg.UserHandler.DeleteUser)
	}
}
