package routes

import (
	"github.com/gin-gonic/gin"

	userHandlers "github.com/garagehq/shopapi/internal/interfaces/http/handlers/user"
	"github.com/garagehq/shopapi/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for account and user management routes.
type UserRouteConfig struct {
	UserHandler    *userHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	// AuthLimit throttles signup and login per client.
	AuthLimit gin.HandlerFunc
}

// SetupUserRoutes configures user routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	{
		// Public account endpoints
		users.POST("/", cfg.AuthLimit, cfg.UserHandler.Signup)
		users.POST("/signup", cfg.AuthLimit, cfg.UserHandler.Signup)
		users.POST("/login", cfg.AuthLimit, cfg.UserHandler.Login)

		authed := users.Group("")
		authed.Use(cfg.AuthMiddleware.RequireAuth())
		{
			authed.GET("/", cfg.UserHandler.ListUsers)
			// Named endpoints must come BEFORE /:id
			authed.GET("/my-tickets", cfg.UserHandler.MyTickets)

			authed.GET("/:id", cfg.UserHandler.GetUser)
			authed.PUT("/:id", cfg.UserHandler.UpdateUser)
			authed.DELETE("/:id", cfg.UserHandler.DeleteUser)
		}
	}
}
