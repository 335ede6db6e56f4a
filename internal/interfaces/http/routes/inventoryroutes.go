package routes

import (
	"github.com/gin-gonic/gin"

	inventoryHandlers "github.com/garagehq/shopapi/internal/interfaces/http/handlers/inventory"
	"github.com/garagehq/shopapi/internal/interfaces/http/middleware"
	"github.com/garagehq/shopapi/internal/shared/authorization"
)

type InventoryRouteConfig struct {
	InventoryHandler *inventoryHandlers.Handler
	AuthMiddleware   *middleware.AuthMiddleware
	Cache            gin.HandlerFunc
	// MutationLimit throttles part creation and deletion per client.
	MutationLimit gin.HandlerFunc
}

// SetupInventoryRoutes configures inventory routes. Every route needs a
// token; writes additionally need the mechanic or admin role.
func SetupInventoryRoutes(engine *gin.Engine, cfg *InventoryRouteConfig) {
	staff := cfg.AuthMiddleware.RequireRole(authorization.RoleMechanic, authorization.RoleAdmin)

	inventory := engine.Group("/inventory")
	inventory.Use(cfg.AuthMiddleware.RequireAuth())
	{
		inventory.GET("/", cfg.Cache, cfg.InventoryHandler.ListParts)
		inventory.POST("/", cfg.MutationLimit, staff, cfg.InventoryHandler.CreatePart)

		inventory.GET("/:id", cfg.InventoryHandler.GetPart)
		inventory.PUT("/:id", staff, cfg.InventoryHandler.UpdatePart)
		inventory.DELETE("/:id", cfg.MutationLimit, staff, cfg.InventoryHandler.DeletePart)
	}
}
