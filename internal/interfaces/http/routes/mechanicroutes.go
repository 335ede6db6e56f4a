package routes

import (
	"github.com/gin-gonic/gin"

	mechanicHandlers "github.com/garagehq/shopapi/internal/interfaces/http/handlers/mechanic"
	"github.com/garagehq/shopapi/internal/interfaces/http/middleware"
)

type MechanicRouteConfig struct {
	MechanicHandler *mechanicHandlers.Handler
	AuthMiddleware  *middleware.AuthMiddleware
	Cache           gin.HandlerFunc
}

// SetupMechanicRoutes configures mechanic routes. Reads are public; the
// collection and leaderboard are served through the response cache.
func SetupMechanicRoutes(engine *gin.Engine, cfg *MechanicRouteConfig) {
	mechanics := engine.Group("/mechanics")
	{
		mechanics.GET("/", cfg.Cache, cfg.MechanicHandler.ListMechanics)
		mechanics.GET("/leaderboard", cfg.Cache, cfg.MechanicHandler.Leaderboard)
		mechanics.GET("/:id", cfg.MechanicHandler.GetMechanic)

		mechanics.POST("/", cfg.AuthMiddleware.RequireAuth(), cfg.MechanicHandler.CreateMechanic)
		mechanics.PUT("/:id", cfg.AuthMiddleware.RequireAuth(), cfg.MechanicHandler.UpdateMechanic)
		mechanics.DELETE("/:id", cfg.AuthMiddleware.RequireAuth(), cfg.MechanicHandler.DeleteMechanic)
	}
}
