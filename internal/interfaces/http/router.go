package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/garagehq/shopapi/docs"
	"github.com/garagehq/shopapi/internal/infrastructure/config"
	"github.com/garagehq/shopapi/internal/interfaces/http/middleware"
	"github.com/garagehq/shopapi/internal/interfaces/http/routes"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(gdb *gorm.DB, rdb redis.UniversalClient, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(gdb, rdb, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/ping", r.hdlrs.healthHandler.Ping)
	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/version", r.hdlrs.healthHandler.Version)

	if r.cfg.Server.Mode != gin.ReleaseMode {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.hdlrs.userHandler,
		AuthMiddleware: r.authMiddleware,
		AuthLimit:      r.authLimit,
	})

	routes.SetupMechanicRoutes(r.engine, &routes.MechanicRouteConfig{
		MechanicHandler: r.hdlrs.mechanicHandler,
		AuthMiddleware:  r.authMiddleware,
		Cache:           r.cached,
	})

	routes.SetupInventoryRoutes(r.engine, &routes.InventoryRouteConfig{
		InventoryHandler: r.hdlrs.inventoryHandler,
		AuthMiddleware:   r.authMiddleware,
		Cache:            r.cached,
		MutationLimit:    r.mutationLimit,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.hdlrs.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Shutdown releases the resources held by the router.
func (r *Router) Shutdown() {
	if err := r.Close(); err != nil {
		r.log.Warnw("failed to close redis client", "error", err)
	}
}
