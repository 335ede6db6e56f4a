package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/garagehq/shopapi/internal/infrastructure/auth"
	"github.com/garagehq/shopapi/internal/infrastructure/config"
	"github.com/garagehq/shopapi/internal/infrastructure/permission"
	"github.com/garagehq/shopapi/internal/interfaces/http/middleware"
	"github.com/garagehq/shopapi/internal/shared/db"
	"github.com/garagehq/shopapi/internal/shared/logger"
	"github.com/garagehq/shopapi/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers, wired together once at startup.
type Container struct {
	// Core infrastructure
	engine    *gin.Engine
	db        *gorm.DB
	cfg       *config.Config
	log       logger.Interface
	redis     redis.UniversalClient
	ownsRedis bool

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	mutationLimit  gin.HandlerFunc
	authLimit      gin.HandlerFunc
	cached         gin.HandlerFunc

	// Shared services
	txMgr    *db.TransactionManager
	jwtSvc   *auth.JWTService
	hasher   *auth.BcryptPasswordHasher
	enforcer *permission.Enforcer
	markdown markdown.MarkdownService
	mailer   notificationMailer
}

// NewContainer wires every dependency. rdb may be nil, in which case a
// client is built from cfg.Redis and closed by Close.
func NewContainer(gdb *gorm.DB, rdb redis.UniversalClient, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
		redis:  rdb,
	}

	// Section 1: Infrastructure - tokens, policy, mail, redis
	if err := c.initServices(); err != nil {
		return nil, err
	}

	// Section 2: Repositories
	c.initRepositories()

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers and middlewares
	if err := c.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to build handlers: %w", err)
	}
	c.initMiddlewares()

	return c, nil
}

// Close releases resources the container created itself.
func (c *Container) Close() error {
	if c.ownsRedis && c.redis != nil {
		return c.redis.Close()
	}
	return nil
}

func passThrough(c *gin.Context) {
	c.Next()
}
