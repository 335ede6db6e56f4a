package http

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/garagehq/shopapi/internal/infrastructure/auth"
	"github.com/garagehq/shopapi/internal/infrastructure/cache"
	"github.com/garagehq/shopapi/internal/infrastructure/email"
	"github.com/garagehq/shopapi/internal/infrastructure/permission"
	"github.com/garagehq/shopapi/internal/infrastructure/ratelimit"
	"github.com/garagehq/shopapi/internal/interfaces/http/middleware"
	"github.com/garagehq/shopapi/internal/shared/db"
	"github.com/garagehq/shopapi/internal/shared/services/markdown"
)

const responseCachePrefix = "shopapi:cache:"

// notificationMailer covers every mail the use cases send.
type notificationMailer interface {
	SendWelcomeEmail(to, name string) error
	SendTicketStatusEmail(to, name string, ticketID uint, status string) error
}

// initServices builds the infrastructure services shared by use cases and
// middleware: tokens, hashing, policy, markdown, mail, redis stores.
func (c *Container) initServices() error {
	c.txMgr = db.NewTransactionManager(c.db)
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.TTL())
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.markdown = markdown.NewMarkdownService()

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.EnsureDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed default policies: %w", err)
	}
	c.enforcer = enforcer

	if c.cfg.Email.Enabled {
		c.mailer = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        c.cfg.Email.SMTPHost,
			Port:        c.cfg.Email.SMTPPort,
			Username:    c.cfg.Email.SMTPUser,
			Password:    c.cfg.Email.SMTPPassword,
			FromAddress: c.cfg.Email.FromAddress,
			FromName:    c.cfg.Email.FromName,
		})
		c.log.Infow("smtp mail enabled", "host", c.cfg.Email.SMTPHost, "port", c.cfg.Email.SMTPPort)
	} else {
		c.mailer = email.NewNoopEmailService(c.log)
	}

	if c.redis == nil {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		c.ownsRedis = true
	}

	return nil
}

// initMiddlewares builds the auth, rate limit and cache middleware. Disabled
// features resolve to pass-through handlers so route tables stay the same.
func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc)

	if c.cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(ratelimit.NewRedisRateLimiter(c.redis), c.log)
		c.mutationLimit = limiter.Limit("mutation", ratelimit.Quota{
			Limit:  c.cfg.RateLimit.Mutation.Limit,
			Window: c.cfg.RateLimit.Mutation.Window(),
		})
		c.authLimit = limiter.Limit("auth", ratelimit.Quota{
			Limit:  c.cfg.RateLimit.Auth.Limit,
			Window: c.cfg.RateLimit.Auth.Window(),
		})
	} else {
		c.mutationLimit = passThrough
		c.authLimit = passThrough
	}

	if c.cfg.Cache.Enabled {
		store := cache.NewRedisResponseStore(c.redis, responseCachePrefix)
		c.cached = middleware.NewResponseCache(store, c.cfg.Cache.TTL(), c.log).Cache()
	} else {
		c.cached = passThrough
	}
}
