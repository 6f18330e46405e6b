package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/beacon-cms/beacon/internal/infrastructure/auth"
	"github.com/beacon-cms/beacon/internal/infrastructure/cache"
	"github.com/beacon-cms/beacon/internal/infrastructure/config"
	"github.com/beacon-cms/beacon/internal/infrastructure/email"
	"github.com/beacon-cms/beacon/internal/infrastructure/ratelimit"
	"github.com/beacon-cms/beacon/internal/interfaces/http/middleware"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/services/markdown"
)

// Container wires infrastructure, repositories, use cases, and handlers
// together and exposes the configured Gin engine.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware    *middleware.AuthMiddleware
	submitRateLimiter *middleware.SubmitRateLimiter

	jwtSvc    *auth.JWTService
	hasher    *auth.BcryptPasswordHasher
	emailSvc  *email.SMTPEmailService
	markdown  markdown.MarkdownService
	pageCache *cache.PageCache
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.initInfrastructure()
	c.initRepositories()
	c.initUseCases()
	c.initHandlers()

	return c
}

func (c *Container) initInfrastructure() {
	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	cacheTTL := time.Duration(c.cfg.Site.PageCacheTTL) * time.Second
	c.pageCache = cache.NewPageCache(c.redis, cacheTTL, c.log)

	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Admin.BcryptCost)
	c.markdown = markdown.NewMarkdownService()

	if c.cfg.Email.SMTPHost != "" {
		c.emailSvc = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        c.cfg.Email.SMTPHost,
			Port:        c.cfg.Email.SMTPPort,
			Username:    c.cfg.Email.SMTPUser,
			Password:    c.cfg.Email.SMTPPassword,
			FromAddress: c.cfg.Email.FromAddress,
			FromName:    c.cfg.Email.FromName,
		})
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)

	limiter := ratelimit.NewRedisRateLimiter(c.redis)
	c.submitRateLimiter = middleware.NewSubmitRateLimiter(limiter, c.cfg.Site.SubmitRateLimit, c.log)
}

// GetEngine returns the configured Gin engine.
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Shutdown releases infrastructure resources.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
