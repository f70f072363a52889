package handler

import (
	"brit-matcher/internal/adapter/http/middleware"
	redisStore "brit-matcher/internal/adapter/storage/redis"
	"brit-matcher/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DefaultMaxBodyBytes bounds request bodies when RouterDeps leaves it unset.
const DefaultMaxBodyBytes = 64 << 10

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Matcher        ports.MatcherService
	Admin          ports.AdminService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	MaxBodyBytes   int64
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(deps.MaxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Payer exchange (unauthenticated; the payload is the credential) ---
	exchangeHandler := NewExchangeHandler(deps.Matcher, deps.Logger)
	v1.POST("/brit/exchange", rl("exchange"), exchangeHandler.Exchange)

	// --- Operator routes (JWT) ---
	if deps.Admin != nil && deps.TokenSvc != nil {
		jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
		adminHandler := NewAdminHandler(deps.Admin)
		admin := v1.Group("/admin", jwtAuth, rl("admin"))
		{
			admin.POST("/addresses", adminHandler.ImportAddresses)
			admin.GET("/pool", adminHandler.PoolStats)
			admin.GET("/assignments/:date", adminHandler.GetAssignment)
			admin.GET("/encounters/:wallet_id", adminHandler.GetEncounter)
		}
	}

	return r
}
