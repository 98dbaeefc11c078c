package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/coinvest-server/internal/api/http/handler"
	"github.com/dtroode/coinvest-server/internal/api/http/middleware"
	"github.com/dtroode/coinvest-server/internal/logger"
	"github.com/dtroode/coinvest-server/internal/model"
)

// Limit is a fixed-window budget for one route group.
type Limit struct {
	Window time.Duration
	Max    int
}

// Config holds everything the HTTP routes need.
type Config struct {
	AuthService    handler.AuthService
	LeadService    handler.LeadService
	PlanService    handler.PlanService
	Calculator     handler.Calculator
	PriceService   handler.PriceService
	TokenManager   model.TokenManager
	ContextManager model.ContextManager
	RateLimiter    model.RateLimiter
	Cookie         handler.CookieOptions
	LeadLimit      Limit
	AuthLimit      Limit
	TrustedProxies []string
	Logger         *logger.Logger
}

type Router struct {
	cfg Config
}

func New(cfg Config) *Router {
	return &Router{cfg: cfg}
}

// Register builds the gin engine with all middleware and routes.
func (r *Router) Register() (*gin.Engine, error) {
	cfg := r.cfg

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	logging := middleware.NewLogging(cfg.Logger)
	authenticate := middleware.NewAuthenticate(cfg.TokenManager, cfg.ContextManager, cfg.Cookie.Name, cfg.Logger)
	admin := middleware.NewAdmin(cfg.AuthService, cfg.ContextManager, cfg.Logger)
	authLimit := middleware.NewRateLimit(cfg.RateLimiter, "auth", cfg.AuthLimit.Window, cfg.AuthLimit.Max, cfg.Logger)
	leadLimit := middleware.NewRateLimit(cfg.RateLimiter, "leads", cfg.LeadLimit.Window, cfg.LeadLimit.Max, cfg.Logger)

	engine.Use(
		logging.Recovery(),
		logging.Handle(),
		middleware.SecurityHeaders(),
		authenticate.Handle(),
	)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuth(cfg.AuthService, cfg.ContextManager, cfg.Cookie, cfg.Logger)
	leadHandler := handler.NewLead(cfg.LeadService, cfg.Logger)
	catalogHandler := handler.NewCatalog(cfg.PlanService, cfg.Calculator, cfg.PriceService)

	api := engine.Group("/api")

	api.POST("/register", authLimit.Handle(), authHandler.Register)
	api.POST("/login", authLimit.Handle(), authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/user", authenticate.RequireUser(), authHandler.CurrentUser)

	api.POST("/leads", leadLimit.Handle(), leadHandler.Create)

	api.GET("/investment-plans", catalogHandler.Plans)
	api.GET("/calculator", catalogHandler.Calculate)
	api.GET("/btc-price", catalogHandler.BTCPrice)

	adminGroup := api.Group("/admin", authenticate.RequireUser(), admin.Handle())
	adminGroup.GET("/leads", leadHandler.List)
	adminGroup.GET("/stats", leadHandler.Stats)
	adminGroup.POST("/leads/export", leadHandler.Export)

	return engine, nil
}
