package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc/health"

	"github.com/dtroode/coinvest-server/internal/api/grpc/monitor"
	grpcRouter "github.com/dtroode/coinvest-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/coinvest-server/internal/api/grpc/server"
	httpctx "github.com/dtroode/coinvest-server/internal/api/http/context"
	"github.com/dtroode/coinvest-server/internal/api/http/handler"
	httpRouter "github.com/dtroode/coinvest-server/internal/api/http/router"
	httpServer "github.com/dtroode/coinvest-server/internal/api/http/server"
	"github.com/dtroode/coinvest-server/internal/config"
	"github.com/dtroode/coinvest-server/internal/logger"
	"github.com/dtroode/coinvest-server/internal/model"
	"github.com/dtroode/coinvest-server/internal/password"
	"github.com/dtroode/coinvest-server/internal/ratelimit"
	"github.com/dtroode/coinvest-server/internal/recaptcha"
	"github.com/dtroode/coinvest-server/internal/repository/postgres"
	"github.com/dtroode/coinvest-server/internal/server"
	"github.com/dtroode/coinvest-server/internal/service"
	storage "github.com/dtroode/coinvest-server/internal/storage/minio"
	"github.com/dtroode/coinvest-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithWriter(os.Stdout, cfg.LogLevel, cfg.IsProduction())
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logAppVersion()

	tokenManager, err := token.NewJWT([]byte(cfg.JWT.Secret))
	if err != nil {
		logger.Fatal("failed to initialize token manager", "error", err)
	}

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	leadRepo := postgres.NewLeadRepository(db)
	planRepo := postgres.NewPlanRepository(db)

	limiter, closeLimiter := newRateLimiter(ctx, cfg, logger)
	defer closeLimiter()

	outbound := &http.Client{Timeout: cfg.Price.Timeout}

	authService := service.NewAuth(userRepo, leadRepo, password.NewHasher(password.DefaultParams), tokenManager, cfg.JWT.TTL, logger)
	leadService := service.NewLead(leadRepo, userRepo, newCaptcha(cfg, outbound, logger), newStorage(ctx, cfg, logger), logger)
	planService := service.NewPlan(planRepo, logger)
	priceService := service.NewPrice([]service.PriceSource{
		service.NewCoinDeskSource(outbound, cfg.Price.CoinDeskURL),
		service.NewBinanceSource(outbound, cfg.Price.BinanceURL),
	}, cfg.Price.Timeout, cfg.Price.TTL, logger)

	engine, err := httpRouter.New(httpRouter.Config{
		AuthService:    authService,
		LeadService:    leadService,
		PlanService:    planService,
		Calculator:     service.NewCalculator(),
		PriceService:   priceService,
		TokenManager:   tokenManager,
		ContextManager: httpctx.NewManager(),
		RateLimiter:    limiter,
		Cookie: handler.CookieOptions{
			Name:   cfg.Cookie.Name,
			Secure: cfg.IsProduction(),
		},
		LeadLimit:      httpRouter.Limit{Window: cfg.RateLimit.Window, Max: cfg.RateLimit.Max},
		AuthLimit:      httpRouter.Limit{Window: cfg.RateLimit.AuthWindow, Max: cfg.RateLimit.AuthMax},
		TrustedProxies: cfg.HTTP.TrustedProxies,
		Logger:         logger,
	}).Register()
	if err != nil {
		logger.Fatal("failed to build http router", "error", err)
	}

	healthServer := health.NewServer()
	healthMonitor := monitor.NewMonitor(db, healthServer, cfg.GRPC.HealthInterval, 5*time.Second, logger)

	servers := []struct {
		server model.Server
		layer  model.SecurityLayer
	}{
		{
			server: httpServer.NewHTTPServer(engine, fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadHeaderTimeout),
			layer:  server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName),
		},
		{
			server: grpcServer.NewGRPCServer(grpcRouter.New(healthServer, logger).Register(), fmt.Sprintf(":%s", cfg.GRPC.Port)),
			layer:  server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName),
		},
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		healthMonitor.Run(ctx)
	}()

	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server", "name", s.Name(), "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "name", s.Name(), "error", err)
				stop()
			}
		}(s.server, s.layer)
	}

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "name", s.server.Name(), "error", err, "address", s.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

// newRateLimiter returns the configured limiter and a function releasing its resources.
func newRateLimiter(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.RateLimiter, func()) {
	if cfg.RateLimit.Backend == config.RateLimitRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatal("failed to connect to redis", "error", err, "address", cfg.Redis.Addr)
		}
		logger.Info("Rate limiter: using redis backend", "address", cfg.Redis.Addr)
		return ratelimit.NewRedis(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }
	}

	memory := ratelimit.NewMemory()
	go memory.Run(ctx, cfg.RateLimit.SweepInterval, logger)
	return memory, func() {}
}

func newCaptcha(cfg *config.Config, client *http.Client, logger *logger.Logger) model.CaptchaVerifier {
	if cfg.Recaptcha.SecretKey == "" {
		logger.Warn("reCAPTCHA secret is not set, lead submissions are not verified")
		return nil
	}
	return recaptcha.NewClient(cfg.Recaptcha.SecretKey, cfg.Recaptcha.VerifyURL, client)
}

func newStorage(ctx context.Context, cfg *config.Config, logger *logger.Logger) model.Storage {
	if cfg.Storage.Endpoint == "" {
		logger.Info("object storage is not configured, lead export disabled")
		return nil
	}

	client, err := storage.Dial(ctx, storage.Options{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
		Bucket:    cfg.Storage.Bucket,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}
	return client
}
