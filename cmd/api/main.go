package main

// @title LeadFinder API
// @version 1.0
// @description Local business lead generation API. Scrape, browse, export and contact businesses.

// @contact.name iProPixel
// @contact.url https://ipropixel.al
// @contact.email info@ipropixel.al

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey OperatorToken
// @in header
// @name X-Operator-Token
// @description Shared operator token guarding the whole API.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/ipropixel/leadfinder/config"
	"github.com/ipropixel/leadfinder/pkg/api/handlers"
	"github.com/ipropixel/leadfinder/pkg/businesses"
	"github.com/ipropixel/leadfinder/pkg/cache"
	"github.com/ipropixel/leadfinder/pkg/database"
	"github.com/ipropixel/leadfinder/pkg/export"
	"github.com/ipropixel/leadfinder/pkg/jobs"
	"github.com/ipropixel/leadfinder/pkg/logger"
	"github.com/ipropixel/leadfinder/pkg/metrics"
	custommiddleware "github.com/ipropixel/leadfinder/pkg/middleware"
	"github.com/ipropixel/leadfinder/pkg/outreach"
	"github.com/ipropixel/leadfinder/pkg/scrape"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/ipropixel/leadfinder/docs" // Swagger docs (generated)
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Rate limiter
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig()))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	// Global rate limiting (default 60 req/min)
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "LeadFinder API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Initialize services
	businessService := businesses.NewService(db.Ent, redisClient, cfg.DefaultRegion, appLogger)
	scrapeService := scrape.NewService(db.Ent, redisClient, cfg, appLogger)
	exportService := export.NewService(db.Ent, businessService, cfg.StorageLocalPath, appLogger)

	emailSender := outreach.NewSendGridSender(
		cfg.SendGridAPIKey,
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.EmailReplyTo,
		cfg.EmailSubject,
	)
	smsProvider := outreach.NewSMSToProvider(
		cfg.SMSToAPIKey,
		cfg.SMSSenderID,
		cfg.SMSToBaseURL,
		cfg.SMSToAuthURL,
	)
	outreachService := outreach.NewService(db.Ent, emailSender, smsProvider, cfg.EmailDelay, cfg.SMSDelay, appLogger)
	log.Printf("✅ Services initialized")

	// Initialize cron manager for scheduled ingestion and cleanup
	cronManager := jobs.NewCronManager(db.Ent, redisClient, scrapeService, exportService, cfg, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize handlers
	scrapeHandler := handlers.NewScrapeHandler(scrapeService, redisClient, prometheusMetrics)
	businessHandler := handlers.NewBusinessHandler(businessService)
	outreachHandler := handlers.NewOutreachHandler(outreachService, prometheusMetrics)
	exportHandler := handlers.NewExportHandler(exportService, prometheusMetrics)

	// API v1 routes, guarded by the shared operator token
	v1 := e.Group("/api/v1")
	v1.Use(custommiddleware.OperatorAuth(cfg.OperatorToken))

	// Ping endpoint
	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Ingestion runs
	scrapesGroup := v1.Group("/scrapes")
	{
		scrapesGroup.POST("", scrapeHandler.StartScrape)
		scrapesGroup.GET("", scrapeHandler.ListRuns)
		scrapesGroup.GET("/:run_id", scrapeHandler.GetRun)
		scrapesGroup.GET("/:run_id/logs", scrapeHandler.StreamLogs)
	}

	// Businesses
	businessesGroup := v1.Group("/businesses")
	{
		businessesGroup.GET("", businessHandler.ListBusinesses)
		businessesGroup.GET("/stats", businessHandler.GetStats)
		businessesGroup.GET("/email-targets", businessHandler.ListEmailTargets)
		businessesGroup.GET("/phone-targets", businessHandler.ListPhoneTargets)
		businessesGroup.GET("/:id", businessHandler.GetBusiness)
		businessesGroup.DELETE("/:id", businessHandler.DeleteBusiness)
		businessesGroup.PATCH("/:id/outreach", businessHandler.UpdateOutreachFlags)
	}

	// Outreach
	outreachGroup := v1.Group("/outreach")
	{
		outreachGroup.POST("/email", outreachHandler.SendEmails)
		outreachGroup.POST("/sms", outreachHandler.SendSMS)
		outreachGroup.GET("/sms/balance", outreachHandler.GetSMSBalance)
		outreachGroup.GET("/sms/messages", outreachHandler.ListSMSMessages)
	}

	// Exports
	exportsGroup := v1.Group("/exports")
	{
		exportsGroup.POST("", exportHandler.Create)
		exportsGroup.GET("", exportHandler.List)
		exportsGroup.GET("/:id", exportHandler.Get)
		exportsGroup.GET("/:id/download", exportHandler.Download)
		exportsGroup.DELETE("/:id", exportHandler.Delete)
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 LeadFinder API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	if cfg.OperatorToken == "" {
		log.Printf("⚠️  OPERATOR_TOKEN not set: API is open")
	}
	log.Printf("⏰ Cron jobs: Daily 2AM (scheduled ingestion), Weekly Sunday 3AM (stale refresh), Hourly (export cleanup)")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Stop cron jobs
	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	// Gracefully shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
