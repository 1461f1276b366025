package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	authapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/auth"
	billingapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/billing"
	catalogapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/catalog"
	contentapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/content"
	dashboardapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/dashboard"
	mastersapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/masters"
	partnerapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/partner"
	pricingapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/pricing"
	productionapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/production"
	reportsapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/reports"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/config"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/gateway"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/logger"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/printing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/session"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/storage"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/telemetry"
	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/handler"
	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/middleware"
	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/router"
	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/web"

	_ "github.com/aamirshehzad9/MISoft-sub001/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			MISoft Dashboard API
//	@version		1.0
//	@description	Server-side companion for the MISoft accounting suite: session-guarded CRUD screens, document printing and report exports, all proxied to the MISoft core API.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	MISoft Support
//	@contact.url	https://github.com/aamirshehzad9/MISoft-sub001
//	@contact.email	support@misoft.example.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Core API access token for programmatic clients. Format: "Bearer {token}". Browsers authenticate with the misoft_session cookie instead.

//	@securityDefinitions.apikey	SessionCookie
//	@in							header
//	@name						Cookie
//	@description				Dashboard session established by POST /auth/login. Format: "misoft_session={session id}"

//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/

// Build information, injected via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Initialize telemetry providers first so the logger can bridge into them.
	// All of them degrade to no-ops when telemetry is disabled.
	bootstrapLog, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	tracerProvider, err := telemetry.NewTracerProvider(rootCtx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, bootstrapLog)
	if err != nil {
		bootstrapLog.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer shutdownWithTimeout(tracerProvider.Shutdown, bootstrapLog, "tracer provider")

	meterProvider, err := telemetry.NewMeterProvider(rootCtx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, bootstrapLog)
	if err != nil {
		bootstrapLog.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer shutdownWithTimeout(meterProvider.Shutdown, bootstrapLog, "meter provider")

	// The application logger ships to the collector too when telemetry is on
	log := bootstrapLog
	if cfg.Telemetry.Enabled {
		logsProvider, err := telemetry.NewLoggerProvider(rootCtx, telemetry.LogsConfig{
			Enabled:           true,
			CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
			ServiceName:       cfg.Telemetry.ServiceName,
			Insecure:          cfg.Telemetry.Insecure,
		}, bootstrapLog)
		if err != nil {
			bootstrapLog.Fatal("Failed to initialize logs provider", zap.Error(err))
		}
		defer shutdownWithTimeout(logsProvider.Shutdown, bootstrapLog, "logs provider")

		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			level = zapcore.InfoLevel
		}
		log = telemetry.BridgeLogger(bootstrapLog, logsProvider, cfg.Telemetry.ServiceName, level)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	// Continuous profiling via Pyroscope (optional)
	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:           cfg.Telemetry.ProfilingEnabled,
		ServerAddress:     cfg.Telemetry.ProfilingServer,
		ApplicationName:   cfg.Telemetry.ServiceName,
		ProfileCPU:        true,
		ProfileInuseSpace: true,
		ProfileGoroutines: true,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}()
	if cfg.Telemetry.ProfilingEnabled && cfg.Telemetry.Enabled {
		if err := tracerProvider.EnableSpanProfiles(); err != nil {
			log.Warn("Failed to link spans to profiles", zap.Error(err))
		}
	}

	log.Info("Starting MISoft dashboard service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
		zap.String("upstream", cfg.Upstream.BaseURL),
	)

	// Session store: the only state this service keeps
	sessionStore, err := session.NewStore(cfg.Session, cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to initialize session store", zap.Error(err))
	}
	defer func() {
		if err := sessionStore.Close(); err != nil {
			log.Error("Error closing session store", zap.Error(err))
		}
	}()

	// Core API client. Every screen below proxies through it.
	gatewayClient := gateway.New(cfg.Upstream, log)

	upstreamMetrics, err := telemetry.RegisterUpstreamMetrics(meterProvider, telemetry.DefaultUpstreamMetricsConfig(), log)
	if err != nil {
		log.Fatal("Failed to register upstream metrics", zap.Error(err))
	}
	gatewayClient.Instrument(upstreamMetrics)

	// Session-store pool stats, only meaningful for the redis driver
	if redisStore, ok := sessionStore.(*session.RedisStore); ok {
		redisMetrics, err := telemetry.RegisterRedisMetrics(rootCtx, meterProvider, telemetry.DefaultRedisMetricsConfig(), redisStore, log)
		if err != nil {
			log.Fatal("Failed to register redis metrics", zap.Error(err))
		}
		if redisMetrics != nil {
			defer redisMetrics.Stop()
		}
	}

	// Business metrics: logins, printed documents, generated reports, live sessions
	var businessMetrics *telemetry.BusinessMetrics
	if meterProvider.IsEnabled() {
		counter, _ := sessionStore.(telemetry.SessionCounter)
		businessMetrics, err = telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
			Meter:          meterProvider.Meter("misoft.business"),
			Logger:         log,
			SessionCounter: counter,
		})
		if err != nil {
			log.Fatal("Failed to initialize business metrics", zap.Error(err))
		}
		businessMetrics.StartPeriodicCollection(rootCtx, 0)
		defer businessMetrics.Stop()
	}

	// Document printing is config-gated; when off the print endpoints answer 501
	var pdfRenderer printing.PDFRenderer
	var docTemplates *printing.DocumentTemplates
	var docStore billingapp.DocumentStore
	if cfg.Printing.Enabled {
		renderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
			DefaultTimeout: cfg.Printing.RenderTimeout,
			RemoteURL:      cfg.Printing.ChromeRemoteURL,
			NoSandbox:      cfg.Printing.ChromeNoSandbox,
			Logger:         log,
		})
		if err != nil {
			log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
		}
		defer func() {
			if err := renderer.Close(); err != nil {
				log.Error("Error closing PDF renderer", zap.Error(err))
			}
		}()
		pdfRenderer = renderer

		docTemplates, err = printing.NewDocumentTemplates()
		if err != nil {
			log.Fatal("Failed to parse document templates", zap.Error(err))
		}

		if cfg.Printing.UploadEnabled {
			docStore, err = storage.NewDocumentStore(cfg.Storage, log)
			if err != nil {
				log.Fatal("Failed to initialize document store", zap.Error(err))
			}
		}
		log.Info("Document printing enabled",
			zap.Duration("render_timeout", cfg.Printing.RenderTimeout),
			zap.Bool("upload", cfg.Printing.UploadEnabled),
		)
	}

	// Initialize application services
	authService := authapp.NewService(gatewayClient, sessionStore, cfg.Session, log)
	partnerService := partnerapp.NewService(gatewayClient, partnerapp.DefaultServiceConfig(), log)
	productService := catalogapp.NewService(gatewayClient, log)
	productionService := productionapp.NewService(gatewayClient, log)
	billingService := billingapp.NewService(gatewayClient, pdfRenderer, docTemplates, docStore, cfg.Printing, log)
	taxService := mastersapp.NewTaxService(gatewayClient, log)
	currencyService := mastersapp.NewCurrencyService(gatewayClient, log)
	fiscalYearService := mastersapp.NewFiscalYearService(gatewayClient, log)
	numberingService := mastersapp.NewNumberingService(gatewayClient, log)
	accountService := mastersapp.NewAccountService(gatewayClient, log)
	pricingService := pricingapp.NewService(gatewayClient, log)
	reportService := reportsapp.NewService(gatewayClient, log)
	dashboardService := dashboardapp.NewService(gatewayClient, log)
	contentService := contentapp.NewService(gatewayClient, log)

	if businessMetrics != nil {
		authService.SetBusinessMetrics(businessMetrics)
		billingService.SetBusinessMetrics(businessMetrics)
		reportService.SetBusinessMetrics(businessMetrics)
	}

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService, cfg.Session)
	partnerHandler := handler.NewPartnerHandler(partnerService)
	productHandler := handler.NewProductHandler(productService)
	manufacturingHandler := handler.NewManufacturingHandler(productionService)
	invoiceHandler := handler.NewInvoiceHandler(billingService)
	voucherHandler := handler.NewVoucherHandler(billingService)
	taxHandler := handler.NewTaxHandler(taxService)
	currencyHandler := handler.NewCurrencyHandler(currencyService)
	fiscalYearHandler := handler.NewFiscalYearHandler(fiscalYearService)
	numberingHandler := handler.NewNumberingHandler(numberingService)
	accountHandler := handler.NewAccountHandler(accountService)
	pricingHandler := handler.NewPricingHandler(pricingService)
	reportHandler := handler.NewReportHandler(reportService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	contentHandler := handler.NewContentHandler(contentService)
	systemHandler := handler.NewSystemHandler(gatewayClient, version, commit)

	// Marketing landing page, rendered server-side
	webRenderer, err := web.NewRenderer(log)
	if err != nil {
		log.Fatal("Failed to parse web templates", zap.Error(err))
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Tracing - Server spans + error marking (no-op when disabled)
	// 5. Metrics - Request counters and latency histograms
	// 6. Profiling - Pyroscope labels on request goroutines
	// 7. Security - Add security headers
	// 8. CORS - Handle cross-origin requests
	// 9. BodyLimit - Limit request body size
	// 10. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.SpanErrorMarker())
	}
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: meterProvider,
		ServiceName:   cfg.Telemetry.ServiceName,
		Enabled:       cfg.Telemetry.Enabled,
	}))
	if cfg.Telemetry.ProfilingEnabled {
		engine.Use(middleware.Profiling())
	}
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Public marketing page and probes live outside API versioning
	engine.GET("/", webRenderer.Landing)
	engine.GET("/health", systemHandler.Health)
	engine.GET("/ready", systemHandler.Ready)

	// Swagger documentation endpoint, gated by config
	sessionMiddleware := middleware.SessionAuth(middleware.SessionMiddlewareConfig{
		Auth:   authService,
		Cookie: cfg.Session,
		Logger: log,
	})
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, sessionMiddleware),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Every API route below requires a dashboard session or a bearer token,
	// except the public endpoints listed here.
	r.Use(middleware.SessionAuth(middleware.SessionMiddlewareConfig{
		Auth:   authService,
		Cookie: cfg.Session,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/ping",
			"/api/v1/version",
			"/api/v1/content/landing",
			"/api/v1/content/contact",
		},
		Logger: log,
	}))

	// Auth: sign-in/out and the current-user screen
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.Me)

	// Partners: customers and vendors in one registry. No delete; the core
	// API keeps partners referenced by documents around forever.
	partnerRoutes := router.NewDomainGroup("partners", "/partners")
	partnerRoutes.GET("", partnerHandler.List)
	partnerRoutes.GET("/:id", partnerHandler.Get)
	partnerRoutes.POST("", partnerHandler.Create)
	partnerRoutes.PUT("/:id", partnerHandler.Update)

	// Products
	productRoutes := router.NewDomainGroup("products", "/products")
	productRoutes.GET("", productHandler.List)
	productRoutes.GET("/:id", productHandler.Get)
	productRoutes.POST("", productHandler.Create)
	productRoutes.PUT("/:id", productHandler.Update)
	productRoutes.DELETE("/:id", productHandler.Delete)

	// Manufacturing: orders are editable, BOMs are read-only screens
	manufacturingRoutes := router.NewDomainGroup("manufacturing", "/manufacturing")
	manufacturingRoutes.GET("/orders", manufacturingHandler.ListOrders)
	manufacturingRoutes.GET("/orders/:id", manufacturingHandler.GetOrder)
	manufacturingRoutes.POST("/orders", manufacturingHandler.CreateOrder)
	manufacturingRoutes.PUT("/orders/:id", manufacturingHandler.UpdateOrder)
	manufacturingRoutes.DELETE("/orders/:id", manufacturingHandler.DeleteOrder)
	manufacturingRoutes.GET("/boms", manufacturingHandler.ListBOMs)
	manufacturingRoutes.GET("/boms/:id", manufacturingHandler.GetBOM)

	// Invoices
	invoiceRoutes := router.NewDomainGroup("invoices", "/invoices")
	invoiceRoutes.GET("", invoiceHandler.List)
	invoiceRoutes.GET("/:id", invoiceHandler.Get)
	invoiceRoutes.POST("", invoiceHandler.Create)
	invoiceRoutes.PUT("/:id", invoiceHandler.Update)
	invoiceRoutes.DELETE("/:id", invoiceHandler.Delete)
	invoiceRoutes.POST("/:id/print", invoiceHandler.Print)

	// Vouchers (receipts and payments)
	voucherRoutes := router.NewDomainGroup("vouchers", "/vouchers")
	voucherRoutes.GET("", voucherHandler.List)
	voucherRoutes.GET("/:id", voucherHandler.Get)
	voucherRoutes.POST("", voucherHandler.Create)
	voucherRoutes.PUT("/:id", voucherHandler.Update)
	voucherRoutes.DELETE("/:id", voucherHandler.Delete)
	voucherRoutes.POST("/:id/print", voucherHandler.Print)

	// Master data screens
	taxRoutes := router.NewDomainGroup("taxes", "/taxes")
	taxRoutes.GET("", taxHandler.List)
	taxRoutes.GET("/:id", taxHandler.Get)
	taxRoutes.POST("", taxHandler.Create)
	taxRoutes.PUT("/:id", taxHandler.Update)
	taxRoutes.DELETE("/:id", taxHandler.Delete)

	currencyRoutes := router.NewDomainGroup("currencies", "/currencies")
	currencyRoutes.GET("", currencyHandler.List)
	currencyRoutes.GET("/:id", currencyHandler.Get)
	currencyRoutes.POST("", currencyHandler.Create)
	currencyRoutes.PUT("/:id", currencyHandler.Update)
	currencyRoutes.DELETE("/:id", currencyHandler.Delete)

	fiscalYearRoutes := router.NewDomainGroup("fiscal-years", "/fiscal-years")
	fiscalYearRoutes.GET("", fiscalYearHandler.List)
	fiscalYearRoutes.GET("/:id", fiscalYearHandler.Get)
	fiscalYearRoutes.POST("", fiscalYearHandler.Create)
	fiscalYearRoutes.PUT("/:id", fiscalYearHandler.Update)
	fiscalYearRoutes.DELETE("/:id", fiscalYearHandler.Delete)

	// Numbering schemes; preview is computed here, never allocated upstream
	numberingRoutes := router.NewDomainGroup("numbering", "/numbering-schemes")
	numberingRoutes.GET("", numberingHandler.List)
	numberingRoutes.POST("/preview", numberingHandler.Preview)
	numberingRoutes.GET("/:id", numberingHandler.Get)
	numberingRoutes.POST("", numberingHandler.Create)
	numberingRoutes.PUT("/:id", numberingHandler.Update)
	numberingRoutes.DELETE("/:id", numberingHandler.Delete)

	// Chart of accounts; the tree shape is assembled locally from the flat list
	accountRoutes := router.NewDomainGroup("accounts", "/accounts")
	accountRoutes.GET("", accountHandler.List)
	accountRoutes.GET("/tree", accountHandler.Tree)
	accountRoutes.POST("", accountHandler.Create)
	accountRoutes.PUT("/:id", accountHandler.Update)

	// Pricing rules; the simulator evaluates locally without touching upstream
	pricingRoutes := router.NewDomainGroup("pricing", "/pricing")
	pricingRoutes.GET("/rules", pricingHandler.List)
	pricingRoutes.GET("/rules/:id", pricingHandler.Get)
	pricingRoutes.POST("/rules", pricingHandler.Create)
	pricingRoutes.PUT("/rules/:id", pricingHandler.Update)
	pricingRoutes.DELETE("/rules/:id", pricingHandler.Delete)
	pricingRoutes.POST("/simulate", pricingHandler.Simulate)

	// Financial reports; format=xlsx streams a workbook
	reportRoutes := router.NewDomainGroup("reports", "/reports")
	reportRoutes.GET("/profit-loss", reportHandler.ProfitAndLoss)
	reportRoutes.GET("/balance-sheet", reportHandler.BalanceSheet)
	reportRoutes.GET("/trial-balance", reportHandler.TrialBalance)
	reportRoutes.GET("/partner-ledger", reportHandler.PartnerLedger)
	reportRoutes.GET("/sales-register", reportHandler.SalesRegister)

	// Dashboard home screen
	dashboardRoutes := router.NewDomainGroup("dashboard", "/dashboard")
	dashboardRoutes.GET("/summary", dashboardHandler.Summary)

	// Public content endpoints; contact gets its own tighter limiter
	contactLimiter := middleware.NewRateLimiter(5, time.Minute)
	contentRoutes := router.NewDomainGroup("content", "/content")
	contentRoutes.GET("/landing", contentHandler.Landing)
	contentRoutes.POST("/contact", middleware.RateLimit(contactLimiter), contentHandler.Contact)

	// System endpoints at the API root
	systemRoutes := router.NewDomainGroup("system", "")
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/version", systemHandler.Version)

	r.Register(authRoutes).
		Register(partnerRoutes).
		Register(productRoutes).
		Register(manufacturingRoutes).
		Register(invoiceRoutes).
		Register(voucherRoutes).
		Register(taxRoutes).
		Register(currencyRoutes).
		Register(fiscalYearRoutes).
		Register(numberingRoutes).
		Register(accountRoutes).
		Register(pricingRoutes).
		Register(reportRoutes).
		Register(dashboardRoutes).
		Register(contentRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// shutdownWithTimeout flushes a telemetry provider, bounding how long shutdown
// can stall on an unreachable collector.
func shutdownWithTimeout(shutdown func(context.Context) error, log *zap.Logger, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Error("Error shutting down "+name, zap.Error(err))
	}
}
