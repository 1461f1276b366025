// Package integration exercises the dashboard service end to end: real gin
// engine, real session middleware, real gateway client, against a stub core
// API. The redis tests additionally use testcontainers.
package integration

import (
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/auth"
	partnerapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/partner"
	pricingapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/pricing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/config"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/gateway"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/session"
	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/handler"
	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/middleware"
	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/router"
	"github.com/aamirshehzad9/MISoft-sub001/tests/testutil"
)

// CookieName is the session cookie the test dashboard issues
const CookieName = "misoft_session"

var setupOnce sync.Once

// Dashboard is a fully wired test instance of the service
type Dashboard struct {
	Engine   *gin.Engine
	Gateway  *gateway.Client
	Sessions session.Store
	Auth     *authapp.Service
}

// sessionConfig returns the session settings the tests run with. The refresh
// skew is deliberately short so rotation tests control it via token expiry.
func sessionConfig() config.SessionConfig {
	return config.SessionConfig{
		CookieName:  CookieName,
		CookiePath:  "/",
		SameSite:    "lax",
		TTL:         time.Hour,
		RefreshSkew: 2 * time.Minute,
		Store:       "memory",
	}
}

// NewDashboard wires the service the way cmd/server does, pointed at the
// stub core API, with telemetry off and an in-memory session store unless
// one is supplied.
func NewDashboard(t *testing.T, api *testutil.CoreAPI, store session.Store) *Dashboard {
	t.Helper()

	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		middleware.SetupValidator()
	})

	if store == nil {
		memStore := session.NewMemoryStore()
		t.Cleanup(func() { _ = memStore.Close() })
		store = memStore
	}

	log := zap.NewNop()
	gw := gateway.New(config.UpstreamConfig{
		BaseURL:      api.URL(),
		Timeout:      5 * time.Second,
		RetryCount:   0,
		RetryWait:    10 * time.Millisecond,
		RetryMaxWait: 50 * time.Millisecond,
	}, log)

	sessCfg := sessionConfig()
	authService := authapp.NewService(gw, store, sessCfg, log)
	partnerService := partnerapp.NewService(gw, partnerapp.DefaultServiceConfig(), log)
	pricingService := pricingapp.NewService(gw, log)

	authHandler := handler.NewAuthHandler(authService, sessCfg)
	partnerHandler := handler.NewPartnerHandler(partnerService)
	pricingHandler := handler.NewPricingHandler(pricingService)

	engine := gin.New()
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.SessionAuth(middleware.SessionMiddlewareConfig{
		Auth:   authService,
		Cookie: sessCfg,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		Logger: log,
	}))

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.Me)

	partnerRoutes := router.NewDomainGroup("partners", "/partners")
	partnerRoutes.GET("", partnerHandler.List)
	partnerRoutes.GET("/:id", partnerHandler.Get)
	partnerRoutes.POST("", partnerHandler.Create)
	partnerRoutes.PUT("/:id", partnerHandler.Update)

	pricingRoutes := router.NewDomainGroup("pricing", "/pricing")
	pricingRoutes.GET("/rules", pricingHandler.List)
	pricingRoutes.POST("/simulate", pricingHandler.Simulate)

	r.Register(authRoutes).Register(partnerRoutes).Register(pricingRoutes)
	r.Setup()

	return &Dashboard{
		Engine:   engine,
		Gateway:  gw,
		Sessions: store,
		Auth:     authService,
	}
}
