package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Upstream  UpstreamConfig
	Session   SessionConfig
	Redis     RedisConfig
	Log       LogConfig
	Printing  PrintingConfig
	Storage   StorageConfig
	Swagger   SwaggerConfig
	Telemetry TelemetryConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	MaxBodySize       int64
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
	CORSAllowOrigins  []string
	CORSAllowMethods  []string
	CORSAllowHeaders  []string
	TrustedProxies    []string
}

// UpstreamConfig holds the connection settings for the core accounting API.
// Every dashboard operation is proxied there; this service keeps no data of
// its own.
type UpstreamConfig struct {
	BaseURL      string
	Timeout      time.Duration
	RetryCount   int           // retries for 429 responses only
	RetryWait    time.Duration // initial backoff between retries
	RetryMaxWait time.Duration
	UserAgent    string
}

// SessionConfig holds browser session settings. The dashboard stores core API
// tokens server-side and hands the browser an opaque cookie.
type SessionConfig struct {
	CookieName   string
	CookieDomain string // empty = current domain
	CookiePath   string
	Secure       bool   // must be true in production (HTTPS only)
	SameSite     string // "strict", "lax", or "none"
	TTL          time.Duration
	RefreshSkew  time.Duration // refresh the upstream token this long before it expires
	Store        string        // "memory" or "redis"
}

// RedisConfig holds Redis connection settings for the session store
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// PrintingConfig holds document rendering configuration
type PrintingConfig struct {
	Enabled         bool
	RenderTimeout   time.Duration
	PaperWidth      float64 // inches
	PaperHeight     float64 // inches
	UploadEnabled   bool    // store rendered PDFs instead of streaming them
	ChromeRemoteURL string  // attach to a remote Chrome instead of launching one
	ChromeNoSandbox bool    // required when Chrome runs as root in a container
}

// StorageConfig holds object storage settings for rendered documents
type StorageConfig struct {
	Driver          string // "s3" or "stub"
	Bucket          string
	Region          string
	Endpoint        string // custom endpoint for MinIO-compatible stores
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	PresignExpiry   time.Duration
	StubDir         string // where the stub driver writes files
}

// SwaggerConfig holds Swagger documentation endpoint configuration
type SwaggerConfig struct {
	Enabled     bool     // Whether to enable Swagger endpoint
	RequireAuth bool     // Require a signed-in session to access Swagger
	AllowedIPs  []string // IP whitelist (empty = allow all)
}

// TelemetryConfig holds OpenTelemetry configuration
type TelemetryConfig struct {
	Enabled           bool    // Whether to enable OpenTelemetry
	CollectorEndpoint string  // OTEL Collector endpoint (e.g., "localhost:4317")
	SamplingRatio     float64 // Sampling ratio (0.0-1.0, 1.0 = 100%)
	ServiceName       string  // Service name for traces
	Insecure          bool    // Use insecure (non-TLS) connection (development only)
	ProfilingEnabled  bool    // Enable continuous profiling via Pyroscope
	ProfilingServer   string  // Pyroscope server address
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with MISOFT_ prefix (e.g., MISOFT_UPSTREAM_BASE_URL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	// Set config file settings
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Enable environment variable override
	v.SetEnvPrefix("MISOFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Build config struct
	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:       v.GetDuration("http.read_timeout"),
			WriteTimeout:      v.GetDuration("http.write_timeout"),
			IdleTimeout:       v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:    v.GetInt("http.max_header_bytes"),
			MaxBodySize:       v.GetInt64("http.max_body_size"),
			RateLimitEnabled:  v.GetBool("http.rate_limit_enabled"),
			RateLimitRequests: v.GetInt("http.rate_limit_requests"),
			RateLimitWindow:   v.GetDuration("http.rate_limit_window"),
			CORSAllowOrigins:  v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods:  v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders:  v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:    v.GetStringSlice("http.trusted_proxies"),
		},
		Upstream: UpstreamConfig{
			BaseURL:      v.GetString("upstream.base_url"),
			Timeout:      v.GetDuration("upstream.timeout"),
			RetryCount:   v.GetInt("upstream.retry_count"),
			RetryWait:    v.GetDuration("upstream.retry_wait"),
			RetryMaxWait: v.GetDuration("upstream.retry_max_wait"),
			UserAgent:    v.GetString("upstream.user_agent"),
		},
		Session: SessionConfig{
			CookieName:   v.GetString("session.cookie_name"),
			CookieDomain: v.GetString("session.cookie_domain"),
			CookiePath:   v.GetString("session.cookie_path"),
			Secure:       v.GetBool("session.secure"),
			SameSite:     v.GetString("session.same_site"),
			TTL:          v.GetDuration("session.ttl"),
			RefreshSkew:  v.GetDuration("session.refresh_skew"),
			Store:        v.GetString("session.store"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Printing: PrintingConfig{
			Enabled:         v.GetBool("printing.enabled"),
			RenderTimeout:   v.GetDuration("printing.render_timeout"),
			PaperWidth:      v.GetFloat64("printing.paper_width"),
			PaperHeight:     v.GetFloat64("printing.paper_height"),
			UploadEnabled:   v.GetBool("printing.upload_enabled"),
			ChromeRemoteURL: v.GetString("printing.chrome_remote_url"),
			ChromeNoSandbox: v.GetBool("printing.chrome_no_sandbox"),
		},
		Storage: StorageConfig{
			Driver:          v.GetString("storage.driver"),
			Bucket:          v.GetString("storage.bucket"),
			Region:          v.GetString("storage.region"),
			Endpoint:        v.GetString("storage.endpoint"),
			AccessKeyID:     v.GetString("storage.access_key_id"),
			SecretAccessKey: v.GetString("storage.secret_access_key"),
			UsePathStyle:    v.GetBool("storage.use_path_style"),
			PresignExpiry:   v.GetDuration("storage.presign_expiry"),
			StubDir:         v.GetString("storage.stub_dir"),
		},
		Swagger: SwaggerConfig{
			Enabled:     v.GetBool("swagger.enabled"),
			RequireAuth: v.GetBool("swagger.require_auth"),
			AllowedIPs:  v.GetStringSlice("swagger.allowed_ips"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
			ProfilingEnabled:  v.GetBool("telemetry.profiling_enabled"),
			ProfilingServer:   v.GetString("telemetry.profiling_server"),
		},
	}

	// Apply defaults for empty values
	applyDefaults(cfg)

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "misoft-web"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 30 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 5 << 20 // 5MB, dashboard payloads are small
	}
	if cfg.HTTP.RateLimitRequests == 0 {
		cfg.HTTP.RateLimitRequests = 100
	}
	if cfg.HTTP.RateLimitWindow == 0 {
		cfg.HTTP.RateLimitWindow = time.Minute
	}
	// NOTE: CORS origins are intentionally not given a default fallback to "*".
	// An empty list means no cross-origin requests are allowed until explicitly
	// configured. In development, use config.toml to set specific origins like
	// ["http://localhost:3000"].
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	}
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = 30 * time.Second
	}
	if cfg.Upstream.RetryCount == 0 {
		cfg.Upstream.RetryCount = 2
	}
	if cfg.Upstream.RetryWait == 0 {
		cfg.Upstream.RetryWait = 500 * time.Millisecond
	}
	if cfg.Upstream.RetryMaxWait == 0 {
		cfg.Upstream.RetryMaxWait = 5 * time.Second
	}
	if cfg.Upstream.UserAgent == "" {
		cfg.Upstream.UserAgent = "misoft-web/1.0"
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "misoft_session"
	}
	if cfg.Session.CookiePath == "" {
		cfg.Session.CookiePath = "/"
	}
	if cfg.Session.SameSite == "" {
		cfg.Session.SameSite = "lax"
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 12 * time.Hour
	}
	if cfg.Session.RefreshSkew == 0 {
		cfg.Session.RefreshSkew = 2 * time.Minute
	}
	if cfg.Session.Store == "" {
		cfg.Session.Store = "memory"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.Printing.RenderTimeout == 0 {
		cfg.Printing.RenderTimeout = 30 * time.Second
	}
	if cfg.Printing.PaperWidth == 0 {
		cfg.Printing.PaperWidth = 8.27 // A4
	}
	if cfg.Printing.PaperHeight == 0 {
		cfg.Printing.PaperHeight = 11.69
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "stub"
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = "ap-south-1"
	}
	if cfg.Storage.PresignExpiry == 0 {
		cfg.Storage.PresignExpiry = 15 * time.Minute
	}
	if cfg.Storage.StubDir == "" {
		cfg.Storage.StubDir = "./data/documents"
	}
	// Telemetry defaults
	if cfg.Telemetry.CollectorEndpoint == "" {
		cfg.Telemetry.CollectorEndpoint = "localhost:4317" // Default gRPC endpoint
	}
	if cfg.Telemetry.SamplingRatio == 0 {
		cfg.Telemetry.SamplingRatio = 1.0 // 100% in development
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "misoft-web"
	}
	if cfg.Telemetry.ProfilingServer == "" {
		cfg.Telemetry.ProfilingServer = "http://localhost:4040"
	}
	// Note: Insecure defaults to false for safety (TLS enabled by default)
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Upstream.BaseURL != "" {
		u, err := url.Parse(c.Upstream.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("upstream.base_url must be a valid absolute URL, got %q", c.Upstream.BaseURL)
		}
	}
	if c.Session.Store != "memory" && c.Session.Store != "redis" {
		return fmt.Errorf("session.store must be 'memory' or 'redis', got %q", c.Session.Store)
	}
	switch c.Session.SameSite {
	case "strict", "lax", "none":
	default:
		return fmt.Errorf("session.same_site must be 'strict', 'lax' or 'none', got %q", c.Session.SameSite)
	}
	if c.Storage.Driver != "s3" && c.Storage.Driver != "stub" {
		return fmt.Errorf("storage.driver must be 's3' or 'stub', got %q", c.Storage.Driver)
	}

	// Production-specific validations
	if c.App.Env == "production" {
		if c.Upstream.BaseURL == "" {
			return fmt.Errorf("upstream.base_url is required in production")
		}
		if !strings.HasPrefix(c.Upstream.BaseURL, "https://") {
			return fmt.Errorf("upstream.base_url must use https in production")
		}
		// Session cookie carries the only credential the browser holds
		if !c.Session.Secure {
			return fmt.Errorf("session.secure must be true in production (HTTPS required for secure cookies)")
		}
		// SameSite=None requires Secure flag
		if c.Session.SameSite == "none" && !c.Session.Secure {
			return fmt.Errorf("session.same_site=none requires session.secure=true")
		}
		// CORS must not use wildcard with credentials
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
		// Swagger must be disabled OR protected in production
		if c.Swagger.Enabled {
			if !c.Swagger.RequireAuth && len(c.Swagger.AllowedIPs) == 0 {
				return fmt.Errorf("swagger endpoint must be disabled, require authentication, or have IP restriction in production")
			}
		}
		if c.Printing.UploadEnabled && c.Storage.Driver == "stub" {
			return fmt.Errorf("storage.driver cannot be 'stub' in production when printing.upload_enabled is set")
		}
	}

	// Validate telemetry configuration (all environments)
	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}

	return nil
}

// Addr returns the Redis connection address
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
