package sessiongate

import (
	"errors"
	"time"
)

// Config defines the gateway's construction-time settings. Config values
// are copied by the Builder and treated as immutable afterwards.
type Config struct {
	API     APIConfig
	Store   StoreConfig
	Routes  RoutesConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

// APIConfig carries the REST boundary settings.
type APIConfig struct {
	// BaseURL is the scheme://host[:port] of the marketplace API.
	BaseURL string
	// Timeout bounds each request when no custom http.Client is supplied.
	Timeout time.Duration
	// UserAgent overrides the default User-Agent header when non-empty.
	UserAgent string
}

// StoreConfig shapes the persisted store's key layout.
type StoreConfig struct {
	// RedisPrefix namespaces all keys; defaults to "sg".
	RedisPrefix string
	// Namespace isolates one gateway's slots from others sharing the same
	// backend. Empty is valid for single-session hosts.
	Namespace string
}

// RoutesConfig names the redirect targets the guard resolves verdicts to.
type RoutesConfig struct {
	Login         string
	Dashboard     string
	RoleSelection string
}

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull sheds events under backpressure instead of blocking the
	// emitting operation.
	DropIfFull bool
}

// MetricsConfig controls the in-process metrics.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout: 15 * time.Second,
		},
		Store: StoreConfig{
			RedisPrefix: "sg",
		},
		Routes: RoutesConfig{
			Login:         "/login",
			Dashboard:     "/dashboard",
			RoleSelection: "/role-selection",
		},
		Audit: AuditConfig{
			BufferSize: 256,
			DropIfFull: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// All fields are value types; assignment is a deep copy.
	return cfg
}

// Validate rejects configurations the gateway cannot operate with.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("API base URL required")
	}
	if c.API.Timeout < 0 {
		return errors.New("API timeout must not be negative")
	}
	if c.Routes.Login == "" || c.Routes.Dashboard == "" || c.Routes.RoleSelection == "" {
		return errors.New("all guard redirect routes must be set")
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("audit buffer size must be positive")
	}
	return nil
}
