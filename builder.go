package sessiongate

import (
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/nexcollab/sessiongate/api"
	"github.com/nexcollab/sessiongate/store"
)

// Builder assembles a [Gateway]. A Builder is single-use: Build succeeds
// at most once.
type Builder struct {
	config     Config
	redis      *redis.Client
	store      store.Store
	httpClient *http.Client
	auditSink  AuditSink

	built bool
}

// New creates a Builder with the default configuration.
func New() *Builder {
	return &Builder{config: defaultConfig()}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL sets the marketplace API origin.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.API.BaseURL = baseURL
	return b
}

// WithRedis persists session state in Redis using the configured prefix
// and namespace.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithStore supplies a custom persisted store; it takes precedence over
// WithRedis.
func (b *Builder) WithStore(st store.Store) *Builder {
	b.store = st
	return b
}

// WithHTTPClient overrides the transport used for API calls.
func (b *Builder) WithHTTPClient(hc *http.Client) *Builder {
	b.httpClient = hc
	return b
}

// WithAuditSink enables audit dispatch into the given sink.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	b.config.Audit.Enabled = true
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles the guard latency histogram.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration and assembles the Gateway. It
// performs no I/O; the first store or network access happens on the first
// Gateway operation.
func (b *Builder) Build() (*Gateway, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	st := b.store
	if st == nil {
		if b.redis == nil {
			return nil, ErrStoreRequired
		}
		st = store.NewRedis(b.redis, cfg.Store.RedisPrefix, cfg.Store.Namespace)
	}

	client, err := api.NewClient(api.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	}, b.httpClient, &storeTokens{st: st})
	if err != nil {
		return nil, err
	}

	b.built = true
	return &Gateway{
		config:  cfg,
		client:  client,
		store:   st,
		metrics: newMetrics(cfg.Metrics),
		audit:   newAuditDispatcher(cfg.Audit, b.auditSink),
	}, nil
}
