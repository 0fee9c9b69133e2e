package sessiongate

import (
	"sync/atomic"
	"time"
)

// MetricID identifies a counter or histogram in the in-process metrics
// system.
type MetricID uint16

const (
	// MetricRegisterSuccess counts successful registrations.
	MetricRegisterSuccess MetricID = iota
	// MetricRegisterFailure counts failed registrations.
	MetricRegisterFailure
	// MetricLoginSuccess counts successful logins.
	MetricLoginSuccess
	// MetricLoginFailure counts failed logins.
	MetricLoginFailure
	// MetricLogout counts logout teardowns, regardless of whether the
	// server notification succeeded.
	MetricLogout
	// MetricRoleSelected counts committed role selections.
	MetricRoleSelected
	// MetricRoleSelectFailure counts rejected role selections.
	MetricRoleSelectFailure
	// MetricUserRefreshSuccess counts successful /auth/me refreshes.
	MetricUserRefreshSuccess
	// MetricUserRefreshFailure counts failed /auth/me refreshes, each of
	// which forces a signed-out state.
	MetricUserRefreshFailure
	// MetricSessionHydrated counts hydrations that restored an identity
	// from the persisted store.
	MetricSessionHydrated
	// MetricSessionCleared counts persisted identity teardowns.
	MetricSessionCleared
	// MetricGuardAllowed counts navigations admitted by the guard.
	MetricGuardAllowed
	// MetricGuardRedirected counts navigations redirected by the guard.
	MetricGuardRedirected
	// MetricPasswordResetRequest counts password reset requests.
	MetricPasswordResetRequest
	// MetricPasswordResetConfirm counts completed password resets.
	MetricPasswordResetConfirm
	// MetricPasswordChange counts completed password changes.
	MetricPasswordChange
	// MetricAccountDeleted counts completed account deletions.
	MetricAccountDeleted
	// MetricAuthorizeLatency is the guard decision latency histogram.
	MetricAuthorizeLatency

	metricIDCount
)

const histogramBucketCount = 8

// authorizeLatencyBounds are the upper bounds of the first seven histogram
// buckets; the eighth bucket is +Inf.
var authorizeLatencyBounds = [histogramBucketCount - 1]time.Duration{
	5 * time.Millisecond,
	10 * time.Millisecond,
	25 * time.Millisecond,
	50 * time.Millisecond,
	100 * time.Millisecond,
	250 * time.Millisecond,
	500 * time.Millisecond,
}

// Metrics holds atomic counters and one latency histogram. A disabled
// Metrics value turns every operation into a no-op.
type Metrics struct {
	enabled        bool
	latencyEnabled bool
	counters       [metricIDCount]atomic.Uint64
	latency        [histogramBucketCount]atomic.Uint64
}

func newMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled:        cfg.Enabled,
		latencyEnabled: cfg.Enabled && cfg.EnableLatencyHistograms,
	}
}

// Inc increments one counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	m.counters[id].Add(1)
}

// LatencyEnabled reports whether Observe records anything.
func (m *Metrics) LatencyEnabled() bool {
	return m != nil && m.latencyEnabled
}

// Observe records one guard decision duration into the latency histogram.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.latencyEnabled || id != MetricAuthorizeLatency {
		return
	}
	for i, bound := range authorizeLatencyBounds {
		if d <= bound {
			m.latency[i].Add(1)
			return
		}
	}
	m.latency[histogramBucketCount-1].Add(1)
}

// MetricsSnapshot is a point-in-time deep copy of all metrics.
type MetricsSnapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

// Snapshot copies the current counter and histogram values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		Counters:   map[MetricID]uint64{},
		Histograms: map[MetricID][]uint64{},
	}
	if m == nil || !m.enabled {
		return snap
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		if id == MetricAuthorizeLatency {
			continue
		}
		if v := m.counters[id].Load(); v > 0 {
			snap.Counters[id] = v
		}
	}
	if m.latencyEnabled {
		buckets := make([]uint64, histogramBucketCount)
		for i := range m.latency {
			buckets[i] = m.latency[i].Load()
		}
		snap.Histograms[MetricAuthorizeLatency] = buckets
	}
	return snap
}
