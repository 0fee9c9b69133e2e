package sessiongate

import (
	"testing"
	"time"
)

func TestMetricsDisabledIsNoOp(t *testing.T) {
	m := newMetrics(MetricsConfig{})
	m.Inc(MetricLoginSuccess)
	m.Observe(MetricAuthorizeLatency, time.Millisecond)

	snap := m.Snapshot()
	if len(snap.Counters) != 0 || len(snap.Histograms) != 0 {
		t.Fatalf("disabled metrics must stay empty, got %+v", snap)
	}

	var nilMetrics *Metrics
	nilMetrics.Inc(MetricLoginSuccess)
	if nilMetrics.LatencyEnabled() {
		t.Fatal("nil metrics must report latency disabled")
	}
}

func TestMetricsCounters(t *testing.T) {
	m := newMetrics(MetricsConfig{Enabled: true})
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLogout)

	snap := m.Snapshot()
	if snap.Counters[MetricLoginSuccess] != 2 {
		t.Fatalf("login counter = %d, want 2", snap.Counters[MetricLoginSuccess])
	}
	if snap.Counters[MetricLogout] != 1 {
		t.Fatalf("logout counter = %d, want 1", snap.Counters[MetricLogout])
	}
	// Untouched counters are omitted from the snapshot.
	if _, ok := snap.Counters[MetricRegisterSuccess]; ok {
		t.Fatal("zero counters must not appear in the snapshot")
	}
}

func TestMetricsOutOfRangeID(t *testing.T) {
	m := newMetrics(MetricsConfig{Enabled: true})
	m.Inc(metricIDCount)
	m.Inc(metricIDCount + 100)

	if len(m.Snapshot().Counters) != 0 {
		t.Fatal("out-of-range IDs must be ignored")
	}
}

func TestMetricsLatencyBuckets(t *testing.T) {
	m := newMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})
	m.Observe(MetricAuthorizeLatency, time.Millisecond)     // bucket 0 (<=5ms)
	m.Observe(MetricAuthorizeLatency, 20*time.Millisecond)  // bucket 2 (<=25ms)
	m.Observe(MetricAuthorizeLatency, 400*time.Millisecond) // bucket 6 (<=500ms)
	m.Observe(MetricAuthorizeLatency, 2*time.Second)        // bucket 7 (+Inf)
	m.Observe(MetricLoginSuccess, 10*time.Millisecond)      // wrong ID, ignored

	buckets := m.Snapshot().Histograms[MetricAuthorizeLatency]
	if len(buckets) != histogramBucketCount {
		t.Fatalf("bucket count = %d, want %d", len(buckets), histogramBucketCount)
	}
	want := []uint64{1, 0, 1, 0, 0, 0, 1, 1}
	for i, n := range want {
		if buckets[i] != n {
			t.Fatalf("bucket[%d] = %d, want %d (all: %v)", i, buckets[i], n, buckets)
		}
	}
}

func TestMetricsSnapshotIsACopy(t *testing.T) {
	m := newMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})
	m.Inc(MetricLoginSuccess)
	m.Observe(MetricAuthorizeLatency, time.Millisecond)

	snap := m.Snapshot()
	snap.Counters[MetricLoginSuccess] = 99
	snap.Histograms[MetricAuthorizeLatency][0] = 99

	fresh := m.Snapshot()
	if fresh.Counters[MetricLoginSuccess] != 1 {
		t.Fatal("mutating a snapshot must not affect the live counters")
	}
	if fresh.Histograms[MetricAuthorizeLatency][0] != 1 {
		t.Fatal("mutating a snapshot must not affect the live histogram")
	}
}
