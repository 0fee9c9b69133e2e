package prometheus

import (
	"net/http/httptest"
	"strings"
	"testing"

	sessiongate "github.com/nexcollab/sessiongate"
)

type fakeSource struct {
	snapshot sessiongate.MetricsSnapshot
	dropped  uint64
}

func (f *fakeSource) MetricsSnapshot() sessiongate.MetricsSnapshot { return f.snapshot }
func (f *fakeSource) AuditDropped() uint64                         { return f.dropped }

func TestRenderCounters(t *testing.T) {
	source := &fakeSource{
		snapshot: sessiongate.MetricsSnapshot{
			Counters: map[sessiongate.MetricID]uint64{
				sessiongate.MetricLoginSuccess:   3,
				sessiongate.MetricGuardAllowed:   10,
				sessiongate.MetricSessionCleared: 1,
			},
			Histograms: map[sessiongate.MetricID][]uint64{},
		},
		dropped: 2,
	}

	out := NewFromSource(source).Render()

	for _, want := range []string{
		"# TYPE sessiongate_login_success_total counter",
		"sessiongate_login_success_total 3",
		"sessiongate_guard_allowed_total 10",
		"sessiongate_session_cleared_total 1",
		"sessiongate_audit_dropped_total 2",
		// Untouched counters render as zero, keeping the series stable.
		"sessiongate_logout_total 0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHistogramIsCumulative(t *testing.T) {
	source := &fakeSource{
		snapshot: sessiongate.MetricsSnapshot{
			Counters: map[sessiongate.MetricID]uint64{},
			Histograms: map[sessiongate.MetricID][]uint64{
				sessiongate.MetricAuthorizeLatency: {1, 0, 2, 0, 0, 0, 0, 1},
			},
		},
	}

	out := NewFromSource(source).Render()

	for _, want := range []string{
		"# TYPE sessiongate_authorize_latency_seconds histogram",
		`sessiongate_authorize_latency_seconds_bucket{le="0.005"} 1`,
		`sessiongate_authorize_latency_seconds_bucket{le="0.025"} 3`,
		`sessiongate_authorize_latency_seconds_bucket{le="+Inf"} 4`,
		"sessiongate_authorize_latency_seconds_count 4",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEmptySource(t *testing.T) {
	out := NewFromSource(&fakeSource{
		snapshot: sessiongate.MetricsSnapshot{
			Counters:   map[sessiongate.MetricID]uint64{},
			Histograms: map[sessiongate.MetricID][]uint64{},
		},
	}).Render()

	if out != "" {
		t.Fatalf("empty source must render nothing, got:\n%s", out)
	}
}

func TestHandlerContentType(t *testing.T) {
	source := &fakeSource{
		snapshot: sessiongate.MetricsSnapshot{
			Counters:   map[sessiongate.MetricID]uint64{sessiongate.MetricLogout: 1},
			Histograms: map[sessiongate.MetricID][]uint64{},
		},
	}

	rec := httptest.NewRecorder()
	NewFromSource(source).Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Fatalf("Content-Type = %q", got)
	}
	if !strings.Contains(rec.Body.String(), "sessiongate_logout_total 1") {
		t.Fatalf("handler body missing counter:\n%s", rec.Body.String())
	}
}
