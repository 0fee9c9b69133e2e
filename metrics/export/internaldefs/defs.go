// Package internaldefs holds the metric name table shared by the
// exporters. It is not part of the public API.
package internaldefs

import (
	sessiongate "github.com/nexcollab/sessiongate"
)

// CounterDef binds one MetricID to its exported name and help text.
type CounterDef struct {
	ID   sessiongate.MetricID
	Name string
	Help string
}

// HistogramDef binds one histogram MetricID to its exported name and help
// text.
type HistogramDef struct {
	ID   sessiongate.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter in render order.
var CounterDefs = []CounterDef{
	{ID: sessiongate.MetricRegisterSuccess, Name: "sessiongate_register_success_total", Help: "Successful registrations."},
	{ID: sessiongate.MetricRegisterFailure, Name: "sessiongate_register_failure_total", Help: "Failed registrations."},
	{ID: sessiongate.MetricLoginSuccess, Name: "sessiongate_login_success_total", Help: "Successful logins."},
	{ID: sessiongate.MetricLoginFailure, Name: "sessiongate_login_failure_total", Help: "Failed logins."},
	{ID: sessiongate.MetricLogout, Name: "sessiongate_logout_total", Help: "Session teardowns."},
	{ID: sessiongate.MetricRoleSelected, Name: "sessiongate_role_selected_total", Help: "Committed role selections."},
	{ID: sessiongate.MetricRoleSelectFailure, Name: "sessiongate_role_select_failure_total", Help: "Rejected role selections."},
	{ID: sessiongate.MetricUserRefreshSuccess, Name: "sessiongate_user_refresh_success_total", Help: "Successful current-user refreshes."},
	{ID: sessiongate.MetricUserRefreshFailure, Name: "sessiongate_user_refresh_failure_total", Help: "Failed current-user refreshes."},
	{ID: sessiongate.MetricSessionHydrated, Name: "sessiongate_session_hydrated_total", Help: "Identities restored from the persisted store."},
	{ID: sessiongate.MetricSessionCleared, Name: "sessiongate_session_cleared_total", Help: "Persisted identity teardowns."},
	{ID: sessiongate.MetricGuardAllowed, Name: "sessiongate_guard_allowed_total", Help: "Navigations admitted by the guard."},
	{ID: sessiongate.MetricGuardRedirected, Name: "sessiongate_guard_redirected_total", Help: "Navigations redirected by the guard."},
	{ID: sessiongate.MetricPasswordResetRequest, Name: "sessiongate_password_reset_request_total", Help: "Password reset requests."},
	{ID: sessiongate.MetricPasswordResetConfirm, Name: "sessiongate_password_reset_confirm_total", Help: "Completed password resets."},
	{ID: sessiongate.MetricPasswordChange, Name: "sessiongate_password_change_total", Help: "Completed password changes."},
	{ID: sessiongate.MetricAccountDeleted, Name: "sessiongate_account_deleted_total", Help: "Completed account deletions."},
}

// HistogramDefs lists every exported histogram in render order.
var HistogramDefs = []HistogramDef{
	{ID: sessiongate.MetricAuthorizeLatency, Name: "sessiongate_authorize_latency_seconds", Help: "Guard decision latency histogram."},
}

// HistogramBounds are the textual upper bounds of the eight buckets.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix are the bound labels usable in OTel instrument
// names.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw bucket slice to the fixed
// eight-bucket layout.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into the cumulative form
// Prometheus histograms expect.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
