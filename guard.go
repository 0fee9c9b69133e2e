package sessiongate

import (
	"context"
	"strconv"
	"time"

	"github.com/nexcollab/sessiongate/api"
)

// Decide maps one navigation attempt onto a verdict. It is total, pure,
// and synchronous; it never mutates the snapshot. Precedence is
// first-match-wins, and the guest rule runs before the auth and role rules
// so an authenticated-but-roleless visitor hitting a guest page lands on
// role selection instead of being treated as unauthenticated.
func Decide(meta RouteMeta, snap Snapshot, routes RoutesConfig) Verdict {
	if meta.RequiresGuest && snap.Authenticated {
		if !snap.HasRole() {
			return Verdict{Redirect: routes.RoleSelection}
		}
		return Verdict{Redirect: routes.Dashboard}
	}
	if meta.RequiresAuth && !snap.Authenticated {
		return Verdict{Redirect: routes.Login}
	}
	if meta.RequiresRole && !snap.HasRole() {
		return Verdict{Redirect: routes.RoleSelection}
	}
	if meta.RequiresNoRole && snap.HasRole() {
		return Verdict{Redirect: routes.Dashboard}
	}
	return Verdict{Allow: true}
}

// Authorize evaluates the guard for one navigation against the current
// session state. Hydration happens through [Gateway.InitializeAuth], which
// is idempotent, so calling Authorize before an explicit initialization
// phase is safe.
func (g *Gateway) Authorize(ctx context.Context, meta RouteMeta) Verdict {
	if g == nil {
		return Verdict{Redirect: defaultConfig().Routes.Login}
	}
	if g.metrics.LatencyEnabled() {
		start := time.Now()
		defer func() {
			g.metrics.Observe(MetricAuthorizeLatency, time.Since(start))
		}()
	}

	g.InitializeAuth(ctx)
	snap := g.Snapshot()
	verdict := Decide(meta, snap, g.config.Routes)

	if verdict.Allow {
		g.metricInc(MetricGuardAllowed)
	} else {
		g.metricInc(MetricGuardRedirected)
	}
	g.emitAudit(ctx, auditEventGuard, verdict.Allow, snap.User, nil, func() map[string]string {
		return map[string]string{
			"allow":    strconv.FormatBool(verdict.Allow),
			"redirect": verdict.Redirect,
		}
	})
	return verdict
}

// ResolveRoleView picks between a brand-facing and a creator-facing
// variant of a view by role alone: BRAND gets the brand variant, anything
// else (INFLUENCER, the legacy CREATOR alias, or no role yet) gets the
// creator variant. This is presentation routing, not an authorization
// decision; the server stays the authority on what each role may fetch.
func ResolveRoleView[T any](role api.Role, brand, creator T) T {
	if api.NormalizeRole(role) == api.RoleBrand {
		return brand
	}
	return creator
}
