// Package middleware integrates the session gateway with net/http hosts:
// a guard that evaluates route requirements before serving, and a
// role-view selector for pages with brand and creator variants.
package middleware

import (
	"context"
	"net/http"

	sessiongate "github.com/nexcollab/sessiongate"
)

type snapshotContextKey struct{}

// SnapshotFromContext retrieves the session snapshot the guard attached
// to an admitted request.
func SnapshotFromContext(ctx context.Context) (sessiongate.Snapshot, bool) {
	snap, ok := ctx.Value(snapshotContextKey{}).(sessiongate.Snapshot)
	return snap, ok
}

// Guard evaluates the route's requirements against the gateway before
// each request. Admitted requests carry the snapshot in their context;
// everything else is answered with a 303 redirect to the verdict's path.
func Guard(gw *sessiongate.Gateway, meta sessiongate.RouteMeta) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if gw == nil {
				http.Error(w, "service unavailable", http.StatusServiceUnavailable)
				return
			}

			verdict := gw.Authorize(r.Context(), meta)
			if !verdict.Allow {
				http.Redirect(w, r, verdict.Redirect, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), snapshotContextKey{}, gw.Snapshot())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RoleView serves the brand handler for BRAND sessions and the creator
// handler for everyone else, matching the view-variant resolution of the
// marketplace UI. Pair it with Guard; it does no admission of its own.
func RoleView(gw *sessiongate.Gateway, brand, creator http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var role sessiongate.Role
		if snap, ok := SnapshotFromContext(r.Context()); ok && snap.User != nil {
			role = snap.User.Role
		} else if gw != nil {
			if snap := gw.Snapshot(); snap.User != nil {
				role = snap.User.Role
			}
		}
		sessiongate.ResolveRoleView(role, brand, creator).ServeHTTP(w, r)
	})
}
