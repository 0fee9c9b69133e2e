package sessiongate

import (
	"context"
	"log"

	"github.com/nexcollab/sessiongate/api"
	"github.com/nexcollab/sessiongate/store"
)

// Register creates an account and signs the visitor in. On success both
// tokens and the user record are persisted before the in-memory state is
// updated; on failure persisted state is left untouched and the error is
// returned to the caller unchanged.
func (g *Gateway) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthPayload, error) {
	if g == nil || g.client == nil {
		return nil, ErrGatewayNotReady
	}
	g.begin()

	payload, err := g.client.Register(ctx, req)
	if err == nil {
		err = g.persistAuth(ctx, payload)
	}
	if err != nil {
		g.finish(err, "Registration failed")
		g.metricInc(MetricRegisterFailure)
		g.emitAudit(ctx, auditEventRegister, false, nil, err, func() map[string]string {
			return map[string]string{"email": req.Email}
		})
		return nil, err
	}

	g.setIdentity(payload.User)
	g.finish(nil, "")
	g.metricInc(MetricRegisterSuccess)
	g.emitAudit(ctx, auditEventRegister, true, &payload.User, nil, nil)
	return payload, nil
}

// Login authenticates with email and password. Persistence and state
// semantics match [Gateway.Register].
func (g *Gateway) Login(ctx context.Context, req api.LoginRequest) (*api.AuthPayload, error) {
	if g == nil || g.client == nil {
		return nil, ErrGatewayNotReady
	}
	g.begin()

	payload, err := g.client.Login(ctx, req)
	if err == nil {
		err = g.persistAuth(ctx, payload)
	}
	if err != nil {
		g.finish(err, "Login failed")
		g.metricInc(MetricLoginFailure)
		g.emitAudit(ctx, auditEventLogin, false, nil, err, func() map[string]string {
			return map[string]string{"email": req.Email}
		})
		return nil, err
	}

	g.setIdentity(payload.User)
	g.finish(nil, "")
	g.metricInc(MetricLoginSuccess)
	g.emitAudit(ctx, auditEventLogin, true, &payload.User, nil, nil)
	return payload, nil
}

// Logout tears the session down. The server is notified with the stored
// refresh token on a best-effort basis and the outcome of that call is
// discarded; the persisted and in-memory identity are cleared
// unconditionally, so a network fault can never leave a visitor stuck
// signed-in. The only error returned is a failure of the store teardown
// itself.
func (g *Gateway) Logout(ctx context.Context) error {
	if g == nil || g.store == nil {
		return ErrGatewayNotReady
	}
	g.begin()

	// Attempt the notification, discard its outcome.
	if g.client != nil {
		if refresh, ok, _ := g.store.Get(ctx, store.KeyRefreshToken); ok && refresh != "" {
			if err := g.client.Logout(ctx, refresh); err != nil {
				log.Print("sessiongate: logout notification failed")
			}
		}
	}

	// Unconditional teardown.
	user := g.Snapshot().User
	err := g.clearPersisted(ctx)
	g.clearIdentity()
	g.finish(err, "Logged out but local session cleanup failed")

	g.metricInc(MetricLogout)
	g.emitAudit(ctx, auditEventLogout, err == nil, user, err, nil)
	return err
}

// SelectRole commits the one-time role choice. Only the returned user
// record is persisted; tokens are untouched.
func (g *Gateway) SelectRole(ctx context.Context, role api.Role) (*api.UserPayload, error) {
	if g == nil || g.client == nil {
		return nil, ErrGatewayNotReady
	}
	g.begin()

	payload, err := g.client.SelectRole(ctx, role)
	if err == nil {
		err = g.persistUser(ctx, payload.User)
	}
	if err != nil {
		g.finish(err, "Role selection failed")
		g.metricInc(MetricRoleSelectFailure)
		g.emitAudit(ctx, auditEventRoleSelect, false, g.Snapshot().User, err, func() map[string]string {
			return map[string]string{"role": string(role)}
		})
		return nil, err
	}

	g.setUser(payload.User)
	g.finish(nil, "")
	g.metricInc(MetricRoleSelected)
	g.emitAudit(ctx, auditEventRoleSelect, true, &payload.User, nil, func() map[string]string {
		return map[string]string{"role": string(payload.User.Role)}
	})
	return payload, nil
}

// FetchCurrentUser re-validates the identity against the server and
// refreshes the cached user record. A failure is treated as an implicit
// logout of the in-memory state (the token most likely expired or was
// revoked); persisted storage is deliberately not cleared here.
func (g *Gateway) FetchCurrentUser(ctx context.Context) (*api.UserPayload, error) {
	if g == nil || g.client == nil {
		return nil, ErrGatewayNotReady
	}
	g.begin()

	payload, err := g.client.Me(ctx)
	if err == nil {
		err = g.persistUser(ctx, payload.User)
	}
	if err != nil {
		g.finish(err, "Failed to fetch user")
		g.clearIdentity()
		g.metricInc(MetricUserRefreshFailure)
		g.emitAudit(ctx, auditEventUserRefresh, false, nil, err, nil)
		return nil, err
	}

	g.setIdentity(payload.User)
	g.finish(nil, "")
	g.metricInc(MetricUserRefreshSuccess)
	g.emitAudit(ctx, auditEventUserRefresh, true, &payload.User, nil, nil)
	return payload, nil
}
