package sessiongate

import (
	"context"

	"github.com/nexcollab/sessiongate/api"
)

// RequestPasswordReset asks the server to email a reset link. Stateless
// pass-through: no persisted or in-memory identity changes.
func (g *Gateway) RequestPasswordReset(ctx context.Context, email string) (*api.MessagePayload, error) {
	if g == nil || g.client == nil {
		return nil, ErrGatewayNotReady
	}
	g.begin()

	payload, err := g.client.RequestPasswordReset(ctx, email)
	if err != nil {
		g.finish(err, "Password reset request failed")
		g.emitAudit(ctx, auditEventPasswordResetRequest, false, nil, err, func() map[string]string {
			return map[string]string{"email": email}
		})
		return nil, err
	}

	g.finish(nil, "")
	g.metricInc(MetricPasswordResetRequest)
	g.emitAudit(ctx, auditEventPasswordResetRequest, true, nil, nil, func() map[string]string {
		return map[string]string{"email": email}
	})
	return payload, nil
}

// ConfirmPasswordReset completes a reset flow with the emailed uid and
// token. Stateless pass-through.
func (g *Gateway) ConfirmPasswordReset(ctx context.Context, uid, token, password, passwordConfirm string) (*api.MessagePayload, error) {
	if g == nil || g.client == nil {
		return nil, ErrGatewayNotReady
	}
	g.begin()

	payload, err := g.client.ConfirmPasswordReset(ctx, uid, token, password, passwordConfirm)
	if err != nil {
		g.finish(err, "Password reset failed")
		g.emitAudit(ctx, auditEventPasswordResetConfirm, false, nil, err, nil)
		return nil, err
	}

	g.finish(nil, "")
	g.metricInc(MetricPasswordResetConfirm)
	g.emitAudit(ctx, auditEventPasswordResetConfirm, true, nil, nil, nil)
	return payload, nil
}

// ChangePassword rotates the password of the signed-in account. Stateless
// pass-through; the server keeps the current session valid.
func (g *Gateway) ChangePassword(ctx context.Context, oldPassword, newPassword, newPasswordConfirm string) (*api.MessagePayload, error) {
	if g == nil || g.client == nil {
		return nil, ErrGatewayNotReady
	}
	if !g.IsAuthenticated(ctx) {
		return nil, ErrNotAuthenticated
	}
	g.begin()

	payload, err := g.client.ChangePassword(ctx, oldPassword, newPassword, newPasswordConfirm)
	if err != nil {
		g.finish(err, "Password change failed")
		g.emitAudit(ctx, auditEventPasswordChange, false, g.Snapshot().User, err, nil)
		return nil, err
	}

	g.finish(nil, "")
	g.metricInc(MetricPasswordChange)
	g.emitAudit(ctx, auditEventPasswordChange, true, g.Snapshot().User, nil, nil)
	return payload, nil
}

// DeleteAccount erases the account (GDPR) and, on success, clears all
// persisted and in-memory identity state.
func (g *Gateway) DeleteAccount(ctx context.Context) (*api.MessagePayload, error) {
	if g == nil || g.client == nil {
		return nil, ErrGatewayNotReady
	}
	if !g.IsAuthenticated(ctx) {
		return nil, ErrNotAuthenticated
	}
	g.begin()
	user := g.Snapshot().User

	payload, err := g.client.DeleteAccount(ctx)
	if err != nil {
		g.finish(err, "Account deletion failed")
		g.emitAudit(ctx, auditEventAccountDelete, false, user, err, nil)
		return nil, err
	}

	err = g.clearPersisted(ctx)
	g.clearIdentity()
	g.finish(err, "Account deleted but local session cleanup failed")
	if err != nil {
		g.emitAudit(ctx, auditEventAccountDelete, false, user, err, nil)
		return nil, err
	}

	g.metricInc(MetricAccountDeleted)
	g.emitAudit(ctx, auditEventAccountDelete, true, user, nil, nil)
	return payload, nil
}
