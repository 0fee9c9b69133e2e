package sessiongate

import (
	"context"
	"time"

	"github.com/nexcollab/sessiongate/api"
)

const (
	auditEventRegister             = "register"
	auditEventLogin                = "login"
	auditEventLogout               = "logout"
	auditEventRoleSelect           = "role_select"
	auditEventUserRefresh          = "user_refresh"
	auditEventPasswordResetRequest = "password_reset_request"
	auditEventPasswordResetConfirm = "password_reset_confirm"
	auditEventPasswordChange       = "password_change"
	auditEventAccountDelete        = "account_delete"
	auditEventHydrate              = "session_hydrate"
	auditEventGuard                = "guard_decision"
)

// emitAudit queues one event. The metadata callback is only invoked when a
// dispatcher is attached, so callers pay nothing with auditing disabled.
func (g *Gateway) emitAudit(ctx context.Context, eventType string, success bool, user *api.User, err error, metadata func() map[string]string) {
	if g == nil || g.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp: time.Now(),
		EventType: eventType,
		Namespace: g.config.Store.Namespace,
		Success:   success,
	}
	if user != nil {
		event.UserID = user.ID
		event.Email = user.Email
	}
	if err != nil {
		event.Error = err.Error()
	}
	if metadata != nil {
		event.Metadata = metadata()
	}

	g.audit.Emit(ctx, event)
}
