package sessiongate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/nexcollab/sessiongate/api"
	"github.com/nexcollab/sessiongate/store"
	"github.com/nexcollab/sessiongate/token"
)

// Gateway is the session/authorization core: it tracks who the current
// visitor is, keeps the persisted store consistent with every identity
// mutation, and feeds the navigation guard. Each Gateway is an independent
// session context; hosts may run several in one process.
//
// Gateway methods are safe to call from multiple goroutines after
// [Builder.Build]. Two racing mutations are not fenced against each other:
// the later-resolving call's state update wins. Hosts needing stronger
// ordering must serialize their own calls.
type Gateway struct {
	config  Config
	client  *api.Client
	store   store.Store
	metrics *Metrics
	audit   *auditDispatcher

	mu            sync.Mutex
	user          *api.User
	authenticated bool
	loading       bool
	lastError     string
	hydrated      bool
}

// storeTokens adapts the persisted store into the API client's token
// source, so every authenticated request reads the current access token.
type storeTokens struct {
	st store.Store
}

func (s *storeTokens) AccessToken(ctx context.Context) (string, bool) {
	token, ok, err := s.st.Get(ctx, store.KeyAccessToken)
	if err != nil || !ok {
		return "", false
	}
	return token, true
}

// Close flushes the audit dispatcher. The Gateway must not be used after
// Close.
func (g *Gateway) Close() {
	if g == nil {
		return
	}
	if g.audit != nil {
		g.audit.Close()
	}
}

// MetricsSnapshot returns a copy of the gateway's counters and histograms.
func (g *Gateway) MetricsSnapshot() MetricsSnapshot {
	if g == nil || g.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return g.metrics.Snapshot()
}

// AuditDropped reports how many audit events were shed under backpressure.
func (g *Gateway) AuditDropped() uint64 {
	if g == nil || g.audit == nil {
		return 0
	}
	return g.audit.Dropped()
}

func (g *Gateway) metricInc(id MetricID) {
	if g == nil || g.metrics == nil {
		return
	}
	g.metrics.Inc(id)
}

// Snapshot returns the derived view of the current identity state. The
// returned user is a copy; mutating it does not affect the gateway.
func (g *Gateway) Snapshot() Snapshot {
	if g == nil {
		return Snapshot{}
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := Snapshot{
		Authenticated: g.authenticated,
		Loading:       g.loading,
		Err:           g.lastError,
	}
	if g.user != nil {
		u := *g.user
		snap.User = &u
	}
	return snap
}

// ClearError drops the last recorded action error.
func (g *Gateway) ClearError() {
	if g == nil {
		return
	}
	g.mu.Lock()
	g.lastError = ""
	g.mu.Unlock()
}

// IsAuthenticated is an O(1) presence check of the persisted access token.
// It never contacts the network and never re-validates the token.
func (g *Gateway) IsAuthenticated(ctx context.Context) bool {
	if g == nil || g.store == nil {
		return false
	}
	_, ok, err := g.store.Get(ctx, store.KeyAccessToken)
	return err == nil && ok
}

// StoredUser deserializes the cached user record. A missing or malformed
// value yields nil, never an error; corrupted persistence must read as
// "signed out".
func (g *Gateway) StoredUser(ctx context.Context) *api.User {
	if g == nil || g.store == nil {
		return nil
	}
	raw, ok, err := g.store.Get(ctx, store.KeyUser)
	if err != nil || !ok {
		return nil
	}
	var user api.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// TokenInfo decodes the persisted access token's claims for diagnostics.
// It returns nil info with a nil error when no token is stored, and
// [token.ErrMalformed] when the stored value is not a decodable JWT. The
// claims are unverified; never use them for an authorization decision.
func (g *Gateway) TokenInfo(ctx context.Context) (*token.Info, error) {
	if g == nil || g.store == nil {
		return nil, ErrGatewayNotReady
	}
	raw, ok, err := g.store.Get(ctx, store.KeyAccessToken)
	if err != nil || !ok {
		return nil, err
	}
	return token.Peek(raw)
}

// InitializeAuth hydrates the in-memory state from the persisted store.
// It runs the store read at most once per Gateway lifetime when the
// session is not already authenticated, and is safe to call redundantly:
// repeated calls observe the hydrated flag and return immediately. Run it
// before installing the router; the guard middleware also calls it
// defensively.
func (g *Gateway) InitializeAuth(ctx context.Context) {
	if g == nil || g.store == nil {
		return
	}
	g.mu.Lock()
	if g.hydrated || g.authenticated {
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()

	// Pure store read: no network, no partial-commit hazard. A concurrent
	// double hydration reads the same slots and converges.
	user := g.StoredUser(ctx)
	authenticated := g.IsAuthenticated(ctx)

	g.mu.Lock()
	g.hydrated = true
	if user != nil && authenticated {
		g.user = user
		g.authenticated = true
	}
	restored := g.authenticated
	g.mu.Unlock()

	if restored {
		g.metricInc(MetricSessionHydrated)
		g.emitAudit(ctx, auditEventHydrate, true, user, nil, nil)
	}
}

// begin opens the uniform async-action contract: loading on, error
// cleared.
func (g *Gateway) begin() {
	g.mu.Lock()
	g.loading = true
	g.lastError = ""
	g.mu.Unlock()
}

// finish closes the contract: loading off, and on failure the normalized
// message recorded. Runs whether the action succeeded or not.
func (g *Gateway) finish(err error, fallback string) {
	g.mu.Lock()
	g.loading = false
	if err != nil {
		g.lastError = normalizeMessage(err, fallback)
	}
	g.mu.Unlock()
}

// normalizeMessage prefers the server's structured error list, then the
// transport error's message, then the static per-action default.
func normalizeMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && len(apiErr.Messages) > 0 {
		return strings.Join(apiErr.Messages, "; ")
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}

// setIdentity installs a fresh user record and marks the session
// authenticated.
func (g *Gateway) setIdentity(user api.User) {
	g.mu.Lock()
	u := user
	g.user = &u
	g.authenticated = true
	g.hydrated = true
	g.mu.Unlock()
}

// setUser replaces only the user record, leaving the authenticated flag
// untouched (role selection, profile refresh).
func (g *Gateway) setUser(user api.User) {
	g.mu.Lock()
	u := user
	g.user = &u
	g.mu.Unlock()
}

// clearIdentity drops the in-memory identity without touching the store.
func (g *Gateway) clearIdentity() {
	g.mu.Lock()
	g.user = nil
	g.authenticated = false
	g.mu.Unlock()
}

// persistAuth mirrors a full auth payload into the store: both tokens and
// the serialized user record.
func (g *Gateway) persistAuth(ctx context.Context, payload *api.AuthPayload) error {
	if err := g.store.Set(ctx, store.KeyAccessToken, payload.Tokens.Access); err != nil {
		return err
	}
	if err := g.store.Set(ctx, store.KeyRefreshToken, payload.Tokens.Refresh); err != nil {
		return err
	}
	return g.persistUser(ctx, payload.User)
}

// persistUser mirrors only the user record; tokens stay as they are.
func (g *Gateway) persistUser(ctx context.Context, user api.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return g.store.Set(ctx, store.KeyUser, string(data))
}

// clearPersisted removes all three identity slots in one operation.
func (g *Gateway) clearPersisted(ctx context.Context) error {
	err := g.store.Delete(ctx, store.KeyAccessToken, store.KeyRefreshToken, store.KeyUser)
	if err == nil {
		g.metricInc(MetricSessionCleared)
	}
	return err
}
