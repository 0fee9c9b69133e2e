package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	sessiongate "github.com/nexcollab/sessiongate"
	"github.com/nexcollab/sessiongate/api"
)

func newTestGateway(t *testing.T) (*sessiongate.Gateway, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	gw, err := sessiongate.New().
		WithBaseURL("http://api.invalid").
		WithRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()})).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(gw.Close)

	return gw, mr
}

func seedSession(t *testing.T, mr *miniredis.Miniredis, role api.Role) {
	t.Helper()

	userJSON, err := json.Marshal(api.User{ID: 1, Email: "u@example.com", Role: role})
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	mr.Set("sg:accessToken", "tok")
	mr.Set("sg:refreshToken", "ref")
	mr.Set("sg:user", string(userJSON))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGuardRedirectsGuests(t *testing.T) {
	gw, _ := newTestGateway(t)

	handler := Guard(gw, sessiongate.RouteMeta{RequiresAuth: true})(okHandler())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/login" {
		t.Fatalf("Location = %q, want /login", got)
	}
}

func TestGuardAdmitsAndAttachesSnapshot(t *testing.T) {
	gw, mr := newTestGateway(t)
	seedSession(t, mr, api.RoleBrand)

	var snap sessiongate.Snapshot
	var found bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snap, found = SnapshotFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := Guard(gw, sessiongate.RouteMeta{RequiresAuth: true, RequiresRole: true})(inner)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !found {
		t.Fatal("admitted request must carry the session snapshot")
	}
	if snap.User == nil || snap.User.Role != api.RoleBrand {
		t.Fatalf("snapshot user = %+v", snap.User)
	}
}

func TestGuardRedirectsRolelessToRoleSelection(t *testing.T) {
	gw, mr := newTestGateway(t)
	seedSession(t, mr, "")

	handler := Guard(gw, sessiongate.RouteMeta{RequiresAuth: true, RequiresRole: true})(okHandler())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/role-selection" {
		t.Fatalf("Location = %q, want /role-selection", got)
	}
}

func TestGuardNilGateway(t *testing.T) {
	handler := Guard(nil, sessiongate.RouteMeta{})(okHandler())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestRoleViewServesBrandVariant(t *testing.T) {
	gw, mr := newTestGateway(t)
	seedSession(t, mr, api.RoleBrand)

	brand := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("brand"))
	})
	creator := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("creator"))
	})

	handler := Guard(gw, sessiongate.RouteMeta{RequiresAuth: true})(RoleView(gw, brand, creator))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campaigns", nil))

	if got := rec.Body.String(); got != "brand" {
		t.Fatalf("body = %q, want brand variant", got)
	}
}

func TestRoleViewDefaultsToCreator(t *testing.T) {
	// No gateway and no snapshot: the creator variant is the fallback.
	creator := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("creator"))
	})
	brand := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("brand"))
	})

	rec := httptest.NewRecorder()
	RoleView(nil, brand, creator).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Body.String(); got != "creator" {
		t.Fatalf("body = %q, want creator fallback", got)
	}
}
