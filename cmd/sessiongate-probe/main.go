// Command sessiongate-probe runs a smoke pass against a marketplace API:
// login, current-user fetch, a few guard decisions, and logout. Audit
// events are written to stdout as JSON lines so the output can be piped
// into jq.
//
// Run:
//
//	go run ./cmd/sessiongate-probe -base-url http://localhost:8000 \
//	  -email alice@example.com -password secret
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	sessiongate "github.com/nexcollab/sessiongate"
	"github.com/nexcollab/sessiongate/api"
)

func main() {
	var (
		baseURL   = flag.String("base-url", "", "marketplace API origin (required)")
		email     = flag.String("email", "", "account email (required)")
		password  = flag.String("password", "", "account password (required)")
		redisAddr = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		namespace = flag.String("namespace", "probe", "store namespace for this probe session")
		timeout   = flag.Duration("timeout", 10*time.Second, "per-request timeout")
	)
	flag.Parse()

	if *baseURL == "" || *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "base-url, email, and password are required")
		os.Exit(2)
	}

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		defer mr.Close()
		addr = mr.Addr()
	}

	cfg := sessiongate.Config{
		API: sessiongate.APIConfig{
			BaseURL:   *baseURL,
			Timeout:   *timeout,
			UserAgent: "sessiongate-probe",
		},
		Store: sessiongate.StoreConfig{
			RedisPrefix: "sg",
			Namespace:   *namespace,
		},
		Routes: sessiongate.RoutesConfig{
			Login:         "/login",
			Dashboard:     "/dashboard",
			RoleSelection: "/role-selection",
		},
		Audit: sessiongate.AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: sessiongate.MetricsConfig{Enabled: true},
	}

	gw, err := sessiongate.New().
		WithConfig(cfg).
		WithRedis(redis.NewClient(&redis.Options{Addr: addr})).
		WithAuditSink(sessiongate.NewJSONWriterSink(os.Stdout)).
		WithMetricsEnabled(true).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build gateway: %v\n", err)
		os.Exit(1)
	}
	defer gw.Close()

	ctx := context.Background()

	if _, err := gw.Login(ctx, api.LoginRequest{Email: *email, Password: *password}); err != nil {
		fmt.Fprintf(os.Stderr, "login: %v\n", err)
		os.Exit(1)
	}

	payload, err := gw.FetchCurrentUser(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch current user: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "signed in as %s (role %q)\n", payload.User.Email, payload.User.Role)

	if info, err := gw.TokenInfo(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "access token: undecodable (%v)\n", err)
	} else if info != nil {
		fmt.Fprintf(os.Stderr, "access token: jti=%s user=%d expires=%s\n",
			info.ID, info.UserID, info.ExpiresAt.Format(time.RFC3339))
	}

	routes := []struct {
		name string
		meta sessiongate.RouteMeta
	}{
		{"dashboard", sessiongate.RouteMeta{RequiresAuth: true, RequiresRole: true}},
		{"role-selection", sessiongate.RouteMeta{RequiresAuth: true, RequiresNoRole: true}},
		{"login-page", sessiongate.RouteMeta{RequiresGuest: true}},
	}
	for _, r := range routes {
		verdict := gw.Authorize(ctx, r.meta)
		if verdict.Allow {
			fmt.Fprintf(os.Stderr, "guard %-14s allow\n", r.name)
		} else {
			fmt.Fprintf(os.Stderr, "guard %-14s redirect -> %s\n", r.name, verdict.Redirect)
		}
	}

	if err := gw.Logout(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "logout: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "logged out, session cleared")
}
