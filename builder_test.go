package sessiongate

import (
	"errors"
	"testing"
	"time"

	"github.com/nexcollab/sessiongate/store"
)

func TestBuilderRequiresBaseURL(t *testing.T) {
	if _, err := New().WithStore(store.NewMemory()).Build(); err == nil {
		t.Fatal("missing base URL must fail validation")
	}
}

func TestBuilderRequiresStore(t *testing.T) {
	_, err := New().WithBaseURL("http://api.example.com").Build()
	if !errors.Is(err, ErrStoreRequired) {
		t.Fatalf("error = %v, want ErrStoreRequired", err)
	}
}

func TestBuilderSingleUse(t *testing.T) {
	b := New().WithBaseURL("http://api.example.com").WithStore(store.NewMemory())

	gw, err := b.Build()
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	t.Cleanup(gw.Close)

	if _, err := b.Build(); !errors.Is(err, ErrBuilderUsed) {
		t.Fatalf("second Build error = %v, want ErrBuilderUsed", err)
	}
}

func TestBuilderConfigIsCopied(t *testing.T) {
	cfg := defaultConfig()
	cfg.API.BaseURL = "http://api.example.com"

	gw, err := New().WithConfig(cfg).WithStore(store.NewMemory()).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(gw.Close)

	cfg.Routes.Login = "/mutated"
	if gw.config.Routes.Login != "/login" {
		t.Fatal("mutating the caller's config must not reach the gateway")
	}
}

func TestBuilderFailedBuildIsRetryable(t *testing.T) {
	b := New().WithStore(store.NewMemory())
	if _, err := b.Build(); err == nil {
		t.Fatal("expected validation failure")
	}

	// A failed Build does not consume the builder.
	gw, err := b.WithBaseURL("http://api.example.com").Build()
	if err != nil {
		t.Fatalf("Build after fixing config failed: %v", err)
	}
	gw.Close()
}

func TestConfigValidate(t *testing.T) {
	valid := defaultConfig()
	valid.API.BaseURL = "http://api.example.com"

	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"missing base URL", func(c *Config) { c.API.BaseURL = "" }, false},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }, false},
		{"empty login route", func(c *Config) { c.Routes.Login = "" }, false},
		{"empty dashboard route", func(c *Config) { c.Routes.Dashboard = "" }, false},
		{"empty role selection route", func(c *Config) { c.Routes.RoleSelection = "" }, false},
		{"audit enabled without buffer", func(c *Config) { c.Audit.Enabled = true; c.Audit.BufferSize = 0 }, false},
		{"zero timeout allowed", func(c *Config) { c.API.Timeout = 0 }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("Validate must reject this config")
			}
		})
	}
}
