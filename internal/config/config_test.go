package config

import (
	"testing"
	"time"
)

// TestLoad_Defaults verifies sensible local-development defaults.
// PRE: no ZUZZ_* variables set
// POST: defaults match the documented values
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr=%q", cfg.Addr)
	}
	if cfg.DBPath != "zuzz.db" {
		t.Errorf("DBPath=%q", cfg.DBPath)
	}
	if cfg.SchedulingRedirectDelay != 300*time.Millisecond {
		t.Errorf("SchedulingRedirectDelay=%v", cfg.SchedulingRedirectDelay)
	}
	if cfg.CountryHeader != "X-Vercel-IP-Country" {
		t.Errorf("CountryHeader=%q", cfg.CountryHeader)
	}
	if cfg.IsProduction() {
		t.Error("default env should not be production")
	}
}

// TestLoad_Overrides verifies env vars take precedence over defaults.
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ZUZZ_ADDR", ":9999")
	t.Setenv("ZUZZ_ENV", "production")
	t.Setenv("ZUZZ_SCHEDULING_REDIRECT_DELAY", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("Addr=%q", cfg.Addr)
	}
	if !cfg.IsProduction() {
		t.Error("expected production")
	}
	if cfg.SchedulingRedirectDelay != 2*time.Second {
		t.Errorf("SchedulingRedirectDelay=%v", cfg.SchedulingRedirectDelay)
	}
}
