package config

import (
	"testing"
	"time"
)

func TestLoadCacheConfigDefaults(t *testing.T) {
	for _, k := range []string{"CACHE_ENABLED", "CACHE_METHODS", "CACHE_TTL", "CACHE_KEY_STRATEGY", "CACHE_PREFIX", "CACHE_MAX_BODY_BYTES"} {
		t.Setenv(k, "")
	}
	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Error("cache enabled by default")
	}
	if !cfg.Methods["GET"] || len(cfg.Methods) != 1 {
		t.Errorf("default methods = %v, want GET only", cfg.Methods)
	}
	if cfg.TTL != 30*time.Second {
		t.Errorf("default TTL = %s, want 30s", cfg.TTL)
	}
	if cfg.KeyStrategy != "route_query" || cfg.Prefix != "cache" {
		t.Errorf("default strategy/prefix = %q/%q", cfg.KeyStrategy, cfg.Prefix)
	}
	if cfg.MaxBodyBytes != 1048576 {
		t.Errorf("default max body = %d, want 1 MiB", cfg.MaxBodyBytes)
	}
}

func TestLoadCacheConfigFromEnv(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_METHODS", "get, head")
	t.Setenv("CACHE_TTL", "2m")

	cfg := LoadCacheConfig()
	if cfg.Enabled {
		t.Error("CACHE_ENABLED=false not honored")
	}
	if !cfg.Methods["GET"] || !cfg.Methods["HEAD"] {
		t.Errorf("methods = %v, want GET and HEAD upper-cased", cfg.Methods)
	}
	if cfg.TTL != 2*time.Minute {
		t.Errorf("TTL = %s, want 2m", cfg.TTL)
	}
}

func TestLoadRateLimitConfigClampsInvalidValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Errorf("capacity = %d, want clamp to 1", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 {
		t.Errorf("refill tokens = %d, want clamp to 1", cfg.RefillTokens)
	}
	// TTL must cover several refill intervals or buckets expire mid-cycle.
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Errorf("TTL = %s, want at least %s", cfg.TTL, 5*cfg.RefillInterval)
	}
}

func TestLoadRateLimitConfigBurstOverridesCapacity(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "60")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("RATE_LIMIT_REFILL_EVERY", "500ms")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 10 {
		t.Errorf("capacity = %d, want burst override 10", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 || cfg.RefillInterval != 500*time.Millisecond {
		t.Errorf("refill = %d per %s, want 1 per 500ms", cfg.RefillTokens, cfg.RefillInterval)
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{"yes", false, true},
		{"off", true, false},
		{"FALSE", true, false},
		{"maybe", true, true}, // unparseable keeps the default
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("TEST_ENV_BOOL", tt.val)
			if got := envBool("TEST_ENV_BOOL", tt.def); got != tt.want {
				t.Errorf("envBool(%q, %v) = %v, want %v", tt.val, tt.def, got, tt.want)
			}
		})
	}
}
