package config

import (
	"testing"
	"time"
)

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	cfg := LoadRateLimitConfig()
	if !cfg.Enabled {
		t.Fatal("rate limiting should default to enabled")
	}
	if cfg.Capacity != 10 {
		t.Fatalf("Capacity = %d, want 10", cfg.Capacity)
	}
	if cfg.RefillInterval != 2*time.Second {
		t.Fatalf("RefillInterval = %s, want 2s", cfg.RefillInterval)
	}
	if cfg.Prefix != "rl" {
		t.Fatalf("Prefix = %q, want rl", cfg.Prefix)
	}
}

func TestLoadRateLimitConfigClamping(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Fatalf("Capacity = %d, want clamp to 1", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 {
		t.Fatalf("RefillTokens = %d, want clamp to 1", cfg.RefillTokens)
	}
	// TTL must cover several refill intervals or buckets vanish mid-burst.
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Fatalf("TTL = %s, want at least %s", cfg.TTL, 5*cfg.RefillInterval)
	}
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Fatal("cache should default to enabled")
	}
	if cfg.TTL != 5*time.Second {
		t.Fatalf("TTL = %s, want 5s", cfg.TTL)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Fatalf("MaxBodyBytes = %d, want 1 MiB", cfg.MaxBodyBytes)
	}
}

func TestEnvBoolParsing(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "off")
	if cfg := LoadRateLimitConfig(); cfg.Enabled {
		t.Fatal("RATE_LIMIT_ENABLED=off should disable the limiter")
	}
	t.Setenv("RATE_LIMIT_ENABLED", "definitely")
	if cfg := LoadRateLimitConfig(); !cfg.Enabled {
		t.Fatal("unparseable bool should fall back to the default (enabled)")
	}
}
