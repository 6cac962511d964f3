package config

import (
	"testing"
	"time"
)

func TestParseMethods(t *testing.T) {
	m := parseMethods("get, POST ,,head")
	for _, want := range []string{"GET", "POST", "HEAD"} {
		if !m[want] {
			t.Errorf("%s missing from %v", want, m)
		}
	}
	if len(m) != 3 {
		t.Errorf("len = %d, want 3", len(m))
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_BAD", "forty-two")
	t.Setenv("TEST_BOOL", "on")
	t.Setenv("TEST_DUR", "90s")

	if got := envStr("TEST_STR", "def"); got != "value" {
		t.Errorf("envStr = %q", got)
	}
	if got := envStr("TEST_UNSET", "def"); got != "def" {
		t.Errorf("envStr default = %q", got)
	}
	if got := envInt("TEST_INT", 1); got != 42 {
		t.Errorf("envInt = %d", got)
	}
	if got := envInt("TEST_INT_BAD", 1); got != 1 {
		t.Errorf("envInt bad value = %d, want default", got)
	}
	if !envBool("TEST_BOOL", false) {
		t.Error("envBool(on) = false")
	}
	if got := envDur("TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("envDur = %v", got)
	}
	if got := envDur("TEST_UNSET", time.Second); got != time.Second {
		t.Errorf("envDur default = %v", got)
	}
}

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	cfg := LoadRateLimitConfig()
	if !cfg.Enabled {
		t.Error("rate limiting disabled by default")
	}
	if cfg.Capacity != 120 {
		t.Errorf("capacity = %d, want 120", cfg.Capacity)
	}
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Errorf("ttl %v below refill floor %v", cfg.TTL, 5*cfg.RefillInterval)
	}
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	if !cfg.Methods["GET"] {
		t.Error("GET not cacheable by default")
	}
	if cfg.TTL != 60*time.Second {
		t.Errorf("ttl = %v, want 60s", cfg.TTL)
	}
	if cfg.KeyStrategy != "route_query" {
		t.Errorf("strategy = %q", cfg.KeyStrategy)
	}
}
