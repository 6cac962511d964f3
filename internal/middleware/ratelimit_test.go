package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/karev/london-stays/internal/config"
)

func TestAsInt64(t *testing.T) {
	cases := []struct {
		in   interface{}
		want int64
	}{
		{int64(7), 7},
		{int(3), 3},
		{float64(9), 9},
		{"garbage", 0},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := asInt64(tc.in); got != tc.want {
			t.Errorf("asInt64(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestBuildRateKeyStrategies(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_route"}
	c := rateContext(t, "/listings/search")
	key := cfg.Prefix
	got := buildRateKey(cfg, c)
	if !strings.HasPrefix(got, key) {
		t.Fatalf("key = %q, want %q prefix", got, key)
	}
	if !strings.Contains(got, "/listings/search") {
		t.Errorf("ip_route key %q does not carry the route", got)
	}

	cfg.KeyStrategy = "ip"
	if k := buildRateKey(cfg, c); strings.Contains(k, "/listings/search") {
		t.Errorf("ip key %q unexpectedly carries the route", k)
	}

	cfg.KeyStrategy = "route"
	a := buildRateKey(cfg, rateContext(t, "/home"))
	b := buildRateKey(cfg, rateContext(t, "/home"))
	if a != b {
		t.Errorf("route keys differ for identical routes: %q vs %q", a, b)
	}
}

func TestDisabledLimiterIsPassThrough(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil)
	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(rateContext(t, "/home")); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called {
		t.Error("next handler not invoked")
	}
}

func rateContext(t *testing.T, path string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "203.0.113.9:51000"
	c := echo.New().NewContext(req, httptest.NewRecorder())
	c.SetPath(path)
	return c
}
