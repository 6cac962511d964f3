package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/karev/london-stays/internal/config"
)

func TestEncodeDecodePayloadRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	hdr.Set("X-Total", "42")
	body := []byte(`{"count":42}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(bs)
	if !ok {
		t.Fatal("decodePayload rejected its own encoding")
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" || gotHdr.Get("X-Total") != "42" {
		t.Errorf("headers = %v", gotHdr)
	}
	if string(gotBody) != string(body) {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestDecodePayloadRejectsTruncatedInput(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	bs, err := encodePayload(http.StatusOK, hdr, []byte("body"))
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	for _, cut := range [][]byte{nil, bs[:4], bs[:7], bs[:10]} {
		if _, _, _, ok := decodePayload(cut); ok {
			t.Errorf("decodePayload accepted %d truncated bytes", len(cut))
		}
	}
}

func TestCacheKeyVariesWithStrategy(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
	c1 := cacheContext(t, "/listings", "page=1")
	c2 := cacheContext(t, "/listings", "page=2")
	if cacheKeyFrom(cfg, c1) == cacheKeyFrom(cfg, c2) {
		t.Error("route_query strategy ignored the query string")
	}

	cfg.KeyStrategy = "route"
	if cacheKeyFrom(cfg, c1) != cacheKeyFrom(cfg, c2) {
		t.Error("route strategy keyed on the query string")
	}
}

func TestCacheKeyCarriesPrefix(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "stays", KeyStrategy: "route_query"}
	key := cacheKeyFrom(cfg, cacheContext(t, "/home", ""))
	if !strings.HasPrefix(key, "stays:") {
		t.Errorf("key = %q, want stays: prefix", key)
	}
}

func TestCaptureWriterRespectsLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 5}
	if _, err := cw.Write([]byte("0123456789")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if cw.buf.String() != "01234" {
		t.Errorf("buffered %q, want first 5 bytes", cw.buf.String())
	}
	// The client still receives the full body.
	if rec.Body.String() != "0123456789" {
		t.Errorf("client saw %q", rec.Body.String())
	}
	if cw.size != 10 {
		t.Errorf("size = %d, want 10", cw.size)
	}
}

func TestDisabledCacheIsPassThrough(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: false}, nil)
	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})

	c := cacheContext(t, "/home", "")
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called {
		t.Error("next handler not invoked")
	}
}

// TestCacheIsScopedPerRoute wires routes the way main does: the cache
// middleware attached only to aggregate endpoints, never to /auth. Session
// responses differ per cookie, so serving one client's body to another
// would leak identity.
func TestCacheIsScopedPerRoute(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer rdb.Close()

	cfg := config.CacheConfig{
		Enabled:     true,
		Methods:     map[string]bool{"GET": true},
		TTL:         time.Minute,
		KeyStrategy: "route_query",
		Prefix:      "cache",
	}
	cache := NewRedisCache(cfg, rdb)

	e := echo.New()
	e.GET("/home", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"total_listings": 100})
	}, cache)
	e.GET("/auth/user", func(c echo.Context) error {
		cookie, err := c.Cookie("session")
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusOK, echo.Map{"authenticated": false})
		}
		return c.JSON(http.StatusOK, echo.Map{"authenticated": true, "user": cookie.Value})
	})

	sessionReq := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/auth/user", nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: "session", Value: token})
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	withSession := sessionReq("alice-token")
	if !strings.Contains(withSession.Body.String(), "alice-token") {
		t.Fatalf("session response = %s", withSession.Body.String())
	}

	anonymous := sessionReq("")
	if strings.Contains(anonymous.Body.String(), "alice-token") {
		t.Fatalf("anonymous client received another user's session response: %s", anonymous.Body.String())
	}
	if !strings.Contains(anonymous.Body.String(), `"authenticated":false`) {
		t.Errorf("anonymous response = %s", anonymous.Body.String())
	}
	if anonymous.Header().Get("X-Cache") != "" {
		t.Errorf("X-Cache = %q on a session route, want unset", anonymous.Header().Get("X-Cache"))
	}

	// The aggregate route does go through the cache.
	for i, want := range []string{"MISS", "HIT"} {
		req := httptest.NewRequest(http.MethodGet, "/home", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if got := rec.Header().Get("X-Cache"); got != want {
			t.Errorf("request %d: X-Cache = %q, want %q", i, got, want)
		}
		if !strings.Contains(rec.Body.String(), "100") {
			t.Errorf("request %d: body = %s", i, rec.Body.String())
		}
	}
}

func cacheContext(t *testing.T, path, query string) echo.Context {
	t.Helper()
	target := path
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())
	c.SetPath(path)
	return c
}
