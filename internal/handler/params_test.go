package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

// newTestContext builds an echo context for a GET request with the given
// query string and returns the recorder so tests can inspect the response.
func newTestContext(t *testing.T, query string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return body["error"]
}

func TestParsePageDefaults(t *testing.T) {
	c, _ := newTestContext(t, "")
	page, pageSize, ok, err := parsePage(c)
	if err != nil || !ok {
		t.Fatalf("parsePage failed: ok=%v err=%v", ok, err)
	}
	if page != 1 || pageSize != 10 {
		t.Fatalf("got page=%d page_size=%d, want 1 and 10", page, pageSize)
	}
}

func TestParsePageExplicitValues(t *testing.T) {
	c, _ := newTestContext(t, "page=3&page_size=25")
	page, pageSize, ok, err := parsePage(c)
	if err != nil || !ok {
		t.Fatalf("parsePage failed: ok=%v err=%v", ok, err)
	}
	if page != 3 || pageSize != 25 {
		t.Fatalf("got page=%d page_size=%d, want 3 and 25", page, pageSize)
	}
}

func TestParsePageRejectsBadInput(t *testing.T) {
	for _, query := range []string{
		"page=0",
		"page=-1",
		"page=abc",
		"page_size=0",
		"page_size=101",
		"page_size=ten",
	} {
		c, rec := newTestContext(t, query)
		_, _, ok, err := parsePage(c)
		if err != nil {
			t.Fatalf("%s: handler error: %v", query, err)
		}
		if ok {
			t.Errorf("%s: accepted, want rejection", query)
			continue
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", query, rec.Code)
		}
		if msg := decodeError(t, rec); !strings.HasPrefix(msg, "invalid ") {
			t.Errorf("%s: error = %q, want invalid <field> prefix", query, msg)
		}
	}
}

func TestPathID(t *testing.T) {
	c, _ := newTestContext(t, "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	id, ok, err := pathID(c)
	if err != nil || !ok {
		t.Fatalf("pathID failed: ok=%v err=%v", ok, err)
	}
	if id != 42 {
		t.Fatalf("id = %d, want 42", id)
	}
}

func TestPathIDRejectsNonNumeric(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-5", "1.5", ""} {
		c, rec := newTestContext(t, "")
		c.SetParamNames("id")
		c.SetParamValues(raw)
		_, ok, err := pathID(c)
		if err != nil {
			t.Fatalf("%q: handler error: %v", raw, err)
		}
		if ok {
			t.Errorf("%q: accepted, want rejection", raw)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%q: status = %d, want 400", raw, rec.Code)
		}
	}
}

func TestOptFloat(t *testing.T) {
	c, _ := newTestContext(t, "min_price=49.5")
	v, ok, err := optFloat(c, "min_price")
	if err != nil || !ok {
		t.Fatalf("optFloat failed: ok=%v err=%v", ok, err)
	}
	if v == nil || *v != 49.5 {
		t.Fatalf("v = %v, want 49.5", v)
	}

	c, _ = newTestContext(t, "")
	v, ok, err = optFloat(c, "min_price")
	if err != nil || !ok || v != nil {
		t.Fatalf("absent param: v=%v ok=%v err=%v, want nil true nil", v, ok, err)
	}

	c, rec := newTestContext(t, "min_price=cheap")
	_, ok, err = optFloat(c, "min_price")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if ok || rec.Code != http.StatusBadRequest {
		t.Fatalf("bad value: ok=%v status=%d, want rejection with 400", ok, rec.Code)
	}
}

func TestOptIntRejectsFractions(t *testing.T) {
	c, rec := newTestContext(t, "min_beds=2.5")
	_, ok, err := optInt(c, "min_beds")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if ok || rec.Code != http.StatusBadRequest {
		t.Fatalf("ok=%v status=%d, want rejection with 400", ok, rec.Code)
	}
}

func TestBoundedInt(t *testing.T) {
	c, _ := newTestContext(t, "")
	v, ok, err := boundedInt(c, "limit", 500, 1000)
	if err != nil || !ok || v != 500 {
		t.Fatalf("default: v=%d ok=%v err=%v, want 500 true nil", v, ok, err)
	}

	c, _ = newTestContext(t, "limit=1000")
	v, ok, err = boundedInt(c, "limit", 500, 1000)
	if err != nil || !ok || v != 1000 {
		t.Fatalf("max: v=%d ok=%v err=%v, want 1000 true nil", v, ok, err)
	}

	for _, query := range []string{"limit=0", "limit=1001", "limit=lots"} {
		c, rec := newTestContext(t, query)
		_, ok, err := boundedInt(c, "limit", 500, 1000)
		if err != nil {
			t.Fatalf("%s: handler error: %v", query, err)
		}
		if ok || rec.Code != http.StatusBadRequest {
			t.Errorf("%s: ok=%v status=%d, want rejection with 400", query, ok, rec.Code)
		}
	}
}

func TestOptDate(t *testing.T) {
	c, _ := newTestContext(t, "after=2019-06-01")
	v, ok, err := optDate(c, "after", "1900-01-01")
	if err != nil || !ok || v != "2019-06-01" {
		t.Fatalf("v=%q ok=%v err=%v", v, ok, err)
	}

	c, _ = newTestContext(t, "")
	v, ok, err = optDate(c, "after", "1900-01-01")
	if err != nil || !ok || v != "1900-01-01" {
		t.Fatalf("default: v=%q ok=%v err=%v", v, ok, err)
	}

	for _, query := range []string{"after=2019-13-01", "after=june", "after=2019/06/01"} {
		c, rec := newTestContext(t, query)
		_, ok, err := optDate(c, "after", "1900-01-01")
		if err != nil {
			t.Fatalf("%s: handler error: %v", query, err)
		}
		if ok || rec.Code != http.StatusBadRequest {
			t.Errorf("%s: ok=%v status=%d, want rejection with 400", query, ok, rec.Code)
		}
	}
}

func TestOptBool(t *testing.T) {
	for query, want := range map[string]bool{
		"only_verified=true":  true,
		"only_verified=1":     true,
		"only_verified=false": false,
		"only_verified=0":     false,
		"":                    false,
	} {
		c, _ := newTestContext(t, query)
		v, ok, err := optBool(c, "only_verified")
		if err != nil || !ok {
			t.Fatalf("%s: ok=%v err=%v", query, ok, err)
		}
		if v != want {
			t.Errorf("%s: v=%v, want %v", query, v, want)
		}
	}

	c, rec := newTestContext(t, "only_verified=yes")
	_, ok, err := optBool(c, "only_verified")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if ok || rec.Code != http.StatusBadRequest {
		t.Fatalf("ok=%v status=%d, want rejection with 400", ok, rec.Code)
	}
}
