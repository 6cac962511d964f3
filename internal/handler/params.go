// Package handler exposes the HTTP handlers of the query service. Every
// endpoint follows the same shape: validate the query-string parameters,
// call one repository method, serialize the rows. This file holds the shared
// parameter parsing; malformed input is always rejected with HTTP 400 and a
// field-specific message rather than silently defaulted.
package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// badRequest writes the 400 response for a malformed parameter.
func badRequest(c echo.Context, field, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid " + field + ": " + msg})
}

// dbError logs a database failure and surfaces a generic 500. Queries are
// never retried; the dataset is static so the client can simply refetch.
func dbError(c echo.Context, err error) error {
	c.Logger().Errorf("database error on %s: %v", c.Path(), err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}

// parsePage reads page (>=1, default 1) and page_size (1-100, default 10).
// The ok result is false when a 400 response has already been written.
func parsePage(c echo.Context) (page, pageSize int, ok bool, err error) {
	page, pageSize = 1, defaultPageSize
	if raw := c.QueryParam("page"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 {
			return 0, 0, false, badRequest(c, "page", "must be a positive integer")
		}
		page = n
	}
	if raw := c.QueryParam("page_size"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 || n > maxPageSize {
			return 0, 0, false, badRequest(c, "page_size", "must be an integer between 1 and 100")
		}
		pageSize = n
	}
	return page, pageSize, true, nil
}

// pathID parses the numeric :id path segment.
func pathID(c echo.Context) (int64, bool, error) {
	id, convErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if convErr != nil || id < 1 {
		return 0, false, badRequest(c, "id", "must be a positive integer")
	}
	return id, true, nil
}

// optFloat returns a pointer to the parsed value, or nil when the parameter
// is absent.
func optFloat(c echo.Context, name string) (*float64, bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, true, nil
	}
	v, convErr := strconv.ParseFloat(raw, 64)
	if convErr != nil {
		return nil, false, badRequest(c, name, "must be a number")
	}
	return &v, true, nil
}

// optInt returns a pointer to the parsed value, or nil when the parameter
// is absent.
func optInt(c echo.Context, name string) (*int64, bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, true, nil
	}
	v, convErr := strconv.ParseInt(raw, 10, 64)
	if convErr != nil {
		return nil, false, badRequest(c, name, "must be an integer")
	}
	return &v, true, nil
}

// boundedInt parses an optional integer parameter, falling back to def when
// absent. Values outside [1, max] are rejected with 400, not clamped.
func boundedInt(c echo.Context, name string, def, max int) (int, bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, true, nil
	}
	v, convErr := strconv.Atoi(raw)
	if convErr != nil || v < 1 || v > max {
		return 0, false, badRequest(c, name, "must be an integer between 1 and "+strconv.Itoa(max))
	}
	return v, true, nil
}

// optDate parses an optional YYYY-MM-DD parameter, falling back to def.
func optDate(c echo.Context, name, def string) (string, bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, true, nil
	}
	if _, convErr := time.Parse("2006-01-02", raw); convErr != nil {
		return "", false, badRequest(c, name, "must be a date in YYYY-MM-DD format")
	}
	return raw, true, nil
}

// optBool parses an optional boolean parameter ("true"/"false"/"1"/"0").
func optBool(c echo.Context, name string) (bool, bool, error) {
	raw := strings.ToLower(strings.TrimSpace(c.QueryParam(name)))
	switch raw {
	case "":
		return false, true, nil
	case "true", "1":
		return true, true, nil
	case "false", "0":
		return false, true, nil
	}
	bad := badRequest(c, name, "must be a boolean")
	return false, false, bad
}
