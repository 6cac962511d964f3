package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/karev/london-stays/internal/repository"
)

// AnalyticsHandler serves the fixed aggregation endpoints.
type AnalyticsHandler struct {
	Analytics *repository.AnalyticsRepo
}

func NewAnalyticsHandler(analytics *repository.AnalyticsRepo) *AnalyticsHandler {
	if analytics == nil {
		panic("nil repository passed to NewAnalyticsHandler")
	}
	return &AnalyticsHandler{Analytics: analytics}
}

// Home handles GET /home: the landing page counters.
func (h *AnalyticsHandler) Home(c echo.Context) error {
	stats, err := h.Analytics.HomeStats(c.Request().Context())
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Overview handles GET /analytics/overview.
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	rows, err := h.Analytics.Overview(c.Request().Context())
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// RoomTypes handles GET /analytics/room_types.
func (h *AnalyticsHandler) RoomTypes(c echo.Context) error {
	rows, err := h.Analytics.RoomTypes(c.Request().Context())
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// RoomTypeSentiment handles GET /analytics/room_type_sentiment with an
// optional room_type filter.
func (h *AnalyticsHandler) RoomTypeSentiment(c echo.Context) error {
	rows, err := h.Analytics.RoomTypeSentiment(c.Request().Context(), c.QueryParam("room_type"))
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// MonthlyPrice handles GET /analytics/monthly_price. after/before default
// to a range wide enough to cover the whole dataset.
func (h *AnalyticsHandler) MonthlyPrice(c echo.Context) error {
	after, ok, err := optDate(c, "after", "1900-01-01")
	if !ok {
		return err
	}
	before, ok, err := optDate(c, "before", "2100-01-01")
	if !ok {
		return err
	}
	rows, err := h.Analytics.MonthlyPrice(c.Request().Context(), after, before)
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// HiddenGems handles GET /analytics/hidden_gems.
func (h *AnalyticsHandler) HiddenGems(c echo.Context) error {
	minRating := 4.8
	if v, ok, err := optFloat(c, "min_rating"); !ok {
		return err
	} else if v != nil {
		minRating = *v
	}
	rows, err := h.Analytics.HiddenGems(c.Request().Context(), minRating)
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
