package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/karev/london-stays/internal/repository"
)

// HostHandler serves the host table and the host-centric analytics.
type HostHandler struct {
	Hosts *repository.HostRepo
}

func NewHostHandler(hosts *repository.HostRepo) *HostHandler {
	if hosts == nil {
		panic("nil repository passed to NewHostHandler")
	}
	return &HostHandler{Hosts: hosts}
}

// List handles GET /hosts.
func (h *HostHandler) List(c echo.Context) error {
	page, pageSize, ok, err := parsePage(c)
	if !ok {
		return err
	}
	rows, err := h.Hosts.List(c.Request().Context(), page, pageSize)
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Experienced handles GET /hosts/experienced: the longest-tenured hosts.
func (h *HostHandler) Experienced(c echo.Context) error {
	limit, ok, err := boundedInt(c, "limit", 10, 100)
	if !ok {
		return err
	}
	rows, err := h.Hosts.Experienced(c.Request().Context(), limit)
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Types handles GET /hosts/types: superhost vs non-superhost comparison per
// neighbourhood.
func (h *HostHandler) Types(c echo.Context) error {
	rows, err := h.Hosts.Types(c.Request().Context())
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Interactions handles GET /hosts/interactions.
func (h *HostHandler) Interactions(c echo.Context) error {
	page, pageSize, ok, err := parsePage(c)
	if !ok {
		return err
	}
	rows, err := h.Hosts.Interactions(c.Request().Context(), page, pageSize)
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Verified handles GET /hosts/verified: identity-verification breakdown.
func (h *HostHandler) Verified(c echo.Context) error {
	onlyVerified, ok, err := optBool(c, "only_verified")
	if !ok {
		return err
	}
	rows, err := h.Hosts.Verified(c.Request().Context(), onlyVerified)
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// HighPerformers handles GET /hosts/high-performers. order_by is resolved
// through a closed set of sort keys; anything else is rejected.
func (h *HostHandler) HighPerformers(c echo.Context) error {
	minListings := 3
	if v, ok, err := optInt(c, "min_listings"); !ok {
		return err
	} else if v != nil {
		if *v < 0 {
			return badRequest(c, "min_listings", "must not be negative")
		}
		minListings = int(*v)
	}

	minRating := 4.7
	if v, ok, err := optFloat(c, "min_rating"); !ok {
		return err
	} else if v != nil {
		minRating = *v
	}

	sort, valid := repository.ParseHighPerformerSort(c.QueryParam("order_by"))
	if !valid {
		return badRequest(c, "order_by", "must be one of host_name, total_listings_count, average_value_score_across_listings, min_listing_rating")
	}

	rows, err := h.Hosts.HighPerformers(c.Request().Context(), minListings, minRating, sort)
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
