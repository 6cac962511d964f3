package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/karev/london-stays/internal/repository"
)

// ListingHandler aggregates the repositories behind the listing endpoints.
type ListingHandler struct {
	Listings   *repository.ListingRepo
	ReviewRepo *repository.ReviewRepo
}

func NewListingHandler(listings *repository.ListingRepo, reviews *repository.ReviewRepo) *ListingHandler {
	if listings == nil || reviews == nil {
		panic("nil repository passed to NewListingHandler")
	}
	return &ListingHandler{Listings: listings, ReviewRepo: reviews}
}

// List handles GET /listings: one page of listing summaries ordered by id.
func (h *ListingHandler) List(c echo.Context) error {
	page, pageSize, ok, err := parsePage(c)
	if !ok {
		return err
	}
	rows, err := h.Listings.List(c.Request().Context(), page, pageSize)
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Get handles GET /listings/:id: a single listing joined with its host.
func (h *ListingHandler) Get(c echo.Context) error {
	id, ok, err := pathID(c)
	if !ok {
		return err
	}
	d, err := h.Listings.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrListingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
		}
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// Search handles GET /listings/search. Each filter is optional; provided
// bounds are AND-conjoined, absent ones never enter the WHERE clause.
func (h *ListingHandler) Search(c echo.Context) error {
	page, pageSize, ok, err := parsePage(c)
	if !ok {
		return err
	}

	f := repository.SearchFilter{
		Name:          c.QueryParam("name"),
		Description:   c.QueryParam("description"),
		PictureURL:    c.QueryParam("picture_url"),
		Neighbourhood: c.QueryParam("neighbourhood_cleansed"),
		RoomType:      c.QueryParam("room_type_simple"),
	}

	floats := []struct {
		name string
		dst  **float64
	}{
		{"latitude_low", &f.LatitudeLow}, {"latitude_high", &f.LatitudeHigh},
		{"longitude_low", &f.LongitudeLow}, {"longitude_high", &f.LongitudeHigh},
		{"bathrooms_low", &f.BathroomsLow}, {"bathrooms_high", &f.BathroomsHigh},
		{"price_low", &f.PriceLow}, {"price_high", &f.PriceHigh},
	}
	for _, p := range floats {
		v, ok, err := optFloat(c, p.name)
		if !ok {
			return err
		}
		*p.dst = v
	}

	ints := []struct {
		name string
		dst  **int64
	}{
		{"accommodates_low", &f.AccommodatesLow}, {"accommodates_high", &f.AccommodatesHigh},
		{"bedrooms_low", &f.BedroomsLow}, {"bedrooms_high", &f.BedroomsHigh},
		{"beds_low", &f.BedsLow}, {"beds_high", &f.BedsHigh},
		{"host_id_low", &f.HostIDLow}, {"host_id_high", &f.HostIDHigh},
		{"id_low", &f.IDLow}, {"id_high", &f.IDHigh},
	}
	for _, p := range ints {
		v, ok, err := optInt(c, p.name)
		if !ok {
			return err
		}
		*p.dst = v
	}

	rows, err := h.Listings.Search(c.Request().Context(), f, page, pageSize)
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Map handles GET /listings/map: marker rows for the current viewport. The
// bounding box is a plain four-inequality filter; limit caps the result
// volume so panning the map stays cheap.
func (h *ListingHandler) Map(c echo.Context) error {
	q := repository.MapQuery{Neighbourhood: c.QueryParam("neighbourhood")}

	bounds := []struct {
		name string
		dst  **float64
	}{
		{"lat_min", &q.LatMin}, {"lat_max", &q.LatMax},
		{"lng_min", &q.LngMin}, {"lng_max", &q.LngMax},
		{"price_low", &q.PriceLow}, {"price_high", &q.PriceHigh},
	}
	for _, p := range bounds {
		v, ok, err := optFloat(c, p.name)
		if !ok {
			return err
		}
		*p.dst = v
	}

	limit, ok, err := boundedInt(c, "limit", 500, 1000)
	if !ok {
		return err
	}
	q.Limit = limit

	rows, err := h.Listings.Map(c.Request().Context(), q)
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Reviews handles GET /listings/:id/reviews: one page of the listing's
// reviews, newest first.
func (h *ListingHandler) Reviews(c echo.Context) error {
	id, ok, err := pathID(c)
	if !ok {
		return err
	}
	page, pageSize, ok, err := parsePage(c)
	if !ok {
		return err
	}
	rows, err := h.ReviewRepo.ListByListing(c.Request().Context(), id, page, pageSize)
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Neighbourhoods handles GET /neighbourhoods.
func (h *ListingHandler) Neighbourhoods(c echo.Context) error {
	rows, err := h.Listings.Neighbourhoods(c.Request().Context())
	if err != nil {
		return dbError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
