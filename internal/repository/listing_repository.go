// Package repository contains the data access layer. Every method runs one
// parameterized query against PostgreSQL and scans rows into model structs;
// there is no caching or write coordination here because the listings
// dataset is immutable reference data.
package repository

import (
	"context"
	"database/sql"

	"github.com/karev/london-stays/internal/model"
)

// ListingRepo manages read access to the listings table.
type ListingRepo struct {
	db *sql.DB
}

func NewListingRepo(db *sql.DB) *ListingRepo { return &ListingRepo{db: db} }

const listingColumns = `id, host_id, name, description, latitude, longitude,
	neighbourhood_cleansed, room_type, room_type_simple, accommodates,
	bathrooms, bedrooms, beds, price, picture_url, number_of_reviews`

func scanListing(rows *sql.Rows, l *model.Listing) error {
	return rows.Scan(
		&l.ID, &l.HostID, &l.Name, &l.Description, &l.Latitude, &l.Longitude,
		&l.Neighbourhood, &l.RoomType, &l.RoomTypeSimple, &l.Accommodates,
		&l.Bathrooms, &l.Bedrooms, &l.Beds, &l.Price, &l.PictureURL,
		&l.NumberOfReviews,
	)
}

// List returns one page of listing summaries ordered by id ascending.
func (r *ListingRepo) List(ctx context.Context, page, pageSize int) ([]model.ListingSummary, error) {
	const q = `SELECT
			id,
			name,
			neighbourhood_cleansed AS neighbourhood,
			room_type,
			price,
			number_of_reviews
		FROM listings
		ORDER BY id
		LIMIT $1 OFFSET $2`

	offset := (page - 1) * pageSize
	rows, err := r.db.QueryContext(ctx, q, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ListingSummary, 0, pageSize)
	for rows.Next() {
		var s model.ListingSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Neighbourhood, &s.RoomType, &s.Price, &s.NumberOfReviews); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID returns a single listing joined with its host's response,
// acceptance and superhost columns. Listings without a matching host row
// still resolve, with the host fields null.
func (r *ListingRepo) GetByID(ctx context.Context, id int64) (model.ListingDetail, error) {
	const q = `SELECT
			l.id, l.host_id, l.name, l.description, l.latitude, l.longitude,
			l.neighbourhood_cleansed, l.room_type, l.room_type_simple,
			l.accommodates, l.bathrooms, l.bedrooms, l.beds, l.price,
			l.picture_url, l.number_of_reviews,
			h.host_name, h.response_rate, h.acceptance_rate, h.is_superhost
		FROM listings l
		LEFT JOIN host h ON h.host_id = l.host_id
		WHERE l.id = $1`

	var d model.ListingDetail
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.HostID, &d.Name, &d.Description, &d.Latitude, &d.Longitude,
		&d.Neighbourhood, &d.RoomType, &d.RoomTypeSimple, &d.Accommodates,
		&d.Bathrooms, &d.Bedrooms, &d.Beds, &d.Price, &d.PictureURL,
		&d.NumberOfReviews,
		&d.HostName, &d.HostResponseRate, &d.HostAcceptanceRate, &d.HostIsSuperhost,
	)
	if err == sql.ErrNoRows {
		return model.ListingDetail{}, ErrListingNotFound
	}
	if err != nil {
		return model.ListingDetail{}, err
	}
	return d, nil
}

// Search returns one page of listings matching the provided filters,
// ordered by name. Absent filters are omitted from the WHERE clause
// entirely rather than defaulted to permissive extremes.
func (r *ListingRepo) Search(ctx context.Context, f SearchFilter, page, pageSize int) ([]model.Listing, error) {
	cond, args := f.Build()

	q := `SELECT ` + listingColumns + `
		FROM listings
		WHERE ` + cond + `
		ORDER BY name ASC
		LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Listing, 0, pageSize)
	for rows.Next() {
		var l model.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// MapQuery bundles the optional map viewport filters. Nil fields are not
// constrained.
type MapQuery struct {
	LatMin, LatMax *float64
	LngMin, LngMax *float64
	PriceLow       *float64
	PriceHigh      *float64
	Neighbourhood  string
	Limit          int
}

// Map returns marker rows inside the supplied bounding box, capped at
// q.Limit. Ratings come from a LEFT JOIN on review_info so unreviewed
// listings still get a marker.
func (r *ListingRepo) Map(ctx context.Context, q MapQuery) ([]model.MapListing, error) {
	where := newCondBuilder()
	where.add("l.latitude IS NOT NULL AND l.longitude IS NOT NULL")
	if q.LatMin != nil {
		where.addArg("l.latitude >= ", *q.LatMin)
	}
	if q.LatMax != nil {
		where.addArg("l.latitude <= ", *q.LatMax)
	}
	if q.LngMin != nil {
		where.addArg("l.longitude >= ", *q.LngMin)
	}
	if q.LngMax != nil {
		where.addArg("l.longitude <= ", *q.LngMax)
	}
	if q.PriceLow != nil {
		where.addArg("l.price >= ", *q.PriceLow)
	}
	if q.PriceHigh != nil {
		where.addArg("l.price <= ", *q.PriceHigh)
	}
	if q.Neighbourhood != "" {
		where.addArg("l.neighbourhood_cleansed = ", q.Neighbourhood)
	}

	sqlText := `SELECT
			l.id,
			l.name,
			l.latitude,
			l.longitude,
			l.price,
			l.room_type,
			l.neighbourhood_cleansed AS neighbourhood,
			ri.scores_rating
		FROM listings l
		LEFT JOIN review_info ri ON ri.id = l.id
		WHERE ` + where.cond() + `
		ORDER BY l.id
		LIMIT ` + placeholder(len(where.args)+1)
	args := append(where.args, q.Limit)

	rows, err := r.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.MapListing, 0, q.Limit)
	for rows.Next() {
		var m model.MapListing
		if err := rows.Scan(&m.ID, &m.Name, &m.Latitude, &m.Longitude, &m.Price, &m.RoomType, &m.Neighbourhood, &m.ScoresRating); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Neighbourhoods returns the distinct neighbourhood names in alphabetical
// order, used to populate filter dropdowns.
func (r *ListingRepo) Neighbourhoods(ctx context.Context) ([]model.Neighbourhood, error) {
	const q = `SELECT DISTINCT neighbourhood_cleansed AS neighbourhood
		FROM listings
		ORDER BY neighbourhood_cleansed`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Neighbourhood{}
	for rows.Next() {
		var n model.Neighbourhood
		if err := rows.Scan(&n.Neighbourhood); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
