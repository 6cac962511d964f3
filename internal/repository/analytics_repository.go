package repository

import (
	"context"
	"database/sql"

	"github.com/karev/london-stays/internal/model"
)

// AnalyticsRepo holds the fixed aggregation queries behind /home and the
// /analytics endpoints. Each method is one statement; the relational engine
// does all the work and the rows pass straight through to JSON.
type AnalyticsRepo struct {
	db *sql.DB
}

func NewAnalyticsRepo(db *sql.DB) *AnalyticsRepo { return &AnalyticsRepo{db: db} }

// HomeStats returns the landing page counters.
func (r *AnalyticsRepo) HomeStats(ctx context.Context) (model.HomeStats, error) {
	const q = `SELECT
			COUNT(*) AS total_listings,
			AVG(CAST(price AS FLOAT)) AS avg_price,
			COUNT(DISTINCT neighbourhood_cleansed) AS total_neighborhoods
		FROM listings`

	var s model.HomeStats
	err := r.db.QueryRowContext(ctx, q).Scan(&s.TotalListings, &s.AvgPrice, &s.TotalNeighborhoods)
	return s, err
}

// Overview reports listing density and rounded average price per
// neighbourhood, densest first.
func (r *AnalyticsRepo) Overview(ctx context.Context) ([]model.NeighbourhoodOverview, error) {
	const q = `SELECT
			l.neighbourhood_cleansed,
			COUNT(l.id) AS number_of_listings,
			ROUND(AVG(l.price)) AS average_price
		FROM listings l
		GROUP BY l.neighbourhood_cleansed
		ORDER BY number_of_listings DESC, average_price DESC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.NeighbourhoodOverview{}
	for rows.Next() {
		var o model.NeighbourhoodOverview
		if err := rows.Scan(&o.Neighbourhood, &o.NumberOfListings, &o.AveragePrice); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// RoomTypes returns the room-type distribution with each type's share of
// the whole dataset.
func (r *AnalyticsRepo) RoomTypes(ctx context.Context) ([]model.RoomTypeStat, error) {
	const q = `SELECT
			room_type_simple,
			COUNT(id) AS number_of_listings,
			CAST(COUNT(id) * 100.0 / (SELECT COUNT(*) FROM listings) AS DECIMAL(5,2)) AS percentage_of_total
		FROM listings
		GROUP BY room_type_simple
		ORDER BY number_of_listings DESC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.RoomTypeStat{}
	for rows.Next() {
		var s model.RoomTypeStat
		if err := rows.Scan(&s.RoomTypeSimple, &s.NumberOfListings, &s.PercentageOfTotal); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// RoomTypeSentiment reports the share of positive reviews per room type.
// A non-empty roomType narrows the result to that single type.
func (r *AnalyticsRepo) RoomTypeSentiment(ctx context.Context, roomType string) ([]model.RoomTypeSentiment, error) {
	q := `SELECT
			l.room_type_simple AS room_type,
			ROUND(AVG(CASE r.sentiment WHEN 'Positive' THEN 1 ELSE 0 END) * 100, 2) AS percent_positive_reviews,
			COUNT(DISTINCT l.id) AS number_of_listings
		FROM listings l
		JOIN reviews r ON l.id = r.listing_id
		GROUP BY l.room_type_simple`
	args := []any{}
	if roomType != "" {
		q += `
		HAVING l.room_type_simple = $1`
		args = append(args, roomType)
	}
	q += `
		ORDER BY percent_positive_reviews DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.RoomTypeSentiment{}
	for rows.Next() {
		var s model.RoomTypeSentiment
		if err := rows.Scan(&s.RoomType, &s.PercentPositiveReviews, &s.NumberOfListings); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// MonthlyPrice estimates the price trend over time, grouping listings by
// the month their reviews were left. after/before are inclusive YYYY-MM-DD
// bounds applied to the review month.
func (r *AnalyticsRepo) MonthlyPrice(ctx context.Context, after, before string) ([]model.MonthlyPrice, error) {
	const q = `SELECT
			TO_CHAR(r.date, 'YYYY-MM') AS review_month,
			COUNT(DISTINCT l.id) AS listings_reviewed_count,
			ROUND(AVG(l.price)::NUMERIC, 2) AS average_price_of_reviewed_listings
		FROM reviews r
		JOIN listings l ON r.listing_id = l.id
		WHERE l.price IS NOT NULL
		  AND TO_CHAR(r.date, 'YYYY-MM') BETWEEN $1 AND $2
		GROUP BY review_month
		ORDER BY review_month`

	rows, err := r.db.QueryContext(ctx, q, after, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.MonthlyPrice{}
	for rows.Next() {
		var m model.MonthlyPrice
		if err := rows.Scan(&m.ReviewMonth, &m.ListingsReviewedCount, &m.AveragePrice); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// HiddenGems finds listings whose rating and value score both exceed
// minRating while sitting below their neighbourhood's average review count
// and below the neighbourhood+room-type average price.
func (r *AnalyticsRepo) HiddenGems(ctx context.Context, minRating float64) ([]model.HiddenGem, error) {
	const q = `WITH NeighbourhoodAverages AS (
			SELECT
				neighbourhood_cleansed,
				room_type_simple,
				AVG(price) AS avg_price_for_room_type
			FROM listings
			WHERE price IS NOT NULL
			GROUP BY neighbourhood_cleansed, room_type_simple
		),
		NeighbourhoodReviewAvg AS (
			SELECT
				l_inner.neighbourhood_cleansed,
				AVG(ri_inner.number_of_reviews) AS avg_reviews
			FROM review_info ri_inner
			JOIN listings l_inner ON ri_inner.id = l_inner.id
			WHERE ri_inner.number_of_reviews IS NOT NULL
			GROUP BY l_inner.neighbourhood_cleansed
		)
		SELECT
			l.id AS listing_id,
			l.name AS listing_name,
			l.neighbourhood_cleansed,
			l.room_type_simple,
			ri.scores_rating,
			ri.scores_value,
			ri.number_of_reviews,
			l.price,
			ROUND(nra.avg_reviews::NUMERIC, 2) AS avg_neighbourhood_reviews,
			ROUND(na.avg_price_for_room_type::NUMERIC, 2) AS avg_neighbourhood_price_for_room_type
		FROM listings l
		JOIN review_info ri ON l.id = ri.id
		JOIN NeighbourhoodAverages na
			ON l.neighbourhood_cleansed = na.neighbourhood_cleansed
			AND l.room_type_simple = na.room_type_simple
		JOIN NeighbourhoodReviewAvg nra
			ON l.neighbourhood_cleansed = nra.neighbourhood_cleansed
		WHERE ri.scores_rating > $1
		  AND ri.scores_value > $1
		  AND ri.number_of_reviews IS NOT NULL
		  AND l.price IS NOT NULL
		  AND ri.number_of_reviews < nra.avg_reviews
		  AND l.price < na.avg_price_for_room_type
		ORDER BY l.neighbourhood_cleansed, l.room_type_simple, ri.scores_rating DESC`

	rows, err := r.db.QueryContext(ctx, q, minRating)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.HiddenGem{}
	for rows.Next() {
		var g model.HiddenGem
		if err := rows.Scan(&g.ListingID, &g.ListingName, &g.Neighbourhood, &g.RoomTypeSimple,
			&g.ScoresRating, &g.ScoresValue, &g.NumberOfReviews, &g.Price,
			&g.AvgNeighbourhoodReviews, &g.AvgNeighbourhoodPrice); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
