package repository

import (
	"context"
	"database/sql"

	"github.com/karev/london-stays/internal/model"
)

// HostRepo manages read access to the host table and the host-centric
// analytical queries. The comparison queries live here rather than in the
// handlers so the SQL stays next to the row types it produces.
type HostRepo struct {
	db *sql.DB
}

func NewHostRepo(db *sql.DB) *HostRepo { return &HostRepo{db: db} }

// HighPerformerSort is the closed set of sort keys accepted by
// HighPerformers. Raw request values are mapped through
// ParseHighPerformerSort; only members of this set ever reach the ORDER BY
// text.
type HighPerformerSort string

const (
	SortHostID      HighPerformerSort = "host_id"
	SortHostName    HighPerformerSort = "host_name"
	SortListings    HighPerformerSort = "total_listings_count"
	SortValueScore  HighPerformerSort = "average_value_score_across_listings"
	SortWorstRating HighPerformerSort = "min_listing_rating"
)

// ParseHighPerformerSort validates a raw order_by token. The empty string
// selects the default host_id ordering; anything outside the closed set is
// rejected.
func ParseHighPerformerSort(raw string) (HighPerformerSort, bool) {
	switch HighPerformerSort(raw) {
	case "":
		return SortHostID, true
	case SortHostName, SortListings, SortValueScore, SortWorstRating:
		return HighPerformerSort(raw), true
	}
	return "", false
}

// orderClause maps each sort key to a statically known ORDER BY fragment.
func (s HighPerformerSort) orderClause() string {
	switch s {
	case SortHostName:
		return "ORDER BY h.host_name"
	case SortListings:
		return "ORDER BY h.total_listings_count DESC"
	case SortValueScore:
		return "ORDER BY average_value_score_across_listings DESC"
	case SortWorstRating:
		return "ORDER BY min_listing_rating DESC"
	default:
		return "ORDER BY h.host_id"
	}
}

// List returns one page of host rows ordered by host_id.
func (r *HostRepo) List(ctx context.Context, page, pageSize int) ([]model.Host, error) {
	const q = `SELECT
			host_id, host_name, is_superhost, identity_verified,
			response_rate, acceptance_rate, total_listings_count,
			years_experience
		FROM host
		ORDER BY host_id
		LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, q, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Host, 0, pageSize)
	for rows.Next() {
		var h model.Host
		if err := rows.Scan(&h.HostID, &h.HostName, &h.IsSuperhost, &h.IdentityVerified,
			&h.ResponseRate, &h.AcceptanceRate, &h.TotalListingsCount, &h.YearsExperience); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Experienced returns the hosts with the longest platform tenure.
func (r *HostRepo) Experienced(ctx context.Context, limit int) ([]model.ExperiencedHost, error) {
	const q = `SELECT
			host_id,
			host_name,
			ROUND(years_experience) AS experience,
			total_listings_count
		FROM host
		ORDER BY years_experience DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ExperiencedHost, 0, limit)
	for rows.Next() {
		var h model.ExperiencedHost
		if err := rows.Scan(&h.HostID, &h.HostName, &h.Experience, &h.TotalListingsCount); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Types compares superhost against non-superhost performance inside each
// neighbourhood that has both kinds of host.
func (r *HostRepo) Types(ctx context.Context) ([]model.HostTypeStat, error) {
	const q = `WITH NeighbourhoodHostStats AS (
			SELECT
				l.neighbourhood_cleansed,
				h.is_superhost,
				ROUND(AVG(ri.scores_rating::NUMERIC), 2) AS avg_rating,
				ROUND(AVG(ri.reviews_per_month::NUMERIC), 2) AS avg_reviews_per_month,
				ROUND(AVG(l.price::NUMERIC), 2) AS avg_price,
				COUNT(DISTINCT l.id) AS num_listings
			FROM listings l
			JOIN host h ON l.host_id = h.host_id
			JOIN review_info ri ON l.id = ri.id
			WHERE h.is_superhost IS NOT NULL
			  AND ri.scores_rating IS NOT NULL
			  AND ri.reviews_per_month IS NOT NULL
			GROUP BY l.neighbourhood_cleansed, h.is_superhost
		),
		NeighbourhoodSuperhostCount AS (
			SELECT
				neighbourhood_cleansed,
				COUNT(DISTINCT is_superhost) AS distinct_host_types
			FROM NeighbourhoodHostStats
			GROUP BY neighbourhood_cleansed
		)
		SELECT
			nhs.neighbourhood_cleansed,
			CASE WHEN nhs.is_superhost THEN 'Superhost' ELSE 'Non-Superhost' END AS host_type,
			nhs.avg_rating,
			nhs.avg_reviews_per_month,
			nhs.avg_price,
			nhs.num_listings
		FROM NeighbourhoodHostStats nhs
		JOIN NeighbourhoodSuperhostCount nsc
			ON nhs.neighbourhood_cleansed = nsc.neighbourhood_cleansed
		WHERE nsc.distinct_host_types = 2
		ORDER BY nhs.neighbourhood_cleansed, nhs.is_superhost DESC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.HostTypeStat{}
	for rows.Next() {
		var s model.HostTypeStat
		if err := rows.Scan(&s.Neighbourhood, &s.HostType, &s.AvgRating, &s.AvgReviewsPerMonth, &s.AvgPrice, &s.NumListings); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Interactions contrasts listings of hosts with more than five positive
// reviews mentioning interaction keywords against all other listings,
// grouped by neighbourhood and bedroom count. Only groups containing both
// populations are returned so each row is a valid comparison.
func (r *HostRepo) Interactions(ctx context.Context, page, pageSize int) ([]model.HostInteractionStat, error) {
	const q = `WITH HostsWithGoodInteraction AS (
			SELECT DISTINCT l_sub.host_id
			FROM reviews r_sub
			JOIN listings l_sub ON r_sub.listing_id = l_sub.id
			WHERE r_sub.sentiment = 'Positive'
			  AND (r_sub.comments ILIKE '%communication%' OR
			       r_sub.comments ILIKE '%responsive%' OR
			       r_sub.comments ILIKE '%check-in%' OR
			       r_sub.comments ILIKE '%helpful%')
			GROUP BY l_sub.host_id
			HAVING COUNT(r_sub.id) > 5
		)
		SELECT
			l.neighbourhood_cleansed,
			l.bedrooms,
			ROUND(AVG(ri.scores_rating::NUMERIC) FILTER (WHERE hgi.host_id IS NOT NULL), 2) AS avg_rating_good_interaction_hosts,
			ROUND(AVG(l.price::NUMERIC) FILTER (WHERE hgi.host_id IS NOT NULL), 2) AS avg_price_good_interaction_hosts,
			COUNT(DISTINCT l.id) FILTER (WHERE hgi.host_id IS NOT NULL) AS count_listings_good_interaction_hosts,
			ROUND(AVG(ri.scores_rating::NUMERIC) FILTER (WHERE hgi.host_id IS NULL), 2) AS avg_rating_other_hosts,
			ROUND(AVG(l.price::NUMERIC) FILTER (WHERE hgi.host_id IS NULL), 2) AS avg_price_other_hosts,
			COUNT(DISTINCT l.id) FILTER (WHERE hgi.host_id IS NULL) AS count_listings_other_hosts
		FROM listings l
		JOIN review_info ri ON l.id = ri.id
		LEFT JOIN HostsWithGoodInteraction hgi ON l.host_id = hgi.host_id
		WHERE l.bedrooms IS NOT NULL AND ri.scores_rating IS NOT NULL
		GROUP BY l.neighbourhood_cleansed, l.bedrooms
		HAVING COUNT(DISTINCT l.id) FILTER (WHERE hgi.host_id IS NOT NULL) > 0
		   AND COUNT(DISTINCT l.id) FILTER (WHERE hgi.host_id IS NULL) > 0
		ORDER BY l.neighbourhood_cleansed, l.bedrooms
		LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, q, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.HostInteractionStat, 0, pageSize)
	for rows.Next() {
		var s model.HostInteractionStat
		if err := rows.Scan(&s.Neighbourhood, &s.Bedrooms,
			&s.AvgRatingGoodInteraction, &s.AvgPriceGoodInteraction, &s.CountGoodInteraction,
			&s.AvgRatingOther, &s.AvgPriceOther, &s.CountOther); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Verified breaks hosts down by identity verification status. With
// onlyVerified set the unverified buckets are dropped from the result.
func (r *HostRepo) Verified(ctx context.Context, onlyVerified bool) ([]model.HostVerifiedStat, error) {
	q := `SELECT
			identity_verified,
			COUNT(host_id) AS number_of_hosts,
			ROUND(COUNT(host_id) * 100.0 / (SELECT COUNT(*) FROM host), 2) AS percentage_of_total
		FROM host
		GROUP BY identity_verified`
	if onlyVerified {
		q += `
		HAVING identity_verified = TRUE`
	}
	q += `
		ORDER BY number_of_hosts DESC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.HostVerifiedStat{}
	for rows.Next() {
		var s model.HostVerifiedStat
		if err := rows.Scan(&s.IdentityVerified, &s.NumberOfHosts, &s.PercentageOfTotal); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// HighPerformers returns hosts above minListings whose worst-rated listing
// and portfolio-average value score both clear minRating.
func (r *HostRepo) HighPerformers(ctx context.Context, minListings int, minRating float64, sort HighPerformerSort) ([]model.HighPerformer, error) {
	q := `WITH HostMinRating AS (
			SELECT
				l.host_id,
				MIN(ri.scores_rating) AS min_listing_rating
			FROM listings l
			JOIN review_info ri ON l.id = ri.id
			WHERE ri.scores_rating IS NOT NULL
			GROUP BY l.host_id
		),
		HostAvgValue AS (
			SELECT
				l.host_id,
				AVG(ri.scores_value) AS avg_value_score
			FROM listings l
			JOIN review_info ri ON l.id = ri.id
			WHERE ri.scores_value IS NOT NULL
			GROUP BY l.host_id
		)
		SELECT
			h.host_id,
			h.host_name,
			h.total_listings_count,
			ROUND(hav.avg_value_score::NUMERIC, 2) AS average_value_score_across_listings,
			hmr.min_listing_rating
		FROM host h
		JOIN HostMinRating hmr ON h.host_id = hmr.host_id
		JOIN HostAvgValue hav ON h.host_id = hav.host_id
		WHERE h.total_listings_count > $1
		  AND hmr.min_listing_rating > $2
		  AND hav.avg_value_score > $2
		` + sort.orderClause()

	rows, err := r.db.QueryContext(ctx, q, minListings, minRating)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.HighPerformer{}
	for rows.Next() {
		var h model.HighPerformer
		if err := rows.Scan(&h.HostID, &h.HostName, &h.TotalListingsCount, &h.AvgValueScore, &h.MinListingRating); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
