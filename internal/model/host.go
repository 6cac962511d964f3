package model

// Host mirrors a row of the `host` table. One host owns zero or more
// listings; all performance columns are precomputed in the dataset.
type Host struct {
	HostID             int64    `json:"host_id"`
	HostName           *string  `json:"host_name"`
	IsSuperhost        *bool    `json:"is_superhost"`
	IdentityVerified   *bool    `json:"identity_verified"`
	ResponseRate       *float64 `json:"response_rate"`
	AcceptanceRate     *float64 `json:"acceptance_rate"`
	TotalListingsCount *int64   `json:"total_listings_count"`
	YearsExperience    *float64 `json:"years_experience"`
}

// ExperiencedHost is a row of the longest-tenured hosts ranking.
type ExperiencedHost struct {
	HostID             int64   `json:"host_id"`
	HostName           *string `json:"host_name"`
	Experience         *int64  `json:"experience"`
	TotalListingsCount *int64  `json:"total_listings_count"`
}

// HostTypeStat compares superhosts against other hosts inside one
// neighbourhood. Only neighbourhoods with both host types are reported.
type HostTypeStat struct {
	Neighbourhood      string   `json:"neighbourhood_cleansed"`
	HostType           string   `json:"host_type"`
	AvgRating          *float64 `json:"avg_rating"`
	AvgReviewsPerMonth *float64 `json:"avg_reviews_per_month"`
	AvgPrice           *float64 `json:"avg_price"`
	NumListings        int64    `json:"num_listings"`
}

// HostInteractionStat contrasts listings of hosts who repeatedly earn
// positive interaction mentions against everyone else, per
// neighbourhood and bedroom count.
type HostInteractionStat struct {
	Neighbourhood            string   `json:"neighbourhood_cleansed"`
	Bedrooms                 int64    `json:"bedrooms"`
	AvgRatingGoodInteraction *float64 `json:"avg_rating_good_interaction_hosts"`
	AvgPriceGoodInteraction  *float64 `json:"avg_price_good_interaction_hosts"`
	CountGoodInteraction     int64    `json:"count_listings_good_interaction_hosts"`
	AvgRatingOther           *float64 `json:"avg_rating_other_hosts"`
	AvgPriceOther            *float64 `json:"avg_price_other_hosts"`
	CountOther               int64    `json:"count_listings_other_hosts"`
}

// HostVerifiedStat is one bucket of the identity-verification breakdown.
type HostVerifiedStat struct {
	IdentityVerified  *bool   `json:"identity_verified"`
	NumberOfHosts     int64   `json:"number_of_hosts"`
	PercentageOfTotal float64 `json:"percentage_of_total"`
}

// HighPerformer is a host whose whole portfolio clears minimum rating and
// value thresholds.
type HighPerformer struct {
	HostID             int64    `json:"host_id"`
	HostName           *string  `json:"host_name"`
	TotalListingsCount int64    `json:"total_listings_count"`
	AvgValueScore      *float64 `json:"average_value_score_across_listings"`
	MinListingRating   *float64 `json:"min_listing_rating"`
}
