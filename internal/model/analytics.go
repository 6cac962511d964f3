package model

// HomeStats backs the landing page counters.
type HomeStats struct {
	TotalListings      int64    `json:"total_listings"`
	AvgPrice           *float64 `json:"avg_price"`
	TotalNeighborhoods int64    `json:"total_neighborhoods"`
}

// Neighbourhood is a single distinct neighbourhood name, used to populate
// filter dropdowns.
type Neighbourhood struct {
	Neighbourhood string `json:"neighbourhood"`
}

// NeighbourhoodOverview is the per-neighbourhood density and price summary.
type NeighbourhoodOverview struct {
	Neighbourhood    string   `json:"neighbourhood_cleansed"`
	NumberOfListings int64    `json:"number_of_listings"`
	AveragePrice     *float64 `json:"average_price"`
}

// RoomTypeStat is one slice of the room-type distribution.
type RoomTypeStat struct {
	RoomTypeSimple    string  `json:"room_type_simple"`
	NumberOfListings  int64   `json:"number_of_listings"`
	PercentageOfTotal float64 `json:"percentage_of_total"`
}

// RoomTypeSentiment reports the share of positive reviews per room type.
type RoomTypeSentiment struct {
	RoomType               string  `json:"room_type"`
	PercentPositiveReviews float64 `json:"percent_positive_reviews"`
	NumberOfListings       int64   `json:"number_of_listings"`
}

// MonthlyPrice is one point of the reviewed-listings price trend.
type MonthlyPrice struct {
	ReviewMonth           string   `json:"review_month"`
	ListingsReviewedCount int64    `json:"listings_reviewed_count"`
	AveragePrice          *float64 `json:"average_price_of_reviewed_listings"`
}

// HiddenGem is a highly rated, high-value listing that is both
// under-reviewed and under-priced relative to its neighbourhood and room
// type. The comparison baselines are included so clients can render the gap.
type HiddenGem struct {
	ListingID               int64    `json:"listing_id"`
	ListingName             string   `json:"listing_name"`
	Neighbourhood           string   `json:"neighbourhood_cleansed"`
	RoomTypeSimple          string   `json:"room_type_simple"`
	ScoresRating            float64  `json:"scores_rating"`
	ScoresValue             float64  `json:"scores_value"`
	NumberOfReviews         int64    `json:"number_of_reviews"`
	Price                   float64  `json:"price"`
	AvgNeighbourhoodReviews *float64 `json:"avg_neighbourhood_reviews"`
	AvgNeighbourhoodPrice   *float64 `json:"avg_neighbourhood_price_for_room_type"`
}
