package model

// Listing mirrors a row of the `listings` table. The dataset is a cleaned
// Inside Airbnb dump for a single city and is never mutated by the
// application, so every field maps straight onto a column. Capacity and
// price columns are nullable in the source data and are therefore pointers;
// encoding/json renders them as JSON null so clients can tell missing from zero.
//
// Fields:
//
//	ID             – primary key identifier.
//	HostID         – owning host (host.host_id).
//	Name           – listing title.
//	Description    – free-text description (nullable).
//	Latitude       – geo coordinate (nullable).
//	Longitude      – geo coordinate (nullable).
//	Neighbourhood  – cleansed neighbourhood name.
//	RoomType       – raw room type label.
//	RoomTypeSimple – canonicalized room type used by analytics.
//	Accommodates   – guest capacity (nullable).
//	Bathrooms      – bathroom count (nullable).
//	Bedrooms       – bedroom count (nullable).
//	Beds           – bed count (nullable).
//	Price          – nightly price (nullable).
//	PictureURL     – cover photo URL (nullable).
//	NumberOfReviews – lifetime review count (nullable).
type Listing struct {
	ID              int64    `json:"id"`
	HostID          int64    `json:"host_id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Neighbourhood   string   `json:"neighbourhood_cleansed"`
	RoomType        string   `json:"room_type"`
	RoomTypeSimple  string   `json:"room_type_simple"`
	Accommodates    *int64   `json:"accommodates"`
	Bathrooms       *float64 `json:"bathrooms"`
	Bedrooms        *int64   `json:"bedrooms"`
	Beds            *int64   `json:"beds"`
	Price           *float64 `json:"price"`
	PictureURL      *string  `json:"picture_url"`
	NumberOfReviews *int64   `json:"number_of_reviews"`
}

// ListingSummary is the compact row returned by the paginated /listings table.
type ListingSummary struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Neighbourhood   string   `json:"neighbourhood"`
	RoomType        string   `json:"room_type"`
	Price           *float64 `json:"price"`
	NumberOfReviews *int64   `json:"number_of_reviews"`
}

// ListingDetail is a Listing joined with the columns of its host that the
// detail page renders.
type ListingDetail struct {
	Listing
	HostName           *string  `json:"host_name"`
	HostResponseRate   *float64 `json:"host_response_rate"`
	HostAcceptanceRate *float64 `json:"host_acceptance_rate"`
	HostIsSuperhost    *bool    `json:"host_is_superhost"`
}

// MapListing is a marker-ready row for the map view: coordinates are always
// present, the rating comes from a LEFT JOIN and may be null.
type MapListing struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Price         *float64 `json:"price"`
	RoomType      string   `json:"room_type"`
	Neighbourhood string   `json:"neighbourhood"`
	ScoresRating  *float64 `json:"scores_rating"`
}
