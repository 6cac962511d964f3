package model

// Review mirrors a row of the `reviews` table. Sentiment is a precomputed
// label attached during data preparation (Positive, Neutral or Negative).
type Review struct {
	ID           int64   `json:"id"`
	ListingID    int64   `json:"listing_id"`
	ReviewerID   *int64  `json:"reviewer_id"`
	ReviewerName *string `json:"reviewer_name"`
	Date         string  `json:"date"`
	Comments     *string `json:"comments"`
	Sentiment    *string `json:"sentiment"`
}
