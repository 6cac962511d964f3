package repository

import (
	"context"
	"database/sql"

	"github.com/karev/london-stays/internal/model"
)

// ReviewRepo manages read access to the reviews table.
type ReviewRepo struct {
	db *sql.DB
}

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// ListByListing returns one page of a listing's reviews, newest first. The
// date is formatted in the database so clients receive a stable YYYY-MM-DD
// string regardless of the column's underlying type.
func (r *ReviewRepo) ListByListing(ctx context.Context, listingID int64, page, pageSize int) ([]model.Review, error) {
	const q = `SELECT
			id,
			listing_id,
			reviewer_id,
			reviewer_name,
			TO_CHAR(date, 'YYYY-MM-DD') AS date,
			comments,
			sentiment
		FROM reviews
		WHERE listing_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3`

	offset := (page - 1) * pageSize
	rows, err := r.db.QueryContext(ctx, q, listingID, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Review, 0, pageSize)
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.ListingID, &rv.ReviewerID, &rv.ReviewerName, &rv.Date, &rv.Comments, &rv.Sentiment); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
