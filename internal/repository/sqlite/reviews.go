package sqlite

import (
	"context"
	"fmt"

	"github.com/garnizeh/skillswap/internal/models"
)

func (r *SQLiteRepo) CreateReview(ctx context.Context, rev *models.Review) error {
	if rev == nil {
		return fmt.Errorf("review is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT INTO reviews (id, session_id, from_user_id, to_user_id, rating, comment, timestamp) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rev.ID, rev.SessionID, rev.FromUserID, rev.ToUserID, rev.Rating, rev.Comment, rev.Timestamp)
	return err
}

func (r *SQLiteRepo) ListReviews(ctx context.Context) ([]models.Review, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, session_id, from_user_id, to_user_id, rating, comment, timestamp FROM reviews ORDER BY timestamp DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Review
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.ID, &rev.SessionID, &rev.FromUserID, &rev.ToUserID, &rev.Rating, &rev.Comment, &rev.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}

	return out, rows.Err()
}

// AverageRating is the platform-wide mean of all submitted review scores,
// 0 when no reviews exist.
func (r *SQLiteRepo) AverageRating(ctx context.Context) (float64, error) {
	row := r.conn.QueryRow(ctx, `SELECT COALESCE(AVG(rating), 0) FROM reviews`)
	var avg float64
	if err := row.Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}
