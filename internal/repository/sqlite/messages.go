package sqlite

import (
	"context"
	"fmt"

	"github.com/garnizeh/skillswap/internal/models"
)

func (r *SQLiteRepo) CreateMessage(ctx context.Context, m *models.Message) error {
	if m == nil {
		return fmt.Errorf("message is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT INTO messages (id, session_id, sender_id, text, timestamp) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.SessionID, m.SenderID, m.Text, m.Timestamp)
	return err
}

func (r *SQLiteRepo) ListMessages(ctx context.Context) ([]models.Message, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, session_id, sender_id, text, timestamp FROM messages ORDER BY timestamp ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SessionID, &m.SenderID, &m.Text, &m.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) CountMessages(ctx context.Context) (int64, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM messages`)
	var cnt int64
	if err := row.Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}
