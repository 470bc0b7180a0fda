package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/skillswap/internal/models"
)

const sessionColumns = `id, requester_id, provider_id, skill_id, date, time, end_time, status, notes, requester_reviewed, provider_reviewed`

func (r *SQLiteRepo) CreateSession(ctx context.Context, s *models.Session) error {
	if s == nil {
		return fmt.Errorf("session is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT INTO sessions (`+sessionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.RequesterID, s.ProviderID, s.SkillID, s.Date, s.Time, s.EndTime, s.Status, s.Notes,
		boolToInt(s.RequesterReviewed), boolToInt(s.ProviderReviewed))
	return err
}

func (r *SQLiteRepo) GetSession(ctx context.Context, id string) (*models.Session, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	s, err := scanSession(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteRepo) ListSessions(ctx context.Context) ([]models.Session, error) {
	return r.querySessions(ctx, `SELECT `+sessionColumns+` FROM sessions ORDER BY date ASC, time ASC`)
}

func (r *SQLiteRepo) ListByParticipant(ctx context.Context, userID string) ([]models.Session, error) {
	return r.querySessions(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE requester_id = ? OR provider_id = ? ORDER BY date ASC, time ASC`,
		userID, userID)
}

func (r *SQLiteRepo) UpdateStatus(ctx context.Context, id string, status models.SessionStatus) error {
	_, err := r.conn.Exec(ctx, `UPDATE sessions SET status = ? WHERE id = ?`, status, id)
	return err
}

func (r *SQLiteRepo) SetReviewed(ctx context.Context, id string, requesterSide bool) error {
	col := "provider_reviewed"
	if requesterSide {
		col = "requester_reviewed"
	}
	_, err := r.conn.Exec(ctx, `UPDATE sessions SET `+col+` = 1 WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepo) CountByStatus(ctx context.Context) (map[models.SessionStatus]int64, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT status, COUNT(*) FROM sessions GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[models.SessionStatus]int64)
	for rows.Next() {
		var status models.SessionStatus
		var cnt int64
		if err := rows.Scan(&status, &cnt); err != nil {
			return nil, err
		}
		out[status] = cnt
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) querySessions(ctx context.Context, query string, args ...any) ([]models.Session, error) {
	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Session
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}

	return out, rows.Err()
}

func scanSession(scan func(dest ...any) error) (*models.Session, error) {
	var s models.Session
	var reqReviewed, provReviewed int
	if err := scan(&s.ID, &s.RequesterID, &s.ProviderID, &s.SkillID, &s.Date, &s.Time, &s.EndTime, &s.Status, &s.Notes, &reqReviewed, &provReviewed); err != nil {
		return nil, err
	}
	s.RequesterReviewed = reqReviewed != 0
	s.ProviderReviewed = provReviewed != 0
	return &s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
