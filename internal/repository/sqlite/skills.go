package sqlite

import (
	"context"
	"fmt"

	"github.com/garnizeh/skillswap/internal/models"
)

func (r *SQLiteRepo) CreateSkill(ctx context.Context, s *models.Skill) error {
	if s == nil {
		return fmt.Errorf("skill is nil")
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO skills (id, name, category) VALUES (?, ?, ?)`, s.ID, s.Name, s.Category)
	return err
}

func (r *SQLiteRepo) ListSkills(ctx context.Context) ([]models.Skill, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, category FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Skill
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) CountSkills(ctx context.Context) (int64, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM skills`)
	var cnt int64
	if err := row.Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}
