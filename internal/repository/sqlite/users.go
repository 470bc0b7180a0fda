package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/skillswap/internal/models"
)

func (r *SQLiteRepo) CreateUser(ctx context.Context, u *models.User) error {
	if u == nil {
		return fmt.Errorf("user is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, location, bio, role, avatar, rating, review_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.Password, u.Location, u.Bio, u.Role, u.Avatar, u.Rating, u.ReviewCount)
	if err != nil {
		return err
	}

	if err := r.replaceSkillLinks(ctx, "user_skills_offered", u.ID, u.SkillsOffered); err != nil {
		return err
	}
	return r.replaceSkillLinks(ctx, "user_skills_requested", u.ID, u.SkillsRequested)
}

func (r *SQLiteRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getUser(ctx, `SELECT id, name, email, password_hash, location, bio, role, avatar, rating, review_count FROM users WHERE id = ?`, id)
}

func (r *SQLiteRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUser(ctx, `SELECT id, name, email, password_hash, location, bio, role, avatar, rating, review_count FROM users WHERE email = ?`, email)
}

func (r *SQLiteRepo) getUser(ctx context.Context, query, arg string) (*models.User, error) {
	row := r.conn.QueryRow(ctx, query, arg)
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Location, &u.Bio, &u.Role, &u.Avatar, &u.Rating, &u.ReviewCount); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if err := r.attachSkills(ctx, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *SQLiteRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, email, location, bio, role, avatar, rating, review_count FROM users ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Location, &u.Bio, &u.Role, &u.Avatar, &u.Rating, &u.ReviewCount); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if err := r.attachSkills(ctx, &out[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (r *SQLiteRepo) UpdateProfile(ctx context.Context, id, name, bio, location string) error {
	_, err := r.conn.Exec(ctx, `UPDATE users SET name = ?, bio = ?, location = ? WHERE id = ?`, name, bio, location, id)
	return err
}

func (r *SQLiteRepo) UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error {
	_, err := r.conn.Exec(ctx, `UPDATE users SET rating = ?, review_count = ? WHERE id = ?`, rating, reviewCount, id)
	return err
}

func (r *SQLiteRepo) CountUsers(ctx context.Context) (int64, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM users`)
	var cnt int64
	if err := row.Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}

// attachSkills loads the offered/requested skill sets for a user.
func (r *SQLiteRepo) attachSkills(ctx context.Context, u *models.User) error {
	offered, err := r.linkedSkills(ctx, "user_skills_offered", u.ID)
	if err != nil {
		return err
	}
	requested, err := r.linkedSkills(ctx, "user_skills_requested", u.ID)
	if err != nil {
		return err
	}
	u.SkillsOffered = offered
	u.SkillsRequested = requested
	return nil
}

func (r *SQLiteRepo) linkedSkills(ctx context.Context, table, userID string) ([]models.Skill, error) {
	q := fmt.Sprintf(`SELECT s.id, s.name, s.category FROM skills s JOIN %s l ON s.id = l.skill_id WHERE l.user_id = ?`, table)
	rows, err := r.conn.QueryRows(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Skill{}
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) replaceSkillLinks(ctx context.Context, table, userID string, skills []models.Skill) error {
	if _, err := r.conn.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE user_id = ?`, table), userID); err != nil {
		return err
	}
	for _, s := range skills {
		if _, err := r.conn.Exec(ctx, fmt.Sprintf(`INSERT OR IGNORE INTO %s (user_id, skill_id) VALUES (?, ?)`, table), userID, s.ID); err != nil {
			return err
		}
	}
	return nil
}
