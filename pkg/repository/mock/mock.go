package mock

import (
	"context"

	"github.com/garnizeh/skillswap/internal/models"
)

// Test helpers and mocks
type Mocks struct {
	Users    *mockUserRepo
	Skills   *mockSkillRepo
	Sessions *mockSessionRepo
	Messages *mockMessageRepo
	Reviews  *mockReviewRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Users:    &mockUserRepo{},
		Skills:   &mockSkillRepo{},
		Sessions: &mockSessionRepo{},
		Messages: &mockMessageRepo{},
		Reviews:  &mockReviewRepo{},
	}
}

type mockUserRepo struct {
	Stored    []models.User
	CreateErr error
	ListErr   error
}

func (m *mockUserRepo) CreateUser(ctx context.Context, u *models.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Stored = append(m.Stored, *u)
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			return &m.Stored[i], nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range m.Stored {
		if m.Stored[i].Email == email {
			return &m.Stored[i], nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Stored, nil
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id, name, bio, location string) error {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			m.Stored[i].Name = name
			m.Stored[i].Bio = bio
			m.Stored[i].Location = location
		}
	}
	return nil
}

func (m *mockUserRepo) UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			m.Stored[i].Rating = rating
			m.Stored[i].ReviewCount = reviewCount
		}
	}
	return nil
}

func (m *mockUserRepo) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(m.Stored)), nil
}

type mockSkillRepo struct {
	Stored    []models.Skill
	CreateErr error
}

func (m *mockSkillRepo) CreateSkill(ctx context.Context, s *models.Skill) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Stored = append(m.Stored, *s)
	return nil
}

func (m *mockSkillRepo) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return m.Stored, nil
}

func (m *mockSkillRepo) CountSkills(ctx context.Context) (int64, error) {
	return int64(len(m.Stored)), nil
}

type mockSessionRepo struct {
	Stored    []models.Session
	CreateErr error
}

func (m *mockSessionRepo) CreateSession(ctx context.Context, s *models.Session) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Stored = append(m.Stored, *s)
	return nil
}

func (m *mockSessionRepo) GetSession(ctx context.Context, id string) (*models.Session, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			return &m.Stored[i], nil
		}
	}
	return nil, nil
}

func (m *mockSessionRepo) ListSessions(ctx context.Context) ([]models.Session, error) {
	return m.Stored, nil
}

func (m *mockSessionRepo) ListByParticipant(ctx context.Context, userID string) ([]models.Session, error) {
	out := make([]models.Session, 0)
	for _, s := range m.Stored {
		if s.Involves(userID) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) UpdateStatus(ctx context.Context, id string, status models.SessionStatus) error {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			m.Stored[i].Status = status
		}
	}
	return nil
}

func (m *mockSessionRepo) SetReviewed(ctx context.Context, id string, requesterSide bool) error {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			if requesterSide {
				m.Stored[i].RequesterReviewed = true
			} else {
				m.Stored[i].ProviderReviewed = true
			}
		}
	}
	return nil
}

func (m *mockSessionRepo) CountByStatus(ctx context.Context) (map[models.SessionStatus]int64, error) {
	out := make(map[models.SessionStatus]int64)
	for _, s := range m.Stored {
		out[s.Status]++
	}
	return out, nil
}

type mockMessageRepo struct {
	Stored    []models.Message
	CreateErr error
}

func (m *mockMessageRepo) CreateMessage(ctx context.Context, msg *models.Message) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Stored = append(m.Stored, *msg)
	return nil
}

func (m *mockMessageRepo) ListMessages(ctx context.Context) ([]models.Message, error) {
	return m.Stored, nil
}

func (m *mockMessageRepo) CountMessages(ctx context.Context) (int64, error) {
	return int64(len(m.Stored)), nil
}

type mockReviewRepo struct {
	Stored    []models.Review
	CreateErr error
}

func (m *mockReviewRepo) CreateReview(ctx context.Context, r *models.Review) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Stored = append(m.Stored, *r)
	return nil
}

func (m *mockReviewRepo) ListReviews(ctx context.Context) ([]models.Review, error) {
	return m.Stored, nil
}

func (m *mockReviewRepo) AverageRating(ctx context.Context) (float64, error) {
	if len(m.Stored) == 0 {
		return 0, nil
	}
	sum := 0
	for _, r := range m.Stored {
		sum += r.Rating
	}
	return float64(sum) / float64(len(m.Stored)), nil
}
