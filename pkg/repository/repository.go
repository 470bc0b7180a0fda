package repository

import (
	"context"

	"github.com/garnizeh/skillswap/internal/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id, name, bio, location string) error
	UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error
	CountUsers(ctx context.Context) (int64, error)
}

type SkillRepo interface {
	CreateSkill(ctx context.Context, s *models.Skill) error
	ListSkills(ctx context.Context) ([]models.Skill, error)
	CountSkills(ctx context.Context) (int64, error)
}

type SessionRepo interface {
	CreateSession(ctx context.Context, s *models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, error)
	ListSessions(ctx context.Context) ([]models.Session, error)
	ListByParticipant(ctx context.Context, userID string) ([]models.Session, error)
	UpdateStatus(ctx context.Context, id string, status models.SessionStatus) error
	SetReviewed(ctx context.Context, id string, requesterSide bool) error
	CountByStatus(ctx context.Context) (map[models.SessionStatus]int64, error)
}

type MessageRepo interface {
	CreateMessage(ctx context.Context, m *models.Message) error
	ListMessages(ctx context.Context) ([]models.Message, error)
	CountMessages(ctx context.Context) (int64, error)
}

type ReviewRepo interface {
	CreateReview(ctx context.Context, r *models.Review) error
	ListReviews(ctx context.Context) ([]models.Review, error)
	AverageRating(ctx context.Context) (float64, error)
}
