package api

import (
	"net/http"

	"github.com/garnizeh/skillswap/internal/models"
	"github.com/garnizeh/skillswap/pkg/repository"
)

type AdminHandler struct {
	userRepo    repository.UserRepo
	skillRepo   repository.SkillRepo
	sessionRepo repository.SessionRepo
	messageRepo repository.MessageRepo
	reviewRepo  repository.ReviewRepo
}

func NewAdminHandler(ur repository.UserRepo, sk repository.SkillRepo, se repository.SessionRepo, mr repository.MessageRepo, rr repository.ReviewRepo) *AdminHandler {
	return &AdminHandler{userRepo: ur, skillRepo: sk, sessionRepo: se, messageRepo: mr, reviewRepo: rr}
}

type statsResponse struct {
	Users         int64                          `json:"users"`
	Skills        int64                          `json:"skills"`
	Messages      int64                          `json:"messages"`
	Sessions      map[models.SessionStatus]int64 `json:"sessionsByStatus"`
	AverageRating float64                        `json:"averageRating"`
}

// Stats is the admin dashboard feed. The route carrying it is gated by
// the JWT middleware plus RequireAdmin.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.userRepo.CountUsers(ctx)
	if err != nil {
		writeError(w, "failed to count users", http.StatusInternalServerError)
		return
	}
	skills, err := h.skillRepo.CountSkills(ctx)
	if err != nil {
		writeError(w, "failed to count skills", http.StatusInternalServerError)
		return
	}
	messages, err := h.messageRepo.CountMessages(ctx)
	if err != nil {
		writeError(w, "failed to count messages", http.StatusInternalServerError)
		return
	}
	byStatus, err := h.sessionRepo.CountByStatus(ctx)
	if err != nil {
		writeError(w, "failed to count sessions", http.StatusInternalServerError)
		return
	}
	avg, err := h.reviewRepo.AverageRating(ctx)
	if err != nil {
		writeError(w, "failed to average ratings", http.StatusInternalServerError)
		return
	}

	writeJSON(w, statsResponse{
		Users:         users,
		Skills:        skills,
		Messages:      messages,
		Sessions:      byStatus,
		AverageRating: avg,
	}, http.StatusOK)
}
