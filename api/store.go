package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/garnizeh/skillswap/internal/models"
	"github.com/garnizeh/skillswap/pkg/repository"
)

// StoreHandler covers the small remaining actions: the init bulk fetch,
// profile edits, skill registration and message persistence.
type StoreHandler struct {
	userRepo    repository.UserRepo
	skillRepo   repository.SkillRepo
	sessionRepo repository.SessionRepo
	messageRepo repository.MessageRepo
	reviewRepo  repository.ReviewRepo
}

func NewStoreHandler(ur repository.UserRepo, sk repository.SkillRepo, se repository.SessionRepo, mr repository.MessageRepo, rr repository.ReviewRepo) *StoreHandler {
	return &StoreHandler{userRepo: ur, skillRepo: sk, sessionRepo: se, messageRepo: mr, reviewRepo: rr}
}

// Init returns everything a client needs to boot, in one payload.
func (h *StoreHandler) Init(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.userRepo.ListUsers(ctx)
	if err != nil {
		writeError(w, "failed to load users", http.StatusInternalServerError)
		return
	}
	skills, err := h.skillRepo.ListSkills(ctx)
	if err != nil {
		writeError(w, "failed to load skills", http.StatusInternalServerError)
		return
	}
	sessions, err := h.sessionRepo.ListSessions(ctx)
	if err != nil {
		writeError(w, "failed to load sessions", http.StatusInternalServerError)
		return
	}
	messages, err := h.messageRepo.ListMessages(ctx)
	if err != nil {
		writeError(w, "failed to load messages", http.StatusInternalServerError)
		return
	}
	reviews, err := h.reviewRepo.ListReviews(ctx)
	if err != nil {
		writeError(w, "failed to load reviews", http.StatusInternalServerError)
		return
	}

	writeJSON(w, models.Snapshot{
		Users:    users,
		Skills:   skills,
		Sessions: sessions,
		Messages: messages,
		Reviews:  reviews,
	}, http.StatusOK)
}

type profileUpdateRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
}

func (h *StoreHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.ID == "" || req.Name == "" {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}

	if err := h.userRepo.UpdateProfile(r.Context(), req.ID, req.Name, req.Bio, req.Location); err != nil {
		writeError(w, "failed to update profile", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

func (h *StoreHandler) AddSkill(w http.ResponseWriter, r *http.Request) {
	var req models.Skill
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}
	if !req.Category.Valid() {
		writeError(w, "unknown category", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	if err := h.skillRepo.CreateSkill(r.Context(), &req); err != nil {
		writeError(w, "failed to store skill", http.StatusInternalServerError)
		return
	}
	writeJSON(w, req, http.StatusCreated)
}

func (h *StoreHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.Message
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" || req.SenderID == "" || req.Text == "" {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Timestamp == 0 {
		req.Timestamp = time.Now().UTC().UnixMilli()
	}

	if err := h.messageRepo.CreateMessage(r.Context(), &req); err != nil {
		writeError(w, "failed to store message", http.StatusInternalServerError)
		return
	}
	writeJSON(w, req, http.StatusCreated)
}
