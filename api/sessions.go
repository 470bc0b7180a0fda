package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/garnizeh/skillswap/internal/models"
	"github.com/garnizeh/skillswap/internal/schedule"
	"github.com/garnizeh/skillswap/pkg/repository"
)

type SessionsHandler struct {
	sessionRepo repository.SessionRepo
}

func NewSessionsHandler(sr repository.SessionRepo) *SessionsHandler {
	return &SessionsHandler{sessionRepo: sr}
}

// SaveSession stores a new session. The end time is derived server-side
// from the start, and the slot is rejected with 409 when it overlaps an
// active session of the same requester. The provider's calendar is not
// consulted.
func (h *SessionsHandler) SaveSession(w http.ResponseWriter, r *http.Request) {
	var req models.Session
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.RequesterID == "" || req.ProviderID == "" || req.SkillID == "" || req.Date == "" || req.Time == "" {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.EndTime == "" {
		req.EndTime = schedule.ComputeEndTime(req.Time)
	}
	if req.Status == "" {
		req.Status = models.StatusPending
	}
	if !req.Status.Valid() {
		writeError(w, "invalid status", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	existing, err := h.sessionRepo.ListByParticipant(ctx, req.RequesterID)
	if err != nil {
		writeError(w, "failed to check schedule", http.StatusInternalServerError)
		return
	}
	if schedule.HasConflict(existing, req.RequesterID, req.Date, req.Time, req.EndTime) {
		writeError(w, "scheduling conflict", http.StatusConflict)
		return
	}

	if err := h.sessionRepo.CreateSession(ctx, &req); err != nil {
		writeError(w, "failed to store session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, req, http.StatusCreated)
}

type statusUpdateRequest struct {
	ID     string               `json:"id"`
	Status models.SessionStatus `json:"status"`
}

// UpdateSessionStatus overwrites a session's status. Any valid status may
// replace any other.
func (h *SessionsHandler) UpdateSessionStatus(w http.ResponseWriter, r *http.Request) {
	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.ID == "" || !req.Status.Valid() {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	session, err := h.sessionRepo.GetSession(ctx, req.ID)
	if err != nil {
		writeError(w, "failed to load session", http.StatusInternalServerError)
		return
	}
	if session == nil {
		writeError(w, "session not found", http.StatusNotFound)
		return
	}

	if err := h.sessionRepo.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		writeError(w, "failed to update session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}
