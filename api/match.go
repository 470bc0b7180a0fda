package api

import (
	"net/http"

	"github.com/garnizeh/skillswap/internal/match"
	"github.com/garnizeh/skillswap/pkg/repository"
)

type MatchHandler struct {
	userRepo repository.UserRepo
	ranker   match.Ranker
}

func NewMatchHandler(ur repository.UserRepo, ranker match.Ranker) *MatchHandler {
	if ranker == nil {
		ranker = match.Heuristic{}
	}
	return &MatchHandler{userRepo: ur, ranker: ranker}
}

type recommendResponse struct {
	RecommendedIDs []string `json:"recommendedIds"`
}

// Recommend ranks swap partners for the user named in the query. Backed by
// the model oracle when one is configured, the heuristic otherwise.
func (h *MatchHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, "user_id is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	current, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		writeError(w, "failed to load user", http.StatusInternalServerError)
		return
	}
	if current == nil {
		writeError(w, "user not found", http.StatusNotFound)
		return
	}

	pool, err := h.userRepo.ListUsers(ctx)
	if err != nil {
		writeError(w, "failed to load users", http.StatusInternalServerError)
		return
	}

	ids, err := h.ranker.Recommend(ctx, *current, pool)
	if err != nil {
		writeError(w, "ranking failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, recommendResponse{RecommendedIDs: ids}, http.StatusOK)
}
