package api

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/garnizeh/skillswap/internal/models"
	"github.com/garnizeh/skillswap/pkg/repository"
)

type ReviewsHandler struct {
	reviewRepo  repository.ReviewRepo
	userRepo    repository.UserRepo
	sessionRepo repository.SessionRepo
}

func NewReviewsHandler(rr repository.ReviewRepo, ur repository.UserRepo, sr repository.SessionRepo) *ReviewsHandler {
	return &ReviewsHandler{reviewRepo: rr, userRepo: ur, sessionRepo: sr}
}

// SaveReview stores a review, folds the score into the reviewee's running
// mean, and flags the reviewing side of the session. Each side may review
// at most once.
func (h *ReviewsHandler) SaveReview(w http.ResponseWriter, r *http.Request) {
	var req models.Review
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" || req.FromUserID == "" || req.ToUserID == "" {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, "rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	session, err := h.sessionRepo.GetSession(ctx, req.SessionID)
	if err != nil {
		writeError(w, "failed to load session", http.StatusInternalServerError)
		return
	}
	if session == nil {
		writeError(w, "session not found", http.StatusNotFound)
		return
	}
	if !session.Involves(req.FromUserID) {
		writeError(w, "reviewer is not a participant", http.StatusForbidden)
		return
	}

	isRequester := session.RequesterID == req.FromUserID
	if (isRequester && session.RequesterReviewed) || (!isRequester && session.ProviderReviewed) {
		writeError(w, "session already reviewed", http.StatusConflict)
		return
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Timestamp == 0 {
		req.Timestamp = time.Now().UTC().UnixMilli()
	}

	if err := h.reviewRepo.CreateReview(ctx, &req); err != nil {
		writeError(w, "failed to store review", http.StatusInternalServerError)
		return
	}

	// reviewee's rating is a running mean over (rating, count)
	reviewee, err := h.userRepo.GetByID(ctx, req.ToUserID)
	if err == nil && reviewee != nil {
		mean := (reviewee.Rating*float64(reviewee.ReviewCount) + float64(req.Rating)) / float64(reviewee.ReviewCount+1)
		mean = math.Round(mean*10) / 10
		if err := h.userRepo.UpdateRating(ctx, reviewee.ID, mean, reviewee.ReviewCount+1); err != nil {
			logger.Error("failed to update rating", "user", reviewee.ID, "err", err)
		}
	}

	if err := h.sessionRepo.SetReviewed(ctx, session.ID, isRequester); err != nil {
		logger.Error("failed to flag session reviewed", "session", session.ID, "err", err)
	}

	writeJSON(w, req, http.StatusCreated)
}
