package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/garnizeh/skillswap/api"
	"github.com/garnizeh/skillswap/internal/models"
	"github.com/garnizeh/skillswap/pkg/repository/mock"
)

func reviewFixture(t *testing.T) *mock.Mocks {
	t.Helper()
	mocks := mock.NewMocks()
	ctx := context.Background()

	alex := models.User{ID: "u1", Name: "Alex", Email: "alex@example.com", Rating: 4.8, ReviewCount: 12}
	sarah := models.User{ID: "u2", Name: "Sarah", Email: "sarah@example.com", Rating: 4.9, ReviewCount: 8}
	if err := mocks.Users.CreateUser(ctx, &alex); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := mocks.Users.CreateUser(ctx, &sarah); err != nil {
		t.Fatalf("seed: %v", err)
	}

	sess := models.Session{ID: "sess1", RequesterID: "u2", ProviderID: "u1", SkillID: "s1",
		Date: "2024-01-10", Time: "09:00", EndTime: "10:20", Status: models.StatusCompleted}
	if err := mocks.Sessions.CreateSession(ctx, &sess); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return mocks
}

func TestSaveReview(t *testing.T) {
	mocks := reviewFixture(t)
	h := api.NewReviewsHandler(mocks.Reviews, mocks.Users, mocks.Sessions)

	rr := postJSON(t, h.SaveReview, models.Review{
		SessionID: "sess1", FromUserID: "u2", ToUserID: "u1", Rating: 3, Comment: "ok",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rr.Code, rr.Body.String())
	}

	if len(mocks.Reviews.Stored) != 1 {
		t.Fatalf("review not stored")
	}

	// (4.8*12 + 3) / 13 rounded to one digit
	alex, _ := mocks.Users.GetByID(context.Background(), "u1")
	if alex.Rating != 4.7 || alex.ReviewCount != 13 {
		t.Fatalf("rating = %v over %d, want 4.7 over 13", alex.Rating, alex.ReviewCount)
	}

	sess, _ := mocks.Sessions.GetSession(context.Background(), "sess1")
	if !sess.RequesterReviewed || sess.ProviderReviewed {
		t.Fatalf("reviewed flags wrong: %+v", sess)
	}
}

func TestSaveReviewOncePerSide(t *testing.T) {
	mocks := reviewFixture(t)
	h := api.NewReviewsHandler(mocks.Reviews, mocks.Users, mocks.Sessions)

	first := postJSON(t, h.SaveReview, models.Review{SessionID: "sess1", FromUserID: "u2", ToUserID: "u1", Rating: 5})
	if first.Code != http.StatusCreated {
		t.Fatalf("first review: %d", first.Code)
	}
	second := postJSON(t, h.SaveReview, models.Review{SessionID: "sess1", FromUserID: "u2", ToUserID: "u1", Rating: 4})
	if second.Code != http.StatusConflict {
		t.Fatalf("second review from same side = %d, want 409", second.Code)
	}

	// the provider side still has its review available
	provider := postJSON(t, h.SaveReview, models.Review{SessionID: "sess1", FromUserID: "u1", ToUserID: "u2", Rating: 4})
	if provider.Code != http.StatusCreated {
		t.Fatalf("provider review = %d, want 201", provider.Code)
	}
}

func TestSaveReviewValidation(t *testing.T) {
	mocks := reviewFixture(t)
	h := api.NewReviewsHandler(mocks.Reviews, mocks.Users, mocks.Sessions)

	tests := []struct {
		name       string
		body       models.Review
		wantStatus int
	}{
		{name: "rating too low", body: models.Review{SessionID: "sess1", FromUserID: "u2", ToUserID: "u1", Rating: 0}, wantStatus: http.StatusBadRequest},
		{name: "rating too high", body: models.Review{SessionID: "sess1", FromUserID: "u2", ToUserID: "u1", Rating: 6}, wantStatus: http.StatusBadRequest},
		{name: "unknown session", body: models.Review{SessionID: "nope", FromUserID: "u2", ToUserID: "u1", Rating: 5}, wantStatus: http.StatusNotFound},
		{name: "non participant", body: models.Review{SessionID: "sess1", FromUserID: "u9", ToUserID: "u1", Rating: 5}, wantStatus: http.StatusForbidden},
		{name: "missing fields", body: models.Review{SessionID: "sess1", Rating: 5}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, h.SaveReview, tt.body)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tt.wantStatus, rr.Body.String())
			}
		})
	}
}
