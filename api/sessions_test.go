package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/garnizeh/skillswap/api"
	"github.com/garnizeh/skillswap/internal/models"
	"github.com/garnizeh/skillswap/pkg/repository/mock"
)

func TestSaveSession(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewSessionsHandler(mocks.Sessions)

	rr := postJSON(t, h.SaveSession, models.Session{
		RequesterID: "u1",
		ProviderID:  "u2",
		SkillID:     "s1",
		Date:        "2024-01-10",
		Time:        "09:00",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rr.Code, rr.Body.String())
	}

	var out models.Session
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ID == "" || out.Status != models.StatusPending || out.EndTime != "10:20" {
		t.Fatalf("server defaults not applied: %+v", out)
	}
	if len(mocks.Sessions.Stored) != 1 {
		t.Fatalf("session not stored")
	}
}

func TestSaveSessionConflict(t *testing.T) {
	mocks := mock.NewMocks()
	existing := models.Session{
		ID:          "sess1",
		RequesterID: "u1",
		ProviderID:  "u9",
		SkillID:     "s1",
		Date:        "2024-01-10",
		Time:        "10:00",
		EndTime:     "11:20",
		Status:      models.StatusApproved,
	}
	if err := mocks.Sessions.CreateSession(context.Background(), &existing); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	h := api.NewSessionsHandler(mocks.Sessions)

	tests := []struct {
		name       string
		time       string
		requester  string
		wantStatus int
	}{
		{name: "overlap rejected", time: "11:00", requester: "u1", wantStatus: http.StatusConflict},
		{name: "back to back accepted", time: "11:20", requester: "u1", wantStatus: http.StatusCreated},
		{name: "other requester unaffected", time: "10:00", requester: "u2", wantStatus: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, h.SaveSession, models.Session{
				RequesterID: tt.requester,
				ProviderID:  "u3",
				SkillID:     "s2",
				Date:        "2024-01-10",
				Time:        tt.time,
			})
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tt.wantStatus, rr.Body.String())
			}
		})
	}
}

func TestSaveSessionMissingFields(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewSessionsHandler(mocks.Sessions)

	rr := postJSON(t, h.SaveSession, models.Session{RequesterID: "u1", ProviderID: "u2"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestUpdateSessionStatus(t *testing.T) {
	mocks := mock.NewMocks()
	seed := models.Session{ID: "sess1", RequesterID: "u1", ProviderID: "u2", SkillID: "s1",
		Date: "2024-01-10", Time: "09:00", EndTime: "10:20", Status: models.StatusPending}
	if err := mocks.Sessions.CreateSession(context.Background(), &seed); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	h := api.NewSessionsHandler(mocks.Sessions)

	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{name: "approve", body: map[string]string{"id": "sess1", "status": "Approved"}, wantStatus: http.StatusOK},
		{name: "terminal back to pending", body: map[string]string{"id": "sess1", "status": "Pending"}, wantStatus: http.StatusOK},
		{name: "unknown session", body: map[string]string{"id": "nope", "status": "Approved"}, wantStatus: http.StatusNotFound},
		{name: "invalid status", body: map[string]string{"id": "sess1", "status": "Archived"}, wantStatus: http.StatusBadRequest},
		{name: "missing id", body: map[string]string{"status": "Approved"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, h.UpdateSessionStatus, tt.body)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tt.wantStatus, rr.Body.String())
			}
		})
	}
}
