package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/garnizeh/skillswap/internal/models"
	"github.com/garnizeh/skillswap/pkg/remote"
)

func newServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *remote.Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := remote.New(srv.URL, 2*time.Second, srv.Client())
	if err != nil {
		t.Fatalf("remote.New: %v", err)
	}
	return srv, c
}

func TestInit(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("action"); got != "init" {
			t.Errorf("action = %q, want init", got)
		}
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		json.NewEncoder(w).Encode(models.Snapshot{
			Users:  []models.User{{ID: "u1", Name: "Alex"}},
			Skills: []models.Skill{{ID: "s1", Name: "React Development", Category: models.CategoryProgramming}},
		})
	})

	snap, err := c.Init(context.Background())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if len(snap.Users) != 1 || snap.Users[0].ID != "u1" {
		t.Fatalf("unexpected users: %+v", snap.Users)
	}
	if len(snap.Skills) != 1 {
		t.Fatalf("unexpected skills: %+v", snap.Skills)
	}
}

func TestInit_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := remote.New(url, time.Second, nil)
	if err != nil {
		t.Fatalf("remote.New: %v", err)
	}
	if _, err := c.Init(context.Background()); err == nil {
		t.Fatalf("expected error for unreachable server")
	}
}

func TestLogin(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Email != "alex@example.com" {
			t.Errorf("email = %q", req.Email)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": "u1", "name": "Alex", "token": "tok"})
	})

	res, err := c.Login(context.Background(), "alex@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.ID != "u1" || res.Token != "tok" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestLogin_Unauthorized(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	})

	_, err := c.Login(context.Background(), "alex@example.com", "nope")
	var se *remote.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Code != http.StatusUnauthorized || se.Message != "Invalid credentials" {
		t.Fatalf("unexpected StatusError: %+v", se)
	}
}

func TestSaveSession_Conflict(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("action"); got != "save_session" {
			t.Errorf("action = %q", got)
		}
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "scheduling conflict"})
	})

	err := c.SaveSession(context.Background(), models.Session{ID: "sess1"})
	var se *remote.StatusError
	if !errors.As(err, &se) || se.Code != http.StatusConflict {
		t.Fatalf("expected 409 StatusError, got %v", err)
	}
}

func TestMutationActions(t *testing.T) {
	var gotActions []string
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotActions = append(gotActions, r.URL.Query().Get("action"))
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})

	ctx := context.Background()
	if err := c.UpdateSessionStatus(ctx, "sess1", models.StatusApproved); err != nil {
		t.Fatalf("UpdateSessionStatus: %v", err)
	}
	if err := c.SaveReview(ctx, models.Review{ID: "rev1"}); err != nil {
		t.Fatalf("SaveReview: %v", err)
	}
	if err := c.UpdateProfile(ctx, models.User{ID: "u1"}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if err := c.AddSkill(ctx, models.Skill{ID: "s1"}); err != nil {
		t.Fatalf("AddSkill: %v", err)
	}
	if err := c.SendMessage(ctx, models.Message{ID: "m1"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	want := []string{"update_session_status", "save_review", "update_profile", "add_skill", "send_message"}
	if len(gotActions) != len(want) {
		t.Fatalf("actions = %v, want %v", gotActions, want)
	}
	for i := range want {
		if gotActions[i] != want[i] {
			t.Fatalf("actions[%d] = %q, want %q", i, gotActions[i], want[i])
		}
	}
}

func TestNew_BadURL(t *testing.T) {
	if _, err := remote.New("not a url", time.Second, nil); err == nil {
		t.Fatalf("expected error for invalid base url")
	}
}
