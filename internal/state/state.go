// Package state is the session-scoped application state container: every
// entity the signed-in client works with, held in memory and mutated
// synchronously. Mutations apply locally first and are mirrored to the
// remote store through the outbound queue, best-effort.
//
// One State belongs to exactly one logical actor (the current user's
// client), so there is no locking; concurrent clients editing the same
// session race at the remote store with last-write-wins, which is out of
// scope here.
package state

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/garnizeh/skillswap/internal/auth"
	"github.com/garnizeh/skillswap/internal/match"
	"github.com/garnizeh/skillswap/internal/mirror"
	"github.com/garnizeh/skillswap/internal/models"
	"github.com/garnizeh/skillswap/pkg/remote"
)

var (
	// ErrConflict rejects a swap request overlapping one of the
	// requester's active sessions. The only locally-rejected failure.
	ErrConflict = errors.New("scheduling conflict: you already have a session during this time")

	// ErrMissingField reports a required input that was absent.
	ErrMissingField = errors.New("missing required field")

	// ErrAuthFailed reports invalid credentials.
	ErrAuthFailed = errors.New("invalid credentials")

	// ErrNotSignedIn guards operations that need a current user.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrUnknownSession reports an id that resolves to no session.
	ErrUnknownSession = errors.New("unknown session")

	// ErrInvalidRating rejects review scores outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrAlreadyReviewed rejects a second review from the same side of a
	// session.
	ErrAlreadyReviewed = errors.New("session already reviewed by this side")
)

type State struct {
	logger   *slog.Logger
	remote   *remote.Client
	mirror   *mirror.Queue
	ranker   match.Ranker
	verifier auth.Verifier

	// Offline is flipped exactly once, at Load time, when the initial
	// bulk fetch fails. It is never re-evaluated per request.
	Offline bool

	CurrentUser *models.User
	Token       string

	Users         []models.User
	Skills        []models.Skill
	Sessions      []models.Session
	Messages      []models.Message
	Reviews       []models.Review
	Notifications []models.Notification
}

// New builds a state container. client may be nil for a purely local
// instance (the container starts in offline mode on Load). queue may be
// nil, in which case mutations are simply not mirrored.
func New(client *remote.Client, queue *mirror.Queue, ranker match.Ranker, verifier auth.Verifier, logger *slog.Logger) *State {
	if ranker == nil {
		ranker = match.Heuristic{}
	}
	if verifier == nil {
		// fixture credentials are plaintext, as in the original demo mode
		verifier = auth.PlaintextVerifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &State{
		logger:   logger,
		remote:   client,
		mirror:   queue,
		ranker:   ranker,
		verifier: verifier,
	}
}

// Load performs the one-shot init fetch. On failure the container enters
// offline/demo mode: fixture data is seeded, the mirror queue is disabled,
// and no network call is attempted again for the lifetime of the State.
func (s *State) Load(ctx context.Context) {
	if s.remote != nil {
		snap, err := s.remote.Init(ctx)
		if err == nil {
			s.Users = snap.Users
			s.Skills = snap.Skills
			s.Sessions = snap.Sessions
			s.Messages = snap.Messages
			s.Reviews = snap.Reviews
			s.Offline = false
			return
		}
		s.logger.Warn("backend connection failed, demo mode active", slog.Any("err", err))
	}

	s.Offline = true
	if s.mirror != nil {
		s.mirror.Disable()
	}
	s.Users, s.Skills, s.Sessions = Fixtures()
}

// Login resolves the current user. Online it defers to the remote store;
// offline it checks the provided credential against the fixture data
// through the pluggable verifier.
func (s *State) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrMissingField
	}

	if s.Offline {
		for i := range s.Users {
			u := &s.Users[i]
			if u.Email == email && s.verifier.Verify(u.Password, password) {
				s.CurrentUser = u
				return nil
			}
		}
		return ErrAuthFailed
	}

	res, err := s.remote.Login(ctx, email, password)
	if err != nil {
		var se *remote.StatusError
		if errors.As(err, &se) && se.Code == 401 {
			return ErrAuthFailed
		}
		return err
	}
	s.setUser(res.User)
	s.CurrentUser = s.findUser(res.User.ID)
	s.Token = res.Token
	return nil
}

// Register creates an account and signs it in.
func (s *State) Register(ctx context.Context, name, email, password, bio string) error {
	if name == "" || email == "" || password == "" {
		return ErrMissingField
	}

	u := models.User{
		ID:              newID(),
		Name:            name,
		Email:           email,
		Password:        password,
		Location:        "New Member",
		Bio:             bio,
		Role:            models.RoleUser,
		Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=" + name,
		SkillsOffered:   []models.Skill{},
		SkillsRequested: []models.Skill{},
		Rating:          5.0,
		ReviewCount:     0,
	}

	if !s.Offline {
		created, err := s.remote.Register(ctx, u)
		if err != nil {
			return err
		}
		u = *created
	}

	s.Users = append(s.Users, u)
	s.CurrentUser = &s.Users[len(s.Users)-1]
	return nil
}

// Logout clears the signed-in context. Local state is kept; a fresh Load
// starts a new logical session.
func (s *State) Logout() {
	s.CurrentUser = nil
	s.Token = ""
}

// UpdateProfile edits the current user's display fields and mirrors the
// change.
func (s *State) UpdateProfile(name, bio, location string) error {
	if s.CurrentUser == nil {
		return ErrNotSignedIn
	}
	if name == "" {
		return ErrMissingField
	}

	s.CurrentUser.Name = name
	s.CurrentUser.Bio = bio
	s.CurrentUser.Location = location

	s.enqueue(mirror.Op{Kind: OpUpdateProfile, Payload: *s.CurrentUser})
	return nil
}

// AddSkill registers a new global skill. Skills are shared by reference
// across users; deleting one is deliberately not supported.
func (s *State) AddSkill(name string, category models.SkillCategory) (*models.Skill, error) {
	if name == "" {
		return nil, ErrMissingField
	}
	if !category.Valid() {
		return nil, ErrMissingField
	}

	skill := models.Skill{ID: newID(), Name: name, Category: category}
	s.Skills = append(s.Skills, skill)

	s.enqueue(mirror.Op{Kind: OpAddSkill, Payload: skill})
	return &skill, nil
}

// Recommendations asks the configured ranker for up to three partner ids.
func (s *State) Recommendations(ctx context.Context) ([]string, error) {
	if s.CurrentUser == nil {
		return nil, ErrNotSignedIn
	}
	return s.ranker.Recommend(ctx, *s.CurrentUser, s.Users)
}

func (s *State) findUser(id string) *models.User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

func (s *State) findSession(id string) *models.Session {
	for i := range s.Sessions {
		if s.Sessions[i].ID == id {
			return &s.Sessions[i]
		}
	}
	return nil
}

// setUser replaces the stored copy of a user, or appends it when unseen.
func (s *State) setUser(u models.User) {
	for i := range s.Users {
		if s.Users[i].ID == u.ID {
			s.Users[i] = u
			return
		}
	}
	s.Users = append(s.Users, u)
}

func (s *State) enqueue(op mirror.Op) {
	if s.mirror == nil || s.Offline {
		return
	}
	s.mirror.Enqueue(op)
}

func nowMillis() int64 {
	return time.Now().UTC().UnixMilli()
}
