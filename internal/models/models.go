package models

import (
	"sort"
	"strings"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type SkillCategory string

const (
	CategoryProgramming SkillCategory = "Programming"
	CategoryMusic       SkillCategory = "Music"
	CategoryDesign      SkillCategory = "Design"
	CategoryMarketing   SkillCategory = "Marketing"
	CategoryLanguages   SkillCategory = "Languages"
	CategoryCooking     SkillCategory = "Cooking"
	CategoryBusiness    SkillCategory = "Business"
	CategoryGame        SkillCategory = "Game"
	CategoryArt         SkillCategory = "Art"
)

// Categories is the closed set of skill categories accepted by add_skill.
var Categories = []SkillCategory{
	CategoryProgramming, CategoryMusic, CategoryDesign, CategoryMarketing,
	CategoryLanguages, CategoryCooking, CategoryBusiness, CategoryGame,
	CategoryArt,
}

func (c SkillCategory) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

type SessionStatus string

const (
	StatusPending   SessionStatus = "Pending"
	StatusApproved  SessionStatus = "Approved"
	StatusCompleted SessionStatus = "Completed"
	StatusCancelled SessionStatus = "Cancelled"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status excludes a session from conflict
// checks. Terminal sessions never block a new booking in the same slot.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type NotificationType string

const (
	NotifyMessage NotificationType = "message"
	NotifySession NotificationType = "session"
	NotifySystem  NotificationType = "system"
)

type User struct {
	ID       string   `json:"id" db:"id"`
	Name     string   `json:"name" db:"name"`
	Email    string   `json:"email" db:"email"`
	Password string   `json:"password,omitempty" db:"password_hash"`
	Location string   `json:"location" db:"location"`
	Bio      string   `json:"bio" db:"bio"`
	Role     UserRole `json:"role" db:"role"`
	Avatar   string   `json:"avatar" db:"avatar"`

	SkillsOffered   []Skill `json:"skillsOffered"`
	SkillsRequested []Skill `json:"skillsRequested"`

	// Rating is the running mean of all reviews received, rounded to one
	// fractional digit. It is recomputed from (Rating, ReviewCount) on each
	// new review, never from the stored review list.
	Rating      float64 `json:"rating" db:"rating"`
	ReviewCount int     `json:"reviewCount" db:"review_count"`
}

type Skill struct {
	ID       string        `json:"id" db:"id"`
	Name     string        `json:"name" db:"name"`
	Category SkillCategory `json:"category" db:"category"`
}

type Session struct {
	ID          string        `json:"id" db:"id"`
	RequesterID string        `json:"requesterId" db:"requester_id"`
	ProviderID  string        `json:"providerId" db:"provider_id"`
	SkillID     string        `json:"skillId" db:"skill_id"`
	Date        string        `json:"date" db:"date"`        // YYYY-MM-DD
	Time        string        `json:"time" db:"time"`        // HH:MM, session start
	EndTime     string        `json:"endTime" db:"end_time"` // HH:MM, derived
	Status      SessionStatus `json:"status" db:"status"`
	Notes       string        `json:"notes,omitempty" db:"notes"`

	RequesterReviewed bool `json:"requesterReviewed,omitempty" db:"requester_reviewed"`
	ProviderReviewed  bool `json:"providerReviewed,omitempty" db:"provider_reviewed"`
}

// Involves reports whether the user is a participant of the session.
func (s Session) Involves(userID string) bool {
	return s.RequesterID == userID || s.ProviderID == userID
}

// Counterparty returns the other participant, or "" if userID is neither.
func (s Session) Counterparty(userID string) string {
	switch userID {
	case s.RequesterID:
		return s.ProviderID
	case s.ProviderID:
		return s.RequesterID
	}
	return ""
}

// Message belongs to a two-party conversation thread. SessionID carries the
// thread key, not a Session reference: one bucket per unordered user pair,
// shared across however many real sessions the pair has.
type Message struct {
	ID        string `json:"id" db:"id"`
	SessionID string `json:"sessionId" db:"session_id"`
	SenderID  string `json:"senderId" db:"sender_id"`
	Text      string `json:"text" db:"text"`
	Timestamp int64  `json:"timestamp" db:"timestamp"` // epoch millis
}

// ThreadKey derives the conversation bucket for a user pair. The pair is
// sorted before joining so ThreadKey(a, b) == ThreadKey(b, a).
func ThreadKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "-")
}

type Review struct {
	ID         string `json:"id" db:"id"`
	SessionID  string `json:"sessionId" db:"session_id"`
	FromUserID string `json:"fromUserId" db:"from_user_id"`
	ToUserID   string `json:"toUserId" db:"to_user_id"`
	Rating     int    `json:"rating" db:"rating"` // 1..5
	Comment    string `json:"comment" db:"comment"`
	Timestamp  int64  `json:"timestamp" db:"timestamp"`
}

// Notification is only ever created as a side effect of another mutation
// and lives in the client state; it is never mirrored to the remote store.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	Timestamp int64            `json:"timestamp"`
}

// Snapshot is the bulk payload returned by the init action.
type Snapshot struct {
	Users    []User    `json:"users"`
	Skills   []Skill   `json:"skills"`
	Sessions []Session `json:"sessions"`
	Messages []Message `json:"messages"`
	Reviews  []Review  `json:"reviews"`
}
