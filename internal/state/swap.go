package state

import (
	"fmt"

	"github.com/garnizeh/skillswap/internal/mirror"
	"github.com/garnizeh/skillswap/internal/models"
	"github.com/garnizeh/skillswap/internal/schedule"
)

// RequestSwap books a new Pending session with the current user as
// requester. The end time is derived from the start, and the slot is
// checked for overlap against the requester's own active sessions only;
// the provider may be double-booked.
func (s *State) RequestSwap(providerID, skillID, date, startTime string) (*models.Session, error) {
	if s.CurrentUser == nil {
		return nil, ErrNotSignedIn
	}
	if providerID == "" || skillID == "" || date == "" || startTime == "" {
		return nil, ErrMissingField
	}

	endTime := schedule.ComputeEndTime(startTime)
	if schedule.HasConflict(s.Sessions, s.CurrentUser.ID, date, startTime, endTime) {
		return nil, ErrConflict
	}

	session := models.Session{
		ID:          newID(),
		RequesterID: s.CurrentUser.ID,
		ProviderID:  providerID,
		SkillID:     skillID,
		Date:        date,
		Time:        startTime,
		EndTime:     endTime,
		Status:      models.StatusPending,
	}
	s.Sessions = append(s.Sessions, session)

	s.Notify(providerID, "New Session Request", fmt.Sprintf(
		"%s wants to book a session with you on %s at %s.",
		s.CurrentUser.Name, date, startTime,
	), models.NotifySession)

	s.enqueue(mirror.Op{Kind: OpSaveSession, Payload: session})
	return s.findSession(session.ID), nil
}

// TransitionStatus overwrites a session's status. Any valid status can
// replace any other; nothing enforces a forward-only lifecycle. The
// counterparty of the acting user is notified exactly once.
func (s *State) TransitionStatus(sessionID string, status models.SessionStatus) error {
	if s.CurrentUser == nil {
		return ErrNotSignedIn
	}
	if !status.Valid() {
		return fmt.Errorf("%w: status %q", ErrMissingField, status)
	}

	session := s.findSession(sessionID)
	if session == nil {
		return ErrUnknownSession
	}
	session.Status = status

	if partner := session.Counterparty(s.CurrentUser.ID); partner != "" {
		s.Notify(partner, fmt.Sprintf("Session %s", status), fmt.Sprintf(
			"Your session on %s at %s is now %s.",
			session.Date, session.Time, status,
		), models.NotifySession)
	}

	s.enqueue(mirror.Op{
		Kind:    OpUpdateSessionStatus,
		Payload: statusChange{SessionID: sessionID, Status: status},
	})
	return nil
}
