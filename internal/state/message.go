package state

import (
	"fmt"

	"github.com/garnizeh/skillswap/internal/mirror"
	"github.com/garnizeh/skillswap/internal/models"
)

// SendMessage appends a message to the thread shared with partnerID and
// notifies them. Threads are keyed by the unordered user pair, so replies
// from either side land in the same bucket.
func (s *State) SendMessage(partnerID, text string) (*models.Message, error) {
	if s.CurrentUser == nil {
		return nil, ErrNotSignedIn
	}
	if partnerID == "" || text == "" {
		return nil, ErrMissingField
	}

	msg := models.Message{
		ID:        newID(),
		SessionID: models.ThreadKey(s.CurrentUser.ID, partnerID),
		SenderID:  s.CurrentUser.ID,
		Text:      text,
		Timestamp: nowMillis(),
	}
	s.Messages = append(s.Messages, msg)

	s.Notify(partnerID, fmt.Sprintf("New message from %s", s.CurrentUser.Name), text, models.NotifyMessage)

	s.enqueue(mirror.Op{Kind: OpSendMessage, Payload: msg})
	return &s.Messages[len(s.Messages)-1], nil
}

// Thread returns the messages exchanged between the current user and
// partnerID, in insertion order.
func (s *State) Thread(partnerID string) []models.Message {
	if s.CurrentUser == nil {
		return nil
	}
	key := models.ThreadKey(s.CurrentUser.ID, partnerID)
	out := make([]models.Message, 0)
	for _, m := range s.Messages {
		if m.SessionID == key {
			out = append(out, m)
		}
	}
	return out
}
