package state

import "github.com/garnizeh/skillswap/internal/models"

// Notify records an in-app notification for a user. Notifications are a
// side effect of other mutations, live only in this container, and are
// never sent to the remote store. Newest first.
func (s *State) Notify(userID, title, message string, kind models.NotificationType) {
	n := models.Notification{
		ID:        newID(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      kind,
		Read:      false,
		Timestamp: nowMillis(),
	}
	s.Notifications = append([]models.Notification{n}, s.Notifications...)
}

// NotificationsFor filters the feed down to one recipient.
func (s *State) NotificationsFor(userID string) []models.Notification {
	out := make([]models.Notification, 0)
	for _, n := range s.Notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// MarkNotificationRead flags a single notification as read. Unknown ids
// are ignored.
func (s *State) MarkNotificationRead(id string) {
	for i := range s.Notifications {
		if s.Notifications[i].ID == id {
			s.Notifications[i].Read = true
			return
		}
	}
}

// UnreadCount reports how many unread notifications a user has.
func (s *State) UnreadCount(userID string) int {
	count := 0
	for _, n := range s.Notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}
