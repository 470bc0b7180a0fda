// Package schedule holds the session time-window and conflict rules shared
// by the client state container and the server's save_session handler.
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/garnizeh/skillswap/internal/models"
)

// SessionMinutes is the fixed duration of every session: 1 hour 20 minutes.
const SessionMinutes = 80

// ComputeEndTime returns the HH:MM end time for a session starting at the
// given HH:MM start, 80 minutes later, wrapping modulo 24 hours.
//
// Known limitation, preserved on purpose: a wrap past midnight is not
// reflected in the session's date field, so a 23:50 start yields an 01:10
// end labelled with the same calendar date.
func ComputeEndTime(start string) string {
	hours, minutes, ok := splitClock(start)
	if !ok {
		return "00:00"
	}

	endMinutes := minutes + 20
	endHours := hours + 1
	if endMinutes >= 60 {
		endMinutes -= 60
		endHours++
	}

	return fmt.Sprintf("%02d:%02d", endHours%24, endMinutes)
}

// HasConflict reports whether a candidate booking (date, start..end) for
// userID overlaps any of the user's active sessions. Intervals are half-open:
// a session ending at 11:20 does not conflict with one starting at 11:20.
//
// The check is scoped to the one user only. Sessions the user is not part of
// never conflict, so the same slot can be double-booked across different
// user pairs; in particular a provider can be double-booked by two distinct
// requesters. That matches the product behaviour and is not guarded here.
func HasConflict(sessions []models.Session, userID, date, start, end string) bool {
	for _, s := range sessions {
		if s.Date != date {
			continue
		}
		if s.Status.Terminal() {
			continue
		}
		if !s.Involves(userID) {
			continue
		}
		// Zero-padded HH:MM strings order lexicographically the same way
		// they order numerically, so plain string comparison is the rule.
		if start < s.EndTime && end > s.Time {
			return true
		}
	}
	return false
}

func splitClock(v string) (hours, minutes int, ok bool) {
	h, m, found := strings.Cut(v, ":")
	if !found {
		return 0, 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, false
	}
	minutes, err = strconv.Atoi(m)
	if err != nil {
		return 0, 0, false
	}
	return hours, minutes, true
}
