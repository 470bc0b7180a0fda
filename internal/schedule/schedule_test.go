package schedule_test

import (
	"testing"

	"github.com/garnizeh/skillswap/internal/models"
	"github.com/garnizeh/skillswap/internal/schedule"
)

func TestComputeEndTime(t *testing.T) {
	tests := []struct {
		start string
		want  string
	}{
		{"09:00", "10:20"},
		{"10:00", "11:20"},
		{"10:45", "12:05"},
		{"00:00", "01:20"},
		{"22:40", "00:00"},
		{"23:50", "01:10"}, // wraps past midnight, date label unchanged
		{"", "00:00"},
		{"garbage", "00:00"},
		{"9", "00:00"},
	}

	for _, tt := range tests {
		if got := schedule.ComputeEndTime(tt.start); got != tt.want {
			t.Errorf("ComputeEndTime(%q) = %q, want %q", tt.start, got, tt.want)
		}
	}
}

func TestHasConflict(t *testing.T) {
	existing := []models.Session{
		{
			ID:          "sess-approved",
			RequesterID: "u1",
			ProviderID:  "u2",
			Date:        "2024-01-01",
			Time:        "10:00",
			EndTime:     "11:20",
			Status:      models.StatusApproved,
		},
	}

	tests := []struct {
		name   string
		user   string
		date   string
		start  string
		end    string
		expect bool
	}{
		{"overlap_tail", "u1", "2024-01-01", "11:00", "12:20", true},
		{"overlap_head", "u1", "2024-01-01", "09:00", "10:20", true},
		{"contained", "u1", "2024-01-01", "10:15", "11:00", true},
		{"half_open_boundary", "u1", "2024-01-01", "11:20", "12:40", false},
		{"ends_at_start", "u1", "2024-01-01", "08:40", "10:00", false},
		{"other_date", "u1", "2024-01-02", "10:00", "11:20", false},
		{"provider_side_checked", "u2", "2024-01-01", "10:30", "11:50", true},
		{"uninvolved_user", "u3", "2024-01-01", "10:00", "11:20", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.HasConflict(existing, tt.user, tt.date, tt.start, tt.end)
			if got != tt.expect {
				t.Fatalf("HasConflict = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestHasConflictIgnoresTerminalSessions(t *testing.T) {
	for _, status := range []models.SessionStatus{models.StatusCancelled, models.StatusCompleted} {
		sessions := []models.Session{{
			ID:          "sess-terminal",
			RequesterID: "u1",
			ProviderID:  "u2",
			Date:        "2024-01-01",
			Time:        "10:00",
			EndTime:     "11:20",
			Status:      status,
		}}
		// Booking the identical slot over a terminal session succeeds.
		if schedule.HasConflict(sessions, "u1", "2024-01-01", "10:00", "11:20") {
			t.Errorf("status %s should not participate in conflict checks", status)
		}
	}
}
