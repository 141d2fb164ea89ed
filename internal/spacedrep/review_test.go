package spacedrep

import (
	"testing"
	"time"
)

func ptr(t time.Time) *time.Time { return &t }

func TestIsDue_Unscheduled(t *testing.T) {
	if IsDue(nil, time.Now()) {
		t.Error("expected unscheduled word not to be due")
	}
}

func TestIsDue_BeforeDate(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	if IsDue(ptr(now.Add(24*time.Hour)), now) {
		t.Error("expected not due before review date")
	}
}

func TestIsDue_OnDate(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	if !IsDue(ptr(now), now) {
		t.Error("expected due on review date")
	}
}

func TestOverdueDays(t *testing.T) {
	due := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	got := OverdueDays(&due, due.Add(3*24*time.Hour))
	if got < 2.99 || got > 3.01 {
		t.Errorf("OverdueDays() = %f, want ~3.0", got)
	}
	if got := OverdueDays(&due, due.Add(-time.Hour)); got != 0 {
		t.Errorf("OverdueDays() before due = %f, want 0", got)
	}
}

func TestIntervalDays(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{-1, 1},
		{0, 1},
		{1, 3},
		{2, 7},
		{3, 14},
		{4, 30},
		{5, 60},
		{6, GraduatedIntervalDays},
		{12, GraduatedIntervalDays},
	}
	for _, tc := range tests {
		if got := IntervalDays(tc.level); got != tc.want {
			t.Errorf("IntervalDays(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestNextDue(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	if got := NextDue(2, true, now); !got.Equal(now.AddDate(0, 0, 7)) {
		t.Errorf("NextDue(2, correct) = %v, want +7d", got)
	}
	if got := NextDue(2, false, now); !got.Equal(now) {
		t.Errorf("NextDue(2, incorrect) = %v, want now", got)
	}
}

func TestStatus(t *testing.T) {
	due := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		due   *time.Time
		level int
		now   time.Time
		want  ReviewStatus
	}{
		{"unscheduled", nil, 0, due, ReviewUnscheduled},
		{"not due", &due, 2, due.Add(-time.Hour), ReviewNotDue},
		{"due within grace", &due, 2, due.Add(2 * 24 * time.Hour), ReviewDue},
		{"overdue past grace", &due, 2, due.Add(4 * 24 * time.Hour), ReviewOverdue},
		{"stage 0 overdue after a day", &due, 0, due.Add(24 * time.Hour), ReviewOverdue},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(tc.due, tc.level, tc.now); got != tc.want {
				t.Errorf("Status() = %q, want %q", got, tc.want)
			}
		})
	}
}
