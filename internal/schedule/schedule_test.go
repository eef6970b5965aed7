package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/kirinyoku/gigbook/internal/domain"
)

func mustWindow(t *testing.T, day int, start, end string) domain.Availability {
	t.Helper()
	w, err := NewWindow(1, day, start, end)
	if err != nil {
		t.Fatalf("NewWindow(%d, %s, %s): %v", day, start, end, err)
	}
	return w
}

func TestNewWindowRejections(t *testing.T) {
	cases := []struct {
		name  string
		day   int
		start string
		end   string
		field string
	}{
		{"day below range", -1, "09:00", "17:00", "day_of_week"},
		{"day above range", 7, "09:00", "17:00", "day_of_week"},
		{"bad start", 0, "9am", "17:00", "start_time"},
		{"bad end", 0, "09:00", "25:00", "end_time"},
		{"missing colon", 0, "0900", "17:00", "start_time"},
		{"start equals end", 0, "09:00", "09:00", "start_time"},
		{"start after end", 0, "17:00", "09:00", "start_time"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWindow(1, tc.day, tc.start, tc.end)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestNewWindowAccepts(t *testing.T) {
	w := mustWindow(t, 6, "09:30", "17:45")

	if w.DayOfWeek != 6 {
		t.Errorf("day = %d", w.DayOfWeek)
	}
	if w.StartMin.String() != "09:30" || w.EndMin.String() != "17:45" {
		t.Errorf("window = %s-%s", w.StartMin, w.EndMin)
	}
}

func TestGroupByDay(t *testing.T) {
	windows := []domain.Availability{
		mustWindow(t, 2, "14:00", "18:00"),
		mustWindow(t, 0, "09:00", "12:00"),
		mustWindow(t, 2, "08:00", "10:00"),
		// same-day overlap is allowed and must survive grouping untouched
		mustWindow(t, 2, "08:00", "10:00"),
	}

	buckets := GroupByDay(windows)

	if len(buckets) != 7 {
		t.Fatalf("got %d buckets, want 7", len(buckets))
	}
	for i, b := range buckets {
		if b.Day != Days[i] {
			t.Errorf("bucket %d day = %q, want %q", i, b.Day, Days[i])
		}
		if b.Windows == nil {
			t.Errorf("bucket %q has nil window slice", b.Day)
		}
	}

	if n := len(buckets[0].Windows); n != 1 {
		t.Errorf("Monday has %d windows, want 1", n)
	}
	if n := len(buckets[2].Windows); n != 3 {
		t.Errorf("Wednesday has %d windows, want 3", n)
	}

	// Wednesday sorted by start time ascending
	wed := buckets[2].Windows
	for i := 1; i < len(wed); i++ {
		if wed[i-1].StartMin > wed[i].StartMin {
			t.Errorf("Wednesday windows out of order: %s after %s",
				wed[i].StartMin, wed[i-1].StartMin)
		}
	}

	// no loss, no duplication
	total := 0
	for _, b := range buckets {
		total += len(b.Windows)
	}
	if total != len(windows) {
		t.Errorf("buckets hold %d windows, want %d", total, len(windows))
	}
}

func TestGroupByDayEmpty(t *testing.T) {
	for _, b := range GroupByDay(nil) {
		if len(b.Windows) != 0 {
			t.Errorf("bucket %q not empty", b.Day)
		}
	}
}

func TestSplitShowsBoundary(t *testing.T) {
	now := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)

	shows := []domain.ShowDetail{
		{ID: 1, StartTime: now.Add(-time.Hour)},
		{ID: 2, StartTime: now}, // boundary: upcoming on detail pages
		{ID: 3, StartTime: now.Add(time.Hour)},
	}

	past, upcoming := SplitShows(shows, now)

	if len(past) != 1 || past[0].ID != 1 {
		t.Errorf("past = %+v", past)
	}
	if len(upcoming) != 2 || upcoming[0].ID != 2 {
		t.Errorf("upcoming = %+v", upcoming)
	}
}

func TestCountUpcomingIsStrict(t *testing.T) {
	now := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)

	shows := []domain.ShowDetail{
		{StartTime: now.Add(-time.Hour)},
		{StartTime: now}, // boundary: excluded by the strict list-page count
		{StartTime: now.Add(time.Hour)},
	}

	if n := CountUpcoming(shows, now); n != 1 {
		t.Errorf("CountUpcoming = %d, want 1", n)
	}

	// the same dataset splits 1/2 on a detail page
	past, upcoming := SplitShows(shows, now)
	if len(past) != 1 || len(upcoming) != 2 {
		t.Errorf("split = %d/%d, want 1/2", len(past), len(upcoming))
	}
}
