// Package schedule holds the booking calendar logic: weekly availability
// window validation and grouping, and the past/upcoming partitioning of
// shows around a reference instant.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/kirinyoku/gigbook/internal/domain"
)

// Days are indexed 0=Monday .. 6=Sunday, matching the stored day_of_week.
var Days = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ValidationError reports a rejected availability window. Field names the
// input that failed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewWindow validates and builds an availability window for an artist.
// Rejections: day out of [0,6], unparseable HH:MM times, start >= end.
// Overlap with existing windows on the same day is allowed.
func NewWindow(artistID int64, dayOfWeek int, start, end string) (domain.Availability, error) {
	var zero domain.Availability

	if dayOfWeek < 0 || dayOfWeek > 6 {
		return zero, &ValidationError{
			Field:  "day_of_week",
			Reason: fmt.Sprintf("%d is out of range 0..6", dayOfWeek),
		}
	}

	startMin, err := domain.ParseClockTime(start)
	if err != nil {
		return zero, &ValidationError{Field: "start_time", Reason: err.Error()}
	}

	endMin, err := domain.ParseClockTime(end)
	if err != nil {
		return zero, &ValidationError{Field: "end_time", Reason: err.Error()}
	}

	if startMin >= endMin {
		return zero, &ValidationError{
			Field:  "start_time",
			Reason: "start time must be before end time",
		}
	}

	return domain.Availability{
		ArtistID:  artistID,
		DayOfWeek: dayOfWeek,
		StartMin:  startMin,
		EndMin:    endMin,
	}, nil
}

// GroupByDay buckets windows into exactly seven days, Monday through
// Sunday, each sorted by start time ascending. Days without windows get an
// empty (non-nil) bucket.
func GroupByDay(windows []domain.Availability) []domain.DayBucket {
	buckets := make([]domain.DayBucket, len(Days))
	for i, day := range Days {
		buckets[i] = domain.DayBucket{Day: day, Windows: []domain.Availability{}}
	}

	for _, w := range windows {
		if w.DayOfWeek < 0 || w.DayOfWeek >= len(Days) {
			continue
		}
		buckets[w.DayOfWeek].Windows = append(buckets[w.DayOfWeek].Windows, w)
	}

	for i := range buckets {
		ws := buckets[i].Windows
		sort.SliceStable(ws, func(a, b int) bool {
			return ws[a].StartMin < ws[b].StartMin
		})
	}

	return buckets
}

// SplitShows partitions shows around now for detail pages: past is strictly
// before now, upcoming is at-or-after now. The boundary instant counts as
// upcoming here, while list and search pages count upcoming shows with a
// strict after-now comparison (see CountUpcoming); the two operators differ
// on purpose.
func SplitShows(shows []domain.ShowDetail, now time.Time) (past, upcoming []domain.ShowDetail) {
	past = []domain.ShowDetail{}
	upcoming = []domain.ShowDetail{}

	for _, s := range shows {
		if s.StartTime.Before(now) {
			past = append(past, s)
		} else {
			upcoming = append(upcoming, s)
		}
	}

	return past, upcoming
}

// CountUpcoming counts shows strictly after now, the comparison list and
// search pages use.
func CountUpcoming(shows []domain.ShowDetail, now time.Time) int64 {
	var n int64
	for _, s := range shows {
		if s.StartTime.After(now) {
			n++
		}
	}
	return n
}
