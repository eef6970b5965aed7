package domain

import (
	"testing"
	"time"
)

func TestISO8601UTC(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "utc timestamp",
			in:   time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
			want: "2019-05-21T21:30:00.000Z",
		},
		{
			name: "non-utc zone is converted",
			in:   time.Date(2019, 5, 21, 14, 30, 0, 0, time.FixedZone("PDT", -7*3600)),
			want: "2019-05-21T21:30:00.000Z",
		},
		{
			name: "millisecond precision",
			in:   time.Date(2035, 4, 1, 20, 0, 0, 123456789, time.UTC),
			want: "2035-04-01T20:00:00.123Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ISO8601UTC(tt.in); got != tt.want {
				t.Errorf("ISO8601UTC(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
