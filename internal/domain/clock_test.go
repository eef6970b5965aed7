package domain

import "testing"

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:05", 9*60 + 5, false},
		{"23:59", 23*60 + 59, false},
		{" 12:30 ", 12*60 + 30, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseClockTime(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClockTime(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClockTime(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClockTime(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestClockTimeString(t *testing.T) {
	if s := ClockTime(9*60 + 5).String(); s != "09:05" {
		t.Errorf("String() = %q, want 09:05", s)
	}
	if s := ClockTime(0).String(); s != "00:00" {
		t.Errorf("String() = %q, want 00:00", s)
	}
}
