package search

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		term     string
		mode     Mode
		segments []string
	}{
		{"", ModeName, []string{""}},
		{"Jazz", ModeName, []string{"Jazz"}},
		{"  Jazz  ", ModeName, []string{"Jazz"}},
		{"San Francisco, CA", ModeAmbiguous, []string{"San Francisco", "CA"}},
		{"Musical, San Francisco, CA", ModeFull, []string{"Musical", "San Francisco", "CA"}},
		// trailing segments beyond three are ignored
		{"a, b, c, d, e", ModeFull, []string{"a", "b", "c"}},
		{" , ", ModeAmbiguous, []string{"", ""}},
	}

	for _, tc := range cases {
		q := Parse(tc.term)
		if q.Mode != tc.mode {
			t.Errorf("Parse(%q).Mode = %v, want %v", tc.term, q.Mode, tc.mode)
		}
		if !reflect.DeepEqual(q.Segments, tc.segments) {
			t.Errorf("Parse(%q).Segments = %q, want %q", tc.term, q.Segments, tc.segments)
		}
	}
}

func TestMatchNameOnly(t *testing.T) {
	q := Parse("Jazz")

	if !q.Match("Jazz Cats", "New York", "NY") {
		t.Error("expected name substring match for 'Jazz Cats'")
	}
	if !q.Match("Smooth jazz trio", "Boston", "MA") {
		t.Error("expected case-insensitive match")
	}
	if q.Match("The Rockers", "Jazzville", "TN") {
		t.Error("single-segment query must not match on city")
	}
}

func TestMatchEmptyTermMatchesEverything(t *testing.T) {
	q := Parse("")

	for _, name := range []string{"", "Anything", "The Dueling Pianos"} {
		if !q.Match(name, "City", "ST") {
			t.Errorf("empty term should match %q", name)
		}
	}
}

func TestMatchAmbiguous(t *testing.T) {
	q := Parse("San Francisco, CA")

	// city/state branch: the name does not contain "San Francisco"
	if !q.Match("The Musical Hop", "San Francisco", "CA") {
		t.Error("expected city/state branch to match")
	}
	// name/city branch
	if !q.Match("San Francisco Symphony", "San Francisco", "CA") {
		t.Error("expected name/city branch to match")
	}
	if q.Match("The Musical Hop", "New York", "NY") {
		t.Error("neither branch should match")
	}
}

func TestMatchFull(t *testing.T) {
	q := Parse("Musical, San Francisco, CA")

	if !q.Match("The Musical Hop", "San Francisco", "CA") {
		t.Error("expected all three fields to match")
	}
	if q.Match("The Musical Hop", "San Francisco", "NV") {
		t.Error("state mismatch must fail the AND")
	}

	// empty segments match everything for that field
	q = Parse("Musical, , CA")
	if !q.Match("The Musical Hop", "Anywhere", "CA") {
		t.Error("empty city segment should match any city")
	}
}

func TestWherePlaceholders(t *testing.T) {
	clause, args := Parse("a, b").Where("name", "city", "state")
	want := "((name ILIKE $1 AND city ILIKE $2) OR (city ILIKE $1 AND state ILIKE $2))"
	if clause != want {
		t.Errorf("clause = %q, want %q", clause, want)
	}
	if !reflect.DeepEqual(args, []any{"%a%", "%b%"}) {
		t.Errorf("args = %v", args)
	}

	clause, args = NameOnly("Hop").Where("name", "city", "state")
	if clause != "name ILIKE $1" {
		t.Errorf("clause = %q", clause)
	}
	if !reflect.DeepEqual(args, []any{"%Hop%"}) {
		t.Errorf("args = %v", args)
	}
}
