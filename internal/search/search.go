// Package search implements the free-text query used by the venue and
// artist search pages.
//
// A raw term is split on commas into up to three segments interpreted as
// "Name, City, State". One segment matches on name only. Two segments are
// ambiguous (the caller cannot know whether the first one is a name or a
// city) and match either (name, city) or (city, state). Three or more
// segments match name, city and state; extra segments are ignored. All
// comparisons are case-insensitive substring matches.
package search

import "strings"

// Mode selects which predicate a parsed query produces.
type Mode int

const (
	// ModeName matches the single segment against name only.
	ModeName Mode = iota
	// ModeAmbiguous matches (name AND city) OR (city AND state).
	ModeAmbiguous
	// ModeFull matches name AND city AND state.
	ModeFull
)

// Query is a parsed search term.
type Query struct {
	Mode     Mode
	Segments []string // trimmed, length 1..3
}

// Parse splits term on commas, trims each segment and classifies the query
// by segment count. An empty term yields a single empty segment, which
// matches everything.
func Parse(term string) Query {
	parts := strings.Split(term, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch {
	case len(parts) == 1:
		return Query{Mode: ModeName, Segments: parts}
	case len(parts) == 2:
		return Query{Mode: ModeAmbiguous, Segments: parts}
	default:
		return Query{Mode: ModeFull, Segments: parts[:3]}
	}
}

// contains reports whether s contains sub, case-insensitively. Every
// string contains the empty string, so empty segments match all records.
func contains(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// Match evaluates the query against one record's name, city and state.
func (q Query) Match(name, city, state string) bool {
	switch q.Mode {
	case ModeName:
		return contains(name, q.Segments[0])
	case ModeAmbiguous:
		nameCity := contains(name, q.Segments[0]) && contains(city, q.Segments[1])
		cityState := contains(city, q.Segments[0]) && contains(state, q.Segments[1])
		return nameCity || cityState
	default:
		return contains(name, q.Segments[0]) &&
			contains(city, q.Segments[1]) &&
			contains(state, q.Segments[2])
	}
}

// Where renders the query as a SQL predicate over the given column names
// using ILIKE, returning the clause and its ordered arguments. Placeholders
// start at $1.
func (q Query) Where(nameCol, cityCol, stateCol string) (string, []any) {
	like := func(s string) string { return "%" + s + "%" }

	switch q.Mode {
	case ModeName:
		return nameCol + " ILIKE $1", []any{like(q.Segments[0])}
	case ModeAmbiguous:
		clause := "((" + nameCol + " ILIKE $1 AND " + cityCol + " ILIKE $2) OR (" +
			cityCol + " ILIKE $1 AND " + stateCol + " ILIKE $2))"
		return clause, []any{like(q.Segments[0]), like(q.Segments[1])}
	default:
		clause := "(" + nameCol + " ILIKE $1 AND " + cityCol + " ILIKE $2 AND " +
			stateCol + " ILIKE $3)"
		return clause, []any{like(q.Segments[0]), like(q.Segments[1]), like(q.Segments[2])}
	}
}

// NameOnly builds the basic (non-advanced) search query: a plain
// case-insensitive substring match on name.
func NameOnly(term string) Query {
	return Query{Mode: ModeName, Segments: []string{strings.TrimSpace(term)}}
}
