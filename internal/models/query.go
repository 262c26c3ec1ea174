package models

import "strings"

// Mode represents how a query compares against a line
type Mode int

const (
	CaseSensitive Mode = iota
	CaseInsensitive
)

// String returns a human-readable representation of the mode
func (m Mode) String() string {
	switch m {
	case CaseSensitive:
		return "case-sensitive"
	case CaseInsensitive:
		return "case-insensitive"
	default:
		return "unknown"
	}
}

// Query is a search pattern together with its comparison mode.
// The stored pattern is already in the form used for comparison.
type Query struct {
	pattern string
	mode    Mode
}

// NewCaseSensitiveQuery creates a query that matches the pattern byte for byte
func NewCaseSensitiveQuery(pattern string) Query {
	return Query{pattern: pattern, mode: CaseSensitive}
}

// NewCaseInsensitiveQuery creates a query whose pattern is lowercased up front
func NewCaseInsensitiveQuery(pattern string) Query {
	return Query{pattern: strings.ToLower(pattern), mode: CaseInsensitive}
}

// Pattern returns the stored pattern
func (q Query) Pattern() string {
	return q.pattern
}

// Mode returns the comparison mode
func (q Query) Mode() Mode {
	return q.mode
}

// IsCaseInsensitive reports whether lines are lowercased before comparison
func (q Query) IsCaseInsensitive() bool {
	return q.mode == CaseInsensitive
}

// Matches reports whether the line contains the pattern
func (q Query) Matches(line string) bool {
	if q.mode == CaseInsensitive {
		line = strings.ToLower(line)
	}
	return strings.Contains(line, q.pattern)
}

// String returns the stored pattern
func (q Query) String() string {
	return q.pattern
}
