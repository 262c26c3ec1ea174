package search

import (
	"strings"
	"testing"

	"github.com/cheerioskun/minigrep/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCaseSensitive(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape."

	got := Search(models.NewCaseSensitiveQuery("duct"), contents)

	assert.Equal(t, []string{"safe, fast, productive."}, got)
}

func TestSearchCaseInsensitive(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."

	got := Search(models.NewCaseInsensitiveQuery("rUst"), contents)

	assert.Equal(t, []string{"Rust:", "Trust me."}, got)
}

func TestSearchEmptyQueryMatchesEveryLine(t *testing.T) {
	contents := "one\ntwo\n\nthree\n"

	got := Search(models.NewCaseSensitiveQuery(""), contents)

	assert.Equal(t, []string{"one", "two", "", "three"}, got)
}

func TestSearchNoMatchReturnsEmptySlice(t *testing.T) {
	got := Search(models.NewCaseSensitiveQuery("absent"), "one\ntwo")

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchKeepsSourceDuplicatesOnly(t *testing.T) {
	contents := "aa aa\nb\naa aa"

	got := Search(models.NewCaseSensitiveQuery("aa"), contents)

	assert.Equal(t, []string{"aa aa", "aa aa"}, got)
}

func TestSearchInsensitiveEqualsLoweredSensitive(t *testing.T) {
	contents := "Alpha\nBETA\ngamma\nAlphaBet\nbeta blocker"
	queries := []string{"ALPHA", "bEtA", "Gam", "zzz", "t"}

	for _, raw := range queries {
		insensitive := Search(models.NewCaseInsensitiveQuery(raw), contents)

		var expected []string
		for _, line := range Lines(contents) {
			if strings.Contains(strings.ToLower(line), strings.ToLower(raw)) {
				expected = append(expected, line)
			}
		}
		if expected == nil {
			expected = []string{}
		}

		assert.Equal(t, expected, insensitive, "query %q", raw)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     []string
	}{
		{"empty", "", nil},
		{"single without terminator", "a", []string{"a"}},
		{"trailing terminator", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
		{"only terminator", "\n", []string{""}},
		{"bare cr at end kept", "a\rb\r", []string{"a\rb\r"}},
		{"crlf then bare cr", "a\r\nb\r", []string{"a", "b\r"}},
		{"bare cr inside line", "a\rb\n", []string{"a\rb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.contents))
		})
	}
}

func TestHighlights(t *testing.T) {
	tests := []struct {
		name  string
		query models.Query
		line  string
		want  [][2]int
	}{
		{"single", models.NewCaseSensitiveQuery("duct"), "productive", [][2]int{{3, 7}}},
		{"repeated", models.NewCaseSensitiveQuery("ab"), "abxab", [][2]int{{0, 2}, {3, 5}}},
		{"non-overlapping", models.NewCaseSensitiveQuery("aa"), "aaa", [][2]int{{0, 2}}},
		{"insensitive", models.NewCaseInsensitiveQuery("RUST"), "Trust", [][2]int{{1, 5}}},
		{"empty pattern", models.NewCaseSensitiveQuery(""), "abc", nil},
		{"no match", models.NewCaseSensitiveQuery("z"), "abc", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlights(tt.query, tt.line))
		})
	}
}
