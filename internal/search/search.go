package search

import (
	"strings"

	"github.com/cheerioskun/minigrep/internal/models"
)

// Search returns every line of contents that matches the query, in file order.
// A line is emitted at most once no matter how often the pattern occurs in it.
func Search(q models.Query, contents string) []string {
	results := make([]string, 0)

	for _, line := range Lines(contents) {
		if q.Matches(line) {
			results = append(results, line)
		}
	}

	return results
}

// Lines splits contents on '\n', dropping the '\r' of each "\r\n" terminator.
// A final terminator does not produce an empty trailing line.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}

	terminated := strings.HasSuffix(contents, "\n")

	lines := strings.Split(contents, "\n")
	if terminated {
		lines = lines[:len(lines)-1]
	}

	// Only "\r\n" ends a line; a bare '\r' on the unterminated last line is content
	for i, line := range lines {
		if i < len(lines)-1 || terminated {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}

	return lines
}

// Highlights returns the byte ranges [start, end) of every non-overlapping
// occurrence of the query pattern in line.
func Highlights(q models.Query, line string) [][2]int {
	pattern := q.Pattern()
	if pattern == "" {
		return nil
	}

	haystack := line
	if q.IsCaseInsensitive() {
		haystack = strings.ToLower(line)
		// Offsets into the lowered copy only line up when lowering kept the length
		if len(haystack) != len(line) {
			return nil
		}
	}

	var ranges [][2]int
	offset := 0
	for {
		idx := strings.Index(haystack[offset:], pattern)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(pattern)
		ranges = append(ranges, [2]int{start, end})
		offset = end
	}

	return ranges
}
