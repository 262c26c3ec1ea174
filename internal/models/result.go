package models

// Result represents the outcome of one search
type Result struct {
	Query    Query    // Query that produced the matches
	Filename string   // File that was searched
	Lines    []string // Matching lines in file order
}

// NewResult creates an empty Result for the given configuration
func NewResult(cfg *Config) *Result {
	return &Result{
		Query:    cfg.Query,
		Filename: cfg.Filename,
		Lines:    make([]string, 0),
	}
}

// AddLine appends a matching line
func (r *Result) AddLine(line string) {
	r.Lines = append(r.Lines, line)
}

// IsEmpty returns true if nothing matched
func (r *Result) IsEmpty() bool {
	return len(r.Lines) == 0
}

// Count returns the number of matching lines
func (r *Result) Count() int {
	return len(r.Lines)
}
