package models

// Config holds the validated inputs for a single search
type Config struct {
	Query    Query  // Pattern and comparison mode
	Filename string // File to search, as given on the command line
}
