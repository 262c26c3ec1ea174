package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cheerioskun/minigrep/internal/models"
	"github.com/cheerioskun/minigrep/internal/search"
	"github.com/goccy/go-json"
	"github.com/spf13/afero"
)

// matchStyle is applied to matched substrings when highlighting is on
var matchStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("196"))

// Service writes search results to writers and files
type Service struct {
	fs        afero.Fs
	highlight func(string) string
}

// NewService creates a new export service
func NewService(fs afero.Fs) *Service {
	return &Service{
		fs: fs,
		highlight: func(s string) string {
			return matchStyle.Render(s)
		},
	}
}

// SetHighlighter replaces the function used to decorate matched substrings
func (s *Service) SetHighlighter(fn func(string) string) {
	s.highlight = fn
}

// TextOptions contains configuration for plain text output
type TextOptions struct {
	Highlight bool
}

// SaveOptions contains configuration for saving a result document
type SaveOptions struct {
	DestinationPath string
	Overwrite       bool
}

// Document is the JSON representation of a result
type Document struct {
	Query    string   `json:"query"`
	Mode     string   `json:"mode"`
	Filename string   `json:"filename"`
	Matches  []string `json:"matches"`
	Count    int      `json:"count"`
}

// NewDocument converts a result into its JSON representation
func NewDocument(result *models.Result) *Document {
	matches := result.Lines
	if matches == nil {
		matches = make([]string, 0)
	}

	return &Document{
		Query:    result.Query.String(),
		Mode:     result.Query.Mode().String(),
		Filename: result.Filename,
		Matches:  matches,
		Count:    len(matches),
	}
}

// WriteText writes each matching line on its own line
func (s *Service) WriteText(w io.Writer, result *models.Result, opts TextOptions) error {
	if result == nil {
		return fmt.Errorf("invalid result")
	}

	for _, line := range result.Lines {
		if opts.Highlight {
			line = s.HighlightLine(result.Query, line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return nil
}

// WriteJSON writes the result as an indented JSON document
func (s *Service) WriteJSON(w io.Writer, result *models.Result) error {
	if result == nil {
		return fmt.Errorf("invalid result")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(result)); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	return nil
}

// Save writes the result document to opts.DestinationPath
func (s *Service) Save(result *models.Result, opts SaveOptions) error {
	if result == nil {
		return fmt.Errorf("invalid result")
	}

	if err := ValidateSavePath(opts.DestinationPath); err != nil {
		return err
	}

	// Create destination directory
	destDir := filepath.Dir(opts.DestinationPath)
	if err := s.fs.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", destDir, err)
	}

	// Check if destination exists and handle overwrite
	if !opts.Overwrite {
		if exists, err := afero.Exists(s.fs, opts.DestinationPath); err != nil {
			return fmt.Errorf("failed to check if destination exists: %w", err)
		} else if exists {
			return fmt.Errorf("destination file exists and overwrite is disabled: %s", opts.DestinationPath)
		}
	}

	data, err := json.MarshalIndent(NewDocument(result), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := afero.WriteFile(s.fs, opts.DestinationPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write result file: %w", err)
	}

	return nil
}

// HighlightLine decorates every occurrence of the query in line
func (s *Service) HighlightLine(q models.Query, line string) string {
	ranges := search.Highlights(q, line)
	if len(ranges) == 0 || s.highlight == nil {
		return line
	}

	var b strings.Builder
	last := 0
	for _, r := range ranges {
		b.WriteString(line[last:r[0]])
		b.WriteString(s.highlight(line[r[0]:r[1]]))
		last = r[1]
	}
	b.WriteString(line[last:])

	return b.String()
}

// ValidateSavePath performs basic validation on the save path
func ValidateSavePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("save path cannot be empty")
	}

	if strings.HasSuffix(path, string(filepath.Separator)) {
		return fmt.Errorf("save path must name a file, got directory: %s", path)
	}

	return nil
}
