package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/cheerioskun/minigrep/internal/models"
	"github.com/cheerioskun/minigrep/internal/search"
	"github.com/cheerioskun/minigrep/internal/utils"
	"github.com/spf13/afero"
)

// ErrInvalidText is returned when the file content is not valid UTF-8
var ErrInvalidText = errors.New("stream did not contain valid UTF-8")

// Runner reads the configured file and filters its lines
type Runner struct {
	fs    afero.Fs
	diag  io.Writer
	getwd func() (string, error)
}

// New creates a Runner reading from fs and writing the diagnostic banner to diag.
// A nil diag discards the banner.
func New(fs afero.Fs, diag io.Writer) *Runner {
	if diag == nil {
		diag = io.Discard
	}
	return &Runner{
		fs:    fs,
		diag:  diag,
		getwd: os.Getwd,
	}
}

// SetWorkingDirFunc overrides how the current directory is resolved
func (r *Runner) SetWorkingDirFunc(getwd func() (string, error)) {
	r.getwd = getwd
}

// Run reads cfg.Filename fully and returns the lines matching cfg.Query
func (r *Runner) Run(cfg *models.Config) (*models.Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("invalid configuration")
	}

	cwd, err := r.getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current working directory: %w", err)
	}

	fmt.Fprintf(r.diag, "Searching for '%s' in '%s'. Current directory: %s\n", cfg.Query, cfg.Filename, cwd)
	utils.Debug("search started: query=%q mode=%s file=%s cwd=%s", cfg.Query, cfg.Query.Mode(), cfg.Filename, cwd)

	data, err := afero.ReadFile(r.fs, cfg.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", cfg.Filename, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("failed to read %s: %w", cfg.Filename, ErrInvalidText)
	}

	utils.Debug("read %s from %s", formatBytes(int64(len(data))), cfg.Filename)

	result := models.NewResult(cfg)
	for _, line := range search.Search(cfg.Query, string(data)) {
		result.AddLine(line)
	}

	utils.Debug("search finished: %d matching lines", result.Count())
	return result, nil
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
