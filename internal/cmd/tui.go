package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cheerioskun/minigrep/internal/models"
	"github.com/cheerioskun/minigrep/internal/utils"
	"github.com/cheerioskun/minigrep/ui/results"
)

// runPager shows the result in the interactive results view until the user quits
func runPager(in io.Reader, out io.Writer, result *models.Result, render func(models.Query, string) string) error {
	model := results.NewModel(result, render)

	// Start the TUI program
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	utils.Debug("starting pager with %d matches", result.Count())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("pager error: %w", err)
	}

	return nil
}
