package results

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cheerioskun/minigrep/internal/models"
)

// Model is a scrollable view over the lines of a search result
type Model struct {
	// Data
	result *models.Result
	render func(models.Query, string) string

	// UI state
	width    int
	height   int
	viewport viewport.Model
	quitting bool

	// Styles
	titleStyle   lipgloss.Style
	summaryStyle lipgloss.Style
	emptyStyle   lipgloss.Style
	helpStyle    lipgloss.Style
}

// NewModel creates a pager for result. render decorates each line before display;
// nil shows lines unchanged.
func NewModel(result *models.Result, render func(models.Query, string) string) *Model {
	vp := viewport.New(80, 20) // Initial size, will be updated in SetSize

	m := &Model{
		result:   result,
		render:   render,
		width:    80,
		height:   24,
		viewport: vp,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Margin(0, 0, 1, 0),

		summaryStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		emptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true),

		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true),
	}

	m.updateViewportContent()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "j", "down":
			m.viewport.LineDown(1)
			return m, nil
		case "k", "up":
			m.viewport.LineUp(1)
			return m, nil
		case "pgdown", " ":
			m.viewport.ViewDown()
			return m, nil
		case "pgup":
			m.viewport.ViewUp()
			return m, nil
		case "home", "g":
			m.viewport.GotoTop()
			return m, nil
		case "end", "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.titleStyle.Render(fmt.Sprintf("%s (%s) in %s",
		m.result.Query, m.result.Query.Mode(), m.result.Filename))

	var content string
	if m.result.IsEmpty() {
		content = m.emptyStyle.Render("No matching lines")
	} else {
		content = m.viewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, m.renderSummary(), m.helpStyle.Render("j/k scroll • g/G top/bottom • q quit"))
}

// Quitting reports whether the user asked to leave the pager
func (m *Model) Quitting() bool {
	return m.quitting
}

// SetSize resizes the pager
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// Title (2 lines), summary and help (1 line each)
	viewportHeight := height - 4
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	m.viewport.Width = width
	m.viewport.Height = viewportHeight
	m.updateViewportContent()
}

// updateViewportContent updates the viewport with the numbered match list
func (m *Model) updateViewportContent() {
	if m.result.IsEmpty() {
		m.viewport.SetContent("")
		return
	}

	digits := len(fmt.Sprint(m.result.Count()))
	lines := make([]string, 0, m.result.Count())
	for i, line := range m.result.Lines {
		if m.render != nil {
			line = m.render(m.result.Query, line)
		}
		lines = append(lines, fmt.Sprintf("%*d  %s", digits, i+1, line))
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// renderSummary renders the match count and scroll position
func (m *Model) renderSummary() string {
	scrollInfo := ""
	if m.result.Count() > 0 && m.viewport.Height > 0 {
		scrollInfo = fmt.Sprintf(" • %d/%d", m.viewport.YOffset+1, m.result.Count())
	}

	return m.summaryStyle.Render(fmt.Sprintf("%d matches%s", m.result.Count(), scrollInfo))
}
