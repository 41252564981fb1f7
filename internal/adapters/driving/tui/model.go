// Package tui provides the interactive terminal interface for
// MindVault, built on Bubble Tea. It offers query input, ranked result
// navigation and an extractive answer pane.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
	"github.com/mindvault-labs/mindvault-cli/internal/core/ports/driving"
)

// Styles used across the interface.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// searchCompletedMsg carries the outcome of an asynchronous search.
type searchCompletedMsg struct {
	response *domain.SearchResponse
}

// errMsg carries an error from an asynchronous operation.
type errMsg struct {
	err error
}

// Model is the Bubble Tea model for the MindVault TUI.
type Model struct {
	search   driving.SearchService
	document driving.DocumentService
	opts     domain.SearchOptions

	input     textinput.Model
	response  *domain.SearchResponse
	selected  int
	searching bool
	err       error

	width  int
	height int
}

// NewModel creates the TUI model with injected services.
func NewModel(search driving.SearchService, document driving.DocumentService, opts domain.SearchOptions) Model {
	ti := textinput.New()
	ti.Placeholder = "Search your vault..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return Model{
		search:   search,
		document: document,
		opts:     opts.Normalized(),
		input:    ti,
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchCompletedMsg:
		m.searching = false
		m.err = nil
		m.response = msg.response
		m.selected = 0
		return m, nil

	case errMsg:
		m.searching = false
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		// Quit only while not typing a query.
		if !m.input.Focused() {
			return m, tea.Quit
		}

	case "enter":
		if m.input.Focused() {
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			m.searching = true
			m.input.Blur()
			return m, m.runSearch(query)
		}

	case "esc":
		if m.input.Focused() {
			m.input.SetValue("")
		} else {
			m.input.Focus()
		}
		return m, nil

	case "up", "k":
		if !m.input.Focused() && m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if !m.input.Focused() && m.response != nil && m.selected < len(m.response.Results)-1 {
			m.selected++
		}
		return m, nil

	case "/":
		if !m.input.Focused() {
			m.input.Focus()
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runSearch performs the query off the Update loop.
func (m Model) runSearch(query string) tea.Cmd {
	search := m.search
	opts := m.opts
	return func() tea.Msg {
		resp, err := search.Search(context.Background(), query, opts)
		if err != nil {
			return errMsg{err: err}
		}
		return searchCompletedMsg{response: resp}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("MindVault"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.searching:
		b.WriteString("Searching...\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case m.response != nil:
		b.WriteString(m.renderResults())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: search • ↑/↓: navigate • esc: back • q: quit"))
	return b.String()
}

func (m Model) renderResults() string {
	var b strings.Builder

	if len(m.response.Results) == 0 {
		b.WriteString(answerStyle.Render(m.response.Answer))
		b.WriteString("\n")
		return b.String()
	}

	for i := range m.response.Results {
		result := &m.response.Results[i]
		title := result.Document.Title
		if title == "" {
			title = result.Document.ID
		}

		line := fmt.Sprintf("[%d] %s %s", i+1, title,
			scoreStyle.Render(fmt.Sprintf("(%.2f)", result.Score)))
		if i == m.selected {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Show the selected chunk under the list.
	if m.selected < len(m.response.Results) {
		b.WriteString("\n")
		b.WriteString(answerStyle.Render(clip(m.response.Results[m.selected].Chunk.Content, m.width-4)))
		b.WriteString("\n")
	}

	return b.String()
}

// clip shortens text to fit a single display line.
func clip(s string, max int) string {
	if max < 10 {
		max = 10
	}
	runes := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max]) + "..."
}
