package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	historydto "aiact/internal/modules/history/dto"
	"aiact/internal/ui/theme"
)

// HistoryPort fetches the user's past reports and filters them locally.
type HistoryPort interface {
	Fetch(ctx context.Context) ([]historydto.RecordOutput, error)
	Filter(records []historydto.RecordOutput, term string) []historydto.RecordOutput
}

type LoadedMsg struct {
	Records []historydto.RecordOutput
	Err     error
}

// OpenMsg asks the app to show a past report on the results page.
type OpenMsg struct {
	Record historydto.RecordOutput
}

type Model struct {
	port     HistoryPort
	search   textinput.Model
	spin     spinner.Model
	records  []historydto.RecordOutput
	filtered []historydto.RecordOutput
	cursor   int
	loading  bool
	errLine  string
	width    int
	height   int
}

func New(port HistoryPort) Model {
	search := textinput.New()
	search.Placeholder = "filter by description or report id"
	search.Prompt = "/ "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hot

	return Model{port: port, search: search, spin: sp}
}

// Open starts a fresh visit: the search resets and the list re-fetches.
func (m *Model) Open() tea.Cmd {
	m.records = nil
	m.filtered = nil
	m.cursor = 0
	m.errLine = ""
	m.loading = true
	m.search.SetValue("")
	m.search.Focus()
	return tea.Batch(m.spin.Tick, m.fetchCmd())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errLine = msg.Err.Error()
			return m, nil
		}
		m.records = msg.Records
		m.filtered = m.port.Filter(m.records, m.search.Value())
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if m.cursor < len(m.filtered) {
				rec := m.filtered[m.cursor]
				return m, func() tea.Msg { return OpenMsg{Record: rec} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	// Filtering is in-memory; every keystroke re-narrows without a fetch.
	m.filtered = m.port.Filter(m.records, m.search.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	return m, cmd
}

func (m Model) View() string {
	out := theme.Title.Render("Assessment history") + "\n\n"
	out += m.search.View() + "\n\n"

	switch {
	case m.loading:
		return out + m.spin.View() + " Fetching reports..."
	case m.errLine != "":
		return out + theme.Bad.Render(m.errLine)
	case len(m.records) == 0:
		return out + theme.Muted.Render("No reports yet. Run an assessment first.")
	case len(m.filtered) == 0:
		return out + theme.Muted.Render("No reports match the filter.")
	}

	max := m.height - 10
	if max < 3 {
		max = 3
	}
	for i, rec := range m.filtered {
		if i >= max {
			out += theme.Muted.Render(fmt.Sprintf("…and %d more", len(m.filtered)-max)) + "\n"
			break
		}
		line := fmt.Sprintf("%s  %s  %s",
			theme.Risk(rec.Analysis.RiskCategory).Render(fmt.Sprintf("%-12s", rec.Analysis.RiskCategory)),
			rec.CreatedAt,
			truncate(rec.Description, m.width-30))
		if i == m.cursor {
			line = theme.Hot.Render("> ") + line
		} else {
			line = "  " + line
		}
		out += line + "\n"
	}
	out += "\n" + theme.Muted.Render("enter: view report  up/down: select  esc: back")
	return out
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if n < 8 {
		n = 8
	}
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func (m Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		records, err := m.port.Fetch(context.Background())
		return LoadedMsg{Records: records, Err: err}
	}
}
