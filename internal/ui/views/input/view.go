package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"aiact/internal/ui/theme"
)

// SubmitMsg carries the described system up for assessment.
type SubmitMsg struct {
	Description string
}

type Model struct {
	area    textarea.Model
	spin    spinner.Model
	loading bool
	errLine string
	width   int
	height  int
}

func New() Model {
	ta := textarea.New()
	ta.Placeholder = "Describe your AI system: what it does, who it affects, what data it processes..."
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hot

	return Model{area: ta, spin: sp}
}

// Reset prepares the page for a new assessment, optionally prefilled from a
// case study.
func (m *Model) Reset(prefill string) {
	m.area.SetValue(prefill)
	m.area.CursorEnd()
	m.area.Focus()
	m.loading = false
	m.errLine = ""
}

func (m *Model) SetError(line string) {
	m.errLine = line
	m.loading = false
}

func (m *Model) StartLoading() tea.Cmd {
	m.loading = true
	m.errLine = ""
	m.area.Blur()
	return m.spin.Tick
}

func (m *Model) StopLoading() {
	m.loading = false
	m.area.Focus()
}

func (m Model) Loading() bool { return m.loading }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.area.SetWidth(msg.Width - 6)
		m.area.SetHeight(msg.Height - 10)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.loading {
			// A submission is already running; swallow edits until it lands.
			return m, nil
		}
		if msg.String() == "ctrl+s" {
			desc := m.area.Value()
			return m, func() tea.Msg { return SubmitMsg{Description: desc} }
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	out := theme.Title.Render("Describe your AI system") + "\n\n" + m.area.View() + "\n\n"
	out += theme.Muted.Render(fmt.Sprintf("%d/2000 characters, 20 minimum", len(m.area.Value()))) + "\n"

	switch {
	case m.loading:
		out += m.spin.View() + " Checking compliance..."
	case m.errLine != "":
		out += theme.Bad.Render(m.errLine)
	default:
		out += theme.Muted.Render("ctrl+s: check compliance  esc: back")
	}
	return out
}
