package report

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"aiact/internal/ui/theme"
)

// DownloadMsg asks the app to fetch and save the current report.
type DownloadMsg struct{}

type Model struct {
	reportID    string
	url         string
	savedPath   string
	savedPages  int
	errLine     string
	downloading bool
	spin        spinner.Model
}

func New() Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hot
	return Model{spin: sp}
}

// SetReport points the page at a freshly issued report. Any previous download
// result is discarded.
func (m *Model) SetReport(id, url string) {
	m.reportID = id
	m.url = url
	m.savedPath = ""
	m.savedPages = 0
	m.errLine = ""
	m.downloading = false
}

func (m *Model) StartDownload() tea.Cmd {
	m.downloading = true
	m.errLine = ""
	return m.spin.Tick
}

func (m *Model) SetSaved(path string, pages int) {
	m.downloading = false
	m.savedPath = path
	m.savedPages = pages
}

func (m *Model) SetError(line string) {
	m.downloading = false
	m.errLine = line
}

func (m Model) Downloading() bool { return m.downloading }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.downloading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "d" && !m.downloading {
			return m, func() tea.Msg { return DownloadMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	out := theme.Title.Render("Compliance report") + "\n\n"
	out += "Report ID: " + theme.Hot.Render(m.reportID) + "\n"
	out += theme.Muted.Render("Direct link: "+m.url) + "\n\n"

	switch {
	case m.downloading:
		out += m.spin.View() + " Downloading report..."
	case m.errLine != "":
		out += theme.Bad.Render(m.errLine)
	case m.savedPath != "":
		out += "Saved to " + m.savedPath
		if m.savedPages > 0 {
			out += theme.Muted.Render(fmt.Sprintf(" (%d pages)", m.savedPages))
		}
	default:
		out += theme.Muted.Render("d: download PDF  esc: back to results")
	}
	return out
}
