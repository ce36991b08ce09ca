package results

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	assessdto "aiact/internal/modules/assess/dto"
	"aiact/internal/ui/theme"
)

type Model struct {
	view   viewport.Model
	ready  bool
	width  int
	height int
}

func New() Model {
	return Model{view: viewport.New(0, 0)}
}

// SetOutcome renders a completed assessment into the scrollable pane.
func (m *Model) SetOutcome(description string, res assessdto.ResultOutput, reportID string) {
	var b strings.Builder

	b.WriteString(theme.Risk(res.RiskCategory).Render(strings.ToUpper(res.RiskCategory)))
	b.WriteString(theme.Muted.Render(fmt.Sprintf("  risk score %d/100", res.RiskScore)))
	b.WriteString("\n\n")

	if res.Explanation != "" {
		b.WriteString(res.Explanation)
		b.WriteString("\n\n")
	}

	writeSection(&b, "Risk factors", res.RiskFactors)
	writeSection(&b, "Relevant EU AI Act articles", res.Articles)
	writeSection(&b, "Recommendations", res.Recommendations)

	b.WriteString(theme.Muted.Render("Assessed system:"))
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(description))
	if reportID != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Muted.Render("Report " + reportID))
	}

	m.view.SetContent(b.String())
	m.view.GotoTop()
	m.ready = true
}

func writeSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(theme.Hot.Render(title))
	b.WriteString("\n")
	for _, it := range items {
		b.WriteString("  • ")
		b.WriteString(it)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = msg.Width - 4
		m.view.Height = msg.Height - 6
		return m, nil
	}
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return theme.Muted.Render("No assessment yet")
	}
	return theme.Title.Render("Compliance assessment") + "\n\n" +
		m.view.View() + "\n\n" +
		theme.Muted.Render("d: report page  n: new assessment  esc: back")
}
