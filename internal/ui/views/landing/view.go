package landing

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "aiact/internal/modules/catalog/dto"
	"aiact/internal/ui/theme"
)

// CatalogPort supplies the bundled case studies shown on the landing page.
type CatalogPort interface {
	List(ctx context.Context) ([]catalogdto.CaseStudyOutput, error)
}

type CasesLoadedMsg struct {
	Cases []catalogdto.CaseStudyOutput
	Err   error
}

// StartMsg asks the app to open the input page, optionally prefilled from a
// case study.
type StartMsg struct {
	Prefill string
}

type caseItem struct {
	cs catalogdto.CaseStudyOutput
}

func (i caseItem) Title() string { return i.cs.Title }
func (i caseItem) Description() string {
	return fmt.Sprintf("%s  %s (%d)", i.cs.Company, i.cs.RiskCategory, i.cs.Score)
}
func (i caseItem) FilterValue() string { return i.cs.Title + " " + i.cs.Company }

type Model struct {
	port   CatalogPort
	list   list.Model
	width  int
	height int
}

func New(port CatalogPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Blue).BorderForeground(theme.Blue)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Subtext).BorderForeground(theme.Blue)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Case studies"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.loadCasesCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width*5/10, msg.Height-4)

	case CasesLoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Case studies — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Cases))
		for i, cs := range msg.Cases {
			items[i] = caseItem{cs: cs}
		}
		return m, m.list.SetItems(items)

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "enter":
				if item, ok := m.list.SelectedItem().(caseItem); ok {
					return m, func() tea.Msg { return StartMsg{Prefill: item.cs.SystemDescription} }
				}
			case "n":
				return m, func() tea.Msg { return StartMsg{} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	listW := m.width * 5 / 10
	detailW := m.width - listW

	intro := theme.Title.Render("EU AI Act self-assessment") + "\n\n" +
		theme.Muted.Render("Describe an AI system and get a structured risk\nclassification with the relevant articles and\nrecommendations, plus a downloadable PDF report.") + "\n\n" +
		theme.Muted.Render("n: new assessment\nenter: start from the selected case study\nl: login  s: sign up  h: history")

	detail := m.renderDetail()
	right := lipgloss.JoinVertical(lipgloss.Left, intro, "", detail)

	listPane := lipgloss.NewStyle().Width(listW).Height(m.height - 2).Render(m.list.View())
	rightPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface).
		Width(detailW - 2).
		Padding(1).
		Render(right)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, rightPane)
}

// Filtering reports whether the case-study filter is consuming keystrokes.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) renderDetail() string {
	item, ok := m.list.SelectedItem().(caseItem)
	if !ok {
		return theme.Muted.Render("Select a case study for details")
	}
	cs := item.cs
	return theme.Hot.Render(cs.Title) + "\n" +
		theme.Muted.Render(cs.Company) + "\n\n" +
		theme.Risk(cs.RiskCategory).Render(fmt.Sprintf("%s  %d/100", cs.RiskCategory, cs.Score)) + "\n\n" +
		cs.LongDescription
}

func (m Model) loadCasesCmd() tea.Cmd {
	return func() tea.Msg {
		cases, err := m.port.List(context.Background())
		return CasesLoadedMsg{Cases: cases, Err: err}
	}
}
