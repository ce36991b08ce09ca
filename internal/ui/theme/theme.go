package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base    = lipgloss.Color("#101828")
	Mantle  = lipgloss.Color("#0c1420")
	Surface = lipgloss.Color("#2a3a52")
	Text    = lipgloss.Color("#e6edf7")
	Subtext = lipgloss.Color("#93a4bd")
	Blue    = lipgloss.Color("#4f83f1")
	Gold    = lipgloss.Color("#ffcc00")
	Green   = lipgloss.Color("#7ed491")
	Orange  = lipgloss.Color("#f5a25c")
	Red     = lipgloss.Color("#ef6b73")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	Title = lipgloss.NewStyle().Foreground(Blue).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext)
	Hot   = lipgloss.NewStyle().Foreground(Gold).Bold(true)
	Bad   = lipgloss.NewStyle().Foreground(Red).Bold(true)
)

// Risk maps a risk category to its display style.
func Risk(category string) lipgloss.Style {
	switch category {
	case "prohibited":
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	case "high-risk":
		return lipgloss.NewStyle().Foreground(Orange).Bold(true)
	case "limited-risk":
		return lipgloss.NewStyle().Foreground(Gold)
	default:
		return lipgloss.NewStyle().Foreground(Green)
	}
}
