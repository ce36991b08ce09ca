package auth

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"aiact/internal/ui/theme"
)

type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// SubmitMsg carries credentials up for authentication in the current mode.
type SubmitMsg struct {
	Email    string
	Password string
	Mode     Mode
}

type Model struct {
	email    textinput.Model
	password textinput.Model
	mode     Mode
	focus    int
	busy     bool
	errLine  string
	spin     spinner.Model
}

func New() Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hot

	return Model{email: email, password: password, spin: sp}
}

// Open resets the form for a fresh visit in the given mode.
func (m *Model) Open(mode Mode) {
	m.mode = mode
	m.email.SetValue("")
	m.password.SetValue("")
	m.errLine = ""
	m.busy = false
	m.focus = 0
	m.email.Focus()
	m.password.Blur()
}

func (m *Model) StartSubmit() tea.Cmd {
	m.busy = true
	m.errLine = ""
	return m.spin.Tick
}

func (m *Model) SetError(line string) {
	m.busy = false
	m.errLine = line
}

func (m Model) Busy() bool { return m.busy }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = 1 - m.focus
			if m.focus == 0 {
				m.email.Focus()
				m.password.Blur()
			} else {
				m.email.Blur()
				m.password.Focus()
			}
			return m, nil
		case "ctrl+t":
			if m.mode == ModeLogin {
				m.mode = ModeRegister
			} else {
				m.mode = ModeLogin
			}
			m.errLine = ""
			return m, nil
		case "enter":
			email, password, mode := m.email.Value(), m.password.Value(), m.mode
			return m, func() tea.Msg { return SubmitMsg{Email: email, Password: password, Mode: mode} }
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	title := "Log in"
	action := "log in"
	toggle := "ctrl+t: switch to sign up"
	if m.mode == ModeRegister {
		title = "Sign up"
		action = "create account"
		toggle = "ctrl+t: switch to log in"
	}

	out := theme.Title.Render(title) + "\n\n"
	out += m.email.View() + "\n"
	out += m.password.View() + "\n\n"

	switch {
	case m.busy:
		out += m.spin.View() + " Authenticating..."
	case m.errLine != "":
		out += theme.Bad.Render(m.errLine)
	default:
		out += theme.Muted.Render("enter: " + action + "  " + toggle + "  esc: back")
	}
	return out
}
