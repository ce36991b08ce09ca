package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"aiact/internal/modules/assess/domain"
	assessdto "aiact/internal/modules/assess/dto"
	assessin "aiact/internal/modules/assess/port/in"
	authdto "aiact/internal/modules/auth/dto"
	authin "aiact/internal/modules/auth/port/in"
	catalogin "aiact/internal/modules/catalog/port/in"
	historydto "aiact/internal/modules/history/dto"
	historyin "aiact/internal/modules/history/port/in"
	reportdto "aiact/internal/modules/report/dto"
	reportin "aiact/internal/modules/report/port/in"
	"aiact/internal/ui/theme"
	authview "aiact/internal/ui/views/auth"
	historyview "aiact/internal/ui/views/history"
	inputview "aiact/internal/ui/views/input"
	landingview "aiact/internal/ui/views/landing"
	reportview "aiact/internal/ui/views/report"
	resultsview "aiact/internal/ui/views/results"
)

type Ports struct {
	Assess  assessin.Usecase
	Auth    authin.Usecase
	History historyin.Usecase
	Report  reportin.Usecase
	Catalog catalogin.Usecase
}

type (
	authInitMsg struct {
		session authdto.SessionOutput
		err     error
	}
	authDoneMsg struct {
		session authdto.SessionOutput
		err     error
	}
	logoutDoneMsg struct{ err error }
	checkDoneMsg  struct {
		out assessdto.SubmitOutput
		err error
	}
	downloadDoneMsg struct {
		out reportdto.DownloadOutput
		err error
	}
)

// Model is the root program. It owns the workflow state and applies every
// page change through domain.Transition; the sub-views never navigate on
// their own.
type Model struct {
	ports       Ports
	downloadDir string

	workflow domain.State
	identity string
	authed   bool
	status   string

	landing landingview.Model
	input   inputview.Model
	results resultsview.Model
	report  reportview.Model
	auth    authview.Model
	history historyview.Model

	width  int
	height int
}

func New(ports Ports, downloadDir string) Model {
	return Model{
		ports:       ports,
		downloadDir: downloadDir,
		workflow:    domain.Initial(),
		landing:     landingview.New(ports.Catalog),
		input:       inputview.New(),
		results:     resultsview.New(),
		report:      reportview.New(),
		auth:        authview.New(),
		history:     historyview.New(ports.History),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.landing.Init(), m.initAuthCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inner := tea.WindowSizeMsg{Width: msg.Width - 4, Height: msg.Height - 3}
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.landing, cmd = m.landing.Update(inner)
		cmds = append(cmds, cmd)
		m.input, cmd = m.input.Update(inner)
		cmds = append(cmds, cmd)
		m.results, cmd = m.results.Update(inner)
		cmds = append(cmds, cmd)
		m.history, cmd = m.history.Update(inner)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case landingview.CasesLoadedMsg:
		var cmd tea.Cmd
		m.landing, cmd = m.landing.Update(msg)
		return m, cmd

	case landingview.StartMsg:
		m.apply(domain.Start{Prefill: msg.Prefill})
		m.input.Reset(msg.Prefill)
		return m, nil

	case inputview.SubmitMsg:
		return m.beginCheck(msg.Description)

	case checkDoneMsg:
		return m.finishCheck(msg)

	case authview.SubmitMsg:
		cmd := m.auth.StartSubmit()
		return m, tea.Batch(cmd, m.authenticateCmd(msg))

	case authInitMsg:
		if msg.err == nil && msg.session.Authenticated {
			m.authed = true
			m.identity = msg.session.Identity
		}
		return m, nil

	case authDoneMsg:
		if msg.err != nil {
			m.auth.SetError(msg.err.Error())
			return m, nil
		}
		m.authed = true
		m.identity = msg.session.Identity
		m.status = "Logged in as " + msg.session.Identity
		m.apply(domain.Back{})
		return m, nil

	case logoutDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.authed = false
		m.identity = ""
		m.status = "Logged out"
		return m, nil

	case historyview.LoadedMsg:
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd

	case historyview.OpenMsg:
		return m.openHistoryRecord(msg.Record)

	case reportview.DownloadMsg:
		cmd := m.report.StartDownload()
		return m, tea.Batch(cmd, m.downloadCmd(m.workflow.ReportID))

	case downloadDoneMsg:
		if msg.err != nil {
			m.report.SetError(msg.err.Error())
			return m, nil
		}
		m.report.SetSaved(msg.out.Path, msg.out.Pages)
		m.status = "Report saved to " + msg.out.Path
		return m, nil
	}

	return m.routeToPage(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.workflow.Page {
	case domain.PageLanding:
		if !m.landing.Filtering() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "l":
				m.apply(domain.OpenAuth{Mode: domain.AuthModeLogin})
				m.auth.Open(authview.ModeLogin)
				return m, nil
			case "s":
				m.apply(domain.OpenAuth{Mode: domain.AuthModeRegister})
				m.auth.Open(authview.ModeRegister)
				return m, nil
			case "h":
				if !m.authed {
					m.status = "Log in to see your assessment history"
					m.apply(domain.OpenAuth{Mode: domain.AuthModeLogin})
					m.auth.Open(authview.ModeLogin)
					return m, nil
				}
				m.apply(domain.OpenHistory{})
				return m, m.history.Open()
			case "ctrl+x":
				if m.authed {
					return m, m.logoutCmd()
				}
				return m, nil
			}
		}

	case domain.PageResults:
		switch msg.String() {
		case "esc":
			m.apply(domain.Back{})
			return m, nil
		case "n":
			m.apply(domain.Reset{})
			m.apply(domain.Start{})
			m.input.Reset("")
			return m, nil
		case "d":
			if m.applyOK(domain.ViewReport{}) {
				m.report.SetReport(m.workflow.ReportID, m.ports.Report.URL(m.workflow.ReportID))
			}
			return m, nil
		}

	case domain.PageInput:
		if msg.String() == "esc" && !m.input.Loading() {
			m.apply(domain.Back{})
			return m, nil
		}

	case domain.PageReport, domain.PageHistory:
		if msg.String() == "esc" {
			m.apply(domain.Back{})
			return m, nil
		}

	case domain.PageAuth:
		if msg.String() == "esc" && !m.auth.Busy() {
			m.apply(domain.Back{})
			return m, nil
		}
	}

	return m.routeToPage(msg)
}

// routeToPage forwards a message to the sub-view of the current page only.
func (m Model) routeToPage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.workflow.Page {
	case domain.PageLanding:
		m.landing, cmd = m.landing.Update(msg)
	case domain.PageInput:
		m.input, cmd = m.input.Update(msg)
	case domain.PageResults:
		m.results, cmd = m.results.Update(msg)
	case domain.PageReport:
		m.report, cmd = m.report.Update(msg)
	case domain.PageAuth:
		m.auth, cmd = m.auth.Update(msg)
	case domain.PageHistory:
		m.history, cmd = m.history.Update(msg)
	}
	return m, cmd
}

func (m *Model) apply(e domain.Event) {
	next, err := domain.Transition(m.workflow, e)
	if err != nil {
		return
	}
	m.workflow = next
}

func (m *Model) applyOK(e domain.Event) bool {
	next, err := domain.Transition(m.workflow, e)
	if err != nil {
		return false
	}
	m.workflow = next
	return true
}

func (m Model) beginCheck(description string) (tea.Model, tea.Cmd) {
	// Local validation never leaves the client and never sets the loading
	// flag; the gateway sees well-formed submissions only.
	if err := domain.ValidateDescription(description); err != nil {
		m.input.SetError(err.Error())
		return m, nil
	}
	if !m.applyOK(domain.BeginSubmit{}) {
		return m, nil
	}
	cmd := m.input.StartLoading()
	return m, tea.Batch(cmd, m.checkCmd(description))
}

func (m Model) finishCheck(msg checkDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.apply(domain.SubmitFailed{Message: msg.err.Error()})
		m.input.SetError(msg.err.Error())
		return m, nil
	}
	m.apply(domain.SubmitSucceeded{
		Description: msg.out.Description,
		Result:      toDomainResult(msg.out.Result),
		ReportID:    msg.out.ReportID,
	})
	m.input.StopLoading()
	m.results.SetOutcome(msg.out.Description, msg.out.Result, msg.out.ReportID)
	return m, nil
}

// openHistoryRecord hydrates the results page from an already-fetched record,
// without re-running the check.
func (m Model) openHistoryRecord(rec historydto.RecordOutput) (tea.Model, tea.Cmd) {
	res := assessdto.ResultOutput{
		RiskCategory:    rec.Analysis.RiskCategory,
		RiskScore:       rec.Analysis.RiskScore,
		RiskFactors:     rec.Analysis.RiskFactors,
		Articles:        rec.Analysis.Articles,
		Recommendations: rec.Analysis.Recommendations,
		Explanation:     rec.Analysis.Explanation,
	}
	m.apply(domain.ViewHistoryReport{
		ReportID:    rec.ID,
		Description: rec.Description,
		Result:      toDomainResult(res),
	})
	m.results.SetOutcome(rec.Description, res, rec.ID)
	return m, nil
}

func toDomainResult(r assessdto.ResultOutput) domain.ComplianceResult {
	return domain.ComplianceResult{
		RiskCategory:    domain.RiskCategory(r.RiskCategory),
		RiskScore:       r.RiskScore,
		RiskFactors:     r.RiskFactors,
		Articles:        r.Articles,
		Recommendations: r.Recommendations,
		Explanation:     r.Explanation,
	}
}

func (m Model) View() string {
	var page string
	switch m.workflow.Page {
	case domain.PageLanding:
		page = m.landing.View()
	case domain.PageInput:
		page = m.input.View()
	case domain.PageResults:
		page = m.results.View()
	case domain.PageReport:
		page = m.report.View()
	case domain.PageAuth:
		page = m.auth.View()
	case domain.PageHistory:
		page = m.history.View()
	}

	body := lipgloss.NewStyle().
		Width(m.width - 2).
		Height(m.height - 2).
		Padding(0, 1).
		Render(page)

	return body + "\n" + m.statusBar()
}

func (m Model) statusBar() string {
	who := "not logged in"
	if m.authed {
		who = m.identity
	}
	left := theme.Muted.Render(fmt.Sprintf(" %s | %s ", m.workflow.Page, who))
	if m.status == "" {
		return left
	}
	return left + theme.Hot.Render(m.status)
}

func (m Model) initAuthCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.ports.Auth.Initialize(context.Background())
		return authInitMsg{session: session, err: err}
	}
}

func (m Model) authenticateCmd(msg authview.SubmitMsg) tea.Cmd {
	return func() tea.Msg {
		creds := authdto.CredentialsInput{Email: msg.Email, Password: msg.Password}
		var (
			session authdto.SessionOutput
			err     error
		)
		if msg.Mode == authview.ModeRegister {
			session, err = m.ports.Auth.Register(context.Background(), creds)
		} else {
			session, err = m.ports.Auth.Login(context.Background(), creds)
		}
		return authDoneMsg{session: session, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return logoutDoneMsg{err: m.ports.Auth.Logout(context.Background())}
	}
}

func (m Model) checkCmd(description string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.ports.Assess.Submit(context.Background(), assessdto.SubmitInput{Description: description})
		return checkDoneMsg{out: out, err: err}
	}
}

func (m Model) downloadCmd(reportID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.ports.Report.Download(context.Background(), reportdto.DownloadInput{
			ReportID: reportID,
			Dir:      m.downloadDir,
		})
		return downloadDoneMsg{out: out, err: err}
	}
}
