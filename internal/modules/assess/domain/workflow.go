package domain

import (
	"errors"
	"fmt"
	"strings"

	apperrors "aiact/internal/platform/errors"
)

var ErrInvalidTransition = errors.New("invalid workflow transition")

type Page string

const (
	PageLanding Page = "landing"
	PageInput   Page = "input"
	PageResults Page = "results"
	PageReport  Page = "report"
	PageAuth    Page = "auth"
	PageHistory Page = "history"
)

type AuthMode string

const (
	AuthModeLogin    AuthMode = "login"
	AuthModeRegister AuthMode = "register"
)

type RiskCategory string

const (
	RiskMinimal    RiskCategory = "minimal-risk"
	RiskLimited    RiskCategory = "limited-risk"
	RiskHigh       RiskCategory = "high-risk"
	RiskProhibited RiskCategory = "prohibited"
)

// ComplianceResult is produced only by the remote classification service and
// treated as immutable once received.
type ComplianceResult struct {
	RiskCategory    RiskCategory
	RiskScore       int
	RiskFactors     []string
	Articles        []string
	Recommendations []string
	Explanation     string
}

// CheckOutcome is what a successful compliance check yields.
type CheckOutcome struct {
	ReportID    string
	Result      ComplianceResult
	DownloadURL string
}

const (
	MinDescriptionLen = 20
	MaxDescriptionLen = 2000
)

// ValidateDescription enforces the local input rule. It runs before any
// network call; failures here must never reach the gateway.
func ValidateDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return &apperrors.ValidationError{Message: "Please describe your AI system"}
	}
	if len(trimmed) < MinDescriptionLen {
		return &apperrors.ValidationError{Message: fmt.Sprintf("Please provide a more detailed description (at least %d characters)", MinDescriptionLen)}
	}
	if len(trimmed) > MaxDescriptionLen {
		return &apperrors.ValidationError{Message: fmt.Sprintf("Description is too long (%d characters max)", MaxDescriptionLen)}
	}
	return nil
}

// State is the workflow's single source of truth. Invariants:
// PageResults requires a non-nil Result, PageReport requires a ReportID, and
// Loading excludes a second in-flight submission.
type State struct {
	Page              Page
	SystemDescription string
	Result            *ComplianceResult
	ReportID          string
	Err               string
	Loading           bool
	Prefilled         string
	AuthMode          AuthMode
}

// Initial is both the start state and the universal reset target.
func Initial() State {
	return State{Page: PageLanding, AuthMode: AuthModeLogin}
}

type Event interface{ isEvent() }

// Start moves to the input page, optionally carrying a case-study prefill.
type Start struct{ Prefill string }

// BeginSubmit marks a compliance check as in flight. It is rejected while a
// previous submission is still pending.
type BeginSubmit struct{}

// SubmitSucceeded carries the service analysis back into the workflow.
type SubmitSucceeded struct {
	Description string
	Result      ComplianceResult
	ReportID    string
}

// SubmitFailed records the normalized error and keeps the input page intact.
type SubmitFailed struct{ Message string }

// ViewReport navigates from results to the report page. The report page
// fetches the document lazily; no data moves here.
type ViewReport struct{}

// ViewHistoryReport hydrates the workflow from an already-fetched record.
type ViewHistoryReport struct {
	ReportID    string
	Description string
	Result      ComplianceResult
}

type OpenAuth struct{ Mode AuthMode }

type OpenHistory struct{}

// Back steps one page toward the landing page.
type Back struct{}

// Reset wipes every field back to the initial state.
type Reset struct{}

func (Start) isEvent()             {}
func (BeginSubmit) isEvent()       {}
func (SubmitSucceeded) isEvent()   {}
func (SubmitFailed) isEvent()      {}
func (ViewReport) isEvent()        {}
func (ViewHistoryReport) isEvent() {}
func (OpenAuth) isEvent()          {}
func (OpenHistory) isEvent()       {}
func (Back) isEvent()              {}
func (Reset) isEvent()             {}

// Transition is the typed transition table: a total function from
// (state, event) to the next state. Guard violations return an error and the
// unchanged state, so a caller can never navigate into a broken page.
func Transition(s State, e Event) (State, error) {
	switch ev := e.(type) {
	case Start:
		s.Page = PageInput
		s.Prefilled = ev.Prefill
		s.Err = ""
		return s, nil

	case BeginSubmit:
		if s.Loading {
			return s, apperrors.ErrSubmissionInFlight
		}
		s.Loading = true
		s.Err = ""
		return s, nil

	case SubmitSucceeded:
		result := ev.Result
		s.SystemDescription = ev.Description
		s.Result = &result
		s.ReportID = ev.ReportID
		s.Page = PageResults
		s.Loading = false
		s.Err = ""
		return s, nil

	case SubmitFailed:
		s.Loading = false
		s.Err = ev.Message
		return s, nil

	case ViewReport:
		if s.Page != PageResults || s.ReportID == "" {
			return s, fmt.Errorf("%w: view report requires a completed check", ErrInvalidTransition)
		}
		s.Page = PageReport
		s.Err = ""
		return s, nil

	case ViewHistoryReport:
		result := ev.Result
		s.SystemDescription = ev.Description
		s.Result = &result
		s.ReportID = ev.ReportID
		s.Page = PageResults
		s.Err = ""
		return s, nil

	case OpenAuth:
		s.Page = PageAuth
		s.AuthMode = ev.Mode
		s.Err = ""
		return s, nil

	case OpenHistory:
		s.Page = PageHistory
		s.Err = ""
		return s, nil

	case Back:
		switch s.Page {
		case PageReport:
			s.Page = PageResults
		case PageResults, PageInput, PageAuth, PageHistory:
			s.Page = PageLanding
		}
		s.Err = ""
		return s, nil

	case Reset:
		return Initial(), nil
	}
	return s, fmt.Errorf("%w: unknown event %T", ErrInvalidTransition, e)
}
