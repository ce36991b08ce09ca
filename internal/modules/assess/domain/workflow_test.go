package domain_test

import (
	"reflect"
	"strings"
	"testing"

	"aiact/internal/modules/assess/domain"
	apperrors "aiact/internal/platform/errors"
)

func mustTransition(t *testing.T, s domain.State, e domain.Event) domain.State {
	t.Helper()
	next, err := domain.Transition(s, e)
	if err != nil {
		t.Fatalf("transition %T: %v", e, err)
	}
	return next
}

func highRiskResult() domain.ComplianceResult {
	return domain.ComplianceResult{
		RiskCategory:    domain.RiskHigh,
		RiskScore:       85,
		RiskFactors:     []string{"employment screening", "automated decision-making"},
		Articles:        []string{"Article 6", "Annex III"},
		Recommendations: []string{"Conduct a conformity assessment"},
		Explanation:     "Recruitment systems fall under Annex III high-risk use cases.",
	}
}

func TestValidateDescription(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		desc string
		ok   bool
	}{
		{"empty", "", false},
		{"whitespace only", "   \t\n  ", false},
		{"below minimum after trim", "  short desc  ", false},
		{"exactly at minimum", strings.Repeat("a", 20), true},
		{"typical description", "An automated AI recruiting assistant used to screen candidates.", true},
		{"above maximum", strings.Repeat("a", 2001), false},
		{"exactly at maximum", strings.Repeat("a", 2000), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := domain.ValidateDescription(tc.desc)
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok {
				if !apperrors.IsValidation(err) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
			}
		})
	}
}

func TestSubmitLifecycleReachesResultsWithAnalysis(t *testing.T) {
	t.Parallel()
	desc := "An automated AI recruiting assistant (Olivia) used by McDonald's to screen candidates, process personal data from resumes, and make initial hiring decisions."

	s := mustTransition(t, domain.Initial(), domain.Start{})
	s = mustTransition(t, s, domain.BeginSubmit{})
	if !s.Loading {
		t.Fatalf("expected loading while submission is in flight")
	}
	s = mustTransition(t, s, domain.SubmitSucceeded{Description: desc, Result: highRiskResult(), ReportID: "rep-1"})

	if s.Page != domain.PageResults {
		t.Fatalf("expected results page, got %s", s.Page)
	}
	if s.SystemDescription != desc {
		t.Fatalf("expected submitted description retained")
	}
	if s.Result == nil || s.Result.RiskScore != 85 || s.Result.RiskCategory != domain.RiskHigh {
		t.Fatalf("expected server analysis in state, got %+v", s.Result)
	}
	if s.ReportID != "rep-1" || s.Loading || s.Err != "" {
		t.Fatalf("unexpected post-submit state: %+v", s)
	}
}

func TestBeginSubmitRejectsReentrantSubmission(t *testing.T) {
	t.Parallel()
	s := mustTransition(t, domain.Initial(), domain.Start{})
	s = mustTransition(t, s, domain.BeginSubmit{})
	next, err := domain.Transition(s, domain.BeginSubmit{})
	if err != apperrors.ErrSubmissionInFlight {
		t.Fatalf("expected in-flight guard, got %v", err)
	}
	if !reflect.DeepEqual(next, s) {
		t.Fatalf("guard violation must leave state unchanged")
	}
}

func TestSubmitFailureStaysOnInputWithError(t *testing.T) {
	t.Parallel()
	s := mustTransition(t, domain.Initial(), domain.Start{})
	s = mustTransition(t, s, domain.BeginSubmit{})
	s = mustTransition(t, s, domain.SubmitFailed{Message: "Failed to check compliance"})
	if s.Page != domain.PageInput {
		t.Fatalf("failure must not navigate, got %s", s.Page)
	}
	if s.Loading || s.Err != "Failed to check compliance" {
		t.Fatalf("expected error recorded and loading cleared: %+v", s)
	}
}

func TestViewReportGuardedByReportID(t *testing.T) {
	t.Parallel()
	s := domain.Initial()
	next, err := domain.Transition(s, domain.ViewReport{})
	if err == nil {
		t.Fatalf("view report without a report id must be rejected")
	}
	if !reflect.DeepEqual(next, s) {
		t.Fatalf("rejected transition must not change state")
	}

	s = mustTransition(t, s, domain.Start{})
	s = mustTransition(t, s, domain.BeginSubmit{})
	s = mustTransition(t, s, domain.SubmitSucceeded{Description: strings.Repeat("d", 30), Result: highRiskResult(), ReportID: "rep-1"})
	s = mustTransition(t, s, domain.ViewReport{})
	if s.Page != domain.PageReport {
		t.Fatalf("expected report page, got %s", s.Page)
	}
}

func TestViewHistoryReportHydratesWithoutRefetch(t *testing.T) {
	t.Parallel()
	s := mustTransition(t, domain.Initial(), domain.OpenHistory{})
	s = mustTransition(t, s, domain.ViewHistoryReport{
		ReportID:    "rep-7",
		Description: "McDonald's uses an AI recruiting assistant to screen applicants.",
		Result:      highRiskResult(),
	})
	if s.Page != domain.PageResults || s.ReportID != "rep-7" || s.Result == nil {
		t.Fatalf("expected hydrated results state, got %+v", s)
	}
}

func TestResetFromAnyReachableStateYieldsInitial(t *testing.T) {
	t.Parallel()
	reachable := []domain.State{domain.Initial()}

	s := mustTransition(t, domain.Initial(), domain.Start{Prefill: "prefill text"})
	reachable = append(reachable, s)
	s = mustTransition(t, s, domain.BeginSubmit{})
	reachable = append(reachable, s)
	s = mustTransition(t, s, domain.SubmitSucceeded{Description: strings.Repeat("d", 25), Result: highRiskResult(), ReportID: "rep-1"})
	reachable = append(reachable, s)
	s = mustTransition(t, s, domain.ViewReport{})
	reachable = append(reachable, s)
	reachable = append(reachable, mustTransition(t, s, domain.OpenAuth{Mode: domain.AuthModeRegister}))
	reachable = append(reachable, mustTransition(t, s, domain.OpenHistory{}))

	for i, state := range reachable {
		got := mustTransition(t, state, domain.Reset{})
		if !reflect.DeepEqual(got, domain.Initial()) {
			t.Fatalf("reset from reachable state %d not deep-equal to initial: %+v", i, got)
		}
	}
}

func TestOpenAuthSetsModeAndClearsError(t *testing.T) {
	t.Parallel()
	s := domain.Initial()
	s.Err = "stale error"
	s = mustTransition(t, s, domain.OpenAuth{Mode: domain.AuthModeRegister})
	if s.Page != domain.PageAuth || s.AuthMode != domain.AuthModeRegister || s.Err != "" {
		t.Fatalf("unexpected auth state: %+v", s)
	}
}

func TestBackStepsTowardLanding(t *testing.T) {
	t.Parallel()
	s := mustTransition(t, domain.Initial(), domain.Start{})
	s = mustTransition(t, s, domain.BeginSubmit{})
	s = mustTransition(t, s, domain.SubmitSucceeded{Description: strings.Repeat("d", 25), Result: highRiskResult(), ReportID: "rep-1"})
	s = mustTransition(t, s, domain.ViewReport{})

	s = mustTransition(t, s, domain.Back{})
	if s.Page != domain.PageResults {
		t.Fatalf("report back should land on results, got %s", s.Page)
	}
	s = mustTransition(t, s, domain.Back{})
	if s.Page != domain.PageLanding {
		t.Fatalf("results back should land on landing, got %s", s.Page)
	}
}
