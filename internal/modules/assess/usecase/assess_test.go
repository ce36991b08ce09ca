package usecase_test

import (
	"context"
	"testing"

	"aiact/internal/modules/assess/domain"
	"aiact/internal/modules/assess/dto"
	"aiact/internal/modules/assess/service"
	"aiact/internal/modules/assess/usecase"
	apperrors "aiact/internal/platform/errors"
)

type fakeChecker struct {
	calls   int
	outcome domain.CheckOutcome
	err     error
}

func (f *fakeChecker) CheckCompliance(_ context.Context, _ string) (domain.CheckOutcome, error) {
	f.calls++
	if f.err != nil {
		return domain.CheckOutcome{}, f.err
	}
	return f.outcome, nil
}

func TestSubmitShortDescriptionFailsLocallyWithoutNetworkCall(t *testing.T) {
	t.Parallel()
	checker := &fakeChecker{}
	uc := usecase.NewInteractor(service.NewAssessService(checker))

	_, err := uc.Submit(context.Background(), dto.SubmitInput{Description: "  too short  "})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if checker.calls != 0 {
		t.Fatalf("validation failure must not reach the network, got %d calls", checker.calls)
	}
}

func TestSubmitReturnsServerAnalysis(t *testing.T) {
	t.Parallel()
	desc := "An automated AI recruiting assistant (Olivia) used by McDonald's to screen candidates, process personal data from resumes, and make initial hiring decisions."
	checker := &fakeChecker{outcome: domain.CheckOutcome{
		ReportID: "rep-42",
		Result: domain.ComplianceResult{
			RiskCategory: domain.RiskHigh,
			RiskScore:    85,
			Articles:     []string{"Article 6"},
		},
		DownloadURL: "/api/download/rep-42",
	}}
	uc := usecase.NewInteractor(service.NewAssessService(checker))

	out, err := uc.Submit(context.Background(), dto.SubmitInput{Description: desc})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.ReportID != "rep-42" || out.Description != desc {
		t.Fatalf("unexpected output: %+v", out)
	}
	if out.Result.RiskCategory != "high-risk" || out.Result.RiskScore != 85 {
		t.Fatalf("expected server analysis passed through, got %+v", out.Result)
	}
	if checker.calls != 1 {
		t.Fatalf("expected exactly one network call, got %d", checker.calls)
	}
}

func TestSubmitPropagatesNormalizedGatewayError(t *testing.T) {
	t.Parallel()
	checker := &fakeChecker{err: &apperrors.RequestError{Message: "Failed to check compliance"}}
	uc := usecase.NewInteractor(service.NewAssessService(checker))

	_, err := uc.Submit(context.Background(), dto.SubmitInput{Description: "A biometric identification system deployed in public spaces."})
	if !apperrors.IsRequest(err) {
		t.Fatalf("expected RequestError, got %v", err)
	}
}
