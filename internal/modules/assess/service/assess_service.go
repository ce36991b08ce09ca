package service

import (
	"context"

	"aiact/internal/modules/assess/domain"
	assessout "aiact/internal/modules/assess/port/out"
)

type AssessService struct {
	checker assessout.ComplianceChecker
}

func NewAssessService(checker assessout.ComplianceChecker) *AssessService {
	return &AssessService{checker: checker}
}

// Check validates locally and only then crosses the network boundary.
func (s *AssessService) Check(ctx context.Context, description string) (domain.CheckOutcome, error) {
	if err := domain.ValidateDescription(description); err != nil {
		return domain.CheckOutcome{}, err
	}
	return s.checker.CheckCompliance(ctx, description)
}
