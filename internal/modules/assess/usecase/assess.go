package usecase

import (
	"context"

	"aiact/internal/modules/assess/dto"
	assessin "aiact/internal/modules/assess/port/in"
	"aiact/internal/modules/assess/service"
)

type Interactor struct {
	svc *service.AssessService
}

func NewInteractor(svc *service.AssessService) assessin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error) {
	outcome, err := i.svc.Check(ctx, input.Description)
	if err != nil {
		return dto.SubmitOutput{}, err
	}
	return dto.SubmitOutput{
		ReportID:    outcome.ReportID,
		Description: input.Description,
		Result: dto.ResultOutput{
			RiskCategory:    string(outcome.Result.RiskCategory),
			RiskScore:       outcome.Result.RiskScore,
			RiskFactors:     outcome.Result.RiskFactors,
			Articles:        outcome.Result.Articles,
			Recommendations: outcome.Result.Recommendations,
			Explanation:     outcome.Result.Explanation,
		},
		DownloadURL: outcome.DownloadURL,
	}, nil
}
