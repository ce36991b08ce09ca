package usecase

import (
	"context"

	"aiact/internal/modules/history/domain"
	"aiact/internal/modules/history/dto"
	historyin "aiact/internal/modules/history/port/in"
	"aiact/internal/modules/history/service"
)

type Interactor struct {
	svc *service.HistoryService
}

func NewInteractor(svc *service.HistoryService) historyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Fetch(ctx context.Context) ([]dto.RecordOutput, error) {
	records, err := i.svc.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecordOutput, len(records))
	for idx, r := range records {
		out[idx] = toOutput(r)
	}
	return out, nil
}

func (i *Interactor) Filter(records []dto.RecordOutput, term string) []dto.RecordOutput {
	domainRecords := make([]domain.Record, len(records))
	for idx, r := range records {
		domainRecords[idx] = fromOutput(r)
	}
	matched := domain.Filter(domainRecords, term)
	out := make([]dto.RecordOutput, len(matched))
	for idx, r := range matched {
		out[idx] = toOutput(r)
	}
	return out
}

func toOutput(r domain.Record) dto.RecordOutput {
	return dto.RecordOutput{
		ID:          r.ID,
		UserID:      r.UserID,
		Description: r.Description,
		Analysis: dto.AnalysisOutput{
			RiskCategory:    r.Analysis.RiskCategory,
			RiskScore:       r.Analysis.RiskScore,
			RiskFactors:     r.Analysis.RiskFactors,
			Articles:        r.Analysis.Articles,
			Recommendations: r.Analysis.Recommendations,
			Explanation:     r.Analysis.Explanation,
		},
		CreatedAt: r.CreatedAt,
	}
}

func fromOutput(r dto.RecordOutput) domain.Record {
	return domain.Record{
		ID:          r.ID,
		UserID:      r.UserID,
		Description: r.Description,
		Analysis: domain.Analysis{
			RiskCategory:    r.Analysis.RiskCategory,
			RiskScore:       r.Analysis.RiskScore,
			RiskFactors:     r.Analysis.RiskFactors,
			Articles:        r.Analysis.Articles,
			Recommendations: r.Analysis.Recommendations,
			Explanation:     r.Analysis.Explanation,
		},
		CreatedAt: r.CreatedAt,
	}
}
