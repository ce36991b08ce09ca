package usecase

import (
	"context"

	"aiact/internal/modules/catalog/domain"
	"aiact/internal/modules/catalog/dto"
	catalogin "aiact/internal/modules/catalog/port/in"
	"aiact/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.CaseStudyOutput, error) {
	studies, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CaseStudyOutput, len(studies))
	for idx, cs := range studies {
		out[idx] = toOutput(cs)
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.CaseStudyOutput, error) {
	cs, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.CaseStudyOutput{}, err
	}
	return toOutput(cs), nil
}

func toOutput(cs domain.CaseStudy) dto.CaseStudyOutput {
	return dto.CaseStudyOutput{
		ID:                cs.ID,
		Title:             cs.Title,
		Company:           cs.Company,
		Description:       cs.Description,
		LongDescription:   cs.LongDescription,
		RiskCategory:      cs.RiskCategory,
		Score:             cs.Score,
		SystemDescription: cs.SystemDescription,
	}
}
