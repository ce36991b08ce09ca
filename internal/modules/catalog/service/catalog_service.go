package service

import (
	"context"
	"fmt"

	"aiact/internal/modules/catalog/domain"
	catalogout "aiact/internal/modules/catalog/port/out"
	apperrors "aiact/internal/platform/errors"
)

type CatalogService struct {
	source catalogout.CatalogSource
}

func NewCatalogService(source catalogout.CatalogSource) *CatalogService {
	return &CatalogService{source: source}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.CaseStudy, error) {
	return s.source.Load(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id string) (domain.CaseStudy, error) {
	studies, err := s.source.Load(ctx)
	if err != nil {
		return domain.CaseStudy{}, err
	}
	for _, cs := range studies {
		if cs.ID == id {
			return cs, nil
		}
	}
	return domain.CaseStudy{}, fmt.Errorf("case study %q: %w", id, apperrors.ErrNotFound)
}
