package in

import (
	"context"

	"aiact/internal/modules/catalog/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.CaseStudyOutput, error)
	Get(ctx context.Context, id string) (dto.CaseStudyOutput, error)
}
