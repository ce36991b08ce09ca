package in

import (
	"context"

	"aiact/internal/modules/catalog/dto"
	catalogin "aiact/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.CaseStudyOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.CaseStudyOutput, error) {
	return h.usecase.Get(ctx, id)
}
