package in

import (
	"context"

	"aiact/internal/modules/assess/dto"
	assessin "aiact/internal/modules/assess/port/in"
)

type CLIHandler struct {
	usecase assessin.Usecase
}

func NewCLIHandler(usecase assessin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Check(ctx context.Context, description string) (dto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, dto.SubmitInput{Description: description})
}
