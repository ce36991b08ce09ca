package in

import (
	"context"

	"aiact/internal/modules/history/dto"
	historyin "aiact/internal/modules/history/port/in"
)

type CLIHandler struct {
	usecase historyin.Usecase
}

func NewCLIHandler(usecase historyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// List fetches the report history and applies an optional local filter.
func (h CLIHandler) List(ctx context.Context, term string) ([]dto.RecordOutput, error) {
	records, err := h.usecase.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return h.usecase.Filter(records, term), nil
}
