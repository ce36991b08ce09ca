package in

import (
	"context"

	"aiact/internal/modules/history/dto"
)

type Usecase interface {
	// Fetch retrieves the authenticated user's full report list. Each visit
	// re-fetches; nothing is cached across calls.
	Fetch(ctx context.Context) ([]dto.RecordOutput, error)
	// Filter narrows an already-fetched set locally.
	Filter(records []dto.RecordOutput, term string) []dto.RecordOutput
}
