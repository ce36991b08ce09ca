package in

import (
	"context"

	"aiact/internal/modules/report/dto"
)

type Usecase interface {
	// Download fetches the report document and saves it under input.Dir.
	Download(ctx context.Context, input dto.DownloadInput) (dto.DownloadOutput, error)
	// URL builds the direct fetch address without any network call.
	URL(reportID string) string
}
