package in

import (
	"context"

	"aiact/internal/modules/report/dto"
	reportin "aiact/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Download(ctx context.Context, reportID, dir string) (dto.DownloadOutput, error) {
	return h.usecase.Download(ctx, dto.DownloadInput{ReportID: reportID, Dir: dir})
}

func (h CLIHandler) URL(reportID string) string {
	return h.usecase.URL(reportID)
}
