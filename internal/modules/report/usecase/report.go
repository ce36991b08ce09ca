package usecase

import (
	"context"

	"aiact/internal/modules/report/dto"
	reportin "aiact/internal/modules/report/port/in"
	reportout "aiact/internal/modules/report/port/out"
	"aiact/internal/modules/report/service"
)

type Interactor struct {
	svc   *service.ReportService
	links reportout.LinkBuilder
}

func NewInteractor(svc *service.ReportService, links reportout.LinkBuilder) reportin.Usecase {
	return &Interactor{svc: svc, links: links}
}

func (i *Interactor) Download(ctx context.Context, input dto.DownloadInput) (dto.DownloadOutput, error) {
	saved, err := i.svc.Download(ctx, input.ReportID, input.Dir)
	if err != nil {
		return dto.DownloadOutput{}, err
	}
	return dto.DownloadOutput{
		ReportID: saved.ReportID,
		Path:     saved.Path,
		Bytes:    saved.Bytes,
		Pages:    saved.Pages,
	}, nil
}

func (i *Interactor) URL(reportID string) string {
	return i.links.ReportURL(reportID)
}
