package service

import (
	"context"

	"aiact/internal/modules/report/domain"
	reportout "aiact/internal/modules/report/port/out"
)

type ReportService struct {
	downloader reportout.Downloader
	sink       reportout.Sink
	inspector  reportout.Inspector
}

func NewReportService(downloader reportout.Downloader, sink reportout.Sink, inspector reportout.Inspector) *ReportService {
	return &ReportService{downloader: downloader, sink: sink, inspector: inspector}
}

func (s *ReportService) Download(ctx context.Context, reportID, dir string) (domain.SavedReport, error) {
	payload, err := s.downloader.DownloadReport(ctx, reportID)
	if err != nil {
		return domain.SavedReport{}, err
	}
	path, err := s.sink.Save(reportID, payload, dir)
	if err != nil {
		return domain.SavedReport{}, err
	}
	saved := domain.SavedReport{ReportID: reportID, Path: path, Bytes: len(payload)}
	// Inspection is advisory; a document we cannot parse is still saved.
	if s.inspector != nil {
		if pages, err := s.inspector.PageCount(path); err == nil {
			saved.Pages = pages
		}
	}
	return saved, nil
}
