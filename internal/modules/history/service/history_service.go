package service

import (
	"context"

	"aiact/internal/modules/history/domain"
	historyout "aiact/internal/modules/history/port/out"
)

type HistoryService struct {
	lister historyout.ReportLister
}

func NewHistoryService(lister historyout.ReportLister) *HistoryService {
	return &HistoryService{lister: lister}
}

func (s *HistoryService) Fetch(ctx context.Context) ([]domain.Record, error) {
	return s.lister.ListReports(ctx)
}
