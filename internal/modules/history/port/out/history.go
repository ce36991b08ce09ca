package out

import (
	"context"

	"aiact/internal/modules/history/domain"
)

type ReportLister interface {
	ListReports(ctx context.Context) ([]domain.Record, error)
}
