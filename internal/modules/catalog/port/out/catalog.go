package out

import (
	"context"

	"aiact/internal/modules/catalog/domain"
)

type CatalogSource interface {
	Load(ctx context.Context) ([]domain.CaseStudy, error)
}
