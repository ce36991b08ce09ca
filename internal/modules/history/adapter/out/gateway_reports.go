package out

import (
	"context"

	"aiact/internal/gateway"
	"aiact/internal/modules/history/domain"
	historyout "aiact/internal/modules/history/port/out"
)

type GatewayReports struct {
	client *gateway.Client
}

func NewGatewayReports(client *gateway.Client) historyout.ReportLister {
	return &GatewayReports{client: client}
}

func (g *GatewayReports) ListReports(ctx context.Context) ([]domain.Record, error) {
	records, err := g.client.ListReports(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, len(records))
	for i, r := range records {
		out[i] = domain.Record{
			ID:          r.ID,
			UserID:      r.UserID,
			Description: r.Description,
			Analysis: domain.Analysis{
				RiskCategory:    r.AnalysisResult.RiskCategory,
				RiskScore:       r.AnalysisResult.RiskScore,
				RiskFactors:     r.AnalysisResult.RiskFactors,
				Articles:        r.AnalysisResult.Articles,
				Recommendations: r.AnalysisResult.Recommendations,
				Explanation:     r.AnalysisResult.Explanation,
			},
			CreatedAt: r.CreatedAt,
		}
	}
	return out, nil
}
