package out

import (
	"context"

	"aiact/internal/gateway"
	"aiact/internal/modules/assess/domain"
	assessout "aiact/internal/modules/assess/port/out"
)

// GatewayChecker bridges the compliance port onto the shared HTTP gateway.
type GatewayChecker struct {
	client *gateway.Client
}

func NewGatewayChecker(client *gateway.Client) assessout.ComplianceChecker {
	return &GatewayChecker{client: client}
}

func (g *GatewayChecker) CheckCompliance(ctx context.Context, description string) (domain.CheckOutcome, error) {
	resp, err := g.client.CheckCompliance(ctx, description)
	if err != nil {
		return domain.CheckOutcome{}, err
	}
	return domain.CheckOutcome{
		ReportID:    resp.ReportID,
		Result:      resultFromWire(resp.Analysis),
		DownloadURL: resp.DownloadURL,
	}, nil
}

func resultFromWire(w gateway.ComplianceResult) domain.ComplianceResult {
	return domain.ComplianceResult{
		RiskCategory:    domain.RiskCategory(w.RiskCategory),
		RiskScore:       w.RiskScore,
		RiskFactors:     w.RiskFactors,
		Articles:        w.Articles,
		Recommendations: w.Recommendations,
		Explanation:     w.Explanation,
	}
}
