package out

import (
	"context"

	"aiact/internal/gateway"
	reportout "aiact/internal/modules/report/port/out"
)

type GatewayDownloader struct {
	client *gateway.Client
}

func NewGatewayDownloader(client *gateway.Client) *GatewayDownloader {
	return &GatewayDownloader{client: client}
}

var (
	_ reportout.Downloader  = (*GatewayDownloader)(nil)
	_ reportout.LinkBuilder = (*GatewayDownloader)(nil)
)

func (g *GatewayDownloader) DownloadReport(ctx context.Context, reportID string) ([]byte, error) {
	return g.client.DownloadReport(ctx, reportID)
}

func (g *GatewayDownloader) ReportURL(reportID string) string {
	return g.client.ReportURL(reportID)
}
