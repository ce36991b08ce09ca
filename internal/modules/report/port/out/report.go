package out

import "context"

// Downloader fetches the raw report document.
type Downloader interface {
	DownloadReport(ctx context.Context, reportID string) ([]byte, error)
}

// LinkBuilder constructs a direct fetch URL for out-of-band access.
type LinkBuilder interface {
	ReportURL(reportID string) string
}

// Sink turns a downloaded payload into a user-visible file. Implementations
// must release any transient handle on every exit path, including failure of
// the final save step.
type Sink interface {
	Save(reportID string, payload []byte, dir string) (string, error)
}

// Inspector reads display metadata from a saved document.
type Inspector interface {
	PageCount(path string) (int, error)
}
