package dto

type DownloadInput struct {
	ReportID string
	Dir      string
}

type DownloadOutput struct {
	ReportID string
	Path     string
	Bytes    int
	Pages    int
}
