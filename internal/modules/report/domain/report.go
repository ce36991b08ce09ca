package domain

import "fmt"

// SavedReport describes a report document written to disk.
type SavedReport struct {
	ReportID string
	Path     string
	Bytes    int
	// Pages is 0 when the document could not be inspected.
	Pages int
}

// FileName is the user-facing name for a downloaded report document.
func FileName(reportID string) string {
	return fmt.Sprintf("EU-AI-Compliance-Report-%s.pdf", reportID)
}
