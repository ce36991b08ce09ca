package domain

// CaseStudy is bundled, immutable reference data. The workflow consumes only
// SystemDescription, as the prefill for a new assessment; the remaining
// fields are display copy.
type CaseStudy struct {
	ID                string
	Title             string
	Company           string
	Description       string
	LongDescription   string
	RiskCategory      string
	Score             int
	SystemDescription string
}
