package dto

type CaseStudyOutput struct {
	ID                string
	Title             string
	Company           string
	Description       string
	LongDescription   string
	RiskCategory      string
	Score             int
	SystemDescription string
}
