package dto

type AnalysisOutput struct {
	RiskCategory    string
	RiskScore       int
	RiskFactors     []string
	Articles        []string
	Recommendations []string
	Explanation     string
}

type RecordOutput struct {
	ID          string
	UserID      int
	Description string
	Analysis    AnalysisOutput
	CreatedAt   string
}
