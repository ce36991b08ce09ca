package dto

type SubmitInput struct {
	Description string
}

type ResultOutput struct {
	RiskCategory    string
	RiskScore       int
	RiskFactors     []string
	Articles        []string
	Recommendations []string
	Explanation     string
}

type SubmitOutput struct {
	ReportID    string
	Description string
	Result      ResultOutput
	DownloadURL string
}
