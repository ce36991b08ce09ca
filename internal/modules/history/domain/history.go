package domain

import "strings"

// Analysis mirrors the classification attached to a stored report. Records
// already carry it, so revisiting one never re-fetches.
type Analysis struct {
	RiskCategory    string
	RiskScore       int
	RiskFactors     []string
	Articles        []string
	Recommendations []string
	Explanation     string
}

// Record is a past assessment owned by the remote service. The client reads
// it for display and filtering only.
type Record struct {
	ID          string
	UserID      int
	Description string
	Analysis    Analysis
	CreatedAt   string
}

// Filter returns the records whose description or id contains term,
// case-insensitively. An empty term matches everything. Server order is
// preserved; the match runs entirely on the already-fetched set.
func Filter(records []Record, term string) []Record {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return records
	}
	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Description), needle) ||
			strings.Contains(strings.ToLower(r.ID), needle) {
			matched = append(matched, r)
		}
	}
	return matched
}
