package out

import (
	_ "embed"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"aiact/internal/modules/catalog/domain"
	catalogout "aiact/internal/modules/catalog/port/out"
)

//go:embed case_studies.yaml
var caseStudiesYAML []byte

type caseStudyRecord struct {
	ID                string `yaml:"id"`
	Title             string `yaml:"title"`
	Company           string `yaml:"company"`
	Description       string `yaml:"description"`
	LongDescription   string `yaml:"long_description"`
	RiskCategory      string `yaml:"risk_category"`
	Score             int    `yaml:"score"`
	SystemDescription string `yaml:"system_description"`
}

// EmbeddedCatalog serves the bundled case studies. The data ships inside the
// binary; there is no mutation and no network access.
type EmbeddedCatalog struct{}

func NewEmbeddedCatalog() catalogout.CatalogSource {
	return EmbeddedCatalog{}
}

func (EmbeddedCatalog) Load(_ context.Context) ([]domain.CaseStudy, error) {
	var records []caseStudyRecord
	if err := yaml.Unmarshal(caseStudiesYAML, &records); err != nil {
		return nil, fmt.Errorf("decode case studies: %w", err)
	}
	studies := make([]domain.CaseStudy, len(records))
	for i, r := range records {
		studies[i] = domain.CaseStudy{
			ID:                r.ID,
			Title:             r.Title,
			Company:           r.Company,
			Description:       r.Description,
			LongDescription:   r.LongDescription,
			RiskCategory:      r.RiskCategory,
			Score:             r.Score,
			SystemDescription: r.SystemDescription,
		}
	}
	return studies, nil
}
