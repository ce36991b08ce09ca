package out

import (
	"fmt"

	"rsc.io/pdf"

	reportout "aiact/internal/modules/report/port/out"
)

type PDFInspector struct{}

func NewPDFInspector() reportout.Inspector {
	return PDFInspector{}
}

func (PDFInspector) PageCount(path string) (int, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}
	return doc.NumPage(), nil
}
