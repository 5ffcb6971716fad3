package services

import (
	"fmt"
	"time"

	"travel-order-service/internal/domain"
	"travel-order-service/internal/ports"
)

// ReportExporter runs the full export pipeline: validate the record,
// aggregate its totals, compose the document and render it.
type ReportExporter struct {
	Renderer ports.DocumentRenderer

	// Now supplies the export timestamp for the artifact name.
	// Defaults to time.Now.
	Now func() time.Time
}

func NewReportExporter(renderer ports.DocumentRenderer) *ReportExporter {
	return &ReportExporter{Renderer: renderer, Now: time.Now}
}

// Export produces the rendered report and its artifact name. A record that
// fails validation returns a *ValidationError and no partial output; the
// record itself is never mutated.
func (e *ReportExporter) Export(r *domain.TripRecord) ([]byte, string, error) {
	if problems := ValidateForExport(r); len(problems) > 0 {
		return nil, "", &ValidationError{Problems: problems}
	}

	totals := AggregateTotals(r)
	doc := ComposeReport(r, totals)

	out, err := e.Renderer.Render(doc)
	if err != nil {
		return nil, "", fmt.Errorf("export report: %w", err)
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return out, ExportFileName(r.Variant, r.TripDestination, now()), nil
}
