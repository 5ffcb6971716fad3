package services

import (
	"strings"

	"travel-order-service/internal/domain"
)

// ValidationError carries every problem found before an export, so the user
// can fix them all in one pass. It aborts the export; the record is left
// untouched for retry.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid trip record: " + strings.Join(e.Problems, "; ")
}

// ValidateForExport checks the fields a finished travel order must carry.
// Problems are collected, not short-circuited. Composition assumes a
// validated record and does not re-check.
func ValidateForExport(r *domain.TripRecord) []string {
	var problems []string

	if strings.TrimSpace(r.FullName) == "" {
		problems = append(problems, "Vyplňte jméno.")
	}
	if strings.TrimSpace(r.TripPurpose) == "" {
		problems = append(problems, "Vyplňte účel cesty.")
	}
	if strings.TrimSpace(r.TripDestination) == "" {
		problems = append(problems, "Vyplňte místo jednání.")
	}
	if len(r.Legs) == 0 {
		problems = append(problems, "Přidejte alespoň jeden úsek cesty.")
	}

	hasKm := false
	for i := range r.Legs {
		if r.Legs[i].Km > 0 {
			hasKm = true
			break
		}
	}
	if !hasKm {
		problems = append(problems, "Žádný úsek nemá vyplněné kilometry.")
	}

	return problems
}
