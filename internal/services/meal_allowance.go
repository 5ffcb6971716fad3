package services

import "time"

// AllowanceRates holds the domestic per-diem amounts per duration bracket.
// The defaults follow the 2025 ministry decree; they are configuration, not
// behavior, so future-year updates only touch this value.
type AllowanceRates struct {
	From5To12  float64
	From12To18 float64
	Over18     float64
}

var DefaultAllowanceRates = AllowanceRates{
	From5To12:  166,
	From12To18: 256,
	Over18:     398,
}

// AllowanceSuggestion is the advisory result: a bracket, its amount, and
// the trip duration that selected it. It is a hint only; the advisory never
// mutates the trip record.
type AllowanceSuggestion struct {
	Amount  float64
	Hours   float64
	Bracket string
}

// SuggestMealAllowance computes the subsistence-allowance bracket for a trip
// duration. ok=false when either timestamp is missing (zero), meaning there
// is nothing to suggest.
//
// A negative duration is passed through, not guarded: it falls into the
// under-5-hours bracket with a negative hour count.
func SuggestMealAllowance(start, end time.Time, rates AllowanceRates) (AllowanceSuggestion, bool) {
	if start.IsZero() || end.IsZero() {
		return AllowanceSuggestion{}, false
	}

	hours := end.Sub(start).Hours()

	switch {
	case hours >= 18:
		return AllowanceSuggestion{Amount: rates.Over18, Hours: hours, Bracket: "nad 18 h"}, true
	case hours >= 12:
		return AllowanceSuggestion{Amount: rates.From12To18, Hours: hours, Bracket: "12–18 h"}, true
	case hours >= 5:
		return AllowanceSuggestion{Amount: rates.From5To12, Hours: hours, Bracket: "5–12 h"}, true
	}
	return AllowanceSuggestion{Amount: 0, Hours: hours, Bracket: "pod 5 h"}, true
}
