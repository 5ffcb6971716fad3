package domain

import "math"

// ResolutionOutcome tags which tier of the distance-resolution chain
// produced a result.
type ResolutionOutcome int

const (
	// OutcomeRouted: road distance returned by the routing service.
	OutcomeRouted ResolutionOutcome = iota
	// OutcomeApproximated: great-circle distance scaled by a road factor.
	OutcomeApproximated
	// OutcomeTableMatch: value from the bundled city-pair table.
	OutcomeTableMatch
)

func (o ResolutionOutcome) String() string {
	switch o {
	case OutcomeRouted:
		return "routed"
	case OutcomeApproximated:
		return "approximated"
	case OutcomeTableMatch:
		return "table"
	}
	return "unknown"
}

// ResolvedDistance is the output of a successful distance resolution.
// SurchargedKm is always a non-negative multiple of the display granularity.
type ResolvedDistance struct {
	RawKm        float64
	SurchargedKm float64
	Outcome      ResolutionOutcome
}

// Display distances are rounded to this granularity.
const KmGranularity = 5.0

// RoundToMultiple rounds v to the nearest multiple of m, half away from
// zero. Every place that finalizes a distance goes through this function so
// the rounding policy lives in exactly one spot.
func RoundToMultiple(v, m float64) float64 {
	return math.Round(v/m) * m
}

// ApplySurcharge uplifts a raw distance by the given percentage and rounds
// the result to the display granularity.
func ApplySurcharge(rawKm, surchargePercent float64) float64 {
	return RoundToMultiple(rawKm*(1+surchargePercent/100), KmGranularity)
}
