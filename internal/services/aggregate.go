package services

import "travel-order-service/internal/domain"

// AggregateTotals folds a trip record's legs and cost fields into Totals.
//
// The fold is pure and runs from scratch on every call; there is no cached
// intermediate state to keep consistent. Legs are visited in record order,
// each exactly once. Zero-valued configuration fields simply contribute
// nothing, so the fold is total even for partially filled records.
func AggregateTotals(r *domain.TripRecord) domain.Totals {
	var totalKm, totalFare float64

	for i := range r.Legs {
		totalKm += r.Legs[i].Km
		totalFare += r.Legs[i].Km * r.RatePerKm
	}

	grandTotal := totalFare + r.MealAllowance + r.Accommodation + r.OtherCosts - r.Advance

	return domain.Totals{
		TotalKm:    totalKm,
		TotalFare:  totalFare,
		GrandTotal: grandTotal,
	}
}
