package domain

// Totals holds the aggregated cost figures of one trip record.
// Totals are derived data: they are recomputed from the record on every
// read and never persisted on their own.
type Totals struct {
	TotalKm    float64
	TotalFare  float64
	GrandTotal float64
}
