package dto

type TotalsResponse struct {
	TotalKm    float64 `json:"total_km"`
	TotalFare  float64 `json:"total_fare"`
	GrandTotal float64 `json:"grand_total"`
}

type AllowanceRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AllowanceResponse struct {
	Amount  float64 `json:"amount"`
	Hours   float64 `json:"hours"`
	Bracket string  `json:"bracket"`
}

// ProblemsResponse lists validation failures that blocked an export.
type ProblemsResponse struct {
	Problems []string `json:"problems"`
}
