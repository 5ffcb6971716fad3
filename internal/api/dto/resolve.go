package dto

type ResolveRequest struct {
	From             string `json:"from"`
	To               string `json:"to"`
	SurchargePercent Amount `json:"surcharge_percent"`
}

type ResolveResponse struct {
	RawKm        float64 `json:"raw_km"`
	SurchargedKm float64 `json:"surcharged_km"`
	Outcome      string  `json:"outcome"`
}

// LegResolutionResponse reports one leg's outcome of a whole-record
// resolution. Resolved is nil for legs whose resolution tiers were
// exhausted.
type LegResolutionResponse struct {
	LegID    int              `json:"leg_id"`
	Resolved *ResolveResponse `json:"resolved,omitempty"`
	Error    string           `json:"error,omitempty"`
}

type ResolveRecordResponse struct {
	Resolutions []LegResolutionResponse `json:"resolutions"`
	Legs        []TripLegResponse       `json:"legs"`
}

// TripLegResponse echoes a leg back with its distances after resolution.
type TripLegResponse struct {
	ID    int     `json:"id"`
	From  string  `json:"from"`
	To    string  `json:"to"`
	Km    float64 `json:"km"`
	KmRaw float64 `json:"km_raw"`
}
