package handlers

import (
	"net/http"
	"time"

	"travel-order-service/internal/api/dto"
	"travel-order-service/internal/services"
)

type AllowanceHandler struct {
	Rates services.AllowanceRates
}

// Suggest computes the per-diem bracket for a trip duration. The result is
// advisory; the client decides whether to take it over a manual amount.
func (h *AllowanceHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.AllowanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	start := parseTimestamp(req.Start)
	end := parseTimestamp(req.End)

	suggestion, ok := services.SuggestMealAllowance(start, end, h.Rates)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "start and end are required")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.AllowanceResponse{
		Amount:  suggestion.Amount,
		Hours:   suggestion.Hours,
		Bracket: suggestion.Bracket,
	})
}

// parseTimestamp accepts the form's datetime-local format and RFC 3339.
// Anything else maps to the zero time, which the advisory treats as missing.
func parseTimestamp(s string) time.Time {
	if t, err := time.Parse("2006-01-02T15:04", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
