package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"travel-order-service/internal/api/dto"
	"travel-order-service/internal/services"
)

type ResolveHandler struct {
	Resolver *services.DistanceResolver
}

// Resolve turns a from/to pair into a surcharged road distance. Exhaustion
// of every resolution tier is a 404: the client falls back to manual entry.
func (h *ResolveHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.ResolveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	resolved, err := h.Resolver.Resolve(r.Context(), from, to, req.SurchargePercent.Float())
	if err != nil {
		if errors.Is(err, services.ErrDistanceNotFound) {
			writeError(w, r, http.StatusNotFound, "distance not found")
			return
		}
		log.Printf("resolve failed: from=%q to=%q err=%v", from, to, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ResolveResponse{
		RawKm:        resolved.RawKm,
		SurchargedKm: resolved.SurchargedKm,
		Outcome:      resolved.Outcome.String(),
	})
}

// ResolveRecord resolves all unresolved legs of a posted record at once and
// echoes the legs back with their distances filled in. Per-leg misses come
// back as entries with an error message, not as a failed request.
func (h *ResolveHandler) ResolveRecord(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	record, ok := decodeRecord(w, r)
	if !ok {
		return
	}

	results := h.Resolver.ResolveRecord(r.Context(), record)

	res := dto.ResolveRecordResponse{
		Resolutions: make([]dto.LegResolutionResponse, 0, len(results)),
		Legs:        make([]dto.TripLegResponse, 0, len(record.Legs)),
	}
	for _, result := range results {
		entry := dto.LegResolutionResponse{LegID: result.LegID}
		if result.Err != nil {
			entry.Error = result.Err.Error()
		} else {
			entry.Resolved = &dto.ResolveResponse{
				RawKm:        result.Resolved.RawKm,
				SurchargedKm: result.Resolved.SurchargedKm,
				Outcome:      result.Resolved.Outcome.String(),
			}
		}
		res.Resolutions = append(res.Resolutions, entry)
	}
	for _, leg := range record.Legs {
		res.Legs = append(res.Legs, dto.TripLegResponse{
			ID:    leg.ID,
			From:  leg.From,
			To:    leg.To,
			Km:    leg.Km,
			KmRaw: leg.KmRaw,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
