package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"travel-order-service/internal/api/dto"
	"travel-order-service/internal/domain"
	"travel-order-service/internal/services"
)

type ReportHandler struct {
	Exporter *services.ReportExporter
}

// Totals recomputes the record's aggregates from scratch and returns them.
func (h *ReportHandler) Totals(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	record, ok := decodeRecord(w, r)
	if !ok {
		return
	}

	totals := services.AggregateTotals(record)
	writeJSON(w, r, http.StatusOK, dto.TotalsResponse{
		TotalKm:    totals.TotalKm,
		TotalFare:  totals.TotalFare,
		GrandTotal: totals.GrandTotal,
	})
}

// Export validates the record, renders the report and streams it back as a
// download. Validation failures return every problem at once so the client
// can surface them in one pass.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	record, ok := decodeRecord(w, r)
	if !ok {
		return
	}

	out, name, err := h.Exporter.Export(record)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, r, http.StatusUnprocessableEntity, dto.ProblemsResponse{Problems: verr.Problems})
			return
		}
		log.Printf("export failed: err=%v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		log.Printf("write pdf failed: err=%v", err)
	}
}

func decodeRecord(w http.ResponseWriter, r *http.Request) (*domain.TripRecord, bool) {
	var req dto.TripRecordRequest
	if !decodeJSON(w, r, &req) {
		return nil, false
	}

	variant, err := domain.ParseVariant(req.Variant)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return req.ToDomain(variant), true
}
