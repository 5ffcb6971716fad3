package api

import (
	"net/http"

	"travel-order-service/internal/api/handlers"
	"travel-order-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(resolver *services.DistanceResolver, exporter *services.ReportExporter, rates services.AllowanceRates) http.Handler {
	mux := http.NewServeMux()

	resolveHandler := &handlers.ResolveHandler{Resolver: resolver}
	reportHandler := &handlers.ReportHandler{Exporter: exporter}
	allowanceHandler := &handlers.AllowanceHandler{Rates: rates}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/legs/resolve", resolveHandler.Resolve)
	mux.HandleFunc("/records/resolve", resolveHandler.ResolveRecord)
	mux.HandleFunc("/reports/totals", reportHandler.Totals)
	mux.HandleFunc("/reports/allowance", allowanceHandler.Suggest)
	mux.HandleFunc("/reports/export", reportHandler.Export)

	return loggingMiddleware(mux)
}
