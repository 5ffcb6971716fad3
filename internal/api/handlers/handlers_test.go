package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-order-service/internal/adapters/distance"
	"travel-order-service/internal/adapters/geo"
	"travel-order-service/internal/api/dto"
	"travel-order-service/internal/domain"
	"travel-order-service/internal/services"
)

type fakeRenderer struct{}

func (fakeRenderer) Render(doc *domain.Document) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

func newResolveHandler(mock *geo.MockGeoClient) *ResolveHandler {
	return &ResolveHandler{
		Resolver: services.NewDistanceResolver(mock, distance.NewStaticTable()),
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestResolveRouted(t *testing.T) {
	brno := domain.Coordinates{Lon: 16.6068, Lat: 49.1951}
	ostrava := domain.Coordinates{Lon: 18.2625, Lat: 49.8209}
	mock := &geo.MockGeoClient{
		Coords: map[string]domain.Coordinates{"Brno": brno, "Ostrava": ostrava},
		Routes: []geo.MockRoute{{From: brno, To: ostrava, Meters: 171500}},
	}

	rec := postJSON(t, newResolveHandler(mock).Resolve, "/legs/resolve",
		`{"from":"Brno","to":"Ostrava","surcharge_percent":0}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var res dto.ResolveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.RawKm != 172 || res.SurchargedKm != 170 || res.Outcome != "routed" {
		t.Errorf("unexpected response %+v", res)
	}
}

func TestResolveFallsBackToTable(t *testing.T) {
	// No geocoder hits, so only the bundled city-pair table can answer.
	mock := &geo.MockGeoClient{}

	rec := postJSON(t, newResolveHandler(mock).Resolve, "/legs/resolve",
		`{"from":"Brno","to":"Praha"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var res dto.ResolveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.RawKm != 205 || res.Outcome != "table" {
		t.Errorf("unexpected response %+v", res)
	}
}

func TestResolveNotFound(t *testing.T) {
	mock := &geo.MockGeoClient{}

	rec := postJSON(t, newResolveHandler(mock).Resolve, "/legs/resolve",
		`{"from":"Nowhere","to":"Elsewhere"}`)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestResolveRejectsBlankEndpoints(t *testing.T) {
	mock := &geo.MockGeoClient{}

	rec := postJSON(t, newResolveHandler(mock).Resolve, "/legs/resolve",
		`{"from":"  ","to":"Brno"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if mock.GeocodeCalls() != 0 {
		t.Error("geocoder called for a blank endpoint")
	}
}

func TestResolveRecord(t *testing.T) {
	// One leg answers from the bundled table, one misses, one already has a
	// distance and must be left alone.
	mock := &geo.MockGeoClient{}

	body := `{
		"surcharge_percent": 0,
		"legs": [
			{"from":"Brno","to":"Praha"},
			{"from":"Nowhere","to":"Elsewhere"},
			{"from":"Praha","to":"Brno","km":205}
		]
	}`
	rec := postJSON(t, newResolveHandler(mock).ResolveRecord, "/records/resolve", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var res dto.ResolveRecordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}

	if len(res.Resolutions) != 2 {
		t.Fatalf("got %d resolutions, want 2: %+v", len(res.Resolutions), res.Resolutions)
	}
	if res.Resolutions[0].LegID != 1 || res.Resolutions[0].Resolved == nil ||
		res.Resolutions[0].Resolved.Outcome != "table" {
		t.Errorf("unexpected first resolution %+v", res.Resolutions[0])
	}
	if res.Resolutions[1].LegID != 2 || res.Resolutions[1].Error == "" {
		t.Errorf("expected a miss for leg 2, got %+v", res.Resolutions[1])
	}

	if len(res.Legs) != 3 {
		t.Fatalf("got %d legs", len(res.Legs))
	}
	if res.Legs[0].Km != 205 {
		t.Errorf("leg 1 km = %v, want 205", res.Legs[0].Km)
	}
	if res.Legs[1].Km != 0 {
		t.Errorf("missed leg must keep zero km, got %v", res.Legs[1].Km)
	}
	if res.Legs[2].Km != 205 {
		t.Errorf("pre-filled leg changed: %v", res.Legs[2].Km)
	}
}

func TestResolveMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/legs/resolve", nil)
	rec := httptest.NewRecorder()
	newResolveHandler(&geo.MockGeoClient{}).Resolve(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestTotals(t *testing.T) {
	h := &ReportHandler{Exporter: services.NewReportExporter(fakeRenderer{})}

	body := `{
		"rate_per_km": "6",
		"meal_allowance": 256,
		"advance": 1000,
		"legs": [
			{"from":"Brno","to":"Ostrava","km":170},
			{"from":"Ostrava","to":"Brno","km":"170"}
		]
	}`
	rec := postJSON(t, h.Totals, "/reports/totals", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var res dto.TotalsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.TotalKm != 340 || res.TotalFare != 2040 || res.GrandTotal != 1296 {
		t.Errorf("unexpected totals %+v", res)
	}
}

func TestTotalsRejectsUnknownVariant(t *testing.T) {
	h := &ReportHandler{Exporter: services.NewReportExporter(fakeRenderer{})}

	rec := postJSON(t, h.Totals, "/reports/totals", `{"variant":"fancy"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestExportValidRecord(t *testing.T) {
	h := &ReportHandler{Exporter: services.NewReportExporter(fakeRenderer{})}

	body := `{
		"variant": "basic",
		"full_name": "Jan Novak",
		"trip_purpose": "Jednani",
		"trip_destination": "Ostrava",
		"rate_per_km": 6,
		"legs": [{"from":"Brno","to":"Ostrava","km":170}]
	}`
	rec := postJSON(t, h.Export, "/reports/export", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "cestak_basic_Ostrava_") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if rec.Body.String() != "%PDF-fake" {
		t.Errorf("unexpected body %q", rec.Body)
	}
}

func TestExportInvalidRecord(t *testing.T) {
	h := &ReportHandler{Exporter: services.NewReportExporter(fakeRenderer{})}

	rec := postJSON(t, h.Export, "/reports/export", `{}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body %s", rec.Code, rec.Body)
	}

	var res dto.ProblemsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if len(res.Problems) != 5 {
		t.Errorf("got %d problems, want 5: %v", len(res.Problems), res.Problems)
	}
}

func TestAllowanceSuggest(t *testing.T) {
	h := &AllowanceHandler{Rates: services.DefaultAllowanceRates}

	rec := postJSON(t, h.Suggest, "/reports/allowance",
		`{"start":"2026-03-14T06:00","end":"2026-03-14T19:30"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var res dto.AllowanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Amount != 256 || res.Hours != 13.5 || res.Bracket != "12–18 h" {
		t.Errorf("unexpected suggestion %+v", res)
	}
}

func TestAllowanceMissingTimestamps(t *testing.T) {
	h := &AllowanceHandler{Rates: services.DefaultAllowanceRates}

	rec := postJSON(t, h.Suggest, "/reports/allowance", `{"start":"","end":"garbage"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
