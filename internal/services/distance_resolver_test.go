package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"travel-order-service/internal/adapters/distance"
	"travel-order-service/internal/adapters/geo"
	"travel-order-service/internal/domain"
)

var (
	brnoCoords    = domain.Coordinates{Lon: 16.6068, Lat: 49.1951}
	ostravaCoords = domain.Coordinates{Lon: 18.2625, Lat: 49.8209}
)

func TestResolveRoutedTier(t *testing.T) {
	mock := &geo.MockGeoClient{
		Coords: map[string]domain.Coordinates{
			"Brno":    brnoCoords,
			"Ostrava": ostravaCoords,
		},
		Routes: []geo.MockRoute{
			{From: brnoCoords, To: ostravaCoords, Meters: 171500},
		},
	}
	r := NewDistanceResolver(mock, distance.NewStaticTable())

	got, err := r.Resolve(context.Background(), "Brno", "Ostrava", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Outcome != domain.OutcomeRouted {
		t.Fatalf("outcome = %v, want routed", got.Outcome)
	}
	if got.RawKm != 172 {
		t.Fatalf("rawKm = %v, want 172", got.RawKm)
	}
	if got.SurchargedKm != 170 {
		t.Fatalf("surchargedKm = %v, want 170", got.SurchargedKm)
	}
}

func TestResolveFallsBackToHaversine(t *testing.T) {
	// Endpoints 100 km apart on the great circle: one degree of latitude is
	// ~111.19 km, so 0.89932 degrees is ~100.0 km.
	a := domain.Coordinates{Lon: 0, Lat: 0}
	b := domain.Coordinates{Lon: 0, Lat: 0.89932}

	mock := &geo.MockGeoClient{
		Coords: map[string]domain.Coordinates{
			"A": a,
			"B": b,
		},
		RouteErr: errors.New("routing unavailable"),
	}
	r := NewDistanceResolver(mock, distance.NewStaticTable())

	got, err := r.Resolve(context.Background(), "A", "B", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Outcome != domain.OutcomeApproximated {
		t.Fatalf("outcome = %v, want approximated", got.Outcome)
	}
	if got.RawKm != 130 {
		t.Fatalf("rawKm = %v, want round(100*1.3) = 130", got.RawKm)
	}
	if got.SurchargedKm != 145 {
		t.Fatalf("surchargedKm = %v, want round(130*1.10/5)*5 = 145", got.SurchargedKm)
	}
}

func TestResolveApproximationIsSymmetric(t *testing.T) {
	mock := &geo.MockGeoClient{
		Coords: map[string]domain.Coordinates{
			"Brno":    brnoCoords,
			"Ostrava": ostravaCoords,
		},
		// No routes scripted: force the geometric tier.
	}
	r := NewDistanceResolver(mock, nil)

	ab, err := r.Resolve(context.Background(), "Brno", "Ostrava", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := r.Resolve(context.Background(), "Ostrava", "Brno", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ab.RawKm != ba.RawKm {
		t.Fatalf("geometric tier not symmetric: %v vs %v", ab.RawKm, ba.RawKm)
	}
}

func TestResolveFallsBackToTable(t *testing.T) {
	mock := &geo.MockGeoClient{
		GeocodeErr: errors.New("service down"),
	}
	r := NewDistanceResolver(mock, distance.NewStaticTable())

	got, err := r.Resolve(context.Background(), "Brno", "Ostrava", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Outcome != domain.OutcomeTableMatch {
		t.Fatalf("outcome = %v, want table", got.Outcome)
	}
	if got.RawKm != 170 || got.SurchargedKm != 170 {
		t.Fatalf("raw/surcharged = %v/%v, want 170/170", got.RawKm, got.SurchargedKm)
	}
}

func TestResolveExhaustionYieldsNotFound(t *testing.T) {
	mock := &geo.MockGeoClient{}
	r := NewDistanceResolver(mock, distance.NewStaticTable())

	_, err := r.Resolve(context.Background(), "Humpolec", "Atlantis", 0)
	if !errors.Is(err, ErrDistanceNotFound) {
		t.Fatalf("err = %v, want ErrDistanceNotFound", err)
	}

	// Empty endpoints never reach the lookup service.
	_, err = r.Resolve(context.Background(), "", "Brno", 0)
	if !errors.Is(err, ErrDistanceNotFound) {
		t.Fatalf("err = %v, want ErrDistanceNotFound", err)
	}
	if mock.GeocodeCalls() != 2 {
		t.Fatalf("geocode calls = %d, want 2", mock.GeocodeCalls())
	}
}

func TestResolveIgnoresUnusableRouteLengths(t *testing.T) {
	tests := []struct {
		name   string
		meters float64
	}{
		{"zero", 0},
		{"negative", -300},
		{"infinite", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &geo.MockGeoClient{
				Coords: map[string]domain.Coordinates{
					"Brno":    brnoCoords,
					"Ostrava": ostravaCoords,
				},
				Routes: []geo.MockRoute{
					{From: brnoCoords, To: ostravaCoords, Meters: tt.meters},
				},
			}
			r := NewDistanceResolver(mock, nil)

			got, err := r.Resolve(context.Background(), "Brno", "Ostrava", 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Outcome != domain.OutcomeApproximated {
				t.Fatalf("outcome = %v, want approximated fallback", got.Outcome)
			}
		})
	}
}

func TestResolveSurchargeAlwaysMultipleOfFive(t *testing.T) {
	mock := &geo.MockGeoClient{
		Coords: map[string]domain.Coordinates{
			"Brno":    brnoCoords,
			"Ostrava": ostravaCoords,
		},
		Routes: []geo.MockRoute{
			{From: brnoCoords, To: ostravaCoords, Meters: 171500},
		},
	}
	r := NewDistanceResolver(mock, nil)

	for _, pct := range []float64{0, 3, 7.5, 10, 12.5, 25, 100} {
		got, err := r.Resolve(context.Background(), "Brno", "Ostrava", pct)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.SurchargedKm < 0 || math.Mod(got.SurchargedKm, 5) != 0 {
			t.Fatalf("surcharge %v%%: %v is not a non-negative multiple of 5", pct, got.SurchargedKm)
		}
	}
}
