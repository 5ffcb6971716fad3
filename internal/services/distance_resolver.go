package services

import (
	"context"
	"errors"
	"log"
	"math"

	"travel-order-service/internal/domain"
	"travel-order-service/internal/ports"
)

// ErrDistanceNotFound is returned when every resolution tier is exhausted.
// The caller must fall back to manual distance entry.
var ErrDistanceNotFound = errors.New("distance not found")

// Straight-line distances underestimate road routes; scale by an empirical
// road factor before rounding.
const RoadFactor = 1.3

// DistanceResolver turns a pair of place names into a road distance using a
// tiered strategy: routed distance, then great-circle approximation, then
// the bundled city-pair table.
//
// Failures inside a tier are swallowed and advance the chain; only total
// exhaustion surfaces as ErrDistanceNotFound. The resolver keeps no mutable
// state, so concurrent resolutions for different legs need no locking.
type DistanceResolver struct {
	Geo   ports.GeoLookupClient
	Table ports.DistanceTable
}

func NewDistanceResolver(geo ports.GeoLookupClient, table ports.DistanceTable) *DistanceResolver {
	return &DistanceResolver{Geo: geo, Table: table}
}

// Resolve runs the tier chain for one leg and applies the surcharge and
// rounding policy to whatever raw distance a tier produced.
func (r *DistanceResolver) Resolve(ctx context.Context, from, to string, surchargePercent float64) (domain.ResolvedDistance, error) {
	if from == "" || to == "" {
		return domain.ResolvedDistance{}, ErrDistanceNotFound
	}

	rawKm, outcome, ok := r.rawDistance(ctx, from, to)
	if !ok {
		return domain.ResolvedDistance{}, ErrDistanceNotFound
	}

	return domain.ResolvedDistance{
		RawKm:        rawKm,
		SurchargedKm: domain.ApplySurcharge(rawKm, surchargePercent),
		Outcome:      outcome,
	}, nil
}

func (r *DistanceResolver) rawDistance(ctx context.Context, from, to string) (float64, domain.ResolutionOutcome, bool) {
	fromCoords, fromOK := r.geocode(ctx, from)
	toCoords, toOK := r.geocode(ctx, to)

	if fromOK && toOK {
		// Tier 1: routed road distance.
		if meters, ok := r.route(ctx, fromCoords, toCoords); ok {
			return math.Round(meters / 1000), domain.OutcomeRouted, true
		}

		// Tier 2: great-circle approximation scaled by the road factor.
		straight := domain.HaversineKm(fromCoords, toCoords)
		return math.Round(straight * RoadFactor), domain.OutcomeApproximated, true
	}

	// Tier 3: bundled table of known city pairs.
	if r.Table != nil {
		if km, ok := r.Table.Lookup(from, to); ok {
			return km, domain.OutcomeTableMatch, true
		}
	}

	return 0, 0, false
}

func (r *DistanceResolver) geocode(ctx context.Context, query string) (domain.Coordinates, bool) {
	coords, ok, err := r.Geo.Geocode(ctx, query)
	if err != nil {
		log.Printf("resolver: geocode failed query=%q err=%v", query, err)
		return domain.Coordinates{}, false
	}
	return coords, ok
}

func (r *DistanceResolver) route(ctx context.Context, from, to domain.Coordinates) (float64, bool) {
	meters, ok, err := r.Geo.Route(ctx, from, to)
	if err != nil {
		log.Printf("resolver: routing failed err=%v", err)
		return 0, false
	}
	if !ok || meters <= 0 || math.IsInf(meters, 0) || math.IsNaN(meters) {
		return 0, false
	}
	return meters, true
}
