package ports

import (
	"context"

	"travel-order-service/internal/domain"
)

// Contract for the external place-lookup and routing service.
//
// The service is treated as unreliable: callers advance to a fallback
// strategy on any error or empty result, and implementations must never
// panic on malformed responses.
type GeoLookupClient interface {
	// Geocode returns the best single municipal-level match for the query,
	// or ok=false when nothing matched.
	Geocode(ctx context.Context, query string) (coords domain.Coordinates, ok bool, err error)

	// Route returns the routed road distance between two points in meters,
	// or ok=false when no usable route exists.
	Route(ctx context.Context, from, to domain.Coordinates) (meters float64, ok bool, err error)
}
