package geo

import (
	"context"
	"sync"

	"travel-order-service/internal/domain"
)

// MockRoute is one scripted routing answer for tests.
type MockRoute struct {
	From, To domain.Coordinates
	Meters   float64
}

// MockGeoClient is a scriptable GeoLookupClient for tests. Each tier of the
// resolution chain can be forced independently by leaving maps empty or
// setting the error fields. Call counters are safe to read after concurrent
// whole-record resolutions.
type MockGeoClient struct {
	Coords map[string]domain.Coordinates
	Routes []MockRoute

	GeocodeErr error
	RouteErr   error

	mu           sync.Mutex
	geocodeCalls int
	routeCalls   int
}

func (m *MockGeoClient) Geocode(ctx context.Context, query string) (domain.Coordinates, bool, error) {
	m.mu.Lock()
	m.geocodeCalls++
	m.mu.Unlock()

	if m.GeocodeErr != nil {
		return domain.Coordinates{}, false, m.GeocodeErr
	}
	c, ok := m.Coords[query]
	return c, ok, nil
}

func (m *MockGeoClient) Route(ctx context.Context, from, to domain.Coordinates) (float64, bool, error) {
	m.mu.Lock()
	m.routeCalls++
	m.mu.Unlock()

	if m.RouteErr != nil {
		return 0, false, m.RouteErr
	}
	for _, r := range m.Routes {
		if r.From == from && r.To == to {
			return r.Meters, true, nil
		}
	}
	return 0, false, nil
}

func (m *MockGeoClient) GeocodeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.geocodeCalls
}

func (m *MockGeoClient) RouteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.routeCalls
}
