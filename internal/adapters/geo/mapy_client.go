package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"travel-order-service/internal/domain"
	"travel-order-service/internal/platform/obs"
)

// GeocodeCache stores place -> coordinate lookups between runs.
// All flavors (SQLite, Postgres, Redis) satisfy this interface.
type GeocodeCache interface {
	Get(ctx context.Context, place string) (domain.Coordinates, bool, error)
	Put(ctx context.Context, place string, c domain.Coordinates) error
}

// RouteCache stores routed distances keyed by formatted coordinate pairs.
type RouteCache interface {
	Get(ctx context.Context, origin, destination string) (meters float64, ok bool, err error)
	Put(ctx context.Context, origin, destination string, meters float64) error
}

// MapyClient implements GeoLookupClient against the Mapy.cz REST API.
//
// It coordinates:
//   - Place-name normalization
//   - Persistent geocode and route caching
//   - External API calls with retry/backoff
//
// The client is safe for concurrent use. Caches are advisory: a cache
// failure degrades to an upstream call, never to a lookup failure.
type MapyClient struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	routeType    string
	geocodeCache GeocodeCache
	routeCache   RouteCache
}

func NewMapyClient(apiKey string, geocodeCache GeocodeCache, routeCache RouteCache) (*MapyClient, error) {
	if apiKey == "" {
		return nil, errors.New("mapy api key is empty")
	}

	client := &MapyClient{
		session:      &http.Client{Timeout: 10 * time.Second},
		apiKey:       apiKey,
		baseURL:      "https://api.mapy.cz",
		routeType:    "car_fast",
		geocodeCache: geocodeCache,
		routeCache:   routeCache,
	}

	return client, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (c *MapyClient) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type suggestResponse struct {
	Items []struct {
		Position struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"position"`
	} `json:"items"`
}

// Geocode resolves a place name to the best single municipal-level match.
func (c *MapyClient) Geocode(ctx context.Context, query string) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "geo.Geocode")(&err)

	norm := c.normalize(query)
	if norm == "" {
		return domain.Coordinates{}, false, errors.New("geocode: query must be non-empty")
	}

	if c.geocodeCache != nil {
		coords, ok, cacheErr := c.geocodeCache.Get(ctx, norm)
		if cacheErr != nil {
			log.Printf("geocode cache read failed: %v", cacheErr)
		} else if ok {
			return coords, true, nil
		}
	}

	endpoint := c.baseURL + "/v1/suggest"
	params := map[string]string{
		"lang":  "cs",
		"limit": "1",
		"type":  "regional.municipality",
		"query": norm,
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, endpoint, params)
	})
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("geocode %q: %w", norm, err)
	}
	defer resp.Body.Close()

	var decoded suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("geocode %q: decode response: %w", norm, err)
	}

	if len(decoded.Items) == 0 {
		return domain.Coordinates{}, false, nil
	}

	coords := domain.Coordinates{
		Lon: decoded.Items[0].Position.Lon,
		Lat: decoded.Items[0].Position.Lat,
	}

	if c.geocodeCache != nil {
		if err := c.geocodeCache.Put(ctx, norm, coords); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return coords, true, nil
}

// routeResponse mirrors the routing payload. Length fields are pointers so
// that an absent value is distinguishable from zero.
type routeResponse struct {
	Length *float64 `json:"length"`
	Routes []struct {
		Length *float64 `json:"length"`
	} `json:"routes"`
	Result *struct {
		Length *float64 `json:"length"`
	} `json:"result"`
}

func coordKey(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Lon, 'f', 6, 64) + "," + strconv.FormatFloat(c.Lat, 'f', 6, 64)
}

// Route requests a road route between two points and returns its length in
// meters. ok=false means the service answered but produced no usable length.
func (c *MapyClient) Route(ctx context.Context, from, to domain.Coordinates) (_ float64, _ bool, err error) {
	defer obs.Time(ctx, "geo.Route")(&err)

	origin, destination := coordKey(from), coordKey(to)

	if c.routeCache != nil {
		meters, ok, cacheErr := c.routeCache.Get(ctx, origin, destination)
		if cacheErr != nil {
			log.Printf("route cache read failed: %v", cacheErr)
		} else if ok {
			return meters, true, nil
		}
	}

	endpoint := c.baseURL + "/v1/routing/route"
	params := map[string]string{
		"start":     origin,
		"end":       destination,
		"routeType": c.routeType,
		"lang":      "cs",
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, endpoint, params)
	})
	if err != nil {
		return 0, false, fmt.Errorf("route %s -> %s: %w", origin, destination, err)
	}
	defer resp.Body.Close()

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0, false, fmt.Errorf("route %s -> %s: decode response: %w", origin, destination, err)
	}

	meters, ok := routeLengthMeters(raw)
	if !ok {
		return 0, false, nil
	}

	if c.routeCache != nil {
		if err := c.routeCache.Put(ctx, origin, destination, meters); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return meters, true, nil
}

// routeLengthMeters extracts a finite positive path length from a routing
// payload. A top-level JSON array is rejected outright: its length would be
// an element count, not a distance in meters.
func routeLengthMeters(raw json.RawMessage) (float64, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] == '[' {
		return 0, false
	}

	var decoded routeResponse
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return 0, false
	}

	candidates := []*float64{decoded.Length}
	if len(decoded.Routes) > 0 {
		candidates = append(candidates, decoded.Routes[0].Length)
	}
	if decoded.Result != nil {
		candidates = append(candidates, decoded.Result.Length)
	}

	for _, m := range candidates {
		if m != nil && *m > 0 {
			return *m, true
		}
	}

	return 0, false
}
