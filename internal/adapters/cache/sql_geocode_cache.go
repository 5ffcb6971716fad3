package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"travel-order-service/internal/domain"
	"travel-order-service/internal/platform/obs"
)

// SQLGeocodeCache is the Postgres flavor of the geocode cache, for
// deployments where the cache is shared between instances.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Fetch cached coordinates for the given place.
func (s *SQLGeocodeCache) Get(ctx context.Context, place string) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}

	place = strings.TrimSpace(place)
	if place == "" {
		return domain.Coordinates{}, false, nil
	}

	q := `
	SELECT lon, lat
	FROM geocode_cache
	WHERE place = $1;
	`

	var lon, lat float64
	err = s.DB.QueryRowContext(ctx, q, place).Scan(&lon, &lat)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lon: lon, Lat: lat}, true, nil
}

// Store a place -> coordinate mapping in the cache.
func (s *SQLGeocodeCache) Put(ctx context.Context, place string, c domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	place = strings.TrimSpace(place)
	if place == "" {
		return errors.New("insert geocode cache: empty place key")
	}

	q := `
	INSERT INTO geocode_cache (place, lon, lat)
	VALUES ($1, $2, $3)
	ON CONFLICT (place) DO UPDATE
	SET lon = EXCLUDED.lon,
		lat = EXCLUDED.lat;
	`

	if _, err := s.DB.ExecContext(ctx, q, place, c.Lon, c.Lat); err != nil {
		return fmt.Errorf("insert geocode cache place=%q: %w", place, err)
	}

	return nil
}
