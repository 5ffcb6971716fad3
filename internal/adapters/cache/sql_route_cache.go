package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"travel-order-service/internal/platform/obs"
)

// SQLRouteCache is the Postgres flavor of the routed-distance cache.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// Fetch the cached routed distance in meters for one origin/destination pair.
func (s *SQLRouteCache) Get(ctx context.Context, origin, destination string) (_ float64, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return 0, false, errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return 0, false, nil
	}

	q := `
	SELECT meters
	FROM route_cache
	WHERE origin = $1
		AND destination = $2;
	`

	var meters float64
	err = s.DB.QueryRowContext(ctx, q, origin, destination).Scan(&meters)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	return meters, true, nil
}

// Store one routed distance result.
func (s *SQLRouteCache) Put(ctx context.Context, origin, destination string, meters float64) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return errors.New("insert route cache: empty pair key")
	}

	q := `
	INSERT INTO route_cache (origin, destination, meters)
	VALUES ($1, $2, $3)
	ON CONFLICT (origin, destination) DO UPDATE
	SET meters = EXCLUDED.meters;
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, meters); err != nil {
		return fmt.Errorf("insert route cache pair=%q->%q: %w", origin, destination, err)
	}

	return nil
}
