package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed cache for routed road distances between two coordinate
// pairs. Keys are formatted coordinate strings produced by the geo client.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

// Fetch the cached routed distance in meters for one origin/destination pair.
func (s *SqliteRouteCache) Get(ctx context.Context, origin, destination string) (float64, bool, error) {
	if s.DB == nil {
		return 0, false, errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return 0, false, nil
	}

	q := `
	SELECT meters
	FROM route_cache
	WHERE origin = ?
		AND destination = ?;
	`

	var meters float64
	err := s.DB.QueryRowContext(ctx, q, origin, destination).Scan(&meters)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	return meters, true, nil
}

// Store one routed distance result.
func (s *SqliteRouteCache) Put(ctx context.Context, origin, destination string, meters float64) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return errors.New("insert route cache: empty pair key")
	}

	q := `
	INSERT OR REPLACE INTO route_cache (
		origin,
		destination,
		meters
	)
	VALUES (?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, meters); err != nil {
		return fmt.Errorf("insert route cache pair=%q->%q: %w", origin, destination, err)
	}

	return nil
}
