package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"travel-order-service/internal/domain"
)

// Redis flavor of the geocode cache. Entries expire so that stale
// geocoding does not outlive upstream data changes forever.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

const redisGeocodeTTL = 30 * 24 * time.Hour

func NewRedisGeocodeCache(client *redis.Client) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client, ttl: redisGeocodeTTL}
}

func redisGeocodeKey(place string) string {
	return "geocode:" + place
}

// Fetch cached coordinates for the given place.
func (r *RedisGeocodeCache) Get(ctx context.Context, place string) (domain.Coordinates, bool, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return domain.Coordinates{}, false, nil
	}

	raw, err := r.client.Get(ctx, redisGeocodeKey(place)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: malformed entry %q", raw)
	}

	lon, errLon := strconv.ParseFloat(parts[0], 64)
	lat, errLat := strconv.ParseFloat(parts[1], 64)
	if errLon != nil || errLat != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: malformed entry %q", raw)
	}

	return domain.Coordinates{Lon: lon, Lat: lat}, true, nil
}

// Store a place -> coordinate mapping in the cache.
func (r *RedisGeocodeCache) Put(ctx context.Context, place string, c domain.Coordinates) error {
	place = strings.TrimSpace(place)
	if place == "" {
		return errors.New("insert geocode cache: empty place key")
	}

	val := strconv.FormatFloat(c.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lat, 'f', -1, 64)
	if err := r.client.Set(ctx, redisGeocodeKey(place), val, r.ttl).Err(); err != nil {
		return fmt.Errorf("insert geocode cache place=%q: %w", place, err)
	}

	return nil
}
