package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"travel-order-service/internal/adapters/cache"
	"travel-order-service/internal/adapters/distance"
	"travel-order-service/internal/adapters/geo"
	"travel-order-service/internal/adapters/pdf"
	"travel-order-service/internal/api"
	"travel-order-service/internal/config"
	"travel-order-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Mapy.cz, gofpdf) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/cache.db")
	port := config.Get("PORT", "8080")

	mapyKey := os.Getenv("MAPY_API_KEY")
	if strings.TrimSpace(mapyKey) == "" {
		log.Fatal("MAPY_API_KEY is required")
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := cache.InitSchema(db); err != nil {
		log.Fatal(err)
	}

	// The geocode cache can live in Redis when an address is configured;
	// the route cache always stays in the local SQLite file.
	var geocodeCache geo.GeocodeCache = cache.NewSqliteGeocodeCache(db)
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		geocodeCache = cache.NewRedisGeocodeCache(client)
		log.Printf("Using redis geocode cache addr=%s", addr)
	}
	routeCache := cache.NewSqliteRouteCache(db)

	geoClient, err := geo.NewMapyClient(mapyKey, geocodeCache, routeCache)
	if err != nil {
		log.Fatal(err)
	}

	resolver := services.NewDistanceResolver(geoClient, distance.NewStaticTable())
	exporter := services.NewReportExporter(pdf.NewFPDFRenderer())
	router := api.NewRouter(resolver, exporter, services.DefaultAllowanceRates)

	// Write timeout covers cold-cache exports that hit the external
	// geocoding API first.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
