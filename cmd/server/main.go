package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/louwian/medoc-marathon/internal/adapters/catalog"
	"github.com/louwian/medoc-marathon/internal/adapters/kml"
	"github.com/louwian/medoc-marathon/internal/adapters/repositories"
	"github.com/louwian/medoc-marathon/internal/api"
	"github.com/louwian/medoc-marathon/internal/config"
	"github.com/louwian/medoc-marathon/internal/domain"
	"github.com/louwian/medoc-marathon/internal/platform/db"
	"github.com/louwian/medoc-marathon/internal/ports"
	"github.com/louwian/medoc-marathon/internal/spatial"
)

// store is the combined persistence surface both backends satisfy.
type store interface {
	ports.CourseSource
	ports.StopRepository
	InitSchema() error
	SeedCourse([]domain.CoursePoint) error
	SeedStops([]domain.Stop) error
}

// main is the application composition root.
// It wires a concrete store (Postgres or SQLite) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.LoadFile(config.Get("PLANNER_CONFIG", "config/planner.yaml"))
	if err != nil {
		log.Fatal(err)
	}

	port := config.Get("PORT", firstNonEmpty(cfg.Port, "8080"))
	dbPath := config.Get("DB_PATH", firstNonEmpty(cfg.DBPath, "data/planner.db"))
	coursePath := config.Get("COURSE_PATH", cfg.CoursePath)
	stopsPath := config.Get("STOPS_PATH", cfg.StopsPath)

	defaults, err := cfg.Params()
	if err != nil {
		log.Fatal(err)
	}

	st, closeFn, err := openStore(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFn()

	// Seed from the raw export files on startup for local runs.
	if coursePath != "" && stopsPath != "" {
		if err := initAndSeed(st, coursePath, stopsPath); err != nil {
			log.Fatal(err)
		}
	}

	ctx := context.Background()
	course, err := st.LoadCourse(ctx)
	if err != nil {
		log.Fatal(err)
	}
	stops, err := st.ListStops(ctx)
	if err != nil {
		log.Fatal(err)
	}

	located := spatial.LocateStops(course, stops)
	cat, err := domain.NewCatalog(located, course.TotalKm())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Catalog loaded stops=%d course_km=%.1f", cat.Len(), course.TotalKm())

	router := api.NewRouter(course, cat, defaults)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openStore picks Postgres when DATABASE_URL is set, otherwise local SQLite.
func openStore(dbPath string) (store, func(), error) {
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		conn, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewPostgresStore(conn), func() { conn.Close() }, nil
	}

	conn, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewSqliteStore(conn), func() { conn.Close() }, nil
}

func initAndSeed(st store, coursePath, stopsPath string) error {
	if err := st.InitSchema(); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	doc, err := kml.ParseFile(coursePath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	course, err := doc.Course()
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	if err := st.SeedCourse(course.Points()); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	stops, err := catalog.ParseFile(stopsPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	if err := st.SeedStops(stops); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
