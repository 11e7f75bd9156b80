package main

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/louwian/medoc-marathon/internal/adapters/catalog"
	"github.com/louwian/medoc-marathon/internal/adapters/kml"
	"github.com/louwian/medoc-marathon/internal/adapters/repositories"
	"github.com/louwian/medoc-marathon/internal/config"
	"github.com/louwian/medoc-marathon/internal/domain"
	"github.com/louwian/medoc-marathon/internal/platform/db"
)

type seeder interface {
	InitSchema() error
	SeedCourse([]domain.CoursePoint) error
	SeedStops([]domain.Stop) error
}

// dbtool initializes the schema and loads the course export and stop sheet
// into whichever store DATABASE_URL selects.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	coursePath := config.Get("COURSE_PATH", "data/course.kmz")
	stopsPath := config.Get("STOPS_PATH", "data/stops.csv")

	st, closeFn, err := openSeeder()
	if err != nil {
		log.Fatal(err)
	}
	defer closeFn()

	log.Println("Initializing database schema...")
	if err := st.InitSchema(); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	doc, err := kml.ParseFile(coursePath)
	if err != nil {
		log.Fatalf("course parse failed: %v", err)
	}
	course, err := doc.Course()
	if err != nil {
		log.Fatalf("course build failed: %v", err)
	}
	log.Printf("Parsed course segments=%d points=%d total_km=%.1f",
		len(doc.Segments), len(course.Points()), course.TotalKm())

	if err := st.SeedCourse(course.Points()); err != nil {
		log.Fatalf("course seeding failed: %v", err)
	}

	stops, err := catalog.ParseFile(stopsPath)
	if err != nil {
		log.Fatalf("stop sheet parse failed: %v", err)
	}
	if err := st.SeedStops(stops); err != nil {
		log.Fatalf("stop seeding failed: %v", err)
	}
	log.Printf("Seeding complete stops=%d", len(stops))
}

func openSeeder() (seeder, func(), error) {
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		conn, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewPostgresStore(conn), func() { conn.Close() }, nil
	}

	conn, err := db.OpenSQLite(config.Get("DB_PATH", "data/planner.db"))
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewSqliteStore(conn), func() { conn.Close() }, nil
}
