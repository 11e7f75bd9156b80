package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/louwian/medoc-marathon/internal/domain"
)

// SQLite-backed store for the course polyline and stop sheet. Implements
// both the CourseSource and StopRepository ports.
type SqliteStore struct{ DB *sql.DB }

func NewSqliteStore(db *sql.DB) *SqliteStore {
	return &SqliteStore{DB: db}
}

// Initialize the SQLite schema. Safe to run repeatedly.
func (s *SqliteStore) InitSchema() error {
	if s.DB == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCourseQuery := `
	CREATE TABLE IF NOT EXISTS course_points (
		seq INTEGER PRIMARY KEY,
		km REAL NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`

	createStopsQuery := `
	CREATE TABLE IF NOT EXISTS stops (
		seq INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		km REAL NOT NULL,
		rating TEXT NOT NULL,
		price_gbp REAL NOT NULL,
		food TEXT NOT NULL DEFAULT ''
	);
	`

	createStopKmIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_stops_km ON stops(km);
	`

	statements := []string{createCourseQuery, createStopsQuery, createStopKmIndexQuery}
	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}
	return nil
}

// SeedCourse replaces the stored course polyline.
func (s *SqliteStore) SeedCourse(points []domain.CoursePoint) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("seed course: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM course_points;`); err != nil {
		return fmt.Errorf("seed course: clear table: %w", err)
	}

	stmt, err := tx.Prepare(`
	INSERT INTO course_points (seq, km, lat, lon)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed course: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range points {
		if _, err := stmt.Exec(i, p.Km, p.Coords.Lat, p.Coords.Lon); err != nil {
			return fmt.Errorf("seed course: insert point #%d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed course: commit tx: %w", err)
	}
	return nil
}

// SeedStops replaces the stored stop sheet, keeping sheet order in seq.
func (s *SqliteStore) SeedStops(stops []domain.Stop) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("seed stops: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM stops;`); err != nil {
		return fmt.Errorf("seed stops: clear table: %w", err)
	}

	stmt, err := tx.Prepare(`
	INSERT INTO stops (seq, name, km, rating, price_gbp, food)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed stops: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, st := range stops {
		if _, err := stmt.Exec(i, st.Name, st.Km, st.Rating.String(), st.PriceGBP, st.Food); err != nil {
			return fmt.Errorf("seed stops: insert %q: %w", st.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stops: commit tx: %w", err)
	}
	return nil
}

// LoadCourse returns the stored polyline as a validated course.
func (s *SqliteStore) LoadCourse(ctx context.Context) (*domain.Course, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite store: DB is nil")
	}

	query := `
	SELECT km, lat, lon
	FROM course_points
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load course: query course_points: %w", err)
	}
	defer rows.Close()

	points := make([]domain.CoursePoint, 0, 1024)
	for rows.Next() {
		var p domain.CoursePoint
		if err := rows.Scan(&p.Km, &p.Coords.Lat, &p.Coords.Lon); err != nil {
			return nil, fmt.Errorf("load course: scan row: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load course: row iteration: %w", err)
	}

	course, err := domain.NewCourse(points)
	if err != nil {
		return nil, fmt.Errorf("load course: %w", err)
	}
	return course, nil
}

// ListStops returns all stops in sheet order.
func (s *SqliteStore) ListStops(ctx context.Context) ([]domain.Stop, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite store: DB is nil")
	}

	query := `
	SELECT name, km, rating, price_gbp, food
	FROM stops
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stops: query stops table: %w", err)
	}
	defer rows.Close()

	return scanStops(rows)
}

func scanStops(rows *sql.Rows) ([]domain.Stop, error) {
	stops := make([]domain.Stop, 0, 32)
	for rows.Next() {
		var st domain.Stop
		var rating string
		if err := rows.Scan(&st.Name, &st.Km, &rating, &st.PriceGBP, &st.Food); err != nil {
			return nil, fmt.Errorf("list stops: scan row: %w", err)
		}
		parsed, err := domain.ParseRating(rating)
		if err != nil {
			return nil, fmt.Errorf("list stops: stop %q: %w", st.Name, err)
		}
		st.Rating = parsed
		stops = append(stops, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stops: row iteration: %w", err)
	}
	return stops, nil
}
