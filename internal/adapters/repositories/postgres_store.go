package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/louwian/medoc-marathon/internal/domain"
)

// Postgres-backed store for shared deployments, selected by DATABASE_URL.
// Same ports as SqliteStore; only placeholder syntax and upsert form differ.
type PostgresStore struct{ DB *sql.DB }

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) InitSchema() error {
	if s.DB == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS course_points (
			seq INTEGER PRIMARY KEY,
			km DOUBLE PRECISION NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS stops (
			seq INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			km DOUBLE PRECISION NOT NULL,
			rating TEXT NOT NULL,
			price_gbp DOUBLE PRECISION NOT NULL,
			food TEXT NOT NULL DEFAULT ''
		);
		`,
		`CREATE INDEX IF NOT EXISTS idx_stops_km ON stops(km);`,
	}
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

func (s *PostgresStore) SeedCourse(points []domain.CoursePoint) error {
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
	VALUES ($1, $2, $3, $4);
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

func (s *PostgresStore) SeedStops(stops []domain.Stop) error {
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
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (name) DO UPDATE
	SET seq = EXCLUDED.seq,
	    km = EXCLUDED.km,
	    rating = EXCLUDED.rating,
	    price_gbp = EXCLUDED.price_gbp,
	    food = EXCLUDED.food;
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

func (s *PostgresStore) LoadCourse(ctx context.Context) (*domain.Course, error) {
	if s.DB == nil {
		return nil, errors.New("postgres store: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT km, lat, lon
	FROM course_points
	ORDER BY seq;
	`)
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

func (s *PostgresStore) ListStops(ctx context.Context) ([]domain.Stop, error) {
	if s.DB == nil {
		return nil, errors.New("postgres store: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT name, km, rating, price_gbp, food
	FROM stops
	ORDER BY seq;
	`)
	if err != nil {
		return nil, fmt.Errorf("list stops: query stops table: %w", err)
	}
	defer rows.Close()

	return scanStops(rows)
}
