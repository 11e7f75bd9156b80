package repositories

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/louwian/medoc-marathon/internal/domain"
)

func openTestStore(t *testing.T) *SqliteStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := NewSqliteStore(db)
	if err := store.InitSchema(); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return store
}

func TestSqliteStoreCourseRoundTrip(t *testing.T) {
	store := openTestStore(t)

	points := []domain.CoursePoint{
		{Km: 0, Coords: domain.Coordinates{Lon: -0.700, Lat: 45.090}},
		{Km: 1.5, Coords: domain.Coordinates{Lon: -0.690, Lat: 45.100}},
		{Km: 3.0, Coords: domain.Coordinates{Lon: -0.680, Lat: 45.110}},
	}
	if err := store.SeedCourse(points); err != nil {
		t.Fatalf("seed course: %v", err)
	}

	course, err := store.LoadCourse(context.Background())
	if err != nil {
		t.Fatalf("load course: %v", err)
	}

	got := course.Points()
	if len(got) != len(points) {
		t.Fatalf("expected %d points, got %d", len(points), len(got))
	}
	for i := range points {
		if got[i].Km != points[i].Km || got[i].Coords != points[i].Coords {
			t.Errorf("point %d = %+v, want %+v", i, got[i], points[i])
		}
	}

	// Reseeding replaces rather than appends.
	if err := store.SeedCourse(points[:2]); err != nil {
		t.Fatalf("reseed course: %v", err)
	}
	course, err = store.LoadCourse(context.Background())
	if err != nil {
		t.Fatalf("reload course: %v", err)
	}
	if len(course.Points()) != 2 {
		t.Fatalf("expected 2 points after reseed, got %d", len(course.Points()))
	}
}

func TestSqliteStoreStopsRoundTrip(t *testing.T) {
	store := openTestStore(t)

	stops := []domain.Stop{
		{Name: "Chateau Cormier", Km: 18, Rating: domain.CanSkip, PriceGBP: 30, Food: "cheese"},
		{Name: "Chateau Almond", Km: 6, Rating: domain.MustStop, PriceGBP: 20.5},
	}
	if err := store.SeedStops(stops); err != nil {
		t.Fatalf("seed stops: %v", err)
	}

	got, err := store.ListStops(context.Background())
	if err != nil {
		t.Fatalf("list stops: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(got))
	}
	// Sheet order survives the round trip.
	if got[0].Name != "Chateau Cormier" || got[1].Name != "Chateau Almond" {
		t.Errorf("order = %q, %q; want sheet order", got[0].Name, got[1].Name)
	}
	if got[0].Rating != domain.CanSkip {
		t.Errorf("rating = %v, want CanSkip", got[0].Rating)
	}
	if got[1].PriceGBP != 20.5 {
		t.Errorf("price = %v, want 20.5", got[1].PriceGBP)
	}
	if got[0].Food != "cheese" || got[1].Food != "" {
		t.Errorf("food = %q, %q", got[0].Food, got[1].Food)
	}
}
