package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/louwian/medoc-marathon/internal/api/handlers"
	"github.com/louwian/medoc-marathon/internal/domain"
	"github.com/louwian/medoc-marathon/internal/platform/obs"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(course *domain.Course, catalog *domain.Catalog, defaults domain.PlanningParams) http.Handler {
	obs.RegisterDefault()

	mux := http.NewServeMux()

	catalogHandler := &handlers.CatalogHandler{Course: course, Catalog: catalog}
	planHandler := &handlers.PlanHandler{
		Course:        course,
		Catalog:       catalog,
		DefaultParams: defaults,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stops", catalogHandler.ListStops)
	mux.HandleFunc("/course", catalogHandler.GetCourse)
	mux.HandleFunc("/plan/validate", planHandler.Validate)
	mux.HandleFunc("/plan/optimize", planHandler.Optimize)
	mux.HandleFunc("/plan/itinerary", planHandler.Itinerary)
	mux.Handle("/metrics", promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
