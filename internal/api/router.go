package api

import (
	"delivery-dispatch-service/internal/api/handlers"
	"delivery-dispatch-service/internal/domain"
	"delivery-dispatch-service/internal/platform/metrics"
	"delivery-dispatch-service/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Deps are the adapters and settings the HTTP layer is built from.
type Deps struct {
	Repo           ports.ClientRepository
	Store          ports.PlanStore
	DefaultDepot   domain.Point
	DefaultVehicle domain.Vehicle
	Checks         map[string]handlers.Check

	// Limiter bounds request throughput; nil disables rate limiting.
	Limiter *rate.Limiter
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	metrics.Register()

	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Checks: deps.Checks}
	clientHandler := &handlers.ClientHandler{Repo: deps.Repo}
	planHandler := &handlers.PlanHandler{
		Repo:  deps.Repo,
		Store: deps.Store,
		Defaults: handlers.PlanDefaults{
			Depot:   deps.DefaultDepot,
			Vehicle: deps.DefaultVehicle,
		},
	}

	mux.HandleFunc("/health", healthHandler.Live)
	mux.HandleFunc("/ready", healthHandler.Ready)
	mux.HandleFunc("/clients", clientHandler.List)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/plans/batch", planHandler.Batch)
	mux.HandleFunc("/plans/{id}", planHandler.Get)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(rateLimitMiddleware(deps.Limiter, mux))
}
