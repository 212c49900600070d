package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/autoshift-labs/autoshift-backend/api/controllers"
	"github.com/autoshift-labs/autoshift-backend/api/middleware"
	"github.com/autoshift-labs/autoshift-backend/internal/auth"
	"github.com/autoshift-labs/autoshift-backend/internal/cargo"
	"github.com/autoshift-labs/autoshift-backend/internal/scheduling"
	"github.com/autoshift-labs/autoshift-backend/internal/shifts"
	"github.com/autoshift-labs/autoshift-backend/internal/warehouses"
	"github.com/autoshift-labs/autoshift-backend/internal/workers"
	"github.com/autoshift-labs/autoshift-backend/pkg/config"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
	"github.com/autoshift-labs/autoshift-backend/pkg/redis"
)

// Dependencies collects everything the API router wires together.
type Dependencies struct {
	Log          *logger.Logger
	Config       *config.Config
	Auth         auth.Service
	Workers      workers.Service
	Warehouses   warehouses.Service
	Cargo        cargo.Service
	Shifts       shifts.Service
	Scheduling   scheduling.Service
	Idempotency  redis.IdempotencyStore
	HealthChecks map[string]controllers.Pinger
}

// NewRouter assembles the API surface.
func NewRouter(deps Dependencies) chi.Router {
	log := deps.Log

	r := chi.NewRouter()
	r.Use(middleware.RequestID(log))
	r.Use(middleware.Logging(log))
	r.Use(middleware.Recover(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health/live", controllers.HealthLive())
	r.Get("/health/ready", controllers.HealthReady(log, deps.HealthChecks))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", controllers.SignUp(deps.Auth, log))
		r.Post("/auth/signin", controllers.SignIn(deps.Auth, log))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(deps.Config.JWT, log))

			adminOnly := middleware.RequireRole(log, enums.UserRoleAdmin)
			idempotent := func(scope string) func(next http.Handler) http.Handler {
				return middleware.Idempotency(deps.Idempotency, scope, log)
			}

			r.With(adminOnly).Get("/workers", controllers.ListWorkers(deps.Workers, log))
			r.Get("/workers/{id}", controllers.GetWorker(deps.Workers, log))
			r.With(adminOnly).Put("/workers/{id}/qualifications", controllers.SetWorkerQualifications(deps.Workers, log))
			r.Put("/workers/{id}/preferences", controllers.SetWorkerPreferences(deps.Workers, log))
			r.Get("/workers/{id}/shifts", controllers.WorkerShifts(deps.Shifts, log))

			r.Get("/warehouses", controllers.ListWarehouses(deps.Warehouses, log))
			r.Get("/warehouses/{id}", controllers.GetWarehouse(deps.Warehouses, log))
			r.With(adminOnly).Post("/warehouses", controllers.CreateWarehouse(deps.Warehouses, log))
			r.With(adminOnly).Put("/warehouses/{id}", controllers.UpdateWarehouse(deps.Warehouses, log))
			r.With(adminOnly).Delete("/warehouses/{id}", controllers.DeactivateWarehouse(deps.Warehouses, log))
			r.Get("/warehouses/{id}/shifts", controllers.WarehouseShifts(deps.Shifts, log))
			r.Get("/warehouses/{id}/cargo/loads", controllers.ListCargoLoads(deps.Cargo, log))
			r.Get("/warehouses/{id}/cargo/forecasts", controllers.ListCargoForecasts(deps.Cargo, log))

			r.With(adminOnly, idempotent("cargo-load")).Post("/cargo/loads", controllers.UpsertCargoLoad(deps.Cargo, log))
			r.With(adminOnly).Post("/cargo/forecasts", controllers.UpsertCargoForecast(deps.Cargo, log))

			r.Get("/shifts/me", controllers.MyShifts(deps.Shifts, log))
			r.Delete("/shifts/{id}", controllers.DeleteShift(deps.Shifts, log))
			r.With(adminOnly, idempotent("optimize")).Post("/shifts/optimize", controllers.OptimizeShifts(deps.Scheduling, log))
		})
	})

	return r
}
