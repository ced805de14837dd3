package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
	"github.com/amriz26/BudgetpalCsc642/internal/observability"
	"github.com/amriz26/BudgetpalCsc642/internal/session"
)

// NewRouter creates the HTTP router with all routes and middleware. Every
// /v1 route except login runs behind the session middleware, so each
// request operates on the caller's own engine instance.
func NewRouter(sessions *session.Manager, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// Operational endpoints
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/login", loginHandler(sessions, logger))

		// Static style tables for the frontend.
		r.Get("/categories", categoriesHandler())

		r.Get("/metrics/engine", engineMetricsHandler(metrics))

		r.Group(func(r chi.Router) {
			r.Use(requireSession(sessions))

			r.Post("/logout", logoutHandler(sessions))

			r.Get("/dashboard", dashboardHandler(logger))

			r.Get("/expenses", expenseOverviewHandler(logger))
			r.Post("/expenses", addExpenseHandler(logger))

			r.Get("/budgets", budgetOverviewHandler(logger))
			r.Post("/budgets", createBudgetHandler(logger))
			r.Patch("/budgets/{budgetID}", updateBudgetHandler(logger))
			r.Delete("/budgets/{budgetID}", deleteBudgetHandler(logger))

			r.Get("/goals", savingsOverviewHandler(logger))
			r.Post("/goals", createGoalHandler(logger))
			r.Post("/goals/{goalID}/contributions", contributeHandler(logger))
			r.Delete("/goals/{goalID}", deleteGoalHandler(logger))
		})
	})

	return r
}

type categoryEntry struct {
	Name  string              `json:"name"`
	Style model.CategoryStyle `json:"style"`
}

func categoriesHandler() http.HandlerFunc {
	entries := make([]categoryEntry, 0, len(model.Categories))
	for _, name := range model.Categories {
		entries = append(entries, categoryEntry{Name: name, Style: model.StyleForCategory(name)})
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, entries)
	}
}

func engineMetricsHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, metrics.GetEngineSnapshot())
	}
}
