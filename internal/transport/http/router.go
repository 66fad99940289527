// Package httptransport is the thin HTTP layer. Handlers delegate to the
// engine and reader without embedding business logic so transport concerns
// stay isolated.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BartokGyorgy07/webkert-insurance/internal/platform/httpserver"
	"github.com/BartokGyorgy07/webkert-insurance/internal/platform/middleware"
)

// NewRouter wires all endpoints. Insurance and profile routes sit behind
// bearer auth; health and metrics stay open.
func NewRouter(
	insurances *InsuranceHandler,
	profile *ProfileHandler,
	validator middleware.TokenValidator,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(httpserver.RequestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(validator, logger))
		insurances.Register(r)
		profile.Register(r)
	})

	return r
}
