// Package httptransport wires the chi router. Transport concerns stay here;
// business logic lives in the handler's injected services.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	verifyhandler "attestor/internal/verify/handler"
	"attestor/pkg/platform/middleware/auth"
)

// RouterConfig carries the wired dependencies for the HTTP surface.
type RouterConfig struct {
	Verify *verifyhandler.Handler

	// Auth protects the operator audit endpoint.
	Auth *auth.Validator

	// RateLimit, when set, wraps the public verification routes.
	RateLimit func(http.Handler) http.Handler
}

// NewRouter mounts all endpoints.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if cfg.RateLimit != nil {
				r.Use(cfg.RateLimit)
			}
			cfg.Verify.Register(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(cfg.Auth))
			cfg.Verify.RegisterAudit(r)
		})
	})

	return r
}
