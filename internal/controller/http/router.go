package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/ibeloyar/returndesk/pgk/auth"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	// SecretKey enables bearer auth on /api/tools when set.
	SecretKey string
	// Metrics is served on /metrics when set.
	Metrics http.Handler
}

func InitRoutes(r *chi.Mux, c *Controller, cfg RouterConfig) *chi.Mux {
	r.Get("/ping", c.Ping)

	if cfg.Metrics == nil {
		cfg.Metrics = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", cfg.Metrics)

	r.Route("/api", func(r chi.Router) {
		r.Get("/orders/{number}/eligibility", c.CheckEligibility)
		r.Post("/returns", c.ProcessReturn)
		r.Post("/exchanges", c.ProcessExchange)
		r.Get("/inventory/{item}/sizes/{size}", c.CheckSizeAvailability)
		r.Get("/inventory/{item}/sizes/{size}/alternatives", c.GetSizeAlternatives)
		r.Get("/policies/{category}", c.GetReturnPolicy)

		r.Group(func(r chi.Router) {
			if cfg.SecretKey != "" {
				r.Use(auth.AuthBearerMiddlewareInit[model.Caller](cfg.SecretKey, nil))
			}
			r.Post("/tools/invoke", c.InvokeTool)
		})
	})

	return r
}
