package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cartoonlab/internal/http/handlers"
	"cartoonlab/internal/infra"
	mw "cartoonlab/internal/middleware"
	"cartoonlab/web"
)

// NewRouter mounts the API under /v1 and the embedded browser UI at the root.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		mw.RequestID,
		mw.Logger(logger),
		mw.CORS(cfg.AllowedOrigins),
		mw.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/styles", app.Styles)
	r.Post("/v1/cartoons", app.CartoonsGenerate)
	r.Post("/v1/edits", app.EditsApply)

	r.Route("/v1/history", func(r chi.Router) {
		r.Get("/", app.HistoryList)
		r.Delete("/", app.HistoryClear)
		r.Get("/archive", app.HistoryArchive)
	})

	r.Handle("/*", web.Handler())

	return r
}
