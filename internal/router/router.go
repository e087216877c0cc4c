package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forumapi-dev/forumapi/internal/metrics"
	mw "github.com/forumapi-dev/forumapi/internal/middleware"
	"github.com/forumapi-dev/forumapi/internal/setup"
)

// New creates the chi router with all routes.
// The /threads limiter is global: every caller shares one budget.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger)
	r.Use(metrics.Middleware)
	r.Use(mw.CORS(deps.Config.Public.CorsAllowedOrigins))
	r.Use(mw.SecurityHeadersWithCSP(deps.Config.Public.Https, mw.APIContentSecurityPolicy))

	h := deps.Handler
	needAuth := deps.AuthMiddleware.NeedAuth()

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/users", h.Register)

	r.Route("/authentications", func(r chi.Router) {
		r.Post("/", h.Login)
		r.Put("/", h.Refresh)
		r.Delete("/", h.Logout)
	})

	r.Route("/threads", func(r chi.Router) {
		r.Use(mw.GlobalRateLimit(deps.ThreadsLimiter))

		r.Get("/{threadId}", h.GetThread)

		r.Group(func(r chi.Router) {
			r.Use(needAuth)
			r.Post("/", h.CreateThread)
			r.Post("/{threadId}/comments", h.CreateComment)
			r.Delete("/{threadId}/comments/{commentId}", h.DeleteComment)
			r.Put("/{threadId}/comments/{commentId}/likes", h.ToggleLike)
			r.Post("/{threadId}/comments/{commentId}/replies", h.CreateReply)
			r.Delete("/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
		})
	})

	return r
}
