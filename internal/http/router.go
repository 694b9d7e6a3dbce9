package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/handover"
	authmw "github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/middleware"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/integrity"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/respond"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/http/settlement"
)

type Options struct {
	Timeout        time.Duration
	AllowedOrigins []string
	Auth           *authmw.Authenticator
	RateLimit      *authmw.RateLimiter
	Metrics        http.Handler
}

func New(
	opts Options,
	handoversV1 *handover.Handler,
	settlementsV1 *settlement.Handler,
	integrityV1 *integrity.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(opts.Timeout))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Retry-After"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if opts.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(opts.Auth.Authenticate)
		r.Use(opts.RateLimit.Handler)

		r.Route("/handovers", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			handoversV1.Routes(r)
		})

		r.Route("/settlements", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			settlementsV1.Routes(r)
		})

		r.Route("/integrity", integrityV1.Routes)
	})

	return router
}
