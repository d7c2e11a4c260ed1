// AngelaMos | 2026
// routes.go

package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/carterperez-dev/cardops/internal/admin"
	"github.com/carterperez-dev/cardops/internal/auth"
	"github.com/carterperez-dev/cardops/internal/card"
	"github.com/carterperez-dev/cardops/internal/client"
	"github.com/carterperez-dev/cardops/internal/config"
	"github.com/carterperez-dev/cardops/internal/core"
	"github.com/carterperez-dev/cardops/internal/export"
	"github.com/carterperez-dev/cardops/internal/health"
	"github.com/carterperez-dev/cardops/internal/incident"
	"github.com/carterperez-dev/cardops/internal/inventory"
	"github.com/carterperez-dev/cardops/internal/middleware"
)

type routerDeps struct {
	cfg         *config.Config
	logger      *slog.Logger
	tracer      trace.Tracer
	services    *services
	health      *health.Handler
	admin       *admin.Handler
	rateLimiter *middleware.RateLimiter
}

func newRouter(d routerDeps) http.Handler {
	tracer := d.tracer
	if tracer == nil {
		tracer = otel.Tracer(d.cfg.Otel.ServiceName)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing(tracer))
	r.Use(middleware.Logger(d.logger))
	if d.rateLimiter != nil {
		r.Use(d.rateLimiter.Handler)
	}
	r.Use(middleware.SecurityHeaders(d.cfg.IsProduction()))
	r.Use(middleware.CORS(d.cfg.CORS))

	d.health.RegisterRoutes(r)

	svc := d.services
	authenticator := middleware.Authenticator(svc.auth)
	guard := authenticator
	if !d.cfg.Auth.ProtectAPI {
		d.logger.Warn("API routes are not protected by authentication")
		guard = middleware.OptionalAuth(svc.auth)
	}

	r.Route("/api", func(r chi.Router) {
		auth.NewHandler(svc.auth).RegisterRoutes(r, authenticator, loginLimit(d.cfg.Auth))

		r.Group(func(r chi.Router) {
			r.Use(guard)

			client.NewHandler(svc.clients).RegisterRoutes(r)
			card.NewHandler(svc.cards).RegisterRoutes(r)
			incident.NewHandler(svc.incidents).RegisterRoutes(r)
			inventory.NewHandler(svc.inventory).RegisterRoutes(r)
			export.NewHandler(svc.cards, svc.incidents).RegisterRoutes(r)
		})

		d.admin.RegisterRoutes(r, authenticator)
	})

	return r
}

// loginLimit caps credential attempts per client IP regardless of the
// global limiter.
func loginLimit(cfg config.AuthConfig) func(http.Handler) http.Handler {
	return httprate.Limit(
		cfg.LoginAttempts,
		cfg.LoginAttemptsWin,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			core.JSONError(w, core.NewAppError(
				core.ErrRateLimited,
				"Too many login attempts. Try again later.",
				http.StatusTooManyRequests,
				"RATE_LIMITED",
			))
		}),
	)
}
