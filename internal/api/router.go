// Package api exposes the validator set over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/inputcheck/pkg/clientip"
	"github.com/dmitrymomot/inputcheck/pkg/environment"
	"github.com/dmitrymomot/inputcheck/pkg/httpserver"
	"github.com/dmitrymomot/inputcheck/pkg/logger"
	"github.com/dmitrymomot/inputcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/inputcheck/pkg/requestid"
)

// Option configures NewRouter.
type Option func(*options)

type options struct {
	limiter  *ratelimiter.Bucket
	limitKey ratelimiter.KeyFunc
}

// WithRateLimiter limits /v1 routes per client IP.
//
// By default the key is the address resolved by clientip, which trusts
// CF-Connecting-IP, X-Forwarded-For and X-Real-IP. Those headers are set by
// the caller unless a proxy in front overwrites them, so without such a proxy
// use WithRateLimitKey(clientip.RemoteIP).
func WithRateLimiter(b *ratelimiter.Bucket) Option {
	return func(o *options) { o.limiter = b }
}

// WithRateLimitKey replaces the per-request rate limit key. Nil keeps the default.
func WithRateLimitKey(fn ratelimiter.KeyFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.limitKey = fn
		}
	}
}

// NewRouter builds the API routes. A nil log discards output.
func NewRouter(log *slog.Logger, env environment.Environment, opts ...Option) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	o := options{limitKey: clientKey}
	for _, opt := range opts {
		opt(&o)
	}
	h := &handlers{log: log.With(logger.Component("api"))}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(environment.Middleware(env))
	r.Use(accessLog(h.log))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, r, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, r, ErrMethodNotAllowed)
	})

	r.Get("/health", httpserver.HealthCheckHandler(log))

	r.Route("/v1", func(r chi.Router) {
		if o.limiter != nil {
			r.Use(ratelimiter.Middleware(o.limiter, o.limitKey,
				ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, r *http.Request, _ ratelimiter.Result) {
					h.respondError(w, r, ErrRateLimited)
				}),
				ratelimiter.WithErrorHandler(h.respondError),
			))
		}
		r.Get("/rules", h.listRules)
		r.Get("/check/{rule}", h.checkQuery)
		r.Post("/check/{rule}", h.checkJSON)
		r.Post("/settings/check", h.checkSettings)
	})

	return r
}

func clientKey(r *http.Request) string {
	return clientip.FromContext(r.Context())
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.InfoContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
