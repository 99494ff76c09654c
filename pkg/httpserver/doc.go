// Package httpserver wraps net/http with graceful shutdown, env-driven
// timeouts and a health-check handler.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives or the
// listener fails, then drains in-flight requests within the shutdown timeout.
// Start and stop events are logged through the configured slog.Logger.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/health", httpserver.HealthCheckHandler(log))
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server exited", logger.Error(err))
//	}
//
// # Errors
//
// Failures are joined with ErrStart or ErrShutdown so callers can match them
// with errors.Is. A second Run on the same Server yields ErrAlreadyRunning.
package httpserver
