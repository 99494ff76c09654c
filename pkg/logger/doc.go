// Package logger builds *slog.Logger values from functional options and
// injects attributes taken from context.Context on every record.
//
// New picks slog's text or JSON handler, attaches static attributes and wraps
// the result in LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks (request id, environment) before delegating.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(os.Getenv("APP_ENV")), "inputcheck"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "check finished", logger.Rule("email"), logger.Valid(res.Valid))
//
// Level and format names from configuration are checked with ParseLevel and
// ParseFormat, which return errors instead of panicking. Error returns an empty
// attribute for a nil error. Output goes to stderr unless WithOutput says otherwise.
package logger
