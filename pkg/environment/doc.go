// Package environment propagates the deployment environment (development,
// staging, production) through context.Context, HTTP requests and logs.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	handler = environment.Middleware(env)(handler)
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
package environment
