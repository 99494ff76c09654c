// Command inputcheck runs the validator set from the command line or serves it over HTTP.
//
//	inputcheck rules
//	inputcheck check -rule url -value https://example.com
//	inputcheck settings -file sync.yaml
//	inputcheck serve
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/inputcheck/internal/api"
	"github.com/dmitrymomot/inputcheck/internal/settings"
	"github.com/dmitrymomot/inputcheck/pkg/clientip"
	"github.com/dmitrymomot/inputcheck/pkg/config"
	"github.com/dmitrymomot/inputcheck/pkg/environment"
	"github.com/dmitrymomot/inputcheck/pkg/httpserver"
	"github.com/dmitrymomot/inputcheck/pkg/logger"
	"github.com/dmitrymomot/inputcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/inputcheck/pkg/requestid"
	"github.com/dmitrymomot/inputcheck/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
	exitFailure = 3
)

// appConfig holds process-wide settings read from the environment.
type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"inputcheck"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	// TrustProxyHeaders keys rate limiting on forwarding headers instead of
	// the peer address. Enable only behind a proxy that overwrites them.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return exitFailure
	}
	env := environment.Parse(cfg.Env)
	log, err := newLogger(cfg, env, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return exitFailure
	}
	logger.SetAsDefault(log)
	ctx = environment.WithContext(ctx, env)

	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	switch args[0] {
	case "rules":
		return runRules(stdout)
	case "check":
		return runCheck(ctx, args[1:], stdout, stderr, log)
	case "settings":
		return runSettings(ctx, args[1:], stdout, stderr, log)
	case "serve":
		return runServe(ctx, cfg, env, log)
	case "help", "-h", "--help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return exitUsage
	}
}

// newLogger rejects unknown LOG_LEVEL and LOG_FORMAT values instead of
// silently falling back.
func newLogger(cfg appConfig, env environment.Environment, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithEnvironment(env, cfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, fmt.Errorf("LOG_FORMAT: %w", err)
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage: inputcheck <command> [flags]

Commands:
  rules                                   list rule names
  check -rule R -value V [-min-length N]  check a single value
  settings [-file path]                   validate sync settings from a YAML file or SYNC_* env
  serve                                   serve the HTTP API (HTTP_*, RATE_LIMIT_*, TRUST_PROXY_HEADERS env)
`)
}

func runRules(stdout io.Writer) int {
	for _, name := range validator.Rules() {
		fmt.Fprintln(stdout, name)
	}
	return exitOK
}

func runCheck(ctx context.Context, args []string, stdout, stderr io.Writer, log *slog.Logger) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rule := fs.String("rule", "", "rule name, one of the names printed by the rules command")
	value := fs.String("value", "", "value to check")
	minLength := fs.Int("min-length", 0, "minimum API key length (api_key only)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *rule == "" {
		fmt.Fprintln(stderr, "check: -rule is required")
		return exitUsage
	}

	var opts []validator.CheckOption
	if *minLength > 0 {
		opts = append(opts, validator.WithMinLength(*minLength))
	}

	result, err := validator.CheckString(*rule, *value, opts...)
	if err != nil {
		log.ErrorContext(ctx, "check failed", logger.Rule(*rule), logger.Error(err))
		return exitUsage
	}
	log.DebugContext(ctx, "value checked", logger.Rule(*rule), logger.Valid(result.Valid))

	if err := writeJSON(stdout, result); err != nil {
		log.ErrorContext(ctx, "failed to write result", logger.Error(err))
		return exitFailure
	}
	if !result.Valid {
		return exitInvalid
	}
	return exitOK
}

type settingsReport struct {
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func runSettings(ctx context.Context, args []string, stdout, stderr io.Writer, log *slog.Logger) int {
	fs := flag.NewFlagSet("settings", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "YAML settings file; SYNC_* environment variables are used when empty")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	var err error
	if *file != "" {
		var s settings.Settings
		s, err = settings.LoadFile(*file)
		if err != nil {
			log.ErrorContext(ctx, "failed to load settings", slog.String("file", *file), logger.Error(err))
			return exitFailure
		}
		err = s.Validate()
	} else {
		_, err = settings.FromEnv()
	}

	report := settingsReport{Valid: err == nil}
	if err != nil {
		if !validator.IsValidationError(err) {
			log.ErrorContext(ctx, "failed to load settings", logger.Error(err))
			return exitFailure
		}
		errs := validator.ExtractValidationErrors(err)
		report.Errors = errs.Details()
		for _, field := range errs.Fields() {
			log.DebugContext(ctx, "invalid setting", logger.Field(field))
		}
	}

	if err := writeJSON(stdout, report); err != nil {
		log.ErrorContext(ctx, "failed to write result", logger.Error(err))
		return exitFailure
	}
	if !report.Valid {
		return exitInvalid
	}
	return exitOK
}

func runServe(ctx context.Context, app appConfig, env environment.Environment, log *slog.Logger) int {
	var cfg httpserver.Config
	if err := config.Load(&cfg); err != nil {
		log.ErrorContext(ctx, "failed to load http config", logger.Error(err))
		return exitFailure
	}

	var limitCfg ratelimiter.Config
	if err := config.Load(&limitCfg); err != nil {
		log.ErrorContext(ctx, "failed to load rate limit config", logger.Error(err))
		return exitFailure
	}
	store := ratelimiter.NewMemoryStore()
	defer store.Close()
	limiter, err := ratelimiter.NewBucket(store, limitCfg)
	if err != nil {
		log.ErrorContext(ctx, "failed to create rate limiter", logger.Error(err))
		return exitFailure
	}

	routerOpts := []api.Option{api.WithRateLimiter(limiter)}
	if !app.TrustProxyHeaders {
		routerOpts = append(routerOpts, api.WithRateLimitKey(clientip.RemoteIP))
	}
	router := api.NewRouter(log, env, routerOpts...)
	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		return exitFailure
	}
	return exitOK
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
