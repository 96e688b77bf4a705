package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ananyap2024/focus-flow/pkg/classifier"
	"github.com/ananyap2024/focus-flow/pkg/config"
	"github.com/ananyap2024/focus-flow/pkg/deferred"
	"github.com/ananyap2024/focus-flow/pkg/environment"
	"github.com/ananyap2024/focus-flow/pkg/httpserver"
	"github.com/ananyap2024/focus-flow/pkg/logger"
	"github.com/ananyap2024/focus-flow/pkg/requestid"
	"github.com/ananyap2024/focus-flow/pkg/summarizer"
	"github.com/ananyap2024/focus-flow/pkg/summarizer/gemini"
	"github.com/ananyap2024/focus-flow/svc/triage"
)

const serviceName = "focusflow"

var errSummaryTimeout = errors.New("SUMMARY_TIMEOUT must be shorter than HTTP_WRITE_TIMEOUT")

// appConfig is read from the environment (and an optional dotenv file).
type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`

	HTTP        httpserver.Config
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	UrgentApps     []string `env:"URGENT_APPS" envSeparator:","`
	UrgentAppsFile string   `env:"URGENT_APPS_FILE"`

	QueueCapacity int    `env:"QUEUE_CAPACITY" envDefault:"0"`
	QueueOverflow string `env:"QUEUE_OVERFLOW" envDefault:"drop_oldest"`

	GeminiAPIKey   string        `env:"GEMINI_API_KEY"`
	GeminiModel    string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	SummaryTimeout time.Duration `env:"SUMMARY_TIMEOUT" envDefault:"15s"`
}

func loadConfig(envFile string) (appConfig, error) {
	var cfg appConfig
	var opts []config.Option
	if envFile != "" {
		opts = append(opts, config.WithEnvFiles(envFile))
	}
	if err := config.Load(&cfg, opts...); err != nil {
		return appConfig{}, err
	}
	if cfg.QueueCapacity < 0 {
		return appConfig{}, fmt.Errorf("QUEUE_CAPACITY must not be negative, got %d", cfg.QueueCapacity)
	}
	// a drain that outlives the write deadline empties the queue but the
	// summary never reaches the client
	if cfg.HTTP.WriteTimeout > 0 && cfg.SummaryTimeout >= cfg.HTTP.WriteTimeout {
		return appConfig{}, fmt.Errorf("%w: SUMMARY_TIMEOUT %s, HTTP_WRITE_TIMEOUT %s",
			errSummaryTimeout, cfg.SummaryTimeout, cfg.HTTP.WriteTimeout)
	}
	return cfg, nil
}

func newLogger(cfg appConfig, out io.Writer) *slog.Logger {
	env := environment.Parse(cfg.Env)
	opts := []logger.Option{
		logger.WithOutput(out),
		logger.WithEnvironment(env, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	// text on a terminal, JSON when piped
	if env.IsDevelopment() {
		opts = append(opts, logger.WithAutoFormat())
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	return logger.New(opts...)
}

func newClassifier(cfg appConfig) (*classifier.Classifier, error) {
	var opts []classifier.Option

	if cfg.UrgentAppsFile != "" {
		rules, err := classifier.LoadRulesFile(cfg.UrgentAppsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, rules.Options()...)
	}
	// explicit list wins over the file
	if len(cfg.UrgentApps) > 0 {
		opts = append(opts, classifier.WithUrgentApps(cfg.UrgentApps...))
	}

	return classifier.New(opts...), nil
}

func newQueue(cfg appConfig, log *slog.Logger) (*deferred.Queue, error) {
	policy, err := deferred.ParseOverflowPolicy(cfg.QueueOverflow)
	if err != nil {
		return nil, err
	}
	return deferred.New(
		deferred.WithCapacity(cfg.QueueCapacity),
		deferred.WithOverflow(policy),
		deferred.WithLogger(log),
	), nil
}

// newGenerator returns the Gemini generator, or the fallback-only generator
// when no API key is configured.
func newGenerator(ctx context.Context, cfg appConfig, log *slog.Logger) (summarizer.Generator, error) {
	gen, err := gemini.New(ctx, gemini.Config{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel})
	if errors.Is(err, gemini.ErrMissingAPIKey) {
		log.LogAttrs(ctx, slog.LevelWarn, "GEMINI_API_KEY not set, summaries will use the fallback text",
			logger.Component("summarizer"),
		)
		return summarizer.Unavailable{}, nil
	}
	if err != nil {
		return nil, err
	}

	log.LogAttrs(ctx, slog.LevelInfo, "Gemini summaries enabled",
		logger.Component("summarizer"),
		slog.String("model", gen.Model()),
	)
	return gen, nil
}

func newService(ctx context.Context, cfg appConfig, log *slog.Logger) (*triage.Service, error) {
	c, err := newClassifier(cfg)
	if err != nil {
		return nil, err
	}
	q, err := newQueue(cfg, log)
	if err != nil {
		return nil, err
	}
	gen, err := newGenerator(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	sum := summarizer.New(gen,
		summarizer.WithTimeout(cfg.SummaryTimeout),
		summarizer.WithLogger(log),
	)
	return triage.New(c, q, sum, triage.WithLogger(log)), nil
}
