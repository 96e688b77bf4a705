package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	envFiles []string
}

// WithEnvFiles sets the dotenv files read before parsing. Missing files are
// skipped. Defaults to ".env".
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.envFiles = paths }
}

// Load reads dotenv files into the process environment and then parses the
// environment into v according to its `env` struct tags.
// Variables already set in the environment win over dotenv values.
//
// Example:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8000"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{envFiles: []string{".env"}}
	for _, opt := range opts {
		opt(o)
	}

	for _, path := range o.envFiles {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrEnvFile, err)
		}
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
