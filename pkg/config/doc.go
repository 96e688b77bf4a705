// Package config loads typed configuration from environment variables.
//
// Load first reads dotenv files with godotenv (by default ".env", missing
// files are fine) and then fills a struct through caarlos0/env struct tags.
// Values already present in the process environment take precedence over
// dotenv values.
package config
