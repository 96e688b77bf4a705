package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ananyap2024/focus-flow/api"
	"github.com/ananyap2024/focus-flow/pkg/httpserver"
	"github.com/ananyap2024/focus-flow/pkg/logger"
)

func newServeCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*envFile)
			if err != nil {
				return err
			}

			log := newLogger(cfg, os.Stdout)
			logger.SetAsDefault(log)

			ctx := cmd.Context()
			svc, err := newService(ctx, cfg, log)
			if err != nil {
				log.LogAttrs(ctx, slog.LevelError, "Failed to build service", logger.Error(err))
				return err
			}

			router := api.NewRouter(svc,
				api.WithLogger(log),
				api.WithAllowedOrigins(cfg.CORSOrigins...),
			)

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(ctx, router)
		},
	}
}
