package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var envFile string

	serve := newServeCommand(&envFile)

	rootCmd := &cobra.Command{
		Use:           "focusflow",
		Short:         "Notification triage backend for focus mode",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(newClassifyCommand(&envFile))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
