package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ananyap2024/focus-flow/pkg/notification"
)

type classifyRow struct {
	AppName  string                `json:"app_name"`
	Decision notification.Decision `json:"decision"`
	Reason   string                `json:"reason"`
}

func newClassifyCommand(envFile *string) *cobra.Command {
	var (
		focused   bool
		urgent    []string
		rulesFile string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "classify APP...",
		Short: "Show how notifications from the given apps would be triaged",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rules") {
				cfg.UrgentAppsFile = rulesFile
			}
			if cmd.Flags().Changed("urgent") {
				cfg.UrgentApps = urgent
			}

			c, err := newClassifier(cfg)
			if err != nil {
				return err
			}

			rows := make([]classifyRow, 0, len(args))
			for _, app := range args {
				res := c.Classify(notification.Notification{AppName: app}, focused)
				rows = append(rows, classifyRow{AppName: app, Decision: res.Decision, Reason: res.Reason})
			}

			if asJSON {
				return writeJSON(cmd, rows)
			}

			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				table = append(table, []string{r.AppName, r.Decision.String(), r.Reason})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"App", "Decision", "Reason"}, table))
			return err
		},
	}

	cmd.Flags().BoolVar(&focused, "focus", false, "Classify as if focus mode were on")
	cmd.Flags().StringSliceVar(&urgent, "urgent", nil, "Urgent app identifiers (overrides URGENT_APPS)")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML rules file with urgent_apps")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
