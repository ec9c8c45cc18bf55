package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"plutoiptv/internal/runlog"
)

const timeRounding = 100 * time.Millisecond

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent generator runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("run history is disabled; enable [history] in the configuration")
			}

			store, err := runlog.Open(cfg.HistoryPath())
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				errText := run.Error
				if len(errText) > 48 {
					errText = errText[:45] + "..."
				}
				rows = append(rows, []string{
					strconv.FormatInt(run.ID, 10),
					run.StartedAt.Local().Format("2006-01-02 15:04:05"),
					run.Duration().Round(timeRounding).String(),
					run.Status,
					strconv.Itoa(run.Channels),
					strconv.Itoa(run.Programmes),
					strconv.Itoa(run.Picons),
					errText,
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"ID", "Started", "Duration", "Status", "Channels", "Programmes", "Picons", "Error"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft}))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}
