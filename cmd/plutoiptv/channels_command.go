package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newChannelsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "List the current channel lineup",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg, false)
			if err != nil {
				return err
			}

			channels, err := ctx.newPipeline(cfg, logger).Channels(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(channels))
			for _, ch := range channels {
				stitched := "yes"
				if !ch.IsStitched {
					stitched = "no"
				}
				rows = append(rows, []string{
					strconv.Itoa(ch.Number),
					ch.Name,
					ch.Slug,
					ch.Category,
					stitched,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"#", "Name", "Slug", "Category", "Stitched"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft}))
			return nil
		},
	}
}
