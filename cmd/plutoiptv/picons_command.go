package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPiconsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "picons",
		Short: "Synthesize channel picons without touching the playlist or EPG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg, true)
			if err != nil {
				return err
			}

			written, err := ctx.newPipeline(cfg, logger).RunPicons(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d picons written to %s\n", written, cfg.Paths.PiconDir)
			return nil
		},
	}
}
