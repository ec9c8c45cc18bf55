package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"plutoiptv/internal/logging"
	"plutoiptv/internal/pipeline"
	"plutoiptv/internal/runlog"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the playlist and EPG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg, true)
			if err != nil {
				return err
			}

			lock := flock.New(cfg.LockPath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another plutoiptv run holds %s", cfg.LockPath())
			}
			defer func() {
				_ = lock.Unlock()
			}()

			started := time.Now()
			res, runErr := ctx.newPipeline(cfg, logger).Run(cmd.Context())
			recordRun(cmd.Context(), ctx, logger, started, res, runErr)
			if runErr != nil {
				return runErr
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Playlist: %s\n", res.PlaylistPath)
			fmt.Fprintf(out, "EPG:      %s\n", res.EPGPath)
			fmt.Fprintf(out, "%d channels, %d programmes, %d skipped", res.Channels, res.Programmes, res.Skipped)
			if cfg.PiconsEnabled() {
				fmt.Fprintf(out, ", %d picons written", res.PiconsWritten)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}

// recordRun appends one row to the history store. History failures are
// logged and swallowed so they never mask the generation outcome.
func recordRun(cmdCtx context.Context, ctx *commandContext, logger *slog.Logger, started time.Time, res pipeline.Result, runErr error) {
	cfg := ctx.config
	if cfg == nil || !cfg.History.Enabled {
		return
	}

	store, err := runlog.Open(cfg.HistoryPath())
	if err != nil {
		logger.Warn("run history unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	run := runlog.Run{
		StartedAt:    started,
		FinishedAt:   time.Now(),
		Status:       runlog.StatusCompleted,
		Channels:     res.Channels,
		Programmes:   res.Programmes,
		Skipped:      res.Skipped,
		Picons:       res.PiconsWritten,
		PlaylistPath: res.PlaylistPath,
		EPGPath:      res.EPGPath,
	}
	if runErr != nil {
		run.Status = runlog.StatusFailed
		run.Error = runErr.Error()
	}
	if _, err := store.Record(cmdCtx, run); err != nil {
		logger.Warn("record run history", logging.Error(err))
	}
}
