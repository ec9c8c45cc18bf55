package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"plutoiptv/internal/config"
	"plutoiptv/internal/feed"
	"plutoiptv/internal/logging"
	"plutoiptv/internal/pipeline"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newLogger builds the run logger from config, mirroring console output
// into the configured log file. Normalization warnings collected during
// config load are emitted here, the first place a logger exists.
func (c *commandContext) newLogger(cfg *config.Config, logToFile bool) (*slog.Logger, error) {
	opts := logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}
	if logToFile {
		opts.LogPath = cfg.LogPath()
	}
	logger, err := logging.New(opts)
	if err != nil {
		return nil, err
	}
	for _, warning := range cfg.Warnings {
		logger.Warn(warning)
	}
	return logger, nil
}

func (c *commandContext) newPipeline(cfg *config.Config, logger *slog.Logger) *pipeline.Pipeline {
	client := feed.NewClient(
		cfg.Feed.BaseURL,
		cfg.Feed.ImageBaseURL,
		time.Duration(cfg.Feed.TimeoutSeconds)*time.Second,
		nil,
		logger,
	)
	return pipeline.New(cfg, client, logger)
}
