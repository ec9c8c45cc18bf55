package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeFeed()
	c.normalizeDevice()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.PlaylistDir) == "" {
		c.Paths.PlaylistDir = defaultPlaylistDir
	}
	if c.Paths.PlaylistDir, err = ExpandPath(c.Paths.PlaylistDir); err != nil {
		return fmt.Errorf("paths.playlist_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		c.Paths.CacheDir = defaultCacheDir
	}
	if c.Paths.CacheDir, err = ExpandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.EPGDir) == "" {
		c.Paths.EPGDir = c.Paths.PlaylistDir
	}
	if c.Paths.EPGDir, err = ExpandPath(c.Paths.EPGDir); err != nil {
		return fmt.Errorf("paths.epg_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.PiconDir) != "" {
		if c.Paths.PiconDir, err = ExpandPath(c.Paths.PiconDir); err != nil {
			return fmt.Errorf("paths.picon_dir: %w", err)
		}
	}
	if strings.TrimSpace(c.Favorites.Path) != "" {
		if c.Favorites.Path, err = ExpandPath(c.Favorites.Path); err != nil {
			return fmt.Errorf("favorites.path: %w", err)
		}
	}
	if strings.TrimSpace(c.History.Path) != "" {
		if c.History.Path, err = ExpandPath(c.History.Path); err != nil {
			return fmt.Errorf("history.path: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeFeed() {
	c.Feed.BaseURL = strings.TrimRight(strings.TrimSpace(c.Feed.BaseURL), "/")
	c.Feed.ImageBaseURL = strings.TrimRight(strings.TrimSpace(c.Feed.ImageBaseURL), "/")
	if c.Feed.BaseURL == "" {
		c.Feed.BaseURL = defaultFeedBaseURL
	}
	if c.Feed.ImageBaseURL == "" {
		c.Feed.ImageBaseURL = defaultImageBaseURL
	}
	if c.Feed.TimeoutSeconds <= 0 {
		c.Feed.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.Feed.Hours == 0 {
		c.Feed.Hours = defaultEPGHours
		c.Warnings = append(c.Warnings, fmt.Sprintf("feed.hours not set, fetching default EPG window of %d hours", defaultEPGHours))
	}
	if c.Feed.Hours > maxEPGHours {
		c.Warnings = append(c.Warnings, fmt.Sprintf("feed.hours cannot exceed %d, using the maximum", maxEPGHours))
		c.Feed.Hours = maxEPGHours
	}
}

func (c *Config) normalizeDevice() {
	c.Device.ID = strings.TrimSpace(c.Device.ID)
	if c.Device.ID == "" {
		c.Device.ID = uuid.NewString()
	}
	c.Device.Latitude = quantize(c.Device.Latitude)
	c.Device.Longitude = quantize(c.Device.Longitude)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// CoordinatesSupplied reports whether the caller set device coordinates.
// Zero/zero means "use the values embedded in the feed's stream URLs".
func (d Device) CoordinatesSupplied() bool {
	return d.Latitude != 0 || d.Longitude != 0
}

// quantize rounds a coordinate to four decimal places, matching the
// precision the stream server expects.
func quantize(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
