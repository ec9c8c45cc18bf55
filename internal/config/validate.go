package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// hexColorPattern accepts 3 to 6 hex digits with an optional leading '#'.
var hexColorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{3,6}$`)

// Validate ensures the configuration is usable. Violations here are fatal
// and must be reported before any network or file activity.
func (c *Config) Validate() error {
	if err := c.validateFeed(); err != nil {
		return err
	}
	if err := c.validatePicons(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFeed() error {
	if c.Feed.Hours < 1 || c.Feed.Hours > maxEPGHours {
		return fmt.Errorf("feed.hours must be between 1 and %d", maxEPGHours)
	}
	for name, value := range map[string]string{
		"feed.base_url":       c.Feed.BaseURL,
		"feed.image_base_url": c.Feed.ImageBaseURL,
	} {
		parsed, err := url.Parse(value)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, value)
		}
	}
	return nil
}

func (c *Config) validatePicons() error {
	for name, value := range map[string]string{
		"picons.color1": c.Picons.Color1,
		"picons.color2": c.Picons.Color2,
	} {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if !hexColorPattern.MatchString(value) {
			return fmt.Errorf("%s: %q is not a valid hex color", name, value)
		}
	}
	if c.Picons.Color2 != "" && c.Picons.Color1 == "" {
		return errors.New("picons.color2 requires picons.color1")
	}
	if c.Picons.Angle < -1 || c.Picons.Angle > 360 {
		return fmt.Errorf("picons.angle must be between 0 and 360 (or -1 to derive), got %d", c.Picons.Angle)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
