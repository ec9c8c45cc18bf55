package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains output directory configuration. The picon directory is
// optional; an empty value disables picon synthesis.
type Paths struct {
	PlaylistDir string `toml:"playlist_dir"`
	CacheDir    string `toml:"cache_dir"`
	EPGDir      string `toml:"epg_dir"`
	LogDir      string `toml:"log_dir"`
	PiconDir    string `toml:"picon_dir"`
}

// Feed contains configuration for the Pluto.TV channel feed.
type Feed struct {
	BaseURL        string `toml:"base_url"`
	ImageBaseURL   string `toml:"image_base_url"`
	Hours          int    `toml:"hours"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Device contains the client identity sent to the stream server. Latitude
// and longitude are quantized to four decimal places; when both are zero
// the coordinates embedded in the feed's own stream URLs are reused.
type Device struct {
	ID        string  `toml:"id"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
}

// Picons contains picon synthesis configuration. Angle -1 derives the
// gradient rotation from the device id.
type Picons struct {
	Mono      bool   `toml:"mono"`
	Overwrite bool   `toml:"overwrite"`
	Color1    string `toml:"color1"`
	Color2    string `toml:"color2"`
	Angle     int    `toml:"angle"`
	Colorful  bool   `toml:"colorful"`
	Bright    bool   `toml:"bright"`
}

// Favorites contains the optional slug filter file.
type Favorites struct {
	Path string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// History contains configuration for the run history database.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Config encapsulates all configuration values for the generator.
type Config struct {
	Paths     Paths     `toml:"paths"`
	Feed      Feed      `toml:"feed"`
	Device    Device    `toml:"device"`
	Picons    Picons    `toml:"picons"`
	Favorites Favorites `toml:"favorites"`
	Logging   Logging   `toml:"logging"`
	History   History   `toml:"history"`

	// Warnings collects corrections applied during normalization (for
	// example an hours value clamped to the maximum) so the caller can
	// log them once a logger exists.
	Warnings []string `toml:"-"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/plutoiptv/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a file was actually found.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("plutoiptv.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories every run requires. The picon
// directory is handled separately because it is optional.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.PlaylistDir, c.Paths.CacheDir, c.Paths.EPGDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// EnsurePiconDir creates the picon directory when one is configured. A
// failure here only disables picon output, so the caller decides how to
// react.
func (c *Config) EnsurePiconDir() error {
	if strings.TrimSpace(c.Paths.PiconDir) == "" {
		return nil
	}
	if err := os.MkdirAll(c.Paths.PiconDir, 0o755); err != nil {
		return fmt.Errorf("create picon directory %q: %w", c.Paths.PiconDir, err)
	}
	return nil
}

// PiconsEnabled reports whether a picon directory is configured.
func (c *Config) PiconsEnabled() bool {
	return strings.TrimSpace(c.Paths.PiconDir) != ""
}

// PlaylistPath returns the playlist output file path.
func (c *Config) PlaylistPath() string { return filepath.Join(c.Paths.PlaylistDir, playlistFile) }

// CachePath returns the feed snapshot cache file path.
func (c *Config) CachePath() string { return filepath.Join(c.Paths.CacheDir, cacheFile) }

// EPGPath returns the EPG output file path.
func (c *Config) EPGPath() string { return filepath.Join(c.Paths.EPGDir, epgFile) }

// LogPath returns the log file path.
func (c *Config) LogPath() string { return filepath.Join(c.Paths.LogDir, logFile) }

// LockPath returns the lock file path guarding concurrent runs.
func (c *Config) LockPath() string { return filepath.Join(c.Paths.CacheDir, lockFile) }

// HistoryPath returns the run history database path.
func (c *Config) HistoryPath() string {
	if strings.TrimSpace(c.History.Path) != "" {
		return c.History.Path
	}
	return filepath.Join(c.Paths.LogDir, historyFile)
}

// CreateSample writes the embedded sample configuration to the given path.
func CreateSample(path string) error {
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// ExpandPath resolves tilde shortcuts and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
