package feedcache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"plutoiptv/internal/feed"
	"plutoiptv/internal/fileutil"
	"plutoiptv/internal/logging"
)

// FreshnessWindow is how long a snapshot stays usable. An age of exactly
// the window is still fresh.
const FreshnessWindow = 1800 * time.Second

// Fetcher downloads a raw feed snapshot for a window.
type Fetcher interface {
	Fetch(ctx context.Context, window feed.Window) ([]byte, error)
}

// Cache manages the feed snapshot file.
type Cache struct {
	path   string
	logger *slog.Logger
	now    func() time.Time
}

// New constructs a cache around the given snapshot path.
func New(path string, logger *slog.Logger) *Cache {
	return &Cache{
		path:   path,
		logger: logging.NewComponentLogger(logger, "feedcache"),
		now:    time.Now,
	}
}

// Fresh reports whether the snapshot exists and is inside the freshness
// window. The content is deliberately not inspected.
func (c *Cache) Fresh() bool {
	info, err := os.Stat(c.path)
	if err != nil {
		return false
	}
	age := c.now().Sub(info.ModTime())
	return age <= FreshnessWindow
}

// Load reads and decodes the snapshot on disk.
func (c *Cache) Load() ([]feed.Channel, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}
	return feed.Decode(data)
}

// Refresh removes any stale snapshot, fetches a new one for the window,
// and persists it. A fetch failure leaves no cache file at all.
func (c *Cache) Refresh(ctx context.Context, fetcher Fetcher, window feed.Window) ([]feed.Channel, error) {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("remove stale cache: %w", err)
	}

	data, err := fetcher.Fetch(ctx, window)
	if err != nil {
		return nil, err
	}

	channels, err := feed.Decode(data)
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(c.path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write cache: %w", err)
	}

	c.logger.Info("wrote feed snapshot",
		logging.String(logging.FieldPath, c.path),
		logging.Int(logging.FieldCount, len(channels)))
	return channels, nil
}

// Ensure returns the cached snapshot when fresh, refreshing it otherwise.
func (c *Cache) Ensure(ctx context.Context, fetcher Fetcher, window feed.Window) ([]feed.Channel, error) {
	if c.Fresh() {
		c.logger.Info("using cached feed, it's under 30 minutes old",
			logging.String(logging.FieldPath, c.path))
		return c.Load()
	}
	return c.Refresh(ctx, fetcher, window)
}
