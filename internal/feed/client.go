package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"plutoiptv/internal/logging"
)

// HTTPDoer describes the HTTP client used by the feed client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Window is the UTC time span a feed request covers.
type Window struct {
	Start time.Time
	Stop  time.Time
}

// NewWindow builds the request window now .. now+hours. The feed endpoint
// expects instants aligned to the hour.
func NewWindow(now time.Time, hours int) Window {
	return Window{Start: now, Stop: now.Add(time.Duration(hours) * time.Hour)}
}

// Client fetches the channel feed and channel logos.
type Client struct {
	baseURL      string
	imageBaseURL string
	client       HTTPDoer
	logger       *slog.Logger
}

// NewClient constructs a feed client. A nil doer falls back to a plain
// http.Client with the given timeout.
func NewClient(baseURL, imageBaseURL string, timeout time.Duration, doer HTTPDoer, logger *slog.Logger) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		client:       doer,
		logger:       logging.NewComponentLogger(logger, "feed"),
	}
}

// Fetch downloads the channel feed for the window and returns the raw
// response bytes. A failure here is fatal for the run.
func (c *Client) Fetch(ctx context.Context, window Window) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/v2/channels?start=%s&stop=%s",
		c.baseURL, escapeInstant(window.Start), escapeInstant(window.Stop))

	c.logger.Debug("fetching channel feed", logging.String("url", endpoint))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch channel feed: %w", err)
	}
	return body, nil
}

// FetchLogo downloads a channel logo, selecting the solid single-color
// variant when mono is set. Failures are scoped to the calling channel.
func (c *Client) FetchLogo(ctx context.Context, channelID string, mono bool) ([]byte, error) {
	variant := "colorLogoPNG"
	if mono {
		variant = "solidLogoPNG"
	}
	endpoint := fmt.Sprintf("%s/channels/%s/%s.png", c.imageBaseURL, url.PathEscape(channelID), variant)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch logo for channel %s: %w", channelID, err)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

// escapeInstant renders a window bound as the feed endpoint expects:
// "YYYY-MM-DD HH:00:00.000+0000" in UTC, percent-escaped
// (2020-03-24%2021%3A00%3A00.000%2B0000).
func escapeInstant(t time.Time) string {
	instant := t.UTC().Format("2006-01-02 15") + ":00:00.000+0000"
	// QueryEscape leaves spaces as '+'; the endpoint wants %20. The
	// escaped string contains no other '+' (the literal one became %2B).
	return strings.ReplaceAll(url.QueryEscape(instant), "+", "%20")
}
