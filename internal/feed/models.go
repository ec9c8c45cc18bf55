package feed

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Channel is one channel record from the feed. ID and Slug are stable and
// unique across a snapshot.
type Channel struct {
	ID           string     `json:"_id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Number       int        `json:"number"`
	Category     string     `json:"category"`
	Summary      string     `json:"summary"`
	IsStitched   bool       `json:"isStitched"`
	Stitched     Stitched   `json:"stitched"`
	ColorLogoPNG Logo       `json:"colorLogoPNG"`
	SolidLogoPNG Logo       `json:"solidLogoPNG"`
	Timelines    []Timeline `json:"timelines"`
}

// Stitched carries the ad-inserted playback URLs for a channel.
type Stitched struct {
	URLs []StitchedURL `json:"urls"`
}

// StitchedURL is a single playback URL variant.
type StitchedURL struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Logo is a reference to a channel logo image.
type Logo struct {
	Path string `json:"path"`
}

// Timeline is one scheduled airing of an episode.
type Timeline struct {
	Start   string  `json:"start"`
	Stop    string  `json:"stop"`
	Title   string  `json:"title"`
	Episode Episode `json:"episode"`
}

// Episode is the episode metadata nested inside a timeline.
type Episode struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	SubGenre    string `json:"subGenre"`
	Rating      string `json:"rating"`
	Number      int    `json:"number"`
	// Duration is in milliseconds.
	Duration   int64  `json:"duration"`
	FirstAired string `json:"firstAired"`
	Series     Series `json:"series"`
}

// Series identifies the programme form: "film", "live", or a series-like
// value such as "tv" or "series".
type Series struct {
	Type string `json:"type"`
}

// Decode parses a raw feed snapshot into channel records.
func Decode(data []byte) ([]Channel, error) {
	var channels []Channel
	if err := json.Unmarshal(data, &channels); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return channels, nil
}

// StreamURL returns the first stitched playback URL, or "" when the
// channel has none.
func (c Channel) StreamURL() string {
	if len(c.Stitched.URLs) == 0 {
		return ""
	}
	return c.Stitched.URLs[0].URL
}

// LogoPath returns the solid/mono or full-color logo reference.
func (c Channel) LogoPath(mono bool) string {
	if mono {
		return c.SolidLogoPNG.Path
	}
	return c.ColorLogoPNG.Path
}
