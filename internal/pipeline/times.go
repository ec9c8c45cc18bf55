package pipeline

import (
	"fmt"
	"strings"
	"time"
)

// xmltvTimeLayout is the programme timestamp format the guide uses.
const xmltvTimeLayout = "20060102150405 -0700"

// feedTimeLayouts cover the instants the feed ships, with the zone
// marker already stripped.
var feedTimeLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
}

// clock reinterprets feed wall-clock instants in a fixed location. The
// feed marks times as UTC but the guide convention is to present the
// same wall clock in the local zone.
type clock struct {
	loc *time.Location
}

func newClock(loc *time.Location) *clock {
	if loc == nil {
		loc = time.Local
	}
	return &clock{loc: loc}
}

// FormatFeedTime renders a feed instant as an XMLTV timestamp.
func (c *clock) FormatFeedTime(value string) (string, error) {
	t, err := c.parse(value)
	if err != nil {
		return "", err
	}
	return t.Format(xmltvTimeLayout), nil
}

func (c *clock) parse(value string) (time.Time, error) {
	trimmed := strings.TrimSuffix(value, "Z")
	var lastErr error
	for _, layout := range feedTimeLayouts {
		t, err := time.ParseInLocation(layout, trimmed, c.loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("parse feed time %q: %w", value, lastErr)
}

// airDate renders a firstAired instant as YYYYMMDD, or "" when the
// value does not parse.
func airDate(value string) string {
	trimmed := strings.TrimSuffix(value, "Z")
	for _, layout := range feedTimeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("20060102")
		}
	}
	return ""
}

// lengthMinutes renders a millisecond duration as whole minutes with one
// decimal place, e.g. 1800000 -> "30.0".
func lengthMinutes(durationMS int64) string {
	return fmt.Sprintf("%.1f", float64(durationMS/60000))
}
