package playlist

import (
	"fmt"
	"strings"

	"plutoiptv/internal/fileutil"
)

// Entry is one channel record in the playlist.
type Entry struct {
	TVGName    string
	TVGID      string
	TVGLogo    string
	GroupTitle string
	URL        string
}

// Builder accumulates entries and renders them as an extended M3U
// document. Entries render in the order they were added.
type Builder struct {
	entries []Entry
}

// NewBuilder returns an empty playlist builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends one channel entry.
func (b *Builder) Add(e Entry) {
	b.entries = append(b.entries, e)
}

// Len reports how many entries have been added.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Render produces the playlist body.
func (b *Builder) Render() []byte {
	var sb strings.Builder
	sb.WriteString("#EXTM3U\n")
	for _, e := range b.entries {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "#EXTINF:-1 tvg-name=\"%s\" tvg-id=\"%s\" tvg-logo=\"%s\" group-title=\"%s\",%s\n",
			e.TVGName, e.TVGID, e.TVGLogo, e.GroupTitle, e.TVGName)
		sb.WriteString(e.URL)
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}

// WriteFile renders the playlist and writes it atomically.
func (b *Builder) WriteFile(path string) error {
	if err := fileutil.WriteFileAtomic(path, b.Render(), 0o644); err != nil {
		return fmt.Errorf("write playlist: %w", err)
	}
	return nil
}
