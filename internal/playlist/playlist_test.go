package playlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderEmpty(t *testing.T) {
	b := NewBuilder()
	if got := string(b.Render()); got != "#EXTM3U\n" {
		t.Fatalf("empty playlist = %q", got)
	}
}

func TestRenderEntry(t *testing.T) {
	b := NewBuilder()
	b.Add(Entry{
		TVGName:    "Test Channel",
		TVGID:      "test-channel.plutotv",
		TVGLogo:    "https://images.example.com/logo.png",
		GroupTitle: "News + Opinion",
		URL:        "https://stream.example.com/master.m3u8?sid=101",
	})

	got := string(b.Render())
	want := "#EXTM3U\n" +
		"\n" +
		`#EXTINF:-1 tvg-name="Test Channel" tvg-id="test-channel.plutotv" tvg-logo="https://images.example.com/logo.png" group-title="News + Opinion",Test Channel` + "\n" +
		"https://stream.example.com/master.m3u8?sid=101\n"
	if got != want {
		t.Fatalf("playlist mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPreservesOrder(t *testing.T) {
	b := NewBuilder()
	b.Add(Entry{TVGName: "First", URL: "https://a.example.com"})
	b.Add(Entry{TVGName: "Second", URL: "https://b.example.com"})

	got := string(b.Render())
	first := strings.Index(got, "First")
	second := strings.Index(got, "Second")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("entries out of order:\n%s", got)
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
}

func TestWriteFile(t *testing.T) {
	b := NewBuilder()
	b.Add(Entry{TVGName: "Only", TVGID: "only.plutotv", URL: "https://x.example.com"})

	path := filepath.Join(t.TempDir(), "plutotv.m3u8")
	if err := b.WriteFile(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "#EXTM3U\n") {
		t.Fatalf("missing header:\n%s", data)
	}
	if !strings.Contains(string(data), "only.plutotv") {
		t.Fatalf("missing entry:\n%s", data)
	}
}
