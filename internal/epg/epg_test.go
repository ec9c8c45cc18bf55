package epg

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderHeaderAndRoot(t *testing.T) {
	b := NewBuilder("plutoiptv", "https://example.com/plutoiptv")
	data, err := b.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Fatalf("missing xml declaration:\n%s", out)
	}
	if !strings.Contains(out, `<!DOCTYPE tv SYSTEM "xmltv.dtd">`) {
		t.Fatalf("missing doctype:\n%s", out)
	}
	if !strings.Contains(out, `generator-info-name="plutoiptv"`) {
		t.Fatalf("missing generator attr:\n%s", out)
	}
}

func TestChannelsSortBeforeProgrammes(t *testing.T) {
	b := NewBuilder("plutoiptv", "https://example.com")
	b.AddProgramme(Programme{
		Channel: "zeta.plutotv",
		Start:   "20260829120000 -0400",
		Stop:    "20260829123000 -0400",
		Title:   "Late Show",
		Lang:    "en",
	})
	b.AddChannel(Channel{ID: "zeta.plutotv", DisplayName: "Zeta"})
	b.AddProgramme(Programme{
		Channel: "alpha.plutotv",
		Start:   "20260829120000 -0400",
		Stop:    "20260829123000 -0400",
		Title:   "Early Show",
		Lang:    "en",
	})
	b.AddChannel(Channel{ID: "alpha.plutotv", DisplayName: "Alpha"})

	data, err := b.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(data)

	lastChannel := strings.LastIndex(out, "<channel ")
	firstProgramme := strings.Index(out, "<programme ")
	if lastChannel < 0 || firstProgramme < 0 || lastChannel > firstProgramme {
		t.Fatalf("channels must precede programmes:\n%s", out)
	}
	if a, z := strings.Index(out, `id="alpha.plutotv"`), strings.Index(out, `id="zeta.plutotv"`); a > z {
		t.Fatalf("channels not sorted by id:\n%s", out)
	}
	if a, z := strings.Index(out, "Early Show"), strings.Index(out, "Late Show"); a > z {
		t.Fatalf("programmes not sorted by channel:\n%s", out)
	}
}

func TestProgrammeOptionalFields(t *testing.T) {
	b := NewBuilder("plutoiptv", "https://example.com")
	b.AddProgramme(Programme{
		Channel:       "test.plutotv",
		Start:         "20260829120000 -0400",
		Stop:          "20260829123000 -0400",
		Title:         "Full Episode",
		SubTitle:      "Pilot",
		Desc:          "The one where it starts.",
		Date:          "20240115",
		Categories:    []string{"Series", "Drama"},
		Lang:          "en",
		LengthMinutes: "30.0",
		EpisodeNum:    "101",
		Rating:        "TV-14",
	})
	data, err := b.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		`<sub-title lang="en">Pilot</sub-title>`,
		`<desc lang="en">The one where it starts.</desc>`,
		`<date>20240115</date>`,
		`<category lang="en">Drama</category>`,
		`<length units="minutes">30.0</length>`,
		`<episode-num system="onscreen">101</episode-num>`,
		`<rating system="US">`,
		`<value>TV-14</value>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in:\n%s", want, out)
		}
	}
}

func TestProgrammeOmitsEmptyFields(t *testing.T) {
	b := NewBuilder("plutoiptv", "https://example.com")
	b.AddProgramme(Programme{
		Channel: "test.plutotv",
		Start:   "20260829120000 -0400",
		Stop:    "20260829123000 -0400",
		Title:   "Bare",
		Lang:    "en",
	})
	data, err := b.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(data)
	for _, bad := range []string{"<sub-title", "<desc", "<date>", "<episode-num", "<rating"} {
		if strings.Contains(out, bad) {
			t.Fatalf("unexpected %s in:\n%s", bad, out)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	build := func() []byte {
		b := NewBuilder("plutoiptv", "https://example.com")
		b.AddChannel(Channel{ID: "b.plutotv", DisplayName: "B"})
		b.AddChannel(Channel{ID: "a.plutotv", DisplayName: "A"})
		b.AddProgramme(Programme{Channel: "b.plutotv", Start: "1", Stop: "2", Title: "x", Lang: "en"})
		data, err := b.Render()
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		return data
	}
	if !bytes.Equal(build(), build()) {
		t.Fatal("renders differ across identical builds")
	}
}

func TestFinalizeIdempotent(t *testing.T) {
	b := NewBuilder("plutoiptv", "https://example.com")
	b.AddChannel(Channel{ID: "a.plutotv", DisplayName: "A"})
	b.Finalize()
	b.Finalize()
	data, err := b.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := strings.Count(string(data), "<channel "); got != 1 {
		t.Fatalf("channel rendered %d times, want 1", got)
	}
}

func TestWriteFile(t *testing.T) {
	b := NewBuilder("plutoiptv", "https://example.com")
	b.AddChannel(Channel{ID: "a.plutotv", DisplayName: "A", Icon: "https://img.example.com/a.png"})
	path := filepath.Join(t.TempDir(), "plutotvepg.xml")
	if err := b.WriteFile(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `icon src="https://img.example.com/a.png"`) {
		t.Fatalf("missing icon:\n%s", data)
	}
}
