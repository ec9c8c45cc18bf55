package pipeline

import (
	"testing"
	"time"
)

func TestFormatFeedTimeReinterpretsWallClock(t *testing.T) {
	clk := newClock(time.FixedZone("TST", -5*3600))
	got, err := clk.FormatFeedTime("2020-03-24T21:00:00.000Z")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "20200324210000 -0500" {
		t.Fatalf("got %q, want wall clock kept with local offset", got)
	}
}

func TestFormatFeedTimeWithoutFraction(t *testing.T) {
	clk := newClock(time.UTC)
	got, err := clk.FormatFeedTime("2020-03-24T21:00:00Z")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "20200324210000 +0000" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatFeedTimeRejectsGarbage(t *testing.T) {
	clk := newClock(time.UTC)
	if _, err := clk.FormatFeedTime("yesterday"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewClockDefaultsToLocal(t *testing.T) {
	clk := newClock(nil)
	if clk.loc != time.Local {
		t.Fatal("nil location should default to time.Local")
	}
}

func TestAirDate(t *testing.T) {
	if got := airDate("2024-01-15T00:00:00.000Z"); got != "20240115" {
		t.Fatalf("airDate = %q", got)
	}
	if got := airDate("unknown"); got != "" {
		t.Fatalf("unparseable airDate = %q, want empty", got)
	}
}

func TestLengthMinutes(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{1800000, "30.0"},
		{5400000, "90.0"},
		{1790000, "29.0"},
		{0, "0.0"},
	}
	for _, tc := range cases {
		if got := lengthMinutes(tc.ms); got != tc.want {
			t.Errorf("lengthMinutes(%d) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}
