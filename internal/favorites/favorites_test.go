package favorites

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "favorites.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	return path
}

func TestLoadParsesSlugs(t *testing.T) {
	path := writeList(t, "# my channels\ncats-24-7\n\n  spotlight  \n# trailing comment\n")
	l, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}
	if !l.Contains("cats-24-7") || !l.Contains("spotlight") {
		t.Fatal("expected listed slugs to match")
	}
	if l.Contains("unlisted") {
		t.Fatal("unlisted slug matched")
	}
}

func TestNilListAdmitsEverything(t *testing.T) {
	l, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l != nil {
		t.Fatal("empty path should return nil list")
	}
	if !l.Contains("anything") {
		t.Fatal("nil list must admit every slug")
	}
	if l.Unused() != nil {
		t.Fatal("nil list has no unused slugs")
	}
}

func TestUnusedReportsUnmatchedSlugs(t *testing.T) {
	path := writeList(t, "matched\ntypo-slug\nanother-typo\n")
	l, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	l.Contains("matched")
	l.Contains("not-on-list")

	want := []string{"another-typo", "typo-slug"}
	if got := l.Unused(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Unused = %v, want %v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
