package classify

import (
	"reflect"
	"sort"
	"testing"
)

func TestClassifyPrimaryBranch(t *testing.T) {
	cases := []struct {
		seriesType  string
		topCategory string
		subGenre    string
		want        []string
	}{
		{"film", "Film", "", []string{"Movie"}},
		{"tv", "TV", "", []string{"Series", "TV Show"}},
		{"tv", "Music", "", []string{"Music"}},
		{"live", "News", "", []string{"News"}},
		{"tv", "Sports", "", []string{"Sports"}},
		// "Other" bucket resolves through the series type.
		{"film", "Weird Category", "", []string{"Movie"}},
		{"live", "Weird Category", "", []string{"News"}},
		{"tv", "Weird Category", "", []string{"Series"}},
	}
	for _, tc := range cases {
		got := Classify(tc.seriesType, tc.topCategory, tc.subGenre)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Classify(%q, %q, %q) = %v, want %v",
				tc.seriesType, tc.topCategory, tc.subGenre, got, tc.want)
		}
	}
}

func TestClassifyHobbiesAndGames(t *testing.T) {
	got := Classify("tv", "TV", "Hobbies & Games")
	want := []string{"Game show / Quiz / Contest", "Series", "TV Show"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TV hobbies: got %v want %v", got, want)
	}

	got = Classify("tv", "Sports", "Hobbies & Games")
	if !contains(got, "Gaming") {
		t.Fatalf("non-TV hobbies should add Gaming, got %v", got)
	}
}

func TestClassifySubGenreTables(t *testing.T) {
	// Film-typed programmes use the film table.
	got := Classify("film", "Film", "Sci-Fi & Fantasy")
	if !contains(got, "Science fiction") {
		t.Fatalf("film sub-genre lookup failed: %v", got)
	}

	// Everything else uses the series table, even with the same sub-genre key.
	got = Classify("tv", "TV", "Crime")
	if !contains(got, "Crime drama") {
		t.Fatalf("series sub-genre lookup failed: %v", got)
	}
	got = Classify("film", "Film", "Crime")
	if !contains(got, "Crime") || contains(got, "Crime drama") {
		t.Fatalf("film Crime should map to Crime, got %v", got)
	}

	// A miss is not an error; the primary label still comes through.
	got = Classify("tv", "TV", "No Such Genre")
	want := []string{"Series", "TV Show"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unknown sub-genre: got %v want %v", got, want)
	}
}

func TestClassifyGoldenTables(t *testing.T) {
	// Every table row yields a non-empty set containing its own label.
	for sub, label := range filmSubGenres {
		got := Classify("film", "Film", sub)
		if len(got) == 0 || !contains(got, label) {
			t.Errorf("film table %q: got %v, want label %q", sub, got, label)
		}
	}
	for sub, label := range seriesSubGenres {
		got := Classify("tv", "TV", sub)
		if len(got) == 0 || !contains(got, label) {
			t.Errorf("series table %q: got %v, want label %q", sub, got, label)
		}
	}
	for top, labels := range primaryCategories {
		got := Classify("tv", top, "")
		for _, label := range labels {
			if !contains(got, label) {
				t.Errorf("primary table %q: got %v, want label %q", top, got, label)
			}
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	first := Classify("film", "Film", "Action & Adventure")
	second := Classify("film", "Film", "Action & Adventure")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced %v then %v", first, second)
	}
	if !sort.StringsAreSorted(first) {
		t.Fatalf("result not sorted: %v", first)
	}
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
