package classify

import "sort"

// Classify maps a (series type, top category, sub-genre) triple to EPG
// category labels. It is pure and total: unknown inputs fall back to a
// series-type label rather than failing. The result is deduplicated and
// sorted alphabetically so emission order is reproducible.
func Classify(seriesType, topCategory, subGenre string) []string {
	labels := make(map[string]struct{})
	add := func(values ...string) {
		for _, v := range values {
			labels[v] = struct{}{}
		}
	}

	if primary, ok := primaryCategories[topCategory]; ok {
		add(primary...)
	} else {
		switch seriesType {
		case SeriesTypeFilm:
			add("Movie")
		case SeriesTypeLive:
			add("News")
		default:
			add("Series")
		}
	}

	if subGenre == "Hobbies & Games" {
		switch topCategory {
		case "TV", "Entertainment":
			add("Game show / Quiz / Contest")
		default:
			add("Gaming")
		}
	}

	table := seriesSubGenres
	if seriesType == SeriesTypeFilm {
		table = filmSubGenres
	}
	if label, ok := table[subGenre]; ok {
		add(label)
	}

	out := make([]string, 0, len(labels))
	for label := range labels {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}
