package classify

// Series type values as they appear in the feed.
const (
	SeriesTypeFilm = "film"
	SeriesTypeLive = "live"
)

// primaryCategories maps the channel's top-level category to its base EPG
// labels. Top categories outside this table fall back to the series type.
var primaryCategories = map[string][]string{
	"Film":           {"Movie"},
	"Movies":         {"Movie"},
	"TV":             {"Series", "TV Show"},
	"Entertainment":  {"Series", "TV Show"},
	"Music":          {"Music"},
	"News":           {"News"},
	"News + Opinion": {"News"},
	"Sports":         {"Sports"},
	"Latino":         {"Series"},
}

// filmSubGenres refines film-typed programmes by feed sub-genre.
var filmSubGenres = map[string]string{
	"Action & Adventure": "Action/Adventure",
	"Classics":           "Classic",
	"Comedy":             "Comedy",
	"Crime":              "Crime",
	"Documentaries":      "Documentary",
	"Drama":              "Drama",
	"Family":             "Children",
	"Horror":             "Horror",
	"Indie Films":        "Indie",
	"Kids & Family":      "Children",
	"Music":              "Musical",
	"Romance":            "Romance",
	"Sci-Fi & Fantasy":   "Science fiction",
	"Thriller":           "Thriller",
	"Thrillers":          "Thriller",
	"Western":            "Western",
	"Westerns":           "Western",
}

// seriesSubGenres refines everything that is not film-typed.
var seriesSubGenres = map[string]string{
	"Animals":                    "Nature",
	"Anime":                      "Anime",
	"Cartoons":                   "Animation",
	"Children & Family":          "Children",
	"Cooking":                    "Cookery",
	"Crime":                      "Crime drama",
	"Crime Documentaries":        "True crime",
	"Documentaries":              "Documentary",
	"Drama":                      "Drama",
	"Game Shows":                 "Game show",
	"History":                    "History",
	"Home & DIY":                 "DIY",
	"Music":                      "Music",
	"Nature":                     "Nature",
	"News & Information":         "News magazine",
	"Paranormal":                 "Paranormal",
	"Reality":                    "Reality",
	"Science":                    "Science",
	"Sitcoms":                    "Sitcom",
	"Sports & Sports Highlights": "Sports",
	"Talk & Interview":           "Talk show",
	"Travel":                     "Travel",
	"True Crime":                 "True crime",
}
