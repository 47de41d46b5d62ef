package model

// Genre names offered in the genre selector
const (
	GenreAction         = "Action"
	GenreComedy         = "Comedy"
	GenreDrama          = "Drama"
	GenreScienceFiction = "Science Fiction"
)

// DefaultGenreID is used for any genre name not present in the mapping (Action)
const DefaultGenreID = 28

// genreIDs maps genre labels to TMDB numeric genre identifiers
var genreIDs = map[string]int{
	GenreAction:         28,
	GenreComedy:         35,
	GenreDrama:          18,
	GenreScienceFiction: 878,
}

// GenreNames returns the supported genre labels in display order
func GenreNames() []string {
	return []string{GenreAction, GenreComedy, GenreDrama, GenreScienceFiction}
}

// LookupGenreID returns the TMDB id for a genre label and whether it was known
func LookupGenreID(name string) (int, bool) {
	id, ok := genreIDs[name]
	return id, ok
}

// GenreID returns the TMDB id for a genre label, falling back to DefaultGenreID
func GenreID(name string) int {
	if id, ok := LookupGenreID(name); ok {
		return id
	}
	return DefaultGenreID
}
