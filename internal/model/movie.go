package model

import (
	"fmt"
	"strings"
)

// YearLength is the number of leading release_date characters used as the year
const YearLength = 4

// TitleSeparator separates the title from the year in a display string
const TitleSeparator = " ("

// Movie is a single movie summary as returned by the TMDB search endpoint.
// ID is zero for records that did not come from the API (e.g. seed list
// entries without an id).
type Movie struct {
	ID          int     `json:"id,omitempty"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path,omitempty"`
	GenreIDs    []int   `json:"genre_ids,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
}

// Genre is a TMDB genre entry
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetail is the richer record returned by GET /movie/{id}
type MovieDetail struct {
	Movie
	Runtime int     `json:"runtime,omitempty"`
	Tagline string  `json:"tagline,omitempty"`
	Genres  []Genre `json:"genres,omitempty"`
}

// Year returns the first four characters of the release date.
// Only meaningful while release_date is ISO formatted (YYYY-MM-DD).
func (m Movie) Year() string {
	if len(m.ReleaseDate) < YearLength {
		return m.ReleaseDate
	}
	return m.ReleaseDate[:YearLength]
}

// DisplayString returns "Title (Year)" as rendered in the result list
func (m Movie) DisplayString() string {
	return fmt.Sprintf("%s%s%s)", m.Title, TitleSeparator, m.Year())
}

// HasPoster reports whether the record carries a poster path
func (m Movie) HasPoster() bool {
	return strings.TrimSpace(m.PosterPath) != ""
}

// LookupTitle strips the " (year)" suffix from a display string.
// Everything from the first " (" onwards is dropped.
func LookupTitle(display string) string {
	if idx := strings.Index(display, TitleSeparator); idx >= 0 {
		return display[:idx]
	}
	return display
}

// Summary returns the detail pane text for the record
func (m Movie) Summary() string {
	var b strings.Builder
	b.WriteString("Title: " + m.Title + "\n")
	b.WriteString("Release Date: " + m.ReleaseDate + "\n")
	b.WriteString("Overview: " + m.Overview)
	return b.String()
}

// Summary returns the detail pane text with the fields only the detail
// endpoint provides appended when present
func (d MovieDetail) Summary() string {
	var b strings.Builder
	b.WriteString(d.Movie.Summary())
	if d.Tagline != "" {
		b.WriteString("\nTagline: " + d.Tagline)
	}
	if d.Runtime > 0 {
		fmt.Fprintf(&b, "\nRuntime: %d min", d.Runtime)
	}
	if d.VoteAverage > 0 {
		fmt.Fprintf(&b, "\nRating: %.1f/10", d.VoteAverage)
	}
	return b.String()
}
