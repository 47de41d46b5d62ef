package tmdb

import (
	"context"
	"image"

	"github.com/ytget/movie-explorer/internal/model"
)

// Searcher defines the search side of the client.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]model.Movie, error)
}

// DetailFetcher defines the detail side of the client.
type DetailFetcher interface {
	// Movie fetches the detail record by TMDB id
	Movie(ctx context.Context, id int) (*model.MovieDetail, error)

	// ResolveTitle re-resolves a list display string through the search
	// endpoint and returns the first hit
	ResolveTitle(ctx context.Context, display string) (*model.Movie, error)

	// Poster fetches and scales the poster for a poster path
	Poster(ctx context.Context, posterPath string) (image.Image, error)
}
