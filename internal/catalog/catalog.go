// Package catalog reads the local seed list of movies shown at startup.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ytget/movie-explorer/internal/model"
	"github.com/ytget/movie-explorer/internal/platform"
)

// ErrNotFound is returned when the seed list file does not exist
var ErrNotFound = errors.New("catalog file not found")

// LoadFile reads a JSON array of movie records from path.
// Only "parse succeeds" is checked; records are returned as written.
func LoadFile(path string) ([]model.Movie, error) {
	resolved, err := platform.ResolveDataFile(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path %q: %w", path, err)
	}

	f, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, resolved)
		}
		return nil, fmt.Errorf("open catalog %s: %w", resolved, err)
	}
	defer f.Close()

	movies, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", resolved, err)
	}
	return movies, nil
}

// Decode parses a JSON array of movie records
func Decode(r io.Reader) ([]model.Movie, error) {
	var movies []model.Movie
	if err := json.NewDecoder(r).Decode(&movies); err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []model.Movie{}
	}
	return movies, nil
}
