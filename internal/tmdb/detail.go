package tmdb

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ytget/movie-explorer/internal/model"
)

// Movie fetches the detail record for a TMDB movie id
func (c *Client) Movie(ctx context.Context, id int) (*model.MovieDetail, error) {
	if id <= 0 {
		return nil, fmt.Errorf("tmdb: invalid movie id %d", id)
	}

	var detail model.MovieDetail
	if err := c.getJSON(ctx, fmt.Sprintf(MoviePathFormat, id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ResolveTitle strips the year suffix from a display string, searches for
// the remaining title and returns the first result. Records that share a
// title are not disambiguated.
func (c *Client) ResolveTitle(ctx context.Context, display string) (*model.Movie, error) {
	title := model.LookupTitle(display)

	results, err := c.Search(ctx, Query{Text: title})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		c.logger.WithField("title", title).Info("Title re-resolution found nothing")
		return nil, ErrNoResults
	}
	first := results[0]
	return &first, nil
}

// PosterURL returns the CDN URL for a poster path
func (c *Client) PosterURL(posterPath string) string {
	if !strings.HasPrefix(posterPath, "/") {
		posterPath = "/" + posterPath
	}
	return c.imageBaseURL + "/" + c.posterSize + posterPath
}

// Poster downloads the poster for posterPath and scales it to
// PosterWidth x PosterHeight
func (c *Client) Poster(ctx context.Context, posterPath string) (image.Image, error) {
	if strings.TrimSpace(posterPath) == "" {
		return nil, fmt.Errorf("tmdb: empty poster path")
	}

	posterURL := c.PosterURL(posterPath)
	log := c.logger.WithField("url", posterURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, posterURL, nil)
	if err != nil {
		return nil, fmt.Errorf("poster request build: %w", err)
	}

	started := time.Now()
	resp, err := c.currentHTTPClient().Do(req)
	if err != nil {
		log.WithError(err).Warn("Poster request failed")
		return nil, fmt.Errorf("poster request %s: %w", posterURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Warn("Poster CDN returned non-success status")
		return nil, &StatusError{URL: posterURL, StatusCode: resp.StatusCode}
	}

	img, err := decodePoster(resp.Body)
	if err != nil {
		log.WithError(err).Warn("Poster decode failed")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"elapsed": time.Since(started).String(),
	}).Debug("Poster fetched")
	return img, nil
}
