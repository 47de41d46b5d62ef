package tmdb

import (
	"context"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ytget/movie-explorer/internal/model"
)

// Query describes one search action. In genre mode Text is the genre label;
// it is still sent as the query text alongside with_genres.
type Query struct {
	Text  string
	Genre bool
}

// searchResponse is the body of GET /search/movie
type searchResponse struct {
	Page         int           `json:"page"`
	TotalResults int           `json:"total_results"`
	TotalPages   int           `json:"total_pages"`
	Results      []model.Movie `json:"results"`
}

// Search runs a title or genre search and returns the results exactly as
// received
func (c *Client) Search(ctx context.Context, q Query) ([]model.Movie, error) {
	var resp searchResponse
	if err := c.getJSON(ctx, SearchMoviePath, c.searchParams(q), &resp); err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"query":   q.Text,
		"genre":   q.Genre,
		"results": len(resp.Results),
		"total":   resp.TotalResults,
	}).Info("Search completed")

	if resp.Results == nil {
		return []model.Movie{}, nil
	}
	return resp.Results, nil
}

// searchParams builds the query parameters (without api_key) for a search
func (c *Client) searchParams(q Query) url.Values {
	params := url.Values{}
	params.Set(ParamQuery, q.Text)
	if q.Genre {
		id, known := model.LookupGenreID(q.Text)
		if !known {
			id = model.DefaultGenreID
			c.logger.WithFields(logrus.Fields{
				"genre":    q.Text,
				"fallback": id,
			}).Warn("Unknown genre, using default genre id")
		}
		params.Set(ParamWithGenres, strconv.Itoa(id))
	}
	return params
}
