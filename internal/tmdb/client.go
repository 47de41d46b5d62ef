package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Default endpoints and limits
const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	DefaultPosterSize   = "w342"
	DefaultHTTPTimeout  = 30 * time.Second

	// MaxPosterBytes caps the poster download size
	MaxPosterBytes = 10 << 20
)

// Query parameter names
const (
	ParamAPIKey     = "api_key"
	ParamQuery      = "query"
	ParamWithGenres = "with_genres"
)

// API paths
const (
	SearchMoviePath = "/search/movie"
	MoviePathFormat = "/movie/%d"
)

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	PosterSize   string
	HTTPClient   *http.Client
	Logger       *logrus.Logger
}

// Client talks to the TMDB API and image CDN
type Client struct {
	mu           sync.RWMutex
	apiKey       string
	baseURL      string
	imageBaseURL string
	posterSize   string
	httpClient   *http.Client
	logger       *logrus.Logger
}

// NewClient creates a new TMDB client
func NewClient(opts Options) *Client {
	c := &Client{
		apiKey:       strings.TrimSpace(opts.APIKey),
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		imageBaseURL: strings.TrimRight(opts.ImageBaseURL, "/"),
		posterSize:   strings.Trim(opts.PosterSize, "/"),
		httpClient:   opts.HTTPClient,
		logger:       opts.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.imageBaseURL == "" {
		c.imageBaseURL = DefaultImageBaseURL
	}
	if c.posterSize == "" {
		c.posterSize = DefaultPosterSize
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.SetOutput(io.Discard)
	}
	return c
}

// SetAPIKey replaces the API key used for subsequent requests
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = strings.TrimSpace(key)
}

// SetTimeout replaces the HTTP client timeout used for subsequent requests.
// The configured client is copied, not mutated.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hc := *c.httpClient
	hc.Timeout = timeout
	c.httpClient = &hc
}

func (c *Client) currentAPIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

func (c *Client) currentHTTPClient() *http.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.httpClient
}

// getJSON issues a GET against the API and decodes the JSON body into dest
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dest interface{}) error {
	apiKey := c.currentAPIKey()
	if apiKey == "" {
		return ErrMissingAPIKey
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set(ParamAPIKey, apiKey)

	reqURL := c.baseURL + path + "?" + params.Encode()
	logURL := redactURL(reqURL)
	log := c.logger.WithFields(logrus.Fields{"url": logURL})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("tmdb request build: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.currentHTTPClient().Do(req)
	if err != nil {
		log.WithError(err).Warn("TMDB request failed")
		return fmt.Errorf("tmdb request %s: %w", path, err)
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"elapsed": time.Since(started).String(),
	})

	if resp.StatusCode != http.StatusOK {
		log.Warn("TMDB returned non-success status")
		return &StatusError{URL: logURL, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		log.WithError(err).Warn("TMDB response decode failed")
		return fmt.Errorf("tmdb decode %s: %w", path, err)
	}

	log.Debug("TMDB request completed")
	return nil
}

// redactURL hides the API key before a URL is logged or surfaced
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has(ParamAPIKey) {
		q.Set(ParamAPIKey, "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
