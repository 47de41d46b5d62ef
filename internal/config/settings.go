package config

import (
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIKey         = "tmdb_api_key"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyCatalogPath    = "catalog_path"
	KeyLanguage       = "app_language"
)

// Environment variables that override stored preferences
const (
	EnvAPIKey       = "TMDB_API_KEY"
	EnvBaseURL      = "TMDB_BASE_URL"
	EnvImageBaseURL = "TMDB_IMAGE_BASE_URL"
	EnvPosterSize   = "TMDB_POSTER_SIZE"
	EnvCatalogPath  = "MOVIE_CATALOG_PATH"
	EnvLogLevel     = "LOG_LEVEL"
)

// Default values
const (
	DefaultBaseURL        = "https://api.themoviedb.org/3"
	DefaultImageBaseURL   = "https://image.tmdb.org/t/p"
	DefaultPosterSize     = "w342"
	DefaultRequestTimeout = 15
	DefaultCatalogPath    = "list.JSON"
	DefaultLanguage       = "system"
	DefaultLogLevel       = "info"

	MinRequestTimeout = 1
	MaxRequestTimeout = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIKey returns the TMDB API key. TMDB_API_KEY wins over the stored value.
func (s *Settings) GetAPIKey() string {
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key
	}
	return strings.TrimSpace(s.app.Preferences().String(KeyAPIKey))
}

// SetAPIKey stores the TMDB API key in preferences
func (s *Settings) SetAPIKey(key string) {
	s.app.Preferences().SetString(KeyAPIKey, strings.TrimSpace(key))
}

// APIKeyFromEnv reports whether the key is supplied by the environment
func (s *Settings) APIKeyFromEnv() bool {
	return strings.TrimSpace(os.Getenv(EnvAPIKey)) != ""
}

// GetBaseURL returns the TMDB API base URL
func (s *Settings) GetBaseURL() string {
	return strings.TrimRight(getEnvOrDefault(EnvBaseURL, DefaultBaseURL), "/")
}

// GetImageBaseURL returns the poster CDN base URL
func (s *Settings) GetImageBaseURL() string {
	return strings.TrimRight(getEnvOrDefault(EnvImageBaseURL, DefaultImageBaseURL), "/")
}

// GetPosterSize returns the CDN size token used for posters
func (s *Settings) GetPosterSize() string {
	return getEnvOrDefault(EnvPosterSize, DefaultPosterSize)
}

// GetRequestTimeout returns the timeout applied to each user action
func (s *Settings) GetRequestTimeout() time.Duration {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeout(DefaultRequestTimeout)
		return DefaultRequestTimeout * time.Second
	}
	return time.Duration(value) * time.Second
}

// SetRequestTimeout sets the timeout in seconds, clamped to 1..120
func (s *Settings) SetRequestTimeout(seconds int) {
	if seconds < MinRequestTimeout {
		seconds = MinRequestTimeout
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetCatalogPath returns the seed list location
func (s *Settings) GetCatalogPath() string {
	if path := os.Getenv(EnvCatalogPath); path != "" {
		return path
	}
	path := s.app.Preferences().String(KeyCatalogPath)
	if path == "" {
		return DefaultCatalogPath
	}
	return path
}

// SetCatalogPath sets the seed list location
func (s *Settings) SetCatalogPath(path string) {
	s.app.Preferences().SetString(KeyCatalogPath, strings.TrimSpace(path))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
