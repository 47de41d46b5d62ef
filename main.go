package main

import (
	"errors"
	"net/http"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/ytget/movie-explorer/internal/catalog"
	"github.com/ytget/movie-explorer/internal/config"
	"github.com/ytget/movie-explorer/internal/tmdb"
	"github.com/ytget/movie-explorer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.movie-explorer"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	if err := config.LoadEnvFiles(); err != nil {
		logrus.WithError(err).Fatal("Failed to load .env file")
	}

	logger := setupLogger()
	logger.WithField("version", version).Info("Movie Explorer starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewMovieTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	} else {
		logger.WithError(err).Debug("App icon not available")
	}

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	if settings.GetAPIKey() == "" {
		logger.Warnf("No API key configured; set %s or enter it in Settings", config.EnvAPIKey)
	}

	client := tmdb.NewClient(tmdb.Options{
		APIKey:       settings.GetAPIKey(),
		BaseURL:      settings.GetBaseURL(),
		ImageBaseURL: settings.GetImageBaseURL(),
		PosterSize:   settings.GetPosterSize(),
		HTTPClient:   &http.Client{Timeout: settings.GetRequestTimeout()},
		Logger:       logger,
	})

	catalogPath := settings.GetCatalogPath()
	movies, err := catalog.LoadFile(catalogPath)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		logger.WithError(err).Warn("Seed list not found, starting with an empty list")
	case err != nil:
		logger.WithError(err).WithField("path", catalogPath).Fatal("Failed to load seed list")
	default:
		logger.WithField("movies", len(movies)).Info("Seed list loaded")
	}

	// Create and setup UI
	root := ui.NewRootUI(myWindow, settings, client, client, logger)
	root.ShowCatalog(movies)

	// Show and run
	myWindow.ShowAndRun()
}

// setupLogger builds the application logger from LOG_LEVEL
func setupLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(config.LogLevel())
	if err != nil {
		logger.WithError(err).Warn("Invalid log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
