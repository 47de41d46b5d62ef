package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the search buttons and the result list to the TMDB client, renders
// result lists, movie details and posters, and hosts the settings dialog.
// All UI strings are localized via Localization.
