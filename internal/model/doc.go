package model

// Package model defines domain data structures used across the app: movie
// records as returned by TMDB, the fixed genre mapping, result sets shown in
// the list, and lookup tasks with their status enum.
