package tmdb

// Package tmdb implements the remote side of the app: title and genre search
// against the TMDB search endpoint, identifier based detail lookup, title
// re-resolution for records without an id, and poster retrieval from the
// image CDN (decoded and scaled to the fixed display size).
