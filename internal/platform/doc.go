package platform

// Package platform contains OS/platform integration: home directory
// expansion and locating data files next to the working directory or the
// executable.
