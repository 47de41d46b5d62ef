package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HomePrefix marks a path relative to the user's home directory
const HomePrefix = "~"

// ExpandHome replaces a leading "~" with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != HomePrefix && !strings.HasPrefix(path, HomePrefix+"/") && !strings.HasPrefix(path, HomePrefix+`\`) {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, HomePrefix)), nil
}

// FileExists reports whether path exists and is a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ResolveDataFile returns the location of a data file. Absolute and
// home-relative paths are returned as is; relative paths are looked up in the
// working directory first and then next to the executable. When nothing is
// found the working-directory candidate is returned.
func ResolveDataFile(path string) (string, error) {
	expanded, err := ExpandHome(strings.TrimSpace(path))
	if err != nil {
		return "", err
	}
	if expanded == "" {
		return "", fmt.Errorf("empty path")
	}
	if filepath.IsAbs(expanded) {
		return expanded, nil
	}

	if FileExists(expanded) {
		return expanded, nil
	}

	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), expanded)
		if FileExists(candidate) {
			return candidate, nil
		}
	}

	return expanded, nil
}
