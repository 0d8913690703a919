package config

import (
	"fmt"
	"os"
	"strings"
)

// LoadAISummary reads a precomputed summary to pass through to the report.
// An empty path or a whitespace-only file yields an empty summary.
func LoadAISummary(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading summary: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
