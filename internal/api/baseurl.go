package api

import (
	"os"
	"strings"
)

const defaultBaseURL = "http://localhost:5001"

// BaseURL resolves the API base URL: explicit override first, then the
// NUSH_API_URL environment variable, then the local development default.
// A trailing slash is always stripped.
func BaseURL(override string) string {
	if v := strings.TrimSpace(override); v != "" {
		return strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv("NUSH_API_URL")); v != "" {
		return strings.TrimRight(v, "/")
	}
	return defaultBaseURL
}
