package utils

import (
	"strings"
)

// JoinPath joins display path segments using forward slashes.
// It strips leading/trailing slashes from each segment, then prefixes the result with "/".
// Pattern:
//   - No segments = "/"
//   - Top-level entry = "/{drive}"
//   - Descendants = "/{drive}/{folder}/{file}" etc.
func JoinPath(parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		part = strings.Trim(part, "/")
		if part != "" {
			cleaned = append(cleaned, part)
		}
	}

	if len(cleaned) == 0 {
		return "/"
	}

	return "/" + strings.Join(cleaned, "/")
}

// SplitPath is the inverse of JoinPath. "/" and "." yield no segments.
func SplitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" || path == "." {
		return nil
	}
	return strings.Split(path, "/")
}
