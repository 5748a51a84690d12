package youtube

import (
	"net/url"
	"strings"
)

const watchURLPrefix = "https://www.youtube.com/watch?v="

// VideoURL returns the canonical watch URL for a video ID.
func VideoURL(videoID string) string {
	return watchURLPrefix + videoID
}

// ResolveVideoID normalizes a user-supplied string into a canonical video ID.
//
// It accepts a bare 11-character ID, a watch URL (youtube.com/watch?v=...),
// a short link (youtu.be/...), or an embed URL (youtube.com/embed/...).
// A well-formed bare ID is accepted as-is; the function never contacts
// YouTube to check that the video exists.
func ResolveVideoID(input string) (string, error) {
	if isVideoID(input) {
		return input, nil
	}

	u, err := url.Parse(input)
	if err != nil {
		return "", ErrInvalidInput
	}

	switch u.Hostname() {
	case "www.youtube.com", "youtube.com":
		// The embed path carries the ID as a path segment, not a query
		// parameter, so it has to be checked first.
		if strings.HasPrefix(u.Path, "/embed/") {
			if id := pathSegment(u.Path, 2); id != "" {
				return id, nil
			}
			return "", ErrInvalidInput
		}
		if id := u.Query().Get("v"); id != "" {
			return id, nil
		}
		return "", ErrInvalidInput
	case "youtu.be":
		if id := strings.TrimPrefix(u.Path, "/"); id != "" {
			return id, nil
		}
		return "", ErrInvalidInput
	}

	return "", ErrInvalidInput
}

// isVideoID reports whether s already has the canonical ID shape:
// exactly 11 alphanumeric characters.
func isVideoID(s string) bool {
	if len(s) != 11 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}

func pathSegment(path string, n int) string {
	parts := strings.Split(path, "/")
	if n >= len(parts) {
		return ""
	}
	return parts[n]
}
