package transcript

import "regexp"

// Распознаёт watch, share-link и embed формы YouTube URL.
var videoIDRe = regexp.MustCompile(`(?:v=|/v/|youtu\.be/|/embed/)([A-Za-z0-9_-]{11})`)

// ExtractVideoID extracts the 11-character video ID from a YouTube URL.
func ExtractVideoID(url string) (string, bool) {
	m := videoIDRe.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}
