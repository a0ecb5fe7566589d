package transcript

import (
	"errors"
	"fmt"
	"strings"
)

// Типизированные ошибки загрузки транскрипта. Проверять через errors.Is.
var (
	ErrInvalidReference    = errors.New("invalid video URL")
	ErrTranscriptsDisabled = errors.New("transcripts disabled")
	ErrTranscriptNotFound  = errors.New("transcript not found")
	ErrSourceUnavailable   = errors.New("video unavailable")
)

var knownErrors = []error{
	ErrInvalidReference,
	ErrTranscriptsDisabled,
	ErrTranscriptNotFound,
	ErrSourceUnavailable,
}

// Classify maps an untyped upstream error onto the fetch error taxonomy by
// case-insensitive substring matching. Last-resort adapter only: errors that
// are already typed pass through unchanged, and anything unrecognized is
// returned as-is so the original message survives.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "disabled"):
		return fmt.Errorf("%w: %s", ErrTranscriptsDisabled, err)
	case strings.Contains(msg, "no transcript"), strings.Contains(msg, "not found"):
		return fmt.Errorf("%w: %s", ErrTranscriptNotFound, err)
	case strings.Contains(msg, "unavailable"):
		return fmt.Errorf("%w: %s", ErrSourceUnavailable, err)
	default:
		return err
	}
}

// Message возвращает текст ошибки для пользователя
func Message(err error) string {
	switch {
	case errors.Is(err, ErrInvalidReference):
		return "Invalid YouTube URL. Could not extract video ID."
	case errors.Is(err, ErrTranscriptsDisabled):
		return "Transcripts are disabled for this video."
	case errors.Is(err, ErrTranscriptNotFound):
		return "No transcript found for this video. It may not have captions available."
	case errors.Is(err, ErrSourceUnavailable):
		return "The video is unavailable. It may have been removed or is private."
	default:
		return fmt.Sprintf("An unexpected error occurred: %v", err)
	}
}
