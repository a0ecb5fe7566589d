package transcript

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"disabled", errors.New("Subtitles are DISABLED for this video"), ErrTranscriptsDisabled},
		{"no transcript", errors.New("no transcript available"), ErrTranscriptNotFound},
		{"not found", errors.New("caption track Not Found"), ErrTranscriptNotFound},
		{"unavailable", errors.New("This video is unavailable"), ErrSourceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("Classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassify_UnknownPassesThrough(t *testing.T) {
	orig := errors.New("connection reset by peer")
	got := Classify(orig)
	if got != orig {
		t.Errorf("unknown error should pass through unchanged, got %v", got)
	}
}

func TestClassify_TypedPassesThrough(t *testing.T) {
	// Уже типизированная ошибка не переклассифицируется по подстроке
	wrapped := fmt.Errorf("%w: video was not found", ErrSourceUnavailable)
	got := Classify(wrapped)
	if !errors.Is(got, ErrSourceUnavailable) {
		t.Errorf("typed error reclassified: %v", got)
	}
}

func TestClassify_Nil(t *testing.T) {
	if got := Classify(nil); got != nil {
		t.Errorf("Classify(nil) = %v, want nil", got)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidReference, "Invalid YouTube URL. Could not extract video ID."},
		{ErrTranscriptsDisabled, "Transcripts are disabled for this video."},
		{ErrTranscriptNotFound, "No transcript found for this video. It may not have captions available."},
		{ErrSourceUnavailable, "The video is unavailable. It may have been removed or is private."},
	}
	for _, tt := range tests {
		if got := Message(tt.err); got != tt.want {
			t.Errorf("Message(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}

	got := Message(errors.New("boom"))
	want := "An unexpected error occurred: boom"
	if got != want {
		t.Errorf("Message(unknown) = %q, want %q", got, want)
	}
}
