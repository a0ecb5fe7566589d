package transcript

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Fetcher загружает субтитры видео через Innertube API.
type Fetcher struct {
	client *http.Client
	langs  []string
}

func NewFetcher(timeout time.Duration, langs []string) *Fetcher {
	if len(langs) == 0 {
		langs = []string{"en"}
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		langs:  langs,
	}
}

// Fetch извлекает video ID из URL, загружает транскрипт и упаковывает
// результат в FetchResult. Ошибки не пробрасываются наружу - вызывающий
// код проверяет Success.
func (f *Fetcher) Fetch(ctx context.Context, videoURL string) FetchResult {
	videoID, ok := ExtractVideoID(videoURL)
	if !ok {
		return failure(ErrInvalidReference)
	}

	segments, err := f.FetchSegments(ctx, videoID)
	if err != nil {
		return failure(Classify(err))
	}

	return FetchResult{
		Success:    true,
		Transcript: JoinText(segments),
		Segments:   segments,
	}
}

// FetchSegments загружает сегменты субтитров по video ID.
// Возвращает типизированные ошибки из errors.go.
func (f *Fetcher) FetchSegments(ctx context.Context, videoID string) ([]Segment, error) {
	playerResp, err := f.fetchPlayerResponse(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if playerResp.PlayabilityStatus != nil {
		switch playerResp.PlayabilityStatus.Status {
		case "", "OK":
		case "LOGIN_REQUIRED", "UNPLAYABLE", "ERROR":
			reason := playerResp.PlayabilityStatus.Reason
			if reason == "" {
				reason = playerResp.PlayabilityStatus.Status
			}
			return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, reason)
		}
	}

	if playerResp.Captions == nil {
		return nil, ErrTranscriptsDisabled
	}
	tracks := playerResp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, ErrTranscriptNotFound
	}

	track := pickBestTrack(tracks, f.langs)
	segments, err := f.fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, ErrTranscriptNotFound
	}
	return segments, nil
}

func failure(err error) FetchResult {
	return FetchResult{Error: Message(err)}
}
