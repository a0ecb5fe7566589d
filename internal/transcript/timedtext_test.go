package transcript

import "testing"

func TestParseTimedText(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="utf-8" ?>
<transcript>
  <text start="0.16" dur="2.35">hello world</text>
  <text start="2.51" dur="3.2">it&amp;#39;s a test</text>
  <text start="5.71" dur="1.0">multi
line</text>
  <text start="6.71" dur="0.5">   </text>
</transcript>`)

	segments, err := parseTimedText(data)
	if err != nil {
		t.Fatalf("parseTimedText error: %v", err)
	}

	if len(segments) != 3 {
		t.Fatalf("expected 3 segments (blank one skipped), got %d", len(segments))
	}

	if segments[0].Text != "hello world" {
		t.Errorf("segment 0 text = %q", segments[0].Text)
	}
	if segments[0].Start != 0.16 || segments[0].Duration != 2.35 {
		t.Errorf("segment 0 timing = (%v, %v), want (0.16, 2.35)", segments[0].Start, segments[0].Duration)
	}

	// YouTube двойное экранирование: &amp;#39; -> ' после двух проходов
	if segments[1].Text != "it's a test" {
		t.Errorf("segment 1 text = %q, want %q", segments[1].Text, "it's a test")
	}

	if segments[2].Text != "multi line" {
		t.Errorf("newline should become space, got %q", segments[2].Text)
	}
}

func TestParseTimedText_Invalid(t *testing.T) {
	if _, err := parseTimedText([]byte("not xml at all <<<")); err == nil {
		t.Error("expected error for malformed XML")
	}
}

func TestParseTimedText_Empty(t *testing.T) {
	segments, err := parseTimedText([]byte(`<transcript></transcript>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("expected no segments, got %d", len(segments))
	}
}

func TestPickBestTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "u1", LanguageCode: "de", Kind: "asr"},
		{BaseURL: "u2", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "u3", LanguageCode: "en", Kind: ""},
		{BaseURL: "u4", LanguageCode: "ru", Kind: ""},
	}

	// Ручной трек приоритетнее asr
	if got := pickBestTrack(tracks, []string{"en"}); got.BaseURL != "u3" {
		t.Errorf("want manual en track u3, got %s", got.BaseURL)
	}
	// Предпочитаемый язык без ручного трека
	if got := pickBestTrack(tracks, []string{"de"}); got.BaseURL != "u1" {
		t.Errorf("want asr de track u1, got %s", got.BaseURL)
	}
	// Нет предпочитаемого - любой английский (ручной выигрывает по порядку обхода)
	if got := pickBestTrack(tracks, []string{"fr"}); got.BaseURL != "u2" {
		t.Errorf("want first en track u2, got %s", got.BaseURL)
	}
}
