package chunker

import (
	"reflect"
	"strings"
	"testing"

	"transcript_rag/internal/transcript"
)

func seg(text string, start, dur float64) transcript.Segment {
	return transcript.Segment{Text: text, Start: start, Duration: dur}
}

func TestSplit_Empty(t *testing.T) {
	if got := Split(nil, 500, 50); len(got) != 0 {
		t.Fatalf("expected no chunks for empty input, got %d", len(got))
	}
	if got := Split([]transcript.Segment{}, 500, 50); len(got) != 0 {
		t.Fatalf("expected no chunks for empty slice, got %d", len(got))
	}
}

func TestSplit_ClosesOnOverflow(t *testing.T) {
	segments := []transcript.Segment{
		seg("hello", 0, 1),
		seg("world", 1, 1),
		seg("foo", 2, 1),
	}

	chunks := Split(segments, 8, 0)
	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}

	first := chunks[0]
	if first.Text != "hello" {
		t.Errorf("first chunk text = %q, want %q", first.Text, "hello")
	}
	if first.Start != 0 {
		t.Errorf("first chunk start = %v, want 0", first.Start)
	}

	last := chunks[len(chunks)-1]
	if last.End != 3 {
		t.Errorf("last chunk end = %v, want 3 (start 2 + duration 1)", last.End)
	}
}

func TestSplit_CoversAllSegmentText(t *testing.T) {
	segments := []transcript.Segment{
		seg("the quick brown", 0, 2),
		seg("fox jumps over", 2, 2),
		seg("the lazy dog", 4, 2),
		seg("and runs away", 6, 2),
		seg("into the forest", 8, 2),
	}

	chunks := Split(segments, 30, 10)
	if len(chunks) == 0 {
		t.Fatal("expected chunks for non-empty input")
	}

	var all strings.Builder
	for _, ch := range chunks {
		all.WriteString(ch.Text)
		all.WriteByte(' ')
	}
	joined := all.String()
	for _, s := range segments {
		if !strings.Contains(joined, s.Text) {
			t.Errorf("segment text %q not covered by any chunk", s.Text)
		}
	}
}

func TestSplit_OverlapCarriesTrailingSegments(t *testing.T) {
	segments := []transcript.Segment{
		seg("aaaa", 0, 1),
		seg("bbbb", 1, 1),
		seg("cccc", 2, 1),
		seg("dddd", 3, 1),
	}

	chunks := Split(segments, 10, 5)

	wantTexts := []string{"aaaa bbbb", "bbbb cccc", "cccc dddd"}
	if len(chunks) != len(wantTexts) {
		t.Fatalf("expected %d chunks, got %d: %+v", len(wantTexts), len(chunks), chunks)
	}
	for i, ch := range chunks {
		if ch.Text != wantTexts[i] {
			t.Errorf("chunk %d text = %q, want %q", i, ch.Text, wantTexts[i])
		}
	}

	// Start чанка = start самого раннего сегмента в overlap
	wantStarts := []float64{0, 1, 2}
	for i, ch := range chunks {
		if ch.Start != wantStarts[i] {
			t.Errorf("chunk %d start = %v, want %v", i, ch.Start, wantStarts[i])
		}
	}

	// Длительность overlap-сегментов учитывается в обоих граничных чанках
	for i, ch := range chunks {
		if ch.Duration != 2 {
			t.Errorf("chunk %d duration = %v, want 2", i, ch.Duration)
		}
	}
}

func TestSplit_OverlapBounded(t *testing.T) {
	segments := []transcript.Segment{
		seg("one two three", 0, 1),
		seg("four five six", 1, 1),
		seg("seven eight nine", 2, 1),
		seg("ten eleven twelve", 3, 1),
	}
	const overlap = 10

	chunks := Split(segments, 25, overlap)
	for i := 1; i < len(chunks); i++ {
		prev, cur := chunks[i-1].Text, chunks[i].Text
		// Ищем самый длинный хвост prev, являющийся префиксом cur
		common := 0
		for n := 1; n <= len(prev) && n <= len(cur); n++ {
			if strings.HasSuffix(prev, cur[:n]) {
				common = n
			}
		}
		if common > overlap {
			t.Errorf("chunks %d/%d overlap by %d chars, want <= %d", i-1, i, common, overlap)
		}
	}
}

func TestSplit_OversizedSegmentFormsOwnChunk(t *testing.T) {
	long := strings.Repeat("x", 40)
	segments := []transcript.Segment{
		seg("short", 0, 1),
		seg(long, 1, 5),
		seg("end", 6, 1),
	}

	chunks := Split(segments, 10, 0)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d: %+v", len(chunks), chunks)
	}
	if chunks[1].Text != long {
		t.Errorf("oversized segment should form its own chunk, got %q", chunks[1].Text)
	}
	if chunks[1].End != 6 {
		t.Errorf("oversized chunk end = %v, want 6", chunks[1].End)
	}
}

func TestSplit_EndNeverBeforeStart(t *testing.T) {
	segments := []transcript.Segment{
		seg("alpha beta gamma", 0, 3),
		seg("delta epsilon", 3, 2),
		seg("zeta eta theta iota", 5, 4),
		seg("kappa", 9, 1),
	}

	for _, overlap := range []int{0, 5, 15} {
		chunks := Split(segments, 20, overlap)
		for i, ch := range chunks {
			if ch.End < ch.Start {
				t.Errorf("overlap=%d chunk %d: end %v < start %v", overlap, i, ch.End, ch.Start)
			}
		}
	}
}

func TestSplit_OverlapLargerThanChunkSizeStillAdvances(t *testing.T) {
	var segments []transcript.Segment
	for i := 0; i < 6; i++ {
		segments = append(segments, seg("aaa", float64(i), 1))
	}

	// overlap >= maxChunkSize: seed ограничен maxChunkSize, каждый
	// сегмент потребляется ровно один раз
	chunks := Split(segments, 8, 100)
	if len(chunks) != 5 {
		t.Fatalf("expected 5 chunks, got %d: %+v", len(chunks), chunks)
	}

	again := Split(segments, 8, 100)
	if !reflect.DeepEqual(chunks, again) {
		t.Error("Split is not deterministic for identical input")
	}
}

func TestSplit_Deterministic(t *testing.T) {
	segments := []transcript.Segment{
		seg("one two three four", 0, 2),
		seg("five six seven", 2, 2),
		seg("eight nine ten", 4, 2),
	}

	a := Split(segments, 20, 8)
	b := Split(segments, 20, 8)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Split not deterministic:\n%+v\n%+v", a, b)
	}
}
