package chunker

import (
	"strings"

	"transcript_rag/internal/transcript"
)

// Chunk - упакованная группа сегментов с агрегированным таймингом
type Chunk struct {
	Text     string
	Start    float64
	End      float64
	Duration float64
}

// Split packs timed segments into chunks of at most maxChunkSize characters,
// seeding each following chunk with trailing segments of the previous one so
// that context survives chunk boundaries.
//
// A chunk closes when appending the next segment text (plus a joining space)
// would overflow maxChunkSize. The overlap seed is built by walking backward
// over the closed chunk's segments while the seed stays under overlapSize
// characters; those segments stay in the new chunk's folded set, so their
// duration counts toward both boundary chunks. The seed is additionally kept
// under maxChunkSize, so each loop iteration consumes exactly one input
// segment and the packing always advances, even for overlapSize >= maxChunkSize.
//
// Chunk.Start is the start of the earliest segment in the chunk (overlap
// included), Chunk.End is start+duration of the last folded segment,
// Chunk.Duration is the sum over all folded segments.
//
// Пустой вход -> пустой выход. Ошибок нет: форма сегментов - контракт вызывающего.
func Split(segments []transcript.Segment, maxChunkSize, overlapSize int) []Chunk {
	var chunks []Chunk
	var buf strings.Builder
	var folded []transcript.Segment
	var start float64

	for _, seg := range segments {
		add := len(seg.Text)
		if buf.Len() > 0 {
			add++ // разделяющий пробел
		}

		if buf.Len() > 0 && buf.Len()+add > maxChunkSize {
			chunks = append(chunks, closeChunk(buf.String(), start, folded))

			seed, kept := overlapSeed(folded, overlapSize, maxChunkSize)
			buf.Reset()
			buf.WriteString(seed)
			folded = kept
			if len(kept) > 0 {
				start = kept[0].Start
			}
		}

		if len(folded) == 0 {
			start = seg.Start
		}
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(seg.Text)
		folded = append(folded, seg)
	}

	if strings.TrimSpace(buf.String()) != "" {
		chunks = append(chunks, closeChunk(buf.String(), start, folded))
	}
	return chunks
}

func closeChunk(text string, start float64, folded []transcript.Segment) Chunk {
	var duration float64
	for _, s := range folded {
		duration += s.Duration
	}
	last := folded[len(folded)-1]
	return Chunk{
		Text:     strings.TrimSpace(text),
		Start:    start,
		End:      last.Start + last.Duration,
		Duration: duration,
	}
}

// overlapSeed walks backward over the folded segments and returns the seed
// text plus the segments it keeps. A segment is included only while the
// accumulated seed stays strictly under min(overlapSize, maxChunkSize);
// the first segment that would reach the limit is excluded.
func overlapSeed(folded []transcript.Segment, overlapSize, maxChunkSize int) (string, []transcript.Segment) {
	limit := overlapSize
	if limit > maxChunkSize {
		limit = maxChunkSize
	}

	total := 0
	i := len(folded)
	for i > 0 {
		n := len(folded[i-1].Text)
		if total > 0 {
			n++ // разделяющий пробел
		}
		if total+n >= limit {
			break
		}
		total += n
		i--
	}
	if i == len(folded) {
		return "", nil
	}

	kept := append([]transcript.Segment(nil), folded[i:]...)
	texts := make([]string, len(kept))
	for j, s := range kept {
		texts[j] = s.Text
	}
	return strings.Join(texts, " "), kept
}
