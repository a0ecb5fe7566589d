package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"transcript_rag/internal/catalog"
	"transcript_rag/internal/chunker"
	"transcript_rag/internal/transcript"
)

// StoreResult - результат индексации одного видео
type StoreResult struct {
	Success              bool
	VideoID              string
	ChunksStored         int
	OriginalSegmentCount int
	Error                string
}

// StoreForSearch fetches the transcript for a video URL, packs it into
// overlapping chunks and stores them in the vector index. A fetch failure is
// propagated unchanged; chunking and storage are not attempted.
func (a *App) StoreForSearch(ctx context.Context, videoURL string) StoreResult {
	res := a.fetcher.Fetch(ctx, videoURL)
	if !res.Success {
		return StoreResult{Error: res.Error}
	}

	// Повторное извлечение ID идемпотентно: Fetch уже проверил URL
	videoID, _ := transcript.ExtractVideoID(videoURL)

	return a.storeSegments(ctx, videoID, videoURL, res.Segments)
}

// StoreFile индексирует локальный файл субтитров (.vtt) или
// markdown-транскрипт (.md) тем же путём chunk -> store.
func (a *App) StoreFile(ctx context.Context, path string) StoreResult {
	var (
		segments []transcript.Segment
		err      error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt":
		segments, err = transcript.ParseVTTFile(path)
	case ".md", ".markdown":
		segments, err = parseMarkdownFile(path)
	default:
		return StoreResult{Error: fmt.Sprintf("Unsupported file format: %s", filepath.Ext(path))}
	}
	if err != nil {
		return StoreResult{Error: fmt.Sprintf("Failed to parse %s: %v", filepath.Base(path), err)}
	}
	if len(segments) == 0 {
		return StoreResult{Error: fmt.Sprintf("No segments found in %s", filepath.Base(path))}
	}

	sourceID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return a.storeSegments(ctx, sourceID, path, segments)
}

func (a *App) storeSegments(ctx context.Context, videoID, sourceURL string, segments []transcript.Segment) StoreResult {
	chunks := chunker.Split(segments, a.cfg.ChunkSize, a.cfg.ChunkOverlap)
	log.Printf("📦 %s: %d segments -> %d chunks", videoID, len(segments), len(chunks))

	if err := a.store.Store(ctx, videoID, chunks, sourceURL); err != nil {
		log.Printf("❌ Failed to store chunks for %s: %v", videoID, err)
		return StoreResult{
			VideoID: videoID,
			Error:   "Failed to store transcript chunks in vector database.",
		}
	}

	a.recordVideo(ctx, videoID, sourceURL, len(segments), len(chunks))

	return StoreResult{
		Success:              true,
		VideoID:              videoID,
		ChunksStored:         len(chunks),
		OriginalSegmentCount: len(segments),
	}
}

// recordVideo пишет запись в каталог. Ошибка каталога не мешает индексации.
func (a *App) recordVideo(ctx context.Context, videoID, url string, segmentCount, chunkCount int) {
	if a.catalog == nil {
		return
	}
	err := a.catalog.Upsert(ctx, catalog.Video{
		VideoID:      videoID,
		URL:          url,
		SegmentCount: segmentCount,
		ChunkCount:   chunkCount,
	})
	if err != nil {
		log.Printf("⚠️  Failed to record video in catalog: %v", err)
	}
}

func parseMarkdownFile(path string) ([]transcript.Segment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return transcript.ParseMarkdown(string(content))
}
