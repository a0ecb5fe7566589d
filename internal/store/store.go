package store

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"transcript_rag/internal/chunker"

	"github.com/philippgille/chromem-go"
)

type Config struct {
	DBFile     string // путь к export-файлу; пусто = только in-memory
	Collection string
}

// Metadata - логические поля, сохраняемые вместе с каждым чанком
type Metadata struct {
	VideoID      string
	VideoURL     string
	Start        float64
	Duration     float64
	SegmentIndex int
}

// SearchResult - результат векторного поиска
type SearchResult struct {
	Text       string
	Metadata   Metadata
	Similarity float32
	Distance   float32 // косинусная дистанция, 1 - Similarity
}

// VectorStore хранит чанки транскриптов в chromem-go коллекции.
type VectorStore struct {
	cfg           Config
	db            *chromem.DB
	embeddingFunc chromem.EmbeddingFunc
}

func New(cfg Config, embeddingFunc chromem.EmbeddingFunc) *VectorStore {
	return &VectorStore{
		cfg:           cfg,
		db:            chromem.NewDB(),
		embeddingFunc: embeddingFunc,
	}
}

// Load восстанавливает БД из export-файла (если он есть) и гарантирует
// наличие коллекции.
func (s *VectorStore) Load() error {
	if s.cfg.DBFile != "" {
		if _, err := os.Stat(s.cfg.DBFile); err == nil {
			if err := s.db.ImportFromFile(s.cfg.DBFile, "", s.cfg.Collection); err != nil {
				return fmt.Errorf("failed to import DB: %w", err)
			}
		}
	}
	_, err := s.db.GetOrCreateCollection(s.cfg.Collection, map[string]string{}, s.embeddingFunc)
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

// Store persists one document per chunk. Returns the underlying error instead
// of a bare bool so callers can log the cause before downgrading to a
// pass/fail result shape.
func (s *VectorStore) Store(ctx context.Context, videoID string, chunks []chunker.Chunk, videoURL string) error {
	if len(chunks) == 0 {
		return nil
	}
	coll := s.db.GetCollection(s.cfg.Collection, s.embeddingFunc)
	if coll == nil {
		return fmt.Errorf("collection %q not found", s.cfg.Collection)
	}

	docs := make([]chromem.Document, 0, len(chunks))
	for i, ch := range chunks {
		docs = append(docs, chromem.Document{
			ID:      itemID(videoID, i, ch.Text),
			Content: ch.Text,
			Metadata: map[string]string{
				"video_id":      videoID,
				"video_url":     videoURL,
				"start":         strconv.FormatFloat(ch.Start, 'f', -1, 64),
				"duration":      strconv.FormatFloat(ch.Duration, 'f', -1, 64),
				"segment_index": strconv.Itoa(i),
			},
		})
	}

	if err := coll.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	return s.persist()
}

// Search выполняет векторный поиск, опционально ограниченный одним видео.
// Результаты упорядочены от наиболее релевантного.
func (s *VectorStore) Search(ctx context.Context, query string, limit int, videoID string) ([]SearchResult, error) {
	coll := s.db.GetCollection(s.cfg.Collection, s.embeddingFunc)
	if coll == nil {
		return nil, fmt.Errorf("collection %q not found", s.cfg.Collection)
	}

	// chromem требует nResults <= числа документов в коллекции
	n := limit
	if c := coll.Count(); n > c {
		n = c
	}
	if n <= 0 {
		return nil, nil
	}

	var where map[string]string
	if videoID != "" {
		where = map[string]string{"video_id": videoID}
	}

	results, err := coll.Query(ctx, query, n, where, nil)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	searchResults := make([]SearchResult, 0, len(results))
	for _, r := range results {
		searchResults = append(searchResults, SearchResult{
			Text: r.Content,
			Metadata: Metadata{
				VideoID:      r.Metadata["video_id"],
				VideoURL:     r.Metadata["video_url"],
				Start:        parseFloat(r.Metadata["start"]),
				Duration:     parseFloat(r.Metadata["duration"]),
				SegmentIndex: parseInt(r.Metadata["segment_index"]),
			},
			Similarity: r.Similarity,
			Distance:   1 - r.Similarity,
		})
	}
	return searchResults, nil
}

// Delete удаляет все чанки видео.
func (s *VectorStore) Delete(ctx context.Context, videoID string) error {
	coll := s.db.GetCollection(s.cfg.Collection, s.embeddingFunc)
	if coll == nil {
		return fmt.Errorf("collection %q not found", s.cfg.Collection)
	}
	if err := coll.Delete(ctx, map[string]string{"video_id": videoID}, nil); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return s.persist()
}

// Count возвращает число сохранённых чанков.
func (s *VectorStore) Count() int {
	coll := s.db.GetCollection(s.cfg.Collection, s.embeddingFunc)
	if coll == nil {
		return 0
	}
	return coll.Count()
}

func (s *VectorStore) persist() error {
	if s.cfg.DBFile == "" {
		return nil
	}
	if err := s.db.ExportToFile(s.cfg.DBFile, true, "", s.cfg.Collection); err != nil {
		return fmt.Errorf("export DB: %w", err)
	}
	return nil
}

// itemID генерирует уникальный ID документа: <video_id>_<seq>_<hash8>
func itemID(videoID string, seq int, text string) string {
	hash := sha256.Sum256([]byte(videoID + text))
	return fmt.Sprintf("%s_%d_%x", videoID, seq, hash[:4])
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
