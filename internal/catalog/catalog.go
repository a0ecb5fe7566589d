package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Video - запись об одном проиндексированном видео
type Video struct {
	VideoID      string
	URL          string
	SegmentCount int
	ChunkCount   int
	IndexedAt    string
}

// Catalog ведёт SQLite-реестр проиндексированных видео. Сами векторы живут
// в vector store; каталог нужен только для наблюдаемости (команда list).
type Catalog struct {
	db *sql.DB
}

func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: init schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS videos (
		video_id      TEXT PRIMARY KEY,
		url           TEXT NOT NULL,
		segment_count INTEGER NOT NULL,
		chunk_count   INTEGER NOT NULL,
		indexed_at    TEXT NOT NULL
	)`)
	return err
}

// Upsert записывает или обновляет запись о видео.
func (c *Catalog) Upsert(ctx context.Context, v Video) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := c.db.ExecContext(ctx, `INSERT INTO videos
		(video_id, url, segment_count, chunk_count, indexed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(video_id) DO UPDATE SET
			url = excluded.url,
			segment_count = excluded.segment_count,
			chunk_count = excluded.chunk_count,
			indexed_at = excluded.indexed_at`,
		v.VideoID, v.URL, v.SegmentCount, v.ChunkCount, now)
	if err != nil {
		return fmt.Errorf("catalog: upsert %s: %w", v.VideoID, err)
	}
	return nil
}

// List возвращает все видео, новые первыми.
func (c *Catalog) List(ctx context.Context) ([]Video, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT video_id, url, segment_count, chunk_count, indexed_at
		FROM videos ORDER BY indexed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	defer rows.Close()

	var videos []Video
	for rows.Next() {
		var v Video
		if err := rows.Scan(&v.VideoID, &v.URL, &v.SegmentCount, &v.ChunkCount, &v.IndexedAt); err != nil {
			return nil, fmt.Errorf("catalog: scan: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// Remove удаляет запись о видео.
func (c *Catalog) Remove(ctx context.Context, videoID string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM videos WHERE video_id = ?`, videoID)
	if err != nil {
		return fmt.Errorf("catalog: remove %s: %w", videoID, err)
	}
	return nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}
