package app

import (
	"context"

	"transcript_rag/internal/catalog"
	"transcript_rag/internal/store"
)

// Search ищет релевантные чанки. videoID == "" - поиск по всем видео.
// Не зависит от загрузки транскриптов.
func (a *App) Search(ctx context.Context, query string, limit int, videoID string) ([]store.SearchResult, error) {
	if limit <= 0 {
		limit = a.cfg.TopK
	}
	return a.store.Search(ctx, query, limit, videoID)
}

// Delete удаляет все чанки видео из индекса и запись из каталога.
func (a *App) Delete(ctx context.Context, videoID string) error {
	if err := a.store.Delete(ctx, videoID); err != nil {
		return err
	}
	if a.catalog != nil {
		return a.catalog.Remove(ctx, videoID)
	}
	return nil
}

// List возвращает проиндексированные видео из каталога.
func (a *App) List(ctx context.Context) ([]catalog.Video, error) {
	if a.catalog == nil {
		return nil, nil
	}
	return a.catalog.List(ctx)
}
