package app

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// Run запускает интерактивный цикл: одна команда на строку, Ctrl+C для выхода.
func (a *App) Run(ctx context.Context) error {
	log.Println("Application started")
	printHelp()

	scanner := bufio.NewScanner(os.Stdin)

	// Увеличим буфер на случай длинных строк
	const maxLineSize = 1024 * 1024
	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down application")
			return nil
		default:
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("stdin error: %w", err)
				}
				// EOF
				log.Println("stdin closed")
				return nil
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			a.handleLine(ctx, line)
		}
	}
}

func (a *App) handleLine(ctx context.Context, line string) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "add":
		a.handleAdd(ctx, rest)
	case "search":
		videoID, query := splitVideoFilter(rest)
		a.handleSearch(ctx, query, videoID)
	case "ask":
		videoID, question := splitVideoFilter(rest)
		a.handleAsk(ctx, question, videoID)
	case "delete":
		a.handleDelete(ctx, rest)
	case "list":
		a.handleList(ctx)
	case "help":
		printHelp()
	default:
		log.Printf("❌ Unknown command: %s", cmd)
		printHelp()
	}
}

func (a *App) handleAdd(ctx context.Context, target string) {
	if target == "" {
		log.Println("Usage: add <video-url | subtitle-file>")
		return
	}

	var result StoreResult
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		result = a.StoreFile(ctx, target)
	} else {
		result = a.StoreForSearch(ctx, target)
	}

	if !result.Success {
		log.Printf("❌ %s", result.Error)
		return
	}
	log.Printf("✅ Indexed %s: %d chunks from %d segments",
		result.VideoID, result.ChunksStored, result.OriginalSegmentCount)
}

func (a *App) handleSearch(ctx context.Context, query, videoID string) {
	if query == "" {
		log.Println("Usage: search [video=<id>] <query>")
		return
	}

	results, err := a.Search(ctx, query, a.cfg.TopK, videoID)
	if err != nil {
		log.Printf("❌ Search error: %v", err)
		return
	}
	if len(results) == 0 {
		log.Println("🔍 Nothing found")
		return
	}

	log.Printf("🔍 Found %d relevant chunks:", len(results))
	for i, r := range results {
		log.Printf("   %d. [%s @ %.0fs] (similarity: %.2f)", i+1, r.Metadata.VideoID, r.Metadata.Start, r.Similarity)
		log.Printf("      %s", r.Text)
	}
}

func (a *App) handleAsk(ctx context.Context, question, videoID string) {
	if question == "" {
		log.Println("Usage: ask [video=<id>] <question>")
		return
	}

	log.Println("🤖 Thinking...")
	answer, err := a.Ask(ctx, question, videoID)
	if err != nil {
		log.Printf("❌ LLM error: %v", err)
		return
	}
	log.Printf("\n%s\n", answer)
}

func (a *App) handleDelete(ctx context.Context, videoID string) {
	if videoID == "" {
		log.Println("Usage: delete <video-id>")
		return
	}
	if err := a.Delete(ctx, videoID); err != nil {
		log.Printf("❌ Delete error: %v", err)
		return
	}
	log.Printf("✅ Deleted %s", videoID)
}

func (a *App) handleList(ctx context.Context) {
	videos, err := a.List(ctx)
	if err != nil {
		log.Printf("❌ List error: %v", err)
		return
	}
	if len(videos) == 0 {
		log.Println("No videos indexed yet")
		return
	}
	log.Printf("📚 %d indexed videos:", len(videos))
	for _, v := range videos {
		log.Printf("   %s  chunks=%d segments=%d  %s", v.VideoID, v.ChunkCount, v.SegmentCount, v.URL)
	}
}

// splitVideoFilter отрезает необязательный префикс "video=<id>" от запроса
func splitVideoFilter(s string) (videoID, rest string) {
	first, tail, _ := strings.Cut(s, " ")
	if id, ok := strings.CutPrefix(first, "video="); ok {
		return id, strings.TrimSpace(tail)
	}
	return "", s
}

func printHelp() {
	log.Println("Commands:")
	log.Println("  add <video-url | file.vtt | file.md>  - fetch and index a transcript")
	log.Println("  search [video=<id>] <query>           - semantic search over indexed chunks")
	log.Println("  ask [video=<id>] <question>           - answer a question with LLM")
	log.Println("  delete <video-id>                     - remove a video from the index")
	log.Println("  list                                  - show indexed videos")
}
