package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"transcript_rag/internal/catalog"
	"transcript_rag/internal/config"
	"transcript_rag/internal/store"
	"transcript_rag/internal/transcript"

	"github.com/philippgille/chromem-go"
)

type App struct {
	cfg     *config.Config
	fetcher Fetcher
	store   *store.VectorStore
	catalog *catalog.Catalog
}

// Fetcher загружает транскрипт по URL видео. В тестах подменяется заглушкой.
type Fetcher interface {
	Fetch(ctx context.Context, videoURL string) transcript.FetchResult
}

func New(cfg *config.Config) *App {
	// Initialize embedding function
	ollamaEmbeddingURL := cfg.OllamaURL + "/api"
	embeddingFunc := chromem.NewEmbeddingFuncOllama(cfg.OllamaEmbedModel, ollamaEmbeddingURL)

	return &App{
		cfg:     cfg,
		fetcher: transcript.NewFetcher(cfg.HTTPTimeout, cfg.Langs),
		store:   store.New(store.Config{DBFile: cfg.DBFile, Collection: cfg.Collection}, embeddingFunc),
	}
}

func (a *App) Init() error {
	// Ensure Ollama and models are available
	if err := ensureOllamaAndModels(a.cfg); err != nil {
		return fmt.Errorf("ollama model check failed: %w", err)
	}

	if err := a.store.Load(); err != nil {
		return fmt.Errorf("failed to load vector database: %w", err)
	}
	log.Printf("Vector store ready, %d chunks indexed", a.store.Count())

	if a.cfg.CatalogFile != "" {
		cat, err := catalog.Open(a.cfg.CatalogFile)
		if err != nil {
			return fmt.Errorf("failed to open catalog: %w", err)
		}
		a.catalog = cat
	}

	return nil
}

func (a *App) Close() error {
	if a.catalog != nil {
		return a.catalog.Close()
	}
	return nil
}

func ensureOllamaAndModels(cfg *config.Config) error {
	type ollamaPullRequest struct {
		Name   string `json:"name"`
		Stream bool   `json:"stream"`
	}

	// 1. Check if Ollama is running
	resp, err := http.Get(cfg.OllamaURL + "/api/tags")
	if err != nil || resp.StatusCode != 200 {
		return fmt.Errorf("ollama is not running or not reachable at %s", cfg.OllamaURL)
	}
	defer resp.Body.Close()

	// 2. Check if models exist
	models := []string{cfg.OllamaModel, cfg.OllamaEmbedModel}
	for _, model := range models {
		found := false
		resp, err := http.Get(cfg.OllamaURL + "/api/tags")
		if err == nil && resp.StatusCode == 200 {
			body, _ := io.ReadAll(resp.Body)
			if bytes.Contains(body, []byte(model)) {
				found = true
			}
		}
		if !found {
			log.Printf("Model %s not found, pulling...", model)
			pullReq := ollamaPullRequest{Name: model, Stream: false}
			b, _ := json.Marshal(pullReq)
			pullResp, err := http.Post(cfg.OllamaURL+"/api/pull", "application/json", bytes.NewBuffer(b))
			if err != nil {
				return fmt.Errorf("failed to pull model %s: %v", model, err)
			}
			defer pullResp.Body.Close()
			if pullResp.StatusCode != 200 {
				return fmt.Errorf("failed to pull model %s: status %d", model, pullResp.StatusCode)
			}
			log.Printf("Model %s pulled successfully", model)
		} else {
			log.Printf("Model %s is available", model)
		}
	}
	return nil
}
