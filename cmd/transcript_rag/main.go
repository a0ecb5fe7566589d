package main

import (
	"log"
	"os"
	"path/filepath"

	"transcript_rag/internal/cli"
	"transcript_rag/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// Загружаем .env (опционально)
	_ = godotenv.Load()

	// Загружаем конфиг
	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Создаём директорию для данных
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}

	// Вычисляем пути к файлам БД
	cfg.DBFile = filepath.Join(cfg.DataDir, "transcripts.gob.gz")
	cfg.CatalogFile = filepath.Join(cfg.DataDir, "catalog.db")

	cli.Execute(&cfg)
}
