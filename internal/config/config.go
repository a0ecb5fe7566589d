package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	DataDir          string        `env:"DATA_DIR" envDefault:"./data"`
	OllamaURL        string        `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaModel      string        `env:"OLLAMA_MODEL" envDefault:"gemma2:2b"`
	OllamaEmbedModel string        `env:"OLLAMA_EMBED_MODEL" envDefault:"nomic-embed-text"`
	Collection       string        `env:"COLLECTION" envDefault:"youtube_transcripts"`
	ChunkSize        int           `env:"CHUNK_SIZE" envDefault:"500"`
	ChunkOverlap     int           `env:"CHUNK_OVERLAP" envDefault:"50"`
	TopK             int           `env:"TOP_K" envDefault:"5"`
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"20s"`
	Langs            []string      `env:"LANGS" envDefault:"en" envSeparator:","`
	MaxTokens        int           `env:"MAX_TOKENS" envDefault:"512"`
	Temperature      float64       `env:"TEMPERATURE" envDefault:"0.2"`
	DBFile           string
	CatalogFile      string
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}
