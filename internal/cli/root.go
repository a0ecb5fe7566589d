package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"transcript_rag/internal/app"
	"transcript_rag/internal/config"

	"github.com/spf13/cobra"
)

// Execute собирает дерево команд и запускает CLI.
func Execute(cfg *config.Config) {
	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "transcript_rag",
		Short: "Semantic search over video transcripts",
		Long: `transcript_rag fetches video transcripts, splits them into overlapping
chunks and indexes them in a local vector database for semantic search.
Run without a subcommand for an interactive session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			// Контекст с сигналами завершения
			ctx, stop := signal.NotifyContext(
				context.Background(),
				os.Interrupt,
				syscall.SIGTERM,
			)
			defer stop()

			return a.Run(ctx)
		},
	}

	rootCmd.PersistentFlags().IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "Maximum chunk size in characters")
	rootCmd.PersistentFlags().IntVar(&cfg.ChunkOverlap, "chunk-overlap", cfg.ChunkOverlap, "Overlap between consecutive chunks in characters")

	rootCmd.AddCommand(newAddCmd(cfg))
	rootCmd.AddCommand(newSearchCmd(cfg))
	rootCmd.AddCommand(newAskCmd(cfg))
	rootCmd.AddCommand(newDeleteCmd(cfg))
	rootCmd.AddCommand(newListCmd(cfg))

	return rootCmd
}

func newApp(cfg *config.Config) (*app.App, error) {
	a := app.New(cfg)
	if err := a.Init(); err != nil {
		return nil, err
	}
	return a, nil
}
