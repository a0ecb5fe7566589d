package cli

import (
	"fmt"
	"os"

	"transcript_rag/internal/app"
	"transcript_rag/internal/config"

	"github.com/spf13/cobra"
)

func newAddCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "add <video-url | subtitle-file>",
		Short: "Fetch a transcript and index it for search",
		Long: `Fetches the transcript for a YouTube URL (or parses a local .vtt/.md
transcript file), splits it into overlapping chunks and stores them in the
vector index.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			target := args[0]
			var result app.StoreResult
			if info, statErr := os.Stat(target); statErr == nil && !info.IsDir() {
				result = a.StoreFile(cmd.Context(), target)
			} else {
				result = a.StoreForSearch(cmd.Context(), target)
			}

			if !result.Success {
				return fmt.Errorf("%s", result.Error)
			}
			fmt.Printf("Indexed %s: %d chunks from %d segments\n",
				result.VideoID, result.ChunksStored, result.OriginalSegmentCount)
			return nil
		},
	}
}
