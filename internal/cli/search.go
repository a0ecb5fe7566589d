package cli

import (
	"fmt"
	"strings"

	"transcript_rag/internal/config"

	"github.com/spf13/cobra"
)

func newSearchCmd(cfg *config.Config) *cobra.Command {
	var videoID string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Semantic search over indexed transcript chunks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			query := strings.Join(args, " ")
			results, err := a.Search(cmd.Context(), query, limit, videoID)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("Nothing found")
				return nil
			}

			for i, r := range results {
				fmt.Printf("%d. [%s @ %.0fs] (distance: %.3f)\n", i+1, r.Metadata.VideoID, r.Metadata.Start, r.Distance)
				fmt.Printf("   %s\n", r.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&videoID, "video", "", "Restrict search to one video ID")
	cmd.Flags().IntVarP(&limit, "n-results", "n", cfg.TopK, "Number of results to return")
	return cmd
}

func newAskCmd(cfg *config.Config) *cobra.Command {
	var videoID string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question about indexed videos with an LLM",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			answer, err := a.Ask(cmd.Context(), strings.Join(args, " "), videoID)
			if err != nil {
				return err
			}
			fmt.Println(answer)
			return nil
		},
	}

	cmd.Flags().StringVar(&videoID, "video", "", "Restrict context to one video ID")
	return cmd
}
