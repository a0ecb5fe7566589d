package cli

import (
	"fmt"

	"transcript_rag/internal/config"

	"github.com/spf13/cobra"
)

func newDeleteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <video-id>",
		Short: "Remove all indexed chunks for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}

func newListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show indexed videos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			videos, err := a.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(videos) == 0 {
				fmt.Println("No videos indexed yet")
				return nil
			}
			for _, v := range videos {
				fmt.Printf("%s  chunks=%d segments=%d  indexed=%s  %s\n",
					v.VideoID, v.ChunkCount, v.SegmentCount, v.IndexedAt, v.URL)
			}
			return nil
		},
	}
}
