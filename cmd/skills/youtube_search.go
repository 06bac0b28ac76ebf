package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	youtubeSearchMax  int
	youtubeSearchSort string
)

var youtubeSearchCmd = &cobra.Command{
	Use:   "youtube-search KEYWORD...",
	Short: "Search YouTube by keyword via yt-dlp",
	Long: `Search YouTube and print normalized video metadata as a JSON array.

Requires the yt-dlp binary in PATH.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSkill(cmd.Context(), "youtube_search", map[string]any{
			"keyword":     strings.Join(args, " "),
			"max_results": youtubeSearchMax,
			"sort_by":     youtubeSearchSort,
		})
	},
}

func init() {
	youtubeSearchCmd.Flags().IntVarP(&youtubeSearchMax, "max-results", "n", 10, "Number of results to fetch")
	youtubeSearchCmd.Flags().StringVar(&youtubeSearchSort, "sort-by", "relevance", "Result ordering: relevance, views, or date")
}
