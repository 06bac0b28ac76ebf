package main

import (
	"github.com/spf13/cobra"
)

var youtubeTrendsTimeframe string

var youtubeTrendsCmd = &cobra.Command{
	Use:   "youtube-trends KEYWORD...",
	Short: "Report Google Trends interest for keywords on YouTube",
	Long: `Fetch interest-over-time and related queries from Google Trends,
scoped to YouTube search, for up to five keywords.`,
	Args: cobra.RangeArgs(1, 5),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSkill(cmd.Context(), "youtube_trends", map[string]any{
			"keywords":  args,
			"timeframe": youtubeTrendsTimeframe,
		})
	},
}

func init() {
	youtubeTrendsCmd.Flags().StringVar(&youtubeTrendsTimeframe, "timeframe", "", `Trends timeframe expression (default "today 3-m")`)
}
