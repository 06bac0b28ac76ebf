package main

import (
	"github.com/spf13/cobra"
)

var videoMetadataCmd = &cobra.Command{
	Use:   "video-metadata URL...",
	Short: "Fetch detailed metadata for YouTube videos",
	Long: `Fetch full metadata for one or more videos by URL or ID, including tags,
categories, and the derived engagement rate.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSkill(cmd.Context(), "video_metadata", map[string]any{
			"urls": args,
		})
	},
}
