package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	editImageInput  string
	editImageOutput string
	editImageAspect string
	editImageSize   string
)

var editImageCmd = &cobra.Command{
	Use:   "edit-image INSTRUCTION...",
	Short: "Edit a local image per a natural-language instruction",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSkill(cmd.Context(), "edit_image", map[string]any{
			"input":        editImageInput,
			"instruction":  strings.Join(args, " "),
			"output":       editImageOutput,
			"aspect_ratio": editImageAspect,
			"image_size":   editImageSize,
		})
	},
}

func init() {
	editImageCmd.Flags().StringVarP(&editImageInput, "input", "i", "", "Path of the image to edit (required)")
	editImageCmd.Flags().StringVarP(&editImageOutput, "output", "o", "edited.png", "Path to save the edited image to")
	editImageCmd.Flags().StringVar(&editImageAspect, "aspect-ratio", "", "Output aspect ratio (e.g. 16:9)")
	editImageCmd.Flags().StringVar(&editImageSize, "image-size", "", "Output resolution tier (1K, 2K, 4K)")
	editImageCmd.MarkFlagRequired("input")
}
