package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	generateImageOutput string
	generateImageAspect string
	generateImageSize   string
)

var generateImageCmd = &cobra.Command{
	Use:   "generate-image PROMPT...",
	Short: "Generate an image from a text prompt",
	Long: `Generate an image via the OpenRouter image API and save it locally.

Requires OPENROUTER_API_KEY in the environment or a .env file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSkill(cmd.Context(), "generate_image", map[string]any{
			"prompt":       strings.Join(args, " "),
			"output":       generateImageOutput,
			"aspect_ratio": generateImageAspect,
			"image_size":   generateImageSize,
		})
	},
}

func init() {
	generateImageCmd.Flags().StringVarP(&generateImageOutput, "output", "o", "image.png", "Path to save the image to")
	generateImageCmd.Flags().StringVar(&generateImageAspect, "aspect-ratio", "", "Output aspect ratio (e.g. 16:9)")
	generateImageCmd.Flags().StringVar(&generateImageSize, "image-size", "", "Output resolution tier (1K, 2K, 4K)")
}
