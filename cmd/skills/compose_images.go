package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	composeImagesPaths  []string
	composeImagesOutput string
	composeImagesAspect string
	composeImagesSize   string
)

var composeImagesCmd = &cobra.Command{
	Use:   "compose-images INSTRUCTION...",
	Short: "Compose multiple local images into one",
	Long: `Combine several reference images into one according to an instruction,
for example merging a product shot with a background scene.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSkill(cmd.Context(), "compose_images", map[string]any{
			"images":       composeImagesPaths,
			"instruction":  strings.Join(args, " "),
			"output":       composeImagesOutput,
			"aspect_ratio": composeImagesAspect,
			"image_size":   composeImagesSize,
		})
	},
}

func init() {
	composeImagesCmd.Flags().StringArrayVarP(&composeImagesPaths, "image", "i", nil, "Path of a reference image (repeatable, required)")
	composeImagesCmd.Flags().StringVarP(&composeImagesOutput, "output", "o", "composed.png", "Path to save the composed image to")
	composeImagesCmd.Flags().StringVar(&composeImagesAspect, "aspect-ratio", "", "Output aspect ratio (e.g. 16:9)")
	composeImagesCmd.Flags().StringVar(&composeImagesSize, "image-size", "", "Output resolution tier (1K, 2K, 4K)")
	composeImagesCmd.MarkFlagRequired("image")
}
