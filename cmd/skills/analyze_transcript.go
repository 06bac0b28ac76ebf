package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	analyzeTranscriptFile string
	analyzeTranscriptTop  int
)

var analyzeTranscriptCmd = &cobra.Command{
	Use:   "analyze-transcript",
	Short: "Analyze a transcript for hooks, topics, and structure",
	Long: `Analyze transcript text and print word count, top keywords, the opening
hook, and an estimated section count.

Reads from --file when given, otherwise from stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		skillArgs := map[string]any{"top": analyzeTranscriptTop}
		if analyzeTranscriptFile != "" {
			skillArgs["file"] = analyzeTranscriptFile
		} else {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			skillArgs["text"] = string(data)
		}
		return runSkill(cmd.Context(), "analyze_transcript", skillArgs)
	},
}

func init() {
	analyzeTranscriptCmd.Flags().StringVarP(&analyzeTranscriptFile, "file", "f", "", "Path to a transcript text file")
	analyzeTranscriptCmd.Flags().IntVar(&analyzeTranscriptTop, "top", 15, "Top keywords to report")
}
