package main

import (
	"github.com/spf13/cobra"
)

var setupCheckCmd = &cobra.Command{
	Use:   "setup-check",
	Short: "Verify external dependencies and configuration",
	Long: `Check that yt-dlp is installed, required API keys are set, and the
documentation index is reachable. Prints a JSON report.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSkill(cmd.Context(), "setup_check", map[string]any{})
	},
}
