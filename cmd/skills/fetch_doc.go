package main

import (
	"github.com/spf13/cobra"
)

var fetchDocCmd = &cobra.Command{
	Use:   "fetch-doc URL",
	Short: "Fetch one documentation page as JSON",
	Long: `Fetch a documentation page by URL and print {url, title, content}.

The URL may be absolute or relative to the configured docs base URL; only
allowlisted documentation domains are fetched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSkill(cmd.Context(), "fetch_doc", map[string]any{
			"url": args[0],
		})
	},
}
