package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchDocsK int

var searchDocsCmd = &cobra.Command{
	Use:   "search-docs QUERY...",
	Short: "Search the documentation set and print ranked results",
	Long: `Search the curated documentation set with a keyword query.

Prints a JSON array of {url, title, score, snippet}, best match first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSkill(cmd.Context(), "search_docs", map[string]any{
			"query": strings.Join(args, " "),
			"k":     searchDocsK,
		})
	},
}

func init() {
	searchDocsCmd.Flags().IntVarP(&searchDocsK, "top", "k", 5, "Maximum number of results")
}
