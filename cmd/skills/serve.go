package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/The-Smol-Lab/skills/internal/mcpserver"
)

var serveSkipInit bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose all skills over MCP on stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout publishing every
skill as an MCP tool. Point an MCP-capable client at this command.

Logs go to stderr; stdout carries only the protocol stream.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		defer reg.CloseAll()

		// Skills needing credentials or binaries fail fast here rather than
		// on first call, unless the operator opts out.
		if !serveSkipInit {
			if err := reg.InitAll(cmd.Context()); err != nil {
				return err
			}
		} else {
			log.Println("[MCP] Skipping skill initialization checks")
		}

		return mcpserver.ServeStdio(reg, appName, appVersion)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveSkipInit, "skip-init", false, "Skip startup dependency checks")
}
