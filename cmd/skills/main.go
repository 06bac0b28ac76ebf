// Command skills is a toolbox of content-research skills: documentation
// search, image generation, and YouTube research. Every skill is available
// as a subcommand and over MCP stdio via `skills serve`.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/The-Smol-Lab/skills/internal/config"
	"github.com/The-Smol-Lab/skills/internal/docs"
	"github.com/The-Smol-Lab/skills/internal/imagegen"
	"github.com/The-Smol-Lab/skills/internal/runtime"
	"github.com/The-Smol-Lab/skills/internal/tool"
	"github.com/The-Smol-Lab/skills/internal/youtube"
)

const (
	appName    = "skills"
	appVersion = "1.0.0"
)

var sourcesPath string

var rootCmd = &cobra.Command{
	Use:   "skills",
	Short: "Content-research skills: docs search, image generation, YouTube analysis",
	Long: `skills bundles a set of content-research tools behind one binary.

Each skill is a subcommand printing JSON to stdout, and the same skills are
exposed over the Model Context Protocol with "skills serve".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnv()
	},
}

func init() {
	log.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVar(&sourcesPath, "sources", "skills.yaml",
		"Path to the documentation sources config file")

	rootCmd.AddCommand(searchDocsCmd)
	rootCmd.AddCommand(fetchDocCmd)
	rootCmd.AddCommand(generateImageCmd)
	rootCmd.AddCommand(editImageCmd)
	rootCmd.AddCommand(composeImagesCmd)
	rootCmd.AddCommand(youtubeSearchCmd)
	rootCmd.AddCommand(videoMetadataCmd)
	rootCmd.AddCommand(analyzeTranscriptCmd)
	rootCmd.AddCommand(youtubeTrendsCmd)
	rootCmd.AddCommand(setupCheckCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildRegistry assembles every skill. API keys come from the environment,
// loaded from .env by the persistent pre-run.
func buildRegistry() (*tool.Registry, error) {
	cfg, err := config.LoadSources(sourcesPath)
	if err != nil {
		return nil, err
	}

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	model := os.Getenv("OPENROUTER_IMAGE_MODEL")

	reg := tool.NewRegistry()
	reg.Register(docs.NewSearchDocsTool(cfg))
	reg.Register(docs.NewFetchDocTool(cfg))
	reg.Register(imagegen.NewGenerateImageTool(apiKey, model))
	reg.Register(imagegen.NewEditImageTool(apiKey, model))
	reg.Register(imagegen.NewComposeImagesTool(apiKey, model))
	reg.Register(youtube.NewSearchTool())
	reg.Register(youtube.NewMetadataTool())
	reg.Register(youtube.NewTranscriptTool())
	reg.Register(youtube.NewTrendsTool())
	reg.Register(runtime.NewSetupCheckTool(cfg))
	return reg, nil
}

// errSkillFailed marks an expected skill failure already reported to stderr.
// main turns it into exit code 1 without printing it again; returning instead
// of exiting here keeps the deferred Close on the unwind path.
var errSkillFailed = errors.New("skill failed")

// runSkill initializes one skill, executes it with the given arguments, and
// prints the result. Expected skill failures go to stderr and surface as
// errSkillFailed; only broken plumbing returns an ordinary error to cobra.
func runSkill(ctx context.Context, name string, args map[string]any) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	t, ok := reg.Get(name)
	if !ok {
		return fmt.Errorf("unknown skill %q", name)
	}
	if err := t.Init(ctx); err != nil {
		return err
	}
	defer t.Close()

	payload, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}

	res, err := t.Execute(ctx, payload)
	if err != nil {
		return err
	}
	if res.Error != "" {
		fmt.Fprintln(os.Stderr, "Error: "+res.Error)
		return errSkillFailed
	}
	fmt.Println(res.Output)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errSkillFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
