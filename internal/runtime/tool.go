package runtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/The-Smol-Lab/skills/internal/config"
	"github.com/The-Smol-Lab/skills/internal/tool"
)

// SetupCheckTool verifies the environment is ready for every skill and
// reports per-dependency status as JSON.
type SetupCheckTool struct {
	cfg config.Sources
}

func NewSetupCheckTool(cfg config.Sources) *SetupCheckTool {
	return &SetupCheckTool{cfg: cfg}
}

func (t *SetupCheckTool) Name() string { return "setup_check" }
func (t *SetupCheckTool) Description() string {
	return "Verify external dependencies (yt-dlp, API keys, documentation reachability) " +
		"and report per-check status."
}

func (t *SetupCheckTool) InputSchema() json.RawMessage {
	return tool.BuildSchema()
}

func (t *SetupCheckTool) Init(_ context.Context) error { return nil }
func (t *SetupCheckTool) Close() error                 { return nil }

func (t *SetupCheckTool) Execute(ctx context.Context, _ json.RawMessage) (tool.Result, error) {
	report := Probe(ctx, t.cfg)
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return tool.Result{}, fmt.Errorf("runtime: encode report: %w", err)
	}
	return tool.Result{Output: string(out)}, nil
}
