package tool

import (
	"context"
	"encoding/json"
)

// Tool is the unified interface every skill implements. The same value backs
// both the CLI subcommand surface and the MCP server surface, so a skill is
// written once and invoked the same way from either side.
type Tool interface {
	// Name returns the skill identifier (also the MCP tool name).
	Name() string

	// Description returns a natural-language description of what the skill does.
	Description() string

	// InputSchema returns a JSON Schema describing the skill's arguments.
	// Compatible with the MCP protocol.
	InputSchema() json.RawMessage

	// Execute runs the skill with JSON-encoded arguments.
	// Expected failures (bad arguments, upstream API errors) are reported via
	// Result.Error with a nil Go error; a non-nil error means the skill itself
	// is broken.
	Execute(ctx context.Context, args json.RawMessage) (Result, error)

	// Init validates configuration (API keys, external binaries) before first use.
	Init(ctx context.Context) error

	// Close releases any held resources.
	Close() error
}

// Result is the outcome of one skill execution. Output is the payload printed
// to stdout (usually JSON); Error is a human-readable failure message.
// At most one of the two is non-empty.
type Result struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

// SchemaParam describes a single argument for the BuildSchema helper.
type SchemaParam struct {
	Name        string
	Type        string // "string", "integer", "number", "boolean", "array"
	Description string
	Required    bool
	Enum        []string
	Items       string // element type when Type is "array"
}

// BuildSchema assembles a JSON Schema object from a list of SchemaParams so
// skills do not hand-write schema strings.
func BuildSchema(params ...SchemaParam) json.RawMessage {
	properties := make(map[string]any)
	var required []string

	for _, p := range params {
		prop := map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		if p.Type == "array" && p.Items != "" {
			prop["items"] = map[string]any{"type": p.Items}
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}

	data, _ := json.Marshal(schema)
	return data
}
