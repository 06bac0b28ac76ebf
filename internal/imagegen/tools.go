package imagegen

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/The-Smol-Lab/skills/internal/tool"
)

// SaveReport is the JSON output shared by the three image skills.
type SaveReport struct {
	SavedTo       string `json:"saved_to"`
	ModelResponse string `json:"model_response,omitempty"`
}

func saveResult(out *Output, outputPath string) (tool.Result, error) {
	saved, err := SaveImage(out.Images[0], outputPath)
	if err != nil {
		return tool.Result{Error: err.Error()}, nil
	}
	log.Printf("[ImageGen] Image saved to %s", saved)
	data, err := json.MarshalIndent(SaveReport{
		SavedTo:       saved,
		ModelResponse: strings.TrimSpace(out.Text),
	}, "", "  ")
	if err != nil {
		return tool.Result{}, fmt.Errorf("imagegen: encode result: %w", err)
	}
	return tool.Result{Output: string(data)}, nil
}

func optionParams() []tool.SchemaParam {
	return []tool.SchemaParam{
		{Name: "aspect_ratio", Type: "string", Description: "Output aspect ratio", Enum: AspectRatios},
		{Name: "image_size", Type: "string", Description: "Output resolution tier", Enum: ImageSizes},
	}
}

// checkAPIKey is the shared Init body: the key must be present, but its value
// is never logged or echoed.
func checkAPIKey(apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		return fmt.Errorf("imagegen: OPENROUTER_API_KEY is not set")
	}
	return nil
}

// ── generate_image ──

// GenerateImageTool creates an image from a text prompt and saves it locally.
type GenerateImageTool struct {
	client *Client
}

func NewGenerateImageTool(apiKey, model string) *GenerateImageTool {
	return &GenerateImageTool{client: NewClient(apiKey, model)}
}

func (t *GenerateImageTool) Name() string { return "generate_image" }
func (t *GenerateImageTool) Description() string {
	return "Generate an image from a text prompt and save it to a local file. " +
		"Output is JSON {saved_to, model_response}."
}

func (t *GenerateImageTool) InputSchema() json.RawMessage {
	params := []tool.SchemaParam{
		{Name: "prompt", Type: "string", Description: "Text description of the image to generate", Required: true},
		{Name: "output", Type: "string", Description: "Path to save the image to", Required: true},
	}
	return tool.BuildSchema(append(params, optionParams()...)...)
}

func (t *GenerateImageTool) Init(_ context.Context) error { return checkAPIKey(t.client.apiKey) }
func (t *GenerateImageTool) Close() error                 { return nil }

func (t *GenerateImageTool) Execute(ctx context.Context, args json.RawMessage) (tool.Result, error) {
	var a struct {
		Prompt      string `json:"prompt"`
		Output      string `json:"output"`
		AspectRatio string `json:"aspect_ratio"`
		ImageSize   string `json:"image_size"`
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return tool.Result{Error: fmt.Sprintf("invalid arguments: %v", err)}, nil
	}
	if strings.TrimSpace(a.Prompt) == "" {
		return tool.Result{Error: "prompt must not be empty"}, nil
	}
	if strings.TrimSpace(a.Output) == "" {
		return tool.Result{Error: "output must not be empty"}, nil
	}

	log.Printf("[ImageGen] Generating image (aspect=%q size=%q)", a.AspectRatio, a.ImageSize)
	out, err := t.client.Generate(ctx, a.Prompt, Options{AspectRatio: a.AspectRatio, ImageSize: a.ImageSize})
	if err != nil {
		return tool.Result{Error: err.Error()}, nil
	}
	return saveResult(out, a.Output)
}

// ── edit_image ──

// EditImageTool applies a natural-language edit to an existing local image.
type EditImageTool struct {
	client *Client
}

func NewEditImageTool(apiKey, model string) *EditImageTool {
	return &EditImageTool{client: NewClient(apiKey, model)}
}

func (t *EditImageTool) Name() string { return "edit_image" }
func (t *EditImageTool) Description() string {
	return "Edit a local image per a natural-language instruction and save the result. " +
		"Output is JSON {saved_to, model_response}."
}

func (t *EditImageTool) InputSchema() json.RawMessage {
	params := []tool.SchemaParam{
		{Name: "input", Type: "string", Description: "Path of the image to edit", Required: true},
		{Name: "instruction", Type: "string", Description: "How to transform the image", Required: true},
		{Name: "output", Type: "string", Description: "Path to save the edited image to", Required: true},
	}
	return tool.BuildSchema(append(params, optionParams()...)...)
}

func (t *EditImageTool) Init(_ context.Context) error { return checkAPIKey(t.client.apiKey) }
func (t *EditImageTool) Close() error                 { return nil }

func (t *EditImageTool) Execute(ctx context.Context, args json.RawMessage) (tool.Result, error) {
	var a struct {
		Input       string `json:"input"`
		Instruction string `json:"instruction"`
		Output      string `json:"output"`
		AspectRatio string `json:"aspect_ratio"`
		ImageSize   string `json:"image_size"`
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return tool.Result{Error: fmt.Sprintf("invalid arguments: %v", err)}, nil
	}
	if strings.TrimSpace(a.Input) == "" || strings.TrimSpace(a.Instruction) == "" || strings.TrimSpace(a.Output) == "" {
		return tool.Result{Error: "input, instruction and output are all required"}, nil
	}

	dataURL, err := EncodeFile(a.Input)
	if err != nil {
		return tool.Result{Error: err.Error()}, nil
	}

	log.Printf("[ImageGen] Editing %s", a.Input)
	out, err := t.client.Edit(ctx, dataURL, a.Instruction, Options{AspectRatio: a.AspectRatio, ImageSize: a.ImageSize})
	if err != nil {
		return tool.Result{Error: err.Error()}, nil
	}
	return saveResult(out, a.Output)
}

// ── compose_images ──

// ComposeImagesTool merges several local images into one per an instruction.
type ComposeImagesTool struct {
	client *Client
}

func NewComposeImagesTool(apiKey, model string) *ComposeImagesTool {
	return &ComposeImagesTool{client: NewClient(apiKey, model)}
}

func (t *ComposeImagesTool) Name() string { return "compose_images" }
func (t *ComposeImagesTool) Description() string {
	return fmt.Sprintf("Compose up to %d local images into one per a natural-language instruction "+
		"and save the result. Output is JSON {saved_to, model_response}.", maxReferenceImages)
}

func (t *ComposeImagesTool) InputSchema() json.RawMessage {
	params := []tool.SchemaParam{
		{Name: "images", Type: "array", Items: "string", Required: true,
			Description: fmt.Sprintf("Paths of the images to combine (1-%d)", maxReferenceImages)},
		{Name: "instruction", Type: "string", Description: "How to combine the images", Required: true},
		{Name: "output", Type: "string", Description: "Path to save the composed image to", Required: true},
	}
	return tool.BuildSchema(append(params, optionParams()...)...)
}

func (t *ComposeImagesTool) Init(_ context.Context) error { return checkAPIKey(t.client.apiKey) }
func (t *ComposeImagesTool) Close() error                 { return nil }

func (t *ComposeImagesTool) Execute(ctx context.Context, args json.RawMessage) (tool.Result, error) {
	var a struct {
		Images      []string `json:"images"`
		Instruction string   `json:"instruction"`
		Output      string   `json:"output"`
		AspectRatio string   `json:"aspect_ratio"`
		ImageSize   string   `json:"image_size"`
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return tool.Result{Error: fmt.Sprintf("invalid arguments: %v", err)}, nil
	}
	if len(a.Images) == 0 {
		return tool.Result{Error: "images must not be empty"}, nil
	}
	if len(a.Images) > maxReferenceImages {
		return tool.Result{Error: fmt.Sprintf("at most %d images supported, got %d", maxReferenceImages, len(a.Images))}, nil
	}
	if strings.TrimSpace(a.Instruction) == "" || strings.TrimSpace(a.Output) == "" {
		return tool.Result{Error: "instruction and output are required"}, nil
	}

	dataURLs := make([]string, 0, len(a.Images))
	for _, path := range a.Images {
		dataURL, err := EncodeFile(path)
		if err != nil {
			return tool.Result{Error: err.Error()}, nil
		}
		dataURLs = append(dataURLs, dataURL)
	}

	log.Printf("[ImageGen] Composing %d images", len(dataURLs))
	out, err := t.client.Compose(ctx, dataURLs, a.Instruction, Options{AspectRatio: a.AspectRatio, ImageSize: a.ImageSize})
	if err != nil {
		return tool.Result{Error: err.Error()}, nil
	}
	return saveResult(out, a.Output)
}
