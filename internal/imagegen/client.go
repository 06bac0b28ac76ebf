// Package imagegen wraps the OpenRouter image-generation API: text-to-image
// generation, instruction-based editing, and multi-image composition over the
// chat-completions endpoint with image modalities.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/The-Smol-Lab/skills/internal/util"
)

const (
	defaultAPIURL = "https://openrouter.ai/api/v1/chat/completions"
	defaultModel  = "google/gemini-3-pro-image-preview"

	// Image generation is slow; this bounds a single request end to end.
	requestTimeout = 3 * time.Minute

	// maxRespBody limits success responses. Generated images arrive inline
	// as base64 data URLs, so the ceiling is generous.
	maxRespBody = 64 << 20
	errMaxBody  = 1 << 20
	errBodyShow = 300

	// maxReferenceImages is the API's cap on input images per request.
	maxReferenceImages = 14
)

// AspectRatios and ImageSizes are the values the API accepts.
var (
	AspectRatios = []string{"1:1", "2:3", "3:2", "3:4", "4:3", "4:5", "5:4", "9:16", "16:9", "21:9"}
	ImageSizes   = []string{"1K", "2K", "4K"}
)

// Options are the optional output controls shared by all operations.
type Options struct {
	AspectRatio string
	ImageSize   string
}

func (o Options) validate() error {
	if o.AspectRatio != "" && !contains(AspectRatios, o.AspectRatio) {
		return fmt.Errorf("imagegen: invalid aspect ratio %q (allowed: %s)", o.AspectRatio, strings.Join(AspectRatios, ", "))
	}
	if o.ImageSize != "" && !contains(ImageSizes, o.ImageSize) {
		return fmt.Errorf("imagegen: invalid image size %q (allowed: %s)", o.ImageSize, strings.Join(ImageSizes, ", "))
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// Output is the parsed result of one image request: generated images as data
// URLs plus any accompanying model text.
type Output struct {
	Images []string
	Text   string
}

// Client talks to an OpenRouter-compatible image endpoint.
type Client struct {
	apiKey  string
	baseURL string // injectable for tests; defaults to defaultAPIURL
	model   string
	client  *http.Client // dedicated client to avoid shared http.DefaultClient
}

// String returns a log-safe representation with the API key omitted,
// preventing accidental key exposure if the struct is printed.
func (c *Client) String() string {
	return fmt.Sprintf("imagegen.Client{baseURL: %q, model: %q}", c.baseURL, c.model)
}

// NewClient creates a client for the default OpenRouter endpoint and model.
// An overriding model may be empty.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultAPIURL,
		model:   model,
		// No client-level Timeout: request lifetime is controlled exclusively
		// via context.WithTimeout so callers can impose shorter deadlines.
		client: &http.Client{},
	}
}

// Request/response wire types. The modalities and image_config extensions are
// OpenRouter-specific and not part of the standard chat-completions schema.

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Modalities  []string      `json:"modalities"`
	ImageConfig *imageConfig  `json:"image_config,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"` // string or []contentPart
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type imageConfig struct {
	AspectRatio string `json:"aspect_ratio,omitempty"`
	ImageSize   string `json:"image_size,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
			Images  []struct {
				ImageURL imageRef `json:"image_url"`
			} `json:"images"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate produces an image from a text prompt.
func (c *Client) Generate(ctx context.Context, prompt string, opts Options) (*Output, error) {
	return c.complete(ctx, []chatMessage{{Role: "user", Content: prompt}}, opts)
}

// Edit transforms an existing image (as a data URL) per the instruction.
func (c *Client) Edit(ctx context.Context, imageDataURL, instruction string, opts Options) (*Output, error) {
	content := []contentPart{
		{Type: "text", Text: instruction},
		{Type: "image_url", ImageURL: &imageRef{URL: imageDataURL}},
	}
	return c.complete(ctx, []chatMessage{{Role: "user", Content: content}}, opts)
}

// Compose combines multiple reference images (as data URLs) per the
// instruction. At least one and at most maxReferenceImages inputs.
func (c *Client) Compose(ctx context.Context, imageDataURLs []string, instruction string, opts Options) (*Output, error) {
	if len(imageDataURLs) == 0 {
		return nil, fmt.Errorf("imagegen: at least one reference image is required")
	}
	if len(imageDataURLs) > maxReferenceImages {
		return nil, fmt.Errorf("imagegen: at most %d reference images supported", maxReferenceImages)
	}
	content := []contentPart{{Type: "text", Text: instruction}}
	for _, u := range imageDataURLs {
		content = append(content, contentPart{Type: "image_url", ImageURL: &imageRef{URL: u}})
	}
	return c.complete(ctx, []chatMessage{{Role: "user", Content: content}}, opts)
}

func (c *Client) complete(ctx context.Context, messages []chatMessage, opts Options) (*Output, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	reqBody := chatRequest{
		Model:      c.model,
		Messages:   messages,
		Modalities: []string{"image", "text"},
	}
	if opts.AspectRatio != "" || opts.ImageSize != "" {
		reqBody.ImageConfig = &imageConfig{AspectRatio: opts.AspectRatio, ImageSize: opts.ImageSize}
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("imagegen: encode request: %w", err)
	}

	httpCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(httpCtx, http.MethodPost, c.baseURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("imagegen: build request: %w", err)
	}
	// SECURITY: the Authorization header carries the plaintext API key.
	// Never log the request.
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imagegen: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// LimitReader prevents OOM from unexpectedly large error bodies;
		// further truncated before surfacing to the caller.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errMaxBody))
		bodyStr := util.TruncateRunes(strings.TrimSpace(string(body)), errBodyShow)
		return nil, fmt.Errorf("imagegen: API error (HTTP %d): %s", resp.StatusCode, bodyStr)
	}

	var parsed chatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxRespBody)).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("imagegen: decode response: %w", err)
	}

	out := &Output{}
	if len(parsed.Choices) > 0 {
		msg := parsed.Choices[0].Message
		// Content is usually a plain string; ignore structured content.
		var text string
		if json.Unmarshal(msg.Content, &text) == nil {
			out.Text = text
		}
		for _, img := range msg.Images {
			if img.ImageURL.URL != "" {
				out.Images = append(out.Images, img.ImageURL.URL)
			}
		}
	}
	if len(out.Images) == 0 {
		return nil, fmt.Errorf("imagegen: no image was generated; adjust the prompt and try again")
	}
	return out, nil
}
