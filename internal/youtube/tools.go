package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/The-Smol-Lab/skills/internal/tool"
)

const searchDefaultMax = 10

var searchSortOrders = []string{"relevance", "views", "date"}

// ── youtube_search ──

// SearchTool finds videos by keyword and returns normalized metadata.
type SearchTool struct {
	client *Client
}

func NewSearchTool() *SearchTool {
	return &SearchTool{client: NewClient()}
}

func (t *SearchTool) Name() string { return "youtube_search" }
func (t *SearchTool) Description() string {
	return "Search YouTube by keyword and return video metadata as a JSON array. " +
		"Sortable by relevance, views, or upload date."
}

func (t *SearchTool) InputSchema() json.RawMessage {
	return tool.BuildSchema(
		tool.SchemaParam{Name: "keyword", Type: "string", Description: "Search keyword", Required: true},
		tool.SchemaParam{Name: "max_results", Type: "integer", Description: "Number of results to fetch (default 10)"},
		tool.SchemaParam{Name: "sort_by", Type: "string", Description: "Result ordering", Enum: searchSortOrders},
	)
}

func (t *SearchTool) Init(ctx context.Context) error {
	version, err := CheckBinary(ctx)
	if err != nil {
		return err
	}
	log.Printf("[YouTube] yt-dlp %s", version)
	return nil
}
func (t *SearchTool) Close() error { return nil }

func (t *SearchTool) Execute(ctx context.Context, args json.RawMessage) (tool.Result, error) {
	var a struct {
		Keyword    string `json:"keyword"`
		MaxResults int    `json:"max_results"`
		SortBy     string `json:"sort_by"`
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return tool.Result{Error: fmt.Sprintf("invalid arguments: %v", err)}, nil
	}
	keyword := strings.TrimSpace(a.Keyword)
	if keyword == "" {
		return tool.Result{Error: "keyword must not be empty"}, nil
	}
	if a.SortBy != "" && !containsString(searchSortOrders, a.SortBy) {
		return tool.Result{Error: fmt.Sprintf("sort_by must be one of: %s", strings.Join(searchSortOrders, ", "))}, nil
	}
	maxResults := a.MaxResults
	if maxResults <= 0 {
		maxResults = searchDefaultMax
	}

	log.Printf("[YouTube] Searching %q (max %d)", keyword, maxResults)
	items, err := t.client.Search(ctx, keyword, maxResults)
	if err != nil {
		return tool.Result{Error: err.Error()}, nil
	}
	SortItems(items, a.SortBy)

	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return tool.Result{}, fmt.Errorf("youtube: encode results: %w", err)
	}
	return tool.Result{Output: string(out)}, nil
}

func containsString(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// ── video_metadata ──

// MetadataTool fetches full details for one or more videos.
type MetadataTool struct {
	client *Client
}

func NewMetadataTool() *MetadataTool {
	return &MetadataTool{client: NewClient()}
}

func (t *MetadataTool) Name() string { return "video_metadata" }
func (t *MetadataTool) Description() string {
	return "Fetch detailed metadata for YouTube videos by URL or ID, including tags, " +
		"categories, and engagement rate. Output is a JSON array."
}

func (t *MetadataTool) InputSchema() json.RawMessage {
	return tool.BuildSchema(
		tool.SchemaParam{Name: "urls", Type: "array", Items: "string", Description: "Video URLs or IDs", Required: true},
	)
}

func (t *MetadataTool) Init(ctx context.Context) error {
	_, err := CheckBinary(ctx)
	return err
}
func (t *MetadataTool) Close() error { return nil }

func (t *MetadataTool) Execute(ctx context.Context, args json.RawMessage) (tool.Result, error) {
	var a struct {
		URLs []string `json:"urls"`
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return tool.Result{Error: fmt.Sprintf("invalid arguments: %v", err)}, nil
	}
	if len(a.URLs) == 0 {
		return tool.Result{Error: "urls must not be empty"}, nil
	}

	results := make([]VideoDetails, 0, len(a.URLs))
	for _, target := range a.URLs {
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}
		details, err := t.client.Metadata(ctx, target)
		if err != nil {
			return tool.Result{Error: err.Error()}, nil
		}
		results = append(results, *details)
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return tool.Result{}, fmt.Errorf("youtube: encode results: %w", err)
	}
	return tool.Result{Output: string(out)}, nil
}

// ── analyze_transcript ──

// TranscriptTool analyzes transcript text for hooks, topics, and structure.
type TranscriptTool struct{}

func NewTranscriptTool() *TranscriptTool { return &TranscriptTool{} }

func (t *TranscriptTool) Name() string { return "analyze_transcript" }
func (t *TranscriptTool) Description() string {
	return "Analyze a transcript for word count, top keywords, the opening hook, " +
		"and an estimated section count. Accepts inline text or a file path."
}

func (t *TranscriptTool) InputSchema() json.RawMessage {
	return tool.BuildSchema(
		tool.SchemaParam{Name: "text", Type: "string", Description: "Transcript text (alternative to file)"},
		tool.SchemaParam{Name: "file", Type: "string", Description: "Path of a transcript text file (alternative to text)"},
		tool.SchemaParam{Name: "top", Type: "integer", Description: "Top keywords to report (default 15)"},
	)
}

func (t *TranscriptTool) Init(_ context.Context) error { return nil }
func (t *TranscriptTool) Close() error                 { return nil }

func (t *TranscriptTool) Execute(_ context.Context, args json.RawMessage) (tool.Result, error) {
	var a struct {
		Text string `json:"text"`
		File string `json:"file"`
		Top  int    `json:"top"`
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return tool.Result{Error: fmt.Sprintf("invalid arguments: %v", err)}, nil
	}

	text := a.Text
	if text == "" && a.File != "" {
		data, err := os.ReadFile(a.File)
		if err != nil {
			return tool.Result{Error: fmt.Sprintf("read transcript %q: %v", a.File, err)}, nil
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return tool.Result{Error: "provide transcript content via text or file"}, nil
	}

	report := AnalyzeTranscript(text, a.Top)
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return tool.Result{}, fmt.Errorf("youtube: encode report: %w", err)
	}
	return tool.Result{Output: string(out)}, nil
}

// ── youtube_trends ──

// TrendsTool reports Google Trends search interest on YouTube.
type TrendsTool struct {
	client *TrendsClient
}

func NewTrendsTool() *TrendsTool {
	return &TrendsTool{client: NewTrendsClient()}
}

func (t *TrendsTool) Name() string { return "youtube_trends" }
func (t *TrendsTool) Description() string {
	return "Report Google Trends interest-over-time and related queries for keywords, " +
		"scoped to YouTube search."
}

func (t *TrendsTool) InputSchema() json.RawMessage {
	return tool.BuildSchema(
		tool.SchemaParam{Name: "keywords", Type: "array", Items: "string",
			Description: fmt.Sprintf("Keywords to analyze (1-%d)", trendsMaxKeywords), Required: true},
		tool.SchemaParam{Name: "timeframe", Type: "string",
			Description: fmt.Sprintf("Trends timeframe expression (default %q)", DefaultTimeframe)},
	)
}

func (t *TrendsTool) Init(_ context.Context) error { return nil }
func (t *TrendsTool) Close() error                 { return nil }

func (t *TrendsTool) Execute(ctx context.Context, args json.RawMessage) (tool.Result, error) {
	var a struct {
		Keywords  []string `json:"keywords"`
		Timeframe string   `json:"timeframe"`
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return tool.Result{Error: fmt.Sprintf("invalid arguments: %v", err)}, nil
	}

	keywords := make([]string, 0, len(a.Keywords))
	for _, kw := range a.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return tool.Result{Error: "keywords must not be empty"}, nil
	}

	log.Printf("[YouTube] Fetching trends for %v", keywords)
	report, err := t.client.Analyze(ctx, keywords, a.Timeframe)
	if err != nil {
		return tool.Result{Error: err.Error()}, nil
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return tool.Result{}, fmt.Errorf("youtube: encode report: %w", err)
	}
	return tool.Result{Output: string(out)}, nil
}
