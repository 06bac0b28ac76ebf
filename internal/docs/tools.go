package docs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/The-Smol-Lab/skills/internal/config"
	"github.com/The-Smol-Lab/skills/internal/docindex"
	"github.com/The-Smol-Lab/skills/internal/tool"
	"github.com/The-Smol-Lab/skills/internal/util"
)

const (
	// searchDefaultK is the result count when the caller does not ask for one.
	searchDefaultK = 5
	// snippetHydrateMax bounds how many top results get their page fetched
	// for snippet extraction.
	snippetHydrateMax = 5
	// snippetMaxChars is the snippet length budget.
	snippetMaxChars = 300
)

// SearchResult is one entry of the search_docs JSON output. Field order is
// the wire contract consumed by downstream tooling.
type SearchResult struct {
	URL     string  `json:"url"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
	Snippet string  `json:"snippet"`
}

// ── search_docs ──

// SearchDocsTool ranks documentation pages against a query. The index is
// built fresh from the link list on every invocation: all documents enter as
// title-only stubs, and only the top hits get their bodies fetched for
// snippets.
type SearchDocsTool struct {
	cfg     config.Sources
	fetcher *Fetcher
}

func NewSearchDocsTool(cfg config.Sources) *SearchDocsTool {
	return &SearchDocsTool{cfg: cfg, fetcher: NewFetcher(cfg)}
}

func (t *SearchDocsTool) Name() string { return "search_docs" }
func (t *SearchDocsTool) Description() string {
	return "Search the curated documentation set and return ranked results with snippets. " +
		"Output is a JSON array of {url, title, score, snippet}."
}

func (t *SearchDocsTool) InputSchema() json.RawMessage {
	return tool.BuildSchema(
		tool.SchemaParam{Name: "query", Type: "string", Description: "Search query string", Required: true},
		tool.SchemaParam{Name: "k", Type: "integer", Description: "Maximum number of results (default 5)"},
	)
}

func (t *SearchDocsTool) Init(_ context.Context) error { return nil }
func (t *SearchDocsTool) Close() error                 { return nil }

func (t *SearchDocsTool) Execute(ctx context.Context, args json.RawMessage) (tool.Result, error) {
	var a struct {
		Query string `json:"query"`
		K     int    `json:"k"`
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return tool.Result{Error: fmt.Sprintf("invalid arguments: %v", err)}, nil
	}
	query := strings.TrimSpace(a.Query)
	if query == "" {
		return tool.Result{Error: "query must not be empty"}, nil
	}
	k := a.K
	if k <= 0 {
		k = searchDefaultK
	}

	results, err := t.search(ctx, query, k)
	if err != nil {
		return tool.Result{Error: err.Error()}, nil
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return tool.Result{}, fmt.Errorf("docs: encode results: %w", err)
	}
	return tool.Result{Output: string(out)}, nil
}

func (t *SearchDocsTool) search(ctx context.Context, query string, k int) ([]SearchResult, error) {
	log.Printf("[Docs] Loading link index from %s", t.cfg.LinkIndexURL)
	links, err := t.fetcher.FetchLinkIndex(ctx)
	if err != nil {
		return nil, err
	}

	ix := docindex.NewIndex()
	for _, l := range links {
		display := util.NormalizeSpace(l.Title)
		ix.Add(docindex.Doc{
			URI:          l.URL,
			DisplayTitle: display,
			// The URL slug broadens token coverage for stub documents.
			IndexTitle: display + " " + TitleFromURL(l.URL),
		})
	}
	log.Printf("[Docs] Indexed %d documents, searching", ix.Len())

	ranked := ix.Search(query, k)

	// Hydrate the top hits so their snippets come from real page content.
	// A failed fetch degrades to the title-fallback snippet, never an error.
	pages := make(map[string]*Page, snippetHydrateMax)
	for i, r := range ranked {
		if i >= snippetHydrateMax {
			break
		}
		page, err := t.fetcher.FetchPage(ctx, r.Doc.URI)
		if err != nil {
			log.Printf("[Docs] Snippet hydration failed for %s: %v", r.Doc.URI, err)
			continue
		}
		pages[r.Doc.URI] = page
	}

	results := make([]SearchResult, 0, len(ranked))
	for _, r := range ranked {
		var content string
		if page := pages[r.Doc.URI]; page != nil {
			content = page.Content
		}
		results = append(results, SearchResult{
			URL:     r.Doc.URI,
			Title:   r.Doc.DisplayTitle,
			Score:   math.Round(r.Score*1000) / 1000,
			Snippet: docindex.Snippet(content, r.Doc.DisplayTitle, snippetMaxChars),
		})
	}
	return results, nil
}

// ── fetch_doc ──

// FetchDocTool fetches one documentation page in full and returns
// {url, title, content} JSON.
type FetchDocTool struct {
	cfg     config.Sources
	fetcher *Fetcher
}

func NewFetchDocTool(cfg config.Sources) *FetchDocTool {
	return &FetchDocTool{cfg: cfg, fetcher: NewFetcher(cfg)}
}

func (t *FetchDocTool) Name() string { return "fetch_doc" }
func (t *FetchDocTool) Description() string {
	return "Fetch the full content of a documentation page by URL (absolute, or relative to the docs base URL)."
}

func (t *FetchDocTool) InputSchema() json.RawMessage {
	return tool.BuildSchema(
		tool.SchemaParam{Name: "url", Type: "string", Description: "Document URL or relative docs path", Required: true},
	)
}

func (t *FetchDocTool) Init(_ context.Context) error { return nil }
func (t *FetchDocTool) Close() error                 { return nil }

// FetchedDoc is the fetch_doc JSON output.
type FetchedDoc struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (t *FetchDocTool) Execute(ctx context.Context, args json.RawMessage) (tool.Result, error) {
	var a struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return tool.Result{Error: fmt.Sprintf("invalid arguments: %v", err)}, nil
	}
	if strings.TrimSpace(a.URL) == "" {
		return tool.Result{Error: "url must not be empty"}, nil
	}

	page, err := t.fetcher.FetchPage(ctx, strings.TrimSpace(a.URL))
	if err != nil {
		return tool.Result{Error: err.Error()}, nil
	}

	out, err := json.MarshalIndent(FetchedDoc{
		URL:     page.URL,
		Title:   page.Title,
		Content: page.Content,
	}, "", "  ")
	if err != nil {
		return tool.Result{}, fmt.Errorf("docs: encode page: %w", err)
	}
	return tool.Result{Output: string(out)}, nil
}
