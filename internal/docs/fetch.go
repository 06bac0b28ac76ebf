package docs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/The-Smol-Lab/skills/internal/config"
)

const (
	fetchUserAgent   = "skills-docs/1.0"
	fetchMaxBody     = 5 << 20 // 5MB per document
	fetchMaxRedirect = 10
)

// Page is a fetched, cleaned documentation page.
type Page struct {
	URL     string
	Title   string
	Content string
}

// Fetcher retrieves documentation pages within the configured domain
// allowlist, converting HTML responses to plain text.
type Fetcher struct {
	cfg    config.Sources
	client *http.Client
}

// NewFetcher creates a Fetcher. Request lifetime is controlled via context
// deadlines rather than a client-level timeout so callers can impose shorter
// budgets without the two conflicting.
func NewFetcher(cfg config.Sources) *Fetcher {
	return &Fetcher{
		cfg: cfg,
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= fetchMaxRedirect {
					return fmt.Errorf("docs: more than %d redirects", fetchMaxRedirect)
				}
				return nil
			},
		},
	}
}

// fetchRaw GETs url and returns the body decoded to UTF-8. The caller is
// responsible for URL validation.
func (f *Fetcher) fetchRaw(ctx context.Context, url string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.cfg.FetchTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("docs: build request for %q: %w", url, err)
	}
	req.Header.Set("User-Agent", fetchUserAgent)
	req.Header.Set("Accept", "text/html,text/plain,text/markdown,*/*")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("docs: fetch %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("docs: HTTP %d fetching %q", resp.StatusCode, url)
	}

	body := charsetReader(resp.Header.Get("Content-Type"), io.LimitReader(resp.Body, fetchMaxBody))
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("docs: read %q: %w", url, err)
	}
	return string(data), nil
}

// FetchPage normalizes rawURL, fetches it, and returns a cleaned page.
// HTML responses get their visible text extracted and a title picked from
// the markup; everything else is returned as-is with a slug-derived title.
func (f *Fetcher) FetchPage(ctx context.Context, rawURL string) (*Page, error) {
	url, err := NormalizeURL(f.cfg, rawURL)
	if err != nil {
		return nil, err
	}

	raw, err := f.fetchRaw(ctx, url)
	if err != nil {
		return nil, err
	}

	if looksLikeHTML(raw) {
		title, content, err := extractHTML(strings.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("docs: parse %q: %w", url, err)
		}
		if title == "" {
			title = TitleFromURL(url)
		}
		return &Page{URL: url, Title: title, Content: content}, nil
	}

	return &Page{URL: url, Title: TitleFromURL(url), Content: raw}, nil
}

// FetchLinkIndex downloads and parses the configured llms.txt link list.
func (f *Fetcher) FetchLinkIndex(ctx context.Context) ([]Link, error) {
	raw, err := f.fetchRaw(ctx, f.cfg.LinkIndexURL)
	if err != nil {
		return nil, err
	}
	links := ParseLinks(f.cfg, raw)
	if len(links) == 0 {
		return nil, fmt.Errorf("docs: no links found in %q", f.cfg.LinkIndexURL)
	}
	return links, nil
}
