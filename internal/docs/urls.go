// Package docs implements the documentation skills: building a search index
// from an llms.txt link list, ranked search with snippet hydration, and full
// document fetches. Outbound requests are restricted to an allowlist of
// documentation domains.
package docs

import (
	"fmt"
	"strings"

	"github.com/The-Smol-Lab/skills/internal/config"
)

// IsAllowed reports whether url matches one of the configured domain prefixes.
func IsAllowed(cfg config.Sources, url string) bool {
	if url == "" {
		return false
	}
	for _, prefix := range cfg.AllowedDomains {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}

// NormalizeURL resolves a relative path against the docs base URL and
// validates the result against the domain allowlist.
func NormalizeURL(cfg config.Sources, raw string) (string, error) {
	url := raw
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = cfg.BaseURL + url
	}
	if !IsAllowed(cfg, url) {
		return "", fmt.Errorf("docs: URL %q not allowed; must be under one of %v", raw, cfg.AllowedDomains)
	}
	return url, nil
}

// TitleFromURL derives a human-readable title from the last path segment of
// url: "…/getting-started/deploy-agent/" → "Deploy Agent".
func TitleFromURL(url string) string {
	path := url
	if i := strings.Index(path, "://"); i >= 0 {
		path = path[i+3:]
	}

	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 && strings.HasPrefix(parts[len(parts)-1], "index.") {
		parts = parts[:len(parts)-1]
	}

	slug := path
	if len(parts) > 0 {
		slug = parts[len(parts)-1]
	}
	slug = strings.ReplaceAll(slug, "-", " ")
	slug = strings.ReplaceAll(slug, "_", " ")

	title := titleCase(strings.TrimSpace(slug))
	if title == "" {
		return "Documentation"
	}
	return title
}

// titleCase uppercases the first letter of each space-separated word and
// lowercases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}
