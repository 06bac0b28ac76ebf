package docs

import (
	"regexp"
	"strings"

	"github.com/The-Smol-Lab/skills/internal/config"
)

// markdownLinkRe captures both the anchor text and the target of an inline
// markdown link.
var markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// Link is one (title, url) pair from a document link list.
type Link struct {
	Title string
	URL   string
}

// ParseLinks extracts document links from llms.txt-style markdown text.
// An empty anchor text falls back to the target URL; links outside the
// allowed domains are skipped.
func ParseLinks(cfg config.Sources, text string) []Link {
	var links []Link
	for _, m := range markdownLinkRe.FindAllStringSubmatch(text, -1) {
		title := strings.TrimSpace(m[1])
		target := strings.TrimSpace(m[2])
		if title == "" {
			title = target
		}
		url, err := NormalizeURL(cfg, target)
		if err != nil {
			continue
		}
		links = append(links, Link{Title: title, URL: url})
	}
	return links
}
