package docindex

import "regexp"

// Markdown zone patterns. Headers, fenced code blocks, and link anchor text
// are indexed as separate weighted zones on top of the plain content, so a
// match inside a header counts both as a header hit and a content hit.
var (
	headerRe    = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)
	codeBlockRe = regexp.MustCompile("(?s)```\\w*\\n(.*?)```")
	linkTextRe  = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	codeFenceRe = regexp.MustCompile("(?s)```.*?```")
	listItemRe  = regexp.MustCompile(`^\d+\.`)
)

// extractSubmatches returns the first capture group of every match of re in
// body. Zero matches yields nil, never an error.
func extractSubmatches(re *regexp.Regexp, body string) []string {
	matches := re.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m[1]
	}
	return out
}

func extractHeaders(body string) []string {
	return extractSubmatches(headerRe, body)
}

func extractCodeBlocks(body string) []string {
	return extractSubmatches(codeBlockRe, body)
}

func extractLinkTexts(body string) []string {
	return extractSubmatches(linkTextRe, body)
}
