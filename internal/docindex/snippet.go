package docindex

import (
	"strings"
	"unicode"

	"github.com/The-Smol-Lab/skills/internal/util"
)

// snippetParaMinChars ends the captured paragraph once the joined buffer
// reaches this many characters (a sentence-ending period ends it earlier).
const snippetParaMinChars = 120

// Snippet extracts a short prose excerpt from a document body. An empty body
// (stub not yet hydrated, or fetch failure) falls back to displayTitle. The
// first prose paragraph is taken after stripping code fences, a leading line
// that echoes the title, and heading/list lines. The result is whitespace-
// collapsed and truncated to maxChars runes, ending with "…" when truncated.
func Snippet(content, displayTitle string, maxChars int) string {
	if content == "" {
		return displayTitle
	}

	text := codeFenceRe.ReplaceAllString(strings.TrimSpace(content), "")

	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}

	// Drop a first line that just repeats the title (or is a heading), so
	// the snippet adds information beyond what the title already shows.
	if len(lines) > 0 {
		first := lines[0]
		titleNorm := strings.ToLower(util.NormalizeSpace(displayTitle))
		if strings.HasPrefix(first, "#") ||
			strings.HasPrefix(strings.ToLower(util.NormalizeSpace(first)), titleNorm) {
			lines = lines[1:]
		}
	}

	var buf []string
	var para string
	for _, line := range lines {
		if isHeadingOrListItem(line) {
			// Leading list/heading lines are skipped outright; once prose has
			// started they end the paragraph instead.
			if len(buf) > 0 {
				break
			}
			continue
		}
		buf = append(buf, line)
		joined := strings.Join(buf, " ")
		if len(joined) >= snippetParaMinChars || strings.HasSuffix(line, ".") {
			para = joined
			break
		}
	}
	if para == "" && len(buf) > 0 {
		para = strings.Join(buf, " ")
	}

	snippet := para
	if snippet == "" {
		snippet = displayTitle
	}
	snippet = util.NormalizeSpace(snippet)

	if maxChars > 0 {
		if runes := []rune(snippet); len(runes) > maxChars {
			head := strings.TrimRightFunc(string(runes[:maxChars-1]), unicode.IsSpace)
			snippet = head + "…"
		}
	}
	return snippet
}

func isHeadingOrListItem(line string) bool {
	return strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") ||
		listItemRe.MatchString(line)
}
