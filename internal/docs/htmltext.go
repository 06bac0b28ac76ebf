package docs

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// looksLikeHTML reports whether raw appears to be an HTML document rather
// than plain text or markdown.
func looksLikeHTML(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.Contains(lower, "<html") ||
		strings.Contains(lower, "<head") ||
		strings.Contains(lower, "<body")
}

// charsetReader wraps r so its bytes are transcoded to UTF-8 based on the
// Content-Type header. Unknown or missing charsets fall back to the raw
// reader (assumed UTF-8).
func charsetReader(contentType string, r io.Reader) io.Reader {
	utf8Reader, err := charset.NewReaderLabel(extractCharset(contentType), r)
	if err != nil {
		return r
	}
	return utf8Reader
}

// extractCharset pulls the charset value out of a Content-Type header.
// "text/html; charset=gbk" → "gbk". Empty when absent.
func extractCharset(contentType string) string {
	for _, part := range strings.Split(contentType, ";") {
		part = strings.ToLower(strings.TrimSpace(part))
		if strings.HasPrefix(part, "charset=") {
			return strings.TrimPrefix(part, "charset=")
		}
	}
	return ""
}

// skipTags are non-content elements whose text is excluded entirely.
var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true,
	"nav": true, "footer": true, "header": true,
	"aside": true, "iframe": true, "svg": true,
}

// extractHTML parses an HTML stream and returns the page title and the
// visible text content. The title is picked from <title>, then an
// og:title meta tag, then the first <h1>. Returns empty strings rather than
// failing on malformed markup wherever the parser can recover.
func extractHTML(r io.Reader) (title string, content string, err error) {
	tokenizer := html.NewTokenizer(r)

	var sb strings.Builder
	var titleTag, ogTitle, h1 string
	var inTitle, inH1 bool
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			tokErr := tokenizer.Err()
			text := collapseBlankLines(strings.TrimSpace(sb.String()))
			title = firstNonEmpty(titleTag, ogTitle, h1)
			if tokErr == io.EOF {
				return title, text, nil
			}
			return title, text, tokErr

		case html.StartTagToken, html.SelfClosingTagToken:
			tn, hasAttr := tokenizer.TagName()
			tagName := string(tn)

			if tagName == "meta" && hasAttr && ogTitle == "" {
				ogTitle = metaOGTitle(tokenizer)
			}
			if tt == html.SelfClosingTagToken {
				break
			}
			switch {
			case tagName == "title":
				inTitle = true
			case tagName == "h1" && h1 == "":
				inH1 = true
			case skipTags[tagName]:
				skipDepth++
			}
			// Newline before block-level elements, avoiding doubles.
			if isBlockElement(tagName) && sb.Len() > 0 {
				s := sb.String()
				if s[len(s)-1] != '\n' {
					sb.WriteString("\n")
				}
			}

		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			tagName := string(tn)

			switch {
			case tagName == "title":
				inTitle = false
			case tagName == "h1":
				inH1 = false
			case skipTags[tagName] && skipDepth > 0:
				skipDepth--
			}

		case html.TextToken:
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text == "" {
				continue
			}
			if inTitle && titleTag == "" {
				titleTag = text
				continue
			}
			if inH1 && h1 == "" {
				h1 = text
			}
			if skipDepth == 0 {
				sb.WriteString(text)
				sb.WriteString(" ")
			}
		}
	}
}

// metaOGTitle returns the content attribute when the current meta token is an
// og:title declaration, else "".
func metaOGTitle(tokenizer *html.Tokenizer) string {
	var property, content string
	for {
		key, val, more := tokenizer.TagAttr()
		switch string(key) {
		case "property":
			property = string(val)
		case "content":
			content = string(val)
		}
		if !more {
			break
		}
	}
	if property == "og:title" {
		return strings.TrimSpace(content)
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// collapseBlankLines reduces runs of blank lines down to a single one.
func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	var result []string
	blankCount := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blankCount++
			if blankCount <= 1 {
				result = append(result, line)
			}
		} else {
			blankCount = 0
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// isBlockElement returns true for HTML block-level elements that should have
// line breaks between them.
func isBlockElement(tag string) bool {
	switch tag {
	case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6",
		"li", "tr", "br", "hr", "blockquote", "pre",
		"article", "section", "main",
		"table", "thead", "tbody", "tfoot":
		return true
	}
	return false
}
