package docindex

import "strings"

// Tokenize splits text into lowercased tokens, where a token is a maximal run
// of ASCII letters, digits, or underscore. Anything else is a separator.
// Empty or separator-only input yields nil.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !isTokenRune(r)
	})
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]string, len(fields))
	for i, f := range fields {
		tokens[i] = strings.ToLower(f)
	}
	return tokens
}

func isTokenRune(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r >= '0' && r <= '9' ||
		r == '_'
}
