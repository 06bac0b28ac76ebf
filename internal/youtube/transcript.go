package youtube

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// hookWordLimit is how many opening words form the hook excerpt.
	hookWordLimit = 120
	// sectionWordSpan is the assumed words-per-section for structure estimates.
	sectionWordSpan = 350
	// defaultTopKeywords is the keyword count when the caller does not ask.
	defaultTopKeywords = 15
	// minKeywordLen filters out short filler tokens.
	minKeywordLen = 3
)

// transcriptStopwords are common English words excluded from keyword counts.
var transcriptStopwords = map[string]bool{
	"the": true, "and": true, "a": true, "to": true, "of": true, "in": true,
	"is": true, "it": true, "that": true, "for": true, "on": true, "you": true,
	"with": true, "as": true, "this": true, "are": true, "be": true, "or": true,
	"we": true, "i": true, "they": true, "was": true, "at": true, "by": true,
	"from": true, "an": true, "have": true, "has": true, "but": true,
	"not": true, "if": true, "so": true, "your": true, "our": true,
	"their": true, "my": true,
}

// transcriptWordRe matches spoken-word tokens; apostrophes stay inside
// contractions ("don't", "it's").
var transcriptWordRe = regexp.MustCompile(`[a-zA-Z0-9']+`)

// Keyword is one ranked transcript keyword.
type Keyword struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// TranscriptReport summarizes a transcript for content planning: length,
// dominant topics, the opening hook, and a rough section count.
type TranscriptReport struct {
	WordCount            int       `json:"word_count"`
	TopKeywords          []Keyword `json:"top_keywords"`
	HookExcerpt          string    `json:"hook_excerpt"`
	SectionCountEstimate int       `json:"section_count_estimate"`
}

// AnalyzeTranscript computes a TranscriptReport. topN bounds the keyword
// list; non-positive means defaultTopKeywords.
func AnalyzeTranscript(text string, topN int) TranscriptReport {
	if topN <= 0 {
		topN = defaultTopKeywords
	}
	words := strings.Fields(text)

	counts := make(map[string]int)
	var order []string // first-seen order breaks count ties deterministically
	for _, tok := range transcriptWordRe.FindAllString(strings.ToLower(text), -1) {
		if len(tok) < minKeywordLen || transcriptStopwords[tok] {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	rank := make(map[string]int, len(order))
	for i, tok := range order {
		rank[tok] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		ci, cj := counts[order[i]], counts[order[j]]
		if ci != cj {
			return ci > cj
		}
		return rank[order[i]] < rank[order[j]]
	})
	if len(order) > topN {
		order = order[:topN]
	}

	top := make([]Keyword, 0, len(order))
	for _, tok := range order {
		top = append(top, Keyword{Keyword: tok, Count: counts[tok]})
	}

	hook := words
	if len(hook) > hookWordLimit {
		hook = hook[:hookWordLimit]
	}

	sections := len(words) / sectionWordSpan
	if sections < 1 {
		sections = 1
	}

	return TranscriptReport{
		WordCount:            len(words),
		TopKeywords:          top,
		HookExcerpt:          strings.Join(hook, " "),
		SectionCountEstimate: sections,
	}
}
