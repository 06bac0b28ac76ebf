// Package docindex implements a small in-memory inverted index over
// markdown-flavored documentation pages, with TF-IDF scoring that boosts
// matches in titles, headers, code blocks, and link text. The index is built
// fresh for each invocation and is not persisted or shared between goroutines.
package docindex

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

// Zone weights for term-frequency scoring. The title boost depends on how
// much body content a document carries: title matches mean the most on
// documents that are still stubs (no body fetched yet).
const (
	titleBoostEmpty = 8
	titleBoostShort = 5
	titleBoostLong  = 3

	// shortPageThreshold is the body length (in runes) under which a page
	// still gets the medium title boost.
	shortPageThreshold = 800

	headerWeight = 4
	codeWeight   = 2
	linkWeight   = 2
)

// Doc is a single indexed document. URI is the unique key; insertion order
// defines the document's internal ordinal. Content may be empty for a stub
// document whose body has not been fetched — the index never mutates a
// document after Add, so a late-arriving body requires re-indexing.
type Doc struct {
	URI          string
	DisplayTitle string
	Content      string
	IndexTitle   string
}

// docZones caches the lowercased scoring zones of one document, extracted
// once at Add time so Search does not re-run the markdown patterns per token.
type docZones struct {
	content    string
	title      string
	headers    []string
	codeBlocks []string
	linkTexts  []string
	titleBoost int
}

// Result is one ranked search hit.
type Result struct {
	Score float64
	Doc   Doc
}

// Index is the inverted index: token → ordinals of documents containing it,
// plus a per-token distinct-document frequency count.
type Index struct {
	docs     []Doc
	zones    []docZones
	postings map[string][]int
	docFreq  map[string]int
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		postings: make(map[string][]int),
		docFreq:  make(map[string]int),
	}
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int { return len(ix.docs) }

// Docs returns the indexed documents in insertion order.
func (ix *Index) Docs() []Doc { return ix.docs }

// Add appends doc to the index under the next ordinal. One composite haystack
// (index title, headers, link text, code blocks, plain content — all
// lowercased) is tokenized once; each distinct token gets the ordinal
// appended to its postings list and its document frequency bumped by one,
// regardless of how often the token recurs within the document.
func (ix *Index) Add(doc Doc) {
	ordinal := len(ix.docs)
	ix.docs = append(ix.docs, doc)

	z := extractZones(doc)
	ix.zones = append(ix.zones, z)

	haystack := strings.Join([]string{
		z.title,
		strings.Join(z.headers, " "),
		strings.Join(z.linkTexts, " "),
		strings.Join(z.codeBlocks, " "),
		z.content,
	}, " ")

	seen := make(map[string]struct{})
	for _, tok := range Tokenize(haystack) {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		ix.docFreq[tok]++
		ix.postings[tok] = append(ix.postings[tok], ordinal)
	}
}

func extractZones(doc Doc) docZones {
	z := docZones{
		content: strings.ToLower(doc.Content),
		title:   strings.ToLower(doc.IndexTitle),
	}
	for _, h := range extractHeaders(doc.Content) {
		z.headers = append(z.headers, strings.ToLower(h))
	}
	for _, c := range extractCodeBlocks(doc.Content) {
		z.codeBlocks = append(z.codeBlocks, strings.ToLower(c))
	}
	for _, l := range extractLinkTexts(doc.Content) {
		z.linkTexts = append(z.linkTexts, strings.ToLower(l))
	}
	switch n := utf8.RuneCountInString(doc.Content); {
	case n == 0:
		z.titleBoost = titleBoostEmpty
	case n < shortPageThreshold:
		z.titleBoost = titleBoostShort
	default:
		z.titleBoost = titleBoostLong
	}
	return z
}

// Search tokenizes query, accumulates tf·idf scores over the postings of each
// query token, and returns the top k hits by descending score. Documents
// matching no query token are absent from the result, not zero-scored.
// Ties keep first-match order (stable sort); that order is an implementation
// detail, not a guarantee. k <= 0 returns nil.
func (ix *Index) Search(query string, k int) []Result {
	if k <= 0 {
		return nil
	}

	n := len(ix.docs)
	if n < 1 {
		n = 1
	}

	scores := make(map[int]float64)
	var order []int
	for _, qt := range Tokenize(query) {
		matched := ix.postings[qt]
		if len(matched) == 0 {
			continue
		}
		idf := math.Log(float64(n+1)/float64(1+ix.docFreq[qt])) + 1.0
		for _, ordinal := range matched {
			if _, ok := scores[ordinal]; !ok {
				order = append(order, ordinal)
			}
			scores[ordinal] += ix.termFrequency(ordinal, qt) * idf
		}
	}

	ranked := make([]Result, 0, len(order))
	for _, ordinal := range order {
		ranked = append(ranked, Result{Score: scores[ordinal], Doc: ix.docs[ordinal]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// termFrequency sums the weighted occurrence counts of token across the
// document's zones. Counting is raw substring containment — "cat" also
// counts inside "category". That looseness is deliberate and kept for
// ranking compatibility; exact token-boundary counting would reorder results.
func (ix *Index) termFrequency(ordinal int, token string) float64 {
	z := ix.zones[ordinal]
	tf := strings.Count(z.content, token)
	tf += strings.Count(z.title, token) * z.titleBoost
	for _, h := range z.headers {
		tf += strings.Count(h, token) * headerWeight
	}
	for _, c := range z.codeBlocks {
		tf += strings.Count(c, token) * codeWeight
	}
	for _, l := range z.linkTexts {
		tf += strings.Count(l, token) * linkWeight
	}
	return float64(tf)
}
