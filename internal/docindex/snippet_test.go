package docindex

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSnippet_EmptyBodyFallsBackToTitle(t *testing.T) {
	if got := Snippet("", "Getting Started", 300); got != "Getting Started" {
		t.Errorf("Snippet on empty body = %q, want the display title", got)
	}
}

func TestSnippet_DropsLeadingTitleEcho(t *testing.T) {
	body := "Getting   Started\nThis page explains the setup flow."
	got := Snippet(body, "getting started", 300)
	if got != "This page explains the setup flow." {
		t.Errorf("Snippet = %q, want the prose line without the title echo", got)
	}
	if strings.HasPrefix(strings.ToLower(got), "getting started") {
		t.Errorf("snippet still starts with the title: %q", got)
	}
}

func TestSnippet_DropsLeadingHeading(t *testing.T) {
	body := "# Overview\nThe runtime hosts agents as containers."
	got := Snippet(body, "Overview", 300)
	if got != "The runtime hosts agents as containers." {
		t.Errorf("Snippet = %q, want heading dropped", got)
	}
}

func TestSnippet_StripsCodeFences(t *testing.T) {
	body := "Intro line about usage.\n```python\nprint('hidden')\n```\nMore prose."
	got := Snippet(body, "Doc", 300)
	if strings.Contains(got, "hidden") {
		t.Errorf("snippet leaked code fence content: %q", got)
	}
}

func TestSnippet_SkipsLeadingListLines(t *testing.T) {
	body := "- first bullet\n- second bullet\nActual prose sentence here.\n- trailing bullet"
	got := Snippet(body, "Doc", 300)
	if got != "Actual prose sentence here." {
		t.Errorf("Snippet = %q, want prose after leading bullets", got)
	}
}

func TestSnippet_ListStopsStartedParagraph(t *testing.T) {
	body := "Prose without a period yet\n- bullet ends it\nnever reached"
	got := Snippet(body, "Doc", 300)
	if got != "Prose without a period yet" {
		t.Errorf("Snippet = %q, want the buffered prose before the bullet", got)
	}
}

func TestSnippet_TruncationEndsWithEllipsis(t *testing.T) {
	body := "A very long single sentence that keeps going well past any sensible budget limit."
	got := Snippet(body, "Doc", 10)
	if utf8.RuneCountInString(got) != 10 {
		t.Errorf("truncated snippet is %d runes, want 10: %q", utf8.RuneCountInString(got), got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated snippet does not end with ellipsis: %q", got)
	}
}

func TestSnippet_LengthNeverExceedsMax(t *testing.T) {
	bodies := []string{
		"Short.",
		"One paragraph that runs for a while and then concludes with a period.",
		strings.Repeat("word ", 200),
	}
	for _, body := range bodies {
		for _, max := range []int{10, 50, 300} {
			got := Snippet(body, "Title", max)
			if utf8.RuneCountInString(got) > max {
				t.Errorf("Snippet(%d) returned %d runes", max, utf8.RuneCountInString(got))
			}
		}
	}
}

func TestSnippet_OnlyHeadingsFallsBackToTitle(t *testing.T) {
	body := "# One\n## Two\n### Three"
	if got := Snippet(body, "Index Page", 300); got != "Index Page" {
		t.Errorf("Snippet on heading-only body = %q, want the display title", got)
	}
}

func TestSnippet_WhitespaceCollapsed(t *testing.T) {
	body := "Prose   with\t odd   spacing that eventually ends with a period."
	got := Snippet(body, "Doc", 300)
	if strings.Contains(got, "  ") || strings.Contains(got, "\t") {
		t.Errorf("snippet whitespace not collapsed: %q", got)
	}
}
