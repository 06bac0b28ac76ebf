package docs

import "testing"

func TestParseLinks(t *testing.T) {
	text := `# Docs index

- [Getting Started](/getting-started/)
- [API Reference](https://docs.example.com/api/)
- [Elsewhere](https://evil.example.net/page)
- [  ](/blank-title/)
`
	links := ParseLinks(testSources(), text)
	if len(links) != 3 {
		t.Fatalf("got %d links, want 3: %+v", len(links), links)
	}

	if links[0].Title != "Getting Started" {
		t.Errorf("first title = %q", links[0].Title)
	}
	if links[0].URL != "https://docs.example.com/getting-started/" {
		t.Errorf("relative link not resolved: %q", links[0].URL)
	}

	// Blank anchor text falls back to the target.
	if links[2].Title != "/blank-title/" {
		t.Errorf("blank title fallback = %q, want the raw target", links[2].Title)
	}
}

func TestParseLinks_NoLinks(t *testing.T) {
	if links := ParseLinks(testSources(), "plain text without links"); len(links) != 0 {
		t.Errorf("got %d links, want 0", len(links))
	}
}
