package docs

import (
	"strings"
	"testing"
)

func TestExtractHTML_TitleAndText(t *testing.T) {
	doc := `<html><head><title>My Page</title>
<script>var hidden = 1;</script>
<style>.x { color: red }</style></head>
<body><nav>skip this nav</nav>
<h1>Heading</h1>
<p>First paragraph.</p>
<p>Second paragraph.</p>
</body></html>`

	title, content, err := extractHTML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("extractHTML: %v", err)
	}
	if title != "My Page" {
		t.Errorf("title = %q, want My Page", title)
	}
	for _, unwanted := range []string{"hidden", "color: red", "skip this nav"} {
		if strings.Contains(content, unwanted) {
			t.Errorf("content leaked %q: %q", unwanted, content)
		}
	}
	for _, wanted := range []string{"Heading", "First paragraph.", "Second paragraph."} {
		if !strings.Contains(content, wanted) {
			t.Errorf("content missing %q: %q", wanted, content)
		}
	}
}

func TestExtractHTML_OGTitleFallback(t *testing.T) {
	doc := `<html><head><meta property="og:title" content="Social Title"/></head><body><p>x</p></body></html>`
	title, _, err := extractHTML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("extractHTML: %v", err)
	}
	if title != "Social Title" {
		t.Errorf("title = %q, want og:title fallback", title)
	}
}

func TestExtractHTML_H1Fallback(t *testing.T) {
	doc := `<html><body><h1>Only Heading</h1><p>body</p></body></html>`
	title, _, err := extractHTML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("extractHTML: %v", err)
	}
	if title != "Only Heading" {
		t.Errorf("title = %q, want h1 fallback", title)
	}
}

func TestLooksLikeHTML(t *testing.T) {
	if !looksLikeHTML("<HTML><body></body></HTML>") {
		t.Error("uppercase html not detected")
	}
	if looksLikeHTML("# Just markdown\n\nwith [a link](/x)") {
		t.Error("markdown misdetected as html")
	}
}
