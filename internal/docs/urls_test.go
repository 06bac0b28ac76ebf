package docs

import (
	"testing"

	"github.com/The-Smol-Lab/skills/internal/config"
)

func testSources() config.Sources {
	return config.Sources{
		LinkIndexURL:        "https://docs.example.com/llms.txt",
		BaseURL:             "https://docs.example.com",
		AllowedDomains:      []string{"https://docs.example.com", "https://other.example.org/"},
		FetchTimeoutSeconds: 5,
	}
}

func TestNormalizeURL_Relative(t *testing.T) {
	got, err := NormalizeURL(testSources(), "/getting-started/")
	if err != nil {
		t.Fatalf("NormalizeURL: %v", err)
	}
	want := "https://docs.example.com/getting-started/"
	if got != want {
		t.Errorf("NormalizeURL = %q, want %q", got, want)
	}
}

func TestNormalizeURL_AbsoluteAllowed(t *testing.T) {
	url := "https://other.example.org/page"
	got, err := NormalizeURL(testSources(), url)
	if err != nil {
		t.Fatalf("NormalizeURL: %v", err)
	}
	if got != url {
		t.Errorf("NormalizeURL = %q, want unchanged %q", got, url)
	}
}

func TestNormalizeURL_Disallowed(t *testing.T) {
	if _, err := NormalizeURL(testSources(), "https://evil.example.net/"); err == nil {
		t.Error("disallowed domain should error")
	}
}

func TestTitleFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://docs.example.com/getting-started/deploy-agent/", "Deploy Agent"},
		{"https://docs.example.com/api_reference", "Api Reference"},
		{"https://docs.example.com/guide/index.html", "Guide"},
		{"https://docs.example.com/", "Docs.example.com"},
	}
	for _, c := range cases {
		if got := TitleFromURL(c.url); got != c.want {
			t.Errorf("TitleFromURL(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}
