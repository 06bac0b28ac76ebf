package imagegen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testDataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngStub)
}

// newImageServer returns a stub endpoint that records the decoded request and
// replies with one generated image.
func newImageServer(t *testing.T, lastReq *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(lastReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		fmt.Fprintf(w, `{"choices":[{"message":{"content":"here you go","images":[{"image_url":{"url":%q}}]}}]}`, testDataURL())
	}))
}

func newTestClient(baseURL string) *Client {
	c := NewClient("test-key", "")
	c.baseURL = baseURL
	return c
}

func TestGenerateParsesImagesAndText(t *testing.T) {
	var req map[string]any
	srv := newImageServer(t, &req)
	defer srv.Close()

	out, err := newTestClient(srv.URL).Generate(context.Background(), "a red square", Options{AspectRatio: "16:9", ImageSize: "2K"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(out.Images) != 1 || out.Images[0] != testDataURL() {
		t.Fatalf("unexpected images: %v", out.Images)
	}
	if out.Text != "here you go" {
		t.Fatalf("Text = %q", out.Text)
	}

	// The request must carry the image modality and the output controls.
	mods, _ := req["modalities"].([]any)
	if len(mods) != 2 || mods[0] != "image" {
		t.Fatalf("modalities = %v", req["modalities"])
	}
	cfg, _ := req["image_config"].(map[string]any)
	if cfg["aspect_ratio"] != "16:9" || cfg["image_size"] != "2K" {
		t.Fatalf("image_config = %v", req["image_config"])
	}
}

func TestGenerateOmitsImageConfigWhenUnset(t *testing.T) {
	var req map[string]any
	srv := newImageServer(t, &req)
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Generate(context.Background(), "a dog", Options{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, present := req["image_config"]; present {
		t.Fatalf("image_config should be omitted, got %v", req["image_config"])
	}
}

func TestGenerateRejectsInvalidOptions(t *testing.T) {
	c := newTestClient("http://127.0.0.1:0")
	if _, err := c.Generate(context.Background(), "x", Options{AspectRatio: "7:5"}); err == nil {
		t.Fatal("expected error for invalid aspect ratio")
	}
	if _, err := c.Generate(context.Background(), "x", Options{ImageSize: "8K"}); err == nil {
		t.Fatal("expected error for invalid image size")
	}
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid api key"}}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "x", Options{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "HTTP 401") || !strings.Contains(err.Error(), "invalid api key") {
		t.Fatalf("error lacks status and body: %v", err)
	}
}

func TestGenerateErrorsWhenNoImageReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"content":"I cannot draw that"}}]}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "x", Options{})
	if err == nil || !strings.Contains(err.Error(), "no image") {
		t.Fatalf("expected no-image error, got %v", err)
	}
}

func TestEditSendsInlineImage(t *testing.T) {
	var req map[string]any
	srv := newImageServer(t, &req)
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Edit(context.Background(), testDataURL(), "make it blue", Options{}); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	msgs, _ := req["messages"].([]any)
	if len(msgs) != 1 {
		t.Fatalf("messages = %v", msgs)
	}
	content, _ := msgs[0].(map[string]any)["content"].([]any)
	if len(content) != 2 {
		t.Fatalf("content parts = %d, want 2", len(content))
	}
	imgPart, _ := content[1].(map[string]any)
	if imgPart["type"] != "image_url" {
		t.Fatalf("second part type = %v", imgPart["type"])
	}
}

func TestComposeEnforcesImageCount(t *testing.T) {
	c := newTestClient("http://127.0.0.1:0")
	ctx := context.Background()

	if _, err := c.Compose(ctx, nil, "merge", Options{}); err == nil {
		t.Fatal("expected error for zero images")
	}

	many := make([]string, maxReferenceImages+1)
	for i := range many {
		many[i] = testDataURL()
	}
	if _, err := c.Compose(ctx, many, "merge", Options{}); err == nil {
		t.Fatalf("expected error for %d images", len(many))
	}
}

func TestClientStringMasksAPIKey(t *testing.T) {
	c := NewClient("sk-or-secret", "")
	if s := c.String(); strings.Contains(s, "secret") {
		t.Fatalf("String() leaks API key: %s", s)
	}
}
