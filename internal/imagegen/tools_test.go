package imagegen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateImageToolSavesFile(t *testing.T) {
	var req map[string]any
	srv := newImageServer(t, &req)
	defer srv.Close()

	tl := &GenerateImageTool{client: newTestClient(srv.URL)}
	outPath := filepath.Join(t.TempDir(), "result.png")

	res, err := tl.Execute(context.Background(),
		json.RawMessage(fmt.Sprintf(`{"prompt":"a red square","output":%q,"aspect_ratio":"1:1"}`, outPath)))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Error != "" {
		t.Fatalf("unexpected tool error: %s", res.Error)
	}

	var report SaveReport
	if err := json.Unmarshal([]byte(res.Output), &report); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if report.SavedTo != outPath {
		t.Fatalf("saved_to = %q, want %q", report.SavedTo, outPath)
	}
	if report.ModelResponse != "here you go" {
		t.Fatalf("model_response = %q", report.ModelResponse)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestGenerateImageToolRejectsEmptyPrompt(t *testing.T) {
	tl := &GenerateImageTool{client: newTestClient("http://127.0.0.1:0")}
	res, err := tl.Execute(context.Background(), json.RawMessage(`{"prompt":"  ","output":"x.png"}`))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Error == "" {
		t.Fatal("expected tool error for blank prompt")
	}
}

func TestEditImageToolReportsMissingInput(t *testing.T) {
	tl := &EditImageTool{client: newTestClient("http://127.0.0.1:0")}
	res, err := tl.Execute(context.Background(),
		json.RawMessage(`{"input":"/nonexistent/img.png","instruction":"make it blue","output":"out.png"}`))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Error == "" || !strings.Contains(res.Error, "/nonexistent/img.png") {
		t.Fatalf("expected read error naming the path, got %q", res.Error)
	}
}

func TestComposeImagesToolEndToEnd(t *testing.T) {
	var req map[string]any
	srv := newImageServer(t, &req)
	defer srv.Close()

	a := writeTempImage(t, "a.png")
	b := writeTempImage(t, "b.png")
	outPath := filepath.Join(t.TempDir(), "merged.png")

	tl := &ComposeImagesTool{client: newTestClient(srv.URL)}
	res, err := tl.Execute(context.Background(),
		json.RawMessage(fmt.Sprintf(`{"images":[%q,%q],"instruction":"merge them","output":%q}`, a, b, outPath)))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Error != "" {
		t.Fatalf("unexpected tool error: %s", res.Error)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	// Instruction first, then one image part per input.
	msgs, _ := req["messages"].([]any)
	content, _ := msgs[0].(map[string]any)["content"].([]any)
	if len(content) != 3 {
		t.Fatalf("content parts = %d, want 3", len(content))
	}
}

func TestComposeImagesToolEnforcesLimit(t *testing.T) {
	tl := &ComposeImagesTool{client: newTestClient("http://127.0.0.1:0")}

	paths := make([]string, maxReferenceImages+1)
	for i := range paths {
		paths[i] = fmt.Sprintf("%q", "x.png")
	}
	args := fmt.Sprintf(`{"images":[%s],"instruction":"merge","output":"out.png"}`, strings.Join(paths, ","))

	res, err := tl.Execute(context.Background(), json.RawMessage(args))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Error == "" || !strings.Contains(res.Error, "at most") {
		t.Fatalf("expected limit error, got %q", res.Error)
	}
}

func TestInitRequiresAPIKey(t *testing.T) {
	ctx := context.Background()
	if err := NewGenerateImageTool("", "").Init(ctx); err == nil {
		t.Fatal("expected error for missing API key")
	}
	if err := NewGenerateImageTool("sk-or-abc", "").Init(ctx); err != nil {
		t.Fatalf("Init with key: %v", err)
	}
}
