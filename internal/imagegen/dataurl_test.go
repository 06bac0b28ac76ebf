package imagegen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var pngStub = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func writeTempImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, pngStub, 0o644); err != nil {
		t.Fatalf("write temp image: %v", err)
	}
	return path
}

func TestEncodeFileRoundTrip(t *testing.T) {
	path := writeTempImage(t, "in.png")

	dataURL, err := EncodeFile(path)
	if err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}
	if !strings.HasPrefix(dataURL, "data:image/png;base64,") {
		t.Fatalf("unexpected data URL prefix: %q", dataURL[:30])
	}

	data, ext, err := DecodeDataURL(dataURL)
	if err != nil {
		t.Fatalf("DecodeDataURL: %v", err)
	}
	if !bytes.Equal(data, pngStub) {
		t.Fatalf("round trip mismatch: got %v", data)
	}
	if ext != ".png" {
		t.Fatalf("ext = %q, want .png", ext)
	}
}

func TestDecodeDataURLRejectsNonDataURL(t *testing.T) {
	if _, _, err := DecodeDataURL("https://example.com/img.png"); err == nil {
		t.Fatal("expected error for non-data URL")
	}
	if _, _, err := DecodeDataURL("data:image/png;base64"); err == nil {
		t.Fatal("expected error for data URL without payload")
	}
}

func TestMimeTypeForPath(t *testing.T) {
	cases := map[string]string{
		"photo.JPG":  "image/jpeg",
		"icon.webp":  "image/webp",
		"mystery.xyz": "image/png",
		"noext":       "image/png",
	}
	for path, want := range cases {
		if got := MimeTypeForPath(path); got != want {
			t.Errorf("MimeTypeForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestSaveImageAppendsExtensionAndCreatesDirs(t *testing.T) {
	dir := t.TempDir()
	dataURL, err := EncodeFile(writeTempImage(t, "src.png"))
	if err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}

	// No extension on the target: the MIME-implied one is appended,
	// and intermediate directories are created.
	saved, err := SaveImage(dataURL, filepath.Join(dir, "nested", "out"))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	if filepath.Ext(saved) != ".png" {
		t.Fatalf("saved path %q lacks appended extension", saved)
	}
	data, err := os.ReadFile(saved)
	if err != nil {
		t.Fatalf("read saved image: %v", err)
	}
	if !bytes.Equal(data, pngStub) {
		t.Fatal("saved bytes differ from source")
	}
}
