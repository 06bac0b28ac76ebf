package imagegen

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var mimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
}

var extByMime = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// MimeTypeForPath maps a file extension to an image MIME type,
// defaulting to image/png for unknown extensions.
func MimeTypeForPath(path string) string {
	if mt, ok := mimeByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return "image/png"
}

// EncodeFile reads an image file and returns it as a base64 data URL
// suitable for inline transmission in an API request.
func EncodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("imagegen: read image %q: %w", path, err)
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:%s;base64,%s", MimeTypeForPath(path), encoded), nil
}

// DecodeDataURL parses a base64 image data URL into raw bytes plus the file
// extension implied by its MIME type.
func DecodeDataURL(dataURL string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, "", fmt.Errorf("imagegen: not a data URL")
	}
	rest := strings.TrimPrefix(dataURL, "data:")
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("imagegen: malformed data URL")
	}
	mimeType, _, _ := strings.Cut(meta, ";")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("imagegen: decode data URL: %w", err)
	}
	ext, ok := extByMime[mimeType]
	if !ok {
		ext = ".png"
	}
	return data, ext, nil
}

// SaveImage decodes a data URL and writes it to outputPath, creating parent
// directories as needed. If outputPath has no extension, the one implied by
// the image's MIME type is appended. Returns the path actually written.
func SaveImage(dataURL, outputPath string) (string, error) {
	data, ext, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}
	if filepath.Ext(outputPath) == "" {
		outputPath += ext
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("imagegen: create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return "", fmt.Errorf("imagegen: write image %q: %w", outputPath, err)
	}
	return outputPath, nil
}
