// Package youtube provides YouTube research skills: keyword search and video
// metadata through yt-dlp, transcript analysis, and Google Trends lookups.
package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const (
	ytdlpBinary  = "yt-dlp"
	ytdlpTimeout = 2 * time.Minute
)

// Runner executes the yt-dlp binary. Swappable for tests.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

type execRunner struct {
	binary string
}

func (r *execRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, ytdlpTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.binary, args...)
	// Keep streams separate: stdout carries line-delimited JSON,
	// stderr carries diagnostics worth surfacing on failure.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("youtube: %s timed out after %v", r.binary, ytdlpTimeout)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("youtube: %s failed: %s", r.binary, msg)
	}
	return stdout.Bytes(), nil
}

// Client fetches video metadata via yt-dlp.
type Client struct {
	runner Runner
}

func NewClient() *Client {
	return &Client{runner: &execRunner{binary: ytdlpBinary}}
}

// CheckBinary verifies yt-dlp is installed and runnable.
func CheckBinary(ctx context.Context) (string, error) {
	path, err := exec.LookPath(ytdlpBinary)
	if err != nil {
		return "", fmt.Errorf("youtube: %s not found in PATH", ytdlpBinary)
	}
	out, err := (&execRunner{binary: ytdlpBinary}).Run(ctx, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)) + " (" + path + ")", nil
}

func metadataArgs(target string) []string {
	return []string{target, "--dump-json", "--skip-download", "--no-warnings"}
}

// Search runs a ytsearch query and returns one normalized item per hit,
// in the relevance order yt-dlp emits them.
func (c *Client) Search(ctx context.Context, keyword string, maxResults int) ([]SearchItem, error) {
	query := fmt.Sprintf("ytsearch%d:%s", maxResults, keyword)
	out, err := c.runner.Run(ctx, metadataArgs(query)...)
	if err != nil {
		return nil, err
	}

	items := []SearchItem{}
	for _, line := range bytes.Split(out, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var raw rawItem
		if err := json.Unmarshal(line, &raw); err != nil {
			return nil, fmt.Errorf("youtube: parse yt-dlp output: %w", err)
		}
		items = append(items, raw.searchItem())
	}
	return items, nil
}

// Metadata fetches full details for one video URL or ID.
func (c *Client) Metadata(ctx context.Context, target string) (*VideoDetails, error) {
	out, err := c.runner.Run(ctx, metadataArgs(target)...)
	if err != nil {
		return nil, err
	}
	var raw rawItem
	if err := json.Unmarshal(bytes.TrimSpace(out), &raw); err != nil {
		return nil, fmt.Errorf("youtube: parse yt-dlp output: %w", err)
	}
	details := raw.details()
	return &details, nil
}
