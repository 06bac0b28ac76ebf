// Package runtime probes the host environment for everything the skills
// need: external binaries, API credentials, and documentation reachability.
// It backs the setup_check skill.
package runtime

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/The-Smol-Lab/skills/internal/config"
	"github.com/The-Smol-Lab/skills/internal/youtube"
)

const probeHTTPTimeout = 10 * time.Second

// Check is the outcome of one environment probe. Detail never contains
// secret values, only presence information.
type Check struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

// Report aggregates all probes; OK is the conjunction of every check.
type Report struct {
	OK     bool    `json:"ok"`
	Checks []Check `json:"checks"`
}

// Probe runs every environment check synchronously. Each probe is
// millisecond-to-seconds level; the HTTP reachability check is bounded by
// probeHTTPTimeout.
func Probe(ctx context.Context, cfg config.Sources) Report {
	checks := []Check{
		checkEnvFile(),
		checkYtdlp(ctx),
		checkAPIKey("OPENROUTER_API_KEY"),
		checkDocsReachable(ctx, cfg),
	}

	ok := true
	for _, c := range checks {
		if !c.OK {
			ok = false
		}
	}
	return Report{OK: ok, Checks: checks}
}

// checkEnvFile reports where credentials are loaded from. A missing .env is
// not a failure: system environment variables work on their own.
func checkEnvFile() Check {
	return Check{Name: "env-file", OK: true, Detail: config.EnvFilePath()}
}

func checkYtdlp(ctx context.Context) Check {
	version, err := youtube.CheckBinary(ctx)
	if err != nil {
		return Check{Name: "yt-dlp", Detail: err.Error()}
	}
	return Check{Name: "yt-dlp", OK: true, Detail: version}
}

// checkAPIKey reports presence only. The value itself must never appear in
// any output or log.
func checkAPIKey(envVar string) Check {
	if strings.TrimSpace(os.Getenv(envVar)) == "" {
		return Check{Name: envVar, Detail: envVar + " is not set"}
	}
	return Check{Name: envVar, OK: true, Detail: envVar + " is set"}
}

func checkDocsReachable(ctx context.Context, cfg config.Sources) Check {
	name := "docs-index"
	ctx, cancel := context.WithTimeout(ctx, probeHTTPTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, cfg.LinkIndexURL, nil)
	if err != nil {
		return Check{Name: name, Detail: fmt.Sprintf("bad link index URL: %v", err)}
	}
	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		return Check{Name: name, Detail: fmt.Sprintf("link index unreachable: %v", err)}
	}
	resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Check{Name: name, Detail: fmt.Sprintf("link index returned HTTP %d", resp.StatusCode)}
	}
	return Check{Name: name, OK: true, Detail: "link index reachable (HTTP " + fmt.Sprint(resp.StatusCode) + ")"}
}
