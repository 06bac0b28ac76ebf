package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Built-in documentation source: the AgentCore starter-toolkit docs plus the
// domains its llms.txt links out to.
const (
	DefaultDocsBaseURL  = "https://aws.github.io/bedrock-agentcore-starter-toolkit"
	DefaultLinkIndexURL = "https://aws.github.io/bedrock-agentcore-starter-toolkit/llms.txt"
)

var defaultAllowedDomains = []string{
	"https://aws.github.io/bedrock-agentcore-starter-toolkit",
	"https://strandsagents.com/",
	"https://docs.aws.amazon.com/",
	"https://boto3.amazonaws.com/v1/documentation/",
}

// Sources configures the documentation skills: where the link index lives,
// which domains may be fetched, and the outbound HTTP budget.
type Sources struct {
	// LinkIndexURL is the llms.txt-style markdown link list to build the
	// search index from.
	LinkIndexURL string `yaml:"link_index_url"`

	// BaseURL resolves relative document paths.
	BaseURL string `yaml:"base_url"`

	// AllowedDomains are URL prefixes fetches are restricted to.
	AllowedDomains []string `yaml:"allowed_domains"`

	// FetchTimeoutSeconds bounds each outbound document fetch.
	FetchTimeoutSeconds int `yaml:"fetch_timeout_seconds"`
}

// DefaultSources returns the built-in AgentCore documentation source.
func DefaultSources() Sources {
	return Sources{
		LinkIndexURL:        DefaultLinkIndexURL,
		BaseURL:             DefaultDocsBaseURL,
		AllowedDomains:      append([]string(nil), defaultAllowedDomains...),
		FetchTimeoutSeconds: 30,
	}
}

// FetchTimeout returns the configured fetch timeout as a duration.
func (s Sources) FetchTimeout() time.Duration {
	return time.Duration(s.FetchTimeoutSeconds) * time.Second
}

// LoadSources reads a YAML source config from path, filling unset fields from
// the defaults. A missing file is not an error — the defaults are returned —
// but a present, malformed file is.
func LoadSources(path string) (Sources, error) {
	s := DefaultSources()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("config: read %q: %w", path, err)
	}

	var file Sources
	if err := yaml.Unmarshal(data, &file); err != nil {
		return s, fmt.Errorf("config: parse %q: %w", path, err)
	}

	if file.LinkIndexURL != "" {
		s.LinkIndexURL = file.LinkIndexURL
	}
	if file.BaseURL != "" {
		s.BaseURL = file.BaseURL
	}
	if len(file.AllowedDomains) > 0 {
		s.AllowedDomains = file.AllowedDomains
	}
	if file.FetchTimeoutSeconds > 0 {
		s.FetchTimeoutSeconds = file.FetchTimeoutSeconds
	}
	return s, nil
}
