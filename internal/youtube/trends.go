package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Google Trends has no official API; this speaks the same unofficial widget
// protocol the trends web UI uses: an explore call hands out per-widget
// tokens, which unlock the widgetdata endpoints.
const (
	trendsDefaultBaseURL = "https://trends.google.com"
	trendsExplorePath    = "/trends/api/explore"
	trendsMultilinePath  = "/trends/api/widgetdata/multiline"
	trendsRelatedPath    = "/trends/api/widgetdata/relatedsearches"

	trendsTimeout     = 30 * time.Second
	trendsMaxBody     = 8 << 20
	trendsUserAgent   = "skills-trends/1.0"
	trendsHL          = "en-US"
	trendsTZ          = 360
	trendsMaxKeywords = 5 // Google's comparison limit

	// DefaultTimeframe matches the trends UI preset for the last three months.
	DefaultTimeframe = "today 3-m"
)

// TrendsReport is the youtube_trends JSON output.
type TrendsReport struct {
	Keywords         []string                  `json:"keywords"`
	Timeframe        string                    `json:"timeframe"`
	InterestOverTime []map[string]any          `json:"interest_over_time"`
	RelatedQueries   map[string]RelatedQueries `json:"related_queries"`
}

// RelatedQueries holds the top and rising query lists for one keyword.
type RelatedQueries struct {
	Rising []RelatedQuery `json:"rising"`
	Top    []RelatedQuery `json:"top"`
}

// RelatedQuery is one related search with its relative interest value.
type RelatedQuery struct {
	Query string `json:"query"`
	Value int    `json:"value"`
}

// TrendsClient queries Google Trends, scoped to YouTube search interest.
type TrendsClient struct {
	baseURL string // injectable for tests
	client  *http.Client
	primed  bool
}

func NewTrendsClient() *TrendsClient {
	// The widgetdata endpoints reject requests without the session cookies
	// handed out on first contact, so the client carries a jar.
	jar, _ := cookiejar.New(nil)
	return &TrendsClient{
		baseURL: trendsDefaultBaseURL,
		client:  &http.Client{Jar: jar},
	}
}

// Analyze fetches interest-over-time and related queries for the keywords.
func (c *TrendsClient) Analyze(ctx context.Context, keywords []string, timeframe string) (*TrendsReport, error) {
	if len(keywords) == 0 {
		return nil, fmt.Errorf("trends: at least one keyword is required")
	}
	if len(keywords) > trendsMaxKeywords {
		return nil, fmt.Errorf("trends: at most %d keywords supported", trendsMaxKeywords)
	}
	if timeframe == "" {
		timeframe = DefaultTimeframe
	}

	ctx, cancel := context.WithTimeout(ctx, trendsTimeout)
	defer cancel()

	if err := c.prime(ctx); err != nil {
		return nil, err
	}

	widgets, err := c.explore(ctx, keywords, timeframe)
	if err != nil {
		return nil, err
	}

	report := &TrendsReport{
		Keywords:         keywords,
		Timeframe:        timeframe,
		InterestOverTime: []map[string]any{},
		RelatedQueries:   make(map[string]RelatedQueries, len(keywords)),
	}

	var relatedIdx int
	for _, w := range widgets {
		switch w.ID {
		case "TIMESERIES":
			points, err := c.interestOverTime(ctx, w, keywords)
			if err != nil {
				return nil, err
			}
			report.InterestOverTime = points
		case "RELATED_QUERIES":
			// One widget per keyword, emitted in comparison-item order.
			if relatedIdx >= len(keywords) {
				continue
			}
			related, err := c.relatedQueries(ctx, w)
			if err != nil {
				return nil, err
			}
			report.RelatedQueries[keywords[relatedIdx]] = related
			relatedIdx++
		}
	}
	for _, kw := range keywords {
		if _, ok := report.RelatedQueries[kw]; !ok {
			report.RelatedQueries[kw] = RelatedQueries{Rising: []RelatedQuery{}, Top: []RelatedQuery{}}
		}
	}
	return report, nil
}

// prime performs the initial page load that sets session cookies.
func (c *TrendsClient) prime(ctx context.Context) error {
	if c.primed {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?geo=US", nil)
	if err != nil {
		return fmt.Errorf("trends: build priming request: %w", err)
	}
	req.Header.Set("User-Agent", trendsUserAgent)
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("trends: priming request failed: %w", err)
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, trendsMaxBody))
	resp.Body.Close()
	c.primed = true
	return nil
}

type trendsWidget struct {
	ID      string          `json:"id"`
	Token   string          `json:"token"`
	Request json.RawMessage `json:"request"`
}

func (c *TrendsClient) explore(ctx context.Context, keywords []string, timeframe string) ([]trendsWidget, error) {
	type comparisonItem struct {
		Keyword string `json:"keyword"`
		Geo     string `json:"geo"`
		Time    string `json:"time"`
	}
	items := make([]comparisonItem, 0, len(keywords))
	for _, kw := range keywords {
		items = append(items, comparisonItem{Keyword: kw, Geo: "", Time: timeframe})
	}
	reqPayload, err := json.Marshal(map[string]any{
		"comparisonItem": items,
		"category":       0,
		"property":       "youtube",
	})
	if err != nil {
		return nil, fmt.Errorf("trends: encode explore request: %w", err)
	}

	body, err := c.get(ctx, trendsExplorePath, url.Values{"req": {string(reqPayload)}})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Widgets []trendsWidget `json:"widgets"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("trends: decode explore response: %w", err)
	}
	if len(parsed.Widgets) == 0 {
		return nil, fmt.Errorf("trends: explore returned no widgets")
	}
	return parsed.Widgets, nil
}

func (c *TrendsClient) interestOverTime(ctx context.Context, w trendsWidget, keywords []string) ([]map[string]any, error) {
	body, err := c.widgetData(ctx, trendsMultilinePath, w)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Default struct {
			TimelineData []struct {
				Time  string `json:"time"`
				Value []int  `json:"value"`
			} `json:"timelineData"`
		} `json:"default"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("trends: decode timeline: %w", err)
	}

	points := make([]map[string]any, 0, len(parsed.Default.TimelineData))
	for _, entry := range parsed.Default.TimelineData {
		secs, err := strconv.ParseInt(entry.Time, 10, 64)
		if err != nil {
			continue
		}
		point := map[string]any{
			"date": time.Unix(secs, 0).UTC().Format(time.RFC3339),
		}
		for i, kw := range keywords {
			if i < len(entry.Value) {
				point[kw] = entry.Value[i]
			}
		}
		points = append(points, point)
	}
	return points, nil
}

func (c *TrendsClient) relatedQueries(ctx context.Context, w trendsWidget) (RelatedQueries, error) {
	body, err := c.widgetData(ctx, trendsRelatedPath, w)
	if err != nil {
		return RelatedQueries{}, err
	}

	var parsed struct {
		Default struct {
			RankedList []struct {
				RankedKeyword []struct {
					Query string `json:"query"`
					Value int    `json:"value"`
				} `json:"rankedKeyword"`
			} `json:"rankedList"`
		} `json:"default"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return RelatedQueries{}, fmt.Errorf("trends: decode related queries: %w", err)
	}

	pick := func(idx int) []RelatedQuery {
		out := []RelatedQuery{}
		if idx >= len(parsed.Default.RankedList) {
			return out
		}
		for _, rk := range parsed.Default.RankedList[idx].RankedKeyword {
			out = append(out, RelatedQuery{Query: rk.Query, Value: rk.Value})
		}
		return out
	}
	// Ranked list order is fixed by the protocol: top first, rising second.
	return RelatedQueries{Top: pick(0), Rising: pick(1)}, nil
}

func (c *TrendsClient) widgetData(ctx context.Context, path string, w trendsWidget) ([]byte, error) {
	return c.get(ctx, path, url.Values{
		"req":   {string(w.Request)},
		"token": {w.Token},
	})
}

func (c *TrendsClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("hl", trendsHL)
	params.Set("tz", strconv.Itoa(trendsTZ))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("trends: build request: %w", err)
	}
	req.Header.Set("User-Agent", trendsUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trends: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("trends: rate limited (HTTP 429); wait before retrying")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trends: API error (HTTP %d) for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, trendsMaxBody))
	if err != nil {
		return nil, fmt.Errorf("trends: read response: %w", err)
	}
	return stripXSSIPrefix(body), nil
}

// stripXSSIPrefix removes the anti-XSSI garbage (")]}'," and variants)
// Google prepends to every trends API response.
func stripXSSIPrefix(body []byte) []byte {
	if i := strings.IndexAny(string(body), "{["); i > 0 {
		return body[i:]
	}
	return body
}
