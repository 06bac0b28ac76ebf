package youtube

import (
	"sort"
	"strconv"
)

// searchDescriptionLimit caps descriptions in search output; full metadata
// keeps the whole text.
const searchDescriptionLimit = 500

// rawItem is the subset of yt-dlp's JSON dump the skills consume. Count
// fields are pointers because yt-dlp reports unavailable counters as null.
type rawItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Channel      string   `json:"channel"`
	Uploader     string   `json:"uploader"`
	ChannelID    string   `json:"channel_id"`
	UploaderID   string   `json:"uploader_id"`
	ViewCount    *int64   `json:"view_count"`
	LikeCount    *int64   `json:"like_count"`
	CommentCount *int64   `json:"comment_count"`
	UploadDate   string   `json:"upload_date"`
	Duration     *float64 `json:"duration"`
	Tags         []string `json:"tags"`
	Categories   []string `json:"categories"`
	Description  string   `json:"description"`
	Thumbnail    string   `json:"thumbnail"`
	WebpageURL   string   `json:"webpage_url"`
}

// SearchItem is one youtube_search result. Field order is the wire contract.
type SearchItem struct {
	VideoID      string   `json:"video_id"`
	Title        string   `json:"title"`
	Channel      string   `json:"channel"`
	ChannelID    string   `json:"channel_id"`
	ViewCount    *int64   `json:"view_count"`
	LikeCount    *int64   `json:"like_count"`
	CommentCount *int64   `json:"comment_count"`
	UploadDate   string   `json:"upload_date"`
	Duration     *float64 `json:"duration"`
	Description  string   `json:"description"`
	Thumbnail    string   `json:"thumbnail"`
	WebpageURL   string   `json:"webpage_url"`
}

// VideoDetails is the video_metadata output: everything SearchItem carries
// plus tags, categories, the untruncated description, and the derived
// engagement rate (likes/views; null when views are zero or unknown).
type VideoDetails struct {
	VideoID        string   `json:"video_id"`
	Title          string   `json:"title"`
	Channel        string   `json:"channel"`
	ChannelID      string   `json:"channel_id"`
	ViewCount      *int64   `json:"view_count"`
	LikeCount      *int64   `json:"like_count"`
	CommentCount   *int64   `json:"comment_count"`
	UploadDate     string   `json:"upload_date"`
	Duration       *float64 `json:"duration"`
	Tags           []string `json:"tags"`
	Categories     []string `json:"categories"`
	Description    string   `json:"description"`
	Thumbnail      string   `json:"thumbnail"`
	WebpageURL     string   `json:"webpage_url"`
	EngagementRate *float64 `json:"engagement_rate"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func (r rawItem) searchItem() SearchItem {
	return SearchItem{
		VideoID:      r.ID,
		Title:        r.Title,
		Channel:      firstNonEmpty(r.Uploader, r.Channel),
		ChannelID:    firstNonEmpty(r.ChannelID, r.UploaderID),
		ViewCount:    r.ViewCount,
		LikeCount:    r.LikeCount,
		CommentCount: r.CommentCount,
		UploadDate:   r.UploadDate,
		Duration:     r.Duration,
		Description:  truncateRunes(r.Description, searchDescriptionLimit),
		Thumbnail:    r.Thumbnail,
		WebpageURL:   r.WebpageURL,
	}
}

func (r rawItem) details() VideoDetails {
	var engagement *float64
	if r.ViewCount != nil && *r.ViewCount > 0 && r.LikeCount != nil {
		rate := float64(*r.LikeCount) / float64(*r.ViewCount)
		engagement = &rate
	}
	return VideoDetails{
		VideoID:        r.ID,
		Title:          r.Title,
		Channel:        firstNonEmpty(r.Uploader, r.Channel),
		ChannelID:      firstNonEmpty(r.ChannelID, r.UploaderID),
		ViewCount:      r.ViewCount,
		LikeCount:      r.LikeCount,
		CommentCount:   r.CommentCount,
		UploadDate:     r.UploadDate,
		Duration:       r.Duration,
		Tags:           r.Tags,
		Categories:     r.Categories,
		Description:    r.Description,
		Thumbnail:      r.Thumbnail,
		WebpageURL:     r.WebpageURL,
		EngagementRate: engagement,
	}
}

// SortItems orders search results. "views" and "date" sort descending with
// missing values treated as zero; anything else keeps relevance order.
func SortItems(items []SearchItem, sortBy string) {
	switch sortBy {
	case "views":
		sort.SliceStable(items, func(i, j int) bool {
			return viewsOf(items[i]) > viewsOf(items[j])
		})
	case "date":
		sort.SliceStable(items, func(i, j int) bool {
			return dateOf(items[i]) > dateOf(items[j])
		})
	}
}

func viewsOf(v SearchItem) int64 {
	if v.ViewCount == nil {
		return 0
	}
	return *v.ViewCount
}

// dateOf parses upload_date (YYYYMMDD) numerically; unparseable dates sort last.
func dateOf(v SearchItem) int64 {
	n, err := strconv.ParseInt(v.UploadDate, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
