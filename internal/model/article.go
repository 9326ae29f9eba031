package model

// Article holds the scraped content and metadata of a news article.
// The extraction pipeline reads only Content (and Title as a scoring
// hint); the rest flows into the infographic spec metadata.
type Article struct {
	URL       string `json:"url"`
	Title     string `json:"title,omitempty"`
	Published string `json:"published,omitempty"` // As displayed on the page
	Byline    string `json:"byline,omitempty"`
	Content   string `json:"content"`
	OGImage   string `json:"og_image,omitempty"`
}

// FetchMeta contains HTTP metadata from fetching the article page
type FetchMeta struct {
	StatusCode   int               `json:"status_code"`
	ContentType  string            `json:"content_type,omitempty"`
	LastModified string            `json:"last_modified,omitempty"`
	ETag         string            `json:"etag,omitempty"`
	Headers      map[string]string `json:"headers,omitempty"`
}
