package model

import "time"

// InfographicSpec is the complete editable spec for one infographic.
// It is serialized as the tool's primary JSON output and consumed by
// the SVG renderer.
type InfographicSpec struct {
	Meta    Meta    `json:"meta"`
	Style   Style   `json:"style"`
	Content Content `json:"content"`
	Layout  Layout  `json:"layout"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Meta identifies the source article
type Meta struct {
	SourceURL string `json:"source_url"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Date      string `json:"date"`
	Byline    string `json:"byline"`
	Language  string `json:"language"`
}

// Style carries brand/render hints
type Style struct {
	Brand   string   `json:"brand"`
	Tone    string   `json:"tone"`
	Density string   `json:"density"`
	Output  []string `json:"output"`
}

// Content is the body of the infographic
type Content struct {
	Headline  string         `json:"headline"`
	Dek       string         `json:"dek"`
	Keywords  []string       `json:"keywords"`
	KeyPoints []KeyPoint     `json:"key_points"`
	Quote     Quote          `json:"quote"`
	Numbers   []NumericClaim `json:"numbers"`
	Charts    []Chart        `json:"charts"`
	Timeline  []TimelineItem `json:"timeline"`
	Compare   Comparison     `json:"comparison"`
	Callouts  []Callout      `json:"callouts"`
	Sources   []Source       `json:"sources"`
}

// KeyPoint is one headline takeaway
type KeyPoint struct {
	Text       string  `json:"text"`
	Evidence   string  `json:"evidence,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Quote is a pulled quotation, when the article carries one
type Quote struct {
	Speaker string `json:"speaker"`
	Org     string `json:"org"`
	Text    string `json:"text"`
}

// Chart describes an optional chart block
type Chart struct {
	Title string `json:"title"`
	Note  string `json:"note,omitempty"`
}

// TimelineItem is one dated event
type TimelineItem struct {
	Date  string `json:"date"`
	Event string `json:"event"`
}

// Comparison is a left/right contrast block
type Comparison struct {
	LeftTitle  string        `json:"left_title"`
	RightTitle string        `json:"right_title"`
	Items      []CompareItem `json:"items"`
}

// CompareItem is one comparison row
type CompareItem struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Callout is a boxed context note
type Callout struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Source attributes the infographic to its origin
type Source struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// Layout records the chosen template and section order
type Layout struct {
	Template string   `json:"template"`
	Ratio    string   `json:"ratio"`
	Sections []string `json:"sections"`
}

// Template keys understood by the renderer
const (
	TemplateStoryLite = "story_lite"
	TemplateDataFocus = "data_focus"
	TemplateTimeline  = "timeline"
	TemplateCompare   = "compare"
)

// NewSpec returns an empty spec with publisher defaults filled in.
func NewSpec(publisher string) *InfographicSpec {
	return &InfographicSpec{
		Meta: Meta{
			Publisher: publisher,
			Language:  "ko",
		},
		Style: Style{
			Brand:   "segye",
			Tone:    "clean_serif_like",
			Density: "low",
			Output:  []string{"svg"},
		},
		Content: Content{
			Keywords:  []string{},
			KeyPoints: make([]KeyPoint, 3),
			Numbers:   []NumericClaim{},
			Callouts:  []Callout{{Title: "핵심 맥락"}},
			Sources:   []Source{},
		},
		Layout: Layout{
			Template: TemplateStoryLite,
			Ratio:    "1:1",
			Sections: []string{"headline", "key_points", "callout", "sources"},
		},
	}
}
