package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/minjae-lab/infogram/internal/model"
)

// Canvas is the drawing surface
type Canvas struct {
	W      int
	H      int
	Margin int
}

// TextBlock carries every string the SVG templates place
type TextBlock struct {
	Headline     string
	Dek          string
	Keywords     []string
	KeyPoints    []string
	QuoteLine    string
	CalloutTitle string
	CalloutBody  string
	SourcesLine  string
	ChartTitle   string
	ChartNote    string
	Big1         string
	Big1Label    string
	Big2         string
	Big2Label    string
	Timeline     []model.TimelineItem
	LeftTitle    string
	RightTitle   string
	CompareRows  []model.CompareItem
}

// Flags gate optional template sections
type Flags struct {
	HasQuote   bool
	HasCallout bool
}

// Model is the flattened input the SVG templates render from
type Model struct {
	Canvas  Canvas
	Text    TextBlock
	Flags   Flags
	Numbers []model.NumericClaim
}

const (
	canvasSize   = 1080
	canvasMargin = 72
	maxNumbers   = 4
	maxTimeline  = 8
	maxCompare   = 6
	maxURLRunes  = 42
)

// BuildModel flattens an infographic spec into the render model
func BuildModel(spec *model.InfographicSpec) *Model {
	c := spec.Content

	kp := make([]string, 0, 3)
	for _, p := range c.KeyPoints {
		kp = append(kp, strings.TrimSpace(p.Text))
	}
	for len(kp) < 3 {
		kp = append(kp, "")
	}
	kp = kp[:3]

	var callout model.Callout
	if len(c.Callouts) > 0 {
		callout = c.Callouts[0]
	}

	nums := c.Numbers
	if len(nums) > maxNumbers {
		nums = nums[:maxNumbers]
	}

	big1, big1Label := bigNumber(nums, 0)
	big2, big2Label := bigNumber(nums, 1)

	chartTitle, chartNote := "", ""
	if len(c.Charts) > 0 {
		chartTitle = strings.TrimSpace(c.Charts[0].Title)
		chartNote = strings.TrimSpace(c.Charts[0].Note)
	}

	tl := c.Timeline
	if len(tl) > maxTimeline {
		tl = tl[:maxTimeline]
	}

	rows := c.Compare.Items
	if len(rows) > maxCompare {
		rows = rows[:maxCompare]
	}

	keywords := c.Keywords
	if len(keywords) > 6 {
		keywords = keywords[:6]
	}

	quoteLine := strings.TrimSpace(c.Quote.Text)

	return &Model{
		Canvas: Canvas{W: canvasSize, H: canvasSize, Margin: canvasMargin},
		Text: TextBlock{
			Headline:     strings.TrimSpace(c.Headline),
			Dek:          strings.TrimSpace(c.Dek),
			Keywords:     keywords,
			KeyPoints:    kp,
			QuoteLine:    quoteLine,
			CalloutTitle: strings.TrimSpace(callout.Title),
			CalloutBody:  strings.TrimSpace(callout.Body),
			SourcesLine:  sourcesLine(spec.Meta),
			ChartTitle:   chartTitle,
			ChartNote:    chartNote,
			Big1:         big1,
			Big1Label:    big1Label,
			Big2:         big2,
			Big2Label:    big2Label,
			Timeline:     tl,
			LeftTitle:    c.Compare.LeftTitle,
			RightTitle:   c.Compare.RightTitle,
			CompareRows:  rows,
		},
		Flags: Flags{
			HasQuote:   quoteLine != "",
			HasCallout: callout.Title != "" || callout.Body != "",
		},
		Numbers: nums,
	}
}

// bigNumber renders the i-th KPI as display value + label, preferring
// the enriched label and falling back to the claim context.
func bigNumber(nums []model.NumericClaim, i int) (string, string) {
	if i >= len(nums) {
		return "", ""
	}
	n := nums[i]
	label := strings.TrimSpace(n.Label)
	if label == "" {
		label = strings.TrimSpace(n.Context)
	}
	return n.ValueString() + n.Unit, label
}

func sourcesLine(meta model.Meta) string {
	short := strings.TrimPrefix(meta.SourceURL, "https://")
	short = strings.TrimPrefix(short, "http://")
	if runes := []rune(short); len(runes) > maxURLRunes {
		short = string(runes[:maxURLRunes-3]) + "..."
	}
	return strings.TrimSpace(fmt.Sprintf("출처: %s · %s · %s", meta.Publisher, meta.Date, short))
}

var sentenceSplitRe = regexp.MustCompile(`(?:[.!?。…])\s+|\n+`)

// KeyPoints drafts k key points from the first sentences long enough
// to carry a takeaway, padded with empty strings to k.
func KeyPoints(text string, k int) []string {
	if k <= 0 {
		k = 3
	}
	text = strings.TrimSpace(text)

	var picked []string
	if text != "" {
		for _, s := range sentenceSplitRe.Split(text, -1) {
			s = strings.TrimSpace(s)
			if len([]rune(s)) >= 25 {
				picked = append(picked, s)
			}
			if len(picked) >= k {
				break
			}
		}
	}
	for len(picked) < k {
		picked = append(picked, "")
	}
	return picked
}

// Callout returns a single-line excerpt of the text, ellipsized
func Callout(text string, maxRunes int) string {
	if maxRunes <= 0 {
		maxRunes = 160
	}
	text = strings.ReplaceAll(strings.TrimSpace(text), "\n", " ")
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes]) + "…"
}
