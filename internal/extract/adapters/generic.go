package adapters

import (
	"strings"

	"github.com/minjae-lab/infogram/internal/model"
	"golang.org/x/net/html"
)

// Article bodies shorter than this are assumed to be a wrong container
// (nav, teaser) and the next candidate is tried.
const minBodyRunes = 200

// bodyFallbackRunes bounds the whole-page fallback text
const bodyFallbackRunes = 5000

// GenericAdapter scrapes articles from unknown news sites using common
// Korean newsroom DOM conventions.
type GenericAdapter struct {
	BaseAdapter
}

// NewGenericAdapter creates the fallback article scraper
func NewGenericAdapter() *GenericAdapter {
	return &GenericAdapter{}
}

// Name returns the adapter name
func (a *GenericAdapter) Name() string {
	return "generic"
}

// CanHandle always returns true (fallback adapter)
func (a *GenericAdapter) CanHandle(rawURL string) bool {
	return true
}

// ExtractArticle pulls metadata and body text using common selectors
func (a *GenericAdapter) ExtractArticle(doc *html.Node, rawURL string) (*model.Article, error) {
	candidates := []func(*html.Node) bool{
		a.ByTag("article"),
		a.ByItemprop("articleBody"),
		a.ByClass("div", "article-body"),
		a.ByID("articleBody"),
		a.ByID("article-body"),
		a.ByClass("div", "newsct_article"),
		a.ByID("dic_area"),
	}
	return a.scrape(doc, rawURL, candidates)
}

// scrape is shared by the generic and site-specific adapters: metadata
// from meta tags, body from the first candidate container long enough
// to be a real article, whole-page text as last resort.
func (a *GenericAdapter) scrape(doc *html.Node, rawURL string, candidates []func(*html.Node) bool) (*model.Article, error) {
	title := a.Meta(doc, "og:title")
	if title == "" {
		title = a.Title(doc)
	}

	published := a.Meta(doc, "article:published_time")
	if published == "" {
		published = a.FirstText(doc,
			a.ByTag("time"),
			a.ByClass("span", "t11"),
			a.ByClass("span", "date"),
			a.ByClass("em", "date"),
		)
	}

	byline := a.FirstText(doc,
		a.ByClass("span", "byline"),
		a.ByClass("p", "byline"),
		a.ByClass("em", "byline"),
		a.ByClass("span", "journalist"),
		a.ByClass("span", "reporter"),
	)

	content := ""
	for _, candidate := range candidates {
		if node := a.FindFirst(doc, candidate); node != nil {
			text := a.TextContent(node, "\n")
			if len([]rune(text)) > minBodyRunes {
				content = text
				break
			}
		}
	}
	if content == "" {
		if body := a.FindFirst(doc, a.ByTag("body")); body != nil {
			content = truncateRunes(a.TextContent(body, "\n"), bodyFallbackRunes)
		}
	}

	return &model.Article{
		URL:       rawURL,
		Title:     strings.TrimSpace(title),
		Published: published,
		Byline:    byline,
		Content:   content,
		OGImage:   a.Meta(doc, "og:image"),
	}, nil
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
