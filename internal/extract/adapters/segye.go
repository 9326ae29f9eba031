package adapters

import (
	"strings"

	"github.com/minjae-lab/infogram/internal/model"
	"golang.org/x/net/html"
)

// SegyeAdapter scrapes segye.com articles. Its body containers are
// tried before the common candidates.
type SegyeAdapter struct {
	GenericAdapter
}

// NewSegyeAdapter creates the segye.com scraper
func NewSegyeAdapter() *SegyeAdapter {
	return &SegyeAdapter{}
}

// Name returns the adapter name
func (a *SegyeAdapter) Name() string {
	return "segye"
}

// CanHandle matches segye.com and its subdomains
func (a *SegyeAdapter) CanHandle(rawURL string) bool {
	host := hostOf(rawURL)
	return host == "segye.com" || strings.HasSuffix(host, ".segye.com")
}

// ExtractArticle prefers segye-specific body containers
func (a *SegyeAdapter) ExtractArticle(doc *html.Node, rawURL string) (*model.Article, error) {
	candidates := []func(*html.Node) bool{
		a.ByClass("div", "view_text"),
		a.ByID("article_txt"),
		a.ByTag("article"),
		a.ByItemprop("articleBody"),
		a.ByClass("div", "article-body"),
		a.ByID("articleBody"),
	}
	return a.scrape(doc, rawURL, candidates)
}
