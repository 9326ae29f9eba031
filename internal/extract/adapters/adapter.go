package adapters

import (
	"net/url"
	"strings"

	"github.com/minjae-lab/infogram/internal/model"
	"golang.org/x/net/html"
)

// Adapter defines the interface for site-specific article scrapers
type Adapter interface {
	// Name returns the adapter name
	Name() string

	// CanHandle checks if this adapter can handle the given URL
	CanHandle(rawURL string) bool

	// ExtractArticle pulls the article body and metadata from the DOM
	ExtractArticle(doc *html.Node, rawURL string) (*model.Article, error)
}

// Registry manages site adapters
type Registry struct {
	adapters []Adapter
	generic  Adapter
}

// NewRegistry creates a registry with the built-in adapters registered
// and the generic scraper as fallback.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(NewSegyeAdapter())
	r.generic = NewGenericAdapter()
	return r
}

// Register registers a new adapter
func (r *Registry) Register(a Adapter) {
	r.adapters = append(r.adapters, a)
}

// FindAdapter finds the best adapter for the given URL
func (r *Registry) FindAdapter(rawURL string) Adapter {
	for _, a := range r.adapters {
		if a.CanHandle(rawURL) {
			return a
		}
	}
	return r.generic
}

// BaseAdapter provides DOM helpers shared by adapters
type BaseAdapter struct{}

// Meta returns the content of a <meta> node matched by property= or
// name= (og:title, article:published_time, ...).
func (b *BaseAdapter) Meta(doc *html.Node, key string) string {
	node := b.FindFirst(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != "meta" {
			return false
		}
		return b.GetAttribute(n, "property") == key || b.GetAttribute(n, "name") == key
	})
	if node == nil {
		return ""
	}
	return strings.TrimSpace(b.GetAttribute(node, "content"))
}

// Title returns the document <title> text
func (b *BaseAdapter) Title(doc *html.Node) string {
	node := b.FindFirst(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "title"
	})
	if node == nil {
		return ""
	}
	return strings.TrimSpace(b.TextContent(node, " "))
}

// TextContent extracts visible text below n, joining text nodes with
// sep and skipping script/style/noscript/iframe subtrees.
func (b *BaseAdapter) TextContent(n *html.Node, sep string) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				if buf.Len() > 0 {
					buf.WriteString(sep)
				}
				buf.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}

// HasClass checks if a node carries a CSS class
func (b *BaseAdapter) HasClass(n *html.Node, className string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, class := range strings.Fields(b.GetAttribute(n, "class")) {
		if class == className {
			return true
		}
	}
	return false
}

// GetAttribute gets an attribute value from a node
func (b *BaseAdapter) GetAttribute(n *html.Node, attrKey string) string {
	for _, attr := range n.Attr {
		if attr.Key == attrKey {
			return attr.Val
		}
	}
	return ""
}

// FindFirst finds the first node matching a predicate
func (b *BaseAdapter) FindFirst(n *html.Node, predicate func(*html.Node) bool) *html.Node {
	var result *html.Node

	var walk func(*html.Node) bool
	walk = func(node *html.Node) bool {
		if predicate(node) {
			result = node
			return true
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}

	walk(n)
	return result
}

// FirstText returns the trimmed text of the first node matching any of
// the predicates, tried in order.
func (b *BaseAdapter) FirstText(doc *html.Node, predicates ...func(*html.Node) bool) string {
	for _, p := range predicates {
		if node := b.FindFirst(doc, p); node != nil {
			if text := strings.TrimSpace(b.TextContent(node, " ")); text != "" {
				return text
			}
		}
	}
	return ""
}

// ByTag matches element nodes by tag name
func (b *BaseAdapter) ByTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

// ByID matches element nodes by id attribute
func (b *BaseAdapter) ByID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && b.GetAttribute(n, "id") == id
	}
}

// ByClass matches element nodes by tag and class
func (b *BaseAdapter) ByClass(tag, class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag && b.HasClass(n, class)
	}
}

// ByItemprop matches element nodes by itemprop attribute
func (b *BaseAdapter) ByItemprop(value string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && b.GetAttribute(n, "itemprop") == value
	}
}

// hostOf extracts the lowercased host of a URL, without port
func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Host)
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return host
}
