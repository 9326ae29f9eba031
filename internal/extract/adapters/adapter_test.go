package adapters

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parse(t *testing.T, doc string) *html.Node {
	t.Helper()
	node, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Expected parseable HTML, got %v", err)
	}
	return node
}

// longBody pads Korean filler so the candidate container passes the
// minimum body length gate.
func longBody(lead string) string {
	return lead + " " + strings.Repeat("기사 본문 내용이 이어진다. ", 20)
}

func TestRegistry_FindAdapter(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		url  string
		want string
	}{
		{"https://www.segye.com/newsView/20250810512649", "segye"},
		{"https://segye.com/newsView/1", "segye"},
		{"https://news.example.com/article/1", "generic"},
		{"not a url", "generic"},
	}

	for _, tt := range tests {
		if got := registry.FindAdapter(tt.url).Name(); got != tt.want {
			t.Errorf("FindAdapter(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestGenericAdapter_MetaAndBody(t *testing.T) {
	doc := parse(t, `<!DOCTYPE html><html><head>
		<meta property="og:title" content="실업률 3.5%로 상승">
		<meta property="article:published_time" content="2025-08-10T09:00:00+09:00">
		<meta property="og:image" content="https://img.example.com/1.jpg">
		</head><body>
		<span class="byline">김민재 기자</span>
		<article>`+longBody("올해 실업률은 3.5%로 집계됐다.")+`</article>
		</body></html>`)

	adapter := NewGenericAdapter()
	article, err := adapter.ExtractArticle(doc, "https://news.example.com/1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if article.Title != "실업률 3.5%로 상승" {
		t.Errorf("Expected og:title, got %q", article.Title)
	}
	if article.Published != "2025-08-10T09:00:00+09:00" {
		t.Errorf("Expected published time, got %q", article.Published)
	}
	if article.Byline != "김민재 기자" {
		t.Errorf("Expected byline, got %q", article.Byline)
	}
	if !strings.Contains(article.Content, "실업률은 3.5%") {
		t.Errorf("Expected article body, got %q", article.Content[:60])
	}
	if article.OGImage != "https://img.example.com/1.jpg" {
		t.Errorf("Expected og:image, got %q", article.OGImage)
	}
}

func TestGenericAdapter_TitleFallback(t *testing.T) {
	doc := parse(t, `<html><head><title>문서 제목</title></head><body>
		<article>`+longBody("본문이다.")+`</article></body></html>`)

	adapter := NewGenericAdapter()
	article, err := adapter.ExtractArticle(doc, "https://news.example.com/1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if article.Title != "문서 제목" {
		t.Errorf("Expected <title> fallback, got %q", article.Title)
	}
}

func TestGenericAdapter_ShortContainerSkipped(t *testing.T) {
	// The <article> teaser is too short; the itemprop container wins.
	doc := parse(t, `<html><body>
		<article>짧은 티저</article>
		<div itemprop="articleBody">`+longBody("진짜 본문은 여기에 있다.")+`</div>
		</body></html>`)

	adapter := NewGenericAdapter()
	article, err := adapter.ExtractArticle(doc, "https://news.example.com/1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(article.Content, "진짜 본문") {
		t.Errorf("Expected the longer container, got %q", article.Content[:60])
	}
}

func TestGenericAdapter_BodyFallback(t *testing.T) {
	doc := parse(t, `<html><body><p>`+longBody("컨테이너 없는 페이지다.")+`</p></body></html>`)

	adapter := NewGenericAdapter()
	article, err := adapter.ExtractArticle(doc, "https://news.example.com/1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(article.Content, "컨테이너 없는") {
		t.Errorf("Expected whole-page fallback text, got %q", article.Content[:60])
	}
}

func TestGenericAdapter_SkipsScripts(t *testing.T) {
	doc := parse(t, `<html><body><article>
		<script>var pageviews = 99999;</script>
		`+longBody("스크립트는 본문이 아니다.")+`</article></body></html>`)

	adapter := NewGenericAdapter()
	article, err := adapter.ExtractArticle(doc, "https://news.example.com/1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.Contains(article.Content, "pageviews") {
		t.Error("Expected script content excluded from body text")
	}
}

func TestSegyeAdapter_ViewTextContainer(t *testing.T) {
	doc := parse(t, `<html><head>
		<meta property="og:title" content="세계일보 기사">
		</head><body>
		<div class="view_text">`+longBody("세계일보 본문 문단이다.")+`</div>
		</body></html>`)

	adapter := NewSegyeAdapter()
	if !adapter.CanHandle("https://www.segye.com/newsView/1") {
		t.Fatal("Expected segye adapter to handle segye.com URLs")
	}
	if adapter.CanHandle("https://example.com/1") {
		t.Error("Expected segye adapter to reject other hosts")
	}

	article, err := adapter.ExtractArticle(doc, "https://www.segye.com/newsView/1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(article.Content, "세계일보 본문") {
		t.Errorf("Expected view_text body, got %q", article.Content[:60])
	}
}
