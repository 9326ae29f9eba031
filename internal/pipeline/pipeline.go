package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/minjae-lab/infogram/internal/cache"
	"github.com/minjae-lab/infogram/internal/extract"
	"github.com/minjae-lab/infogram/internal/extract/adapters"
	"github.com/minjae-lab/infogram/internal/llm"
	"github.com/minjae-lab/infogram/internal/model"
	"github.com/minjae-lab/infogram/internal/render"
	"github.com/minjae-lab/infogram/internal/score"
	"github.com/minjae-lab/infogram/internal/util"
	"github.com/minjae-lab/infogram/internal/validate"
	"github.com/minjae-lab/infogram/internal/worker"
	"golang.org/x/net/html"
)

// Pipeline orchestrates URL → article → KPI claims → infographic spec
type Pipeline struct {
	fetcher   *Fetcher
	registry  *adapters.Registry
	checker   *validate.SourceChecker
	extractor *extract.NumberExtractor
	labeler   *llm.Labeler
	robots    *util.RobotsChecker
	limiter   *worker.Limiter
	pageCache cache.Cache
	config    *model.Config
}

// NewPipeline creates a pipeline from configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var labeler *llm.Labeler
	if cfg.LLM.Provider != "" {
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM, cfg.HTTP))
		if err != nil {
			fmt.Printf("Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			labeler = llm.NewLabeler(provider, cfg.LLM.MaxInput, cfg.LLM.MaxOutput)
		}
	}

	var pageCache cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			pageCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			pageCache = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	var robots *util.RobotsChecker
	if cfg.HTTP.RespectRobots {
		robots = util.NewRobotsChecker(util.NormalizeUserAgent(cfg.HTTP.UserAgent), cfg.HTTP.Timeout)
	}

	return &Pipeline{
		fetcher: NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes,
			cfg.HTTP.InsecureTLS, cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
		registry:  adapters.NewRegistry(),
		checker:   validate.NewSourceChecker(&cfg.Sources),
		extractor: extract.NewNumberExtractor(cfg.Extract.MaxItems, cfg.Extract.ContextChars),
		labeler:   labeler,
		robots:    robots,
		limiter:   worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.Burst),
		pageCache: pageCache,
		config:    cfg,
	}
}

// Result contains the complete generation result
type Result struct {
	Spec    *model.InfographicSpec
	Article *model.Article
	Meta    model.FetchMeta
	SVG     string
}

// GenerateFromURL runs the full pipeline for a single article URL.
// Fetch and scrape failures are returned as errors; an article with no
// extractable numbers is not an error and produces a spec with an
// empty numbers list.
func (p *Pipeline) GenerateFromURL(ctx context.Context, rawURL string) (*Result, error) {
	rawURL = validate.NormalizeURL(rawURL)
	if err := p.checker.Check(rawURL); err != nil {
		return nil, fmt.Errorf("source check: %w", err)
	}

	fetchResult, err := p.fetchPage(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	doc, err := html.Parse(strings.NewReader(fetchResult.HTML))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	adapter := p.registry.FindAdapter(fetchResult.FinalURL)
	article, err := adapter.ExtractArticle(doc, fetchResult.FinalURL)
	if err != nil {
		return nil, fmt.Errorf("scrape article (%s): %w", adapter.Name(), err)
	}

	spec := p.BuildSpec(ctx, article)

	svg := ""
	if p.config.Output.SVG {
		rendered, err := render.RenderSVG(spec.Layout.Template, render.BuildModel(spec))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: SVG rendering failed: %v\n", err)
		} else {
			svg = rendered
		}
	}

	return &Result{
		Spec:    spec,
		Article: article,
		Meta:    fetchResult.Meta,
		SVG:     svg,
	}, nil
}

// BuildSpec runs the core extraction/scoring/selection over article
// text and assembles the infographic spec. It never fails: missing
// numbers, key points or labels just leave those sections empty.
func (p *Pipeline) BuildSpec(ctx context.Context, article *model.Article) *model.InfographicSpec {
	spec := model.NewSpec(p.config.Sources.Publisher)
	spec.GeneratedAt = time.Now().UTC()
	spec.Meta.SourceURL = article.URL
	spec.Meta.Title = article.Title
	spec.Meta.Date = article.Published
	spec.Meta.Byline = article.Byline
	spec.Content.Headline = strings.TrimSpace(article.Title)

	// Draft key points and callout from the prose.
	kp := render.KeyPoints(article.Content, p.config.Extract.KeyPoints)
	for i := range spec.Content.KeyPoints {
		if i < len(kp) {
			spec.Content.KeyPoints[i].Text = kp[i]
		}
	}
	spec.Content.Callouts[0].Body = render.Callout(article.Content, 160)

	// Numeric KPI pipeline: extract, drop noise, dedupe, select.
	claims := p.extractor.Extract(article.Content)
	claims = extract.FilterNoise(claims)
	claims = extract.Dedupe(claims)
	selected := score.Select(claims, p.config.Extract.SelectK, article.Title)

	// Optional enrichment; failures keep the unlabeled claims.
	selected = p.labeler.Enrich(ctx, selected, article.Title)
	spec.Content.Numbers = selected

	if article.URL != "" {
		spec.Content.Sources = []model.Source{
			{Name: p.config.Sources.Publisher, Detail: article.URL},
		}
	}

	spec.Layout = render.ChooseLayout(spec)
	return spec
}

// fetchPage fetches through the page cache, the rate limiter and the
// robots.txt checker.
func (p *Pipeline) fetchPage(ctx context.Context, rawURL string) (*FetchResult, error) {
	key := cache.PageKey(rawURL)
	if p.pageCache != nil {
		if data, found := p.pageCache.Get(key); found {
			return &FetchResult{
				HTML:     string(data),
				Meta:     model.FetchMeta{StatusCode: 200},
				FinalURL: rawURL,
			}, nil
		}
	}

	if p.robots != nil {
		allowed, crawlDelay, err := p.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, fmt.Errorf("disallowed by robots.txt: %s", rawURL)
		}
		if err := p.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
			return nil, err
		}
	} else if err := p.limiter.Wait(ctx, rawURL); err != nil {
		return nil, err
	}

	result, err := p.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if p.pageCache != nil {
		_ = p.pageCache.Set(key, []byte(result.HTML), 0)
	}
	return result, nil
}
