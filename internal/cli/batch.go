package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/minjae-lab/infogram/internal/pipeline"
	"github.com/minjae-lab/infogram/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchRPS     float64
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Generate infographic specs for multiple URLs from a file",
	Long: `Batch processes multiple article URLs concurrently:
- Read URLs from input file (one per line, # comments allowed)
- Process URLs in parallel with configurable worker count
- Rate-limit requests per publisher domain
- Write one spec JSON (and SVG) per article into the output directory

Example:
  infogram batch urls.txt
  infogram batch urls.txt --concurrency 4 --output-dir ./specs
  infogram batch urls.txt --rps 0.5 --timeout 10m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./infogram-specs", "output directory for specs")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&batchRPS, "rps", 0.5, "max requests per second per domain (0 disables)")

	// Inherit flags from generate command
	batchCmd.Flags().DurationVar(&timeout, "fetch-timeout", 30*time.Second, "timeout for individual fetches")
	batchCmd.Flags().StringVar(&userAgent, "ua", "Infogram/0.2 (+https://github.com/minjae-lab/infogram)", "HTTP User-Agent")
	batchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	batchCmd.Flags().BoolVar(&noSVG, "no-svg", false, "skip SVG rendering entirely")
	batchCmd.Flags().IntVar(&selectK, "top", 4, "number of KPI numbers to select")
	batchCmd.Flags().BoolVar(&anyHost, "any-host", false, "allow any publisher host (disable allowlist)")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM number labeling")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Infogram Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency
	cfg.Concurrency.RequestsPerSecond = batchRPS

	if llmEnabled {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", llmProvider, llmModel)
	}

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Create pipeline and renderer shared by all workers
	p := pipeline.NewPipeline(cfg)
	renderer := pipeline.NewRenderer()

	var mu sync.Mutex
	titles := make(map[string]string)

	generate := func(ctx context.Context, rawURL string) error {
		result, err := p.GenerateFromURL(ctx, rawURL)
		if err != nil {
			return err
		}

		slug := slugForURL(rawURL)
		if err := renderer.RenderJSON(result, filepath.Join(outputDir, slug+".json")); err != nil {
			return err
		}
		if result.SVG != "" {
			if err := renderer.RenderSVG(result, filepath.Join(outputDir, slug+".svg")); err != nil {
				return err
			}
		}

		mu.Lock()
		titles[rawURL] = result.Article.Title
		mu.Unlock()
		return nil
	}

	processor := worker.NewBatchProcessor(generate, concurrency, batchRPS, cfg.Concurrency.Burst)

	fmt.Fprintf(os.Stderr, "⚙️  Processing URLs with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.URL, result.Err)
			continue
		}
		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s (%s)\n", result.URL, titles[result.URL])
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d URLs\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// slugForURL builds a stable filesystem-safe name from an article URL
func slugForURL(rawURL string) string {
	s := rawURL
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Host != "" {
		s = parsed.Host + parsed.Path
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	slug := strings.Trim(b.String(), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if len(slug) > 100 {
		slug = slug[:100]
	}
	if slug == "" {
		slug = "article"
	}
	return slug
}
