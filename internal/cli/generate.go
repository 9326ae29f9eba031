package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/minjae-lab/infogram/internal/model"
	"github.com/minjae-lab/infogram/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outSVG      string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noSVG       bool
	insecureTLS bool
	httpProxy   string
	httpsProxy  string
	selectK     int
	anyHost     bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <url>",
	Short: "Generate an infographic spec from a single article URL",
	Long: `Generate fetches one article page and builds an infographic spec:
- Scrape title, date, byline and body text
- Extract numeric claims (value + unit + surrounding sentence)
- Drop noise (dates, clock times, pageview counters, ordinals)
- Score and select the top claims across unit categories
- Optionally label the selected numbers with an LLM
- Write the spec as JSON plus an optional SVG preview

Example:
  infogram generate https://www.segye.com/newsView/20250810512649
  infogram generate https://www.segye.com/... --json spec.json --svg card.svg
  infogram generate https://www.segye.com/... --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Output flags
	generateCmd.Flags().StringVar(&outJSON, "json", "spec.json", "output JSON path")
	generateCmd.Flags().StringVar(&outSVG, "svg", "", "output SVG path (optional)")
	generateCmd.Flags().BoolVar(&noSVG, "no-svg", false, "skip SVG rendering entirely")

	// Extraction flags
	generateCmd.Flags().IntVar(&selectK, "top", 4, "number of KPI numbers to select")
	generateCmd.Flags().BoolVar(&anyHost, "any-host", false, "allow any publisher host (disable allowlist)")

	// HTTP flags
	generateCmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "overall generation timeout")
	generateCmd.Flags().StringVar(&userAgent, "ua", "Infogram/0.2 (+https://github.com/minjae-lab/infogram)", "HTTP User-Agent")
	generateCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	generateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	generateCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	generateCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	generateCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// LLM flags
	generateCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM number labeling")
	generateCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	generateCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Generating: %s\n", url)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	// Create pipeline
	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Fetching article...\n")
	}

	result, err := p.GenerateFromURL(ctx, url)
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Scraped article: %s\n", result.Article.Title)
		fmt.Fprintf(os.Stderr, "✓ Selected %d KPI numbers\n", len(result.Spec.Content.Numbers))
		fmt.Fprintf(os.Stderr, "✓ Chose template: %s\n", result.Spec.Layout.Template)
		fmt.Fprintln(os.Stderr)
	}

	// Render outputs
	renderer := pipeline.NewRenderer()
	if err := renderer.Render(result, outJSON, outSVG, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles the runtime configuration from flags and the
// environment, shared by generate and batch.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Extract.SelectK = selectK
	cfg.Output.Verbose = verbose
	cfg.Output.SVG = !noSVG

	if anyHost {
		cfg.Sources.AllowedHosts = nil
	}

	// Configure LLM if enabled
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		// Get API key from environment
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			baseURL := os.Getenv("OLLAMA_BASE_URL")
			if baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}
