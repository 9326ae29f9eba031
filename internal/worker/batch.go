package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// GenerateFunc runs the full pipeline for one article URL. The worker
// package only schedules the calls; what "generate" means belongs to
// the caller.
type GenerateFunc func(ctx context.Context, url string) error

// GenerateJob is one URL to process
type GenerateJob struct {
	URL string
	Run GenerateFunc
}

// Execute runs the job
func (j *GenerateJob) Execute(ctx context.Context) Result {
	return &GenerateResult{URL: j.URL, Err: j.Run(ctx, j.URL)}
}

// GenerateResult is the outcome for one URL
type GenerateResult struct {
	URL string
	Err error
}

// GetError returns the error from the result
func (r *GenerateResult) GetError() error {
	return r.Err
}

// BatchProcessor processes multiple article URLs concurrently
type BatchProcessor struct {
	run         GenerateFunc
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor. Rate limiting applies
// per domain across all workers; rps <= 0 disables it.
func NewBatchProcessor(run GenerateFunc, concurrency int, rps float64, burst int) *BatchProcessor {
	var limiter *Limiter
	if rps > 0 {
		limiter = NewLimiter(rps, burst)
	}
	return &BatchProcessor{
		run:         run,
		concurrency: concurrency,
		limiter:     limiter,
	}
}

// ProcessURLs processes the URLs with the worker pool
func (b *BatchProcessor) ProcessURLs(ctx context.Context, urls []string) []*GenerateResult {
	if len(urls) == 0 {
		return []*GenerateResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, url := range urls {
		pool.Submit(&GenerateJob{URL: url, Run: b.paced})
	}

	results := pool.Wait()

	out := make([]*GenerateResult, len(results))
	for i, r := range results {
		out[i] = r.(*GenerateResult)
	}
	return out
}

// paced applies the per-domain rate limit before running a job
func (b *BatchProcessor) paced(ctx context.Context, url string) error {
	if b.limiter != nil {
		if err := b.limiter.Wait(ctx, url); err != nil {
			return err
		}
	}
	return b.run(ctx, url)
}

// ProcessFile reads URLs from a file and processes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*GenerateResult, error) {
	urls, err := ReadURLsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}
	return b.ProcessURLs(ctx, urls), nil
}

// ReadURLsFromFile reads URLs from a file, one per line, skipping
// blank lines, comments and duplicates.
func ReadURLsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return urls, nil
}
