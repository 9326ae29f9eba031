package validate

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/minjae-lab/infogram/internal/model"
)

// SourceChecker validates that an article URL belongs to one of the
// configured publisher hosts. Hosts are suffix-matched so segye.com
// covers www.segye.com and other subdomains.
type SourceChecker struct {
	allowedHosts []string
}

// NewSourceChecker creates a checker from configuration
func NewSourceChecker(cfg *model.SourcesConfig) *SourceChecker {
	hosts := make([]string, 0, len(cfg.AllowedHosts))
	for _, h := range cfg.AllowedHosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			hosts = append(hosts, h)
		}
	}
	return &SourceChecker{allowedHosts: hosts}
}

// NormalizeURL trims the input and repairs scheme-less www. URLs the
// way users commonly paste them.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "www.") {
		raw = "https://" + raw
	}
	return raw
}

// Check returns an error when the URL is malformed or its host is not
// on the allowlist. An empty allowlist admits every host.
func (s *SourceChecker) Check(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported scheme: %q", parsed.Scheme)
	}

	if len(s.allowedHosts) == 0 {
		return nil
	}

	host := strings.ToLower(parsed.Hostname())
	for _, allowed := range s.allowedHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return nil
		}
	}
	return fmt.Errorf("host %q is not an allowed source", host)
}
