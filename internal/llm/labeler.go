package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/minjae-lab/infogram/internal/model"
)

// Labeler wraps a Provider with the merge policy the pipeline relies
// on: enrichment is optional, and any failure returns the input claims
// unchanged. A nil provider is a valid, permanently-disabled Labeler.
type Labeler struct {
	provider  Provider
	maxInput  int
	maxOutput int
}

// NewLabeler creates a labeler over an optional provider. maxInput
// caps how many claims are sent per call; maxOutput caps how many
// enriched claims are kept.
func NewLabeler(provider Provider, maxInput, maxOutput int) *Labeler {
	if maxInput <= 0 {
		maxInput = 8
	}
	if maxOutput <= 0 {
		maxOutput = 6
	}
	return &Labeler{provider: provider, maxInput: maxInput, maxOutput: maxOutput}
}

// IsEnabled reports whether a provider is configured
func (l *Labeler) IsEnabled() bool {
	return l != nil && l.provider != nil
}

// Enrich asks the oracle to label the claims and merges the reply by
// positional index. Out-of-range or missing indices leave the claim
// untouched; items marked drop are removed; on any provider error the
// original claims come back unchanged.
func (l *Labeler) Enrich(ctx context.Context, claims []model.NumericClaim, titleHint string) []model.NumericClaim {
	if !l.IsEnabled() || len(claims) == 0 {
		return claims
	}

	input := claims
	if len(input) > l.maxInput {
		input = input[:l.maxInput]
	}

	resp, err := l.provider.Label(ctx, LabelRequest{
		TitleHint: titleHint,
		Claims:    input,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: labeling failed, keeping unlabeled claims: %v\n", err)
		return claims
	}

	return MergeLabels(claims, len(input), resp.Items, l.maxOutput)
}

// MergeLabels applies oracle items to a copy of the claims. sent is
// how many leading claims were in the request; items addressing other
// positions are ignored. Only label/note/trend may change.
func MergeLabels(claims []model.NumericClaim, sent int, items []LabelItem, maxOutput int) []model.NumericClaim {
	out := make([]model.NumericClaim, len(claims))
	copy(out, claims)

	dropped := make(map[int]bool)
	for _, item := range items {
		if item.Index < 0 || item.Index >= sent || item.Index >= len(out) {
			continue
		}
		if item.Drop {
			dropped[item.Index] = true
			continue
		}
		c := &out[item.Index]
		if item.Label != "" {
			c.Label = item.Label
		}
		if item.Note != "" {
			c.Note = item.Note
		}
		switch model.Trend(item.Trend) {
		case model.TrendUp, model.TrendDown, model.TrendNeutral:
			c.Trend = model.Trend(item.Trend)
		}
	}

	kept := out[:0]
	for i, c := range out {
		if dropped[i] {
			continue
		}
		kept = append(kept, c)
		if len(kept) >= maxOutput {
			break
		}
	}
	return kept
}
