package score

import (
	"strings"

	"github.com/minjae-lab/infogram/internal/model"
)

// Rule is one additive scoring rule. Rules are evaluated in order and
// their weights summed; Weight may be a function of the claim for the
// two non-constant rules (context richness, small-value penalty).
type Rule struct {
	Name    string
	Applies func(c model.NumericClaim, titleHint string) bool
	Weight  func(c model.NumericClaim, titleHint string) float64
}

const (
	contextCap      = 180
	titlePrefixLen  = 12
	smallValueLimit = 2
)

func constant(w float64) func(model.NumericClaim, string) float64 {
	return func(model.NumericClaim, string) float64 { return w }
}

// rules orders the KPI desirability heuristics. Percentage units are
// the strongest signal, then counts, money, time spans; context and
// title proximity nudge the total; bare small integers are penalized.
var rules = []Rule{
	{
		Name: "ratio_unit",
		Applies: func(c model.NumericClaim, _ string) bool {
			return strings.Contains(c.Unit, "%")
		},
		Weight: constant(50),
	},
	{
		Name: "count_unit",
		Applies: func(c model.NumericClaim, _ string) bool {
			return c.Unit == "명" || c.Unit == "건" || c.Unit == "개"
		},
		Weight: constant(35),
	},
	{
		Name: "money_unit",
		Applies: func(c model.NumericClaim, _ string) bool {
			switch c.Unit {
			case "조", "억", "만", "원":
				return true
			}
			return strings.Contains(c.Unit, "원")
		},
		Weight: constant(30),
	},
	{
		Name: "time_unit",
		Applies: func(c model.NumericClaim, _ string) bool {
			switch c.Unit {
			case "년", "개월", "일", "시간":
				return true
			}
			return false
		},
		Weight: constant(20),
	},
	{
		Name: "title_proximity",
		Applies: func(c model.NumericClaim, titleHint string) bool {
			prefix := runePrefix(strings.TrimSpace(titleHint), titlePrefixLen)
			return prefix != "" && strings.Contains(c.Context, prefix)
		},
		Weight: constant(8),
	},
	{
		Name: "context_richness",
		Applies: func(c model.NumericClaim, _ string) bool {
			return len(c.Context) > 0
		},
		Weight: func(c model.NumericClaim, _ string) float64 {
			n := len([]rune(c.Context))
			if n > contextCap {
				n = contextCap
			}
			return float64(n) / 60
		},
	},
	{
		Name: "small_value_penalty",
		Applies: func(c model.NumericClaim, _ string) bool {
			return c.Value <= smallValueLimit && !strings.Contains(c.Unit, "%")
		},
		Weight: constant(-10),
	},
	{
		Name: "labeled_bonus",
		Applies: func(c model.NumericClaim, _ string) bool {
			return c.Label != ""
		},
		Weight: constant(5),
	},
}

// Score sums all applicable rule weights for a claim. Pure and exactly
// reproducible for fixed inputs.
func Score(c model.NumericClaim, titleHint string) float64 {
	var total float64
	for _, r := range rules {
		if r.Applies(c, titleHint) {
			total += r.Weight(c, titleHint)
		}
	}
	return total
}

// Breakdown returns the per-rule contributions, in rule order. Useful
// for explaining why a claim was selected.
func Breakdown(c model.NumericClaim, titleHint string) map[string]float64 {
	parts := make(map[string]float64)
	for _, r := range rules {
		if r.Applies(c, titleHint) {
			parts[r.Name] = r.Weight(c, titleHint)
		}
	}
	return parts
}

func runePrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
