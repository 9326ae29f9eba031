package extract

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/minjae-lab/infogram/internal/model"
)

// unitTable is the single source of truth for recognized unit tokens.
// Order matters: longer tokens must precede any token that is their
// prefix (%p before %, 개월 before 개, 조원 before 조), otherwise the
// alternation would split a compound unit at the shorter match.
var unitTable = []string{
	"%p",
	"개월", "시간",
	"조원", "억원", "만원",
	"%",
	"명", "건", "개",
	"년", "일", "배",
	"조", "억", "만", "원",
}

// numeralFragment matches grouped (1,234) or plain integers with an
// optional decimal fraction.
const numeralFragment = `(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?)`

var claimRe = regexp.MustCompile(numeralFragment + `\s*(` + unitAlternation() + `)`)

func init() {
	if err := ValidateUnitTable(); err != nil {
		panic(err)
	}
}

func unitAlternation() string {
	parts := make([]string, len(unitTable))
	for i, u := range unitTable {
		parts[i] = regexp.QuoteMeta(u)
	}
	return strings.Join(parts, "|")
}

// ValidateUnitTable checks the invariants the extraction pattern relies
// on: no duplicate tokens, and no token appearing after a longer token
// it prefixes. Called once at startup.
func ValidateUnitTable() error {
	seen := make(map[string]bool)
	for i, u := range unitTable {
		if seen[u] {
			return fmt.Errorf("duplicate unit token %q", u)
		}
		seen[u] = true
		for j := 0; j < i; j++ {
			if strings.HasPrefix(unitTable[j], u) && unitTable[j] != u {
				continue // longer token correctly listed first
			}
			if strings.HasPrefix(u, unitTable[j]) {
				return fmt.Errorf("unit %q is shadowed by earlier prefix %q", u, unitTable[j])
			}
		}
	}
	return nil
}

// NumberExtractor extracts numeric KPI claims from article text
type NumberExtractor struct {
	maxItems     int
	contextChars int
}

// NewNumberExtractor creates an extractor with the given caps. Zero or
// negative values fall back to the defaults used by the pipeline.
func NewNumberExtractor(maxItems, contextChars int) *NumberExtractor {
	if maxItems <= 0 {
		maxItems = 12
	}
	if contextChars <= 0 {
		contextChars = 180
	}
	return &NumberExtractor{maxItems: maxItems, contextChars: contextChars}
}

// Extract scans the text sentence by sentence, left to right, and
// returns unscored, unlabeled claims in discovery order. The maxItems
// cap is enforced incrementally. Empty text yields an empty slice.
func (e *NumberExtractor) Extract(text string) []model.NumericClaim {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	var claims []model.NumericClaim
	seen := make(map[string]bool)

	for _, sent := range sentences {
		for _, m := range claimRe.FindAllStringSubmatch(sent, -1) {
			raw := strings.TrimSpace(m[0])
			numStr := m[1]
			unit := m[2]

			key := numStr + "\x00" + unit + "\x00" + raw
			if seen[key] {
				continue
			}
			seen[key] = true

			val, err := strconv.ParseFloat(strings.ReplaceAll(numStr, ",", ""), 64)
			if err != nil {
				continue // malformed numeral, drop the match
			}

			claims = append(claims, model.NumericClaim{
				Value:   val,
				IsInt:   val == math.Trunc(val),
				Unit:    unit,
				Raw:     raw,
				Context: truncateRunes(sent, e.contextChars),
				Trend:   ClassifyTrend(sent),
			})

			if len(claims) >= e.maxItems {
				return claims
			}
		}
	}

	return claims
}

// truncateRunes bounds s to max runes without splitting a character.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// Directional vocabulary for trend classification. A bare sign prefix
// on a numeral is not evidence; only explicit words or arrows count.
var (
	upCues   = []string{"증가", "상승", "급증", "늘어", "늘었", "확대", "↑"}
	downCues = []string{"감소", "하락", "급감", "줄어", "줄었", "축소", "↓"}
)

// ClassifyTrend derives a trend from directional cues in the sentence.
// Conflicting or absent cues yield neutral.
func ClassifyTrend(context string) model.Trend {
	up := containsAny(context, upCues)
	down := containsAny(context, downCues)
	switch {
	case up && !down:
		return model.TrendUp
	case down && !up:
		return model.TrendDown
	default:
		return model.TrendNeutral
	}
}

func containsAny(s string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(s, cue) {
			return true
		}
	}
	return false
}
