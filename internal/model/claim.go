package model

import "strconv"

// Trend indicates the direction a numeric claim moves in its context
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// NumericClaim represents a single numeric KPI candidate extracted from
// article text. Value, Unit, Raw and Context are fixed at extraction
// time; Label, Note and Trend may be filled in later by enrichment.
type NumericClaim struct {
	Value   float64 `json:"value"`             // Numeric magnitude (comma-stripped)
	IsInt   bool    `json:"-"`                 // Whether Value has no fractional part
	Unit    string  `json:"unit"`              // Normalized unit token ("%", "명", "조원", ...)
	Raw     string  `json:"raw"`               // Exact matched substring (numeral + unit)
	Context string  `json:"context"`           // Enclosing sentence, truncated
	Label   string  `json:"label"`             // Reader-facing label (enrichment)
	Note    string  `json:"note"`              // One-line context note (enrichment)
	Trend   Trend   `json:"trend"`             // up/down/neutral, from textual cues only
}

// ValueKey returns the (value, unit) identity used to reject duplicate
// KPIs during selection.
func (c NumericClaim) ValueKey() string {
	return c.ValueString() + "\x00" + c.Unit
}

// ValueString renders Value without a trailing fraction for integral values.
func (c NumericClaim) ValueString() string {
	if c.IsInt {
		return strconv.FormatInt(int64(c.Value), 10)
	}
	return strconv.FormatFloat(c.Value, 'f', -1, 64)
}

// KpiBucket is the semantic category of a claim's unit, used to
// diversify the final selection. Buckets are derived, never stored.
type KpiBucket string

const (
	BucketRatio KpiBucket = "ratio" // %, %p
	BucketCount KpiBucket = "count" // 명, 건, 개
	BucketMoney KpiBucket = "money" // 조, 억, 만, 원 and compounds
	BucketTime  KpiBucket = "time"  // 년, 개월, 일, 시간
	BucketOther KpiBucket = "other"
)

// BucketForUnit maps a normalized unit token to its bucket.
func BucketForUnit(unit string) KpiBucket {
	switch {
	case unit == "%" || unit == "%p":
		return BucketRatio
	case unit == "명" || unit == "건" || unit == "개":
		return BucketCount
	case unit == "조" || unit == "억" || unit == "만" || unit == "원" || containsWon(unit):
		return BucketMoney
	case unit == "년" || unit == "개월" || unit == "일" || unit == "시간":
		return BucketTime
	default:
		return BucketOther
	}
}

func containsWon(unit string) bool {
	for _, r := range unit {
		if r == '원' {
			return true
		}
	}
	return false
}
