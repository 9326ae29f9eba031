package extract

import (
	"regexp"
	"strings"
)

// Noise rules are deliberately narrow: a numeral that slips through is
// cheaper than a real KPI dropped. Each rule anchors on context, not on
// the numeral alone, except the compact-datestamp check.
type noiseRule struct {
	name  string
	match func(raw, context string) bool
}

var (
	calendarDateRe = regexp.MustCompile(`\d{4}[-/.]\d{1,2}[-/.]\d{1,2}`)
	clockTimeRe    = regexp.MustCompile(`\d{1,2}:\d{2}(:\d{2})?`)
	ordinalRe      = regexp.MustCompile(`제\s?\d+\s?[회차]|\d+\s?회차`)
	digitsOnlyRe   = regexp.MustCompile(`^\d+$`)
)

var urlTokens = []string{"http://", "https://", "www.", "조회수"}

var noiseRules = []noiseRule{
	{
		name: "url_or_pageview",
		match: func(raw, context string) bool {
			for _, tok := range urlTokens {
				if strings.Contains(context, tok) {
					return true
				}
			}
			return false
		},
	},
	{
		name: "calendar_date",
		match: func(raw, context string) bool {
			return calendarDateRe.MatchString(context)
		},
	},
	{
		name: "clock_time",
		match: func(raw, context string) bool {
			return clockTimeRe.MatchString(context)
		},
	},
	{
		name: "compact_datestamp",
		match: func(raw, context string) bool {
			digits := strings.ReplaceAll(numeralPart(raw), ",", "")
			return len(digits) >= 8 && digitsOnlyRe.MatchString(digits)
		},
	},
	{
		name: "ordinal_marker",
		match: func(raw, context string) bool {
			return ordinalRe.MatchString(context)
		},
	},
}

// IsNoise reports whether a claim should be dropped as a non-KPI
// numeral (dates, timestamps, identifiers, ordinal counters).
func IsNoise(raw, context string) bool {
	rule, _ := NoiseRule(raw, context)
	return rule
}

// NoiseRule additionally names the rule that fired, for diagnostics.
func NoiseRule(raw, context string) (bool, string) {
	for _, r := range noiseRules {
		if r.match(raw, context) {
			return true, r.name
		}
	}
	return false, ""
}

// numeralPart strips the trailing unit from a raw match, leaving the
// numeral text (digits, commas, decimal point).
func numeralPart(raw string) string {
	end := 0
	for i, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			end = i + 1
			continue
		}
		break
	}
	return raw[:end]
}
