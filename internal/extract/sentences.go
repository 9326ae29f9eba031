package extract

import (
	"regexp"
	"strings"
)

// Korean news prose frequently ends sentences on 다/요/함/됨 without
// western punctuation, so both are treated as boundaries.
var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	boundaryRe   = regexp.MustCompile(`([.?!]|[다요함됨])\s+`)
)

// SplitSentences breaks free text into sentence-like spans. Whitespace
// runs collapse to single spaces first; the trailing marker stays
// attached to the preceding sentence. Empty input yields nil.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	text = whitespaceRe.ReplaceAllString(text, " ")

	var sentences []string
	last := 0
	for _, loc := range boundaryRe.FindAllStringSubmatchIndex(text, -1) {
		// loc[3] is the end of the boundary marker; the following
		// whitespace is consumed, not kept.
		end := loc[3]
		s := strings.TrimSpace(text[last:end])
		if s != "" {
			sentences = append(sentences, s)
		}
		last = loc[1]
	}

	if rest := strings.TrimSpace(text[last:]); rest != "" {
		sentences = append(sentences, rest)
	}

	return sentences
}
