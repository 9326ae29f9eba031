package extract

import "github.com/minjae-lab/infogram/internal/model"

// Dedupe collapses claims sharing a (value, unit, raw) identity,
// keeping the first occurrence in extraction order. It runs after
// noise filtering so a removed noise claim cannot unmask a duplicate.
func Dedupe(claims []model.NumericClaim) []model.NumericClaim {
	seen := make(map[string]bool)
	out := make([]model.NumericClaim, 0, len(claims))

	for _, c := range claims {
		key := c.ValueString() + "\x00" + c.Unit + "\x00" + c.Raw
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}

	return out
}

// FilterNoise drops claims flagged by the noise rules, preserving order.
func FilterNoise(claims []model.NumericClaim) []model.NumericClaim {
	out := make([]model.NumericClaim, 0, len(claims))
	for _, c := range claims {
		if IsNoise(c.Raw, c.Context) {
			continue
		}
		out = append(out, c)
	}
	return out
}
