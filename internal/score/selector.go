package score

import (
	"sort"

	"github.com/minjae-lab/infogram/internal/model"
)

// bucket fill order for the diversity pass. Ratios get a second slot
// before any other bucket repeats.
var bucketPriority = []model.KpiBucket{
	model.BucketRatio,
	model.BucketCount,
	model.BucketMoney,
	model.BucketTime,
}

type scored struct {
	claim model.NumericClaim
	score float64
	order int // original extraction position, for stable ties
}

// Select picks up to k claims: the highest-scoring claim from each of
// the ratio/count/money/time buckets in that order, a second ratio if
// slots remain, then a score-ordered fill from all candidates. The
// result never contains two claims with the same (value, unit) pair
// and its order reflects selection order, not text order.
func Select(claims []model.NumericClaim, k int, titleHint string) []model.NumericClaim {
	if k <= 0 || len(claims) == 0 {
		return nil
	}

	ranked := make([]scored, len(claims))
	for i, c := range claims {
		ranked[i] = scored{claim: c, score: Score(c, titleHint), order: i}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].order < ranked[j].order
	})

	buckets := make(map[model.KpiBucket][]scored)
	for _, s := range ranked {
		b := model.BucketForUnit(s.claim.Unit)
		buckets[b] = append(buckets[b], s)
	}

	picked := make([]model.NumericClaim, 0, k)
	taken := make(map[string]bool)

	take := func(s scored) bool {
		key := s.claim.ValueKey()
		if taken[key] {
			return false
		}
		taken[key] = true
		picked = append(picked, s.claim)
		return true
	}

	// One per priority bucket.
	for _, b := range bucketPriority {
		if len(picked) >= k {
			break
		}
		for _, s := range buckets[b] {
			if take(s) {
				break
			}
		}
	}

	// Second ratio slot before any other bucket repeats.
	if len(picked) < k {
		for _, s := range buckets[model.BucketRatio] {
			if take(s) {
				break
			}
		}
	}

	// Fill remaining slots from the full ranked list, any bucket.
	for _, s := range ranked {
		if len(picked) >= k {
			break
		}
		take(s)
	}

	return picked
}
