// Package recommend scores catalog items against a cultural profile.
package recommend

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/cultrend/trendseer/internal/catalog"
	"github.com/cultrend/trendseer/internal/profile"
)

// jitterSpan bounds the random tie-break added to each overlap score.
// It is strictly below 1 so jitter can reorder ties but never outrank
// a genuine keyword match.
const jitterSpan = 0.5

// ScoredRecommendation pairs a catalog item with its relevance score
// and the explanation of why it was picked.
type ScoredRecommendation struct {
	Item        catalog.Item `json:"item"`
	Score       float64      `json:"relevance_score"`
	Explanation Explanation  `json:"explanation"`
}

// Ranker orders catalog items by keyword overlap with a profile.
type Ranker struct {
	rng       *rand.Rand
	explainer *Explainer
}

// NewRanker creates a ranker. A nil rng disables jitter entirely, which
// makes ranking fully deterministic; tests and the offline mode use that.
func NewRanker(rng *rand.Rand) *Ranker {
	return &Ranker{
		rng:       rng,
		explainer: NewExplainer(),
	}
}

// Rank scores items against the profile's keyword set and returns the
// top results, best first.
//
// Scoring is the count of item keywords present in the profile's
// keyword set, plus jitter in [0, jitterSpan) when enabled. Items with
// zero overlap are appended in catalog order after every matching item,
// so the result always holds min(max, len(items)) entries. An empty
// catalog yields an empty result; an empty profile yields fallback
// picks in catalog order.
func (r *Ranker) Rank(prof profile.CulturalProfile, items []catalog.Item, max int) []ScoredRecommendation {
	if max <= 0 || len(items) == 0 {
		return nil
	}

	keywords := prof.KeywordSet()

	var matched []ScoredRecommendation
	var rest []ScoredRecommendation
	for _, item := range items {
		overlap := 0
		for _, kw := range item.Keywords {
			if keywords[strings.ToLower(kw)] {
				overlap++
			}
		}
		rec := ScoredRecommendation{
			Item:        item,
			Score:       float64(overlap) + r.jitter(),
			Explanation: r.explainer.Explain(item, prof),
		}
		if overlap > 0 {
			matched = append(matched, rec)
		} else {
			rec.Score = 0
			rest = append(rest, rec)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score > matched[j].Score
	})

	// Pad with unmatched items in catalog order so callers always get
	// a full result set when the catalog allows it.
	out := append(matched, rest...)
	if len(out) > max {
		out = out[:max]
	}
	return out
}

func (r *Ranker) jitter() float64 {
	if r.rng == nil {
		return 0
	}
	return r.rng.Float64() * jitterSpan
}
