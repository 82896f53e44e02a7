package recommend

import (
	"fmt"
	"strings"

	"github.com/cultrend/trendseer/internal/catalog"
	"github.com/cultrend/trendseer/internal/profile"
)

// ExplanationKind classifies why an item was recommended.
type ExplanationKind string

const (
	KindSegmentMatch  ExplanationKind = "segment_match"
	KindBrandAffinity ExplanationKind = "brand_affinity_match"
	KindCrossDomain   ExplanationKind = "cross_domain_match"
	KindFallback      ExplanationKind = "general_fallback"
)

// kindPriority orders kinds from strongest to weakest signal.
var kindPriority = []ExplanationKind{
	KindSegmentMatch,
	KindBrandAffinity,
	KindCrossDomain,
	KindFallback,
}

// Explanation maps each explanation kind that fired to its
// human-readable string. Never empty: when no check fires it holds
// exactly one general_fallback entry.
type Explanation map[ExplanationKind]string

// Primary returns the highest-priority explanation string.
func (e Explanation) Primary() string {
	for _, kind := range kindPriority {
		if s, ok := e[kind]; ok {
			return s
		}
	}
	return ""
}

// Explainer builds recommendation explanations.
type Explainer struct{}

// NewExplainer creates an explainer.
func NewExplainer() *Explainer {
	return &Explainer{}
}

// Explain runs every check for item against the profile. Each check
// that fires contributes its own entry, stopping at its first hit;
// an item matching on segment, brand, and preference carries all
// three. When nothing fires the general fallback is the sole entry.
func (e *Explainer) Explain(item catalog.Item, prof profile.CulturalProfile) Explanation {
	out := Explanation{}

	if seg, kw, ok := e.segmentMatch(item, prof); ok {
		out[KindSegmentMatch] = fmt.Sprintf("%s fits your %s segment (matched on %q)", item.Name, seg, kw)
	}
	if kw, ok := e.brandAffinityMatch(item, prof); ok {
		out[KindBrandAffinity] = fmt.Sprintf("%s aligns with %s, which you already follow", item.Name, kw)
	}
	if kw, ok := e.crossDomainMatch(item, prof); ok {
		out[KindCrossDomain] = fmt.Sprintf("%s connects to your stated preference for %s", item.Name, kw)
	}

	if len(out) == 0 {
		out[KindFallback] = fmt.Sprintf("%s is a popular pick among culturally curious people", item.Name)
	}
	return out
}

// segmentMatch reports whether any item keyword appears as a token of
// any profile segment name.
func (e *Explainer) segmentMatch(item catalog.Item, prof profile.CulturalProfile) (segment, keyword string, ok bool) {
	for _, seg := range prof.Segments {
		tokens := segmentTokens(seg)
		for _, kw := range item.Keywords {
			if tokens[strings.ToLower(kw)] {
				return seg, kw, true
			}
		}
	}
	return "", "", false
}

// brandAffinityMatch reports whether any item keyword matches an
// externally sourced connection value (brands, artists, places, movies).
func (e *Explainer) brandAffinityMatch(item catalog.Item, prof profile.CulturalProfile) (string, bool) {
	external := make(map[string]bool)
	for _, kw := range prof.ExternalKeywords() {
		external[kw] = true
	}
	for _, kw := range item.Keywords {
		if external[strings.ToLower(kw)] {
			return kw, true
		}
	}
	return "", false
}

// crossDomainMatch reports whether any item keyword appears in the
// profile's full keyword set.
func (e *Explainer) crossDomainMatch(item catalog.Item, prof profile.CulturalProfile) (string, bool) {
	keywords := prof.KeywordSet()
	for _, kw := range item.Keywords {
		if keywords[strings.ToLower(kw)] {
			return kw, true
		}
	}
	return "", false
}

func segmentTokens(segment string) map[string]bool {
	segment = strings.ReplaceAll(segment, "_", " ")
	segment = strings.ReplaceAll(segment, "-", " ")
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(segment)) {
		tokens[tok] = true
	}
	return tokens
}
