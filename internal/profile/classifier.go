package profile

import (
	"strings"

	"github.com/google/uuid"
)

// Confidence model constants. Increments are individually capped so the
// total stays well inside [0,100]; the observed ceiling is 98.
const (
	confidenceBase      = 50.0
	confidencePerPref   = 2.0
	confidencePrefCap   = 20.0
	confidencePerSeg    = 4.0
	confidenceSegCap    = 16.0
	confidenceEnriched  = 6.0
	confidencePerEntity = 1.0
	confidenceEntityCap = 6.0
	confidenceMax       = 98.0
)

// Classifier maps preference sets onto named cultural segments.
type Classifier struct {
	rules []SegmentRule
}

// NewClassifier creates a classifier with the default rule set.
func NewClassifier() *Classifier {
	return &Classifier{rules: defaultSegmentRules()}
}

// Classify returns the ordered segment list for a preference set plus
// any externally sourced entity names. Rules are evaluated in fixed
// order against the combined text; first fire wins, duplicates are
// never added. If no rule fires the default segment list is returned -
// a profile never has zero segments.
func (c *Classifier) Classify(prefs UserPreferences, externalNames []string) []string {
	parts := prefs.All()
	parts = append(parts, externalNames...)
	text := strings.ToLower(strings.Join(parts, " "))

	var segments []string
	seen := make(map[string]bool)
	for _, rule := range c.rules {
		if !strings.Contains(text, rule.Trigger) {
			continue
		}
		if seen[rule.Segment] {
			continue
		}
		seen[rule.Segment] = true
		segments = append(segments, rule.Segment)
	}

	if len(segments) == 0 {
		return []string{DefaultSegment}
	}
	return segments
}

// BuildProfile constructs the read-only CulturalProfile for one analysis
// request from a preference set and optional taste-graph enrichment.
func (c *Classifier) BuildProfile(prefs UserPreferences, enr *Enrichment) CulturalProfile {
	segments := c.Classify(prefs, enr.EntityNames())
	if enr != nil {
		seen := make(map[string]bool, len(segments))
		for _, s := range segments {
			seen[s] = true
		}
		for _, s := range enr.Segments {
			if !seen[s] {
				seen[s] = true
				segments = append(segments, s)
			}
		}
	}

	connections := map[string][]string{}
	for _, d := range Domains {
		if values := prefs.ByDomain(d); len(values) > 0 {
			connections[string(d)] = values
		}
	}
	if enr != nil {
		for domain, names := range enr.Entities {
			if len(names) > 0 {
				connections[domain] = names
			}
		}
	}

	id := ""
	if enr != nil && enr.ProfileID != "" {
		id = enr.ProfileID
	} else {
		id = uuid.NewString()
	}

	return CulturalProfile{
		ProfileID:              id,
		Segments:               segments,
		CrossDomainConnections: connections,
		BehavioralIndicators:   c.indicators(prefs, enr),
		ConfidenceScore:        c.confidence(prefs, segments, enr),
	}
}

// confidence computes the profile confidence: a fixed base plus capped
// increments for collected keywords, rule-fired segments, and external
// enrichment. An empty preference set with no enrichment yields exactly
// the base value.
func (c *Classifier) confidence(prefs UserPreferences, segments []string, enr *Enrichment) float64 {
	score := confidenceBase

	score += capped(float64(prefs.Count())*confidencePerPref, confidencePrefCap)

	fired := len(segments)
	if fired == 1 && segments[0] == DefaultSegment {
		fired = 0
	}
	score += capped(float64(fired)*confidencePerSeg, confidenceSegCap)

	if enr != nil {
		score += confidenceEnriched
		score += capped(float64(len(enr.EntityNames()))*confidencePerEntity, confidenceEntityCap)
	}

	if score > confidenceMax {
		score = confidenceMax
	}
	if score < 0 {
		score = 0
	}
	return score
}

// indicators derives behavioral scores in [0,1]. Taste-graph indicators
// take precedence; locally derived ones fill the gaps.
func (c *Classifier) indicators(prefs UserPreferences, enr *Enrichment) map[string]float64 {
	out := map[string]float64{
		"early_adopter":     clamp01(0.3 + 0.05*float64(prefs.Count())),
		"influence_score":   clamp01(0.2 + 0.1*float64(len(prefs.Lifestyle))),
		"cultural_openness": clamp01(0.25 + 0.15*float64(domainsCovered(prefs))),
	}
	if enr != nil {
		for name, v := range enr.Indicators {
			out[name] = clamp01(v)
		}
	}
	return out
}

func domainsCovered(prefs UserPreferences) int {
	n := 0
	for _, d := range Domains {
		if len(prefs.ByDomain(d)) > 0 {
			n++
		}
	}
	return n
}

func capped(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
