// Package profile builds structured cultural profiles from free-form
// user statements.
//
// Pipeline:
// 1. Extractor turns accumulated chat text into UserPreferences
// 2. Classifier maps preferences (plus optional taste-graph enrichment)
//    onto named cultural segments and a confidence score
package profile

import "strings"

// Domain identifies one of the five preference domains.
type Domain string

const (
	DomainMusic         Domain = "music"
	DomainDining        Domain = "dining"
	DomainFashion       Domain = "fashion"
	DomainEntertainment Domain = "entertainment"
	DomainLifestyle     Domain = "lifestyle"
)

// Domains lists all preference domains in canonical order.
var Domains = []Domain{
	DomainMusic,
	DomainDining,
	DomainFashion,
	DomainEntertainment,
	DomainLifestyle,
}

// UserPreferences holds the structured preferences for one analysis run.
// Each list contains distinct lowercase values; lists may be empty.
// Instances are immutable once produced - a later run with more chat
// text produces a new instance.
type UserPreferences struct {
	Music         []string `json:"music_genres"`
	Dining        []string `json:"dining_preferences"`
	Fashion       []string `json:"fashion_styles"`
	Entertainment []string `json:"entertainment_types"`
	Lifestyle     []string `json:"lifestyle_choices"`
}

// ByDomain returns the preference list for a domain.
func (p UserPreferences) ByDomain(d Domain) []string {
	switch d {
	case DomainMusic:
		return p.Music
	case DomainDining:
		return p.Dining
	case DomainFashion:
		return p.Fashion
	case DomainEntertainment:
		return p.Entertainment
	case DomainLifestyle:
		return p.Lifestyle
	default:
		return nil
	}
}

// All returns the union of every domain's values, in domain order.
func (p UserPreferences) All() []string {
	var out []string
	for _, d := range Domains {
		out = append(out, p.ByDomain(d)...)
	}
	return out
}

// Count returns the total number of collected preference values.
func (p UserPreferences) Count() int {
	n := 0
	for _, d := range Domains {
		n += len(p.ByDomain(d))
	}
	return n
}

// IsEmpty reports whether no domain has any value.
func (p UserPreferences) IsEmpty() bool {
	return p.Count() == 0
}

// Enrichment is the external signal set returned by the taste-graph
// collaborator. A nil *Enrichment means "no enrichment available".
type Enrichment struct {
	ProfileID string
	// Segments are externally discovered segment names, appended after
	// the locally derived ones.
	Segments []string
	// Entities maps an external domain (brands, artists, places, movies)
	// to the entity names discovered for it.
	Entities map[string][]string
	// Indicators are behavioral scores in [0,1].
	Indicators map[string]float64
	// Confidence is the taste-graph's own confidence in [0,100].
	Confidence float64
}

// EntityNames returns every entity name across all external domains.
func (e *Enrichment) EntityNames() []string {
	if e == nil {
		return nil
	}
	var out []string
	for _, names := range e.Entities {
		out = append(out, names...)
	}
	return out
}

// CulturalProfile is the derived, read-only aggregate consumed by the
// ranker and explanation builder. Constructed once per analysis request;
// never mutated afterwards.
type CulturalProfile struct {
	ProfileID string `json:"profile_id"`
	// Segments are distinct segment names in discovery order.
	Segments []string `json:"cultural_segments"`
	// CrossDomainConnections maps a domain name (the five preference
	// domains plus externally sourced ones such as "brands") to values.
	CrossDomainConnections map[string][]string `json:"cross_domain_connections"`
	// BehavioralIndicators are scores in [0,1].
	BehavioralIndicators map[string]float64 `json:"behavioral_indicators"`
	// ConfidenceScore is in [0,100].
	ConfidenceScore float64 `json:"confidence_score"`
}

// KeywordSet returns the profile's matchable keyword set: every
// cross-domain connection value plus every token of every segment name,
// lowercased. Tokens shorter than three characters are skipped.
func (c CulturalProfile) KeywordSet() map[string]bool {
	set := make(map[string]bool)
	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if len(s) > 2 {
			set[s] = true
		}
	}
	for _, values := range c.CrossDomainConnections {
		for _, v := range values {
			add(v)
		}
	}
	for _, seg := range c.Segments {
		seg = strings.ReplaceAll(seg, "_", " ")
		seg = strings.ReplaceAll(seg, "-", " ")
		for _, tok := range strings.Fields(seg) {
			add(tok)
		}
	}
	return set
}

// ExternalKeywords returns the lowercased values of externally sourced
// connection domains only (brands, artists, places, movies).
func (c CulturalProfile) ExternalKeywords() []string {
	var out []string
	for domain, values := range c.CrossDomainConnections {
		if !isExternalDomain(domain) {
			continue
		}
		for _, v := range values {
			out = append(out, strings.ToLower(v))
		}
	}
	return out
}

func isExternalDomain(name string) bool {
	switch name {
	case "brands", "artists", "places", "movies":
		return true
	}
	return false
}
