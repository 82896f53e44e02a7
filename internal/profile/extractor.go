package profile

import "strings"

// Extractor derives UserPreferences from accumulated chat text.
//
// Matching is deliberately naive: a taxonomy trigger matches if it
// appears as a substring anywhere in the lowercased text, with no token
// boundaries or negation handling ("classical" matches inside
// "neoclassical"). This mirrors the behavior the product was built
// around; callers that need precision must curate triggers, not change
// the matcher.
type Extractor struct {
	taxonomy map[Domain][]Keyword
}

// NewExtractor creates an extractor with the default taxonomy.
func NewExtractor() *Extractor {
	return &Extractor{taxonomy: defaultTaxonomy()}
}

// Extract scans all prior user utterances and returns the structured
// preference set. Output lists are deduplicated and may be empty; the
// extractor never applies fallback defaults (see chat.Session for the
// user-word fallback applied at the conversation boundary).
func (e *Extractor) Extract(utterances []string) UserPreferences {
	text := strings.ToLower(strings.Join(utterances, " "))
	return UserPreferences{
		Music:         e.matchDomain(text, DomainMusic),
		Dining:        e.matchDomain(text, DomainDining),
		Fashion:       e.matchDomain(text, DomainFashion),
		Entertainment: e.matchDomain(text, DomainEntertainment),
		Lifestyle:     e.matchDomain(text, DomainLifestyle),
	}
}

// ExtractDomain matches a single utterance against one domain's
// taxonomy. Used by the chat session for stage-by-stage capture.
func (e *Extractor) ExtractDomain(text string, d Domain) []string {
	return e.matchDomain(strings.ToLower(text), d)
}

func (e *Extractor) matchDomain(lowered string, d Domain) []string {
	var out []string
	seen := make(map[string]bool)
	for _, kw := range e.taxonomy[d] {
		if !strings.Contains(lowered, kw.Trigger) {
			continue
		}
		if seen[kw.Canonical] {
			continue
		}
		seen[kw.Canonical] = true
		out = append(out, kw.Canonical)
	}
	return out
}
