package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyOrderedFirstFireWins(t *testing.T) {
	c := NewClassifier()

	prefs := UserPreferences{
		Lifestyle: []string{"sustainable living"},
		Music:     []string{"jazz"},
	}
	segments := c.Classify(prefs, nil)

	// sustainability rule sits before jazz in the rule list
	require.True(t, len(segments) >= 2)
	assert.Equal(t, "sustainability advocates", segments[0])
	assert.Contains(t, segments, "jazz aficionados")
}

func TestClassifyNeverEmpty(t *testing.T) {
	c := NewClassifier()

	segments := c.Classify(UserPreferences{}, nil)

	assert.Equal(t, []string{DefaultSegment}, segments)
}

func TestClassifyNoDuplicateSegments(t *testing.T) {
	c := NewClassifier()

	// both triggers map to sustainability advocates
	prefs := UserPreferences{Lifestyle: []string{"sustainable living", "eco habits"}}
	segments := c.Classify(prefs, nil)

	count := 0
	for _, s := range segments {
		if s == "sustainability advocates" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestClassifyUsesExternalNames(t *testing.T) {
	c := NewClassifier()

	segments := c.Classify(UserPreferences{}, []string{"limited sneaker drops"})

	assert.Contains(t, segments, "urban trendsetters")
}

func TestBuildProfileEmptyPreferencesBaseConfidence(t *testing.T) {
	c := NewClassifier()

	prof := c.BuildProfile(UserPreferences{}, nil)

	assert.Equal(t, confidenceBase, prof.ConfidenceScore)
	assert.Equal(t, []string{DefaultSegment}, prof.Segments)
	assert.NotEmpty(t, prof.ProfileID)
	assert.Empty(t, prof.CrossDomainConnections)
}

func TestBuildProfileConfidenceCapped(t *testing.T) {
	c := NewClassifier()

	prefs := UserPreferences{
		Music:         []string{"jazz", "soul", "vinyl collecting", "indie rock", "folk"},
		Dining:        []string{"plant-based", "local sourcing", "organic", "artisanal coffee"},
		Fashion:       []string{"vintage", "minimalist", "sustainable", "luxury brands"},
		Entertainment: []string{"indie films", "live music", "gaming", "anime"},
		Lifestyle:     []string{"sustainable living", "wellness", "remote work", "travel", "fitness"},
	}
	enr := &Enrichment{
		ProfileID:  "enr-1",
		Entities:   map[string][]string{"brands": {"a", "b", "c", "d", "e", "f", "g", "h"}},
		Indicators: map[string]float64{"early_adopter": 0.95},
	}

	prof := c.BuildProfile(prefs, enr)

	assert.LessOrEqual(t, prof.ConfidenceScore, confidenceMax)
	assert.Greater(t, prof.ConfidenceScore, confidenceBase)
}

func TestBuildProfileUsesEnrichment(t *testing.T) {
	c := NewClassifier()

	prefs := UserPreferences{Music: []string{"jazz"}}
	enr := &Enrichment{
		ProfileID: "taste-42",
		Segments:  []string{"indie culture"},
		Entities:  map[string][]string{"brands": {"blue note records"}},
		Indicators: map[string]float64{
			"early_adopter": 0.8,
		},
	}

	prof := c.BuildProfile(prefs, enr)

	assert.Equal(t, "taste-42", prof.ProfileID)
	assert.Contains(t, prof.Segments, "indie culture")
	assert.Equal(t, []string{"blue note records"}, prof.CrossDomainConnections["brands"])
	assert.Equal(t, 0.8, prof.BehavioralIndicators["early_adopter"])
}

func TestIndicatorsClamped(t *testing.T) {
	c := NewClassifier()

	enr := &Enrichment{Indicators: map[string]float64{"influence_score": 3.5, "negative": -1}}
	prof := c.BuildProfile(UserPreferences{}, enr)

	assert.Equal(t, 1.0, prof.BehavioralIndicators["influence_score"])
	assert.Equal(t, 0.0, prof.BehavioralIndicators["negative"])
}

func TestKeywordSet(t *testing.T) {
	prof := CulturalProfile{
		Segments: []string{"jazz aficionados"},
		CrossDomainConnections: map[string][]string{
			"music": {"Jazz", "soul"},
		},
	}

	set := prof.KeywordSet()

	assert.True(t, set["jazz"])
	assert.True(t, set["soul"])
	assert.True(t, set["aficionados"])
	// tokens of length <= 2 are dropped
	assert.False(t, set["of"])
}

func TestExternalKeywords(t *testing.T) {
	prof := CulturalProfile{
		CrossDomainConnections: map[string][]string{
			"music":  {"jazz"},
			"brands": {"Patagonia"},
		},
	}

	external := prof.ExternalKeywords()

	assert.Equal(t, []string{"patagonia"}, external)
}
