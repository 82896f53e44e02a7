package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMatchesAcrossDomains(t *testing.T) {
	e := NewExtractor()

	prefs := e.Extract([]string{
		"I love indie rock and folk music",
		"mostly plant-based food and artisanal coffee",
		"my style is vintage and minimalist",
	})

	assert.Contains(t, prefs.Music, "indie rock")
	assert.Contains(t, prefs.Music, "folk")
	assert.Contains(t, prefs.Dining, "plant-based")
	assert.Contains(t, prefs.Dining, "artisanal coffee")
	assert.Contains(t, prefs.Fashion, "vintage")
	assert.Contains(t, prefs.Fashion, "minimalist")
	assert.Empty(t, prefs.Entertainment)
}

func TestExtractIsCaseInsensitive(t *testing.T) {
	e := NewExtractor()

	prefs := e.Extract([]string{"JAZZ and VINYL records"})

	assert.Contains(t, prefs.Music, "jazz")
	assert.Contains(t, prefs.Music, "vinyl collecting")
}

func TestExtractDeduplicatesCanonicals(t *testing.T) {
	e := NewExtractor()

	// vegan and plant both map to plant-based
	prefs := e.Extract([]string{"vegan cooking, plant-based eating"})

	count := 0
	for _, v := range prefs.Dining {
		if v == "plant-based" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractSubstringContainment(t *testing.T) {
	e := NewExtractor()

	// "classical" appears inside "neoclassical"; the matcher is
	// substring-based on purpose.
	prefs := e.Extract([]string{"I enjoy neoclassical compositions"})

	assert.Contains(t, prefs.Music, "classical")
}

func TestExtractEmptyInput(t *testing.T) {
	e := NewExtractor()

	prefs := e.Extract(nil)

	assert.True(t, prefs.IsEmpty())
	assert.Equal(t, 0, prefs.Count())
}

func TestExtractDomainSingleUtterance(t *testing.T) {
	e := NewExtractor()

	values := e.ExtractDomain("remote work and yoga keep me sane", DomainLifestyle)

	require.NotEmpty(t, values)
	assert.Contains(t, values, "remote work")
	assert.Contains(t, values, "yoga")
}

func TestPreferencesAccessors(t *testing.T) {
	prefs := UserPreferences{
		Music:     []string{"jazz"},
		Lifestyle: []string{"wellness", "travel"},
	}

	assert.Equal(t, []string{"jazz"}, prefs.ByDomain(DomainMusic))
	assert.Equal(t, 3, prefs.Count())
	assert.False(t, prefs.IsEmpty())
	assert.Equal(t, []string{"jazz", "wellness", "travel"}, prefs.All())
}
