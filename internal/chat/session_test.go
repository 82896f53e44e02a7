package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultrend/trendseer/internal/profile"
)

func TestSessionWalksStagesInOrder(t *testing.T) {
	s := NewSession()

	require.Equal(t, StageGreeting, s.Stage)
	assert.NotEmpty(t, s.ID)

	inputs := []string{
		"hi there",
		"I love jazz and soul",
		"farm to table dining",
		"vintage and thrifted fashion",
		"documentaries and live theater",
		"sustainable living and yoga",
		"go ahead",
	}
	want := []Stage{
		StageMusic, StageDining, StageFashion,
		StageEntertainment, StageLifestyle, StageAnalysis, StageComplete,
	}

	for i, in := range inputs {
		require.True(t, s.Submit(in))
		assert.Equal(t, want[i], s.Stage)
	}
	assert.True(t, s.Complete())
}

func TestSessionDuplicateInputIgnored(t *testing.T) {
	s := NewSession()

	require.True(t, s.Submit("hello"))
	stage := s.Stage

	assert.False(t, s.Submit("hello"))
	assert.Equal(t, stage, s.Stage)
	assert.Len(t, s.Utterances(), 1)
}

func TestSessionEmptyInputIgnored(t *testing.T) {
	s := NewSession()

	assert.False(t, s.Submit(""))
	assert.False(t, s.Submit("   "))
	assert.Equal(t, StageGreeting, s.Stage)
}

func TestSessionCapturesTaxonomyMatches(t *testing.T) {
	s := NewSession()
	s.Submit("hi")
	s.Submit("mostly jazz, some indie rock")

	got := s.Captured(profile.DomainMusic)

	assert.Contains(t, got, "jazz")
	assert.Contains(t, got, "indie rock")
}

func TestSessionFallbackWordsWhenNothingMatches(t *testing.T) {
	s := NewSession()
	s.Submit("hi")
	s.Submit("zydeco, gqom and mbaqanga obviously")

	got := s.Captured(profile.DomainMusic)

	assert.Equal(t, []string{"zydeco", "gqom", "and"}, got)
}

func TestFallbackWordsSkipsShortWords(t *testing.T) {
	assert.Equal(t, []string{"the", "old", "ways"}, fallbackWords("I go the old ways now"))
	assert.Empty(t, fallbackWords("a b c"))
}

func TestSessionPreferencesAssembly(t *testing.T) {
	s := NewSession()
	for _, in := range []string{
		"hello",
		"jazz",
		"vegan food",
		"vintage",
		"documentaries",
		"yoga and meditation",
	} {
		s.Submit(in)
	}

	prefs := s.Preferences()

	assert.NotEmpty(t, prefs.Music)
	assert.NotEmpty(t, prefs.Dining)
	assert.NotEmpty(t, prefs.Fashion)
	assert.NotEmpty(t, prefs.Entertainment)
	assert.NotEmpty(t, prefs.Lifestyle)
}

func TestSessionStaysCompleteAfterFinalStage(t *testing.T) {
	s := NewSession()
	for _, in := range []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7"} {
		s.Submit(in)
	}
	require.True(t, s.Complete())

	s.Submit("one more")
	assert.Equal(t, StageComplete, s.Stage)
}
