// Package chat implements the guided preference conversation: a fixed
// stage machine that walks one user through the five preference
// domains and then hands off to analysis.
package chat

import (
	"strings"

	"github.com/google/uuid"

	"github.com/cultrend/trendseer/internal/profile"
)

// Stage identifies the current position in the conversation.
type Stage string

const (
	StageGreeting      Stage = "greeting"
	StageMusic         Stage = "music"
	StageDining        Stage = "dining"
	StageFashion       Stage = "fashion"
	StageEntertainment Stage = "entertainment"
	StageLifestyle     Stage = "lifestyle"
	StageAnalysis      Stage = "analysis"
	StageComplete      Stage = "complete"
)

// stageOrder is the fixed conversation flow. There is no way to skip
// or revisit a stage.
var stageOrder = []Stage{
	StageGreeting,
	StageMusic,
	StageDining,
	StageFashion,
	StageEntertainment,
	StageLifestyle,
	StageAnalysis,
	StageComplete,
}

// stageDomains maps preference-collecting stages to their domain.
var stageDomains = map[Stage]profile.Domain{
	StageMusic:         profile.DomainMusic,
	StageDining:        profile.DomainDining,
	StageFashion:       profile.DomainFashion,
	StageEntertainment: profile.DomainEntertainment,
	StageLifestyle:     profile.DomainLifestyle,
}

// maxFallbackWords caps how many raw user words are kept when the
// taxonomy matches nothing in an utterance.
const maxFallbackWords = 3

// Session holds the state of one preference conversation. Not safe for
// concurrent use; each conversation owns exactly one Session.
type Session struct {
	ID    string
	Stage Stage

	extractor  *profile.Extractor
	captured   map[profile.Domain][]string
	utterances []string
	lastInput  string
}

// NewSession starts a fresh conversation at the greeting stage.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		Stage:     StageGreeting,
		extractor: profile.NewExtractor(),
		captured:  make(map[profile.Domain][]string),
	}
}

// Submit records one user utterance and advances the stage machine.
// It returns true when the input was consumed; submitting the exact
// same text twice in a row is a no-op and returns false so callers can
// skip re-rendering.
//
// For preference stages the utterance is matched against the stage's
// taxonomy; when nothing matches, the first few substantial words of
// the raw input are kept instead so the user's own vocabulary is never
// thrown away.
func (s *Session) Submit(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || trimmed == s.lastInput {
		return false
	}
	s.lastInput = trimmed
	s.utterances = append(s.utterances, trimmed)

	if domain, ok := stageDomains[s.Stage]; ok {
		values := s.extractor.ExtractDomain(trimmed, domain)
		if len(values) == 0 {
			values = fallbackWords(trimmed)
		}
		s.captured[domain] = values
	}

	s.advance()
	return true
}

// Preferences returns the preference set captured so far.
func (s *Session) Preferences() profile.UserPreferences {
	return profile.UserPreferences{
		Music:         s.captured[profile.DomainMusic],
		Dining:        s.captured[profile.DomainDining],
		Fashion:       s.captured[profile.DomainFashion],
		Entertainment: s.captured[profile.DomainEntertainment],
		Lifestyle:     s.captured[profile.DomainLifestyle],
	}
}

// Captured returns the values collected for one domain.
func (s *Session) Captured(d profile.Domain) []string {
	return s.captured[d]
}

// Utterances returns every user utterance in order.
func (s *Session) Utterances() []string {
	return s.utterances
}

// Complete reports whether the conversation has finished.
func (s *Session) Complete() bool {
	return s.Stage == StageComplete
}

func (s *Session) advance() {
	for i, st := range stageOrder {
		if st == s.Stage && i+1 < len(stageOrder) {
			s.Stage = stageOrder[i+1]
			return
		}
	}
}

// fallbackWords keeps the first substantial words of raw input: commas
// stripped, words of three or more characters, capped.
func fallbackWords(input string) []string {
	cleaned := strings.ReplaceAll(input, ",", " ")
	var out []string
	for _, w := range strings.Fields(cleaned) {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) > 2 {
			out = append(out, w)
		}
		if len(out) == maxFallbackWords {
			break
		}
	}
	return out
}
