// Package brand derives a personal brand identity kit from a cultural
// profile, via the model when available and a deterministic template
// otherwise.
package brand

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cultrend/trendseer/internal/llm"
	"github.com/cultrend/trendseer/internal/profile"
)

// Kit is a personal brand identity kit. The palette maps a color name
// to its hexcode.
type Kit struct {
	BrandName        string            `json:"brand_name"`
	Tagline          string            `json:"tagline"`
	MissionStatement string            `json:"mission_statement"`
	CoreKeywords     []string          `json:"core_keywords"`
	ColorPalette     map[string]string `json:"color_palette"`
	SocialBio        string            `json:"social_bio"`
}

// Builder generates brand kits.
type Builder struct {
	model   llm.Model
	prompts *llm.PromptBuilder
	log     zerolog.Logger
}

// NewBuilder creates a brand kit builder.
func NewBuilder(model llm.Model, log zerolog.Logger) *Builder {
	return &Builder{
		model:   model,
		prompts: llm.NewPromptBuilder(),
		log:     log,
	}
}

// Build produces a brand kit for the profile. Never fails: any model
// problem yields the templated kit derived from the profile's segments.
func (b *Builder) Build(ctx context.Context, prof profile.CulturalProfile) *Kit {
	if b.model == nil || !b.model.IsAvailable() {
		return FallbackKit(prof)
	}

	resp, err := b.model.Generate(ctx, &llm.Request{
		Prompt:      b.prompts.BuildBrandPrompt(prof),
		Temperature: 0.8,
		JSON:        true,
	})
	if err != nil {
		b.log.Warn().Err(err).Msg("brand kit generation failed, serving templated kit")
		return FallbackKit(prof)
	}

	raw, err := llm.ExtractJSON(resp.Text)
	if err != nil {
		b.log.Warn().Err(err).Msg("no JSON in brand kit output, serving templated kit")
		return FallbackKit(prof)
	}

	var kit Kit
	if err := json.Unmarshal([]byte(raw), &kit); err != nil || kit.BrandName == "" {
		b.log.Warn().Err(err).Msg("unusable brand kit payload, serving templated kit")
		return FallbackKit(prof)
	}
	fillDefaults(&kit, prof)
	return &kit
}

// FallbackKit builds a deterministic kit from the profile's segments.
func FallbackKit(prof profile.CulturalProfile) *Kit {
	segment := profile.DefaultSegment
	if len(prof.Segments) > 0 {
		segment = prof.Segments[0]
	}

	keywords := topKeywords(prof, 5)

	return &Kit{
		BrandName:        "The " + titleCase(segment) + " Collective",
		Tagline:          fmt.Sprintf("Where %s meets everyday life", segment),
		MissionStatement: fmt.Sprintf("Championing %s through considered choices across music, food, fashion, and culture.", segment),
		CoreKeywords:     keywords,
		ColorPalette: map[string]string{
			"primary":   "#2E4057",
			"secondary": "#66A182",
			"accent":    "#EDAE49",
			"neutral":   "#F5F0E1",
		},
		SocialBio: fmt.Sprintf("%s | curating culture one choice at a time", titleCase(segment)),
	}
}

// fillDefaults patches gaps in a model-produced kit with templated
// values so downstream consumers never see empty fields.
func fillDefaults(kit *Kit, prof profile.CulturalProfile) {
	fallback := FallbackKit(prof)
	if kit.Tagline == "" {
		kit.Tagline = fallback.Tagline
	}
	if kit.MissionStatement == "" {
		kit.MissionStatement = fallback.MissionStatement
	}
	if len(kit.CoreKeywords) == 0 {
		kit.CoreKeywords = fallback.CoreKeywords
	}
	if len(kit.ColorPalette) == 0 {
		kit.ColorPalette = fallback.ColorPalette
	}
	if kit.SocialBio == "" {
		kit.SocialBio = fallback.SocialBio
	}
}

// topKeywords picks up to n distinct connection values in domain order.
func topKeywords(prof profile.CulturalProfile, n int) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(v string) {
		v = strings.ToLower(v)
		if !seen[v] && len(out) < n {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, d := range profile.Domains {
		for _, v := range prof.CrossDomainConnections[string(d)] {
			add(v)
		}
	}
	for _, seg := range prof.Segments {
		add(seg)
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
