package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cultrend/trendseer/internal/profile"
)

// PromptBuilder assembles the analysis prompts sent to the model.
type PromptBuilder struct {
	// MaxPredictions bounds how many trend predictions are requested.
	MaxPredictions int
}

// NewPromptBuilder creates a builder with the default prediction count.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{MaxPredictions: 2}
}

// BuildTrendPrompt produces the trend prediction prompt for a profile
// and timeframe. The model is asked for strict JSON matching the
// TrendPrediction shape.
func (b *PromptBuilder) BuildTrendPrompt(prof profile.CulturalProfile, timeframe string) string {
	var sections []string

	sections = append(sections, fmt.Sprintf(
		"Analyze these cultural preferences and predict %d emerging trends over the next %s.",
		b.MaxPredictions, timeframe))

	sections = append(sections, "Cultural Segments:\n"+strings.Join(prof.Segments, ", "))
	sections = append(sections, "Cross-Domain Connections:\n"+formatConnections(prof.CrossDomainConnections))

	sections = append(sections, `Respond with JSON only, in this exact shape:
{
  "predictions": [
    {
      "product_category": "Fashion",
      "predicted_trend": "Sustainable tech accessories",
      "confidence_score": 85,
      "timeline_days": 75,
      "target_audience": ["eco-conscious millennials"],
      "cultural_reasoning": "Cultural analysis here",
      "market_opportunity": "Market opportunity here"
    }
  ]
}`)

	return strings.Join(sections, "\n\n")
}

// BuildBrandPrompt produces the brand identity kit prompt for a profile.
func (b *PromptBuilder) BuildBrandPrompt(prof profile.CulturalProfile) string {
	var sections []string

	sections = append(sections,
		"Create a personal brand identity kit for someone with these cultural preferences.")

	sections = append(sections, "Cultural Segments:\n"+strings.Join(prof.Segments, ", "))
	sections = append(sections, "Cross-Domain Connections:\n"+formatConnections(prof.CrossDomainConnections))

	sections = append(sections, `Respond with JSON only, in this exact shape:
{
  "brand_name": "string",
  "tagline": "string",
  "mission_statement": "string",
  "core_keywords": ["string"],
  "color_palette": {"color name": "#RRGGBB"},
  "social_bio": "string"
}`)

	return strings.Join(sections, "\n\n")
}

func formatConnections(connections map[string][]string) string {
	if len(connections) == 0 {
		return "none recorded"
	}
	var lines []string
	for _, d := range profile.Domains {
		if values, ok := connections[string(d)]; ok && len(values) > 0 {
			lines = append(lines, fmt.Sprintf("- %s: %s", d, strings.Join(values, ", ")))
		}
	}
	var extra []string
	for domain, values := range connections {
		if isCoreDomain(domain) || len(values) == 0 {
			continue
		}
		extra = append(extra, domain)
	}
	sort.Strings(extra)
	for _, domain := range extra {
		lines = append(lines, fmt.Sprintf("- %s: %s", domain, strings.Join(connections[domain], ", ")))
	}
	return strings.Join(lines, "\n")
}

func isCoreDomain(name string) bool {
	for _, d := range profile.Domains {
		if string(d) == name {
			return true
		}
	}
	return false
}
