package trends

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cultrend/trendseer/internal/llm"
	"github.com/cultrend/trendseer/internal/profile"
	"github.com/cultrend/trendseer/internal/tastegraph"
)

// Scoring constants for the final ranking pass.
const (
	confidenceWeight = 0.5
	timelineWeight   = 20.0
	marketWeight     = 15.0
	audienceWeight   = 15.0
	confidenceCeil   = 95.0

	// communityBoostThreshold gates the alignment bonus: predictions
	// echoed by more than half the nearby communities get boosted.
	communityBoostThreshold = 0.5
	communityBoostFactor    = 1.1
)

// marketKeywords signal a concrete opportunity in the model's
// market_opportunity text.
var marketKeywords = []string{"growing", "emerging", "untapped", "opportunity"}

// Analyzer combines taste-graph enrichment with model predictions.
type Analyzer struct {
	taste      *tastegraph.Client
	model      llm.Model
	classifier *profile.Classifier
	prompts    *llm.PromptBuilder
	log        zerolog.Logger
}

// NewAnalyzer creates the trend analysis engine.
func NewAnalyzer(taste *tastegraph.Client, model llm.Model, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		taste:      taste,
		model:      model,
		classifier: profile.NewClassifier(),
		prompts:    llm.NewPromptBuilder(),
		log:        log,
	}
}

// BuildProfile constructs the cultural profile for a preference set,
// enriched by the taste graph when reachable.
func (a *Analyzer) BuildProfile(ctx context.Context, prefs profile.UserPreferences) profile.CulturalProfile {
	enr := a.taste.EnrichProfile(ctx, prefs)
	return a.classifier.BuildProfile(prefs, enr)
}

// PredictTrends runs the complete pipeline for a preference set. It
// never fails: every external dependency has a deterministic fallback,
// so the weakest possible result is the static prediction set scored
// and ranked like any other.
func (a *Analyzer) PredictTrends(ctx context.Context, prefs profile.UserPreferences, timeframe string) *TrendAnalysis {
	prof := a.BuildProfile(ctx, prefs)
	return a.PredictForProfile(ctx, prof, timeframe)
}

// PredictForProfile runs the pipeline for an already-built profile.
func (a *Analyzer) PredictForProfile(ctx context.Context, prof profile.CulturalProfile, timeframe string) *TrendAnalysis {
	similar := a.taste.SimilarProfiles(ctx, prof.ProfileID)

	predictions := a.generatePredictions(ctx, prof, timeframe)
	predictions = a.applyCommunityAlignment(predictions, similar)
	predictions = a.scoreAndRank(predictions)

	return &TrendAnalysis{
		Predictions:       predictions,
		AnalysisDate:      time.Now(),
		Timeframe:         timeframe,
		TotalPredictions:  len(predictions),
		AverageConfidence: averageConfidence(predictions),
	}
}

// generatePredictions asks the model for trend predictions, falling
// back to the static set on any failure.
func (a *Analyzer) generatePredictions(ctx context.Context, prof profile.CulturalProfile, timeframe string) []TrendPrediction {
	if a.model == nil || !a.model.IsAvailable() {
		return FallbackPredictions(timeframe)
	}

	resp, err := a.model.Generate(ctx, &llm.Request{
		Prompt:      a.prompts.BuildTrendPrompt(prof, timeframe),
		Temperature: 0.7,
		JSON:        true,
	})
	if err != nil {
		a.log.Warn().Err(err).Msg("trend prediction failed, serving fallback predictions")
		return FallbackPredictions(timeframe)
	}

	raw, err := llm.ExtractJSON(resp.Text)
	if err != nil {
		a.log.Warn().Err(err).Msg("no JSON in model output, serving fallback predictions")
		return FallbackPredictions(timeframe)
	}

	var envelope predictionsEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil || len(envelope.Predictions) == 0 {
		a.log.Warn().Err(err).Msg("unusable prediction payload, serving fallback predictions")
		return FallbackPredictions(timeframe)
	}
	return envelope.Predictions
}

// applyCommunityAlignment boosts predictions that echo emerging
// interests in nearby taste communities.
func (a *Analyzer) applyCommunityAlignment(predictions []TrendPrediction, similar []tastegraph.SimilarProfile) []TrendPrediction {
	var interests []string
	for _, sp := range similar {
		interests = append(interests, sp.EmergingInterests...)
	}
	if len(interests) == 0 {
		return predictions
	}

	for i := range predictions {
		alignment := communityAlignment(predictions[i].PredictedTrend, interests)
		if alignment <= communityBoostThreshold {
			continue
		}
		predictions[i].ConfidenceScore = math.Min(confidenceCeil, predictions[i].ConfidenceScore*communityBoostFactor)
		predictions[i].CulturalReasoning += " This trend aligns with emerging interests in similar cultural communities."
	}
	return predictions
}

// communityAlignment is the fraction of community interests that share
// at least one word with the predicted trend.
func communityAlignment(trend string, interests []string) float64 {
	trendWords := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(trend)) {
		trendWords[w] = true
	}

	matches := 0
	for _, interest := range interests {
		for _, w := range strings.Fields(strings.ToLower(interest)) {
			if trendWords[w] {
				matches++
				break
			}
		}
	}
	return float64(matches) / float64(len(interests))
}

// scoreAndRank applies the final composite score to every prediction
// and sorts best first.
func (a *Analyzer) scoreAndRank(predictions []TrendPrediction) []TrendPrediction {
	for i := range predictions {
		p := &predictions[i]

		timelineScore := math.Max(0.5, float64(180-p.TimelineDays)/180)

		marketHits := 0
		lowered := strings.ToLower(p.MarketOpportunity)
		for _, kw := range marketKeywords {
			if strings.Contains(lowered, kw) {
				marketHits++
			}
		}
		marketScore := float64(marketHits) / float64(len(marketKeywords))

		audienceScore := math.Min(1.0, float64(len(p.TargetAudience))/3)

		final := p.ConfidenceScore*confidenceWeight +
			timelineScore*timelineWeight +
			marketScore*marketWeight +
			audienceScore*audienceWeight
		p.ConfidenceScore = math.Min(confidenceCeil, final)
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].ConfidenceScore > predictions[j].ConfidenceScore
	})
	return predictions
}

func averageConfidence(predictions []TrendPrediction) float64 {
	if len(predictions) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range predictions {
		sum += p.ConfidenceScore
	}
	return sum / float64(len(predictions))
}
