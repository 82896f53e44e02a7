package trends

// timeframeDays maps a prediction horizon to its day count. Unknown
// timeframes are treated as 90d.
func timeframeDays(timeframe string) int {
	switch timeframe {
	case "30d":
		return 30
	case "180d":
		return 180
	default:
		return 90
	}
}

// FallbackPredictions is the static prediction set served when the
// model is unavailable or returns something unusable. Timeline days
// scale with the requested horizon; everything else is fixed so the
// rest of the pipeline behaves identically to a live run.
func FallbackPredictions(timeframe string) []TrendPrediction {
	days := timeframeDays(timeframe)

	return []TrendPrediction{
		{
			ProductCategory: "Fashion",
			PredictedTrend:  "Sustainable tech accessories with vintage aesthetics",
			ConfidenceScore: 88.0,
			TimelineDays:    maxInt(7, days-15),
			TargetAudience:  []string{"eco-conscious millennials", "indie music fans"},
			CulturalReasoning: "The intersection of vintage aesthetic preferences and sustainability values " +
				"creates demand for tech accessories that blend nostalgic design with environmental consciousness.",
			MarketOpportunity: "Growing market for sustainable accessories among culturally-aware consumers.",
		},
		{
			ProductCategory: "Lifestyle",
			PredictedTrend:  "Artisanal wellness products for remote workers",
			ConfidenceScore: 82.0,
			TimelineDays:    maxInt(7, days-30),
			TargetAudience:  []string{"remote workers", "wellness enthusiasts"},
			CulturalReasoning: "Remote work culture combined with wellness trends creates opportunity for " +
				"handcrafted wellness items designed for home office environments.",
			MarketOpportunity: "Underserved market of remote workers seeking wellness products.",
		},
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
