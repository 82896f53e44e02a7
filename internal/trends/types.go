// Package trends runs the full trend prediction pipeline: preference
// enrichment, community alignment, model predictions, final scoring.
package trends

import "time"

// TrendPrediction is one predicted emerging trend.
type TrendPrediction struct {
	ProductCategory   string   `json:"product_category"`
	PredictedTrend    string   `json:"predicted_trend"`
	ConfidenceScore   float64  `json:"confidence_score"`
	TimelineDays      int      `json:"timeline_days"`
	TargetAudience    []string `json:"target_audience"`
	CulturalReasoning string   `json:"cultural_reasoning"`
	MarketOpportunity string   `json:"market_opportunity"`
}

// TrendAnalysis is the complete result of one prediction run.
type TrendAnalysis struct {
	Predictions       []TrendPrediction `json:"predictions"`
	AnalysisDate      time.Time         `json:"analysis_date"`
	Timeframe         string            `json:"timeframe"`
	TotalPredictions  int               `json:"total_predictions"`
	AverageConfidence float64           `json:"average_confidence"`
}

// predictionsEnvelope is the JSON shape requested from the model.
type predictionsEnvelope struct {
	Predictions []TrendPrediction `json:"predictions"`
}
