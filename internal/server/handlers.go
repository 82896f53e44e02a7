package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cultrend/trendseer/internal/catalog"
	"github.com/cultrend/trendseer/internal/config"
	"github.com/cultrend/trendseer/internal/profile"
)

// handleRoot serves the service info document.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Cultrend Cultural Intelligence API",
		"version":  Version,
		"status":   "active",
		"features": []string{"cultural_analysis", "trend_prediction", "brand_insights", "recommendations"},
	})
}

// handleAnalyze runs the complete pipeline for a preference set.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var prefs profile.UserPreferences
	if err := decodeBody(r, &prefs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	prof := s.analyzer.BuildProfile(r.Context(), prefs)
	analysis := s.analyzer.PredictForProfile(r.Context(), prof, "90d")

	predictions := make([]map[string]any, 0, len(analysis.Predictions))
	for _, p := range analysis.Predictions {
		predictions = append(predictions, map[string]any{
			"trend":           p.PredictedTrend,
			"confidence":      p.ConfidenceScore,
			"timeline_days":   p.TimelineDays,
			"target_audience": p.TargetAudience,
			"reasoning":       p.CulturalReasoning,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":           true,
		"cultural_profile":  prof,
		"trend_predictions": predictions,
		"analysis_metadata": map[string]any{
			"total_predictions":  analysis.TotalPredictions,
			"average_confidence": analysis.AverageConfidence,
			"timestamp":          analysis.AnalysisDate,
		},
	})
}

// predictTrendsRequest is the body for POST /api/predict-trends.
type predictTrendsRequest struct {
	CulturalProfile profile.CulturalProfile `json:"cultural_profile"`
	Timeframe       string                  `json:"timeframe"`
}

// handlePredictTrends generates predictions for an existing profile.
func (s *Server) handlePredictTrends(w http.ResponseWriter, r *http.Request) {
	var req predictTrendsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Timeframe == "" {
		req.Timeframe = "90d"
	}
	if !config.ValidTimeframe(req.Timeframe) {
		writeError(w, http.StatusBadRequest, "timeframe must be one of 30d, 90d, 180d")
		return
	}

	analysis := s.analyzer.PredictForProfile(r.Context(), req.CulturalProfile, req.Timeframe)

	predictions := make([]map[string]any, 0, len(analysis.Predictions))
	for _, p := range analysis.Predictions {
		predictions = append(predictions, map[string]any{
			"category":    p.ProductCategory,
			"trend":       p.PredictedTrend,
			"confidence":  p.ConfidenceScore,
			"timeline":    p.TimelineDays,
			"audience":    p.TargetAudience,
			"reasoning":   p.CulturalReasoning,
			"opportunity": p.MarketOpportunity,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"predictions": predictions,
		"timeframe":   req.Timeframe,
	})
}

// recommendationsRequest is the body for POST /api/recommendations.
type recommendationsRequest struct {
	Preferences profile.UserPreferences `json:"preferences"`
	Type        string                  `json:"type"` // products, experiences, all
	Max         int                     `json:"max"`
}

// handleRecommendations ranks catalog items for a preference set.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Max <= 0 {
		req.Max = 6
	}

	var items []catalog.Item
	switch req.Type {
	case "", "all":
		items = s.catalog.All()
	case "products":
		items = s.catalog.Products()
	case "experiences":
		items = s.catalog.Experiences()
	default:
		writeError(w, http.StatusBadRequest, "type must be one of products, experiences, all")
		return
	}

	prof := s.analyzer.BuildProfile(r.Context(), req.Preferences)
	recs := s.ranker.Rank(prof, items, req.Max)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"profile_id":      prof.ProfileID,
		"recommendations": recs,
		"count":           len(recs),
	})
}

// handleSimilarProfiles returns taste communities near a profile.
func (s *Server) handleSimilarProfiles(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")
	similar := s.taste.SimilarProfiles(r.Context(), profileID)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"profile_id":       profileID,
		"similar_profiles": similar,
		"count":            len(similar),
	})
}

// handlePerformance reports the taste-graph client counters.
func (s *Server) handlePerformance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":           true,
		"taste_performance": s.taste.Metrics(),
		"system_status":     "operational",
	})
}

// ============================================================
// Helpers
// ============================================================

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}
