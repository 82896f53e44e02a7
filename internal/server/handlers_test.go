package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultrend/trendseer/internal/catalog"
	"github.com/cultrend/trendseer/internal/recommend"
	"github.com/cultrend/trendseer/internal/tastegraph"
	"github.com/cultrend/trendseer/internal/trends"
)

func testServer() *Server {
	cfg := tastegraph.DefaultConfig("")
	cfg.Offline = true
	taste := tastegraph.NewClient(cfg, zerolog.Nop())

	analyzer := trends.NewAnalyzer(taste, nil, zerolog.Nop())
	return New(":0", analyzer, taste, recommend.NewRanker(nil), catalog.NewStore(), zerolog.Nop())
}

func doRequest(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	testServer().Router().ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestRootEndpoint(t *testing.T) {
	rec, body := doRequest(t, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, Version, body["version"])
	assert.Equal(t, "active", body["status"])
}

func TestAnalyzeEndpoint(t *testing.T) {
	rec, body := doRequest(t, http.MethodPost, "/api/analyze",
		`{"music": ["jazz"], "lifestyle": ["sustainable living"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	prof, ok := body["cultural_profile"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, prof["cultural_segments"])

	preds, ok := body["trend_predictions"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, preds)

	meta, ok := body["analysis_metadata"].(map[string]any)
	require.True(t, ok)
	assert.Greater(t, meta["average_confidence"], 0.0)
}

func TestAnalyzeEmptyBodyStillSucceeds(t *testing.T) {
	rec, body := doRequest(t, http.MethodPost, "/api/analyze", "{}")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
}

func TestAnalyzeMalformedBody(t *testing.T) {
	rec, body := doRequest(t, http.MethodPost, "/api/analyze", "not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestPredictTrendsDefaultTimeframe(t *testing.T) {
	rec, body := doRequest(t, http.MethodPost, "/api/predict-trends",
		`{"cultural_profile": {"cultural_segments": ["jazz aficionados"]}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "90d", body["timeframe"])
	assert.NotEmpty(t, body["predictions"])
}

func TestPredictTrendsInvalidTimeframe(t *testing.T) {
	rec, body := doRequest(t, http.MethodPost, "/api/predict-trends",
		`{"timeframe": "1y"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "timeframe")
}

func TestRecommendationsEndpoint(t *testing.T) {
	rec, body := doRequest(t, http.MethodPost, "/api/recommendations",
		`{"preferences": {"music": ["jazz"]}, "type": "products", "max": 2}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2.0, body["count"])

	recs, ok := body["recommendations"].([]any)
	require.True(t, ok)
	require.Len(t, recs, 2)

	first, ok := recs[0].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, first, "relevance_score")
}

func TestRecommendationsInvalidType(t *testing.T) {
	rec, _ := doRequest(t, http.MethodPost, "/api/recommendations",
		`{"type": "vehicles"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimilarProfilesEndpoint(t *testing.T) {
	rec, body := doRequest(t, http.MethodGet, "/api/similar-profiles/p-123", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p-123", body["profile_id"])
	assert.NotEmpty(t, body["similar_profiles"])
}

func TestPerformanceEndpoint(t *testing.T) {
	rec, body := doRequest(t, http.MethodGet, "/api/performance", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "operational", body["system_status"])
	assert.Contains(t, body, "taste_performance")
}
