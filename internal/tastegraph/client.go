package tastegraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/cultrend/trendseer/internal/errors"
	"github.com/cultrend/trendseer/internal/profile"
)

// Config configures the taste-graph client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// Offline skips the network entirely; every call serves the
	// built-in sample data.
	Offline bool
}

// DefaultConfig returns default configuration.
func DefaultConfig(apiKey string) *Config {
	return &Config{
		BaseURL: "https://hackathon.api.qloo.com",
		APIKey:  apiKey,
		Timeout: 15 * time.Second,
	}
}

// Client talks to the taste-graph API. Every public method degrades to
// deterministic sample data on failure; callers never see an error and
// never block longer than the configured timeout allows.
type Client struct {
	cfg     *Config
	client  *http.Client
	breaker *apperrors.CircuitBreaker
	policy  *apperrors.Policy
	log     zerolog.Logger

	mu             sync.Mutex
	requests       int64
	failures       int64
	fallbacks      int64
	totalLatencyMs int64
}

// NewClient creates a taste-graph client.
func NewClient(cfg *Config, log zerolog.Logger) *Client {
	if cfg == nil {
		cfg = DefaultConfig("")
	}
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		breaker: apperrors.NewCircuitBreaker("tastegraph", nil),
		policy:  apperrors.APIPolicy(),
		log:     log,
	}
}

// EnrichProfile maps a preference set onto cross-domain affinities.
// The returned enrichment is never nil: on any failure (or in offline
// mode) the built-in sample enrichment is served instead, so the
// pipeline downstream always has something to work with.
func (c *Client) EnrichProfile(ctx context.Context, prefs profile.UserPreferences) *profile.Enrichment {
	if c.cfg.Offline || c.cfg.APIKey == "" {
		return SampleEnrichment()
	}

	payload := profileRequest{
		InputData: map[string][]string{
			"music":         prefs.Music,
			"dining":        prefs.Dining,
			"fashion":       prefs.Fashion,
			"entertainment": prefs.Entertainment,
			"lifestyle":     prefs.Lifestyle,
		},
		AnalysisType:           "cross_domain_mapping",
		ReturnCulturalSegments: true,
	}

	enr, err := apperrors.DoWithResult(ctx, c.policy, func() (*profile.Enrichment, error) {
		return apperrors.ExecuteCircuitBreakerWithResult(c.breaker, func() (*profile.Enrichment, error) {
			return c.postTasteProfile(ctx, payload)
		})
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("taste-profile request failed, serving sample enrichment")
		c.recordFallback()
		return SampleEnrichment()
	}
	return enr
}

// SimilarProfiles returns taste communities near the given profile.
// Like EnrichProfile it never fails: sample communities are served on
// any error.
func (c *Client) SimilarProfiles(ctx context.Context, profileID string) []SimilarProfile {
	if c.cfg.Offline || c.cfg.APIKey == "" {
		return SampleSimilarProfiles()
	}

	profiles, err := apperrors.DoWithResult(ctx, c.policy, func() ([]SimilarProfile, error) {
		return apperrors.ExecuteCircuitBreakerWithResult(c.breaker, func() ([]SimilarProfile, error) {
			return c.getSimilarProfiles(ctx, profileID)
		})
	})
	if err != nil {
		c.log.Warn().Err(err).Str("profile_id", profileID).Msg("similar-profiles request failed, serving sample communities")
		c.recordFallback()
		return SampleSimilarProfiles()
	}
	return profiles
}

// Metrics returns a snapshot of the request counters.
func (c *Client) Metrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := Metrics{
		Requests:       c.requests,
		Failures:       c.failures,
		FallbackServed: c.fallbacks,
	}
	if c.requests > 0 {
		m.AvgLatencyMs = float64(c.totalLatencyMs) / float64(c.requests)
	}
	return m
}

// ============================================================
// HTTP plumbing
// ============================================================

func (c *Client) postTasteProfile(ctx context.Context, payload profileRequest) (*profile.Enrichment, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeTasteBadRequest, "failed to marshal taste-profile request", apperrors.CategoryPermanent)
	}

	respBody, err := c.do(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/taste-profile", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var pr profileResponse
	if err := json.Unmarshal(respBody, &pr); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeTasteUnavailable, "failed to parse taste-profile response", apperrors.CategoryPermanent)
	}

	return &profile.Enrichment{
		ProfileID:  pr.ProfileID,
		Segments:   pr.CulturalSegments,
		Entities:   pr.CrossDomainAffinities,
		Indicators: pr.BehavioralScores,
		Confidence: pr.ConfidenceScore,
	}, nil
}

func (c *Client) getSimilarProfiles(ctx context.Context, profileID string) ([]SimilarProfile, error) {
	respBody, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/v1/similar-profiles/%s", c.cfg.BaseURL, profileID), nil)
	if err != nil {
		return nil, err
	}

	var sr similarProfilesResponse
	if err := json.Unmarshal(respBody, &sr); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeTasteUnavailable, "failed to parse similar-profiles response", apperrors.CategoryPermanent)
	}
	return sr.SimilarProfiles, nil
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeTasteBadRequest, "failed to create request", apperrors.CategoryPermanent)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.cfg.APIKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	c.recordRequest(time.Since(start), err != nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeTasteTimeout, "taste-graph request failed", apperrors.CategoryTemporary)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeTasteUnavailable, "failed to read response", apperrors.CategoryTemporary)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, apperrors.RateLimit(apperrors.CodeTasteUnavailable, "taste-graph rate limited", 2*time.Second)
	case resp.StatusCode >= 500:
		c.markFailure()
		return nil, apperrors.Temporary(apperrors.CodeTasteUnavailable,
			fmt.Sprintf("taste-graph server error (status %d)", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		c.markFailure()
		return nil, apperrors.Permanent(apperrors.CodeTasteBadRequest,
			fmt.Sprintf("taste-graph error (status %d)", resp.StatusCode))
	}

	return respBody, nil
}

// ============================================================
// Metrics bookkeeping
// ============================================================

func (c *Client) recordRequest(latency time.Duration, failed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests++
	c.totalLatencyMs += latency.Milliseconds()
	if failed {
		c.failures++
	}
}

func (c *Client) markFailure() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures++
}

func (c *Client) recordFallback() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fallbacks++
}

// ============================================================
// Sample data
// ============================================================

// SampleEnrichment is the deterministic enrichment served whenever the
// taste-graph API cannot be reached.
func SampleEnrichment() *profile.Enrichment {
	return &profile.Enrichment{
		ProfileID: "sample_profile_123",
		Segments:  []string{"indie culture", "sustainability advocates", "minimalists"},
		Entities: map[string][]string{
			"brands":  {"patagonia", "aesop", "muji"},
			"artists": {"bon iver", "khruangbin"},
			"places":  {"independent bookstores", "farmers markets"},
		},
		Indicators: map[string]float64{
			"early_adopter":     0.8,
			"influence_score":   0.6,
			"cultural_openness": 0.9,
		},
		Confidence: 85.0,
	}
}

// SampleSimilarProfiles is the deterministic community list served
// whenever the taste-graph API cannot be reached.
func SampleSimilarProfiles() []SimilarProfile {
	return []SimilarProfile{
		{
			ProfileID:         "similar_1",
			SimilarityScore:   0.82,
			EmergingInterests: []string{"sustainable tech", "artisanal goods", "wellness products"},
		},
		{
			ProfileID:         "similar_2",
			SimilarityScore:   0.76,
			EmergingInterests: []string{"vintage fashion", "indie brands", "eco-friendly"},
		},
	}
}
