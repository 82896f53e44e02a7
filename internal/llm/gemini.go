package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/cultrend/trendseer/internal/errors"
)

// GeminiConfig configures the Gemini client.
type GeminiConfig struct {
	APIKey  string
	BaseURL string // Default: https://generativelanguage.googleapis.com/v1beta
	Model   string // e.g., "gemini-1.5-flash"
	Timeout time.Duration
}

// DefaultGeminiConfig returns default configuration.
func DefaultGeminiConfig(apiKey string) *GeminiConfig {
	return &GeminiConfig{
		APIKey:  apiKey,
		BaseURL: "https://generativelanguage.googleapis.com/v1beta",
		Model:   "gemini-1.5-flash",
		Timeout: 30 * time.Second,
	}
}

// GeminiClient implements Model using the Gemini generateContent API.
type GeminiClient struct {
	cfg     *GeminiConfig
	client  *http.Client
	breaker *apperrors.CircuitBreaker
	policy  *apperrors.Policy
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(cfg *GeminiConfig) *GeminiClient {
	if cfg == nil {
		return nil
	}
	return &GeminiClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		breaker: apperrors.NewCircuitBreaker("gemini", nil),
		policy:  apperrors.APIPolicy(),
	}
}

// Generate sends a prompt to Gemini and returns the response. Transient
// failures are retried once; 4xx responses are permanent and surface
// immediately so callers can fall back.
func (c *GeminiClient) Generate(ctx context.Context, req *Request) (*Response, error) {
	if c == nil {
		return nil, apperrors.Permanent(apperrors.CodeLLMUnavailable, "gemini client not initialized")
	}

	body, err := json.Marshal(c.buildRequest(req))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	start := time.Now()
	resp, err := apperrors.DoWithResult(ctx, c.policy, func() (*Response, error) {
		return apperrors.ExecuteCircuitBreakerWithResult(c.breaker, func() (*Response, error) {
			return c.doRequest(ctx, body)
		})
	})
	if err != nil {
		return nil, err
	}
	resp.DurationMs = time.Since(start).Milliseconds()
	return resp, nil
}

func (c *GeminiClient) doRequest(ctx context.Context, body []byte) (*Response, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeLLMUnavailable, "failed to create request", apperrors.CategoryPermanent)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeLLMTimeout, "gemini request failed", apperrors.CategoryTemporary)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeLLMUnavailable, "failed to read response", apperrors.CategoryTemporary)
	}

	switch {
	case httpResp.StatusCode == http.StatusTooManyRequests:
		return nil, apperrors.RateLimit(apperrors.CodeLLMRateLimit, "gemini rate limited", 2*time.Second)
	case httpResp.StatusCode >= 500:
		return nil, apperrors.Temporary(apperrors.CodeLLMUnavailable,
			fmt.Sprintf("gemini server error (status %d)", httpResp.StatusCode))
	case httpResp.StatusCode != http.StatusOK:
		return nil, apperrors.Permanent(apperrors.CodeLLMUnavailable,
			fmt.Sprintf("gemini error (status %d): %s", httpResp.StatusCode, truncate(string(respBody), 200)))
	}

	var gr geminiResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeLLMParseError, "failed to parse gemini response", apperrors.CategoryPermanent)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, apperrors.Permanent(apperrors.CodeLLMParseError, "no candidates in gemini response")
	}

	return &Response{
		Text:       gr.Candidates[0].Content.Parts[0].Text,
		TokensUsed: gr.UsageMetadata.TotalTokenCount,
		Model:      c.cfg.Model,
	}, nil
}

// buildRequest maps the generic Request onto the generateContent body.
func (c *GeminiClient) buildRequest(req *Request) map[string]any {
	body := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": req.Prompt},
				},
			},
		},
	}

	if req.System != "" {
		body["systemInstruction"] = map[string]any{
			"parts": []map[string]string{
				{"text": req.System},
			},
		}
	}

	genCfg := map[string]any{}
	if req.Temperature > 0 {
		genCfg["temperature"] = req.Temperature
	}
	if req.MaxTokens > 0 {
		genCfg["maxOutputTokens"] = req.MaxTokens
	}
	if req.JSON {
		genCfg["responseMimeType"] = "application/json"
	}
	if len(genCfg) > 0 {
		body["generationConfig"] = genCfg
	}

	return body
}

// IsAvailable checks if the client is configured.
func (c *GeminiClient) IsAvailable() bool {
	return c != nil && c.cfg != nil && c.cfg.APIKey != ""
}

// Name returns the model name.
func (c *GeminiClient) Name() string {
	if c != nil && c.cfg != nil {
		return c.cfg.Model
	}
	return "gemini"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// ============================================================
// Gemini API Types
// ============================================================

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}
