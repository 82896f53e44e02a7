// Package tastegraph provides the taste-graph API client used to
// enrich locally extracted preferences with cross-domain affinities.
package tastegraph

// profileRequest is the wire payload for POST /v1/taste-profile.
type profileRequest struct {
	InputData              map[string][]string `json:"input_data"`
	AnalysisType           string              `json:"analysis_type"`
	ReturnCulturalSegments bool                `json:"return_cultural_segments"`
}

// profileResponse is the wire shape returned by /v1/taste-profile.
type profileResponse struct {
	ProfileID             string              `json:"profile_id"`
	CulturalSegments      []string            `json:"cultural_segments"`
	CrossDomainAffinities map[string][]string `json:"cross_domain_affinities"`
	BehavioralScores      map[string]float64  `json:"behavioral_scores"`
	ConfidenceScore       float64             `json:"confidence_score"`
}

// SimilarProfile is one entry from /v1/similar-profiles/{id}: a nearby
// taste community and the interests emerging inside it.
type SimilarProfile struct {
	ProfileID        string   `json:"profile_id"`
	SimilarityScore  float64  `json:"similarity_score"`
	EmergingInterests []string `json:"emerging_interests"`
}

type similarProfilesResponse struct {
	SimilarProfiles []SimilarProfile `json:"similar_profiles"`
}

// Metrics is a snapshot of the client's request counters.
type Metrics struct {
	Requests       int64   `json:"total_requests"`
	Failures       int64   `json:"failed_requests"`
	AvgLatencyMs   float64 `json:"average_latency_ms"`
	FallbackServed int64   `json:"fallback_served"`
}
