package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/PiovisDevelopment/calorie-flow/backend/config"
)

var (
	// ErrAnalysisRequest covers network failures, non-success statuses and
	// undecodable payloads from the analysis service.
	ErrAnalysisRequest = errors.New("image analysis request failed")

	// ErrAnalysisInFlight is returned when a capture session already has an
	// unresolved analysis request.
	ErrAnalysisInFlight = errors.New("an analysis request is already in flight for this capture session")
)

// AnalysisResult is the nutritional estimate for one captured image.
type AnalysisResult struct {
	Description      string  `json:"description"`
	HealthSuggestion string  `json:"health_suggestion"`
	Calories         float64 `json:"calories"`
	CarbsG           float64 `json:"carbs"`
	ProteinG         float64 `json:"protein"`
	FatsG            float64 `json:"fats"`
}

// analysisPayload accepts both response shapes the service is known to emit:
// the fields at the top level, or nested under an "output" object.
type analysisPayload struct {
	AnalysisResult
}

func (p *analysisPayload) UnmarshalJSON(data []byte) error {
	var nested struct {
		Output *AnalysisResult `json:"output"`
	}
	if err := json.Unmarshal(data, &nested); err == nil && nested.Output != nil {
		p.AnalysisResult = *nested.Output
		return nil
	}

	var flat AnalysisResult
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	p.AnalysisResult = flat
	return nil
}

// AnalysisService sends captured food photos to the external recognition
// service and stores the photos in S3.
type AnalysisService struct {
	apiURL   string
	apiKey   string
	s3Config *config.S3Config
	client   *http.Client

	// One unresolved request per capture session.
	mu       sync.Mutex
	inflight map[string]bool
}

var _ IAnalysisService = (*AnalysisService)(nil)

// NewAnalysisService creates a new AnalysisService instance. The timeout
// bounds every analysis request; an expired request counts as a network
// failure.
func NewAnalysisService(cfg *config.Config, s3Config *config.S3Config) *AnalysisService {
	return &AnalysisService{
		apiURL:   cfg.AnalysisURL,
		apiKey:   cfg.AnalysisAPIKey,
		s3Config: s3Config,
		client: &http.Client{
			Timeout: cfg.AnalysisTimeout,
		},
		inflight: make(map[string]bool),
	}
}

// Analyze submits one image for recognition. ctx cancellation (the capture
// flow was closed) abandons the request; the caller must not log anything in
// that case.
func (s *AnalysisService) Analyze(ctx context.Context, sessionID string, image []byte, contentType string) (*AnalysisResult, error) {
	if err := s.acquire(sessionID); err != nil {
		return nil, err
	}
	defer s.release(sessionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrAnalysisRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrAnalysisRequest, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("analysis service returned non-success status")
		return nil, fmt.Errorf("%w: status %d", ErrAnalysisRequest, resp.StatusCode)
	}

	var payload analysisPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrAnalysisRequest, err)
	}

	return &payload.AnalysisResult, nil
}

// FallbackResult is the documented estimate a user may accept after a failed
// analysis.
func (s *AnalysisService) FallbackResult() *AnalysisResult {
	return &AnalysisResult{
		Description:      "Estimated meal (analysis unavailable)",
		HealthSuggestion: "Log your meals consistently to stay on track with your plan.",
		Calories:         250,
		CarbsG:           30,
		ProteinG:         15,
		FatsG:            10,
	}
}

// StoreImage uploads the captured photo to S3 and returns its public URL for
// use as the entry's image reference. Failure is non-fatal to logging: the
// caller may append an entry without an image reference.
func (s *AnalysisService) StoreImage(ctx context.Context, image []byte, contentType string) (string, error) {
	if s.s3Config == nil {
		return "", nil
	}

	fileName := fmt.Sprintf("food-photos/%s", uuid.New().String())
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(image),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo to S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Info().Str("url", url).Msg("stored captured food photo")
	return url, nil
}

func (s *AnalysisService) acquire(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[sessionID] {
		return ErrAnalysisInFlight
	}
	s.inflight[sessionID] = true
	return nil
}

func (s *AnalysisService) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, sessionID)
}

// SetHTTPClient overrides the HTTP client, for tests.
func (s *AnalysisService) SetHTTPClient(c *http.Client) {
	s.client = c
}
