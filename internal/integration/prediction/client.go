// Package prediction provides the client for the external flood
// prediction model service
package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sebchi-crtl/sdss/internal/entities"
)

// DefaultTimeout bounds the single prediction attempt so a hung model
// service cannot stall the blending pipeline.
const DefaultTimeout = 5 * time.Second

// Client calls the external prediction endpoint. Every failure mode
// (transport error, non-success status, malformed body) surfaces as
// entities.ErrPredictionUnavailable so callers can fall back without
// inspecting the cause.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a prediction client for the given endpoint URL
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	HorizonHours      []int                    `json:"horizon_hours"`
	CurrentConditions entities.ConditionVector `json:"current_conditions"`
	RegionCode        string                   `json:"region_code"`
}

type predictResponse struct {
	Risk       []float64 `json:"risk"`
	Confidence []float64 `json:"confidence"`
}

// Predict requests a risk/confidence pair for one forecast horizon. A
// single attempt is made; there are no retries.
func (c *Client) Predict(ctx context.Context, regionCode string, conditions entities.ConditionVector, horizonHours int) (entities.Prediction, error) {
	body, err := json.Marshal(predictRequest{
		HorizonHours:      []int{horizonHours},
		CurrentConditions: conditions,
		RegionCode:        regionCode,
	})
	if err != nil {
		return entities.Prediction{}, fmt.Errorf("%w: failed to encode request: %v", entities.ErrPredictionUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return entities.Prediction{}, fmt.Errorf("%w: failed to build request: %v", entities.ErrPredictionUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Prediction request failed: %v", err)
		return entities.Prediction{}, fmt.Errorf("%w: %v", entities.ErrPredictionUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Printf("Prediction service returned unexpected status: %d %s", res.StatusCode, res.Status)
		return entities.Prediction{}, fmt.Errorf("%w: unexpected status code %d", entities.ErrPredictionUnavailable, res.StatusCode)
	}

	var parsed predictResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		log.Printf("Failed to decode prediction response: %v", err)
		return entities.Prediction{}, fmt.Errorf("%w: malformed response: %v", entities.ErrPredictionUnavailable, err)
	}
	if len(parsed.Risk) == 0 || len(parsed.Confidence) == 0 {
		return entities.Prediction{}, fmt.Errorf("%w: response missing risk or confidence values", entities.ErrPredictionUnavailable)
	}

	// Only the first horizon's pair is used for blending.
	prediction := entities.Prediction{
		Risk:       clamp01(parsed.Risk[0]),
		Confidence: clamp01(parsed.Confidence[0]),
	}
	return prediction, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
