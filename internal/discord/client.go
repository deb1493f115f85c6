package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/event"
	"github.com/osse101/FarmCalc_Go/internal/handler"
)

// API client settings
const (
	apiPrefix      = "/api/v1"
	headerAPIKey   = "X-API-Key"
	requestTimeout = 10 * time.Second
	maxRetries     = 3
	retryBaseDelay = 500 * time.Millisecond
)

// APIClient talks to the FarmCalc HTTP API on behalf of Discord users
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	RetryDelay time.Duration
}

// FarmDetail is the decoded crop breakdown. The return on investment is nil when undefined.
type FarmDetail struct {
	domain.CropDetail
	ROI        *float64 `json:"return_on_investment"`
	ROIDefined bool     `json:"roi_defined"`
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		Client:     &http.Client{Timeout: requestTimeout},
		APIKey:     apiKey,
		RetryDelay: retryBaseDelay,
	}
}

// APIError is a non-2xx answer from the API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status: %d", e.Status)
	}
	return "API error: " + e.Message
}

// doRequest sends the request for profile and decodes a 2xx body into out.
// Transport failures and 5xx answers are retried with exponential backoff.
func (c *APIClient) doRequest(ctx context.Context, method, path, profile string, body, out interface{}) error {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + apiPrefix + path

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := event.CalculateRetryDelay(c.RetryDelay, attempt)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(handler.HeaderProfileID, profile)
		if c.APIKey != "" {
			req.Header.Set(headerAPIKey, c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = decodeAPIError(resp)
			resp.Body.Close()
			slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
			continue
		}

		err = decodeResponse(resp, out)
		resp.Body.Close()
		return err
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func decodeResponse(resp *http.Response, out interface{}) error {
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var errResp handler.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&errResp)
	return &APIError{Status: resp.StatusCode, Message: errResp.Error}
}

// GetRanking returns the ranked crop list of profile
func (c *APIClient) GetRanking(ctx context.Context, profile string) ([]domain.RankedCrop, error) {
	var resp handler.FarmsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/farms", profile, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Crops, nil
}

// GetFarm returns the breakdown of one crop for profile
func (c *APIClient) GetFarm(ctx context.Context, profile, cropName string) (*FarmDetail, error) {
	var detail FarmDetail
	path := "/farms/" + url.PathEscape(cropName)
	if err := c.doRequest(ctx, http.MethodGet, path, profile, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// SetPrice stores the market price of a crop. The price is sent as text and coerced by the API.
func (c *APIClient) SetPrice(ctx context.Context, profile, cropName, price string) (*handler.SetPriceResponse, error) {
	var resp handler.SetPriceResponse
	path := "/prices/" + url.PathEscape(cropName)
	body := map[string]string{"price": price}
	if err := c.doRequest(ctx, http.MethodPut, path, profile, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPreferences returns the stored preferences of profile
func (c *APIClient) GetPreferences(ctx context.Context, profile string) (*domain.Preferences, error) {
	var prefs domain.Preferences
	if err := c.doRequest(ctx, http.MethodGet, "/preferences", profile, nil, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// UpdatePreferences applies a partial update and returns the resulting preferences
func (c *APIClient) UpdatePreferences(ctx context.Context, profile string, update domain.PreferencesUpdate) (*domain.Preferences, error) {
	var prefs domain.Preferences
	resp := handler.DataResponse{Data: &prefs}
	if err := c.doRequest(ctx, http.MethodPatch, "/preferences", profile, update, &resp); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// GetCatalog returns every crop the API knows
func (c *APIClient) GetCatalog(ctx context.Context) ([]domain.Crop, error) {
	var resp handler.CatalogResponse
	if err := c.doRequest(ctx, http.MethodGet, "/catalog", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Crops, nil
}

// Healthy reports whether the API answers its liveness probe
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
