// Package geocoder wraps the external geocoding provider behind the
// location.AddressResolver interface.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mealbridge/mealbridge/internal/pkg/apperrors"
	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/services/location"
	"github.com/sirupsen/logrus"
)

const statusOK = "OK"

// Client is an HTTP client for the geocoding provider
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
	log        *logger.AppLogger
}

// NewClient creates a new geocoding client. Calls are bounded by the
// configured timeout so a slow provider cannot hold a request open.
func NewClient(cfg models.GeocoderConfig, log *logger.AppLogger) location.AddressResolver {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 5
	}

	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type geometry struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string   `json:"formatted_address"`
		PlaceID          string   `json:"place_id"`
		Geometry         geometry `json:"geometry"`
	} `json:"results"`
}

type autocompleteResponse struct {
	Status      string `json:"status"`
	Predictions []struct {
		Description string `json:"description"`
		PlaceID     string `json:"place_id"`
	} `json:"predictions"`
}

// Geocode converts a free-text address to coordinates
func (c *Client) Geocode(ctx context.Context, address string) (*models.GeocodeResult, error) {
	params := url.Values{}
	params.Set("address", address)

	resp, err := c.call(ctx, "/geocode", params)
	if err != nil {
		return nil, err
	}
	return c.firstResult(resp, address)
}

// ReverseGeocode converts coordinates back to an address
func (c *Client) ReverseGeocode(ctx context.Context, point models.GeoPoint) (*models.GeocodeResult, error) {
	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", point.Latitude, point.Longitude))

	resp, err := c.call(ctx, "/geocode", params)
	if err != nil {
		return nil, err
	}
	return c.firstResult(resp, params.Get("latlng"))
}

// Autocomplete returns address suggestions for a partial input, bounded to
// the provider page size. Each call is independent.
func (c *Client) Autocomplete(ctx context.Context, partial string) ([]models.AddressSuggestion, error) {
	params := url.Values{}
	params.Set("input", partial)

	body, err := c.get(ctx, "/autocomplete", params)
	if err != nil {
		return nil, err
	}

	var resp autocompleteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: malformed provider response: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	if resp.Status != statusOK || len(resp.Predictions) == 0 {
		return nil, fmt.Errorf("no suggestions for %q: %w", partial, apperrors.ErrResolutionFailed)
	}

	limit := len(resp.Predictions)
	if limit > c.pageSize {
		limit = c.pageSize
	}
	suggestions := make([]models.AddressSuggestion, 0, limit)
	for _, p := range resp.Predictions[:limit] {
		suggestions = append(suggestions, models.AddressSuggestion{
			Description: p.Description,
			PlaceID:     p.PlaceID,
		})
	}
	return suggestions, nil
}

func (c *Client) call(ctx context.Context, path string, params url.Values) (*geocodeResponse, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var resp geocodeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: malformed provider response: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	return &resp, nil
}

// firstResult maps the provider payload onto a GeocodeResult, failing closed
// on non-OK status or zero results.
func (c *Client) firstResult(resp *geocodeResponse, input string) (*models.GeocodeResult, error) {
	if resp.Status != statusOK || len(resp.Results) == 0 {
		c.log.WithFields(logrus.Fields{
			"provider_status": resp.Status,
			"input":           input,
		}).Warn("Geocoding returned no result")
		return nil, fmt.Errorf("no result for %q: %w", input, apperrors.ErrResolutionFailed)
	}

	first := resp.Results[0]
	return &models.GeocodeResult{
		Point: models.GeoPoint{
			Longitude: first.Geometry.Location.Lng,
			Latitude:  first.Geometry.Location.Lat,
		},
		FormattedAddress: first.FormattedAddress,
		PlaceID:          first.PlaceID,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("key", c.apiKey)
	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).Error("Geocoding provider request failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
		}).Error("Bad response from geocoding provider")
		return nil, fmt.Errorf("%w: provider returned %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading provider response: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	return body, nil
}
