package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/shenikar/emergency_locator/internal/config"
	"github.com/shenikar/emergency_locator/internal/models"
	"github.com/sirupsen/logrus"
)

const openCageName = "opencage"

type openCageResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Components addressParts `json:"components"`
		Formatted  string       `json:"formatted"`
		Confidence float64      `json:"confidence"`
	} `json:"results"`
}

// OpenCage - клиент OpenCage Geocoding API
type OpenCage struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	countryName string
	countryCode string
	logger      *logrus.Logger
}

// NewOpenCage создает клиент OpenCage из конфигурации
func NewOpenCage(cfg *config.Config, logger *logrus.Logger) *OpenCage {
	return &OpenCage{
		httpClient: &http.Client{
			Timeout: cfg.GeocoderTimeout,
		},
		baseURL:     cfg.OpenCageURL,
		apiKey:      strings.TrimSpace(cfg.OpenCageAPIKey),
		countryName: cfg.CountryName,
		countryCode: cfg.CountryCode,
		logger:      logger,
	}
}

func (c *OpenCage) Name() string {
	return openCageName
}

// Geocode ищет адрес, уточненный названием страны
func (c *OpenCage) Geocode(ctx context.Context, query string) (*models.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s, %s", query, c.countryName))
	params.Set("key", c.apiKey)
	params.Set("countrycode", c.countryCode)
	params.Set("limit", "1")
	params.Set("no_annotations", "1")

	c.logger.WithFields(logrus.Fields{
		"provider": openCageName,
		"query":    query,
	}).Debug("Calling OpenCage geocoding API")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("opencage API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var decoded openCageResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(decoded.Results) == 0 {
		return nil, ErrNoResults
	}

	first := decoded.Results[0]
	return &models.GeocodeResult{
		Lat:              first.Geometry.Lat,
		Lng:              first.Geometry.Lng,
		FormattedAddress: first.Components.format(first.Formatted),
		Confidence:       clampConfidence(first.Confidence),
		Source:           openCageName,
	}, nil
}

// clampConfidence приводит оценку OpenCage к шкале 0..10
func clampConfidence(v float64) float64 {
	return math.Max(0, math.Min(10, v))
}
