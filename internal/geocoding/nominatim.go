package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shenikar/emergency_locator/internal/config"
	"github.com/shenikar/emergency_locator/internal/geo"
	"github.com/shenikar/emergency_locator/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	nominatimName = "nominatim"
	// Nominatim не отдает оценку точности, используем фиксированное значение
	nominatimConfidence = 8.0
)

// nominatimPlace - элемент ответа /search и тело ответа /reverse. Координаты приходят строками.
type nominatimPlace struct {
	Lat         string       `json:"lat"`
	Lon         string       `json:"lon"`
	DisplayName string       `json:"display_name"`
	Address     addressParts `json:"address"`
	Error       string       `json:"error"`
}

func (p nominatimPlace) toResult() (*models.GeocodeResult, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q in response: %w", p.Lat, err)
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q in response: %w", p.Lon, err)
	}
	return &models.GeocodeResult{
		Lat:              lat,
		Lng:              lng,
		FormattedAddress: p.Address.format(p.DisplayName),
		Confidence:       nominatimConfidence,
		Source:           nominatimName,
	}, nil
}

// Nominatim - клиент OpenStreetMap Nominatim (прямое и обратное геокодирование)
type Nominatim struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	countryCode string
	logger      *logrus.Logger
}

// NewNominatim создает клиент Nominatim из конфигурации
func NewNominatim(cfg *config.Config, logger *logrus.Logger) *Nominatim {
	return &Nominatim{
		httpClient: &http.Client{
			Timeout: cfg.GeocoderTimeout,
		},
		baseURL:     cfg.NominatimURL,
		userAgent:   cfg.GeocoderUserAgent,
		countryCode: cfg.CountryCode,
		logger:      logger,
	}
}

func (c *Nominatim) Name() string {
	return nominatimName
}

// Geocode ищет адрес через /search с ограничением по стране
func (c *Nominatim) Geocode(ctx context.Context, query string) (*models.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("addressdetails", "1")
	params.Set("countrycodes", c.countryCode)

	c.logger.WithFields(logrus.Fields{
		"provider": nominatimName,
		"query":    query,
	}).Debug("Calling Nominatim search API")

	var places []nominatimPlace
	if err := c.get(ctx, "/search", params, &places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, ErrNoResults
	}
	return places[0].toResult()
}

// Reverse возвращает адрес для точки через /reverse
func (c *Nominatim) Reverse(ctx context.Context, point geo.Point) (*models.GeocodeResult, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(point.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(point.Lng, 'f', -1, 64))
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("zoom", "18")

	c.logger.WithFields(logrus.Fields{
		"provider": nominatimName,
		"lat":      point.Lat,
		"lng":      point.Lng,
	}).Debug("Calling Nominatim reverse API")

	var place nominatimPlace
	if err := c.get(ctx, "/reverse", params, &place); err != nil {
		return nil, err
	}
	// На точки без адреса Nominatim отвечает 200 с полем error
	if place.Error != "" || (place.DisplayName == "" && place.Address == addressParts{}) {
		return nil, ErrNoResults
	}
	return place.toResult()
}

func (c *Nominatim) get(ctx context.Context, path string, params url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// Политика использования Nominatim требует идентифицирующий User-Agent
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("nominatim API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
