package geocoding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/emergency_locator/internal/config"
	"github.com/shenikar/emergency_locator/internal/geo"
	"github.com/shenikar/emergency_locator/internal/models"
	"github.com/sirupsen/logrus"
)

// Resolver опрашивает провайдеров строго по порядку и возвращает первый результат внутри страны.
// Ошибки промежуточных провайдеров только логируются; наружу выходит результат последнего.
type Resolver struct {
	providers []Provider
	reverser  Reverser
	bbox      geo.BoundingBox
	logger    *logrus.Logger
}

func NewResolver(providers []Provider, reverser Reverser, bbox geo.BoundingBox, logger *logrus.Logger) *Resolver {
	return &Resolver{
		providers: providers,
		reverser:  reverser,
		bbox:      bbox,
		logger:    logger,
	}
}

// NewResolverFromConfig собирает цепочку провайдеров: OpenCage только при непустом ключе, Nominatim всегда последний
func NewResolverFromConfig(cfg *config.Config, logger *logrus.Logger) *Resolver {
	nominatim := NewNominatim(cfg, logger)

	providers := make([]Provider, 0, 2)
	if strings.TrimSpace(cfg.OpenCageAPIKey) != "" {
		providers = append(providers, NewOpenCage(cfg, logger))
	} else {
		logger.Info("OPENCAGE_API_KEY is not set, geocoding will use Nominatim only")
	}
	providers = append(providers, nominatim)

	return NewResolver(providers, nominatim, cfg.BoundingBox, logger)
}

// Geocode преобразует адрес в координаты
func (r *Resolver) Geocode(ctx context.Context, query string) (*models.GeocodeResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query parameter is required", models.ErrInvalidParameter)
	}
	if len(r.providers) == 0 {
		return nil, fmt.Errorf("%w: no geocoding providers configured", models.ErrGeocodingFailed)
	}

	log := r.logger.WithFields(logrus.Fields{
		"service": "geocoding",
		"method":  "Geocode",
		"query":   query,
	})

	for i, provider := range r.providers {
		last := i == len(r.providers)-1
		plog := log.WithField("provider", provider.Name())

		result, err := provider.Geocode(ctx, query)
		switch {
		case errors.Is(err, ErrNoResults):
			plog.Info("Geocoding provider returned no results")
			if last {
				return nil, fmt.Errorf("%w for %q", models.ErrNoResultsFound, query)
			}
		case err != nil:
			plog.WithError(err).Warn("Geocoding provider failed")
			if last {
				return nil, fmt.Errorf("%w: %s: %v", models.ErrGeocodingFailed, provider.Name(), err)
			}
		case !r.bbox.Contains(geo.Point{Lat: result.Lat, Lng: result.Lng}):
			plog.WithFields(logrus.Fields{
				"lat": result.Lat,
				"lng": result.Lng,
			}).Info("Geocoding result is outside the bounding box")
			if last {
				return nil, fmt.Errorf("%w for %q within %s", models.ErrNoResultsFound, query, r.bbox)
			}
		default:
			result.Source = provider.Name()
			plog.Debug("Geocoding succeeded")
			return result, nil
		}
	}

	// Недостижимо: последний провайдер всегда возвращает результат или ошибку
	return nil, fmt.Errorf("%w for %q", models.ErrNoResultsFound, query)
}

// Reverse преобразует координаты в адрес
func (r *Resolver) Reverse(ctx context.Context, point geo.Point) (*models.GeocodeResult, error) {
	if err := point.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidParameter, err)
	}
	if r.reverser == nil {
		return nil, fmt.Errorf("%w: reverse geocoding is not configured", models.ErrGeocodingFailed)
	}

	log := r.logger.WithFields(logrus.Fields{
		"service": "geocoding",
		"method":  "Reverse",
		"lat":     point.Lat,
		"lng":     point.Lng,
	})

	result, err := r.reverser.Reverse(ctx, point)
	if err != nil {
		if errors.Is(err, ErrNoResults) {
			log.Info("Reverse geocoding returned no address")
			return nil, fmt.Errorf("%w for point %v,%v", models.ErrNoResultsFound, point.Lat, point.Lng)
		}
		log.WithError(err).Warn("Reverse geocoding failed")
		return nil, fmt.Errorf("%w: %v", models.ErrGeocodingFailed, err)
	}
	return result, nil
}
