package geocoding

import (
	"context"
	"errors"

	"github.com/shenikar/emergency_locator/internal/geo"
	"github.com/shenikar/emergency_locator/internal/models"
)

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

// ErrNoResults - провайдер ответил успешно, но ничего не нашел
var ErrNoResults = errors.New("provider returned no results")

// Provider - внешний сервис прямого геокодирования
type Provider interface {
	Name() string
	Geocode(ctx context.Context, query string) (*models.GeocodeResult, error)
}

// Reverser - внешний сервис обратного геокодирования
type Reverser interface {
	Reverse(ctx context.Context, point geo.Point) (*models.GeocodeResult, error)
}
