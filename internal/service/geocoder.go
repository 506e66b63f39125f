package service

import (
	"context"

	"github.com/shenikar/emergency_locator/internal/geo"
	"github.com/shenikar/emergency_locator/internal/models"
)

//go:generate mockgen -source=geocoder.go -destination=mocks/mock_geocoder.go -package=mocks

// Geocoder определяет контракт преобразования адреса в координаты и обратно
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*models.GeocodeResult, error)
	Reverse(ctx context.Context, point geo.Point) (*models.GeocodeResult, error)
}
