package geo

import (
	"fmt"
	"math"
)

// EarthRadiusMeters - средний радиус Земли (WGS84), используемый в формуле гаверсинуса
const EarthRadiusMeters = 6371008.8

// Point - точка в системе координат WGS84
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewPoint создает точку и проверяет диапазоны координат
func NewPoint(lat, lng float64) (Point, error) {
	p := Point{Lat: lat, Lng: lng}
	if err := p.Validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

// Validate проверяет, что широта в [-90, 90], а долгота в [-180, 180]
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude %v is out of range [-90, 90]", p.Lat)
	}
	if math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) || p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("longitude %v is out of range [-180, 180]", p.Lng)
	}
	return nil
}

// DistanceMeters возвращает расстояние по большому кругу между двумя точками в метрах
func DistanceMeters(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// MetersToKm переводит метры в километры с округлением до двух знаков (половина округляется от нуля)
func MetersToKm(m float64) float64 {
	return math.Round(m/1000*100) / 100
}

// BoundingBox - прямоугольная область допустимых координат
type BoundingBox struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

// Contains проверяет, попадает ли точка в область (границы включительно)
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%.4f,%.4f .. %.4f,%.4f]", b.MinLat, b.MinLng, b.MaxLat, b.MaxLng)
}
