package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateServiceRequest DTO для создания записи об экстренной службе
// @Description DTO для создания записи об экстренной службе
type CreateServiceRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	ServiceType string   `json:"service_type" validate:"required,oneof=hospital police fire"`
	Address     string   `json:"address" validate:"required,max=300"`
	Phone       string   `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email       string   `json:"email,omitempty" validate:"omitempty,email"`
	Description string   `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Capacity    int      `json:"capacity" validate:"gte=0"`
	Is24Hours   *bool    `json:"is_24_hours,omitempty"`
}

// UpdateServiceRequest DTO для полной замены записи (PUT). Поля совпадают с созданием.
// @Description DTO для полной замены записи
type UpdateServiceRequest CreateServiceRequest

// PatchServiceRequest DTO для частичного обновления (PATCH). Отсутствующие поля не меняются.
// @Description DTO для частичного обновления записи
type PatchServiceRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	ServiceType *string  `json:"service_type,omitempty" validate:"omitempty,oneof=hospital police fire"`
	Address     *string  `json:"address,omitempty" validate:"omitempty,min=1,max=300"`
	Phone       *string  `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email       *string  `json:"email,omitempty" validate:"omitempty,email"`
	Description *string  `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Capacity    *int     `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Is24Hours   *bool    `json:"is_24_hours,omitempty"`
}

// ServiceResponse DTO с полной информацией о записи
// @Description DTO с полной информацией о записи
type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ServiceType string    `json:"service_type"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Capacity    int       `json:"capacity"`
	Is24Hours   bool      `json:"is_24_hours"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceListItem DTO элемента списка
// @Description DTO элемента списка
type ServiceListItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ServiceType string    `json:"service_type"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Capacity    int       `json:"capacity"`
	Is24Hours   bool      `json:"is_24_hours"`
	Description string    `json:"description"`
}

// DistanceResponse - расстояние в метрах и километрах
type DistanceResponse struct {
	Meters     float64 `json:"m"`
	Kilometers float64 `json:"km"`
}

// NearbyServiceItem DTO элемента результата пространственного запроса
// @Description DTO элемента результата пространственного запроса
type NearbyServiceItem struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	ServiceType string           `json:"service_type"`
	Address     string           `json:"address"`
	Phone       string           `json:"phone"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	Is24Hours   bool             `json:"is_24_hours"`
	Distance    DistanceResponse `json:"distance"`
}

// UserLocation - точка запроса, возвращаемая в ответе
type UserLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NearestResponse DTO ответа на запрос ближайших служб
type NearestResponse struct {
	UserLocation UserLocation        `json:"user_location"`
	Count        int                 `json:"count"`
	Services     []NearbyServiceItem `json:"services"`
}

// WithinRadiusResponse DTO ответа на запрос служб в радиусе
type WithinRadiusResponse struct {
	UserLocation UserLocation        `json:"user_location"`
	RadiusKm     float64             `json:"radius_km"`
	Count        int                 `json:"count"`
	Services     []NearbyServiceItem `json:"services"`
}

// ByTypeResponse DTO ответа на запрос служб по типу
type ByTypeResponse struct {
	UserLocation UserLocation        `json:"user_location"`
	ServiceType  string              `json:"service_type"`
	Count        int                 `json:"count"`
	Services     []NearbyServiceItem `json:"services"`
}

// TypeCounts - количество записей по типам
type TypeCounts struct {
	Hospitals int `json:"hospitals"`
	Police    int `json:"police"`
	Fire      int `json:"fire"`
}

// StatisticsResponse DTO ответа со статистикой
// @Description DTO ответа со статистикой
type StatisticsResponse struct {
	TotalServices    int        `json:"total_services"`
	ByType           TypeCounts `json:"by_type"`
	Available24Hours int        `json:"available_24_hours"`
}

// GeocodeResponse DTO результата геокодирования
// @Description DTO результата геокодирования
type GeocodeResponse struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
	Confidence       float64 `json:"confidence"`
	Source           string  `json:"source"`
}
