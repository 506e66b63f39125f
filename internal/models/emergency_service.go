package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_locator/internal/geo"
)

// ServiceType - тип экстренной службы
type ServiceType string

const (
	ServiceTypeHospital ServiceType = "hospital"
	ServiceTypePolice   ServiceType = "police"
	ServiceTypeFire     ServiceType = "fire"
)

// ServiceTypes перечисляет все допустимые типы служб
var ServiceTypes = []ServiceType{ServiceTypeHospital, ServiceTypePolice, ServiceTypeFire}

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypeHospital, ServiceTypePolice, ServiceTypeFire:
		return true
	}
	return false
}

// ParseServiceType разбирает строку в тип службы
func ParseServiceType(s string) (ServiceType, error) {
	t := ServiceType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: invalid service type %q, choose: hospital, police, or fire", ErrInvalidParameter, s)
	}
	return t, nil
}

// EmergencyService - запись об экстренной службе (больница, полиция, пожарная часть)
type EmergencyService struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	ServiceType ServiceType `json:"service_type"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	Description string      `json:"description"`
	Location    geo.Point   `json:"location"`
	Capacity    int         `json:"capacity"`
	Is24Hours   bool        `json:"is_24_hours"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ServicePatch - частичное обновление записи; nil означает "не менять"
type ServicePatch struct {
	Name        *string
	ServiceType *ServiceType
	Address     *string
	Phone       *string
	Email       *string
	Description *string
	Latitude    *float64
	Longitude   *float64
	Capacity    *int
	Is24Hours   *bool
}

// Apply применяет изменения к существующей записи
func (p ServicePatch) Apply(s *EmergencyService) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.ServiceType != nil {
		s.ServiceType = *p.ServiceType
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Latitude != nil {
		s.Location.Lat = *p.Latitude
	}
	if p.Longitude != nil {
		s.Location.Lng = *p.Longitude
	}
	if p.Capacity != nil {
		s.Capacity = *p.Capacity
	}
	if p.Is24Hours != nil {
		s.Is24Hours = *p.Is24Hours
	}
}

// Distance - расстояние от точки запроса
type Distance struct {
	Meters     float64 `json:"m"`
	Kilometers float64 `json:"km"`
}

func NewDistance(meters float64) Distance {
	return Distance{Meters: meters, Kilometers: geo.MetersToKm(meters)}
}

// NearbyService - запись вместе с расстоянием до точки запроса. Не сохраняется.
type NearbyService struct {
	EmergencyService
	Distance Distance `json:"distance"`
}

// Statistics - агрегированная статистика по службам
type Statistics struct {
	Total            int `json:"total_services"`
	Hospitals        int `json:"hospitals"`
	Police           int `json:"police"`
	Fire             int `json:"fire"`
	Available24Hours int `json:"available_24_hours"`
}
