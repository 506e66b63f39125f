package v1

import (
	"github.com/shenikar/emergency_locator/internal/geo"
	"github.com/shenikar/emergency_locator/internal/models"
)

// DTOToServiceModel преобразует DTO создания/замены в доменную модель.
// Запись без is_24_hours считается круглосуточной.
func DTOToServiceModel(dto CreateServiceRequest) *models.EmergencyService {
	is24Hours := true
	if dto.Is24Hours != nil {
		is24Hours = *dto.Is24Hours
	}
	svc := &models.EmergencyService{
		Name:        dto.Name,
		ServiceType: models.ServiceType(dto.ServiceType),
		Address:     dto.Address,
		Phone:       dto.Phone,
		Email:       dto.Email,
		Description: dto.Description,
		Capacity:    dto.Capacity,
		Is24Hours:   is24Hours,
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		svc.Location = geo.Point{Lat: *dto.Latitude, Lng: *dto.Longitude}
	}
	return svc
}

// DTOToServicePatch преобразует DTO частичного обновления в доменный патч
func DTOToServicePatch(dto PatchServiceRequest) models.ServicePatch {
	patch := models.ServicePatch{
		Name:        dto.Name,
		Address:     dto.Address,
		Phone:       dto.Phone,
		Email:       dto.Email,
		Description: dto.Description,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Capacity:    dto.Capacity,
		Is24Hours:   dto.Is24Hours,
	}
	if dto.ServiceType != nil {
		st := models.ServiceType(*dto.ServiceType)
		patch.ServiceType = &st
	}
	return patch
}

// ModelToServiceResponse преобразует доменную модель в DTO для ответа
func ModelToServiceResponse(model *models.EmergencyService) *ServiceResponse {
	return &ServiceResponse{
		ID:          model.ID,
		Name:        model.Name,
		ServiceType: string(model.ServiceType),
		Address:     model.Address,
		Phone:       model.Phone,
		Email:       model.Email,
		Description: model.Description,
		Latitude:    model.Location.Lat,
		Longitude:   model.Location.Lng,
		Capacity:    model.Capacity,
		Is24Hours:   model.Is24Hours,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToServiceListItems преобразует слайс моделей в элементы списка
func ModelsToServiceListItems(services []*models.EmergencyService) []ServiceListItem {
	items := make([]ServiceListItem, len(services))
	for i, s := range services {
		items[i] = ServiceListItem{
			ID:          s.ID,
			Name:        s.Name,
			ServiceType: string(s.ServiceType),
			Address:     s.Address,
			Phone:       s.Phone,
			Email:       s.Email,
			Latitude:    s.Location.Lat,
			Longitude:   s.Location.Lng,
			Capacity:    s.Capacity,
			Is24Hours:   s.Is24Hours,
			Description: s.Description,
		}
	}
	return items
}

// ModelsToNearbyItems преобразует результаты пространственного запроса
func ModelsToNearbyItems(services []*models.NearbyService) []NearbyServiceItem {
	items := make([]NearbyServiceItem, len(services))
	for i, s := range services {
		items[i] = NearbyServiceItem{
			ID:          s.ID,
			Name:        s.Name,
			ServiceType: string(s.ServiceType),
			Address:     s.Address,
			Phone:       s.Phone,
			Latitude:    s.Location.Lat,
			Longitude:   s.Location.Lng,
			Is24Hours:   s.Is24Hours,
			Distance: DistanceResponse{
				Meters:     s.Distance.Meters,
				Kilometers: s.Distance.Kilometers,
			},
		}
	}
	return items
}

func pointToUserLocation(p geo.Point) UserLocation {
	return UserLocation{Lat: p.Lat, Lng: p.Lng}
}

// ModelToStatisticsResponse группирует счетчики по типам
func ModelToStatisticsResponse(stats *models.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TotalServices: stats.Total,
		ByType: TypeCounts{
			Hospitals: stats.Hospitals,
			Police:    stats.Police,
			Fire:      stats.Fire,
		},
		Available24Hours: stats.Available24Hours,
	}
}

func ModelToGeocodeResponse(result *models.GeocodeResult) GeocodeResponse {
	return GeocodeResponse{
		Lat:              result.Lat,
		Lng:              result.Lng,
		FormattedAddress: result.FormattedAddress,
		Confidence:       result.Confidence,
		Source:           result.Source,
	}
}
