package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_locator/internal/config"
	"github.com/shenikar/emergency_locator/internal/geo"
	"github.com/shenikar/emergency_locator/internal/models"
	"github.com/shenikar/emergency_locator/internal/service/mocks"
	"github.com/shenikar/emergency_locator/internal/webhook"
	webhook_mocks "github.com/shenikar/emergency_locator/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var dublin = geo.Point{Lat: 53.3498, Lng: -6.2603}

// newTestLocatorService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestLocatorService(t *testing.T) (*locatorService, *mocks.MockEmergencyServiceRepository, *webhook_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockEmergencyServiceRepository(ctrl)
	publisherMock := webhook_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultNearestLimit: 5,
		MaxNearestLimit:     100,
		DefaultRadiusKm:     5,
		MaxRadiusKm:         500,
	}

	service := NewLocatorService(repoMock, logger, cfg, publisherMock)
	return service.(*locatorService), repoMock, publisherMock
}

func validService() *models.EmergencyService {
	return &models.EmergencyService{
		Name:        "Mater Misericordiae University Hospital",
		ServiceType: models.ServiceTypeHospital,
		Address:     "Eccles Street, Dublin 7",
		Phone:       "+353 1 803 2000",
		Location:    geo.Point{Lat: 53.3597, Lng: -6.2674},
		Capacity:    600,
		Is24Hours:   true,
	}
}

// ============================================================================
// CRUD
// ============================================================================

func TestCreateService_Success(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestLocatorService(t)
	ctx := context.Background()
	svc := validService()
	createdID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, svc).
		DoAndReturn(func(_ context.Context, s *models.EmergencyService) error {
			s.ID = createdID
			return nil
		}).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.ServiceEvent) error {
			assert.Equal(t, webhook.ActionCreated, event.Action)
			assert.Equal(t, createdID, event.ServiceID)
			assert.Equal(t, models.ServiceTypeHospital, event.ServiceType)
			return nil
		}).
		Times(1)

	// Действие
	err := service.CreateService(ctx, svc)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, createdID, svc.ID)
}

func TestCreateService_InvalidRecord(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *models.EmergencyService)
	}{
		{"empty name", func(s *models.EmergencyService) { s.Name = "  " }},
		{"empty address", func(s *models.EmergencyService) { s.Address = "" }},
		{"unknown type", func(s *models.EmergencyService) { s.ServiceType = "ambulance" }},
		{"latitude out of range", func(s *models.EmergencyService) { s.Location.Lat = 95 }},
		{"negative capacity", func(s *models.EmergencyService) { s.Capacity = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock, publisherMock := newTestLocatorService(t)
			svc := validService()
			tt.mutate(svc)

			repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

			err := service.CreateService(context.Background(), svc)
			assert.ErrorIs(t, err, models.ErrInvalidParameter)
		})
	}
}

func TestCreateService_PublishErrorIsNotSurfaced(t *testing.T) {
	service, repoMock, publisherMock := newTestLocatorService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis is down")).Times(1)

	err := service.CreateService(ctx, validService())

	assert.NoError(t, err)
}

func TestGetService_NotFound(t *testing.T) {
	service, repoMock, _ := newTestLocatorService(t)
	ctx := context.Background()
	id := uuid.New()

	repoMock.EXPECT().GetByID(ctx, id).Return(nil, models.ErrNotFound).Times(1)

	svc, err := service.GetService(ctx, id)

	require.Error(t, err)
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateService_ReplacesFields(t *testing.T) {
	service, repoMock, publisherMock := newTestLocatorService(t)
	ctx := context.Background()
	existing := validService()
	existing.ID = uuid.New()

	replacement := validService()
	replacement.ID = existing.ID
	replacement.Name = "Tara Street Fire Station"
	replacement.ServiceType = models.ServiceTypeFire
	replacement.Description = ""

	repoMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	repoMock.EXPECT().Update(ctx, existing).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	updated, err := service.UpdateService(ctx, replacement)

	require.NoError(t, err)
	assert.Equal(t, "Tara Street Fire Station", updated.Name)
	assert.Equal(t, models.ServiceTypeFire, updated.ServiceType)
}

func TestUpdateService_NotFound(t *testing.T) {
	service, repoMock, publisherMock := newTestLocatorService(t)
	ctx := context.Background()
	svc := validService()
	svc.ID = uuid.New()

	repoMock.EXPECT().GetByID(ctx, svc.ID).Return(nil, models.ErrNotFound).Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UpdateService(ctx, svc)

	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Contains(t, err.Error(), "not found for update")
}

func TestPatchService_KeepsUnspecifiedFields(t *testing.T) {
	service, repoMock, publisherMock := newTestLocatorService(t)
	ctx := context.Background()
	existing := validService()
	existing.ID = uuid.New()

	newPhone := "+353 1 000 1111"
	closed := false
	patch := models.ServicePatch{Phone: &newPhone, Is24Hours: &closed}

	repoMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	repoMock.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	patched, err := service.PatchService(ctx, existing.ID, patch)

	require.NoError(t, err)
	assert.Equal(t, newPhone, patched.Phone)
	assert.False(t, patched.Is24Hours)
	assert.Equal(t, "Mater Misericordiae University Hospital", patched.Name)
	assert.Equal(t, "Eccles Street, Dublin 7", patched.Address)
	assert.Equal(t, 600, patched.Capacity)
	assert.Equal(t, geo.Point{Lat: 53.3597, Lng: -6.2674}, patched.Location)
}

func TestPatchService_InvalidResult(t *testing.T) {
	service, repoMock, _ := newTestLocatorService(t)
	ctx := context.Background()
	existing := validService()
	existing.ID = uuid.New()

	badLng := 181.0
	repoMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.PatchService(ctx, existing.ID, models.ServicePatch{Longitude: &badLng})

	assert.ErrorIs(t, err, models.ErrInvalidParameter)
}

func TestDeleteService_Success(t *testing.T) {
	service, repoMock, publisherMock := newTestLocatorService(t)
	ctx := context.Background()
	existing := validService()
	existing.ID = uuid.New()

	repoMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	repoMock.EXPECT().Delete(ctx, existing.ID).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.ServiceEvent) error {
			assert.Equal(t, webhook.ActionDeleted, event.Action)
			assert.Equal(t, existing.ID, event.ServiceID)
			return nil
		}).
		Times(1)

	err := service.DeleteService(ctx, existing.ID)

	assert.NoError(t, err)
}

func TestDeleteService_NotFound(t *testing.T) {
	service, repoMock, _ := newTestLocatorService(t)
	ctx := context.Background()
	id := uuid.New()

	repoMock.EXPECT().GetByID(ctx, id).Return(nil, models.ErrNotFound).Times(1)
	repoMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	err := service.DeleteService(ctx, id)

	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Contains(t, err.Error(), "not found for delete")
}

func TestListServices(t *testing.T) {
	service, repoMock, _ := newTestLocatorService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx, models.ServiceTypePolice).Return([]*models.EmergencyService{}, nil).Times(1)
	_, err := service.ListServices(ctx, "police")
	require.NoError(t, err)

	repoMock.EXPECT().List(ctx, models.ServiceType("")).Return([]*models.EmergencyService{}, nil).Times(1)
	_, err = service.ListServices(ctx, "")
	require.NoError(t, err)

	_, err = service.ListServices(ctx, "ambulance")
	assert.ErrorIs(t, err, models.ErrInvalidParameter)
}

// ============================================================================
// Пространственные запросы
// ============================================================================

func TestNearest_PassesTypeFilterToRepository(t *testing.T) {
	service, repoMock, _ := newTestLocatorService(t)
	ctx := context.Background()

	// Фильтр уходит в запрос вместе с лимитом, чтобы он применялся до LIMIT
	expected := []*models.NearbyService{
		{EmergencyService: models.EmergencyService{Name: "Tara Street", ServiceType: models.ServiceTypeFire}, Distance: models.NewDistance(1234)},
	}
	repoMock.EXPECT().FindNearest(ctx, dublin, 2, models.ServiceTypeFire).Return(expected, nil).Times(1)

	result, err := service.Nearest(ctx, dublin, 2, "fire")

	require.NoError(t, err)
	assert.Equal(t, expected, result)
	assert.Equal(t, 1.23, result[0].Distance.Kilometers)
}

func TestNearest_LimitIsCapped(t *testing.T) {
	service, repoMock, _ := newTestLocatorService(t)
	ctx := context.Background()

	repoMock.EXPECT().FindNearest(ctx, dublin, 100, models.ServiceType("")).Return([]*models.NearbyService{}, nil).Times(1)

	_, err := service.Nearest(ctx, dublin, 5000, "")

	assert.NoError(t, err)
}

func TestNearest_InvalidParameters(t *testing.T) {
	tests := []struct {
		name        string
		point       geo.Point
		limit       int
		serviceType string
	}{
		{"zero limit", dublin, 0, ""},
		{"negative limit", dublin, -3, ""},
		{"unknown type", dublin, 5, "ambulance"},
		{"latitude out of range", geo.Point{Lat: -91, Lng: 0}, 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock, _ := newTestLocatorService(t)
			repoMock.EXPECT().FindNearest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := service.Nearest(context.Background(), tt.point, tt.limit, tt.serviceType)
			assert.ErrorIs(t, err, models.ErrInvalidParameter)
		})
	}
}

func TestNearest_RepositoryError(t *testing.T) {
	service, repoMock, _ := newTestLocatorService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	repoMock.EXPECT().FindNearest(ctx, dublin, 5, models.ServiceType("")).Return(nil, dbErr).Times(1)

	_, err := service.Nearest(ctx, dublin, 5, "")

	require.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, models.ErrInvalidParameter)
}

func TestWithinRadius_ConvertsKilometersToMeters(t *testing.T) {
	service, repoMock, _ := newTestLocatorService(t)
	ctx := context.Background()

	repoMock.EXPECT().FindWithinRadius(ctx, dublin, 2500.0, models.ServiceTypeHospital).Return([]*models.NearbyService{}, nil).Times(1)

	result, err := service.WithinRadius(ctx, dublin, 2.5, "hospital")

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestWithinRadius_InvalidRadius(t *testing.T) {
	for _, radius := range []float64{0, -1, 500.1} {
		service, repoMock, _ := newTestLocatorService(t)
		repoMock.EXPECT().FindWithinRadius(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := service.WithinRadius(context.Background(), dublin, radius, "")
		assert.ErrorIs(t, err, models.ErrInvalidParameter, "radius %v", radius)
	}
}

func TestByType(t *testing.T) {
	service, repoMock, _ := newTestLocatorService(t)
	ctx := context.Background()

	repoMock.EXPECT().FindByType(ctx, dublin, models.ServiceTypePolice).Return([]*models.NearbyService{}, nil).Times(1)
	_, err := service.ByType(ctx, dublin, "police")
	require.NoError(t, err)

	// Тип обязателен
	_, err = service.ByType(ctx, dublin, "")
	assert.ErrorIs(t, err, models.ErrInvalidParameter)

	_, err = service.ByType(ctx, dublin, "ambulance")
	require.ErrorIs(t, err, models.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "choose: hospital, police, or fire")
}

func TestStatistics(t *testing.T) {
	service, repoMock, _ := newTestLocatorService(t)
	ctx := context.Background()
	expected := &models.Statistics{Total: 10, Hospitals: 4, Police: 3, Fire: 3, Available24Hours: 7}

	repoMock.EXPECT().GetStatistics(ctx).Return(expected, nil).Times(1)

	stats, err := service.Statistics(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, stats)
	assert.Equal(t, stats.Total, stats.Hospitals+stats.Police+stats.Fire)
}
