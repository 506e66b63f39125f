package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_locator/internal/config"
	"github.com/shenikar/emergency_locator/internal/geo"
	"github.com/shenikar/emergency_locator/internal/models"
	"github.com/shenikar/emergency_locator/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=emergency.go -destination=mocks/mock_emergency.go -package=mocks

// EmergencyServiceRepository определяет контракт для работы с бд экстренных служб
type EmergencyServiceRepository interface {
	Create(ctx context.Context, svc *models.EmergencyService) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.EmergencyService, error)
	Update(ctx context.Context, svc *models.EmergencyService) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, serviceType models.ServiceType) ([]*models.EmergencyService, error)
	FindNearest(ctx context.Context, point geo.Point, limit int, serviceType models.ServiceType) ([]*models.NearbyService, error)
	FindWithinRadius(ctx context.Context, point geo.Point, radiusMeters float64, serviceType models.ServiceType) ([]*models.NearbyService, error)
	FindByType(ctx context.Context, point geo.Point, serviceType models.ServiceType) ([]*models.NearbyService, error)
	GetStatistics(ctx context.Context) (*models.Statistics, error)
}

// LocatorService определяет контракт бизнес-логики: CRUD и пространственные запросы
type LocatorService interface {
	CreateService(ctx context.Context, svc *models.EmergencyService) error
	GetService(ctx context.Context, id uuid.UUID) (*models.EmergencyService, error)
	UpdateService(ctx context.Context, svc *models.EmergencyService) (*models.EmergencyService, error)
	PatchService(ctx context.Context, id uuid.UUID, patch models.ServicePatch) (*models.EmergencyService, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
	ListServices(ctx context.Context, serviceType string) ([]*models.EmergencyService, error)
	Nearest(ctx context.Context, point geo.Point, limit int, serviceType string) ([]*models.NearbyService, error)
	WithinRadius(ctx context.Context, point geo.Point, radiusKm float64, serviceType string) ([]*models.NearbyService, error)
	ByType(ctx context.Context, point geo.Point, serviceType string) ([]*models.NearbyService, error)
	Statistics(ctx context.Context) (*models.Statistics, error)
}

type locatorService struct {
	repo      EmergencyServiceRepository
	publisher webhook.EventPublisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewLocatorService(repo EmergencyServiceRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.EventPublisher) LocatorService {
	return &locatorService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// CreateService создает запись об экстренной службе
func (s *locatorService) CreateService(ctx context.Context, svc *models.EmergencyService) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "locator",
		"method":  "CreateService",
		"name":    svc.Name,
	})
	log.Info("Attempting to create a new emergency service")

	if err := validateRecord(svc); err != nil {
		log.WithError(err).Warn("Emergency service record is invalid")
		return err
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		log.WithError(err).Error("Failed to create emergency service in repository")
		return fmt.Errorf("service: could not create emergency service: %w", err)
	}

	log.WithField("service_id", svc.ID).Info("Emergency service created successfully")
	s.publish(ctx, webhook.ActionCreated, svc)
	return nil
}

// GetService получает запись по ID
func (s *locatorService) GetService(ctx context.Context, id uuid.UUID) (*models.EmergencyService, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "locator",
		"method":     "GetService",
		"service_id": id,
	})
	log.Debug("Fetching emergency service by ID")

	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get emergency service from repository")
		return nil, fmt.Errorf("service: could not get emergency service: %w", err)
	}
	return svc, nil
}

// UpdateService полностью заменяет поля существующей записи
func (s *locatorService) UpdateService(ctx context.Context, svc *models.EmergencyService) (*models.EmergencyService, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "locator",
		"method":     "UpdateService",
		"service_id": svc.ID,
	})
	log.Info("Attempting to update emergency service")

	if err := validateRecord(svc); err != nil {
		log.WithError(err).Warn("Emergency service record is invalid")
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, svc.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent emergency service")
		return nil, fmt.Errorf("service: emergency service %s not found for update: %w", svc.ID, err)
	}

	existing.Name = svc.Name
	existing.ServiceType = svc.ServiceType
	existing.Address = svc.Address
	existing.Phone = svc.Phone
	existing.Email = svc.Email
	existing.Description = svc.Description
	existing.Location = svc.Location
	existing.Capacity = svc.Capacity
	existing.Is24Hours = svc.Is24Hours

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update emergency service in repository")
		return nil, fmt.Errorf("service: could not update emergency service: %w", err)
	}

	log.Info("Emergency service updated successfully")
	s.publish(ctx, webhook.ActionUpdated, existing)
	return existing, nil
}

// PatchService обновляет только переданные поля
func (s *locatorService) PatchService(ctx context.Context, id uuid.UUID, patch models.ServicePatch) (*models.EmergencyService, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "locator",
		"method":     "PatchService",
		"service_id": id,
	})
	log.Info("Attempting to patch emergency service")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to patch a non-existent emergency service")
		return nil, fmt.Errorf("service: emergency service %s not found for update: %w", id, err)
	}

	patch.Apply(existing)
	if err := validateRecord(existing); err != nil {
		log.WithError(err).Warn("Patched emergency service record is invalid")
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to patch emergency service in repository")
		return nil, fmt.Errorf("service: could not update emergency service: %w", err)
	}

	log.Info("Emergency service patched successfully")
	s.publish(ctx, webhook.ActionUpdated, existing)
	return existing, nil
}

// DeleteService удаляет запись
func (s *locatorService) DeleteService(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "locator",
		"method":     "DeleteService",
		"service_id": id,
	})
	log.Info("Attempting to delete emergency service")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent emergency service")
		return fmt.Errorf("service: emergency service %s not found for delete: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete emergency service in repository")
		return fmt.Errorf("service: could not delete emergency service: %w", err)
	}

	log.Info("Emergency service deleted successfully")
	s.publish(ctx, webhook.ActionDeleted, existing)
	return nil
}

// ListServices возвращает все записи, опционально отфильтрованные по типу
func (s *locatorService) ListServices(ctx context.Context, serviceType string) ([]*models.EmergencyService, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "locator",
		"method":  "ListServices",
		"type":    serviceType,
	})

	st, err := parseOptionalType(serviceType)
	if err != nil {
		return nil, err
	}

	services, err := s.repo.List(ctx, st)
	if err != nil {
		log.WithError(err).Error("Failed to list emergency services from repository")
		return nil, fmt.Errorf("service: could not list emergency services: %w", err)
	}

	log.WithField("count", len(services)).Debug("Emergency services listed successfully")
	return services, nil
}

// Nearest возвращает до limit ближайших служб, отсортированных по расстоянию.
// Лимит больше MaxNearestLimit урезается.
func (s *locatorService) Nearest(ctx context.Context, point geo.Point, limit int, serviceType string) ([]*models.NearbyService, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "locator",
		"method":  "Nearest",
		"lat":     point.Lat,
		"lng":     point.Lng,
		"limit":   limit,
		"type":    serviceType,
	})

	if err := point.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidParameter, err)
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be a positive integer", models.ErrInvalidParameter)
	}
	if limit > s.cfg.MaxNearestLimit {
		log.Debugf("Limit capped to %d", s.cfg.MaxNearestLimit)
		limit = s.cfg.MaxNearestLimit
	}
	st, err := parseOptionalType(serviceType)
	if err != nil {
		return nil, err
	}

	services, err := s.repo.FindNearest(ctx, point, limit, st)
	if err != nil {
		log.WithError(err).Error("Failed to find nearest emergency services")
		return nil, fmt.Errorf("service: failed to find nearest emergency services: %w", err)
	}

	log.WithField("count", len(services)).Info("Nearest query completed")
	return services, nil
}

// WithinRadius возвращает все службы в радиусе radiusKm километров
func (s *locatorService) WithinRadius(ctx context.Context, point geo.Point, radiusKm float64, serviceType string) ([]*models.NearbyService, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "locator",
		"method":    "WithinRadius",
		"lat":       point.Lat,
		"lng":       point.Lng,
		"radius_km": radiusKm,
		"type":      serviceType,
	})

	if err := point.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidParameter, err)
	}
	if !(radiusKm > 0) || radiusKm > s.cfg.MaxRadiusKm {
		return nil, fmt.Errorf("%w: radius must be greater than 0 and at most %v km", models.ErrInvalidParameter, s.cfg.MaxRadiusKm)
	}
	st, err := parseOptionalType(serviceType)
	if err != nil {
		return nil, err
	}

	services, err := s.repo.FindWithinRadius(ctx, point, radiusKm*1000, st)
	if err != nil {
		log.WithError(err).Error("Failed to find emergency services within radius")
		return nil, fmt.Errorf("service: failed to find emergency services within radius: %w", err)
	}

	log.WithField("count", len(services)).Info("Within radius query completed")
	return services, nil
}

// ByType возвращает все службы заданного типа с расстоянием до точки
func (s *locatorService) ByType(ctx context.Context, point geo.Point, serviceType string) ([]*models.NearbyService, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "locator",
		"method":  "ByType",
		"lat":     point.Lat,
		"lng":     point.Lng,
		"type":    serviceType,
	})

	if err := point.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidParameter, err)
	}
	st, err := models.ParseServiceType(serviceType)
	if err != nil {
		return nil, err
	}

	services, err := s.repo.FindByType(ctx, point, st)
	if err != nil {
		log.WithError(err).Error("Failed to find emergency services by type")
		return nil, fmt.Errorf("service: failed to find emergency services by type: %w", err)
	}

	log.WithField("count", len(services)).Info("By type query completed")
	return services, nil
}

// Statistics возвращает агрегированную статистику
func (s *locatorService) Statistics(ctx context.Context) (*models.Statistics, error) {
	stats, err := s.repo.GetStatistics(ctx)
	if err != nil {
		s.logger.WithField("method", "Statistics").WithError(err).Error("Failed to get statistics from repository")
		return nil, fmt.Errorf("service: could not get statistics: %w", err)
	}
	return stats, nil
}

// publish отправляет событие изменения; ошибка публикации не прерывает запрос
func (s *locatorService) publish(ctx context.Context, action webhook.Action, svc *models.EmergencyService) {
	if s.publisher == nil {
		return
	}
	event := webhook.ServiceEvent{
		Action:      action,
		ServiceID:   svc.ID,
		ServiceType: svc.ServiceType,
		Name:        svc.Name,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).
			WithField("service_id", svc.ID).
			WithField("action", action).
			Error("Failed to publish service event")
	}
}

func parseOptionalType(serviceType string) (models.ServiceType, error) {
	if serviceType == "" {
		return "", nil
	}
	return models.ParseServiceType(serviceType)
}

// validateRecord проверяет инварианты записи перед записью в хранилище
func validateRecord(svc *models.EmergencyService) error {
	if strings.TrimSpace(svc.Name) == "" {
		return fmt.Errorf("%w: name is required", models.ErrInvalidParameter)
	}
	if strings.TrimSpace(svc.Address) == "" {
		return fmt.Errorf("%w: address is required", models.ErrInvalidParameter)
	}
	if !svc.ServiceType.Valid() {
		return fmt.Errorf("%w: invalid service type %q", models.ErrInvalidParameter, svc.ServiceType)
	}
	if err := svc.Location.Validate(); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidParameter, err)
	}
	if svc.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", models.ErrInvalidParameter)
	}
	return nil
}
