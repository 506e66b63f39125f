package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_locator/internal/config"
	"github.com/shenikar/emergency_locator/internal/geo"
	"github.com/shenikar/emergency_locator/internal/models"
	"github.com/shenikar/emergency_locator/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	locatorService service.LocatorService
	geocoder       service.Geocoder
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(locatorService service.LocatorService, geocoder service.Geocoder, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		locatorService: locatorService,
		geocoder:       geocoder,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// @Summary Create an emergency service
// @Description Create a new hospital, police station or fire station record
// @Tags Services
// @Accept json
// @Produce json
// @Param service body CreateServiceRequest true "Emergency service creation request"
// @Success 201 {object} ServiceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /services [post]
func (h *Handler) createService(c *gin.Context) {
	var input CreateServiceRequest
	log := h.logger.WithField("method", "createService")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToServiceModel(input)
	if err := h.locatorService.CreateService(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToServiceResponse(model))
}

// @Summary List emergency services
// @Description List all emergency services ordered by name, optionally filtered by type
// @Tags Services
// @Produce json
// @Param type query string false "Service type" Enums(hospital, police, fire)
// @Success 200 {array} ServiceListItem
// @Failure 400 {object} map[string]string "Invalid service type"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /services [get]
func (h *Handler) listServices(c *gin.Context) {
	log := h.logger.WithField("method", "listServices")

	services, err := h.locatorService.ListServices(c.Request.Context(), c.Query("type"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToServiceListItems(services))
}

// @Summary Get emergency service by ID
// @Description Get a single emergency service record by its ID
// @Tags Services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} ServiceResponse
// @Failure 400 {object} map[string]string "Invalid service ID"
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /services/{id} [get]
func (h *Handler) getService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service ID"})
		return
	}
	log := h.logger.WithField("method", "getService").WithField("id", id)

	svc, err := h.locatorService.GetService(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToServiceResponse(svc))
}

// @Summary Replace an emergency service
// @Description Replace all fields of an existing emergency service
// @Tags Services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param service body UpdateServiceRequest true "Emergency service replacement"
// @Success 200 {object} ServiceResponse
// @Failure 400 {object} map[string]string "Invalid service ID or request body"
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /services/{id} [put]
func (h *Handler) updateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service ID"})
		return
	}
	log := h.logger.WithField("method", "updateService").WithField("id", id)

	var input UpdateServiceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToServiceModel(CreateServiceRequest(input))
	model.ID = id

	updated, err := h.locatorService.UpdateService(c.Request.Context(), model)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToServiceResponse(updated))
}

// @Summary Partially update an emergency service
// @Description Update only the provided fields of an existing emergency service
// @Tags Services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param service body PatchServiceRequest true "Fields to update"
// @Success 200 {object} ServiceResponse
// @Failure 400 {object} map[string]string "Invalid service ID or request body"
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /services/{id} [patch]
func (h *Handler) patchService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service ID"})
		return
	}
	log := h.logger.WithField("method", "patchService").WithField("id", id)

	var input PatchServiceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patched, err := h.locatorService.PatchService(c.Request.Context(), id, DTOToServicePatch(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToServiceResponse(patched))
}

// @Summary Delete an emergency service
// @Description Permanently delete an emergency service record
// @Tags Services
// @Produce json
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid service ID"
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /services/{id} [delete]
func (h *Handler) deleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service ID"})
		return
	}
	log := h.logger.WithField("method", "deleteService").WithField("id", id)

	if err := h.locatorService.DeleteService(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Find nearest emergency services
// @Description Up to limit services ordered by distance from the point. The type filter is applied before the limit.
// @Tags Spatial
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param limit query int false "Maximum number of results" default(5)
// @Param type query string false "Service type" Enums(hospital, police, fire)
// @Success 200 {object} NearestResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /services/nearest [get]
func (h *Handler) nearest(c *gin.Context) {
	log := h.logger.WithField("method", "nearest")

	point, err := parsePoint(c)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	limit := h.cfg.DefaultNearestLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			h.respondError(c, log, fmt.Errorf("%w: limit must be an integer", models.ErrInvalidParameter))
			return
		}
	}

	services, err := h.locatorService.Nearest(c.Request.Context(), point, limit, c.Query("type"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	items := ModelsToNearbyItems(services)
	c.JSON(http.StatusOK, NearestResponse{
		UserLocation: pointToUserLocation(point),
		Count:        len(items),
		Services:     items,
	})
}

// @Summary Find emergency services within a radius
// @Description All services within radius kilometres of the point, ordered by distance
// @Tags Spatial
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in kilometres" default(5)
// @Param type query string false "Service type" Enums(hospital, police, fire)
// @Success 200 {object} WithinRadiusResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /services/within_radius [get]
func (h *Handler) withinRadius(c *gin.Context) {
	log := h.logger.WithField("method", "withinRadius")

	point, err := parsePoint(c)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	radiusKm := h.cfg.DefaultRadiusKm
	if raw := c.Query("radius"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			h.respondError(c, log, fmt.Errorf("%w: radius must be a number", models.ErrInvalidParameter))
			return
		}
	}

	services, err := h.locatorService.WithinRadius(c.Request.Context(), point, radiusKm, c.Query("type"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	items := ModelsToNearbyItems(services)
	c.JSON(http.StatusOK, WithinRadiusResponse{
		UserLocation: pointToUserLocation(point),
		RadiusKm:     radiusKm,
		Count:        len(items),
		Services:     items,
	})
}

// @Summary Find emergency services by type
// @Description All services of the given type with their distance from the point
// @Tags Spatial
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param type query string true "Service type" Enums(hospital, police, fire)
// @Success 200 {object} ByTypeResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /services/by_type [get]
func (h *Handler) byType(c *gin.Context) {
	log := h.logger.WithField("method", "byType")

	point, err := parsePoint(c)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	serviceType := c.Query("type")
	services, err := h.locatorService.ByType(c.Request.Context(), point, serviceType)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	items := ModelsToNearbyItems(services)
	c.JSON(http.StatusOK, ByTypeResponse{
		UserLocation: pointToUserLocation(point),
		ServiceType:  serviceType,
		Count:        len(items),
		Services:     items,
	})
}

// @Summary Get emergency service statistics
// @Description Total count, counts per type and number of services open 24 hours
// @Tags Services
// @Produce json
// @Success 200 {object} StatisticsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /services/statistics [get]
func (h *Handler) statistics(c *gin.Context) {
	log := h.logger.WithField("method", "statistics")

	stats, err := h.locatorService.Statistics(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToStatisticsResponse(stats))
}

// @Summary Geocode an address
// @Description Resolve a free-text address to coordinates inside the configured country
// @Tags Geocoding
// @Produce json
// @Param query query string true "Address to geocode"
// @Success 200 {object} GeocodeResponse
// @Failure 400 {object} map[string]string "Missing query"
// @Failure 404 {object} map[string]string "No results found"
// @Failure 500 {object} map[string]string "Geocoding failed"
// @Router /geocode [get]
func (h *Handler) geocode(c *gin.Context) {
	log := h.logger.WithField("method", "geocode")

	result, err := h.geocoder.Geocode(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToGeocodeResponse(result))
}

// @Summary Reverse geocode a point
// @Description Resolve coordinates to a formatted address
// @Tags Geocoding
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} GeocodeResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "No address found"
// @Failure 500 {object} map[string]string "Geocoding failed"
// @Router /geocode/reverse [get]
func (h *Handler) reverseGeocode(c *gin.Context) {
	log := h.logger.WithField("method", "reverseGeocode")

	point, err := parsePoint(c)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	result, err := h.geocoder.Reverse(c.Request.Context(), point)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToGeocodeResponse(result))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parsePoint читает обязательные параметры lat и lng
func parsePoint(c *gin.Context) (geo.Point, error) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		return geo.Point{}, fmt.Errorf("%w: provide lat, lng as numbers", models.ErrInvalidParameter)
	}

	point, err := geo.NewPoint(lat, lng)
	if err != nil {
		return geo.Point{}, fmt.Errorf("%w: %v", models.ErrInvalidParameter, err)
	}
	return point, nil
}

// respondError переводит доменные ошибки в HTTP-статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidParameter):
		log.WithError(err).Warn("Invalid request parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Emergency service not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "emergency service not found"})
	case errors.Is(err, models.ErrNoResultsFound):
		log.WithError(err).Info("Geocoding returned no results")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrGeocodingFailed):
		log.WithError(err).Error("Geocoding failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
