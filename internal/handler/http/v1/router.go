package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	services := api.Group("/services")
	{
		services.POST("", h.createService)
		services.GET("", h.listServices)

		// Пространственные запросы и статистика; статические сегменты имеют приоритет над :id
		services.GET("/nearest", h.nearest)
		services.GET("/within_radius", h.withinRadius)
		services.GET("/by_type", h.byType)
		services.GET("/statistics", h.statistics)

		services.GET("/:id", h.getService)
		services.PUT("/:id", h.updateService)
		services.PATCH("/:id", h.patchService)
		services.DELETE("/:id", h.deleteService)
	}

	geocode := api.Group("/geocode")
	{
		geocode.GET("", h.geocode)
		geocode.GET("/reverse", h.reverseGeocode)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
