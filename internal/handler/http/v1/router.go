package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := api.Group("", JWTAuthMiddleware(h.cfg, h.logger))

	// Маршруты жителя
	auth.POST("/panic-alerts/trigger", h.triggerAlert)
	auth.GET("/panic/button", h.panicButton)
	auth.POST("/location", RateLimitMiddleware(h.cfg.LocationRateLimit, h.logger), h.reportLocation)

	// Маршруты операторов
	alerts := auth.Group("/panic-alerts", RequireOperator())
	{
		alerts.GET("", h.listInbox)
		alerts.GET("/stream", h.inboxStream)
		alerts.GET("/admin", h.queryAlerts)
		alerts.PATCH("/:id/status", h.updateStatus)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
