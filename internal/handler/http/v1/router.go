package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes. Everything except the health
// check sits behind API-key auth.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// SOS event lifecycle and discovery
	events := api.Group("/events", auth)
	{
		events.POST("", h.createEvent)
		events.GET("", h.listActiveEvents)
		events.GET("/active", h.activeEventForOwner)
		events.GET("/history", h.eventHistory)
		events.GET("/:id", h.getEvent)
		events.POST("/:id/resolve", h.resolveEvent)
		events.POST("/:id/cancel", h.cancelEvent)
		events.POST("/:id/responses", h.respond)
		events.GET("/:id/responses", h.listAcceptedResponses)
	}

	// Volunteer registry
	volunteers := api.Group("/volunteers", auth)
	{
		volunteers.POST("", h.registerVolunteer)
		volunteers.GET("/:user_id", h.getVolunteer)
		volunteers.DELETE("/:user_id", h.unregisterVolunteer)
		volunteers.PUT("/:user_id/location", h.updateVolunteerLocation)
	}

	api.GET("/system/stats", auth, h.getStats)
	api.GET("/system/health", h.healthCheck)
}
