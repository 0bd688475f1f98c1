package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger), SessionMiddleware())

	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.submitIncident)
		incidents.POST("/sos", h.submitSOS)
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/:id", h.getIncident)
		incidents.DELETE("/:id", h.deleteIncident)
		incidents.POST("/:id/volunteers", h.joinIncident)
		incidents.POST("/:id/pledges", h.pledgeIncident)
		incidents.POST("/:id/resolve", h.resolveIncident)
		incidents.GET("/:id/resolutions", h.listResolutions)
	}

	// Живая лента
	protected.GET("/feed/stream", h.streamFeed)

	protected.POST("/location/acquire", h.acquireLocation)

	wizard := protected.Group("/wizard")
	{
		wizard.POST("", h.startWizard)
		wizard.GET("/:id", h.getWizard)
		wizard.POST("/:id/type", h.selectWizardType)
		wizard.POST("/:id/location", h.acquireWizardLocation)
		wizard.POST("/:id/skip", h.skipWizardLocation)
		wizard.POST("/:id/address", h.confirmWizardAddress)
		wizard.POST("/:id/back", h.backWizard)
		wizard.POST("/:id/submit", h.submitWizard)
	}

	profile := protected.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("/volunteer", h.registerVolunteer)
		profile.PUT("/organization", h.registerOrganization)
	}
}
