package v1

import (
	"errors"
	"net/http"
	"net/netip"

	"github.com/NITHEESH-14/CrisisSync/internal/config"
	"github.com/NITHEESH-14/CrisisSync/internal/notify"
	"github.com/NITHEESH-14/CrisisSync/internal/service"
	"github.com/NITHEESH-14/CrisisSync/internal/wizard"
	"github.com/NITHEESH-14/CrisisSync/pkg/clock"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Ответ на любые ошибки хранилища. Подробности только в логах.
const storeFailureMessage = "failed, check permissions or connection"

// Services зависимости обработчиков API v1
type Services struct {
	Incidents   service.IncidentService
	Pledges     service.PledgeService
	Resolutions service.ResolutionService
	Wizard      service.WizardService
	Profiles    service.ProfileService
	// Location может быть nil, тогда клиенту всегда предлагается ручной ввод
	Location service.LocationAcquirer
	Feed     FeedSubscriber
	Alerts   notify.Observer
	Clock    clock.Clock
}

type Handler struct {
	incidents   service.IncidentService
	pledges     service.PledgeService
	resolutions service.ResolutionService
	wizard      service.WizardService
	profiles    service.ProfileService
	location    service.LocationAcquirer
	feed        FeedSubscriber
	alerts      notify.Observer
	clock       clock.Clock
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
	// Только от этих адресов принимаются X-Forwarded-Proto и X-Forwarded-Host
	trustedProxies []netip.Prefix
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	clk := services.Clock
	if clk == nil {
		clk = clock.Real()
	}
	proxies, err := config.ParseProxies(cfg.TrustedProxies)
	if err != nil {
		logger.WithError(err).Warn("Ignoring trusted proxies")
		proxies = nil
	}
	return &Handler{
		incidents:   services.Incidents,
		pledges:     services.Pledges,
		resolutions: services.Resolutions,
		wizard:      services.Wizard,
		profiles:    services.Profiles,
		location:    services.Location,
		feed:        services.Feed,
		alerts:      services.Alerts,
		clock:       clk,
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,

		trustedProxies: proxies,
	}
}

// bind читает JSON и проверяет теги validate. При ошибке ответ уже записан.
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + what + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError переводит ошибки сервисов в HTTP-статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrIncidentNotFound),
		errors.Is(err, service.ErrWizardNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidType),
		errors.Is(err, service.ErrInvalidCount),
		errors.Is(err, service.ErrEmptyNote),
		errors.Is(err, wizard.ErrInvalidType),
		errors.Is(err, wizard.ErrEmptyAddress),
		errors.Is(err, wizard.ErrUnknownStep):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotEligible),
		errors.Is(err, service.ErrOwnIncident),
		errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrAlreadyResolved),
		errors.Is(err, service.ErrIncidentResolved),
		errors.Is(err, service.ErrWizardConflict),
		errors.Is(err, wizard.ErrWrongStep),
		errors.Is(err, wizard.ErrExited):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).Error("Service call failed")
		c.JSON(status, gin.H{"error": storeFailureMessage})
		return
	}
	log.WithError(err).Warn("Request rejected")
	c.JSON(status, gin.H{"error": err.Error()})
}

// @Summary Submit an incident
// @Description Submit an incident from the guided flow. Location and address are optional.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body SubmitIncidentRequest true "Incident submission"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) submitIncident(c *gin.Context) {
	var input SubmitIncidentRequest
	log := h.logger.WithField("method", "submitIncident")

	if !h.bind(c, log, &input) {
		return
	}

	id, err := h.incidents.Submit(c.Request.Context(), DTOToDraft(input), sessionFrom(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// @Summary Panic submit
// @Description One-tap SOS report. Body is optional.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sos body SOSRequest false "Best-effort location and address"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/sos [post]
func (h *Handler) submitSOS(c *gin.Context) {
	var input SOSRequest
	log := h.logger.WithField("method", "submitSOS")

	// пустое тело допустимо: SOS не должен зависеть от формы
	if c.Request.ContentLength != 0 {
		if !h.bind(c, log, &input) {
			return
		}
	}

	id, err := h.incidents.SubmitSOS(c.Request.Context(), DTOToLocation(input.Location), input.Address, sessionFrom(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// @Summary Get the incident feed
// @Description Ordered feed for the current session, filtered by area.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param area query string false "Area filter" default(All)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidents.ListFeed(c.Request.Context(), sessionFrom(c), c.DefaultQuery("area", "All"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get dashboard stats
// @Description Active, responders and resolved counters over all incidents.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.incidents.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatsToResponse(stats))
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidents.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Delete an incident
// @Description Admin only. Resolution audit entries are kept.
// @Tags Incidents
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 403 {object} map[string]string "Not an admin"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidents.DeleteIncident(c.Request.Context(), id, sessionFrom(c)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Join as volunteer
// @Description Registered volunteers only. Repeated joins are a no-op.
// @Tags Response
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} JoinResponse
// @Failure 403 {object} map[string]string "Not eligible or own incident"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident resolved"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/volunteers [post]
func (h *Handler) joinIncident(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "joinIncident").WithField("id", id)

	err := h.pledges.JoinAsVolunteer(c.Request.Context(), id, sessionFrom(c))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, JoinResponse{})
	case errors.Is(err, service.ErrAlreadyJoined):
		c.JSON(http.StatusOK, JoinResponse{AlreadyJoined: true})
	default:
		h.respondError(c, log, err)
	}
}

// @Summary Pledge organization staff
// @Tags Response
// @Accept json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param pledge body PledgeRequest true "Number of people"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid count"
// @Failure 403 {object} map[string]string "No organization registered"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident resolved"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/pledges [post]
func (h *Handler) pledgeIncident(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "pledgeIncident").WithField("id", id)

	var input PledgeRequest
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.pledges.PledgeOrganization(c.Request.Context(), id, sessionFrom(c), input.Count); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Resolve an incident
// @Description Writes the audit entry first, then marks the incident resolved.
// @Tags Response
// @Accept json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param resolution body ResolveRequest true "Resolution note"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Empty note"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Already resolved"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/resolve [post]
func (h *Handler) resolveIncident(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "resolveIncident").WithField("id", id)

	var input ResolveRequest
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.resolutions.Resolve(c.Request.Context(), id, input.ResolutionNote, sessionFrom(c)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Resolution audit log
// @Tags Response
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} models.ResolutionLogEntry
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/resolutions [get]
func (h *Handler) listResolutions(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listResolutions").WithField("id", id)

	entries, err := h.resolutions.History(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, entries)
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
