package v1

import (
	"net/http"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Register as volunteer
// @Description Name defaults to the session display name.
// @Tags Profile
// @Accept json
// @Security ApiKeyAuth
// @Param profile body VolunteerProfileRequest true "Volunteer profile"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Anonymous session"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/volunteer [put]
func (h *Handler) registerVolunteer(c *gin.Context) {
	var input VolunteerProfileRequest
	log := h.logger.WithField("method", "registerVolunteer")

	if !h.bind(c, log, &input) {
		return
	}

	profile := &models.VolunteerProfile{
		Name:       input.Name,
		Age:        input.Age,
		BloodGroup: input.BloodGroup,
		State:      input.State,
		District:   input.District,
		Address:    input.Address,
	}
	if err := h.profiles.RegisterVolunteer(c.Request.Context(), sessionFrom(c), profile); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Register an organization
// @Description Owner is the session display name.
// @Tags Profile
// @Accept json
// @Security ApiKeyAuth
// @Param profile body OrganizationProfileRequest true "Organization profile"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Anonymous session"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/organization [put]
func (h *Handler) registerOrganization(c *gin.Context) {
	var input OrganizationProfileRequest
	log := h.logger.WithField("method", "registerOrganization")

	if !h.bind(c, log, &input) {
		return
	}

	profile := &models.OrganizationProfile{
		Name:         input.Name,
		SocietyRegNo: input.SocietyRegNo,
		Address:      input.Address,
	}
	if err := h.profiles.RegisterOrganization(c.Request.Context(), sessionFrom(c), profile); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Current session profile
// @Description Session, registrations and the incidents the user volunteered for.
// @Tags Profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ProfileResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile [get]
func (h *Handler) getProfile(c *gin.Context) {
	log := h.logger.WithField("method", "getProfile")
	session := sessionFrom(c)
	ctx := c.Request.Context()

	profiles, err := h.profiles.Lookup(ctx, session)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	joined, err := h.pledges.JoinedIncidents(ctx, session)
	if err != nil {
		// история присоединений только подсказка для интерфейса
		log.WithError(err).Warn("Failed to load join history")
		joined = nil
	}
	if joined == nil {
		joined = []uuid.UUID{}
	}

	session.IsRegisteredVolunteer = profiles.IsRegisteredVolunteer()
	c.JSON(http.StatusOK, ProfileResponse{
		Session:            session,
		Volunteer:          profiles.Volunteer,
		Organization:       profiles.Organization,
		VolunteeredReports: joined,
	})
}
