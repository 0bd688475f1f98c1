package v1

import (
	"net/http"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/internal/wizard"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *Handler) respondFlow(c *gin.Context, status int, flow *wizard.Flow) {
	c.JSON(status, FlowToResponse(flow, h.clock.Now()))
}

// @Summary Start the submission wizard
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} WizardResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /wizard [post]
func (h *Handler) startWizard(c *gin.Context) {
	log := h.logger.WithField("method", "startWizard")

	flow, err := h.wizard.Start(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.respondFlow(c, http.StatusCreated, flow)
}

// @Summary Get or navigate the wizard
// @Description Without step returns the current state. A step without a selected type resets the flow.
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Wizard ID"
// @Param step query string false "type, location, details or submitting"
// @Success 200 {object} WizardResponse
// @Failure 400 {object} map[string]string "Unknown step"
// @Failure 404 {object} map[string]string "Wizard not found"
// @Router /wizard/{id} [get]
func (h *Handler) getWizard(c *gin.Context) {
	id, ok := parseID(c, "wizard")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getWizard").WithField("id", id)

	step, hasStep := c.GetQuery("step")
	var (
		flow *wizard.Flow
		err  error
	)
	if hasStep {
		flow, err = h.wizard.Navigate(c.Request.Context(), id, wizard.Step(step))
	} else {
		flow, err = h.wizard.Get(c.Request.Context(), id)
	}
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.respondFlow(c, http.StatusOK, flow)
}

// @Summary Select incident type
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Wizard ID"
// @Param type body SelectTypeRequest true "Incident type"
// @Success 200 {object} WizardResponse
// @Failure 400 {object} map[string]string "Unknown type"
// @Failure 409 {object} map[string]string "Wrong step"
// @Router /wizard/{id}/type [post]
func (h *Handler) selectWizardType(c *gin.Context) {
	id, ok := parseID(c, "wizard")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "selectWizardType").WithField("id", id)

	var input SelectTypeRequest
	if !h.bind(c, log, &input) {
		return
	}

	flow, err := h.wizard.SelectType(c.Request.Context(), id, models.IncidentType(input.Type))
	h.finishTransition(c, log, flow, err)
}

// @Summary Acquire location for the wizard
// @Description Failure switches the flow to manual address entry and is not an error.
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Wizard ID"
// @Param signals body LocationAcquireRequest false "Wi-Fi and cell tower signals"
// @Success 200 {object} WizardResponse
// @Failure 409 {object} map[string]string "Wrong step"
// @Router /wizard/{id}/location [post]
func (h *Handler) acquireWizardLocation(c *gin.Context) {
	id, ok := parseID(c, "wizard")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "acquireWizardLocation").WithField("id", id)

	var input LocationAcquireRequest
	if c.Request.ContentLength != 0 {
		if !h.bind(c, log, &input) {
			return
		}
	}

	flow, err := h.wizard.AcquireLocation(c.Request.Context(), id, h.environmentFrom(c), DTOToSignals(input))
	h.finishTransition(c, log, flow, err)
}

// @Summary Skip location
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} WizardResponse
// @Failure 409 {object} map[string]string "Wrong step"
// @Router /wizard/{id}/skip [post]
func (h *Handler) skipWizardLocation(c *gin.Context) {
	id, ok := parseID(c, "wizard")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "skipWizardLocation").WithField("id", id)

	flow, err := h.wizard.Skip(c.Request.Context(), id)
	h.finishTransition(c, log, flow, err)
}

// @Summary Confirm a manual address
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Wizard ID"
// @Param address body AddressRequest true "Address"
// @Success 200 {object} WizardResponse
// @Failure 400 {object} map[string]string "Empty address"
// @Failure 409 {object} map[string]string "Wrong step"
// @Router /wizard/{id}/address [post]
func (h *Handler) confirmWizardAddress(c *gin.Context) {
	id, ok := parseID(c, "wizard")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "confirmWizardAddress").WithField("id", id)

	var input AddressRequest
	if !h.bind(c, log, &input) {
		return
	}

	flow, err := h.wizard.ConfirmAddress(c.Request.Context(), id, input.Address)
	h.finishTransition(c, log, flow, err)
}

// @Summary Go back one step
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} WizardResponse
// @Router /wizard/{id}/back [post]
func (h *Handler) backWizard(c *gin.Context) {
	id, ok := parseID(c, "wizard")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "backWizard").WithField("id", id)

	flow, err := h.wizard.Back(c.Request.Context(), id)
	h.finishTransition(c, log, flow, err)
}

// @Summary Submit the wizard
// @Description The outcome (succeeded or failed) is reported in the wizard state.
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Wizard ID"
// @Param details body WizardSubmitRequest false "Optional details"
// @Success 200 {object} WizardResponse
// @Failure 409 {object} map[string]string "Wrong step"
// @Router /wizard/{id}/submit [post]
func (h *Handler) submitWizard(c *gin.Context) {
	id, ok := parseID(c, "wizard")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "submitWizard").WithField("id", id)

	var input WizardSubmitRequest
	if c.Request.ContentLength != 0 {
		if !h.bind(c, log, &input) {
			return
		}
	}

	flow, err := h.wizard.Submit(c.Request.Context(), id, input.Details, sessionFrom(c))
	h.finishTransition(c, log, flow, err)
}

func (h *Handler) finishTransition(c *gin.Context, log *logrus.Entry, flow *wizard.Flow, err error) {
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.respondFlow(c, http.StatusOK, flow)
}
