package v1

import (
	"errors"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/NITHEESH-14/CrisisSync/internal/location"
	"github.com/gin-gonic/gin"
)

// environmentFrom определяет защищённость контекста по TLS. Заголовки прокси
// учитываются только если запрос пришёл напрямую от доверенного прокси.
func (h *Handler) environmentFrom(c *gin.Context) location.Environment {
	secure := c.Request.TLS != nil
	host := c.Request.Host

	if h.fromTrustedProxy(c) {
		if strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https") {
			secure = true
		}
		if forwarded := c.GetHeader("X-Forwarded-Host"); forwarded != "" {
			host = strings.TrimSpace(strings.Split(forwarded, ",")[0])
		}
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return location.Environment{
		Secure:   secure,
		Hostname: strings.Trim(host, "[]"),
	}
}

func (h *Handler) fromTrustedProxy(c *gin.Context) bool {
	if len(h.trustedProxies) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(c.RemoteIP())
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range h.trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// @Summary Acquire device location
// @Description Two attempts (high accuracy, then low accuracy). Any failure asks for manual entry.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param signals body LocationAcquireRequest false "Wi-Fi and cell tower signals"
// @Success 200 {object} LocationAcquireResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/acquire [post]
func (h *Handler) acquireLocation(c *gin.Context) {
	var input LocationAcquireRequest
	log := h.logger.WithField("method", "acquireLocation")

	if c.Request.ContentLength != 0 {
		if !h.bind(c, log, &input) {
			return
		}
	}

	if h.location == nil {
		manual := &location.ManualEntryRequired{Reason: location.ReasonUnsupported}
		c.JSON(http.StatusOK, manualEntryResponse(manual))
		return
	}

	loc, err := h.location.Acquire(c.Request.Context(), h.environmentFrom(c), DTOToSignals(input))
	if err != nil {
		var manual *location.ManualEntryRequired
		if errors.As(err, &manual) {
			c.JSON(http.StatusOK, manualEntryResponse(manual))
			return
		}
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, LocationAcquireResponse{Location: LocationToDTO(loc)})
}

func manualEntryResponse(manual *location.ManualEntryRequired) LocationAcquireResponse {
	return LocationAcquireResponse{
		ManualEntry: true,
		Reason:      string(manual.Reason),
		Message:     manual.Message(),
	}
}
