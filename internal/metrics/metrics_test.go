package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservers(t *testing.T) {
	m := New()

	m.ObserveSubmission("sos", "succeeded")
	m.ObserveSubmission("sos", "succeeded")
	m.ObserveLocation("timeout")
	m.SetFeedSubscribers(7)
	m.ObserveAlert("fire")
	m.ObserveWebhookDelivery("failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissions.WithLabelValues("sos", "succeeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.locationOutcomes.WithLabelValues("timeout")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.feedSubscribers))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.alertsRaised.WithLabelValues("fire")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.webhookDeliveries.WithLabelValues("failed")))
}

func TestGinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	router := gin.New()
	router.Use(m.GinMiddleware())
	router.GET("/api/v1/incidents/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/incidents/abc", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/v1/incidents/:id", "GET", "404")))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "crisissync_http_requests_total")
}
