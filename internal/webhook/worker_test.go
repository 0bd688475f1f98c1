package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/config"
	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outcomes struct {
	seen []string
}

func (o *outcomes) ObserveWebhookDelivery(outcome string) {
	o.seen = append(o.seen, outcome)
}

func newTestWorker(cfg *config.Config) (*WebhookWorker, *outcomes) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	obs := &outcomes{}
	return NewWebhookWorker(nil, logger, cfg, obs), obs
}

func testEvent(t *testing.T) (IncidentEvent, string) {
	t.Helper()
	event := IncidentEvent{
		Event: EventIncidentCreated,
		Incident: &models.Incident{
			ID:     uuid.New(),
			Type:   models.TypeFire,
			Status: models.StatusPending,
		},
		Notified:  models.NotifiedServicesFor(models.TypeFire),
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(raw)
}

func TestProcessWebhookEvent_SignsPayload(t *testing.T) {
	event, raw := testEvent(t)
	var gotSignature, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(SignatureHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker, obs := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
	})

	worker.processWebhookEvent(context.Background(), event, raw)

	mac := hmac.New(sha256.New, []byte("s3cret"))
	mac.Write([]byte(raw))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)
	assert.Equal(t, raw, gotBody)
	assert.Equal(t, []string{"delivered"}, obs.seen)
}

func TestProcessWebhookEvent_RetriesThenGivesUp(t *testing.T) {
	event, raw := testEvent(t)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	worker, obs := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	worker.processWebhookEvent(context.Background(), event, raw)

	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []string{"failed"}, obs.seen)
}

func TestProcessWebhookEvent_RecoversOnRetry(t *testing.T) {
	event, raw := testEvent(t)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		assert.Empty(t, r.Header.Get(SignatureHeader))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	worker, obs := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	worker.processWebhookEvent(context.Background(), event, raw)

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, []string{"delivered"}, obs.seen)
}

func TestProcessWebhookEvent_SkipsWithoutURL(t *testing.T) {
	event, raw := testEvent(t)
	worker, obs := newTestWorker(&config.Config{WebhookMaxRetries: 3})

	worker.processWebhookEvent(context.Background(), event, raw)

	assert.Equal(t, []string{"skipped"}, obs.seen)
}
