package notify

import (
	"bytes"
	"testing"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/feed"
	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/pkg/clock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type alertCounter struct {
	byType map[string]int
}

func (c *alertCounter) ObserveAlert(t string) {
	if c.byType == nil {
		c.byType = map[string]int{}
	}
	c.byType[t]++
}

func newTestDispatcher(viewer models.Session) (*Dispatcher, *clock.Fake, *alertCounter) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	clk := clock.NewFake(now)
	counter := &alertCounter{}
	return NewDispatcher(clk, viewer, logger, counter, 8), clk, counter
}

func createdFrame(inc *models.Incident) feed.Frame {
	return feed.Frame{Change: &feed.Event{Kind: feed.EventCreated, Incident: inc}}
}

func freshIncident(reporterID string, age time.Duration) *models.Incident {
	return &models.Incident{
		ID:         uuid.New(),
		Type:       models.TypeFire,
		Status:     models.StatusPending,
		CreatedAt:  now.Add(-age),
		Address:    "221B Baker Street, Marylebone, London",
		ReporterID: reporterID,
	}
}

var viewer = models.Session{UserID: "viewer-1", DisplayName: "Asha", NotificationsEnabled: true}

func TestHandleFrame_RaisesAlertForFreshForeignIncident(t *testing.T) {
	d, _, counter := newTestDispatcher(viewer)
	inc := freshIncident("someone-else", 10*time.Second)

	alert, ok := d.HandleFrame(createdFrame(inc))

	require.True(t, ok)
	assert.Equal(t, inc.ID, alert.IncidentID)
	assert.Equal(t, inc.ID.String(), alert.Tag)
	assert.Equal(t, "New FIRE Alert at 221B Baker Street, M...", alert.Message)
	assert.False(t, alert.Platform)
	assert.Equal(t, 1, counter.byType["fire"])

	n := <-d.Notices()
	assert.Equal(t, NoticeRaised, n.Kind)
}

func TestHandleFrame_FreshnessBoundary(t *testing.T) {
	d, _, _ := newTestDispatcher(viewer)

	_, ok := d.HandleFrame(createdFrame(freshIncident("other", 60*time.Second)))
	assert.True(t, ok, "exactly 60s old still alerts")

	_, ok = d.HandleFrame(createdFrame(freshIncident("other", 61*time.Second)))
	assert.False(t, ok)
}

func TestHandleFrame_OwnIncidentIsSilent(t *testing.T) {
	d, _, _ := newTestDispatcher(viewer)

	_, ok := d.HandleFrame(createdFrame(freshIncident(viewer.UserID, time.Second)))

	assert.False(t, ok)
	assert.Empty(t, d.Notices())
}

func TestHandleFrame_NotificationsDisabled(t *testing.T) {
	muted := viewer
	muted.NotificationsEnabled = false
	d, _, _ := newTestDispatcher(muted)

	_, ok := d.HandleFrame(createdFrame(freshIncident("other", time.Second)))

	assert.False(t, ok)
}

func TestHandleFrame_AtMostOncePerIncident(t *testing.T) {
	d, _, counter := newTestDispatcher(viewer)
	inc := freshIncident("other", time.Second)

	_, first := d.HandleFrame(createdFrame(inc))
	_, second := d.HandleFrame(createdFrame(inc))

	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, 1, counter.byType["fire"])
}

func TestHandleFrame_SnapshotAndUpdatesNeverAlert(t *testing.T) {
	d, _, _ := newTestDispatcher(viewer)
	inc := freshIncident("other", time.Second)

	_, ok := d.HandleFrame(feed.Frame{Snapshot: true, Incidents: []*models.Incident{inc}})
	assert.False(t, ok)

	_, ok = d.HandleFrame(feed.Frame{Change: &feed.Event{Kind: feed.EventUpdated, Incident: inc}})
	assert.False(t, ok)
}

func TestHandleFrame_AutoDismissAfterFiveSeconds(t *testing.T) {
	d, clk, _ := newTestDispatcher(viewer)
	inc := freshIncident("other", time.Second)

	_, ok := d.HandleFrame(createdFrame(inc))
	require.True(t, ok)
	<-d.Notices()

	clk.Advance(4 * time.Second)
	assert.Empty(t, d.Notices())

	clk.Advance(time.Second)
	require.Len(t, d.Notices(), 1)
	n := <-d.Notices()
	assert.Equal(t, NoticeDismissed, n.Kind)
	assert.Equal(t, inc.ID, n.Alert.IncidentID)
}

func TestHandleFrame_PlatformFlag(t *testing.T) {
	granted := viewer
	granted.PlatformNotificationsGranted = true
	d, _, _ := newTestDispatcher(granted)

	alert, ok := d.HandleFrame(createdFrame(freshIncident("other", time.Second)))

	require.True(t, ok)
	assert.True(t, alert.Platform)
}

func TestClose_StopsPendingDismissals(t *testing.T) {
	d, clk, _ := newTestDispatcher(viewer)
	_, ok := d.HandleFrame(createdFrame(freshIncident("other", time.Second)))
	require.True(t, ok)
	<-d.Notices()

	d.Close()
	clk.Advance(DismissAfter)

	assert.Equal(t, 0, clk.PendingTimers())
	assert.Empty(t, d.Notices())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "New MEDICAL Alert", Message(&models.Incident{Type: models.TypeMedical}))
	assert.Equal(t, "New PANIC Alert at Gate 4...", Message(&models.Incident{Type: models.TypePanic, Address: "Gate 4"}))
}
