package feed

import (
	"testing"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var base = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func incident(createdAt time.Time, status models.IncidentStatus, details string) *models.Incident {
	return &models.Incident{
		ID:        uuid.New(),
		Type:      models.TypeFire,
		Status:    status,
		CreatedAt: createdAt,
		Details:   details,
		Version:   1,
	}
}

func TestVisible_ResolvedWindowFromCreatedAt(t *testing.T) {
	inc := incident(base, models.StatusResolved, "")

	assert.True(t, Visible(inc, base.Add(time.Minute)))
	assert.True(t, Visible(inc, base.Add(3*time.Hour)), "exactly at the boundary is still visible")
	assert.False(t, Visible(inc, base.Add(3*time.Hour+time.Millisecond)))
}

func TestVisible_ActiveNeverExpires(t *testing.T) {
	pending := incident(base, models.StatusPending, "")
	acked := incident(base, models.StatusAcknowledged, "")

	later := base.Add(72 * time.Hour)
	assert.True(t, Visible(pending, later))
	assert.True(t, Visible(acked, later))
}

func TestOrder_NewestFirstThenViewerMentions(t *testing.T) {
	oldest := incident(base, models.StatusPending, "")
	middle := incident(base.Add(time.Minute), models.StatusPending, "reported by Priya Nair")
	newest := incident(base.Add(2*time.Minute), models.StatusPending, "")
	mentionedOld := incident(base.Add(-time.Hour), models.StatusPending, "Priya Nair is trapped")

	list := []*models.Incident{oldest, middle, newest, mentionedOld}
	Order(list, "Priya Nair")

	assert.Equal(t, []*models.Incident{middle, mentionedOld, newest, oldest}, list)
}

func TestOrder_NoViewerName(t *testing.T) {
	a := incident(base, models.StatusPending, "")
	b := incident(base.Add(time.Second), models.StatusPending, "")

	list := []*models.Incident{a, b}
	Order(list, "")

	assert.Equal(t, []*models.Incident{b, a}, list)
}

func TestInArea(t *testing.T) {
	inc := incident(base, models.StatusPending, "")
	inc.Address = "14 Park Street, Kolkata"

	assert.True(t, InArea(inc, AreaAll))
	assert.True(t, InArea(inc, AreaNearMe))
	assert.True(t, InArea(inc, ""))
	assert.True(t, InArea(inc, "Kolkata"))
	assert.False(t, InArea(inc, "Chennai"))
}

func TestBuild_AppliesVisibilityAndArea(t *testing.T) {
	expired := incident(base, models.StatusResolved, "")
	fresh := incident(base.Add(2*time.Hour), models.StatusResolved, "")
	active := incident(base, models.StatusPending, "")

	out := Build([]*models.Incident{expired, fresh, active}, Query{Now: base.Add(3*time.Hour + time.Second)})

	assert.Equal(t, []*models.Incident{fresh, active}, out)
}

func TestSummarize(t *testing.T) {
	a := incident(base, models.StatusPending, "")
	a.VolunteerCount = 2
	b := incident(base, models.StatusAcknowledged, "")
	b.VolunteerCount = 5
	c := incident(base, models.StatusResolved, "")
	c.VolunteerCount = 1

	assert.Equal(t, Stats{Active: 2, Responders: 8, Resolved: 1}, Summarize([]*models.Incident{a, b, c}))
}
