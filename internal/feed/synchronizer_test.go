package feed

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/pkg/clock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	mu        sync.Mutex
	incidents []*models.Incident
	err       error
	calls     int
}

func (s *staticSource) ListAll(context.Context) ([]*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.incidents, s.err
}

func (s *staticSource) set(incidents []*models.Incident, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incidents = incidents
	s.err = err
}

func (s *staticSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func noFrame(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case f := <-sub.Frames():
		t.Fatalf("unexpected feed frame: %+v", f)
	case <-time.After(100 * time.Millisecond):
	}
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(&bytes.Buffer{})
	return l
}

func nextFrame(t *testing.T, sub *Subscription) Frame {
	t.Helper()
	select {
	case f, ok := <-sub.Frames():
		require.True(t, ok, "frames channel closed")
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for feed frame")
	}
	return Frame{}
}

func TestSubscribe_SnapshotThenChanges(t *testing.T) {
	existing := incident(base, models.StatusPending, "")
	source := &staticSource{incidents: []*models.Incident{existing}}
	hub := NewHub(quietLogger(), 8, nil)
	syn := NewSynchronizer(hub, source, clock.NewFake(base.Add(time.Minute)), quietLogger())

	sub, err := syn.Subscribe(context.Background(), models.Session{UserID: "u1"}, "")
	require.NoError(t, err)
	defer sub.Close()

	first := nextFrame(t, sub)
	assert.True(t, first.Snapshot)
	assert.Nil(t, first.Change)
	assert.Equal(t, []*models.Incident{existing}, first.Incidents)

	created := incident(base.Add(30*time.Second), models.StatusPending, "")
	require.NoError(t, hub.Publish(context.Background(), Event{Kind: EventCreated, Incident: created}))

	second := nextFrame(t, sub)
	assert.False(t, second.Snapshot)
	require.NotNil(t, second.Change)
	assert.Equal(t, EventCreated, second.Change.Kind)
	assert.Equal(t, []*models.Incident{created, existing}, second.Incidents)
	assert.Equal(t, 2, second.Stats.Active)
}

func TestSubscribe_FanOutToEverySubscriber(t *testing.T) {
	source := &staticSource{}
	hub := NewHub(quietLogger(), 8, nil)
	syn := NewSynchronizer(hub, source, clock.NewFake(base), quietLogger())

	subs := make([]*Subscription, 3)
	for i := range subs {
		sub, err := syn.Subscribe(context.Background(), models.Session{}, "")
		require.NoError(t, err)
		defer sub.Close()
		nextFrame(t, sub)
		subs[i] = sub
	}
	assert.Equal(t, 3, hub.Subscribers())

	inc := incident(base, models.StatusPending, "")
	hub.Dispatch(Event{Kind: EventCreated, Incident: inc})

	for _, sub := range subs {
		f := nextFrame(t, sub)
		assert.Equal(t, inc.ID, f.Change.Incident.ID)
	}
}

func TestSubscribe_IgnoresStaleVersion(t *testing.T) {
	current := incident(base, models.StatusAcknowledged, "")
	current.Version = 3
	current.VolunteerCount = 3
	source := &staticSource{incidents: []*models.Incident{current}}
	hub := NewHub(quietLogger(), 8, nil)
	syn := NewSynchronizer(hub, source, clock.NewFake(base), quietLogger())

	sub, err := syn.Subscribe(context.Background(), models.Session{}, "")
	require.NoError(t, err)
	defer sub.Close()
	nextFrame(t, sub)

	stale := *current
	stale.Version = 2
	stale.VolunteerCount = 2
	hub.Dispatch(Event{Kind: EventUpdated, Incident: &stale})

	newer := *current
	newer.Version = 4
	newer.VolunteerCount = 4
	hub.Dispatch(Event{Kind: EventUpdated, Incident: &newer})

	f := nextFrame(t, sub)
	assert.Equal(t, int64(4), f.Change.Incident.Version)
	assert.Equal(t, 4, f.Incidents[0].VolunteerCount)
}

func TestSubscribe_DeleteRemovesIncident(t *testing.T) {
	inc := incident(base, models.StatusPending, "")
	source := &staticSource{incidents: []*models.Incident{inc}}
	hub := NewHub(quietLogger(), 8, nil)
	syn := NewSynchronizer(hub, source, clock.NewFake(base), quietLogger())

	sub, err := syn.Subscribe(context.Background(), models.Session{}, "")
	require.NoError(t, err)
	defer sub.Close()
	nextFrame(t, sub)

	hub.Dispatch(Event{Kind: EventDeleted, Incident: &models.Incident{ID: inc.ID}})

	f := nextFrame(t, sub)
	assert.Empty(t, f.Incidents)
}

func TestSubscribe_SnapshotErrorDetaches(t *testing.T) {
	source := &staticSource{err: errors.New("db down")}
	hub := NewHub(quietLogger(), 8, nil)
	syn := NewSynchronizer(hub, source, clock.NewFake(base), quietLogger())

	sub, err := syn.Subscribe(context.Background(), models.Session{}, "")

	assert.Nil(t, sub)
	assert.ErrorContains(t, err, "could not load snapshot")
	assert.Equal(t, 0, hub.Subscribers())
}

func TestSubscription_CloseDetachesAndClosesFrames(t *testing.T) {
	hub := NewHub(quietLogger(), 8, nil)
	syn := NewSynchronizer(hub, &staticSource{}, clock.NewFake(base), quietLogger())

	sub, err := syn.Subscribe(context.Background(), models.Session{}, "")
	require.NoError(t, err)
	nextFrame(t, sub)

	sub.Close()
	sub.Close()

	_, ok := <-sub.Frames()
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Subscribers())
}

func TestSubscribe_RestartReplaysSnapshot(t *testing.T) {
	inc := incident(base, models.StatusPending, "")
	source := &staticSource{incidents: []*models.Incident{inc}}
	hub := NewHub(quietLogger(), 8, nil)
	syn := NewSynchronizer(hub, source, clock.NewFake(base), quietLogger())

	first, err := syn.Subscribe(context.Background(), models.Session{}, "")
	require.NoError(t, err)
	nextFrame(t, first)
	first.Close()

	second, err := syn.Subscribe(context.Background(), models.Session{}, "")
	require.NoError(t, err)
	defer second.Close()

	f := nextFrame(t, second)
	assert.True(t, f.Snapshot)
	assert.Len(t, f.Incidents, 1)
	assert.Equal(t, 2, source.calls)
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub(quietLogger(), 1, nil)
	_, slow := hub.attach()
	_, fast := hub.attach()

	inc := incident(base, models.StatusPending, "")
	hub.Dispatch(Event{Kind: EventCreated, Incident: inc})
	<-fast.ch
	hub.Dispatch(Event{Kind: EventUpdated, Incident: inc})

	assert.True(t, slow.lagged.Load())
	assert.False(t, fast.lagged.Load())
	assert.Len(t, fast.ch, 1)
}

func TestSubscribe_DuplicateOfSnapshotIsSkipped(t *testing.T) {
	inc := incident(base, models.StatusPending, "")
	other := incident(base.Add(time.Second), models.StatusPending, "")
	source := &staticSource{incidents: []*models.Incident{inc}}
	hub := NewHub(quietLogger(), 8, nil)
	syn := NewSynchronizer(hub, source, clock.NewFake(base), quietLogger())

	sub, err := syn.Subscribe(context.Background(), models.Session{}, "")
	require.NoError(t, err)
	defer sub.Close()
	nextFrame(t, sub)

	// created той же версии, что уже есть в снимке
	same := *inc
	hub.Dispatch(Event{Kind: EventCreated, Incident: &same})
	hub.Dispatch(Event{Kind: EventCreated, Incident: other})

	f := nextFrame(t, sub)
	require.NotNil(t, f.Change)
	assert.Equal(t, other.ID, f.Change.Incident.ID)
}

func TestSubscribe_FailedResyncIsRetried(t *testing.T) {
	a := incident(base, models.StatusPending, "")
	b := incident(base.Add(time.Second), models.StatusPending, "")
	dropped := incident(base.Add(2*time.Second), models.StatusPending, "")
	source := &staticSource{err: errors.New("db down")}
	clk := clock.NewFake(base.Add(time.Minute))
	hub := NewHub(quietLogger(), 4, nil)
	syn := NewSynchronizer(hub, source, clk, quietLogger())

	// подписчик уже пропустил событие о dropped
	hubID, hubSub := hub.attach()
	hubSub.lagged.Store(true)
	ctx, cancel := context.WithCancel(context.Background())
	sub := &Subscription{frames: make(chan Frame, 1), cancel: cancel, done: make(chan struct{})}
	st := &viewState{incidents: map[uuid.UUID]*models.Incident{}}
	st.load([]*models.Incident{a})
	go syn.run(ctx, sub, st, hubID, hubSub, quietLogger().WithField("test", t.Name()))
	defer sub.Close()
	nextFrame(t, sub)

	updated := *b
	hub.Dispatch(Event{Kind: EventCreated, Incident: &updated})
	f := nextFrame(t, sub)
	require.NotNil(t, f.Change)

	// первая попытка пересинхронизации падает, подписчик остаётся отставшим
	require.Eventually(t, func() bool { return source.callCount() == 1 }, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, hubSub.lagged.Load, 2*time.Second, 5*time.Millisecond)

	source.set([]*models.Incident{a, b, dropped}, nil)
	clk.Advance(RefreshInterval)

	f = nextFrame(t, sub)
	assert.True(t, f.Snapshot)
	ids := make([]uuid.UUID, 0, len(f.Incidents))
	for _, inc := range f.Incidents {
		ids = append(ids, inc.ID)
	}
	assert.Contains(t, ids, dropped.ID)
	assert.False(t, hubSub.lagged.Load())
}

func TestSubscribe_ResolvedIncidentExpiresWithoutEvents(t *testing.T) {
	resolved := incident(base, models.StatusResolved, "")
	active := incident(base, models.StatusPending, "")
	source := &staticSource{incidents: []*models.Incident{resolved, active}}
	clk := clock.NewFake(base.Add(3*time.Hour - 30*time.Second))
	hub := NewHub(quietLogger(), 8, nil)
	syn := NewSynchronizer(hub, source, clk, quietLogger())

	sub, err := syn.Subscribe(context.Background(), models.Session{}, "")
	require.NoError(t, err)
	defer sub.Close()
	first := nextFrame(t, sub)
	require.Len(t, first.Incidents, 2)

	clk.Advance(RefreshInterval)

	f := nextFrame(t, sub)
	assert.True(t, f.Snapshot)
	require.Len(t, f.Incidents, 1)
	assert.Equal(t, active.ID, f.Incidents[0].ID)
	assert.Equal(t, 1, f.Stats.Resolved)

	// видимый набор не изменился, кадра нет
	clk.Advance(RefreshInterval)
	noFrame(t, sub)
}
