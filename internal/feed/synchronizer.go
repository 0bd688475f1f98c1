package feed

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/pkg/clock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SnapshotSource полный текущий набор происшествий из хранилища
type SnapshotSource interface {
	ListAll(ctx context.Context) ([]*models.Incident, error)
}

// Frame очередное состояние ленты для зрителя.
// Первый кадр подписки всегда снимок, дальше по кадру на каждое изменение.
type Frame struct {
	Snapshot  bool
	Change    *Event
	Incidents []*models.Incident
	Stats     Stats
}

// RefreshInterval как часто лента пересчитывает видимость без внешних изменений.
// Закрытые происшествия пропадают по времени, а не по событию.
const RefreshInterval = time.Minute

// Synchronizer поддерживает живую упорядоченную ленту для подписчиков
type Synchronizer struct {
	hub    *Hub
	source SnapshotSource
	clock  clock.Clock
	logger *logrus.Logger
}

func NewSynchronizer(hub *Hub, source SnapshotSource, clk clock.Clock, logger *logrus.Logger) *Synchronizer {
	return &Synchronizer{
		hub:    hub,
		source: source,
		clock:  clk,
		logger: logger,
	}
}

// Subscribers число подписчиков этого экземпляра
func (s *Synchronizer) Subscribers() int {
	return s.hub.Subscribers()
}

// Subscription дескриптор подписки. Кадры читаются из Frames до закрытия канала.
type Subscription struct {
	frames chan Frame
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func (s *Subscription) Frames() <-chan Frame {
	return s.frames
}

// Close отменяет подписку и ждёт остановки её горутины
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

// Subscribe регистрирует зрителя и сразу отдаёт снимок. Повторная подписка снова начинается со снимка.
func (s *Synchronizer) Subscribe(ctx context.Context, viewer models.Session, area string) (*Subscription, error) {
	log := s.logger.WithFields(logrus.Fields{
		"component": "feed",
		"method":    "Subscribe",
		"viewer_id": viewer.UserID,
	})

	// Сначала подписка на хаб, затем снимок: изменения между ними не теряются
	hubID, hubSub := s.hub.attach()

	snapshot, err := s.source.ListAll(ctx)
	if err != nil {
		s.hub.detach(hubID)
		log.WithError(err).Error("Failed to load feed snapshot")
		return nil, fmt.Errorf("feed: could not load snapshot: %w", err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		frames: make(chan Frame, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	st := &viewState{
		incidents: make(map[uuid.UUID]*models.Incident, len(snapshot)),
		query:     Query{ViewerName: viewer.DisplayName, Area: area},
	}
	st.load(snapshot)

	go s.run(subCtx, sub, st, hubID, hubSub, log)

	log.WithField("incidents", len(snapshot)).Info("Feed subscriber attached")
	return sub, nil
}

func (s *Synchronizer) run(ctx context.Context, sub *Subscription, st *viewState, hubID uuid.UUID, hubSub *hubSubscriber, log *logrus.Entry) {
	defer close(sub.done)
	defer close(sub.frames)
	defer s.hub.detach(hubID)

	tick := make(chan struct{}, 1)
	var timer clock.Timer
	arm := func() {
		timer = s.clock.AfterFunc(RefreshInterval, func() {
			select {
			case tick <- struct{}{}:
			default:
			}
		})
	}
	arm()
	defer func() { timer.Stop() }()

	if !s.emit(ctx, sub, st.frame(s.clock, nil)) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("Feed subscriber detached")
			return
		case ev := <-hubSub.ch:
			if st.apply(ev) {
				change := ev
				if !s.emit(ctx, sub, st.frame(s.clock, &change)) {
					return
				}
			}
			if hubSub.lagged.CompareAndSwap(true, false) {
				if !s.resync(ctx, sub, st, hubSub, log) {
					return
				}
			}
		case <-tick:
			arm()
			if hubSub.lagged.CompareAndSwap(true, false) {
				if !s.resync(ctx, sub, st, hubSub, log) {
					return
				}
				continue
			}
			// Перестроение по времени: отдаём кадр, только если изменился видимый набор
			prev := st.visible
			frame := st.frame(s.clock, nil)
			if !slices.Equal(prev, st.visible) {
				if !s.emit(ctx, sub, frame) {
					return
				}
			}
		}
	}
}

// resync перечитывает снимок после потери событий медленным подписчиком.
// Если хранилище недоступно, подписчик остаётся отставшим и повторит попытку позже.
func (s *Synchronizer) resync(ctx context.Context, sub *Subscription, st *viewState, hubSub *hubSubscriber, log *logrus.Entry) bool {
	snapshot, err := s.source.ListAll(ctx)
	if err != nil {
		hubSub.lagged.Store(true)
		log.WithError(err).Warn("Failed to resync lagged feed subscriber")
		return true
	}
	st.load(snapshot)
	log.Info("Lagged feed subscriber resynced")
	return s.emit(ctx, sub, st.frame(s.clock, nil))
}

func (s *Synchronizer) emit(ctx context.Context, sub *Subscription, frame Frame) bool {
	select {
	case sub.frames <- frame:
		return true
	case <-ctx.Done():
		return false
	}
}

// viewState состояние ленты одного подписчика
type viewState struct {
	incidents map[uuid.UUID]*models.Incident
	query     Query
	visible   []uuid.UUID
}

func (v *viewState) load(snapshot []*models.Incident) {
	v.incidents = make(map[uuid.UUID]*models.Incident, len(snapshot))
	for _, inc := range snapshot {
		v.incidents[inc.ID] = inc
	}
}

// apply применяет событие. Версии не новее уже известной игнорируются.
func (v *viewState) apply(ev Event) bool {
	if ev.Incident == nil {
		return false
	}
	id := ev.Incident.ID
	switch ev.Kind {
	case EventDeleted:
		if _, ok := v.incidents[id]; !ok {
			return false
		}
		delete(v.incidents, id)
		return true
	case EventCreated, EventUpdated:
		if cur, ok := v.incidents[id]; ok && cur.Version >= ev.Incident.Version {
			return false
		}
		v.incidents[id] = ev.Incident
		return true
	}
	return false
}

func (v *viewState) frame(clk clock.Clock, change *Event) Frame {
	all := make([]*models.Incident, 0, len(v.incidents))
	for _, inc := range v.incidents {
		all = append(all, inc)
	}
	q := v.query
	q.Now = clk.Now()
	visible := Build(all, q)
	// набор видимых id без учёта порядка
	v.visible = make([]uuid.UUID, len(visible))
	for i, inc := range visible {
		v.visible[i] = inc.ID
	}
	slices.SortFunc(v.visible, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	return Frame{
		Snapshot:  change == nil,
		Change:    change,
		Incidents: visible,
		Stats:     Summarize(all),
	}
}
