package feed

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SubscriberObserver получает текущее число подписчиков, используется для метрик
type SubscriberObserver interface {
	SetFeedSubscribers(n int)
}

type hubSubscriber struct {
	ch     chan Event
	lagged atomic.Bool
}

// Hub локальная раздача событий всем подписчикам процесса.
// Медленный подписчик не блокирует остальных: событие отбрасывается, а подписчик помечается отставшим.
type Hub struct {
	mu       sync.RWMutex
	subs     map[uuid.UUID]*hubSubscriber
	buffer   int
	logger   *logrus.Logger
	observer SubscriberObserver
}

func NewHub(logger *logrus.Logger, bufferSize int, observer SubscriberObserver) *Hub {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Hub{
		subs:     make(map[uuid.UUID]*hubSubscriber),
		buffer:   bufferSize,
		logger:   logger,
		observer: observer,
	}
}

// Publish раздаёт событие локальным подписчикам
func (h *Hub) Publish(_ context.Context, event Event) error {
	h.Dispatch(event)
	return nil
}

// Dispatch неблокирующая отправка события каждому подписчику
func (h *Hub) Dispatch(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, sub := range h.subs {
		select {
		case sub.ch <- event:
		default:
			sub.lagged.Store(true)
			h.logger.WithField("subscriber_id", id).Warn("Subscriber channel full, dropping feed event")
		}
	}
}

// Subscribers текущее число подписчиков
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// markAllLagged заставляет каждого подписчика пересобрать снимок
func (h *Hub) markAllLagged() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		sub.lagged.Store(true)
	}
}

func (h *Hub) attach() (uuid.UUID, *hubSubscriber) {
	id := uuid.New()
	sub := &hubSubscriber{ch: make(chan Event, h.buffer)}

	h.mu.Lock()
	h.subs[id] = sub
	n := len(h.subs)
	h.mu.Unlock()

	h.report(n)
	return id, sub
}

func (h *Hub) detach(id uuid.UUID) {
	h.mu.Lock()
	delete(h.subs, id)
	n := len(h.subs)
	h.mu.Unlock()

	h.report(n)
}

func (h *Hub) report(n int) {
	if h.observer != nil {
		h.observer.SetFeedSubscribers(n)
	}
}
