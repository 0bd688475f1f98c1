package notify

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/feed"
	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/pkg/clock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// FreshnessWindow старше этого возраста происшествие уже не поднимает тревогу
	FreshnessWindow = 60 * time.Second
	// DismissAfter через сколько тревога снимается сама
	DismissAfter = 5 * time.Second

	addressPreviewLen = 20
)

// NoticeKind тип уведомления для зрителя
type NoticeKind string

const (
	NoticeRaised    NoticeKind = "alert"
	NoticeDismissed NoticeKind = "alert_dismissed"
)

// Alert тревога об одном новом происшествии
type Alert struct {
	IncidentID uuid.UUID `json:"incidentId"`
	Tag        string    `json:"tag"`
	Message    string    `json:"message"`
	Platform   bool      `json:"platform"`
	RaisedAt   time.Time `json:"raisedAt"`
}

// Notice событие для зрителя: тревога поднята или снята
type Notice struct {
	Kind  NoticeKind
	Alert Alert
}

// Observer счетчик поднятых тревог
type Observer interface {
	ObserveAlert(incidentType string)
}

// Dispatcher решает, какие изменения ленты превращаются в тревоги для одного зрителя.
// Отправка в канал неблокирующая, при переполнении уведомление теряется.
type Dispatcher struct {
	mu       sync.Mutex
	clock    clock.Clock
	viewer   models.Session
	logger   *logrus.Logger
	observer Observer
	notices  chan Notice
	seen     map[uuid.UUID]struct{}
	timers   map[uuid.UUID]clock.Timer
	closed   bool
}

func NewDispatcher(clk clock.Clock, viewer models.Session, logger *logrus.Logger, observer Observer, buffer int) *Dispatcher {
	if buffer < 1 {
		buffer = 1
	}
	return &Dispatcher{
		clock:    clk,
		viewer:   viewer,
		logger:   logger,
		observer: observer,
		notices:  make(chan Notice, buffer),
		seen:     make(map[uuid.UUID]struct{}),
		timers:   make(map[uuid.UUID]clock.Timer),
	}
}

// Notices канал уведомлений зрителя
func (d *Dispatcher) Notices() <-chan Notice {
	return d.notices
}

// HandleFrame обрабатывает кадр ленты. Возвращает тревогу, если она поднята.
func (d *Dispatcher) HandleFrame(frame feed.Frame) (*Alert, bool) {
	if frame.Snapshot || frame.Change == nil {
		return nil, false
	}
	if frame.Change.Kind != feed.EventCreated || frame.Change.Incident == nil {
		return nil, false
	}
	inc := frame.Change.Incident

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || !d.eligible(inc) {
		return nil, false
	}
	if _, ok := d.seen[inc.ID]; ok {
		return nil, false
	}
	d.seen[inc.ID] = struct{}{}

	alert := Alert{
		IncidentID: inc.ID,
		Tag:        inc.ID.String(),
		Message:    Message(inc),
		Platform:   d.viewer.PlatformNotificationsGranted,
		RaisedAt:   d.clock.Now(),
	}
	d.send(Notice{Kind: NoticeRaised, Alert: alert})
	if d.observer != nil {
		d.observer.ObserveAlert(string(inc.Type))
	}

	id := inc.ID
	d.timers[id] = d.clock.AfterFunc(DismissAfter, func() {
		d.dismiss(id, alert)
	})

	d.logger.WithFields(logrus.Fields{
		"component":   "notify",
		"viewer_id":   d.viewer.UserID,
		"incident_id": id,
	}).Debug("Alert raised")
	return &alert, true
}

func (d *Dispatcher) eligible(inc *models.Incident) bool {
	if !d.viewer.NotificationsEnabled {
		return false
	}
	if inc.ReporterID != "" && inc.ReporterID == d.viewer.UserID {
		return false
	}
	return d.clock.Now().Sub(inc.CreatedAt) <= FreshnessWindow
}

func (d *Dispatcher) dismiss(id uuid.UUID, alert Alert) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.timers, id)
	if d.closed {
		return
	}
	d.send(Notice{Kind: NoticeDismissed, Alert: alert})
}

// send вызывается под мьютексом
func (d *Dispatcher) send(n Notice) {
	select {
	case d.notices <- n:
	default:
		d.logger.WithFields(logrus.Fields{
			"component":   "notify",
			"viewer_id":   d.viewer.UserID,
			"incident_id": n.Alert.IncidentID,
			"kind":        n.Kind,
		}).Warn("Notice channel full, dropping notice")
	}
}

// Close останавливает таймеры. Канал не закрывается.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	for id, t := range d.timers {
		t.Stop()
		delete(d.timers, id)
	}
}

// Message текст тревоги: "New FIRE Alert at 12 Park Street, Kolk..."
func Message(inc *models.Incident) string {
	msg := fmt.Sprintf("New %s Alert", strings.ToUpper(string(inc.Type)))
	if inc.Address == "" {
		return msg
	}
	addr := []rune(inc.Address)
	if len(addr) > addressPreviewLen {
		addr = addr[:addressPreviewLen]
	}
	return fmt.Sprintf("%s at %s...", msg, string(addr))
}
