package feed

import (
	"context"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/models"
)

//go:generate mockgen -source=event.go -destination=mocks/mock_event.go -package=mocks

// EventKind вид изменения происшествия
type EventKind string

const (
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// Event изменение одного происшествия. Incident содержит полное состояние после изменения.
type Event struct {
	Kind       EventKind        `json:"kind"`
	Incident   *models.Incident `json:"incident"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// Publisher публикует изменения всем подписчикам
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
