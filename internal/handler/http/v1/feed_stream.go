package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/feed"
	"github.com/NITHEESH-14/CrisisSync/internal/models"
	"github.com/NITHEESH-14/CrisisSync/internal/notify"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FeedSubscriber источник живой ленты для SSE
type FeedSubscriber interface {
	Subscribe(ctx context.Context, viewer models.Session, area string) (*feed.Subscription, error)
	Subscribers() int
}

// SSE-события ленты
const (
	sseEventSnapshot  = "snapshot"
	sseEventChange    = "change"
	sseEventHeartbeat = "heartbeat"
)

const (
	defaultHeartbeatInterval = 30 * time.Second
	alertBufferSize          = 16
)

// @Summary Live incident feed
// @Description Server-Sent Events: snapshot first, then change, alert, alert_dismissed and heartbeat events.
// @Tags Feed
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Param area query string false "Area filter" default(All)
// @Success 200 {string} string "event stream"
// @Failure 500 {object} map[string]string "Internal server error"
// @Failure 503 {object} map[string]string "Too many subscribers"
// @Router /feed/stream [get]
func (h *Handler) streamFeed(c *gin.Context) {
	viewer := sessionFrom(c)
	log := h.logger.WithFields(logrus.Fields{
		"method":    "streamFeed",
		"viewer_id": viewer.UserID,
	})

	if h.feed == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "live feed is not available"})
		return
	}
	if limit := h.cfg.FeedMaxSubscribers; limit > 0 && h.feed.Subscribers() >= limit {
		log.WithField("max", limit).Warn("Feed subscriber limit reached")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "too many live feed subscribers"})
		return
	}

	ctx := c.Request.Context()
	sub, err := h.feed.Subscribe(ctx, viewer, c.DefaultQuery("area", feed.AreaAll))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	defer sub.Close()

	dispatcher := notify.NewDispatcher(h.clock, viewer, h.logger, h.alerts, alertBufferSize)
	defer dispatcher.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	interval := h.cfg.FeedHeartbeatInterval
	if interval <= 0 {
		interval = defaultHeartbeatInterval
	}
	heartbeat := time.NewTicker(interval)
	defer heartbeat.Stop()

	log.Info("Feed stream opened")
	defer log.Info("Feed stream closed")

	var seq int64
	send := func(event string, data any) error {
		seq++
		return writeSSE(c, event, seq, data)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case frame, ok := <-sub.Frames():
			if !ok {
				return
			}
			event := sseEventChange
			if frame.Snapshot {
				event = sseEventSnapshot
			}
			if err := send(event, FrameToResponse(frame)); err != nil {
				log.WithError(err).Debug("Client went away")
				return
			}
			dispatcher.HandleFrame(frame)

		case notice := <-dispatcher.Notices():
			if err := send(string(notice.Kind), notice.Alert); err != nil {
				log.WithError(err).Debug("Client went away")
				return
			}

		case <-heartbeat.C:
			if err := send(sseEventHeartbeat, gin.H{"time": h.clock.Now().UTC()}); err != nil {
				log.WithError(err).Debug("Client went away")
				return
			}
		}
	}
}

func writeSSE(c *gin.Context, event string, id int64, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event, err)
	}
	if _, err := fmt.Fprintf(c.Writer, "event: %s\nid: %d\ndata: %s\n\n", event, id, payload); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}
