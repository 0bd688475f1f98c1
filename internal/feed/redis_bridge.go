package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NITHEESH-14/CrisisSync/pkg/clock"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const defaultChangeChannel = "incident_changes"

const (
	bridgeRestartMinDelay = time.Second
	bridgeRestartMaxDelay = 30 * time.Second
)

// RedisBridge публикует изменения в канал Redis и пересылает полученные
// из канала события в локальный хаб, так что их видят подписчики всех экземпляров.
type RedisBridge struct {
	client  *redis.Client
	channel string
	hub     *Hub
	logger  *logrus.Logger
}

func NewRedisBridge(client *redis.Client, hub *Hub, logger *logrus.Logger) *RedisBridge {
	return &RedisBridge{
		client:  client,
		channel: defaultChangeChannel,
		hub:     hub,
		logger:  logger,
	}
}

// Publish отправляет событие в канал Redis
func (b *RedisBridge) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal feed event: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish feed event to Redis: %w", err)
	}
	return nil
}

// Listen держит подписку до отмены контекста. Упавшая подписка перезапускается
// с экспоненциальной задержкой. После переподключения все локальные подписчики
// помечаются отставшими и пересобирают снимок, так как события за разрыв потеряны.
func (b *RedisBridge) Listen(ctx context.Context, clk clock.Clock) {
	reconnect := false
	superviseBridge(ctx, clk, b.logger, func(ctx context.Context) error {
		return b.listen(ctx, func() {
			if reconnect {
				b.hub.markAllLagged()
			}
			reconnect = true
		})
	})
}

// listen слушает канал до отмены контекста, subscribed вызывается после подписки
func (b *RedisBridge) listen(ctx context.Context, subscribed func()) error {
	pubsub := b.client.Subscribe(ctx, b.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to feed channel: %w", err)
	}
	b.logger.WithField("channel", b.channel).Info("Subscribed to feed change channel")
	subscribed()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Feed change subscription stopped")
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				b.logger.Warn("Feed change channel closed")
				return nil
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.WithError(err).Error("Failed to unmarshal feed event from Redis")
				continue
			}
			b.hub.Dispatch(event)
		}
	}
}

// superviseBridge перезапускает run, пока контекст не отменён. Задержка удваивается
// до bridgeRestartMaxDelay и сбрасывается, если подписка прожила дольше неё.
func superviseBridge(ctx context.Context, clk clock.Clock, logger *logrus.Logger, run func(context.Context) error) {
	delay := bridgeRestartMinDelay
	for {
		started := clk.Now()
		err := run(ctx)
		if ctx.Err() != nil {
			return
		}
		if clk.Now().Sub(started) >= bridgeRestartMaxDelay {
			delay = bridgeRestartMinDelay
		}

		logger.WithError(err).WithField("retry_in", delay.String()).Error("Feed bridge stopped, restarting")
		if !waitRestart(ctx, clk, delay) {
			return
		}
		delay = min(delay*2, bridgeRestartMaxDelay)
	}
}

func waitRestart(ctx context.Context, clk clock.Clock, d time.Duration) bool {
	done := make(chan struct{})
	timer := clk.AfterFunc(d, func() { close(done) })
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-done:
		return true
	}
}
