package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NITHEESH-14/CrisisSync/internal/service"
	"github.com/NITHEESH-14/CrisisSync/internal/wizard"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultWizardTTL = 30 * time.Minute

// WizardStore хранит потоки мастера в Redis, каждое сохранение продлевает срок жизни
type WizardStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewWizardStore(redisClient *redis.Client, ttl time.Duration) service.WizardStore {
	if ttl <= 0 {
		ttl = defaultWizardTTL
	}
	return &WizardStore{redisClient: redisClient, ttl: ttl}
}

func (s *WizardStore) Save(ctx context.Context, flow *wizard.Flow) error {
	val, err := json.Marshal(flow)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard flow: %w", err)
	}
	if err := s.redisClient.Set(ctx, wizardKey(flow.ID), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save wizard flow: %w", err)
	}
	return nil
}

func (s *WizardStore) Load(ctx context.Context, id uuid.UUID) (*wizard.Flow, error) {
	val, err := s.redisClient.Get(ctx, wizardKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrWizardNotFound
		}
		return nil, fmt.Errorf("failed to load wizard flow: %w", err)
	}
	flow := &wizard.Flow{}
	if err := json.Unmarshal(val, flow); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wizard flow: %w", err)
	}
	return flow, nil
}

// Update сохраняет поток с проверкой ревизии под WATCH. Из двух одновременных
// переходов одного потока проходит только первый.
func (s *WizardStore) Update(ctx context.Context, flow *wizard.Flow) error {
	key := wizardKey(flow.ID)

	err := s.redisClient.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return service.ErrWizardNotFound
			}
			return fmt.Errorf("failed to load wizard flow: %w", err)
		}
		var stored wizard.Flow
		if err := json.Unmarshal(raw, &stored); err != nil {
			return fmt.Errorf("failed to unmarshal wizard flow: %w", err)
		}
		if stored.Revision != flow.Revision {
			return service.ErrWizardConflict
		}

		next := *flow
		next.Revision++
		val, err := json.Marshal(&next)
		if err != nil {
			return fmt.Errorf("failed to marshal wizard flow: %w", err)
		}
		if _, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, val, s.ttl)
			return nil
		}); err != nil {
			return err
		}
		flow.Revision = next.Revision
		return nil
	}, key)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return service.ErrWizardConflict
	case errors.Is(err, service.ErrWizardConflict), errors.Is(err, service.ErrWizardNotFound):
		return err
	default:
		return fmt.Errorf("failed to update wizard flow: %w", err)
	}
}

func wizardKey(id uuid.UUID) string {
	return fmt.Sprintf("wizard:%s", id.String())
}
