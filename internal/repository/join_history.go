package repository

import (
	"context"
	"fmt"

	"github.com/NITHEESH-14/CrisisSync/internal/service"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// JoinHistory множество происшествий, к которым присоединился пользователь, в Redis.
// Источник истины таблица volunteer_joins, множество только срезает повторные вызовы.
type JoinHistory struct {
	redisClient *redis.Client
}

func NewJoinHistory(redisClient *redis.Client) service.JoinHistory {
	return &JoinHistory{redisClient: redisClient}
}

func (h *JoinHistory) HasJoined(ctx context.Context, userID string, incidentID uuid.UUID) (bool, error) {
	ok, err := h.redisClient.SIsMember(ctx, joinHistoryKey(userID), incidentID.String()).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check join history: %w", err)
	}
	return ok, nil
}

func (h *JoinHistory) RecordJoin(ctx context.Context, userID string, incidentID uuid.UUID) error {
	if err := h.redisClient.SAdd(ctx, joinHistoryKey(userID), incidentID.String()).Err(); err != nil {
		return fmt.Errorf("failed to record join history: %w", err)
	}
	return nil
}

// Joined список происшествий пользователя. Нераспознанные элементы пропускаются.
func (h *JoinHistory) Joined(ctx context.Context, userID string) ([]uuid.UUID, error) {
	members, err := h.redisClient.SMembers(ctx, joinHistoryKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read join history: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func joinHistoryKey(userID string) string {
	return fmt.Sprintf("volunteered:%s", userID)
}
