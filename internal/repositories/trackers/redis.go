package trackers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/initiative"
	dnderr "github.com/KirkDiggler/initiative-bot-discord/internal/errors"
)

const (
	keyPrefix = "tracker:"
	indexKey  = "trackers"
)

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis stores each tracker as a JSON string under tracker:<channel> and
// indexes the channel in the trackers set
func NewRedis(client redis.UniversalClient) Repository {
	return &redisRepo{client: client}
}

func trackerKey(channelID string) string {
	return keyPrefix + channelID
}

func (r *redisRepo) Get(ctx context.Context, channelID string) (*initiative.Tracker, error) {
	jsonData, err := r.client.Get(ctx, trackerKey(channelID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("tracker for channel %s not found", channelID)
		}
		return nil, fmt.Errorf("failed to get tracker from Redis: %w", err)
	}

	var tracker initiative.Tracker
	if err := json.Unmarshal(jsonData, &tracker); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tracker data: %w", err)
	}
	tracker.Normalize()

	return &tracker, nil
}

func (r *redisRepo) Save(ctx context.Context, channelID string, tracker *initiative.Tracker) error {
	if tracker == nil {
		return dnderr.InvalidArgument("tracker cannot be nil")
	}

	jsonData, err := json.Marshal(tracker)
	if err != nil {
		return fmt.Errorf("failed to marshal tracker data: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, trackerKey(channelID), string(jsonData), 0)
	pipe.SAdd(ctx, indexKey, channelID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save tracker in Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, channelID string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, trackerKey(channelID))
	pipe.SRem(ctx, indexKey, channelID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete tracker from Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) ListChannelIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list trackers from Redis: %w", err)
	}
	sort.Strings(ids)

	return ids, nil
}
