package ledgers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/experience"
	dnderr "github.com/KirkDiggler/initiative-bot-discord/internal/errors"
)

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis keeps the active session as a JSON string under
// ledger:<guild>:active and finalized sessions in the hash
// ledger:<guild>:history keyed by session name
func NewRedis(client redis.UniversalClient) Repository {
	return &redisRepo{client: client}
}

func activeKey(guildID string) string {
	return fmt.Sprintf("ledger:%s:active", guildID)
}

func historyKey(guildID string) string {
	return fmt.Sprintf("ledger:%s:history", guildID)
}

func (r *redisRepo) GetActive(ctx context.Context, guildID string) (*experience.Session, error) {
	jsonData, err := r.client.Get(ctx, activeKey(guildID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("active session for guild %s not found", guildID)
		}
		return nil, fmt.Errorf("failed to get active session from Redis: %w", err)
	}

	var session experience.Session
	if err := json.Unmarshal(jsonData, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}
	session.Normalize()

	return &session, nil
}

func (r *redisRepo) SaveActive(ctx context.Context, guildID string, session *experience.Session) error {
	if session == nil {
		return dnderr.InvalidArgument("session cannot be nil")
	}

	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	if err := r.client.Set(ctx, activeKey(guildID), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to save active session in Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) GetHistory(ctx context.Context, guildID string) (experience.History, error) {
	fields, err := r.client.HGetAll(ctx, historyKey(guildID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session history from Redis: %w", err)
	}

	byName := make(map[string]*experience.Session, len(fields))
	for name, raw := range fields {
		var session experience.Session
		if err := json.Unmarshal([]byte(raw), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session '%s': %w", name, err)
		}
		byName[name] = &session
	}

	return toHistory(byName), nil
}

func (r *redisRepo) AddToHistory(ctx context.Context, guildID string, session *experience.Session) error {
	if err := validateFinalized(session); err != nil {
		return err
	}

	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	added, err := r.client.HSetNX(ctx, historyKey(guildID), session.Name, string(jsonData)).Result()
	if err != nil {
		return fmt.Errorf("failed to add session to history in Redis: %w", err)
	}
	if !added {
		return dnderr.AlreadyExistsf("session '%s' already exists", session.Name)
	}

	return nil
}
