package ledgers

import (
	"context"
	"sync"

	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/experience"
	dnderr "github.com/KirkDiggler/initiative-bot-discord/internal/errors"
)

type inMemoryRepository struct {
	mu      sync.RWMutex
	active  map[string]*experience.Session
	history map[string]experience.History
}

// NewInMemoryRepository creates a ledger repository that lives as long as the process
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		active:  make(map[string]*experience.Session),
		history: make(map[string]experience.History),
	}
}

func (r *inMemoryRepository) GetActive(ctx context.Context, guildID string) (*experience.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.active[guildID]
	if !exists {
		return nil, dnderr.NotFoundf("active session for guild %s not found", guildID)
	}

	return session.Clone(), nil
}

func (r *inMemoryRepository) SaveActive(ctx context.Context, guildID string, session *experience.Session) error {
	if session == nil {
		return dnderr.InvalidArgument("session cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.active[guildID] = session.Clone()
	return nil
}

func (r *inMemoryRepository) GetHistory(ctx context.Context, guildID string) (experience.History, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.history[guildID]
	history := make(experience.History, len(stored))
	for i, s := range stored {
		history[i] = s.Clone()
	}

	return history, nil
}

func (r *inMemoryRepository) AddToHistory(ctx context.Context, guildID string, session *experience.Session) error {
	if err := validateFinalized(session); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.history[guildID].Has(session.Name) {
		return dnderr.AlreadyExistsf("session '%s' already exists", session.Name)
	}

	r.history[guildID] = append(r.history[guildID], session.Clone())
	return nil
}

func validateFinalized(session *experience.Session) error {
	if session == nil {
		return dnderr.InvalidArgument("session cannot be nil")
	}
	if session.Name == "" {
		return dnderr.InvalidArgument("session name is required")
	}
	return nil
}
