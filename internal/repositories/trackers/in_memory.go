package trackers

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/initiative"
	dnderr "github.com/KirkDiggler/initiative-bot-discord/internal/errors"
)

type inMemoryRepository struct {
	mu       sync.RWMutex
	trackers map[string]*initiative.Tracker
}

// NewInMemoryRepository creates a repository that keeps trackers for the life of the process
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		trackers: make(map[string]*initiative.Tracker),
	}
}

func (r *inMemoryRepository) Get(ctx context.Context, channelID string) (*initiative.Tracker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tracker, exists := r.trackers[channelID]
	if !exists {
		return nil, dnderr.NotFoundf("tracker for channel %s not found", channelID)
	}

	return stripTransient(tracker.Clone()), nil
}

func (r *inMemoryRepository) Save(ctx context.Context, channelID string, tracker *initiative.Tracker) error {
	if tracker == nil {
		return dnderr.InvalidArgument("tracker cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.trackers[channelID] = stripTransient(tracker.Clone())
	return nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, channelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.trackers, channelID)
	return nil
}

func (r *inMemoryRepository) ListChannelIDs(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.trackers))
	for id := range r.trackers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}

// stripTransient drops fields that are never persisted so every backend
// hands back the same shape
func stripTransient(tracker *initiative.Tracker) *initiative.Tracker {
	tracker.LastMessageID = ""
	return tracker
}
