package trackers

//go:generate mockgen -destination=mock/mock_repository.go -package=mocktrackers -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/initiative"
)

// Repository persists one initiative tracker per channel
type Repository interface {
	// Get loads the tracker for a channel. Missing trackers return a not found error.
	Get(ctx context.Context, channelID string) (*initiative.Tracker, error)

	// Save replaces the stored tracker for a channel
	Save(ctx context.Context, channelID string, tracker *initiative.Tracker) error

	// Delete removes the stored tracker for a channel
	Delete(ctx context.Context, channelID string) error

	// ListChannelIDs returns every channel that has a stored tracker
	ListChannelIDs(ctx context.Context) ([]string, error)
}
