package ledgers

//go:generate mockgen -destination=mock/mock_repository.go -package=mockledgers -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/experience"
)

// Repository persists the experience ledger of each server: one active
// session plus the append-only history of finalized sessions
type Repository interface {
	// GetActive loads the open session. Returns a not found error when none was saved.
	GetActive(ctx context.Context, guildID string) (*experience.Session, error)

	// SaveActive replaces the open session
	SaveActive(ctx context.Context, guildID string, session *experience.Session) error

	// GetHistory returns finalized sessions, oldest first. Empty when there are none.
	GetHistory(ctx context.Context, guildID string) (experience.History, error)

	// AddToHistory stores a finalized session under its name.
	// Returns an already exists error if the name is taken.
	AddToHistory(ctx context.Context, guildID string, session *experience.Session) error
}
