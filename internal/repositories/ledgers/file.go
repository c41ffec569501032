package ledgers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/experience"
	dnderr "github.com/KirkDiggler/initiative-bot-discord/internal/errors"
	"github.com/KirkDiggler/initiative-bot-discord/internal/repositories"
)

const (
	activePrefix  = "active_exp_session_"
	historyPrefix = "exp_history_"
)

type fileRepository struct {
	dir string

	// Guards the read-modify-write of history files
	mu sync.Mutex
}

// NewFileRepository keeps active_exp_session_<guild>.json and
// exp_history_<guild>.json inside dir. The history file is a JSON object
// keyed by session name.
func NewFileRepository(dir string) (Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	return &fileRepository{dir: dir}, nil
}

func (r *fileRepository) path(prefix, guildID string) (string, error) {
	name, err := repositories.FileName(prefix, guildID)
	if err != nil {
		return "", err
	}
	return filepath.Join(r.dir, name), nil
}

func (r *fileRepository) GetActive(ctx context.Context, guildID string) (*experience.Session, error) {
	path, err := r.path(activePrefix, guildID)
	if err != nil {
		return nil, err
	}

	var session experience.Session
	if err := repositories.ReadJSON(path, &session); err != nil {
		if dnderr.IsNotFound(err) {
			return nil, dnderr.NotFoundf("active session for guild %s not found", guildID)
		}
		return nil, err
	}
	session.Normalize()

	return &session, nil
}

func (r *fileRepository) SaveActive(ctx context.Context, guildID string, session *experience.Session) error {
	if session == nil {
		return dnderr.InvalidArgument("session cannot be nil")
	}

	path, err := r.path(activePrefix, guildID)
	if err != nil {
		return err
	}

	return repositories.WriteJSON(path, session)
}

func (r *fileRepository) GetHistory(ctx context.Context, guildID string) (experience.History, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byName, err := r.readHistory(guildID)
	if err != nil {
		return nil, err
	}

	return toHistory(byName), nil
}

func (r *fileRepository) AddToHistory(ctx context.Context, guildID string, session *experience.Session) error {
	if err := validateFinalized(session); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byName, err := r.readHistory(guildID)
	if err != nil {
		return err
	}

	if _, exists := byName[session.Name]; exists {
		return dnderr.AlreadyExistsf("session '%s' already exists", session.Name)
	}
	byName[session.Name] = session

	path, err := r.path(historyPrefix, guildID)
	if err != nil {
		return err
	}

	return repositories.WriteJSON(path, byName)
}

func (r *fileRepository) readHistory(guildID string) (map[string]*experience.Session, error) {
	path, err := r.path(historyPrefix, guildID)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*experience.Session)
	if err := repositories.ReadJSON(path, &byName); err != nil && !dnderr.IsNotFound(err) {
		return nil, err
	}

	return byName, nil
}

// toHistory flattens a name-keyed map into finalization order.
// Entries written without a name take their key.
func toHistory(byName map[string]*experience.Session) experience.History {
	history := make(experience.History, 0, len(byName))
	for name, session := range byName {
		if session == nil {
			continue
		}
		if session.Name == "" {
			session.Name = name
		}
		session.Normalize()
		history = append(history, session)
	}
	history.SortByFinalized()

	return history
}
