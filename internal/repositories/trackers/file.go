package trackers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/initiative"
	dnderr "github.com/KirkDiggler/initiative-bot-discord/internal/errors"
	"github.com/KirkDiggler/initiative-bot-discord/internal/repositories"
)

const filePrefix = "initiative_tracker_"

type fileRepository struct {
	dir string
}

// NewFileRepository stores each tracker as an indented JSON document named
// initiative_tracker_<channel>.json inside dir. The directory is created if needed.
func NewFileRepository(dir string) (Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	return &fileRepository{dir: dir}, nil
}

func (r *fileRepository) path(channelID string) (string, error) {
	name, err := repositories.FileName(filePrefix, channelID)
	if err != nil {
		return "", err
	}
	return filepath.Join(r.dir, name), nil
}

func (r *fileRepository) Get(ctx context.Context, channelID string) (*initiative.Tracker, error) {
	path, err := r.path(channelID)
	if err != nil {
		return nil, err
	}

	var tracker initiative.Tracker
	if err := repositories.ReadJSON(path, &tracker); err != nil {
		if dnderr.IsNotFound(err) {
			return nil, dnderr.NotFoundf("tracker for channel %s not found", channelID)
		}
		return nil, err
	}
	tracker.Normalize()

	return &tracker, nil
}

func (r *fileRepository) Save(ctx context.Context, channelID string, tracker *initiative.Tracker) error {
	if tracker == nil {
		return dnderr.InvalidArgument("tracker cannot be nil")
	}

	path, err := r.path(channelID)
	if err != nil {
		return err
	}

	return repositories.WriteJSON(path, tracker)
}

func (r *fileRepository) Delete(ctx context.Context, channelID string) error {
	path, err := r.path(channelID)
	if err != nil {
		return err
	}

	return repositories.RemoveFile(path)
}

func (r *fileRepository) ListChannelIDs(ctx context.Context) ([]string, error) {
	ids, err := repositories.ListIDs(r.dir, filePrefix)
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)

	return ids, nil
}
