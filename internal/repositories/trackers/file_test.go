package trackers_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/initiative-bot-discord/internal/errors"
	"github.com/KirkDiggler/initiative-bot-discord/internal/repositories/trackers"
)

func TestFileRepository(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo, err := trackers.NewFileRepository(dir)
	require.NoError(t, err)

	t.Run("missing tracker is not found", func(t *testing.T) {
		_, err := repo.Get(ctx, "123")
		assert.True(t, dnderr.IsNotFound(err))
	})

	t.Run("save then get round trips", func(t *testing.T) {
		tr := sampleTracker()
		tr.LastMessageID = "msg-1"

		require.NoError(t, repo.Save(ctx, "123", tr))
		assert.FileExists(t, filepath.Join(dir, "initiative_tracker_123.json"))

		got, err := repo.Get(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, len(tr.Combatants), len(got.Combatants))
		assert.Equal(t, "Hero", got.Combatants[0].Name)
		assert.Equal(t, tr.CurrentIndex, got.CurrentIndex)
		assert.Equal(t, tr.Round, got.Round)
		assert.Equal(t, tr.IsActive, got.IsActive)
		assert.Empty(t, got.LastMessageID)
		assert.Equal(t, 3, got.Combatants[0].Effects[0].Duration)
	})

	t.Run("list ignores unrelated files", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "456", sampleTracker()))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "active_exp_session_1.json"), []byte("{}"), 0o644))

		ids, err := repo.ListChannelIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"123", "456"}, ids)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "456"))
		require.NoError(t, repo.Delete(ctx, "456"))

		_, err := repo.Get(ctx, "456")
		assert.True(t, dnderr.IsNotFound(err))
	})

	t.Run("corrupt file is an error", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "initiative_tracker_789.json"), []byte("{not json"), 0o644))

		_, err := repo.Get(ctx, "789")
		require.Error(t, err)
		assert.False(t, dnderr.IsNotFound(err))
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		err := repo.Save(ctx, "../escape", sampleTracker())
		assert.True(t, dnderr.IsInvalidArgument(err))
	})

	t.Run("nil tracker", func(t *testing.T) {
		assert.Error(t, repo.Save(ctx, "123", nil))
	})
}
