package trackers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/initiative-bot-discord/internal/errors"
	"github.com/KirkDiggler/initiative-bot-discord/internal/repositories/trackers"
	"github.com/KirkDiggler/initiative-bot-discord/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClient(t)
	repo := trackers.NewRedis(client)
	ctx := context.Background()

	tr := sampleTracker()
	require.NoError(t, repo.Save(ctx, "chan-1", tr))

	got, err := repo.Get(ctx, "chan-1")
	require.NoError(t, err)
	assert.Equal(t, tr.CurrentIndex, got.CurrentIndex)
	assert.Equal(t, tr.Round, got.Round)
	assert.Equal(t, "Blessed", got.Combatants[0].Effects[0].Name)

	ids, err := repo.ListChannelIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"chan-1"}, ids)

	require.NoError(t, repo.Delete(ctx, "chan-1"))
	_, err = repo.Get(ctx, "chan-1")
	assert.True(t, dnderr.IsNotFound(err))
}
