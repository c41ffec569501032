package experience_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/experience"
)

var now = time.Date(2024, 5, 1, 21, 30, 0, 0, time.UTC)

func TestSession_PartyEntries(t *testing.T) {
	s := experience.NewSession(now)
	assert.True(t, s.IsEmpty())

	s.AddPartyExp(100, "Defeated the ogre", now)
	s.AddPartyExp(50, "Solved the riddle", now)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, 150, s.PartyTotal())

	entry, ok := s.RemovePartyExp(0)
	require.True(t, ok)
	assert.Equal(t, "Defeated the ogre", entry.Achievement)
	assert.Equal(t, 50, s.PartyTotal())

	_, ok = s.RemovePartyExp(1)
	assert.False(t, ok)
	_, ok = s.RemovePartyExp(-1)
	assert.False(t, ok)
	assert.Len(t, s.PartyEntries, 1)
}

func TestSession_PlayerEntries(t *testing.T) {
	s := experience.NewSession(now)

	s.AddPlayerExp("Aria", 30, "Saved the merchant", now)
	s.AddPlayerExp("aria", 20, "Critical hit", now)
	s.AddPlayerExp("Borin", 10, "Held the door", now)

	require.Len(t, s.Players, 2)
	assert.Equal(t, "Aria", s.Players[0].Name)
	assert.Equal(t, 50, s.Player("ARIA").Total())

	t.Run("out of range leaves player", func(t *testing.T) {
		_, ok := s.RemovePlayerExp("Borin", 3)
		assert.False(t, ok)
		assert.NotNil(t, s.Player("Borin"))
	})

	t.Run("unknown player", func(t *testing.T) {
		_, ok := s.RemovePlayerExp("Nobody", 0)
		assert.False(t, ok)
	})

	t.Run("last entry prunes player", func(t *testing.T) {
		entry, ok := s.RemovePlayerExp("borin", 0)
		require.True(t, ok)
		assert.Equal(t, 10, entry.Amount)
		assert.Nil(t, s.Player("Borin"))
		assert.Len(t, s.Players, 1)
	})
}

func TestSession_Totals(t *testing.T) {
	s := experience.NewSession(now)
	s.AddPartyExp(100, "Boss", now)
	s.AddPlayerExp("Aria", 30, "Trap", now)
	s.AddPlayerExp("Borin", -5, "Fell asleep", now)

	assert.Equal(t, []experience.Total{
		{Name: "Aria", Amount: 30},
		{Name: "Borin", Amount: -5},
	}, s.PlayerTotals())

	assert.Equal(t, []experience.Total{
		{Name: "Aria", Amount: 130},
		{Name: "Borin", Amount: 95},
	}, s.GrandTotals())
}

func TestSession_FinalizeAndClone(t *testing.T) {
	s := experience.NewSession(now)
	s.AddPlayerExp("Aria", 30, "Trap", now)

	later := now.Add(2 * time.Hour)
	s.Finalize("Session 1", later)

	assert.True(t, s.Finalized)
	assert.Equal(t, "Session 1", s.Name)
	require.NotNil(t, s.FinalizedAt)
	assert.True(t, later.Equal(*s.FinalizedAt))

	cp := s.Clone()
	cp.Players[0].Entries[0].Amount = 999
	*cp.FinalizedAt = now
	assert.Equal(t, 30, s.Players[0].Entries[0].Amount)
	assert.True(t, later.Equal(*s.FinalizedAt))
}

func TestHistory(t *testing.T) {
	first := experience.NewSession(now)
	first.Finalize("Session 1", now)
	second := experience.NewSession(now)
	second.Finalize("Session 2", now.Add(time.Hour))

	h := experience.History{second, first}
	h.SortByFinalized()

	assert.Equal(t, []string{"Session 1", "Session 2"}, h.Names())
	assert.True(t, h.Has("Session 2"))
	assert.False(t, h.Has("session 2"))
	assert.Same(t, first, h.Find("Session 1"))
	assert.Nil(t, h.Find("Session 3"))
}
