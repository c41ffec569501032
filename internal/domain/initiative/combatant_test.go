package initiative_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/initiative"
)

func TestCombatant_AdvanceEffects(t *testing.T) {
	t.Run("expires after exactly d advances", func(t *testing.T) {
		for d := 1; d <= 5; d++ {
			c := initiative.NewCombatant("Hero", 10, true)
			c.AddEffect(initiative.NewEffect("Bless", d, "", fixedTime))

			for i := 1; i < d; i++ {
				assert.Empty(t, c.AdvanceEffects(), "duration %d advance %d", d, i)
			}
			assert.Equal(t, []string{"Bless"}, c.AdvanceEffects(), "duration %d", d)
			assert.Empty(t, c.Effects)
		}
	})

	t.Run("processes every effect in one pass", func(t *testing.T) {
		c := initiative.NewCombatant("Hero", 10, true)
		c.AddEffect(initiative.NewEffect("A", 1, "", fixedTime))
		c.AddEffect(initiative.NewEffect("B", 3, "", fixedTime))
		c.AddEffect(initiative.NewEffect("C", 1, "", fixedTime))

		expired := c.AdvanceEffects()

		assert.Equal(t, []string{"A", "C"}, expired)
		assert.Len(t, c.Effects, 1)
		assert.Equal(t, 2, c.Effects[0].Duration)
	})

	t.Run("already expired effects drop on next pass", func(t *testing.T) {
		c := initiative.NewCombatant("Hero", 10, true)
		c.AddEffect(initiative.NewEffect("Stale", 0, "", fixedTime))

		assert.Equal(t, []string{"Stale"}, c.AdvanceEffects())
	})
}

func TestCombatant_RemoveEffect(t *testing.T) {
	c := initiative.NewCombatant("Hero", 10, true)
	c.AddEffect(initiative.NewEffect("Poisoned", 2, "first", fixedTime))
	c.AddEffect(initiative.NewEffect("poisoned", 4, "second", fixedTime))

	assert.True(t, c.RemoveEffect("POISONED"))
	assert.Len(t, c.Effects, 1)
	assert.Equal(t, "second", c.Effects[0].Description)

	assert.False(t, c.RemoveEffect("Blinded"))
	assert.Len(t, c.Effects, 1)
}

func TestCombatant_String(t *testing.T) {
	npc := initiative.NewCombatant("Goblin", 12, false)
	assert.Equal(t, "👹 **Goblin** - Initiative: 12", npc.String())

	pc := initiative.NewCombatant("Hero", 18, true)
	pc.AddEffect(initiative.NewEffect("Haste", 1, "", fixedTime))
	assert.Equal(t, "👤 **Hero** - Initiative: 18 (Haste (1 turn))", pc.String())
}
