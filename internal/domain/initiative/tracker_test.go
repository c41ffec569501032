package initiative_test

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/initiative"
)

var fixedTime = time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

func names(tr *initiative.Tracker) []string {
	out := make([]string, len(tr.Combatants))
	for i, c := range tr.Combatants {
		out[i] = c.Name
	}
	return out
}

func TestTracker_Add_SortsDescendingAndStable(t *testing.T) {
	tr := initiative.NewTracker()

	tr.Add(initiative.NewCombatant("Goblin A", 12, false))
	tr.Add(initiative.NewCombatant("Hero", 18, true))
	tr.Add(initiative.NewCombatant("Goblin B", 12, false))
	tr.Add(initiative.NewCombatant("Wolf", 5, false))
	tr.Add(initiative.NewCombatant("Goblin C", 12, false))

	assert.Equal(t, []string{"Hero", "Goblin A", "Goblin B", "Goblin C", "Wolf"}, names(tr))
}

// assertOrdered checks highest initiative first with ties in the order they
// were added. seq maps each name to its insertion position.
func assertOrdered(t *testing.T, tr *initiative.Tracker, seq map[string]int) {
	t.Helper()
	for i := 1; i < len(tr.Combatants); i++ {
		prev, next := tr.Combatants[i-1], tr.Combatants[i]
		if !assert.GreaterOrEqual(t, prev.Initiative, next.Initiative, "order %v", names(tr)) {
			return
		}
		if prev.Initiative == next.Initiative {
			assert.Less(t, seq[prev.Name], seq[next.Name], "tie between %s and %s out of insertion order", prev.Name, next.Name)
		}
	}
}

func TestTracker_Add_OrderHoldsAfterEveryInsert(t *testing.T) {
	tests := []struct {
		name  string
		rolls []int
		want  []string
	}{
		{
			name:  "all tied",
			rolls: []int{10, 10, 10, 10},
			want:  []string{"c0", "c1", "c2", "c3"},
		},
		{
			name:  "ascending rolls",
			rolls: []int{1, 2, 3, 4},
			want:  []string{"c3", "c2", "c1", "c0"},
		},
		{
			name:  "ties after a higher roll",
			rolls: []int{5, 20, 5, 20, 5},
			want:  []string{"c1", "c3", "c0", "c2", "c4"},
		},
		{
			name:  "negative and zero",
			rolls: []int{0, -2, 0, 3, -2},
			want:  []string{"c3", "c0", "c2", "c1", "c4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := initiative.NewTracker()
			seq := make(map[string]int)

			for i, roll := range tt.rolls {
				name := fmt.Sprintf("c%d", i)
				seq[name] = i
				tr.Add(initiative.NewCombatant(name, roll, false))
				assertOrdered(t, tr, seq)
			}

			assert.Equal(t, tt.want, names(tr))
		})
	}
}

func TestTracker_Add_RandomRollsStayOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(20240501))

	for run := 0; run < 50; run++ {
		tr := initiative.NewTracker()
		seq := make(map[string]int)
		active := run%2 == 1

		for i := 0; i < 30; i++ {
			name := fmt.Sprintf("r%d-c%02d", run, i)
			seq[name] = i

			var current string
			if active && !tr.IsEmpty() {
				if !tr.IsActive {
					require.True(t, tr.Start())
				}
				tr.NextTurn()
				current = tr.Current().Name
			}

			// A narrow range so ties are common
			tr.Add(initiative.NewCombatant(name, rng.Intn(8)-2, false))

			assertOrdered(t, tr, seq)
			if current != "" {
				assert.Equal(t, current, tr.Current().Name)
			}
		}
		require.Len(t, tr.Combatants, 30)
	}
}

func TestTracker_Add_DuringCombatKeepsCurrentCombatant(t *testing.T) {
	tr := initiative.NewTracker()
	tr.Add(initiative.NewCombatant("Hero", 15, true))
	tr.Add(initiative.NewCombatant("Goblin", 10, false))
	require.True(t, tr.Start())
	tr.NextTurn()
	require.Equal(t, "Goblin", tr.Current().Name)

	tr.Add(initiative.NewCombatant("Dragon", 20, false))

	assert.Equal(t, []string{"Dragon", "Hero", "Goblin"}, names(tr))
	assert.Equal(t, 2, tr.CurrentIndex)
	assert.Equal(t, "Goblin", tr.Current().Name)
}

func TestTracker_Start(t *testing.T) {
	t.Run("empty roster fails without changing state", func(t *testing.T) {
		tr := initiative.NewTracker()

		assert.False(t, tr.Start())
		assert.False(t, tr.IsActive)
		assert.Equal(t, 0, tr.Round)
	})

	t.Run("non-empty roster starts at the top", func(t *testing.T) {
		tr := initiative.NewTracker()
		tr.Add(initiative.NewCombatant("Hero", 15, true))

		assert.True(t, tr.Start())
		assert.True(t, tr.IsActive)
		assert.Equal(t, 1, tr.Round)
		assert.Equal(t, 0, tr.CurrentIndex)
	})
}

func TestTracker_End_IsIdempotent(t *testing.T) {
	tr := initiative.NewTracker()
	tr.Add(initiative.NewCombatant("Hero", 15, true))
	tr.Start()
	tr.NextTurn()

	assert.True(t, tr.End())
	assert.True(t, tr.End())
	assert.False(t, tr.IsActive)
	assert.Equal(t, 0, tr.Round)
	assert.Equal(t, 0, tr.CurrentIndex)
	assert.Len(t, tr.Combatants, 1)
}

func TestTracker_NextTurn(t *testing.T) {
	t.Run("idle returns nil", func(t *testing.T) {
		tr := initiative.NewTracker()
		tr.Add(initiative.NewCombatant("Hero", 15, true))

		assert.Nil(t, tr.NextTurn())
		assert.Nil(t, tr.Current())
	})

	t.Run("full cycle adds exactly one round", func(t *testing.T) {
		tr := initiative.NewTracker()
		for i, name := range []string{"A", "B", "C", "D"} {
			tr.Add(initiative.NewCombatant(name, 10-i, false))
		}
		require.True(t, tr.Start())

		var last *initiative.Turn
		for i := 0; i < len(tr.Combatants); i++ {
			last = tr.NextTurn()
			require.NotNil(t, last)
		}

		assert.Equal(t, 0, tr.CurrentIndex)
		assert.Equal(t, 2, tr.Round)
		assert.True(t, last.NewRound)
		assert.Equal(t, 2, last.Round)
	})

	t.Run("active with emptied roster returns nil", func(t *testing.T) {
		tr := initiative.NewTracker()
		tr.Add(initiative.NewCombatant("Hero", 15, true))
		tr.Start()
		require.True(t, tr.Remove("hero"))

		assert.True(t, tr.IsActive)
		assert.Nil(t, tr.NextTurn())
	})
}

func TestTracker_HeroGoblinScenario(t *testing.T) {
	tr := initiative.NewTracker()
	tr.Add(initiative.NewCombatant("Goblin", 10, false))
	tr.Add(initiative.NewCombatant("Hero", 15, true))
	assert.Equal(t, []string{"Hero", "Goblin"}, names(tr))

	require.True(t, tr.Start())
	assert.Equal(t, 1, tr.Round)
	assert.Equal(t, "Hero", tr.Current().Name)

	turn := tr.NextTurn()
	require.NotNil(t, turn)
	assert.Equal(t, "Goblin", turn.Combatant.Name)
	assert.Equal(t, 1, tr.Round)
	assert.False(t, turn.NewRound)

	turn = tr.NextTurn()
	require.NotNil(t, turn)
	assert.Equal(t, "Hero", turn.Combatant.Name)
	assert.Equal(t, 2, tr.Round)
	assert.True(t, turn.NewRound)
}

func TestTracker_StunnedExpiresOnSecondReturn(t *testing.T) {
	tr := initiative.NewTracker()
	hero := initiative.NewCombatant("Hero", 15, true)
	hero.AddEffect(initiative.NewEffect("Stunned", 2, "", fixedTime))
	tr.Add(hero)
	tr.Add(initiative.NewCombatant("Goblin", 10, false))
	require.True(t, tr.Start())

	tr.NextTurn() // Goblin
	turn := tr.NextTurn()
	require.Equal(t, "Hero", turn.Combatant.Name)
	assert.Empty(t, turn.Expired)
	require.NotNil(t, hero.FindEffect("stunned"))
	assert.Equal(t, 1, hero.FindEffect("stunned").Duration)

	tr.NextTurn() // Goblin
	turn = tr.NextTurn()
	require.Equal(t, "Hero", turn.Combatant.Name)
	assert.Equal(t, []string{"Stunned"}, turn.Expired)
	assert.Empty(t, hero.Effects)
}

func TestTracker_Current_DoesNotAgeEffects(t *testing.T) {
	tr := initiative.NewTracker()
	hero := initiative.NewCombatant("Hero", 15, true)
	hero.AddEffect(initiative.NewEffect("Blessed", 3, "", fixedTime))
	tr.Add(hero)
	tr.Start()

	for i := 0; i < 5; i++ {
		require.NotNil(t, tr.Current())
	}

	assert.Equal(t, 3, hero.Effects[0].Duration)
}

func TestTracker_Remove(t *testing.T) {
	setup := func() *initiative.Tracker {
		tr := initiative.NewTracker()
		tr.Add(initiative.NewCombatant("A", 30, false))
		tr.Add(initiative.NewCombatant("B", 20, false))
		tr.Add(initiative.NewCombatant("C", 10, false))
		tr.Start()
		tr.NextTurn()
		tr.NextTurn() // current is C at index 2
		return tr
	}

	t.Run("unknown name changes nothing", func(t *testing.T) {
		tr := setup()
		before := tr.Clone()

		assert.False(t, tr.Remove("Nobody"))
		assert.Equal(t, names(before), names(tr))
		assert.Equal(t, before.CurrentIndex, tr.CurrentIndex)
		assert.Equal(t, before.Round, tr.Round)
	})

	t.Run("before cursor keeps current combatant", func(t *testing.T) {
		tr := setup()

		assert.True(t, tr.Remove("a"))
		assert.Equal(t, 1, tr.CurrentIndex)
		assert.Equal(t, "C", tr.Current().Name)
	})

	t.Run("after cursor leaves index alone", func(t *testing.T) {
		tr := initiative.NewTracker()
		tr.Add(initiative.NewCombatant("A", 30, false))
		tr.Add(initiative.NewCombatant("B", 20, false))
		tr.Start()

		assert.True(t, tr.Remove("B"))
		assert.Equal(t, 0, tr.CurrentIndex)
	})

	t.Run("current combatant pulls cursor back", func(t *testing.T) {
		tr := setup()

		assert.True(t, tr.Remove("C"))
		assert.Equal(t, 1, tr.CurrentIndex)

		turn := tr.NextTurn()
		assert.Equal(t, "A", turn.Combatant.Name)
		assert.True(t, turn.NewRound)
	})

	t.Run("first match wins on duplicate names", func(t *testing.T) {
		tr := initiative.NewTracker()
		tr.Add(initiative.NewCombatant("Goblin", 12, false))
		tr.Add(initiative.NewCombatant("goblin", 8, false))

		assert.True(t, tr.Remove("GOBLIN"))
		require.Len(t, tr.Combatants, 1)
		assert.Equal(t, 8, tr.Combatants[0].Initiative)
	})
}

func TestTracker_Clear(t *testing.T) {
	tr := initiative.NewTracker()
	tr.Add(initiative.NewCombatant("Hero", 15, true))
	tr.Start()
	tr.NextTurn()

	tr.Clear()

	assert.True(t, tr.IsEmpty())
	assert.False(t, tr.IsActive)
	assert.Equal(t, 0, tr.Round)
	assert.Equal(t, 0, tr.CurrentIndex)
}

func TestTracker_JSONRoundTrip(t *testing.T) {
	tr := initiative.NewTracker()
	hero := initiative.NewCombatant("Hero", 15, true)
	hero.AddEffect(initiative.NewEffect("Blessed", 3, "+1d4 to attacks", fixedTime))
	hero.AddEffect(initiative.NewEffect("Haste", 10, "", fixedTime))
	tr.Add(hero)
	tr.Add(initiative.NewCombatant("Goblin", 10, false))
	tr.Add(initiative.NewCombatant("Orc", 10, false))
	tr.Start()
	tr.NextTurn()
	tr.LastMessageID = "msg-1"

	data, err := json.Marshal(tr)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "characters")
	assert.Contains(t, raw, "current_index")
	assert.Contains(t, raw, "round")
	assert.Contains(t, raw, "is_active")
	assert.NotContains(t, raw, "LastMessageID")

	var decoded initiative.Tracker
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, names(tr), names(&decoded))
	assert.Equal(t, tr.CurrentIndex, decoded.CurrentIndex)
	assert.Equal(t, tr.Round, decoded.Round)
	assert.Equal(t, tr.IsActive, decoded.IsActive)
	assert.Empty(t, decoded.LastMessageID)
	assert.Equal(t, tr.Combatants[0].Effects, decoded.Combatants[0].Effects)
}

func TestTracker_Normalize(t *testing.T) {
	var tr initiative.Tracker
	require.NoError(t, json.Unmarshal([]byte(`{"characters":[{"name":"Hero","initiative":12,"is_player":true}],"current_index":7,"round":0,"is_active":true}`), &tr))

	tr.Normalize()

	assert.Equal(t, 0, tr.CurrentIndex)
	assert.Equal(t, 1, tr.Round)
	assert.NotNil(t, tr.Combatants[0].Effects)
}

func TestTracker_Clone_IsDeep(t *testing.T) {
	tr := initiative.NewTracker()
	hero := initiative.NewCombatant("Hero", 15, true)
	hero.AddEffect(initiative.NewEffect("Blessed", 3, "", fixedTime))
	tr.Add(hero)

	cp := tr.Clone()
	cp.Combatants[0].Effects[0].Duration = 1
	cp.Combatants[0].Name = "Villain"

	assert.Equal(t, 3, hero.Effects[0].Duration)
	assert.Equal(t, "Hero", hero.Name)
}

func TestTracker_FormatStatus(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, initiative.EmptyRoster, initiative.NewTracker().FormatStatus())
	})

	t.Run("idle has no round or marker", func(t *testing.T) {
		tr := initiative.NewTracker()
		tr.Add(initiative.NewCombatant("Hero", 15, true))
		tr.Add(initiative.NewCombatant("Goblin", 10, false))

		expected := "📋 **INITIATIVE**\n" +
			"👤 **Hero** - Initiative: 15\n" +
			"👹 **Goblin** - Initiative: 10"
		assert.Equal(t, expected, tr.FormatStatus())
	})

	t.Run("active marks current and lists effects", func(t *testing.T) {
		tr := initiative.NewTracker()
		tr.Add(initiative.NewCombatant("Hero", 15, true))
		goblin := initiative.NewCombatant("Goblin", 10, false)
		goblin.AddEffect(initiative.NewEffect("Poisoned", 3, "", fixedTime))
		goblin.AddEffect(initiative.NewEffect("Prone", 2, "", fixedTime))
		tr.Add(goblin)
		tr.Start()
		tr.NextTurn()

		expected := "📋 **INITIATIVE** (Round 1)\n" +
			"👤 **Hero** - Initiative: 15\n" +
			"➡️ 👹 **Goblin** - Initiative: 10 (Poisoned (2 turns), Prone (1 turn))"
		assert.Equal(t, expected, tr.FormatStatus())
	})
}
