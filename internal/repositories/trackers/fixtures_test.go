package trackers_test

import (
	"time"

	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/initiative"
)

func sampleTracker() *initiative.Tracker {
	tr := initiative.NewTracker()
	hero := initiative.NewCombatant("Hero", 15, true)
	hero.AddEffect(initiative.NewEffect("Blessed", 3, "+1d4", time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)))
	tr.Add(hero)
	tr.Add(initiative.NewCombatant("Goblin", 10, false))
	tr.Start()
	tr.NextTurn()
	return tr
}
