package ledgers_test

import (
	"time"

	"github.com/KirkDiggler/initiative-bot-discord/internal/domain/experience"
)

var baseTime = time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)

func openSession() *experience.Session {
	s := experience.NewSession(baseTime)
	s.AddPartyExp(100, "Cleared the crypt", baseTime)
	s.AddPlayerExp("Aria", 25, "Disarmed the trap", baseTime)
	return s
}

func finalizedSession(name string, offset time.Duration) *experience.Session {
	s := openSession()
	s.Finalize(name, baseTime.Add(offset))
	return s
}
